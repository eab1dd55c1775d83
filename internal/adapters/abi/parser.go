package abi

import (
	"bytes"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/mxc-foundation/zkdeploy/internal/domain/models"
)

// ParseArtifactABI parses the ABI of a compiled artifact
func ParseArtifactABI(artifact *models.Artifact) (*abi.ABI, error) {
	if artifact == nil || len(artifact.ABI) == 0 {
		return nil, fmt.Errorf("artifact has no ABI")
	}
	parsed, err := abi.JSON(bytes.NewReader(artifact.ABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ABI of %s: %w", artifact.ContractName, err)
	}
	return &parsed, nil
}

// FindInitializer returns the initialize method, or nil if the contract has none
func FindInitializer(contractABI *abi.ABI) *abi.Method {
	if m, ok := contractABI.Methods["initialize"]; ok {
		return &m
	}
	return nil
}

// PackInitializer encodes initialize(args...) for proxy construction.
// Contracts without an initializer get empty calldata and must not receive args.
func PackInitializer(contractABI *abi.ABI, args []string) ([]byte, error) {
	method := FindInitializer(contractABI)
	if method == nil {
		if len(args) > 0 {
			return nil, fmt.Errorf("contract has no initialize method but %d args were given", len(args))
		}
		return []byte{}, nil
	}

	values, err := ConvertArgs(method.Inputs, args)
	if err != nil {
		return nil, fmt.Errorf("initialize: %w", err)
	}
	return contractABI.Pack("initialize", values...)
}

// PackMethod encodes a call to method with string args
func PackMethod(contractABI *abi.ABI, method string, args []string) ([]byte, error) {
	m, ok := contractABI.Methods[method]
	if !ok {
		return nil, fmt.Errorf("method %s not found in ABI", method)
	}
	values, err := ConvertArgs(m.Inputs, args)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	return contractABI.Pack(method, values...)
}
