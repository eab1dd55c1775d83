package models

import (
	"encoding/json"
	"strings"
)

// Artifact is a Hardhat compilation artifact (hh-sol-artifact-1)
type Artifact struct {
	Format           string          `json:"_format"`
	ContractName     string          `json:"contractName"`
	SourceName       string          `json:"sourceName"`
	ABI              json.RawMessage `json:"abi"`
	Bytecode         string          `json:"bytecode"`
	DeployedBytecode string          `json:"deployedBytecode"`
	LinkReferences   map[string]any  `json:"linkReferences"`
}

// FullyQualifiedName is "<source>:<contract>"
func (a *Artifact) FullyQualifiedName() string {
	return a.SourceName + ":" + a.ContractName
}

// Deployable reports whether the artifact has creation bytecode
func (a *Artifact) Deployable() bool {
	code := strings.TrimPrefix(a.Bytecode, "0x")
	return code != ""
}

// NeedsLinking reports whether the bytecode still contains library placeholders
func (a *Artifact) NeedsLinking() bool {
	return len(a.LinkReferences) > 0
}

// Contract is a compiled contract discovered in the artifacts directory
type Contract struct {
	Name         string    `json:"name"`
	SourceName   string    `json:"sourceName"`
	ArtifactPath string    `json:"artifactPath"`
	Artifact     *Artifact `json:"-"`
}
