package usecase_test

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/mxc-foundation/zkdeploy/internal/domain"
	"github.com/mxc-foundation/zkdeploy/internal/domain/config"
	"github.com/mxc-foundation/zkdeploy/internal/domain/models"
	"github.com/mxc-foundation/zkdeploy/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCallContract(t *testing.T) {
	ctx := context.Background()
	identity := staticIdentity{name: "mxc_testnet", chainID: 5167004}
	cfg := &config.RuntimeConfig{Network: &config.Network{Name: "mxc_testnet"}}

	t.Run("expands env references", func(t *testing.T) {
		controller := common.HexToAddress("0x000000000000000000000000000000000000e001")
		t.Setenv("CONTROLLER_ADDRESS", controller.Hex())

		caller := new(MockContractCaller)
		caller.On("Transact", ctx, testSigner, "ZkCenter", zkProxy, "setController", []string{controller.Hex(), "true"}).
			Return(&domain.CallResult{TxHash: common.Hash{2}, Events: []string{"ControllerSet"}}, nil).Once()

		result, err := usecase.NewCallContract(cfg, identity, caller, &MockProgressSink{}).Run(ctx, usecase.CallContractParams{
			Ledger:       sampleLedger(),
			Signer:       testSigner,
			ContractName: "ZkCenter",
			Method:       "setController",
			Args:         []string{"${env.CONTROLLER_ADDRESS}", "true"},
		})
		require.NoError(t, err)
		assert.Equal(t, zkProxy, result.Address)
		assert.Equal(t, []string{"ControllerSet"}, result.Call.Events)
	})

	t.Run("contract not in ledger", func(t *testing.T) {
		caller := new(MockContractCaller)
		_, err := usecase.NewCallContract(cfg, identity, caller, &MockProgressSink{}).Run(ctx, usecase.CallContractParams{
			Ledger:       models.NewDeploymentLedger("mxc_testnet", "5167004"),
			Signer:       testSigner,
			ContractName: "ZkCenter",
			Method:       "setController",
		})
		assert.ErrorIs(t, err, domain.ErrMissingPrerequisite)
		caller.AssertNotCalled(t, "Transact", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("corrupted proxy address", func(t *testing.T) {
		ledger := models.NewDeploymentLedger("mxc_testnet", "5167004")
		ledger.SetRecord(&models.ContractRecord{ContractName: "ZkCenter", ProxyAddress: "0xzz"})

		caller := new(MockContractCaller)
		_, err := usecase.NewCallContract(cfg, identity, caller, &MockProgressSink{}).Run(ctx, usecase.CallContractParams{
			Ledger:       ledger,
			Signer:       testSigner,
			ContractName: "ZkCenter",
			Method:       "setController",
			Args:         []string{"true"},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), `ledger proxy address "0xzz" is invalid`)
		caller.AssertNotCalled(t, "Transact", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestRegisterAddress(t *testing.T) {
	ctx := context.Background()
	identity := staticIdentity{name: "arbitrum_sepolia", chainID: 421614}
	cfg := &config.RuntimeConfig{Network: &config.Network{Addresses: map[string]string{"TaikoL1": taikoL1.Hex()}}}
	manager := common.HexToAddress("0x000000000000000000000000000000000000d001")

	t.Run("registers ledger contract", func(t *testing.T) {
		registry := new(MockAddressRegistry)
		registry.On("AddressManager", ctx, taikoL1).Return(manager, nil).Once()
		registry.On("SetAddress", ctx, testSigner, manager, uint64(421614), "zkcenter", zkProxy).Return(common.Hash{3}, nil).Once()
		registry.On("Resolve", ctx, taikoL1, "zkcenter", true).Return(zkProxy, nil).Once()

		result, err := usecase.NewRegisterAddress(identity, registry, cfg).Run(ctx, usecase.RegisterAddressParams{
			Ledger:   sampleLedger(),
			Signer:   testSigner,
			Name:     "zkcenter",
			Registry: "${address.TaikoL1}",
			Target:   "${ledger.ZkCenter}",
		})
		require.NoError(t, err)
		assert.Equal(t, zkProxy, result.Resolved)
		assert.Equal(t, common.Hash{3}, result.Call.TxHash)
		assert.Equal(t, int64(421614), result.ChainID.Int64())
	})

	t.Run("target must be an address", func(t *testing.T) {
		registry := new(MockAddressRegistry)
		_, err := usecase.NewRegisterAddress(identity, registry, cfg).Run(ctx, usecase.RegisterAddressParams{
			Ledger:   sampleLedger(),
			Signer:   testSigner,
			Name:     "zkcenter",
			Registry: taikoL1.Hex(),
			Target:   "zkcenter",
		})
		require.Error(t, err)
		registry.AssertNotCalled(t, "SetAddress", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
