package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/mxc-foundation/zkdeploy/internal/domain"
	"github.com/mxc-foundation/zkdeploy/internal/domain/models"
	"github.com/mxc-foundation/zkdeploy/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func TestFormatError(t *testing.T) {
	err := errors.New("failed to open ledger: open deploy/mxc_testnet.json: permission denied")
	assert.Equal(t, "❌ Permission denied", FormatError(err.Error()))
	assert.Equal(t, "❌ ", FormatError(""))
}

func TestFormatEther(t *testing.T) {
	oneAndHalf, _ := new(big.Int).SetString("1500000000000000000", 10)
	assert.Equal(t, "1.500000", FormatEther(oneAndHalf))
	assert.Equal(t, "0.000000", FormatEther(big.NewInt(0)))
}

func TestFormatFingerprint(t *testing.T) {
	assert.Equal(t, "ZkCenter_v2", FormatFingerprint(domain.Observed("ZkCenter_v2"), "ZkCenter_v2"))
	assert.Equal(t, `ZkCenter_v1 (expected "ZkCenter_v2")`, FormatFingerprint(domain.Observed("ZkCenter_v1"), "ZkCenter_v2"))
	assert.Equal(t, "<unknown>", FormatFingerprint(domain.Unknown(), ""))
}

func TestFormatAction(t *testing.T) {
	assert.Equal(t, "Deployed", FormatAction(domain.ActionDeployed))
	assert.Equal(t, "Unchanged", FormatAction(domain.ActionUnchanged))
}

func TestLedgerRenderer_RenderListJSON(t *testing.T) {
	var buf bytes.Buffer
	r := NewLedgerRenderer(&buf, true)

	err := r.RenderList(&usecase.ListLedgerResult{
		Path:    "deploy/mxc_testnet.json",
		Found:   true,
		Network: "mxc_testnet",
		ChainID: "5167004",
		Records: []*models.ContractRecord{{
			ContractName:            "ZkCenter",
			ProxyAddress:            "0x00000000000000000000000000000000000000aa",
			ImplementationAddress:   "0x00000000000000000000000000000000000000bb",
			VerificationFingerprint: "ZkCenter_v2",
			ExpectedFingerprint:     "ZkCenter_v2",
		}},
	})
	require.NoError(t, err)

	var ledger models.DeploymentLedger
	require.NoError(t, json.Unmarshal(buf.Bytes(), &ledger))
	assert.Equal(t, "mxc_testnet", ledger.Network)
	assert.Equal(t, "5167004", ledger.ChainID)
	require.Len(t, ledger.Contracts, 1)
	assert.Equal(t, "ZkCenter", ledger.Contracts[0].ContractName)
}

func TestLedgerRenderer_RenderListMissing(t *testing.T) {
	var buf bytes.Buffer
	r := NewLedgerRenderer(&buf, false)

	require.NoError(t, r.RenderList(&usecase.ListLedgerResult{Path: "deploy/holesky.json"}))
	assert.Equal(t, "No ledger found at deploy/holesky.json\n", buf.String())
}

func TestLedgerRenderer_RenderListDrift(t *testing.T) {
	var buf bytes.Buffer
	r := NewLedgerRenderer(&buf, false)

	err := r.RenderList(&usecase.ListLedgerResult{
		Path:    "deploy/mxc_testnet.json",
		Found:   true,
		Network: "mxc_testnet",
		ChainID: "5167004",
		Records: []*models.ContractRecord{{
			ContractName:            "ZkCenter",
			VerificationFingerprint: "ZkCenter_v1",
			ExpectedFingerprint:     "ZkCenter_v2",
		}},
		Drifted: 1,
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "ZkCenter")
	assert.Contains(t, buf.String(), `ZkCenter_v1 (expected "ZkCenter_v2")`)
	assert.Contains(t, buf.String(), "1 contract(s) recorded a name2()")
}

func TestLedgerRenderer_RenderRecordJSON(t *testing.T) {
	var buf bytes.Buffer
	r := NewLedgerRenderer(&buf, true)

	err := r.RenderRecord(&usecase.ShowRecordResult{
		Record:   &models.ContractRecord{ContractName: "ZkCenter", ExpectedFingerprint: "ZkCenter_v2"},
		Network:  "mxc_testnet",
		ChainID:  "5167004",
		Live:     true,
		Observed: domain.Observed("ZkCenter_v2"),
	})
	require.NoError(t, err)

	var view map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &view))
	assert.Equal(t, "ZkCenter", view["contractFactoryName"])
	assert.Equal(t, "mxc_testnet", view["network"])
	assert.Equal(t, "ZkCenter_v2", view["observedName2"])
}

func TestSetupRenderer_Partial(t *testing.T) {
	plan := &models.SetupPlan{
		Name: "zkcenter",
		Steps: []*models.SetupStep{
			{Resolve: "taiko", Registry: "AddressManager", As: "TaikoL1"},
			{Call: "ZkCenter", Method: "setController"},
		},
	}
	resolved := common.HexToAddress("0x00000000000000000000000000000000000000cc")
	result := &usecase.RunSetupResult{
		Plan: plan,
		Steps: []*usecase.SetupStepResult{{
			Index:    1,
			Step:     plan.Steps[0],
			Resolved: resolved,
		}},
	}

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewSetupRenderer(&buf, false).Render(result, errors.New("boom")))
		out := buf.String()
		assert.Contains(t, out, "[1/2] Resolved taiko as TaikoL1 = "+resolved.Hex())
		assert.Contains(t, out, "Stopped after 1 of 2 steps")
		assert.NotContains(t, out, "Setup complete")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewSetupRenderer(&buf, true).Render(result, errors.New("boom")))

		var view setupView
		require.NoError(t, json.Unmarshal(buf.Bytes(), &view))
		assert.Equal(t, "zkcenter", view.Plan)
		assert.Equal(t, 1, view.Completed)
		assert.Equal(t, 2, view.Total)
		assert.Equal(t, "boom", view.Error)
		require.Len(t, view.Steps, 1)
		assert.Equal(t, "resolve taiko as TaikoL1", view.Steps[0].Step)
	})

	t.Run("nil result", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewSetupRenderer(&buf, false).Render(nil, errors.New("boom")))
		assert.Empty(t, buf.String())
	})
}

func TestPreflightRenderer_JSON(t *testing.T) {
	var buf bytes.Buffer
	err := NewPreflightRenderer(&buf, true).Render(&usecase.PreflightResult{
		Network:     "mxc_testnet",
		Signer:      common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"),
		ChainID:     big.NewInt(5167004),
		BlockNumber: 42,
		Balance:     big.NewInt(7),
	})
	require.NoError(t, err)

	var view map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &view))
	assert.Equal(t, "5167004", view["chainId"])
	assert.Equal(t, "7", view["balance"])
	assert.Equal(t, float64(42), view["blockNumber"])
	assert.Equal(t, "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", view["signer"])
}
