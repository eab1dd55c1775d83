package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mxc-foundation/zkdeploy/internal/domain"
	"github.com/mxc-foundation/zkdeploy/internal/domain/config"
	"github.com/mxc-foundation/zkdeploy/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLedgerStore(t *testing.T) *LedgerStoreAdapter {
	t.Helper()
	cfg := &config.RuntimeConfig{
		ProjectRoot: t.TempDir(),
		Network:     &config.Network{Name: "mxc_testnet", ChainID: 5167004},
	}
	return NewLedgerStoreAdapter(cfg)
}

const validLedger = `{
  "network": "mxc_testnet",
  "chainId": "5167004",
  "contractList": [
    {
      "deployer": "0x00000000000000000000000000000000000000d1",
      "contractFactoryName": "SgxMinerToken",
      "contractName2": "SgxMinerToken-1",
      "timeUpdated": "2024-05-06T06:08:09.123Z",
      "proxyAddress": "0x1111111111111111111111111111111111111111",
      "impAddress": "0x2222222222222222222222222222222222222222",
      "expectedName2": "SgxMinerToken-1"
    }
  ]
}`

func TestLedgerPath(t *testing.T) {
	cfg := &config.RuntimeConfig{
		ProjectRoot: "/work",
		Network:     &config.Network{Name: "arbitrum_sepolia"},
	}
	assert.Equal(t, "/work/deploy/arbitrum_sepolia.json", LedgerPath(cfg))

	cfg.Project = &config.ProjectConfig{Project: config.ProjectSettings{LedgerDir: "deployments"}}
	assert.Equal(t, "/work/deployments/arbitrum_sepolia.json", LedgerPath(cfg))

	cfg.Network = nil
	assert.Equal(t, "", LedgerPath(cfg))
}

func TestLedgerStore_LoadMissing(t *testing.T) {
	store := newTestLedgerStore(t)

	ledger, found, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, ledger)
}

func TestLedgerStore_SaveAndLoad(t *testing.T) {
	store := newTestLedgerStore(t)
	ctx := context.Background()

	ledger := models.NewDeploymentLedger("mxc_testnet", "5167004")
	for _, name := range []string{"SgxMinerToken", "MiningGroupToken", "ZkCenter"} {
		ledger.SetRecord(&models.ContractRecord{
			DeployerAddress:         "0x00000000000000000000000000000000000000d1",
			ContractName:            name,
			VerificationFingerprint: name + "-1",
			LastUpdated:             "2024-05-06T06:08:09.123Z",
			ProxyAddress:            "0x1111111111111111111111111111111111111111",
			ImplementationAddress:   "0x2222222222222222222222222222222222222222",
			ExpectedFingerprint:     name + "-1",
		})
	}

	require.NoError(t, store.Save(ctx, ledger))

	loaded, found, err := store.Load(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, ledger, loaded)
	assert.Equal(t, []string{"SgxMinerToken", "MiningGroupToken", "ZkCenter"}, loaded.Names())
}

func TestLedgerStore_SaveEmptyLedger(t *testing.T) {
	store := newTestLedgerStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &models.DeploymentLedger{Network: "mxc_testnet", ChainID: "5167004"}))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"contractList": []`)

	_, found, err := store.Load(ctx)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestLedgerStore_LoadExistingFile(t *testing.T) {
	store := newTestLedgerStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(store.Path()), 0755))
	require.NoError(t, os.WriteFile(store.Path(), []byte(validLedger), 0644))

	ledger, found, err := store.Load(context.Background())
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "5167004", ledger.ChainID)
	record := ledger.GetRecord("SgxMinerToken")
	require.NotNil(t, record)
	assert.Equal(t, "SgxMinerToken-1", record.ExpectedFingerprint)
	assert.Equal(t, "0x2222222222222222222222222222222222222222", record.ImplementationAddress)
}

func TestLedgerStore_NoNetwork(t *testing.T) {
	store := NewLedgerStoreAdapter(&config.RuntimeConfig{ProjectRoot: t.TempDir()})

	_, _, err := store.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoNetwork)
	assert.ErrorIs(t, store.Save(context.Background(), &models.DeploymentLedger{}), domain.ErrNoNetwork)
}

func TestParseLedger_Malformed(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		contains []string
	}{
		{
			name:     "not json",
			doc:      `{`,
			contains: []string{"not a JSON object"},
		},
		{
			name:     "array document",
			doc:      `[]`,
			contains: []string{"not a JSON object"},
		},
		{
			name:     "missing top level fields",
			doc:      `{}`,
			contains: []string{"network: required field is missing", "chainId: required field is missing", "contractList: required field is missing"},
		},
		{
			name:     "numeric chain id",
			doc:      `{"network":"mxc_testnet","chainId":5167004,"contractList":[]}`,
			contains: []string{"chainId: expected string, got number"},
		},
		{
			name:     "null contract list",
			doc:      `{"network":"mxc_testnet","chainId":"1","contractList":null}`,
			contains: []string{"contractList: expected array"},
		},
		{
			name:     "record missing fields",
			doc:      `{"network":"n","chainId":"1","contractList":[{"contractFactoryName":"A"}]}`,
			contains: []string{"contractList[0].deployer: required field is missing", "contractList[0].expectedName2: required field is missing"},
		},
		{
			name:     "record wrong type",
			doc:      `{"network":"n","chainId":"1","contractList":[{"deployer":"d","contractFactoryName":"A","contractName2":null,"timeUpdated":"t","proxyAddress":"p","impAddress":"i","expectedName2":true}]}`,
			contains: []string{"contractList[0].contractName2: expected string, got null", "contractList[0].expectedName2: expected string, got boolean"},
		},
		{
			name:     "record not an object",
			doc:      `{"network":"n","chainId":"1","contractList":["A"]}`,
			contains: []string{"contractList[0]: expected object"},
		},
		{
			name: "duplicate contract name",
			doc: `{"network":"n","chainId":"1","contractList":[
				{"deployer":"d","contractFactoryName":"A","contractName2":"","timeUpdated":"t","proxyAddress":"p","impAddress":"i","expectedName2":""},
				{"deployer":"d","contractFactoryName":"A","contractName2":"","timeUpdated":"t","proxyAddress":"p","impAddress":"i","expectedName2":""}]}`,
			contains: []string{"'A' already recorded at index 0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLedger("deploy/n.json", []byte(tt.doc))
			require.Error(t, err)

			var malformed *domain.MalformedLedgerError
			require.True(t, errors.As(err, &malformed))
			assert.Equal(t, "deploy/n.json", malformed.Path)
			for _, want := range tt.contains {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}

func TestParseLedger_IgnoresUnknownFields(t *testing.T) {
	doc := `{"network":"n","chainId":"1","contractList":[],"comment":"kept by hand"}`
	ledger, err := ParseLedger("x.json", []byte(doc))
	require.NoError(t, err)
	assert.Equal(t, "n", ledger.Network)
}
