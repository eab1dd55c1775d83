package artifacts

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/mxc-foundation/zkdeploy/internal/domain"
	"github.com/mxc-foundation/zkdeploy/internal/domain/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeArtifact(t *testing.T, root, source, name, bytecode string) {
	t.Helper()
	dir := filepath.Join(root, "artifacts", source)
	require.NoError(t, os.MkdirAll(dir, 0755))
	content := `{
  "_format": "hh-sol-artifact-1",
  "contractName": "` + name + `",
  "sourceName": "` + source + `",
  "abi": [{"type":"function","name":"name2","inputs":[],"outputs":[{"name":"","type":"string"}],"stateMutability":"view"}],
  "bytecode": "` + bytecode + `",
  "deployedBytecode": "0x",
  "linkReferences": {},
  "deployedLinkReferences": {}
}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".json"), []byte(content), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".dbg.json"), []byte(`{"_format":"hh-sol-dbg-1"}`), 0644))
}

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	root := t.TempDir()
	writeArtifact(t, root, "contracts/ZkCenter.sol", "ZkCenter", "0x6080")
	writeArtifact(t, root, "contracts/tokens/SgxMinerToken.sol", "SgxMinerToken", "0x6080")
	writeArtifact(t, root, "@openzeppelin/contracts/proxy/ERC1967/ERC1967Proxy.sol", "ERC1967Proxy", "0x6080")
	writeArtifact(t, root, "contracts/Ownable.sol", "Ownable", "0x6080")
	writeArtifact(t, root, "@openzeppelin/contracts/access/Ownable.sol", "Ownable", "0x")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "artifacts", "build-info"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "artifacts", "build-info", "abc.json"), []byte(`{}`), 0644))

	cfg := &config.RuntimeConfig{ProjectRoot: root}
	return NewRepository(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestRepository_GetContract(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	t.Run("by name", func(t *testing.T) {
		contract, err := repo.GetContract(ctx, "ZkCenter")
		require.NoError(t, err)
		assert.Equal(t, "contracts/ZkCenter.sol", contract.SourceName)
		assert.True(t, contract.Artifact.Deployable())
		assert.False(t, contract.Artifact.NeedsLinking())
	})

	t.Run("dependency artifact", func(t *testing.T) {
		contract, err := repo.GetContract(ctx, "ERC1967Proxy")
		require.NoError(t, err)
		assert.Equal(t, "@openzeppelin/contracts/proxy/ERC1967/ERC1967Proxy.sol:ERC1967Proxy", contract.Artifact.FullyQualifiedName())
	})

	t.Run("duplicate names prefer project sources", func(t *testing.T) {
		contract, err := repo.GetContract(ctx, "Ownable")
		require.NoError(t, err)
		assert.Equal(t, "contracts/Ownable.sol", contract.SourceName)
	})

	t.Run("fully qualified name", func(t *testing.T) {
		contract, err := repo.GetContract(ctx, "@openzeppelin/contracts/access/Ownable.sol:Ownable")
		require.NoError(t, err)
		assert.False(t, contract.Artifact.Deployable())
	})

	t.Run("unknown name suggests", func(t *testing.T) {
		_, err := repo.GetContract(ctx, "ZkCntr")
		assert.ErrorIs(t, err, domain.ErrArtifactNotFound)
		var unknown *domain.UnknownNameError
		require.ErrorAs(t, err, &unknown)
		assert.Contains(t, unknown.Suggestions, "ZkCenter")
	})

	t.Run("names", func(t *testing.T) {
		assert.Equal(t, []string{"ERC1967Proxy", "Ownable", "SgxMinerToken", "ZkCenter"}, repo.Names())
	})
}

func TestRepository_MissingDirectory(t *testing.T) {
	repo := NewRepository(&config.RuntimeConfig{ProjectRoot: t.TempDir()}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	_, err := repo.GetContract(context.Background(), "ZkCenter")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hardhat compile")
}
