package usecase

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/mxc-foundation/zkdeploy/internal/domain/config"
)

// InitProject handles project initialization
type InitProject struct {
	fileWriter FileWriter
	progress   ProgressSink
}

// NewInitProject creates a new init project use case
func NewInitProject(fileWriter FileWriter, progress ProgressSink) *InitProject {
	return &InitProject{
		fileWriter: fileWriter,
		progress:   progress,
	}
}

// InitProjectResult contains the result of project initialization
type InitProjectResult struct {
	ConfigCreated      bool
	PlanCreated        bool
	EnvExampleCreated  bool
	AlreadyInitialized bool
	Steps              []InitStep
}

// InitStep represents a step in the initialization process
type InitStep struct {
	Name    string
	Success bool
	Message string
	Error   error
}

// Execute scaffolds zkdeploy.toml, the default setup plan and .env.example in root
func (i *InitProject) Execute(ctx context.Context, root string) (*InitProjectResult, error) {
	result := &InitProjectResult{
		Steps: []InitStep{},
	}

	step, created := i.createFile(ctx, "Create zkdeploy.toml", filepath.Join(root, config.ProjectFile), defaultProjectToml)
	result.Steps = append(result.Steps, step)
	if step.Error != nil {
		return result, step.Error
	}
	result.ConfigCreated = created
	result.AlreadyInitialized = !created

	if err := i.fileWriter.EnsureDirectory(ctx, filepath.Join(root, config.DefaultLedgerDir)); err != nil {
		step := InitStep{
			Name:  "Create ledger directory",
			Error: fmt.Errorf("failed to create %s: %w", config.DefaultLedgerDir, err),
		}
		result.Steps = append(result.Steps, step)
		return result, step.Error
	}

	step, created = i.createFile(ctx, "Create setup plan", filepath.Join(root, config.DefaultPlanFile), DefaultSetupPlan)
	result.Steps = append(result.Steps, step)
	if step.Error != nil {
		return result, step.Error
	}
	result.PlanCreated = created

	step, created = i.createFile(ctx, "Create .env.example", filepath.Join(root, ".env.example"), defaultEnvExample)
	result.Steps = append(result.Steps, step)
	if step.Error != nil {
		return result, step.Error
	}
	result.EnvExampleCreated = created

	return result, nil
}

// createFile writes content to path unless the file already exists
func (i *InitProject) createFile(ctx context.Context, name, path, content string) (InitStep, bool) {
	exists, err := i.fileWriter.FileExists(ctx, path)
	if err != nil {
		return InitStep{Name: name, Error: fmt.Errorf("failed to check %s: %w", path, err)}, false
	}
	if exists {
		return InitStep{Name: name, Success: true, Message: fmt.Sprintf("%s already exists", filepath.Base(path))}, false
	}

	if err := i.fileWriter.WriteFile(ctx, path, content); err != nil {
		return InitStep{Name: name, Error: fmt.Errorf("failed to write %s: %w", path, err)}, false
	}
	i.progress.Info(fmt.Sprintf("Created %s", path))

	return InitStep{Name: name, Success: true, Message: fmt.Sprintf("Created %s", filepath.Base(path))}, true
}

const defaultProjectToml = `[project]
artifacts = "artifacts"
ledger_dir = "deploy"
plan = "deploy/zkcenter.yaml"
proxy_kind = "transparent"

[networks.mxc_mainnet]
rpc_url = "${MXC_MAINNET_RPC_URL}"
chain_id = 18686
confirm = true

[networks.mxc_testnet]
rpc_url = "${MXC_TESTNET_RPC_URL}"
chain_id = 5167004

[networks.arbitrum_sepolia]
rpc_url = "${ARBITRUM_SEPOLIA_RPC_URL}"
chain_id = 421614

[networks.arbitrum_sepolia.addresses]
TaikoL1 = "0x6a5c9E342d5FB5f5EF8a799f0cAAB2678C939b0B"

[networks.arbitrum_one]
rpc_url = "${ARBITRUM_ONE_RPC_URL}"
chain_id = 42161
confirm = true

[networks.arbitrum_one.addresses]
TaikoL1 = "0x54D8864e8855A7B66eE42B8F2Eaa0F2E06bd641a"

[networks.holesky]
rpc_url = "${HOLESKY_RPC_URL}"
chain_id = 17000

[networks.ethereum]
rpc_url = "${ETHEREUM_RPC_URL}"
chain_id = 1
confirm = true
`

// DefaultSetupPlan deploys the ZkCenter suite and links the tokens to it
const DefaultSetupPlan = `name: zkcenter
steps:
  - deploy: SgxMinerToken
    args: [SgxMinerToken, ZkMiner]
  - deploy: MiningGroupToken
    args: [MiningGroupToken, ZkGroup]
  - resolve: taiko_token
    registry: "${address.TaikoL1}"
    as: MxcToken
  - resolve: staking
    registry: "${address.TaikoL1}"
    as: L1Staking
  - deploy: ZkCenter
    args:
      - "${ledger.SgxMinerToken}"
      - "${ledger.MiningGroupToken}"
      - "${resolved.L1Staking}"
      - "${resolved.MxcToken}"
  - call: SgxMinerToken
    method: setZkCenter
    args: ["${ledger.ZkCenter}"]
  - call: MiningGroupToken
    method: setZkCenter
    args: ["${ledger.ZkCenter}"]
`

const defaultEnvExample = `# Deployer key (hex, 0x prefix optional)
PRIVATE_KEY=

MXC_MAINNET_RPC_URL=https://rpc.mxc.com
MXC_TESTNET_RPC_URL=https://geneva-rpc.moonchain.com
ARBITRUM_SEPOLIA_RPC_URL=https://sepolia-rollup.arbitrum.io/rpc
ARBITRUM_ONE_RPC_URL=https://arb1.arbitrum.io/rpc
HOLESKY_RPC_URL=https://ethereum-holesky-rpc.publicnode.com
ETHEREUM_RPC_URL=https://ethereum-rpc.publicnode.com

# Used by: zkdeploy call ZkCenter setController '${env.CONTROLLER_ADDRESS}' true
CONTROLLER_ADDRESS=
`
