package blockchain

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	contractabi "github.com/mxc-foundation/zkdeploy/internal/adapters/abi"
	"github.com/mxc-foundation/zkdeploy/internal/domain"
	"github.com/mxc-foundation/zkdeploy/internal/domain/config"
	"github.com/mxc-foundation/zkdeploy/internal/domain/models"
	"github.com/mxc-foundation/zkdeploy/internal/usecase"
)

// ProxyDeployer deploys implementations behind ERC-1967 proxies and upgrades them
type ProxyDeployer struct {
	client     *Client
	artifacts  usecase.ArtifactRepository
	kind       domain.ProxyKind
	uupsProxy  string
	transProxy string
	log        *slog.Logger
}

// NewProxyDeployer creates a deployer using the project's proxy settings
func NewProxyDeployer(cfg *config.RuntimeConfig, client *Client, artifacts usecase.ArtifactRepository, log *slog.Logger) (*ProxyDeployer, error) {
	settings := config.ProjectSettings{}
	if cfg.Project != nil {
		settings = cfg.Project.Project
	}

	kind, err := domain.ParseProxyKind(settings.ProxyKind)
	if err != nil {
		return nil, err
	}

	d := &ProxyDeployer{
		client:     client,
		artifacts:  artifacts,
		kind:       kind,
		uupsProxy:  settings.ProxyArtifact,
		transProxy: settings.TransparentProxyArtifact,
		log:        log.With("component", "ProxyDeployer"),
	}
	if d.uupsProxy == "" {
		d.uupsProxy = config.DefaultProxyArtifact
	}
	if d.transProxy == "" {
		d.transProxy = config.DefaultTransparentProxyArtifact
	}
	return d, nil
}

// compiled is a deployable artifact with its parsed ABI
type compiled struct {
	artifact *models.Artifact
	abi      *abi.ABI
	bytecode []byte
}

func (d *ProxyDeployer) load(ctx context.Context, name string) (*compiled, error) {
	contract, err := d.artifacts.GetContract(ctx, name)
	if err != nil {
		return nil, err
	}
	artifact := contract.Artifact
	if !artifact.Deployable() {
		return nil, fmt.Errorf("%s is abstract or an interface (no bytecode)", artifact.FullyQualifiedName())
	}
	if artifact.NeedsLinking() {
		return nil, fmt.Errorf("%s requires library linking, which is not supported", artifact.FullyQualifiedName())
	}

	parsed, err := contractabi.ParseArtifactABI(artifact)
	if err != nil {
		return nil, err
	}
	return &compiled{
		artifact: artifact,
		abi:      parsed,
		bytecode: common.FromHex(artifact.Bytecode),
	}, nil
}

func (d *ProxyDeployer) deployImplementation(ctx context.Context, signer usecase.Signer, impl *compiled) (common.Address, error) {
	d.log.Info("deploying implementation", "contract", impl.artifact.ContractName)
	address, _, err := d.client.deploy(ctx, signer, impl.abi, impl.bytecode)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to deploy implementation %s: %w", impl.artifact.ContractName, err)
	}
	d.log.Info("implementation deployed", "contract", impl.artifact.ContractName, "address", address.Hex())
	return address, nil
}

// DeployNew deploys an implementation of contractName and a proxy whose
// constructor calls initialize(args...).
func (d *ProxyDeployer) DeployNew(ctx context.Context, signer usecase.Signer, contractName string, args []string) (*domain.ProxyDeployment, error) {
	impl, err := d.load(ctx, contractName)
	if err != nil {
		return nil, err
	}

	initData, err := contractabi.PackInitializer(impl.abi, args)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", contractName, err)
	}

	proxyName := d.uupsProxy
	if d.kind == domain.ProxyKindTransparent {
		proxyName = d.transProxy
	}
	proxy, err := d.load(ctx, proxyName)
	if err != nil {
		return nil, fmt.Errorf("proxy artifact: %w", err)
	}

	implAddress, err := d.deployImplementation(ctx, signer, impl)
	if err != nil {
		return nil, err
	}

	var params []interface{}
	switch d.kind {
	case domain.ProxyKindUUPS:
		params = []interface{}{implAddress, initData}
	case domain.ProxyKindTransparent:
		params = []interface{}{implAddress, signer.Address(), initData}
	}

	d.log.Info("deploying proxy", "kind", d.kind, "artifact", proxyName)
	proxyAddress, receipt, err := d.client.deploy(ctx, signer, proxy.abi, proxy.bytecode, params...)
	if err != nil {
		return nil, fmt.Errorf("failed to deploy %s proxy for %s: %w", d.kind, contractName, err)
	}

	events := contractabi.DecodeReceiptEvents(impl.abi, receipt)
	d.log.Debug("proxy deployed", "proxy", proxyAddress.Hex(), "events", contractabi.EventNames(events))

	return &domain.ProxyDeployment{
		Proxy:          proxyAddress,
		Implementation: d.confirmImplementation(ctx, proxyAddress, implAddress),
		TxHash:         receipt.TxHash,
	}, nil
}

// UpgradeInPlace deploys a fresh implementation of contractName and points
// proxy at it. The proxy address never changes. Transparent proxies are
// upgraded through the ProxyAdmin stored in their admin slot.
func (d *ProxyDeployer) UpgradeInPlace(ctx context.Context, signer usecase.Signer, proxy common.Address, contractName string) (*domain.ProxyDeployment, error) {
	impl, err := d.load(ctx, contractName)
	if err != nil {
		return nil, err
	}

	admin, err := d.client.ReadAdmin(ctx, proxy)
	if err != nil {
		return nil, err
	}

	implAddress, err := d.deployImplementation(ctx, signer, impl)
	if err != nil {
		return nil, err
	}

	var (
		to       common.Address
		calldata []byte
	)
	if admin == (common.Address{}) {
		to = proxy
		calldata, err = funcUpgradeToAndCall.EncodeArgs(implAddress, []byte{})
	} else {
		to = admin
		calldata, err = funcUpgradeAndCall.EncodeArgs(proxy, implAddress, []byte{})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode upgrade call: %w", err)
	}

	d.log.Info("upgrading proxy", "proxy", proxy.Hex(), "implementation", implAddress.Hex(), "via", to.Hex())
	receipt, err := d.client.transact(ctx, signer, to, calldata)
	if err != nil {
		return nil, fmt.Errorf("failed to upgrade %s at %s: %w", contractName, proxy.Hex(), err)
	}

	if upgraded := contractabi.FilterEvents(contractabi.DecodeReceiptEvents(impl.abi, receipt), "Upgraded"); len(upgraded) == 0 {
		d.log.Warn("upgrade transaction emitted no Upgraded event", "proxy", proxy.Hex(), "tx", receipt.TxHash.Hex())
	}

	// A mined upgrade that left the slot alone did not upgrade anything
	onChain, err := d.client.readSlotAddress(ctx, proxy, ImplementationSlot)
	if err != nil {
		d.log.Warn("failed to read implementation slot", "proxy", proxy.Hex(), "error", err)
		onChain = implAddress
	}
	if onChain != implAddress {
		return nil, fmt.Errorf("upgrade of %s at %s left the implementation at %s instead of %s: %w",
			contractName, proxy.Hex(), onChain.Hex(), implAddress.Hex(), domain.ErrTransactionFailed)
	}

	return &domain.ProxyDeployment{
		Proxy:          proxy,
		Implementation: implAddress,
		TxHash:         receipt.TxHash,
	}, nil
}

// confirmImplementation reads the implementation slot of a new proxy back.
// The slot wins when it disagrees with what was just deployed.
func (d *ProxyDeployer) confirmImplementation(ctx context.Context, proxy, deployed common.Address) common.Address {
	onChain, err := d.client.ReadImplementation(ctx, proxy)
	if err != nil {
		d.log.Warn("failed to read implementation slot", "proxy", proxy.Hex(), "error", err)
		return deployed
	}
	if onChain != deployed {
		d.log.Warn("implementation slot differs from deployed implementation",
			"proxy", proxy.Hex(), "slot", onChain.Hex(), "deployed", deployed.Hex())
	}
	return onChain
}

var _ usecase.ProxyDeployer = (*ProxyDeployer)(nil)
