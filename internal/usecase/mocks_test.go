package usecase_test

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/mxc-foundation/zkdeploy/internal/domain"
	"github.com/mxc-foundation/zkdeploy/internal/domain/models"
	"github.com/mxc-foundation/zkdeploy/internal/usecase"
	"github.com/stretchr/testify/mock"
)

// memoryLedgerStore keeps the ledger in memory and counts saves
type memoryLedgerStore struct {
	ledger  *models.DeploymentLedger
	loadErr error
	saveErr error
	saves   int
}

func (s *memoryLedgerStore) Path() string { return "deploy/test.json" }

func (s *memoryLedgerStore) Load(ctx context.Context) (*models.DeploymentLedger, bool, error) {
	if s.loadErr != nil {
		return nil, false, s.loadErr
	}
	return s.ledger, s.ledger != nil, nil
}

func (s *memoryLedgerStore) Save(ctx context.Context, ledger *models.DeploymentLedger) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.ledger = ledger
	s.saves++
	return nil
}

// staticIdentity is a fixed network identity
type staticIdentity struct {
	name    string
	chainID int64
	err     error
}

func (i staticIdentity) ChainID(ctx context.Context) (*big.Int, error) {
	if i.err != nil {
		return nil, i.err
	}
	return big.NewInt(i.chainID), nil
}

func (i staticIdentity) NetworkName() string { return i.name }

// fakeSigner has an address but never signs
type fakeSigner struct {
	addr common.Address
}

func (s fakeSigner) Address() common.Address { return s.addr }

func (s fakeSigner) TransactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	return &bind.TransactOpts{From: s.addr, Context: ctx}, nil
}

// MockProxyDeployer is a mock implementation of ProxyDeployer
type MockProxyDeployer struct {
	mock.Mock
}

func (m *MockProxyDeployer) DeployNew(ctx context.Context, signer usecase.Signer, contractName string, args []string) (*domain.ProxyDeployment, error) {
	ret := m.Called(ctx, signer, contractName, args)
	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}
	return ret.Get(0).(*domain.ProxyDeployment), ret.Error(1)
}

func (m *MockProxyDeployer) UpgradeInPlace(ctx context.Context, signer usecase.Signer, proxy common.Address, contractName string) (*domain.ProxyDeployment, error) {
	ret := m.Called(ctx, signer, proxy, contractName)
	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}
	return ret.Get(0).(*domain.ProxyDeployment), ret.Error(1)
}

// MockFingerprintReader is a mock implementation of FingerprintReader
type MockFingerprintReader struct {
	mock.Mock
}

func (m *MockFingerprintReader) ReadFingerprint(ctx context.Context, proxy common.Address) (string, error) {
	ret := m.Called(ctx, proxy)
	return ret.String(0), ret.Error(1)
}

// MockChainInspector is a mock implementation of ChainInspector
type MockChainInspector struct {
	mock.Mock
}

func (m *MockChainInspector) BlockNumber(ctx context.Context) (uint64, error) {
	ret := m.Called(ctx)
	return ret.Get(0).(uint64), ret.Error(1)
}

func (m *MockChainInspector) BalanceAt(ctx context.Context, account common.Address) (*big.Int, error) {
	ret := m.Called(ctx, account)
	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}
	return ret.Get(0).(*big.Int), ret.Error(1)
}

// MockAddressRegistry is a mock implementation of AddressRegistry
type MockAddressRegistry struct {
	mock.Mock
}

func (m *MockAddressRegistry) Resolve(ctx context.Context, registry common.Address, name string, allowZero bool) (common.Address, error) {
	ret := m.Called(ctx, registry, name, allowZero)
	return ret.Get(0).(common.Address), ret.Error(1)
}

func (m *MockAddressRegistry) AddressManager(ctx context.Context, registry common.Address) (common.Address, error) {
	ret := m.Called(ctx, registry)
	return ret.Get(0).(common.Address), ret.Error(1)
}

func (m *MockAddressRegistry) SetAddress(ctx context.Context, signer usecase.Signer, manager common.Address, chainID uint64, name string, target common.Address) (common.Hash, error) {
	ret := m.Called(ctx, signer, manager, chainID, name, target)
	return ret.Get(0).(common.Hash), ret.Error(1)
}

// MockContractCaller is a mock implementation of ContractCaller
type MockContractCaller struct {
	mock.Mock
}

func (m *MockContractCaller) Transact(ctx context.Context, signer usecase.Signer, contractName string, at common.Address, method string, args []string) (*domain.CallResult, error) {
	ret := m.Called(ctx, signer, contractName, at, method, args)
	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}
	return ret.Get(0).(*domain.CallResult), ret.Error(1)
}

// MockFileWriter is a mock implementation of FileWriter
type MockFileWriter struct {
	mock.Mock
}

func (m *MockFileWriter) WriteFile(ctx context.Context, path string, content string) error {
	return m.Called(ctx, path, content).Error(0)
}

func (m *MockFileWriter) FileExists(ctx context.Context, path string) (bool, error) {
	ret := m.Called(ctx, path)
	return ret.Bool(0), ret.Error(1)
}

func (m *MockFileWriter) EnsureDirectory(ctx context.Context, path string) error {
	return m.Called(ctx, path).Error(0)
}

// MockProgressSink records progress events
type MockProgressSink struct {
	events []usecase.ProgressEvent
	infos  []string
}

func (m *MockProgressSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	m.events = append(m.events, event)
}

func (m *MockProgressSink) Info(message string) { m.infos = append(m.infos, message) }

func (m *MockProgressSink) Error(message string) {}
