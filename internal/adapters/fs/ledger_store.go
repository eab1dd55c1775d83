package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/mxc-foundation/zkdeploy/internal/domain"
	"github.com/mxc-foundation/zkdeploy/internal/domain/config"
	"github.com/mxc-foundation/zkdeploy/internal/domain/models"
	"github.com/mxc-foundation/zkdeploy/internal/usecase"
)

// LedgerStoreAdapter implements LedgerStore with one JSON file per network
type LedgerStoreAdapter struct {
	path string
}

// NewLedgerStoreAdapter creates a new LedgerStoreAdapter for the selected network.
// Without a network the store has no path and every operation fails with ErrNoNetwork.
func NewLedgerStoreAdapter(cfg *config.RuntimeConfig) *LedgerStoreAdapter {
	return &LedgerStoreAdapter{path: LedgerPath(cfg)}
}

// LedgerPath is <project root>/<ledger_dir>/<network>.json
func LedgerPath(cfg *config.RuntimeConfig) string {
	if cfg == nil || cfg.Network == nil {
		return ""
	}
	dir := config.DefaultLedgerDir
	if cfg.Project != nil && cfg.Project.Project.LedgerDir != "" {
		dir = cfg.Project.Project.LedgerDir
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(cfg.ProjectRoot, dir)
	}
	return filepath.Join(dir, cfg.Network.Name+".json")
}

// Path returns the ledger file path
func (s *LedgerStoreAdapter) Path() string {
	return s.path
}

// Load reads and validates the ledger file. found is false if the file does not exist.
func (s *LedgerStoreAdapter) Load(_ context.Context) (*models.DeploymentLedger, bool, error) {
	if s.path == "" {
		return nil, false, domain.ErrNoNetwork
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read ledger file: %w", err)
	}

	ledger, err := ParseLedger(s.path, data)
	if err != nil {
		return nil, false, err
	}
	return ledger, true, nil
}

// Save writes the ledger to disk, creating the directory if needed.
func (s *LedgerStoreAdapter) Save(_ context.Context, ledger *models.DeploymentLedger) error {
	if s.path == "" {
		return domain.ErrNoNetwork
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create ledger directory: %w", err)
	}

	if ledger.Contracts == nil {
		ledger.Contracts = []*models.ContractRecord{}
	}

	data, err := json.MarshalIndent(ledger, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal ledger: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write ledger file: %w", err)
	}

	return nil
}

var recordFields = []string{
	"deployer",
	"contractFactoryName",
	"contractName2",
	"timeUpdated",
	"proxyAddress",
	"impAddress",
	"expectedName2",
}

// ParseLedger decodes a ledger document. Every missing or mistyped field is
// reported in a single MalformedLedgerError; nothing is coerced.
func ParseLedger(path string, data []byte) (*models.DeploymentLedger, error) {
	var violations *multierror.Error

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		violations = multierror.Append(violations, fmt.Errorf("not a JSON object: %w", err))
		return nil, &domain.MalformedLedgerError{Path: path, Violations: violations}
	}
	if doc == nil {
		violations = multierror.Append(violations, fmt.Errorf("not a JSON object"))
		return nil, &domain.MalformedLedgerError{Path: path, Violations: violations}
	}

	ledger := &models.DeploymentLedger{Contracts: []*models.ContractRecord{}}

	if err := requireString(doc, "network", &ledger.Network); err != nil {
		violations = multierror.Append(violations, err)
	}
	if err := requireString(doc, "chainId", &ledger.ChainID); err != nil {
		violations = multierror.Append(violations, err)
	}

	raw, ok := doc["contractList"]
	var items []json.RawMessage
	switch {
	case !ok:
		violations = multierror.Append(violations, fmt.Errorf("contractList: required field is missing"))
	case json.Unmarshal(raw, &items) != nil || items == nil:
		violations = multierror.Append(violations, fmt.Errorf("contractList: expected array"))
	}

	seen := make(map[string]int)
	for i, item := range items {
		record, err := parseRecord(i, item)
		if err != nil {
			violations = multierror.Append(violations, err)
			continue
		}
		if prev, dup := seen[record.ContractName]; dup {
			violations = multierror.Append(violations, fmt.Errorf("contractList[%d].contractFactoryName: '%s' already recorded at index %d", i, record.ContractName, prev))
			continue
		}
		seen[record.ContractName] = i
		ledger.Contracts = append(ledger.Contracts, record)
	}

	if violations.ErrorOrNil() != nil {
		return nil, &domain.MalformedLedgerError{Path: path, Violations: violations}
	}
	return ledger, nil
}

func parseRecord(index int, raw json.RawMessage) (*models.ContractRecord, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
		return nil, fmt.Errorf("contractList[%d]: expected object", index)
	}

	values := make(map[string]string, len(recordFields))
	var violations *multierror.Error
	for _, field := range recordFields {
		var v string
		if err := requireString(obj, field, &v); err != nil {
			violations = multierror.Append(violations, fmt.Errorf("contractList[%d].%w", index, err))
			continue
		}
		values[field] = v
	}
	if err := violations.ErrorOrNil(); err != nil {
		return nil, err
	}

	return &models.ContractRecord{
		DeployerAddress:         values["deployer"],
		ContractName:            values["contractFactoryName"],
		VerificationFingerprint: values["contractName2"],
		LastUpdated:             values["timeUpdated"],
		ProxyAddress:            values["proxyAddress"],
		ImplementationAddress:   values["impAddress"],
		ExpectedFingerprint:     values["expectedName2"],
	}, nil
}

// requireString decodes obj[key] into out, which must be a JSON string
func requireString(obj map[string]json.RawMessage, key string, out *string) error {
	raw, ok := obj[key]
	if !ok {
		return fmt.Errorf("%s: required field is missing", key)
	}
	var s *string
	if err := json.Unmarshal(raw, &s); err != nil || s == nil {
		return fmt.Errorf("%s: expected string, got %s", key, jsonKind(raw))
	}
	*out = *s
	return nil
}

func jsonKind(raw json.RawMessage) string {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return "invalid JSON"
	}
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return "string"
	}
}

// Ensure LedgerStoreAdapter implements LedgerStore
var _ usecase.LedgerStore = (*LedgerStoreAdapter)(nil)
