package usecase

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/hashicorp/go-multierror"
	"github.com/mxc-foundation/zkdeploy/internal/domain"
	"github.com/mxc-foundation/zkdeploy/internal/domain/models"
)

var refPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// setupScope holds the values ${...} references resolve against while a plan runs
type setupScope struct {
	ledger    *models.DeploymentLedger
	addresses map[string]string
	resolved  map[string]common.Address
	signer    common.Address
	chainID   string
	lookupEnv func(string) (string, bool)
}

func newSetupScope(ledger *models.DeploymentLedger, addresses map[string]string, signer common.Address, chainID string) *setupScope {
	return &setupScope{
		ledger:    ledger,
		addresses: addresses,
		resolved:  make(map[string]common.Address),
		signer:    signer,
		chainID:   chainID,
		lookupEnv: os.LookupEnv,
	}
}

// expand replaces every reference in s
func (s *setupScope) expand(in string) (string, error) {
	var firstErr error
	out := refPattern.ReplaceAllStringFunc(in, func(match string) string {
		ref := refPattern.FindStringSubmatch(match)[1]
		value, err := s.lookup(ref)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		return value
	})
	if firstErr != nil {
		return "", firstErr
	}
	return out, nil
}

func (s *setupScope) expandAll(in []string) ([]string, error) {
	out := make([]string, 0, len(in))
	for _, arg := range in {
		v, err := s.expand(arg)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// address expands in and requires the result to be a hex address
func (s *setupScope) address(in string) (common.Address, error) {
	v, err := s.expand(in)
	if err != nil {
		return common.Address{}, err
	}
	if !common.IsHexAddress(v) {
		return common.Address{}, fmt.Errorf("'%s' is not an address", in)
	}
	return common.HexToAddress(v), nil
}

func (s *setupScope) lookup(ref string) (string, error) {
	switch ref {
	case "signer":
		return s.signer.Hex(), nil
	case "chainId":
		return s.chainID, nil
	}

	namespace, key, ok := strings.Cut(ref, ".")
	if !ok || key == "" {
		return "", fmt.Errorf("invalid reference ${%s}", ref)
	}

	switch namespace {
	case "ledger":
		name, field, _ := strings.Cut(key, ".")
		var record *models.ContractRecord
		if s.ledger != nil {
			record = s.ledger.GetRecord(name)
		}
		if record == nil {
			return "", fmt.Errorf("${%s}: %s is not deployed: %w", ref, name, domain.ErrMissingPrerequisite)
		}
		switch field {
		case "", "proxy":
			return record.ProxyAddress, nil
		case "implementation":
			return record.ImplementationAddress, nil
		default:
			return "", fmt.Errorf("invalid reference ${%s}: unknown field '%s'", ref, field)
		}
	case "resolved":
		addr, ok := s.resolved[key]
		if !ok {
			return "", fmt.Errorf("${%s}: nothing resolved as '%s': %w", ref, key, domain.ErrMissingPrerequisite)
		}
		return addr.Hex(), nil
	case "address":
		addr, ok := s.addresses[key]
		if !ok || addr == "" {
			return "", fmt.Errorf("${%s}: no address '%s' configured for this network: %w", ref, key, domain.ErrMissingPrerequisite)
		}
		return addr, nil
	case "env":
		v, ok := s.lookupEnv(key)
		if !ok || v == "" {
			return "", fmt.Errorf("${%s}: environment variable %s is not set: %w", ref, key, domain.ErrMissingPrerequisite)
		}
		return v, nil
	default:
		return "", fmt.Errorf("invalid reference ${%s}: unknown namespace '%s'", ref, namespace)
	}
}

// checkPlan verifies every reference of the plan can be satisfied, taking into
// account contracts and aliases that earlier steps will produce.
func (s *setupScope) checkPlan(plan *models.SetupPlan) error {
	var result *multierror.Error

	deployed := make(map[string]bool)
	if s.ledger != nil {
		for _, name := range s.ledger.Names() {
			deployed[name] = true
		}
	}
	aliases := make(map[string]bool)

	for i, step := range plan.Steps {
		var refs []string
		refs = append(refs, step.Args...)
		switch step.Kind() {
		case models.StepResolve:
			refs = append(refs, step.Registry)
		case models.StepRegister:
			refs = append(refs, step.Registry, step.Target)
		case models.StepCall:
			if !deployed[step.Call] {
				result = multierror.Append(result, fmt.Errorf("step %d (%s): %s is not deployed: %w", i+1, step, step.Call, domain.ErrMissingPrerequisite))
			}
		}

		for _, arg := range refs {
			for _, m := range refPattern.FindAllStringSubmatch(arg, -1) {
				if err := s.checkRef(m[1], deployed, aliases); err != nil {
					result = multierror.Append(result, fmt.Errorf("step %d (%s): %w", i+1, step, err))
				}
			}
		}

		switch step.Kind() {
		case models.StepDeploy:
			deployed[step.Deploy] = true
		case models.StepResolve:
			aliases[step.As] = true
		}
	}

	return result.ErrorOrNil()
}

func (s *setupScope) checkRef(ref string, deployed, aliases map[string]bool) error {
	namespace, key, _ := strings.Cut(ref, ".")
	switch namespace {
	case "ledger":
		name, _, _ := strings.Cut(key, ".")
		if !deployed[name] {
			return fmt.Errorf("${%s}: %s is not deployed by an earlier step: %w", ref, name, domain.ErrMissingPrerequisite)
		}
		return nil
	case "resolved":
		if !aliases[key] {
			return fmt.Errorf("${%s}: no earlier step resolves '%s': %w", ref, key, domain.ErrMissingPrerequisite)
		}
		return nil
	default:
		_, err := s.lookup(ref)
		return err
	}
}
