package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Sentinel errors for domain operations
var (
	// ErrNotFound is returned when a requested resource doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrNetworkMismatch is returned when a ledger file belongs to a different network or chain
	ErrNetworkMismatch = errors.New("network mismatch")

	// ErrNoNetwork is returned when a command needs a network but none was selected
	ErrNoNetwork = errors.New("no network selected (use --network)")

	// ErrUnknownNetwork is returned when the selected network is not configured
	ErrUnknownNetwork = errors.New("unknown network")

	// ErrZeroBalance is returned by preflight when the signer cannot pay for gas
	ErrZeroBalance = errors.New("balance is 0")

	// ErrNoSigner is returned when a transaction is requested without PRIVATE_KEY
	ErrNoSigner = errors.New("no signer configured (set PRIVATE_KEY)")

	// ErrMissingPrerequisite is returned when a step needs an address that is not available
	ErrMissingPrerequisite = errors.New("missing prerequisite")

	// ErrArtifactNotFound is returned when no compiled artifact exists for a contract
	ErrArtifactNotFound = errors.New("artifact not found")

	// ErrTransactionFailed is returned when a mined transaction reverted
	ErrTransactionFailed = errors.New("transaction failed")
)

// MalformedLedgerError reports every schema violation found in a ledger file.
type MalformedLedgerError struct {
	Path       string
	Violations *multierror.Error
}

func (e *MalformedLedgerError) Error() string {
	if e.Violations == nil || len(e.Violations.Errors) == 0 {
		return fmt.Sprintf("%s: malformed ledger", e.Path)
	}
	msgs := make([]string, 0, len(e.Violations.Errors))
	for _, v := range e.Violations.Errors {
		msgs = append(msgs, "  - "+v.Error())
	}
	return fmt.Sprintf("%s: malformed ledger:\n%s", e.Path, strings.Join(msgs, "\n"))
}

func (e *MalformedLedgerError) Unwrap() error {
	if e.Violations == nil {
		return nil
	}
	return e.Violations.ErrorOrNil()
}

// UnknownNameError carries fuzzy suggestions for a name that did not match anything.
type UnknownNameError struct {
	Kind        string
	Name        string
	Suggestions []string
	Err         error
}

func (e *UnknownNameError) Error() string {
	msg := fmt.Sprintf("%s '%s' not found", e.Kind, e.Name)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean: %s?)", strings.Join(e.Suggestions, ", "))
	}
	return msg
}

func (e *UnknownNameError) Unwrap() error {
	return e.Err
}
