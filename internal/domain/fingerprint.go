package domain

// Fingerprint is the self-reported identity string read back from a deployed
// proxy. A failed read yields an unknown fingerprint instead of an error.
type Fingerprint struct {
	value string
	known bool
}

// Observed wraps a fingerprint that was read successfully.
func Observed(value string) Fingerprint {
	return Fingerprint{value: value, known: true}
}

// Unknown is the fingerprint of a proxy that could not be read.
func Unknown() Fingerprint {
	return Fingerprint{}
}

// Known reports whether the fingerprint was actually observed.
func (f Fingerprint) Known() bool {
	return f.known
}

// Value returns the observed value, or "" when unknown.
func (f Fingerprint) Value() string {
	return f.value
}

// Matches reports whether the fingerprint equals the expected value.
// An unknown fingerprint never matches, even an empty expectation.
func (f Fingerprint) Matches(expected string) bool {
	return f.known && f.value == expected
}

func (f Fingerprint) String() string {
	if !f.known {
		return "<unknown>"
	}
	return f.value
}

// ReconcileAction is what a reconciliation ended up doing.
type ReconcileAction string

const (
	ActionDeployed  ReconcileAction = "deployed"
	ActionUpgraded  ReconcileAction = "upgraded"
	ActionUnchanged ReconcileAction = "unchanged"
)
