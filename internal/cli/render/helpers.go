package render

import (
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mxc-foundation/zkdeploy/internal/domain"
	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	addressStyle   = color.New(color.FgWhite)
	timestampStyle = color.New(color.Faint)
	labelStyle     = color.New(color.Faint)
	headerStyle    = color.New(color.Bold, color.FgHiWhite)
	driftStyle     = color.New(color.FgYellow)
	unknownStyle   = color.New(color.FgRed)
	okStyle        = color.New(color.FgGreen)
	nameStyle      = color.New(color.FgCyan, color.Bold)
)

// FormatWarning formats a warning message with the warning icon
func FormatWarning(message string) string {
	return color.New(color.FgYellow).Sprintf("⚠️  %s", message)
}

// FormatError formats an error message with the error icon. Only the last
// segment of a wrapped error chain is shown.
func FormatError(message string) string {
	parts := strings.Split(message, ": ")
	msg := parts[len(parts)-1]

	if len(msg) > 0 {
		msg = strings.ToUpper(msg[:1]) + msg[1:]
	}

	return color.New(color.FgRed).Sprintf("❌ %s", msg)
}

// FormatSuccess formats a success message with the success icon
func FormatSuccess(message string) string {
	return color.New(color.FgGreen).Sprintf("✅ %s", message)
}

// FormatAction renders a reconcile action as a colored title
func FormatAction(action domain.ReconcileAction) string {
	title := cases.Title(language.English).String(string(action))
	switch action {
	case domain.ActionDeployed:
		return color.New(color.FgGreen, color.Bold).Sprint(title)
	case domain.ActionUpgraded:
		return color.New(color.FgYellow, color.Bold).Sprint(title)
	default:
		return color.New(color.Faint).Sprint(title)
	}
}

// FormatFingerprint renders an observed fingerprint against its expectation
func FormatFingerprint(observed domain.Fingerprint, expected string) string {
	switch {
	case !observed.Known():
		return unknownStyle.Sprint(observed.String())
	case observed.Matches(expected):
		return okStyle.Sprint(observed.Value())
	default:
		return driftStyle.Sprintf("%s (expected %q)", observed.Value(), expected)
	}
}

// formatAddress returns a checksummed address, or "-" for the zero address
func formatAddress(addr common.Address) string {
	if addr == (common.Address{}) {
		return "-"
	}
	return addressStyle.Sprint(addr.Hex())
}

// newTable creates a borderless table in the house style
func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Options.SeparateRows = false
	t.Style().Box.PaddingRight = "   "
	t.Style().Box.PaddingLeft = ""
	return t
}

// addressNames lists the keys of an address book, sorted
func addressNames(addresses map[string]string) []string {
	names := lo.Keys(addresses)
	sort.Strings(names)
	return names
}
