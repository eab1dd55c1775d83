package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mxc-foundation/zkdeploy/internal/domain/models"
	"github.com/mxc-foundation/zkdeploy/internal/usecase"
)

// LedgerRenderer renders ledger contents
type LedgerRenderer struct {
	out  io.Writer
	json bool
}

// NewLedgerRenderer creates a new ledger renderer
func NewLedgerRenderer(out io.Writer, json bool) *LedgerRenderer {
	return &LedgerRenderer{out: out, json: json}
}

// RenderList renders every record of the ledger
func (r *LedgerRenderer) RenderList(result *usecase.ListLedgerResult) error {
	if r.json {
		ledger := models.NewDeploymentLedger(result.Network, result.ChainID)
		if result.Records != nil {
			ledger.Contracts = result.Records
		}
		return JSON(r.out, ledger)
	}

	if !result.Found {
		fmt.Fprintf(r.out, "No ledger found at %s\n", result.Path)
		return nil
	}

	headerStyle.Fprintf(r.out, "%s (chain %s)\n", result.Network, result.ChainID)
	labelStyle.Fprintf(r.out, "%s\n\n", result.Path)

	if len(result.Records) == 0 {
		fmt.Fprintln(r.out, "No contracts recorded")
		return nil
	}

	t := newTable()
	t.AppendHeader(table.Row{"CONTRACT", "PROXY", "IMPLEMENTATION", "NAME2", "UPDATED"})
	for _, rec := range result.Records {
		name2 := rec.VerificationFingerprint
		if rec.VerificationFingerprint != rec.ExpectedFingerprint {
			name2 = driftStyle.Sprintf("%s (expected %q)", rec.VerificationFingerprint, rec.ExpectedFingerprint)
		}
		t.AppendRow(table.Row{
			nameStyle.Sprint(rec.ContractName),
			addressStyle.Sprint(rec.ProxyAddress),
			addressStyle.Sprint(rec.ImplementationAddress),
			name2,
			timestampStyle.Sprint(rec.LastUpdated),
		})
	}
	fmt.Fprintln(r.out, t.Render())

	if result.Drifted > 0 {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf("%d contract(s) recorded a name2() that differs from the expectation", result.Drifted)))
	}
	return nil
}

// recordView is the JSON shape of a single record
type recordView struct {
	*models.ContractRecord
	Network  string  `json:"network"`
	ChainID  string  `json:"chainId"`
	Observed *string `json:"observedName2,omitempty"`
}

// RenderRecord renders one record, with the live fingerprint when it was read
func (r *LedgerRenderer) RenderRecord(result *usecase.ShowRecordResult) error {
	rec := result.Record
	if r.json {
		view := recordView{ContractRecord: rec, Network: result.Network, ChainID: result.ChainID}
		if result.Live && result.Observed.Known() {
			value := result.Observed.Value()
			view.Observed = &value
		}
		return JSON(r.out, view)
	}

	nameStyle.Fprintf(r.out, "%s\n", rec.ContractName)
	fmt.Fprintln(r.out)
	r.field("Network", fmt.Sprintf("%s (chain %s)", result.Network, result.ChainID))
	r.field("Proxy", rec.ProxyAddress)
	r.field("Implementation", rec.ImplementationAddress)
	r.field("Deployer", rec.DeployerAddress)
	r.field("name2()", rec.VerificationFingerprint)
	r.field("Expected", rec.ExpectedFingerprint)
	r.field("Updated", rec.LastUpdated)
	if result.Live {
		r.field("Live name2()", FormatFingerprint(result.Observed, rec.ExpectedFingerprint))
	}
	return nil
}

func (r *LedgerRenderer) field(label, value string) {
	fmt.Fprintf(r.out, "  %s %s\n", color.New(color.Faint).Sprintf("%-15s", label+":"), value)
}
