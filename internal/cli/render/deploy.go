package render

import (
	"fmt"
	"io"

	"github.com/mxc-foundation/zkdeploy/internal/usecase"
)

// DeployRenderer renders the outcome of a deploy-or-upgrade run
type DeployRenderer struct {
	out  io.Writer
	json bool
}

// NewDeployRenderer creates a new deploy renderer
func NewDeployRenderer(out io.Writer, json bool) *DeployRenderer {
	return &DeployRenderer{out: out, json: json}
}

type reconcileView struct {
	Contract       string `json:"contract"`
	Action         string `json:"action"`
	Proxy          string `json:"proxyAddress"`
	Implementation string `json:"impAddress"`
	Name2          string `json:"contractName2"`
	TxHash         string `json:"txHash,omitempty"`
	Ledger         string `json:"ledger"`
}

// Render renders a reconcile result
func (r *DeployRenderer) Render(result *usecase.ReconcileContractResult) error {
	if r.json {
		return JSON(r.out, newReconcileView(result))
	}
	r.renderLine("", result)
	labelStyle.Fprintf(r.out, "Ledger: %s\n", result.LedgerPath)
	return nil
}

func newReconcileView(result *usecase.ReconcileContractResult) reconcileView {
	view := reconcileView{
		Contract:       result.Record.ContractName,
		Action:         string(result.Action),
		Proxy:          result.Record.ProxyAddress,
		Implementation: result.Record.ImplementationAddress,
		Name2:          result.Record.VerificationFingerprint,
		Ledger:         result.LedgerPath,
	}
	if result.Deployment != nil {
		view.TxHash = result.Deployment.TxHash.Hex()
	}
	return view
}

// renderLine prints "<Action> <contract> at <proxy>" plus the details that changed
func (r *DeployRenderer) renderLine(indent string, result *usecase.ReconcileContractResult) {
	rec := result.Record
	fmt.Fprintf(r.out, "%s%s %s at %s\n", indent, FormatAction(result.Action), nameStyle.Sprint(rec.ContractName), addressStyle.Sprint(rec.ProxyAddress))

	if result.Previous != nil && result.Previous.ImplementationAddress != rec.ImplementationAddress {
		labelStyle.Fprintf(r.out, "%s  implementation %s -> %s\n", indent, result.Previous.ImplementationAddress, rec.ImplementationAddress)
	} else {
		labelStyle.Fprintf(r.out, "%s  implementation %s\n", indent, rec.ImplementationAddress)
	}
	fmt.Fprintf(r.out, "%s  %s %s\n", indent, labelStyle.Sprint("name2()"), FormatFingerprint(result.Observed, rec.ExpectedFingerprint))
}
