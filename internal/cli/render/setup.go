package render

import (
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/common"
	"github.com/mxc-foundation/zkdeploy/internal/domain/models"
	"github.com/mxc-foundation/zkdeploy/internal/usecase"
)

// SetupRenderer renders the steps of a setup run
type SetupRenderer struct {
	out  io.Writer
	json bool
}

// NewSetupRenderer creates a new setup renderer
func NewSetupRenderer(out io.Writer, json bool) *SetupRenderer {
	return &SetupRenderer{out: out, json: json}
}

type setupStepView struct {
	Index     int            `json:"index"`
	Step      string         `json:"step"`
	Reconcile *reconcileView `json:"reconcile,omitempty"`
	Resolved  string         `json:"resolved,omitempty"`
	TxHash    string         `json:"txHash,omitempty"`
	Events    []string       `json:"events,omitempty"`
}

type setupView struct {
	Plan      string          `json:"plan"`
	Completed int             `json:"completed"`
	Total     int             `json:"total"`
	Steps     []setupStepView `json:"steps"`
	Error     string          `json:"error,omitempty"`
}

// Render renders the completed steps. runErr is the error that stopped the
// run, if any; the steps before it are still shown.
func (r *SetupRenderer) Render(result *usecase.RunSetupResult, runErr error) error {
	if result == nil {
		return nil
	}
	total := len(result.Plan.Steps)

	if r.json {
		view := setupView{Plan: result.Plan.Name, Completed: len(result.Steps), Total: total, Steps: []setupStepView{}}
		for _, s := range result.Steps {
			view.Steps = append(view.Steps, newSetupStepView(s))
		}
		if runErr != nil {
			view.Error = runErr.Error()
		}
		return JSON(r.out, view)
	}

	headerStyle.Fprintf(r.out, "Setup plan %s\n\n", result.Plan.Name)
	deploy := &DeployRenderer{out: r.out}
	for _, s := range result.Steps {
		prefix := labelStyle.Sprintf("[%d/%d]", s.Index, total)
		switch s.Step.Kind() {
		case models.StepDeploy:
			fmt.Fprintf(r.out, "%s ", prefix)
			deploy.renderLine("", s.Reconcile)
		case models.StepResolve:
			fmt.Fprintf(r.out, "%s Resolved %s as %s = %s\n", prefix, nameStyle.Sprint(s.Step.Resolve), s.Step.As, formatAddress(s.Resolved))
		case models.StepRegister:
			fmt.Fprintf(r.out, "%s Registered %s = %s via %s\n", prefix, nameStyle.Sprint(s.Step.Register), formatAddress(s.Resolved), formatAddress(s.Manager))
		case models.StepCall:
			fmt.Fprintf(r.out, "%s Called %s.%s", prefix, nameStyle.Sprint(s.Step.Call), s.Step.Method)
			if s.Call != nil {
				labelStyle.Fprintf(r.out, " (tx %s)", s.Call.TxHash.Hex())
			}
			fmt.Fprintln(r.out)
		}
	}

	fmt.Fprintln(r.out)
	if runErr != nil {
		fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf("Stopped after %d of %d steps. Completed steps are recorded; rerun to continue.", len(result.Steps), total)))
		return nil
	}
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Setup complete (%d steps)", total)))
	return nil
}

func newSetupStepView(s *usecase.SetupStepResult) setupStepView {
	view := setupStepView{Index: s.Index, Step: s.Step.String()}
	if s.Reconcile != nil {
		rv := newReconcileView(s.Reconcile)
		view.Reconcile = &rv
	}
	if s.Resolved != (common.Address{}) {
		view.Resolved = s.Resolved.Hex()
	}
	if s.Call != nil {
		view.TxHash = s.Call.TxHash.Hex()
		view.Events = s.Call.Events
	}
	return view
}
