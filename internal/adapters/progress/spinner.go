package progress

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/mxc-foundation/zkdeploy/internal/usecase"
)

// SpinnerProgress shows a spinner while transactions are pending
type SpinnerProgress struct {
	spinner      *spinner.Spinner
	out          io.Writer
	currentStage string
	stageStart   time.Time
}

// NewSpinnerProgress creates a new spinner-based progress sink writing to stderr
func NewSpinnerProgress() *SpinnerProgress {
	return newSpinnerProgress(os.Stderr)
}

func newSpinnerProgress(out io.Writer) *SpinnerProgress {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.HideCursor = false

	return &SpinnerProgress{
		spinner: s,
		out:     out,
	}
}

// OnProgress handles progress events
func (r *SpinnerProgress) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	if event.Stage != r.currentStage {
		r.currentStage = event.Stage
		r.stageStart = time.Now()
	}

	if !event.Spinner {
		if r.spinner.Active() {
			r.spinner.Stop()
		}
		if event.Message != "" {
			fmt.Fprintln(r.out, r.format(event))
		}
		return
	}

	r.spinner.Suffix = " " + r.format(event)
	if !r.spinner.Active() {
		r.spinner.Start()
	}
}

// format renders "[n/total] message (elapsed)"
func (r *SpinnerProgress) format(event usecase.ProgressEvent) string {
	msg := event.Message
	if event.Total > 0 {
		msg = color.New(color.FgWhite, color.Faint).Sprintf("[%d/%d] ", event.Current, event.Total) + msg
	}
	if event.Spinner && !r.stageStart.IsZero() {
		msg += fmt.Sprintf(" (%s)", time.Since(r.stageStart).Round(time.Second))
	}
	return msg
}

// Info prints an info message
func (r *SpinnerProgress) Info(message string) {
	r.print(color.New(color.FgCyan), message)
}

// Error prints an error message
func (r *SpinnerProgress) Error(message string) {
	r.print(color.New(color.FgRed), message)
}

func (r *SpinnerProgress) print(c *color.Color, message string) {
	wasActive := r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}

	c.Fprintln(r.out, message)

	if wasActive {
		r.spinner.Start()
	}
}

// Stop stops the spinner if it is running
func (r *SpinnerProgress) Stop() {
	if r.spinner.Active() {
		r.spinner.Stop()
	}
}

var _ usecase.ProgressSink = (*SpinnerProgress)(nil)
