package progress

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mxc-foundation/zkdeploy/internal/usecase"
)

// LineSink prints one plain line per event, for CI logs
type LineSink struct {
	out io.Writer
}

// NewLineSink creates a sink writing to stderr
func NewLineSink() *LineSink {
	return &LineSink{out: os.Stderr}
}

// OnProgress prints the event message
func (s *LineSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	if event.Message == "" {
		return
	}
	if event.Total > 0 {
		fmt.Fprintf(s.out, "[%d/%d] %s\n", event.Current, event.Total, event.Message)
		return
	}
	fmt.Fprintln(s.out, event.Message)
}

// Info prints message
func (s *LineSink) Info(message string) {
	fmt.Fprintln(s.out, message)
}

// Error prints message prefixed with "error:"
func (s *LineSink) Error(message string) {
	fmt.Fprintln(s.out, "error: "+message)
}

var _ usecase.ProgressSink = (*LineSink)(nil)
