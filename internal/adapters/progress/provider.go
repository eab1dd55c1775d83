package progress

import (
	"github.com/mxc-foundation/zkdeploy/internal/domain/config"
	"github.com/mxc-foundation/zkdeploy/internal/usecase"
)

// NewProgressSink picks the sink for the output mode. JSON output and
// non-interactive runs never draw a spinner.
func NewProgressSink(cfg *config.RuntimeConfig) usecase.ProgressSink {
	if cfg.JSON {
		return NewNopSink()
	}
	if cfg.NonInteractive {
		return NewLineSink()
	}
	return NewSpinnerProgress()
}
