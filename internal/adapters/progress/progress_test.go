package progress

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/mxc-foundation/zkdeploy/internal/domain/config"
	"github.com/mxc-foundation/zkdeploy/internal/usecase"
	"github.com/stretchr/testify/assert"
)

func TestNewProgressSink(t *testing.T) {
	assert.IsType(t, &NopSink{}, NewProgressSink(&config.RuntimeConfig{JSON: true}))
	assert.IsType(t, &LineSink{}, NewProgressSink(&config.RuntimeConfig{NonInteractive: true}))
	assert.IsType(t, &SpinnerProgress{}, NewProgressSink(&config.RuntimeConfig{}))
}

func TestLineSink(t *testing.T) {
	var buf bytes.Buffer
	sink := &LineSink{out: &buf}

	sink.OnProgress(context.Background(), usecase.ProgressEvent{Stage: "setup", Current: 2, Total: 5, Message: "deploy ZkCenter"})
	sink.OnProgress(context.Background(), usecase.ProgressEvent{Stage: "setup"})
	sink.Info("done")
	sink.Error("boom")

	assert.Equal(t, "[2/5] deploy ZkCenter\ndone\nerror: boom\n", buf.String())
}

func TestSpinnerProgress_PlainEvents(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	sink := newSpinnerProgress(&buf)

	sink.OnProgress(context.Background(), usecase.ProgressEvent{Stage: "setup", Current: 1, Total: 3, Message: "resolve taiko"})
	sink.Info("linked")
	sink.Stop()

	assert.Contains(t, buf.String(), "[1/3] resolve taiko")
	assert.Contains(t, buf.String(), "linked")
}
