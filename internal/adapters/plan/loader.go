package plan

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mxc-foundation/zkdeploy/internal/domain/config"
	"github.com/mxc-foundation/zkdeploy/internal/domain/models"
	"github.com/mxc-foundation/zkdeploy/internal/usecase"
	"gopkg.in/yaml.v3"
)

// Loader reads setup plans from YAML files
type Loader struct {
	projectRoot string
}

// NewLoader creates a new plan loader. Relative paths are resolved against the project root.
func NewLoader(cfg *config.RuntimeConfig) *Loader {
	return &Loader{projectRoot: cfg.ProjectRoot}
}

// Load parses and validates the plan at path
func (l *Loader) Load(ctx context.Context, path string) (*models.SetupPlan, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(l.projectRoot, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("setup plan not found: %s (run 'zkdeploy init' to create one)", path)
		}
		return nil, fmt.Errorf("failed to read setup plan: %w", err)
	}

	plan, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return plan, nil
}

// Parse decodes a plan from YAML. Unknown keys are rejected.
func Parse(data []byte) (*models.SetupPlan, error) {
	var plan models.SetupPlan

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&plan); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("setup plan is empty")
		}
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := plan.Validate(); err != nil {
		return nil, fmt.Errorf("invalid setup plan: %w", err)
	}
	return &plan, nil
}

var _ usecase.PlanLoader = (*Loader)(nil)
