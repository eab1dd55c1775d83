package models

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// StepKind identifies what a setup step does
type StepKind string

const (
	StepDeploy   StepKind = "deploy"
	StepResolve  StepKind = "resolve"
	StepCall     StepKind = "call"
	StepRegister StepKind = "register"
)

// SetupPlan is an ordered list of setup steps
type SetupPlan struct {
	Name  string       `yaml:"name"`
	Steps []*SetupStep `yaml:"steps"`
}

// SetupStep is a single step. Exactly one of Deploy, Resolve, Call or Register is set.
type SetupStep struct {
	Deploy   string `yaml:"deploy,omitempty"`
	Resolve  string `yaml:"resolve,omitempty"`
	Call     string `yaml:"call,omitempty"`
	Register string `yaml:"register,omitempty"`

	Args     []string `yaml:"args,omitempty"`
	Method   string   `yaml:"method,omitempty"`
	Registry string   `yaml:"registry,omitempty"`
	As       string   `yaml:"as,omitempty"`
	Target   string   `yaml:"target,omitempty"`
}

// Kind returns the step kind, or "" if none or several are set.
func (s *SetupStep) Kind() StepKind {
	var kinds []StepKind
	if s.Deploy != "" {
		kinds = append(kinds, StepDeploy)
	}
	if s.Resolve != "" {
		kinds = append(kinds, StepResolve)
	}
	if s.Call != "" {
		kinds = append(kinds, StepCall)
	}
	if s.Register != "" {
		kinds = append(kinds, StepRegister)
	}
	if len(kinds) != 1 {
		return ""
	}
	return kinds[0]
}

// Subject returns the contract, key or name the step acts on.
func (s *SetupStep) Subject() string {
	switch s.Kind() {
	case StepDeploy:
		return s.Deploy
	case StepResolve:
		return s.Resolve
	case StepCall:
		return s.Call
	case StepRegister:
		return s.Register
	}
	return ""
}

func (s *SetupStep) String() string {
	switch s.Kind() {
	case StepDeploy:
		return fmt.Sprintf("deploy %s", s.Deploy)
	case StepResolve:
		return fmt.Sprintf("resolve %s as %s", s.Resolve, s.As)
	case StepCall:
		return fmt.Sprintf("call %s.%s", s.Call, s.Method)
	case StepRegister:
		return fmt.Sprintf("register %s", s.Register)
	}
	return "invalid step"
}

// Validate checks the plan structure. It does not resolve references.
func (p *SetupPlan) Validate() error {
	var result *multierror.Error

	if p.Name == "" {
		result = multierror.Append(result, fmt.Errorf("plan name is required"))
	}
	if len(p.Steps) == 0 {
		result = multierror.Append(result, fmt.Errorf("at least one step is required"))
	}

	aliases := make(map[string]int)
	for i, step := range p.Steps {
		n := i + 1
		if step == nil {
			result = multierror.Append(result, fmt.Errorf("step %d is empty", n))
			continue
		}
		switch step.Kind() {
		case StepDeploy:
		case StepResolve:
			if step.Registry == "" {
				result = multierror.Append(result, fmt.Errorf("step %d (%s): registry is required", n, step))
			}
			if step.As == "" {
				result = multierror.Append(result, fmt.Errorf("step %d (%s): as is required", n, step))
			} else if prev, dup := aliases[step.As]; dup {
				result = multierror.Append(result, fmt.Errorf("step %d: alias '%s' already defined by step %d", n, step.As, prev))
			} else {
				aliases[step.As] = n
			}
		case StepCall:
			if step.Method == "" {
				result = multierror.Append(result, fmt.Errorf("step %d (%s): method is required", n, step))
			}
		case StepRegister:
			if step.Registry == "" {
				result = multierror.Append(result, fmt.Errorf("step %d (%s): registry is required", n, step))
			}
			if step.Target == "" {
				result = multierror.Append(result, fmt.Errorf("step %d (%s): target is required", n, step))
			}
		default:
			result = multierror.Append(result, fmt.Errorf("step %d: exactly one of deploy, resolve, call or register must be set", n))
		}
	}

	return result.ErrorOrNil()
}
