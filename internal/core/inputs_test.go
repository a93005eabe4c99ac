package core

import (
	"strings"
	"testing"

	"github.com/automa-saga/automa"
)

func TestCommonInputsValidate_Valid(t *testing.T) {
	modes := AllExecutionModes()
	if len(modes) == 0 {
		t.Skip("no execution modes defined")
	}

	c := CommonInputs{
		ExecutionOptions: WorkflowExecutionOptions{
			ExecutionMode: modes[0],
			RollbackMode:  modes[0],
		},
	}

	if err := c.Validate(); err != nil {
		t.Fatalf("expected valid CommonInputs, got error: %v", err)
	}
}

func TestCommonInputsValidate_InvalidExecutionModes(t *testing.T) {
	// pick values that are very unlikely to be in AllExecutionModes()
	c := CommonInputs{
		ExecutionOptions: WorkflowExecutionOptions{
			ExecutionMode: automa.TypeMode(99),
			RollbackMode:  automa.TypeMode(99),
		},
	}

	if err := c.Validate(); err == nil {
		t.Fatalf("expected error for invalid execution/rollback modes, got nil")
	}
}

func TestUserInputs_NoCustomValidator(t *testing.T) {
	modes := AllExecutionModes()
	if len(modes) == 0 {
		t.Skip("no execution modes defined")
	}

	u := UserInputs[int]{
		Common: CommonInputs{
			ExecutionOptions: WorkflowExecutionOptions{
				ExecutionMode: modes[0],
				RollbackMode:  modes[0],
			},
		},
		Custom: 123,
	}

	if err := u.Validate(); err != nil {
		t.Fatalf("expected no error for non-validator custom type, got: %v", err)
	}
}

func TestProvisionInputs_ValidZeroValue(t *testing.T) {
	// zero-value should pass; an empty manifest path means the default
	p := ProvisionInputs{}
	if err := p.Validate(); err != nil {
		t.Fatalf("expected zero-value ProvisionInputs to validate, got: %v", err)
	}
}

func TestProvisionInputs_InvalidManifestPath(t *testing.T) {
	p := ProvisionInputs{
		ManifestPath: "../../etc/passwd",
	}

	err := p.Validate()
	if err == nil {
		t.Fatalf("expected error for traversal manifest path, got nil")
	}
	if !strings.Contains(err.Error(), "manifest path") {
		t.Fatalf("expected error message to mention 'manifest path', got: %v", err)
	}
}

func TestServiceInputs_ValidZeroValue(t *testing.T) {
	s := ServiceInputs{}
	if err := s.Validate(); err != nil {
		t.Fatalf("expected zero-value ServiceInputs to validate, got: %v", err)
	}
}

func TestEnvDirs_RootFirst(t *testing.T) {
	dirs := EnvDirs()
	if len(dirs) == 0 {
		t.Fatal("expected environment directories")
	}
	if dirs[0] != HomeDir {
		t.Fatalf("expected %s first, got %s", HomeDir, dirs[0])
	}
	for _, d := range dirs[1 : len(dirs)-1] {
		if !strings.HasPrefix(d, HomeDir) {
			t.Fatalf("expected %s under %s", d, HomeDir)
		}
	}
}
