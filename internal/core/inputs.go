// SPDX-License-Identifier: Apache-2.0

package core

import (
	"path/filepath"

	"github.com/automa-saga/automa"
	"github.com/joomcode/errorx"
	"github.com/printworks/printbot/pkg/sanity"
)

type UserInputs[T any] struct {
	Common CommonInputs
	Custom T
}

// WorkflowExecutionOptions defines how a workflow reacts to step failures.
type WorkflowExecutionOptions struct {
	ExecutionMode automa.TypeMode
	RollbackMode  automa.TypeMode
}

type CommonInputs struct {
	Force            bool
	ExecutionOptions WorkflowExecutionOptions
}

// ProvisionInputs carries the provisioner-specific flags.
type ProvisionInputs struct {
	// ManifestPath points at the package manifest. Empty means the default
	// packages.yaml in the working directory.
	ManifestPath string

	// NonInteractive suppresses the secrets form; placeholder values are
	// written instead and the operator is told to edit them.
	NonInteractive bool
}

// ServiceInputs carries the service-install specific flags.
type ServiceInputs struct {
	// ExecutablePath overrides the provisioned executable the unit points at.
	// Empty means the default under the environment's bin directory.
	ExecutablePath string
}

// Validate validates all user inputs fields to ensure they are safe and secure.
func (u *UserInputs[T]) Validate() error {

	if err := u.Common.Validate(); err != nil {
		return err
	}

	// The pointer method set includes value receivers, so one assertion
	// covers custom inputs with either receiver kind.
	if validator, ok := any(&u.Custom).(interface{ Validate() error }); ok {
		return validator.Validate()
	}

	return nil
}

// Validate validates all common inputs fields to ensure they are safe and secure.
func (c *CommonInputs) Validate() error {
	modes := AllExecutionModes()
	if sanity.Contains[automa.TypeMode](c.ExecutionOptions.ExecutionMode, modes) == false {
		return errorx.IllegalArgument.New("invalid execution mode: %s", c.ExecutionOptions.ExecutionMode)
	}
	if sanity.Contains[automa.TypeMode](c.ExecutionOptions.RollbackMode, modes) == false {
		return errorx.IllegalArgument.New("invalid rollback mode: %s", c.ExecutionOptions.RollbackMode)
	}

	return nil
}

// Validate validates the provisioner inputs.
func (c *ProvisionInputs) Validate() error {
	if c.ManifestPath != "" {
		validated, err := sanity.SanitizePath(c.ManifestPath)
		if err != nil {
			return errorx.IllegalArgument.Wrap(err, "invalid manifest path: %s", c.ManifestPath)
		}

		if filepath.Clean(c.ManifestPath) != validated {
			return errorx.IllegalArgument.New("manifest path is not valid [ input = %s, validated = %s ]",
				c.ManifestPath, validated)
		}
	}

	return nil
}

// Validate validates the service-install inputs.
func (c *ServiceInputs) Validate() error {
	if c.ExecutablePath != "" {
		if _, err := sanity.SanitizePath(c.ExecutablePath); err != nil {
			return errorx.IllegalArgument.Wrap(err, "invalid executable path: %s", c.ExecutablePath)
		}
	}

	return nil
}
