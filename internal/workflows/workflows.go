// SPDX-License-Identifier: Apache-2.0

// Package workflows assembles the saga workflows behind the printbot CLI
// commands: the environment check, provisioning, and the systemd service
// install and uninstall. Steps live in the steps subpackage; this package
// wires them together in the order the procedures require.
package workflows

import (
	"github.com/automa-saga/automa"
	"github.com/printworks/printbot/internal/core"
)

// DefaultWorkflowExecutionOptions returns the execution options used when the
// operator passes no mode flags: stop at the first failing step.
func DefaultWorkflowExecutionOptions() *core.WorkflowExecutionOptions {
	return &core.WorkflowExecutionOptions{
		ExecutionMode: automa.StopOnError,
		RollbackMode:  automa.StopOnError,
	}
}

// WithWorkflowExecutionMode applies the execution options to a workflow
// builder. A nil builder or nil options pass through unchanged.
func WithWorkflowExecutionMode(wb *automa.WorkflowBuilder, opts *core.WorkflowExecutionOptions) *automa.WorkflowBuilder {
	if wb == nil || opts == nil {
		return wb
	}

	return wb.WithExecutionMode(opts.ExecutionMode)
}
