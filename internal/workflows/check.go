// SPDX-License-Identifier: Apache-2.0

package workflows

import (
	"github.com/automa-saga/automa"
	"github.com/printworks/printbot/internal/core"
	"github.com/printworks/printbot/internal/manifest"
	"github.com/printworks/printbot/internal/workflows/steps"
	"github.com/printworks/printbot/pkg/software"
)

// NewCheckWorkflow builds the environment check: host profile, then one
// detection step per required tool, then a summary with the degraded verdict
// and a remediation hint. Every step reports and succeeds; a degraded host is
// a finding, not a failure, so the check command always exits zero.
func NewCheckWorkflow(manifestPath string) *automa.WorkflowBuilder {
	if manifestPath == "" {
		manifestPath = core.PackagesManifestFile
	}

	man := &manifest.Manifest{}
	results := steps.NewCheckResults()

	stepList := []automa.Builder{
		steps.CollectHostProfile(),
		steps.ResolveCheckManifest(manifestPath, man),
	}
	for _, tool := range software.Tools() {
		stepList = append(stepList, steps.CheckTool(tool, man, results))
	}
	stepList = append(stepList, steps.SummarizeCheck(results))

	return automa.NewWorkflowBuilder().WithId("environment-check").Steps(stepList...)
}
