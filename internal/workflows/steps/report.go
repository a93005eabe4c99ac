// SPDX-License-Identifier: Apache-2.0

package steps

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/automa-saga/automa"
	"github.com/automa-saga/logx"
	"gopkg.in/yaml.v3"
)

// reportView is the serializable projection of a workflow report.
type reportView struct {
	Id       string            `yaml:"id"`
	Status   string            `yaml:"status"`
	Error    string            `yaml:"error,omitempty"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
	Steps    []reportView      `yaml:"steps,omitempty"`
}

func toReportView(report *automa.Report) reportView {
	view := reportView{
		Id:       report.Id,
		Status:   fmt.Sprint(report.Status),
		Metadata: report.Metadata,
	}

	if report.Error != nil {
		view.Error = report.Error.Error()
	}

	for _, stepReport := range report.StepReports {
		if stepReport == nil {
			continue
		}
		view.Steps = append(view.Steps, toReportView(stepReport))
	}

	return view
}

// PrintWorkflowReport prints the workflow execution report in YAML format and,
// when reportFile is non-empty, saves a copy alongside the service logs. A
// report is an artifact, never a reason to fail the run that produced it, so
// save failures are logged and swallowed.
var PrintWorkflowReport = func(report *automa.Report, reportFile string) {
	if report == nil {
		return
	}

	b, err := yaml.Marshal(toReportView(report))
	if err != nil {
		fmt.Printf("Failed to marshal report: %v\n", err)
		return
	}

	fmt.Printf("Workflow Execution Report:\n%s\n", b)

	if reportFile == "" {
		return
	}

	if err := os.MkdirAll(filepath.Dir(reportFile), 0o755); err != nil {
		logx.As().Warn().Err(err).Str("report_path", reportFile).Msg("Failed to create the report directory")
		return
	}

	if err := os.WriteFile(reportFile, b, 0o644); err != nil {
		logx.As().Warn().Err(err).Str("report_path", reportFile).Msg("Failed to save the workflow report")
	}
}
