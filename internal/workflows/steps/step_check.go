// SPDX-License-Identifier: Apache-2.0

package steps

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/automa-saga/automa"
	"github.com/automa-saga/logx"
	"github.com/charmbracelet/lipgloss"
	"github.com/joomcode/errorx"
	"github.com/printworks/printbot/internal/core"
	"github.com/printworks/printbot/internal/manifest"
	"github.com/printworks/printbot/internal/workflows/notify"
	"github.com/printworks/printbot/pkg/hardware"
	"github.com/printworks/printbot/pkg/semver"
	"github.com/printworks/printbot/pkg/software"
)

const (
	CollectHostProfileStepId   = "collect-host-profile"
	ResolveCheckManifestStepId = "resolve-check-manifest"
	SummarizeCheckStepId       = "summarize-environment-check"
)

// ToolStatus is the outcome of checking one external tool.
type ToolStatus string

const (
	ToolStatusOK       ToolStatus = "OK"
	ToolStatusMissing  ToolStatus = "MISSING"
	ToolStatusOutdated ToolStatus = "OUTDATED"
)

// ToolCheckResult records the outcome of one tool check.
type ToolCheckResult struct {
	Tool    software.Tool
	Status  ToolStatus
	Path    string
	Version string
	Detail  string
}

// CheckResults accumulates tool check outcomes across the check workflow so
// the summary step can report on all of them at once.
type CheckResults struct {
	mu      sync.Mutex
	results []ToolCheckResult
}

func NewCheckResults() *CheckResults {
	return &CheckResults{}
}

func (r *CheckResults) Add(res ToolCheckResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, res)
}

// All returns the recorded results in check order.
func (r *CheckResults) All() []ToolCheckResult {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]ToolCheckResult(nil), r.results...)
}

// MissingTools returns the tools that were not found on the host.
func (r *CheckResults) MissingTools() []software.Tool {
	r.mu.Lock()
	defer r.mu.Unlock()

	var missing []software.Tool
	for _, res := range r.results {
		if res.Status == ToolStatusMissing {
			missing = append(missing, res.Tool)
		}
	}

	return missing
}

// Degraded reports whether any checked tool is missing or outdated.
func (r *CheckResults) Degraded() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, res := range r.results {
		if res.Status != ToolStatusOK {
			return true
		}
	}

	return false
}

// CollectHostProfile gathers the host hardware and OS profile and validates it
// against the print host baseline. Baseline violations are warnings attached
// to the report, never failures; the check command reports, it does not gate.
func CollectHostProfile() automa.Builder {
	return automa.NewStepBuilder().WithId(CollectHostProfileStepId).
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			profile := hardware.GetHostProfile()

			logx.As().Info().
				Str("os_vendor", profile.GetOSVendor()).
				Str("os_version", profile.GetOSVersion()).
				Uint("cpu_cores", profile.GetCPUCores()).
				Uint64("memory_total_gb", profile.GetTotalMemoryGB()).
				Uint64("memory_available_gb", profile.GetAvailableMemoryGB()).
				Uint64("spool_free_gb", profile.GetFreeDiskGB(core.SpoolDir)).
				Msg("Host profile collected")

			spec := hardware.NewHostSpec(profile)

			var warnings []string
			for _, err := range []error{
				spec.ValidateOS(),
				spec.ValidateCPU(),
				spec.ValidateMemory(),
				spec.ValidateSpoolSpace(core.SpoolDir),
			} {
				if err != nil {
					warnings = append(warnings, err.Error())
					logx.As().Warn().Msg("Host baseline: " + err.Error())
				}
			}

			meta := map[string]string{
				"host_profile": profile.String(),
				"baseline":     spec.GetBaselineRequirements().String(),
			}
			if len(warnings) > 0 {
				meta["baseline_warnings"] = strings.Join(warnings, "; ")
			}

			return automa.StepSuccessReport(stp.Id(), automa.WithMetadata(meta))
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Collecting host profile")
			return ctx, nil
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepFailure(ctx, stp, rpt, "Failed to collect host profile")
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepCompletion(ctx, stp, rpt, "Host profile collected")
		})
}

// ResolveCheckManifest loads the manifest that supplies version requirements
// for the tool checks. Unlike provisioning, a missing or malformed manifest is
// not fatal here: the checks simply degrade to presence-only detection.
func ResolveCheckManifest(manifestPath string, out *manifest.Manifest) automa.Builder {
	return automa.NewStepBuilder().WithId(ResolveCheckManifestStepId).
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			man, err := manifest.Load(manifestPath)
			if err != nil {
				if errorx.IsOfType(err, manifest.ManifestNotFound) {
					logx.As().Warn().
						Str("manifest", manifestPath).
						Msg("No package manifest found, version requirements unavailable; checking tool presence only")
				} else {
					logx.As().Warn().Err(err).
						Str("manifest", manifestPath).
						Msg("Package manifest unusable, version requirements unavailable; checking tool presence only")
				}

				return automa.StepSuccessReport(stp.Id(),
					automa.WithMetadata(map[string]string{"manifest": "unavailable"}))
			}

			*out = *man

			return automa.StepSuccessReport(stp.Id(), automa.WithMetadata(map[string]string{
				"manifest": manifestPath,
				"packages": strconv.Itoa(len(man.Packages)),
			}))
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Resolving version requirements from %s", manifestPath)
			return ctx, nil
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepFailure(ctx, stp, rpt, "Failed to resolve version requirements")
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepCompletion(ctx, stp, rpt, "Version requirements resolved")
		})
}

// CheckTool detects one external tool and classifies it as OK, MISSING or
// OUTDATED. The version bounds come from the manifest entry of the package
// providing the tool; a tool with no detected version or no declared bounds is
// checked for presence only. The step always succeeds, the classification
// lives in the result set and the report metadata.
func CheckTool(tool software.Tool, man *manifest.Manifest, results *CheckResults) automa.Builder {
	stepId := fmt.Sprintf("check-tool-%s", tool.Name)

	return automa.NewStepBuilder().WithId(stepId).
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			result := checkTool(ctx, tool, man)
			results.Add(result)

			meta := map[string]string{"status": string(result.Status)}
			if result.Path != "" {
				meta["path"] = result.Path
			}
			if result.Version != "" {
				meta["version"] = result.Version
			}
			if result.Detail != "" {
				meta["detail"] = result.Detail
			}

			switch result.Status {
			case ToolStatusOK:
				logx.As().Info().
					Str("tool", tool.Name).
					Str("path", result.Path).
					Str("version", result.Version).
					Msg("Tool check passed")
			case ToolStatusMissing:
				logx.As().Warn().
					Str("tool", tool.Name).
					Str("package", tool.Package).
					Msg("Tool not found on this host")
			case ToolStatusOutdated:
				logx.As().Warn().
					Str("tool", tool.Name).
					Str("version", result.Version).
					Msg("Tool version outside required range: " + result.Detail)
			}

			return automa.StepSuccessReport(stp.Id(), automa.WithMetadata(meta))
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Checking for %s", tool.Name)
			return ctx, nil
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepFailure(ctx, stp, rpt, "Check of %s failed", tool.Name)
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepCompletion(ctx, stp, rpt, "Check of %s completed", tool.Name)
		})
}

func checkTool(ctx context.Context, tool software.Tool, man *manifest.Manifest) ToolCheckResult {
	detector := software.NewProgramDetector(logx.As())

	info, err := detector.GetProgramInfo(ctx, tool)
	if err != nil {
		return ToolCheckResult{
			Tool:   tool,
			Status: ToolStatusMissing,
			Detail: "not found on this host",
		}
	}

	result := ToolCheckResult{
		Tool:    tool,
		Status:  ToolStatusOK,
		Path:    info.GetPath(),
		Version: info.GetVersion(),
	}

	// Presence-only when the tool reports no version or the manifest declares
	// no bounds for its package.
	if result.Version == "" || man == nil {
		return result
	}

	pkg, declared := man.PackageByName(tool.Package)
	if !declared || (pkg.MinVersion == "" && pkg.MaxVersion == "") {
		return result
	}

	if err := semver.CheckVersionRequirements(result.Version, pkg.MinVersion, pkg.MaxVersion); err != nil {
		result.Status = ToolStatusOutdated
		result.Detail = err.Error()
	}

	return result
}

// SummarizeCheck renders the tool status table, computes the degraded flag and
// prints a single remediation hint for whatever is missing. The step succeeds
// even on a degraded host; the check command reports problems without failing.
func SummarizeCheck(results *CheckResults) automa.Builder {
	return automa.NewStepBuilder().WithId(SummarizeCheckStepId).
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			all := results.All()
			degraded := results.Degraded()
			hint := software.InstallHint(software.PackagesForTools(results.MissingTools()))

			fmt.Println(RenderCheckSummary(all, degraded, hint))

			if degraded {
				logx.As().Warn().Msg("Environment is degraded, some bot features will be unavailable")
			} else {
				logx.As().Info().Msg("All required tools are available")
			}

			meta := map[string]string{"degraded": strconv.FormatBool(degraded)}
			for _, res := range all {
				meta[res.Tool.Name] = string(res.Status)
			}
			if hint != "" {
				meta["hint"] = hint
			}

			return automa.StepSuccessReport(stp.Id(), automa.WithMetadata(meta))
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Summarizing environment check")
			return ctx, nil
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepFailure(ctx, stp, rpt, "Failed to summarize environment check")
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepCompletion(ctx, stp, rpt, "Environment check completed")
		})
}

// RenderCheckSummary builds the human readable status table shown at the end
// of the check command.
func RenderCheckSummary(results []ToolCheckResult, degraded bool, hint string) string {
	var sb strings.Builder

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39"))

	okStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("42"))

	missingStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("196"))

	outdatedStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("214"))

	detailStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245"))

	hintStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("242")).
		Italic(true)

	sb.WriteString(headerStyle.Render("Environment check"))
	sb.WriteString("\n\n")

	for _, res := range results {
		var mark string
		switch res.Status {
		case ToolStatusOK:
			mark = okStyle.Render("✓ " + string(res.Status))
		case ToolStatusMissing:
			mark = missingStyle.Render("✗ " + string(res.Status))
		case ToolStatusOutdated:
			mark = outdatedStyle.Render("! " + string(res.Status))
		}

		sb.WriteString(fmt.Sprintf("  %-12s %s", res.Tool.Name, mark))

		var details []string
		if res.Version != "" {
			details = append(details, res.Version)
		}
		if res.Path != "" {
			details = append(details, res.Path)
		}
		if res.Detail != "" {
			details = append(details, res.Detail)
		}
		if len(details) > 0 {
			sb.WriteString(detailStyle.Render("  " + strings.Join(details, ", ")))
		}
		sb.WriteString("\n")
	}

	if degraded {
		sb.WriteString("\n")
		sb.WriteString(missingStyle.Render("Environment is degraded."))
		sb.WriteString(detailStyle.Render(" Features depending on the tools above will be unavailable."))
		sb.WriteString("\n")
	}

	if hint != "" {
		sb.WriteString("\n")
		sb.WriteString(hintStyle.Render("To install what is missing, run: " + hint))
		sb.WriteString("\n")
	}

	return sb.String()
}
