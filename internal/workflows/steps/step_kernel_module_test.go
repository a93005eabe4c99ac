// SPDX-License-Identifier: Apache-2.0

package steps

import (
	"context"
	"testing"

	"github.com/automa-saga/automa"
	"github.com/joomcode/errorx"
	"github.com/printworks/printbot/internal/manifest"
	"github.com/stretchr/testify/require"
)

// Loading a real module needs root, so these tests cover the decision paths
// that never reach the kernel.

func TestLoadKernelModules_NilManifestFails(t *testing.T) {
	step, err := LoadKernelModules(nil).Build()
	require.NoError(t, err)
	require.Equal(t, LoadKernelModulesStepId, step.Id())

	report := step.Execute(context.Background())
	require.Error(t, report.Error)
	require.True(t, errorx.IsOfType(report.Error, errorx.IllegalState))
	require.Contains(t, report.Error.Error(), "manifest is nil")
}

func TestLoadKernelModules_NoModulesIsSuccess(t *testing.T) {
	step, err := LoadKernelModules(&manifest.Manifest{}).Build()
	require.NoError(t, err)

	report := step.Execute(context.Background())
	require.NoError(t, report.Error)
	require.Equal(t, automa.StatusSuccess, report.Status)
}

func TestLoadKernelModules_BlankModuleNameFails(t *testing.T) {
	man := &manifest.Manifest{
		KernelModules: []manifest.KernelModule{{Name: "  "}},
	}

	step, err := LoadKernelModules(man).Build()
	require.NoError(t, err)

	report := step.Execute(context.Background())
	require.Error(t, report.Error)
	require.True(t, errorx.IsOfType(report.Error, errorx.IllegalArgument))
}

func TestLoadKernelModules_RollbackSkipsWhenNothingLoaded(t *testing.T) {
	step, err := LoadKernelModules(&manifest.Manifest{}).Build()
	require.NoError(t, err)

	require.NoError(t, step.Execute(context.Background()).Error)

	rollback := step.Rollback(context.Background())
	require.NoError(t, rollback.Error)
	require.Equal(t, automa.StatusSkipped, rollback.Status)
}
