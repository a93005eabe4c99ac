// SPDX-License-Identifier: Apache-2.0

package bot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/printworks/printbot/internal/printing"
	"github.com/printworks/printbot/internal/scanning"
)

func TestCustomRangePattern(t *testing.T) {
	valid := []string{"1", "7", "1-3", "1,2,3", "1-3,5,7-9", "10-12,20"}
	for _, spec := range valid {
		require.True(t, customRangePattern.MatchString(spec), "should accept %q", spec)
	}

	// stricter than what lp would take: open-ended spans and stray
	// separators are rejected before they reach the printing layer
	invalid := []string{"", "1 2", "a", "1-3, 5", "1;2", "-3", "1-", ",", "1,,2", "$(reboot)"}
	for _, spec := range invalid {
		require.False(t, customRangePattern.MatchString(spec), "should reject %q", spec)
	}
}

func TestModeLabel(t *testing.T) {
	require.Equal(t, "Single-sided", modeLabel(printing.ModeNormal))
	require.Equal(t, "Double-sided", modeLabel(printing.ModeDuplex))
	require.Equal(t, "Booklet", modeLabel(printing.ModeBooklet))
}

func TestClipError(t *testing.T) {
	short := printing.PrintError.New("lp failed")
	require.Equal(t, "lp failed", clipError(short))

	long := printing.PrintError.New("lp failed: %s", strings.Repeat("x", 300))
	clipped := clipError(long)
	require.Len(t, clipped, 123)
	require.True(t, strings.HasSuffix(clipped, "..."))
}

func TestScanErrorText(t *testing.T) {
	timeout := scanning.ScanTimeoutError.New("scanimage did not finish within 2m0s")
	require.Contains(t, scanErrorText(timeout), "did not respond")

	empty := scanning.NoPagesError.New("the feeder produced no pages")
	require.Contains(t, scanErrorText(empty), "feeder is empty")

	busy := scanning.ScanError.New("scanimage failed: Error during device I/O (Device busy)")
	require.Contains(t, scanErrorText(busy), "busy")

	other := scanning.ScanError.New("scanimage failed: open of device xerox_mfp failed")
	require.Contains(t, scanErrorText(other), "xerox_mfp")
}
