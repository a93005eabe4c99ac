// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/automa-saga/logx"
)

// JanitorCutoff is how old a scratch file must be before the janitor removes
// it. Files younger than this may belong to an in-flight job.
const JanitorCutoff = time.Hour

// DefaultJanitorInterval is how often the janitor sweeps while the bot runs.
const DefaultJanitorInterval = 30 * time.Minute

// tempFilePrefixes are the scratch file name prefixes the runtime creates.
// The janitor touches nothing else, so operator files in a shared temp
// directory survive a sweep.
var tempFilePrefixes = []string{
	"temp_", "converted_", "image_", "gray_", "blank_", "booklet_", "scan_", "scanned_",
}

// tempDirPrefixes are the scratch directories the converter, scanner and
// booklet builder stage intermediate output in. They are removed by the job
// that created them unless the process dies first.
var tempDirPrefixes = []string{
	"conv_to_pdf_", "pdf_gray_", "scan_single_", "scan_multi_", "booklet_build_",
}

func hasPrefix(name string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// CleanupTempFiles removes known-prefix scratch files and directories older
// than JanitorCutoff from dir and returns how many it removed. Per-entry
// failures are logged and skipped; a sweep is best effort.
func CleanupTempFiles(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, err
	}

	removed := 0
	cutoff := time.Now().Add(-JanitorCutoff)
	for _, entry := range entries {
		var stale bool
		switch {
		case entry.Type().IsRegular():
			stale = hasPrefix(entry.Name(), tempFilePrefixes)
		case entry.IsDir():
			stale = hasPrefix(entry.Name(), tempDirPrefixes)
		}
		if !stale {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		if err := os.RemoveAll(path); err != nil {
			logx.As().Warn().Err(err).Str("path", path).Msg("Failed to remove stale temp file")
			continue
		}
		removed++
	}

	if removed > 0 {
		logx.As().Info().Int("removed", removed).Str("dir", dir).Msg("Cleaned up stale temp files")
	}
	return removed, nil
}

// RunJanitor sweeps dir immediately and then on every interval tick until the
// context is cancelled. The bot runs this in its own goroutine.
func RunJanitor(ctx context.Context, dir string, interval time.Duration) {
	if _, err := CleanupTempFiles(dir); err != nil {
		logx.As().Warn().Err(err).Str("dir", dir).Msg("Temp file sweep failed")
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := CleanupTempFiles(dir); err != nil {
				logx.As().Warn().Err(err).Str("dir", dir).Msg("Temp file sweep failed")
			}
		}
	}
}
