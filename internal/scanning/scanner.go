// SPDX-License-Identifier: Apache-2.0

// Package scanning drives SANE scanners through the scanimage CLI. Output is
// netpbm, the one format every backend can emit without extra libraries.
package scanning

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/automa-saga/logx"
	"github.com/joomcode/errorx"

	"github.com/printworks/printbot/internal/core"
	"github.com/printworks/printbot/internal/exc"
	"github.com/printworks/printbot/pkg/fsx"
)

const (
	detectTimeout  = 30 * time.Second
	flatbedTimeout = 120 * time.Second
	adfTimeout     = 600 * time.Second

	// upper bound on a single feeder batch
	batchMaxPages = 50

	scanFormat = "pnm"
)

// scanimage -L lines look like: device `xerox_mfp:libusb:001:004' is a ...
var devicePattern = regexp.MustCompile("device\\s+`([^']+)'")

// Scanner acquires pages from a SANE device. The binary name is a field so
// tests can point it at a stand-in.
type Scanner struct {
	Scanimage string
	TempDir   string

	device     string
	resolution int
	mode       string
}

// NewScanner returns a Scanner bound to the configured device and capture
// settings.
func NewScanner(device string, resolutionDPI int, mode string) *Scanner {
	return &Scanner{
		Scanimage:  "scanimage",
		TempDir:    core.TempDir,
		device:     device,
		resolution: resolutionDPI,
		mode:       mode,
	}
}

// DetectDevice returns the first device scanimage reports, falling back to
// the configured one when detection fails. Detection trouble is never fatal
// because the configured device may still answer.
func (s *Scanner) DetectDevice(ctx context.Context) string {
	stdout, _, err := s.capture(ctx, detectTimeout, "-L")
	if err != nil {
		logx.As().Warn().
			Err(err).
			Str("device", s.device).
			Msg("Scanner autodetection failed, using the configured device")
		return s.device
	}

	if m := devicePattern.FindStringSubmatch(stdout); m != nil {
		logx.As().Info().Str("device", m[1]).Msg("Autodetected scanner")
		return m[1]
	}

	logx.As().Warn().
		Str("device", s.device).
		Msg("No scanner reported by scanimage, using the configured device")
	return s.device
}

// ScanFlatbed scans a single page from the flatbed glass and returns the
// path of the staged PNM file.
func (s *Scanner) ScanFlatbed(ctx context.Context) (string, error) {
	device := s.DetectDevice(ctx)

	scratch, err := os.MkdirTemp(s.TempDir, "scan_single_")
	if err != nil {
		return "", ScanError.Wrap(err, "cannot create scratch directory in %s", s.TempDir)
	}
	defer fsx.RemoveAll(scratch)

	output := filepath.Join(scratch, "scan.pnm")
	_, stderr, err := s.capture(ctx, flatbedTimeout,
		"-d", device,
		"--format", scanFormat,
		"--resolution", strconv.Itoa(s.resolution),
		"--mode", s.mode,
		"--source", "Flatbed",
		"--progress",
		"-o", output)
	if err != nil {
		if errorx.HasTrait(err, errorx.Timeout()) {
			return "", err
		}
		return "", scanFailure(stderr, err)
	}

	if info, err := os.Stat(output); err != nil || info.Size() == 0 {
		return "", ScanError.New("scanner produced no output")
	}

	return fsx.TempCopy(s.TempDir, output, "scan_*.pnm")
}

// ScanADF scans every sheet the document feeder holds and returns the page
// paths in feed order. Pages that made it to disk before a timeout are kept;
// a stalled feeder should not discard paper that already went through.
func (s *Scanner) ScanADF(ctx context.Context) ([]string, error) {
	device := s.DetectDevice(ctx)

	scratch, err := os.MkdirTemp(s.TempDir, "scan_multi_")
	if err != nil {
		return nil, ScanError.Wrap(err, "cannot create scratch directory in %s", s.TempDir)
	}
	defer fsx.RemoveAll(scratch)

	_, stderr, runErr := s.capture(ctx, adfTimeout,
		"-d", device,
		"--format", scanFormat,
		"--resolution", strconv.Itoa(s.resolution),
		"--mode", s.mode,
		"--source", "ADF",
		"--batch", filepath.Join(scratch, "scan_%d.pnm"),
		"--batch-start", "1",
		"--batch-increment", "1",
		"--batch-count", strconv.Itoa(batchMaxPages))

	pages, err := s.collectPages(scratch)
	if err != nil {
		return nil, err
	}

	if len(pages) == 0 {
		if runErr != nil {
			if errorx.HasTrait(runErr, errorx.Timeout()) {
				return nil, runErr
			}
			return nil, scanFailure(stderr, runErr)
		}
		return nil, NoPagesError.New("the feeder produced no pages")
	}

	if runErr != nil {
		// scanimage exits nonzero when the feeder empties before the batch
		// count is reached; the pages on disk are still good
		logx.As().Debug().
			Err(runErr).
			Int("pages", len(pages)).
			Msg("scanimage exited nonzero after scanning, keeping the pages")
	}

	logx.As().Info().Int("pages", len(pages)).Msg("Scan finished")
	return pages, nil
}

// collectPages stages the numbered batch outputs in feed order. Collection
// stops at the first missing or empty page; when the batch template produced
// nothing it falls back to the single unnumbered file some backends write.
func (s *Scanner) collectPages(scratch string) ([]string, error) {
	var pages []string
	discard := func() {
		for _, p := range pages {
			fsx.Remove(p)
		}
	}

	for num := 1; ; num++ {
		page := filepath.Join(scratch, fmt.Sprintf("scan_%d.pnm", num))
		info, err := os.Stat(page)
		if err != nil || info.Size() == 0 {
			break
		}

		copied, err := fsx.TempCopy(s.TempDir, page, "scan_*.pnm")
		if err != nil {
			discard()
			return nil, ScanError.Wrap(err, "cannot stage page %d", num)
		}
		pages = append(pages, copied)
	}

	if len(pages) == 0 {
		single := filepath.Join(scratch, "scan.pnm")
		if info, err := os.Stat(single); err == nil && info.Size() > 0 {
			copied, err := fsx.TempCopy(s.TempDir, single, "scan_*.pnm")
			if err != nil {
				return nil, ScanError.Wrap(err, "cannot stage the scanned page")
			}
			pages = append(pages, copied)
		}
	}

	return pages, nil
}

func (s *Scanner) capture(ctx context.Context, timeout time.Duration, args ...string) (string, string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.Command(s.Scanimage, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger := logx.As().With().Str("tool", s.Scanimage).Logger()
	err := exc.Run(ctx, cmd, logger)
	if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		err = ScanTimeoutError.New("scanimage did not finish within %s", timeout)
	}
	return stdout.String(), stderr.String(), err
}

func scanFailure(stderr string, err error) error {
	if detail := strings.TrimSpace(stderr); detail != "" {
		return ScanError.Wrap(err, "scanimage failed: %s", detail)
	}
	return ScanError.Wrap(err, "scanimage failed")
}
