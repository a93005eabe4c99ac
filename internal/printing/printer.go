// SPDX-License-Identifier: Apache-2.0

package printing

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"github.com/automa-saga/logx"
	"github.com/joomcode/errorx"

	"github.com/printworks/printbot/internal/exc"
)

const (
	printTimeout    = 120 * time.Second
	fallbackTimeout = 60 * time.Second
)

// Printer submits jobs to a CUPS queue through lp. The binary name is a field
// so tests can point it at a stand-in.
type Printer struct {
	LP  string
	cfg *Config
}

// NewPrinter returns a Printer bound to the configured queue.
func NewPrinter(cfg *Config) *Printer {
	return &Printer{LP: "lp", cfg: cfg}
}

// Print sends the file to the printer. When the full option set is rejected
// it retries once with a minimal invocation, because PPD specific options are
// the usual reason lp refuses a job. A timeout is not retried; the queue is
// stuck, not picky.
func (p *Printer) Print(ctx context.Context, file string, opts Options) error {
	args, err := p.buildArgs(file, opts)
	if err != nil {
		return err
	}

	start := time.Now()
	err = p.runLP(ctx, printTimeout, args)
	if err == nil {
		logx.As().Info().
			Str("file", file).
			Str("mode", opts.Mode.String()).
			Dur("took", time.Since(start)).
			Msg("Print job submitted")
		return nil
	}
	if errorx.HasTrait(err, errorx.Timeout()) {
		return err
	}

	logx.As().Warn().
		Err(err).
		Str("file", file).
		Msg("Print failed, retrying with a minimal option set")

	fallback := []string{
		"-d", p.cfg.Printer.Name,
		"-o", "PageSize=" + p.cfg.Printer.PageSize,
		"-o", "fit-to-page",
		file,
	}
	if err := p.runLP(ctx, fallbackTimeout, fallback); err != nil {
		return err
	}

	logx.As().Info().
		Str("file", file).
		Msg("Print job submitted via the minimal fallback")
	return nil
}

func (p *Printer) runLP(ctx context.Context, timeout time.Duration, args []string) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.Command(p.LP, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	logger := logx.As().With().Str("tool", p.LP).Logger()
	if err := exc.Run(ctx, cmd, logger); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return PrintTimeoutError.New("lp did not accept the job within %s", timeout)
		}
		if detail := strings.TrimSpace(stderr.String()); detail != "" {
			return PrintError.Wrap(err, "lp failed: %s", detail)
		}
		return PrintError.Wrap(err, "lp failed")
	}
	return nil
}
