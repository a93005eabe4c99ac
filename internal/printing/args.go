// SPDX-License-Identifier: Apache-2.0

package printing

import (
	"fmt"
	"regexp"
	"strconv"
)

// Mode selects how sheets come out of the printer.
type Mode int

const (
	ModeNormal Mode = iota
	ModeDuplex
	ModeBooklet
)

func (m Mode) String() string {
	switch m {
	case ModeDuplex:
		return "duplex"
	case ModeBooklet:
		return "booklet"
	default:
		return "normal"
	}
}

// Options describes a single print job.
type Options struct {
	Mode      Mode
	PageRange string
	Copies    int
}

// Page ranges travel from user input straight into an lp invocation, so only
// digits, commas and dashes may pass.
var pageRangePattern = regexp.MustCompile(`^[\d,\-]+$`)

// ValidatePageRange rejects anything that is not a plain lp page selection.
func ValidatePageRange(spec string) error {
	if !pageRangePattern.MatchString(spec) {
		return InvalidPageRangeError.New("page range %q may contain only digits, commas and dashes", spec)
	}
	return nil
}

// buildArgs assembles the lp argument list for a job. Option order matters to
// some PPDs, so the sequence is fixed: destination, page size, duplex mode,
// quality, the common option block, copies, page ranges, file.
func (p *Printer) buildArgs(file string, opts Options) ([]string, error) {
	args := []string{"-d", p.cfg.Printer.Name, "-o", "PageSize=" + p.cfg.Printer.PageSize}

	switch opts.Mode {
	case ModeBooklet:
		args = append(args, "-o", "sides=two-sided-short-edge", "-o", "Duplex=DuplexTumble")
	case ModeDuplex:
		args = append(args, "-o", "sides=two-sided-long-edge", "-o", "Duplex=DuplexNoTumble")
	default:
		args = append(args, "-o", "sides=one-sided", "-o", "Duplex=None")
	}

	quality := p.cfg.Printer.QualityDPI
	if opts.Mode == ModeBooklet {
		quality = p.cfg.Printer.BookletQualityDPI
	}
	args = append(args, "-o", fmt.Sprintf("Quality=%ddpi", quality))

	args = append(args,
		"-o", "JCLEconomode=Off",
		"-o", "InputSlot=Auto",
		"-o", "MediaType=Plain",
		"-o", "ColorModel="+p.cfg.Printer.ColorModel,
		"-o", "fit-to-page",
		"-o", "document-format=application/pdf",
	)

	if opts.Copies > 1 {
		args = append(args, "-n", strconv.Itoa(opts.Copies))
	}

	if opts.PageRange != "" {
		if err := ValidatePageRange(opts.PageRange); err != nil {
			return nil, err
		}
		args = append(args, "-o", "page-ranges="+opts.PageRange)
	}

	return append(args, file), nil
}
