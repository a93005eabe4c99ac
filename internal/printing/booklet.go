// SPDX-License-Identifier: Apache-2.0

package printing

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/printworks/printbot/internal/conversion"
	"github.com/printworks/printbot/pkg/fsx"
)

// SignatureLayout describes how a document folds into stapled signatures.
// Four pages land on every sheet: two per side.
type SignatureLayout struct {
	Signatures            int
	SheetsPerSignature    int
	TotalSheets           int
	TotalSheetsWithBlanks int
}

// CalculateSignatureLayout sizes the signatures for a document. Documents
// under 29 pages fold into a single signature; longer ones split into
// signatures of defaultSheets sheets each, the last padded with blanks.
func CalculateSignatureLayout(pageCount int, defaultSheets int) SignatureLayout {
	totalSheets := (pageCount + 3) / 4

	layout := SignatureLayout{TotalSheets: totalSheets}
	if pageCount < 29 {
		layout.SheetsPerSignature = min(totalSheets, defaultSheets)
		layout.Signatures = 1
		layout.TotalSheetsWithBlanks = layout.SheetsPerSignature
	} else {
		layout.SheetsPerSignature = defaultSheets
		layout.Signatures = (totalSheets + defaultSheets - 1) / defaultSheets
		layout.TotalSheetsWithBlanks = layout.SheetsPerSignature * layout.Signatures
	}
	return layout
}

// BookletPageOrder returns the 1-based source page sequence that, taken two
// at a time, fills consecutive sheet faces for short edge tumble printing.
// Alternating faces swap which side carries the outer page so the stack folds
// into reading order.
func BookletPageOrder(totalPages int) []int {
	order := make([]int, 0, totalPages)
	for i := 0; i < totalPages/2; i++ {
		var left, right int
		if i%2 == 0 {
			right = i
			left = totalPages - i - 1
		} else {
			right = totalPages - i - 1
			left = i
		}
		order = append(order, left+1, right+1)
	}
	return order
}

// BookletBuilder turns an ordinary PDF into per-signature 2-up impositions
// ready for two-sided-short-edge printing.
type BookletBuilder struct {
	conv    *conversion.Converter
	tempDir string
}

// NewBookletBuilder returns a builder that pads signatures with blank pages
// from conv and stages its outputs in conv's temp directory.
func NewBookletBuilder(conv *conversion.Converter) *BookletBuilder {
	return &BookletBuilder{conv: conv, tempDir: conv.TempDir}
}

// BuildBooklets renders one print-ready booklet PDF per signature and returns
// their paths in print order. The source PDF is consumed in consecutive
// chunks of a full signature's worth of pages; a short final chunk is padded
// with blanks so the fold math stays valid.
func (b *BookletBuilder) BuildBooklets(src string, defaultSheets int) ([]string, error) {
	pages, err := conversion.PageCount(src)
	if err != nil {
		return nil, BookletError.Wrap(err, "cannot inspect %s", filepath.Base(src))
	}

	layout := CalculateSignatureLayout(pages, defaultSheets)
	pagesPerSig := layout.SheetsPerSignature * 4
	if pagesPerSig < 1 {
		return nil, BookletError.New("document has no printable pages")
	}

	scratch, err := os.MkdirTemp(b.tempDir, "booklet_build_")
	if err != nil {
		return nil, BookletError.Wrap(err, "cannot create scratch directory in %s", b.tempDir)
	}
	defer fsx.RemoveAll(scratch)

	var outputs []string
	discard := func() {
		for _, f := range outputs {
			fsx.Remove(f)
		}
	}

	for sigIdx, start := 0, 1; start <= pages; sigIdx, start = sigIdx+1, start+pagesPerSig {
		end := min(start+pagesPerSig-1, pages)

		sheets, err := b.buildSignature(src, scratch, sigIdx, start, end, pagesPerSig)
		if err != nil {
			discard()
			return nil, err
		}

		out, err := fsx.TempCopy(b.tempDir, sheets, "booklet_*.pdf")
		if err != nil {
			discard()
			return nil, BookletError.Wrap(err, "cannot stage booklet output")
		}
		outputs = append(outputs, out)
	}

	return outputs, nil
}

// buildSignature extracts pages start through end, pads them to a full
// signature, reorders them for the fold and imposes two faces per landscape
// sheet side.
func (b *BookletBuilder) buildSignature(src string, scratch string, sigIdx int, start int, end int, pagesPerSig int) (string, error) {
	sig := filepath.Join(scratch, fmt.Sprintf("sig_%d.pdf", sigIdx))
	if err := api.TrimFile(src, sig, []string{fmt.Sprintf("%d-%d", start, end)}, nil); err != nil {
		return "", BookletError.Wrap(err, "cannot extract pages %d-%d", start, end)
	}

	if padding := pagesPerSig - (end - start + 1); padding > 0 {
		blank, err := b.conv.BlankPDF(padding)
		if err != nil {
			return "", BookletError.Wrap(err, "cannot produce %d pad pages", padding)
		}
		defer fsx.Remove(blank)

		padded := filepath.Join(scratch, fmt.Sprintf("padded_%d.pdf", sigIdx))
		if err := api.MergeCreateFile([]string{sig, blank}, padded, false, nil); err != nil {
			return "", BookletError.Wrap(err, "cannot pad signature %d", sigIdx+1)
		}
		sig = padded
	}

	ordered := filepath.Join(scratch, fmt.Sprintf("ordered_%d.pdf", sigIdx))
	if err := api.CollectFile(sig, ordered, pageSelection(BookletPageOrder(pagesPerSig)), nil); err != nil {
		return "", BookletError.Wrap(err, "cannot reorder signature %d", sigIdx+1)
	}

	nup, err := api.PDFNUpConfig(2, "formsize:A4L, border:off, margin:10", nil)
	if err != nil {
		return "", BookletError.Wrap(err, "cannot configure 2-up imposition")
	}

	sheets := filepath.Join(scratch, fmt.Sprintf("sheets_%d.pdf", sigIdx))
	if err := api.NUpFile([]string{ordered}, sheets, nil, nup, nil); err != nil {
		return "", BookletError.Wrap(err, "cannot impose signature %d", sigIdx+1)
	}

	return sheets, nil
}

func pageSelection(order []int) []string {
	sel := make([]string, len(order))
	for i, page := range order {
		sel[i] = strconv.Itoa(page)
	}
	return sel
}
