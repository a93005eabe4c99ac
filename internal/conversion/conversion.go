// SPDX-License-Identifier: Apache-2.0

// Package conversion turns everything the bot accepts into print-ready PDF
// files. Office and text documents go through LibreOffice, grayscale is
// applied by Ghostscript, and images are composed onto A4 pages natively.
// Every produced file lands in the shared temp directory under a stage
// specific prefix so the janitor can reclaim whatever a crashed job leaves
// behind.
package conversion

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/automa-saga/logx"
	"github.com/jung-kurt/gofpdf"
	"github.com/ledongthuc/pdf"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/printworks/printbot/internal/core"
	"github.com/printworks/printbot/internal/exc"
	"github.com/printworks/printbot/internal/imaging"
	"github.com/printworks/printbot/pkg/fsx"
)

const (
	pageWidthMM  = 210.0
	pageHeightMM = 297.0
	imageMargin  = 10.0

	officeBaseTimeout  = 90 * time.Second
	officePerMBTimeout = 8 * time.Second
	grayscaleTimeout   = 60 * time.Second

	// Ghostscript reports success even when it writes a header and nothing
	// else, so anything below this is treated as a failed conversion.
	minGrayscalePDFSize = 1024

	maxStderrInError = 500
)

// Converter runs the document to PDF pipeline. The tool names are fields so
// tests can point them at stand-ins.
type Converter struct {
	Soffice     string
	Ghostscript string
	TempDir     string

	files fsx.Manager
}

// NewConverter returns a Converter bound to the default tools and the shared
// temp directory.
func NewConverter(files fsx.Manager) *Converter {
	return &Converter{
		Soffice:     "soffice",
		Ghostscript: "gs",
		TempDir:     core.TempDir,
		files:       files,
	}
}

// OfficeToPDF converts an office or text document to PDF with LibreOffice and
// returns the path of the produced file. The timeout grows with the input
// size because LibreOffice slows down roughly linearly on large documents.
func (c *Converter) OfficeToPDF(ctx context.Context, src string) (string, error) {
	info, ok, err := c.files.PathExists(src)
	if err != nil || !ok {
		return "", ConversionError.New("input file %s does not exist", src)
	}

	scratch, err := os.MkdirTemp(c.TempDir, "conv_to_pdf_")
	if err != nil {
		return "", ConversionError.Wrap(err, "cannot create scratch directory in %s", c.TempDir)
	}
	defer fsx.RemoveAll(scratch)

	// soffice derives the output name from the input name, so convert a
	// private copy to keep concurrent jobs from clobbering each other.
	base := filepath.Base(src)
	input := filepath.Join(scratch, base)
	if err := c.files.CopyFile(src, input, false); err != nil {
		return "", ConversionError.Wrap(err, "cannot stage %s for conversion", base)
	}

	timeout := officeBaseTimeout + time.Duration(info.Size()/(1024*1024))*officePerMBTimeout
	err = c.run(ctx, timeout, "LibreOffice conversion",
		c.Soffice, "--headless", "--convert-to", "pdf", "--outdir", scratch, input)
	if err != nil {
		return "", err
	}

	produced := filepath.Join(scratch, strings.TrimSuffix(base, filepath.Ext(base))+".pdf")
	if _, ok, _ := c.files.PathExists(produced); !ok {
		return "", ConversionError.New("LibreOffice reported success but produced no PDF for %s", base)
	}

	return fsx.TempCopy(c.TempDir, produced, "converted_*.pdf")
}

// GrayscalePDF rewrites a PDF through Ghostscript with all color converted to
// gray. It fails when the output is missing or suspiciously small.
func (c *Converter) GrayscalePDF(ctx context.Context, src string) (string, error) {
	scratch, err := os.MkdirTemp(c.TempDir, "pdf_gray_")
	if err != nil {
		return "", ConversionError.Wrap(err, "cannot create scratch directory in %s", c.TempDir)
	}
	defer fsx.RemoveAll(scratch)

	input := filepath.Join(scratch, "input.pdf")
	if err := c.files.CopyFile(src, input, false); err != nil {
		return "", ConversionError.Wrap(err, "cannot stage %s for conversion", filepath.Base(src))
	}

	output := filepath.Join(scratch, "gray.pdf")
	err = c.run(ctx, grayscaleTimeout, "Ghostscript grayscale",
		c.Ghostscript,
		"-q",
		"-sDEVICE=pdfwrite",
		"-dCompatibilityLevel=1.4",
		"-dPDFSETTINGS=/printer",
		"-sProcessColorModel=DeviceGray",
		"-sColorConversionStrategy=Gray",
		"-dNOPAUSE",
		"-dBATCH",
		"-sOutputFile="+output,
		input)
	if err != nil {
		return "", err
	}

	if info, ok, _ := c.files.PathExists(output); !ok || info.Size() < minGrayscalePDFSize {
		return "", ConversionError.New("produced grayscale PDF is empty or truncated")
	}

	return fsx.TempCopy(c.TempDir, output, "gray_*.pdf")
}

// GrayscaleOrOriginal applies GrayscalePDF and falls back to a copy of the
// color original when that fails. Printing in color beats not printing at
// all.
func (c *Converter) GrayscaleOrOriginal(ctx context.Context, src string) (string, error) {
	out, err := c.GrayscalePDF(ctx, src)
	if err != nil {
		logx.As().Warn().
			Err(err).
			Str("file", src).
			Msg("Grayscale conversion failed, keeping the color original")
		return fsx.TempCopy(c.TempDir, src, "temp_*.pdf")
	}
	return out, nil
}

// ImageToPDF places a single raster image on an A4 page, scaled to fit inside
// the printable area with its aspect ratio preserved.
func (c *Converter) ImageToPDF(src string) (string, error) {
	img, err := decodeImage(src)
	if err != nil {
		return "", err
	}

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()
	if err := placeImage(doc, "image", img, imageMargin); err != nil {
		return "", err
	}

	return c.writePDF(doc, "image_*.pdf")
}

// ImagesToPDF builds a PDF out of scanned netpbm pages, one full A4 page per
// image in the given order.
func (c *Converter) ImagesToPDF(paths []string) (string, error) {
	if len(paths) == 0 {
		return "", ConversionError.New("no pages to convert")
	}

	doc := gofpdf.New("P", "mm", "A4", "")
	for i, path := range paths {
		img, err := imaging.DecodePNMFile(path)
		if err != nil {
			return "", ConversionError.Wrap(err, "cannot decode scanned page %d", i+1)
		}

		doc.AddPage()
		if err := placeImage(doc, fmt.Sprintf("page_%d", i+1), img, 0); err != nil {
			return "", err
		}
	}

	return c.writePDF(doc, "scanned_*.pdf")
}

// BlankPDF produces a PDF consisting of the given number of empty A4 pages.
// Booklet signatures are padded with these.
func (c *Converter) BlankPDF(pages int) (string, error) {
	if pages < 1 {
		return "", ConversionError.New("a blank PDF needs at least one page, got %d", pages)
	}

	doc := gofpdf.New("P", "pt", "A4", "")
	for i := 0; i < pages; i++ {
		doc.AddPage()
	}

	return c.writePDF(doc, "blank_*.pdf")
}

// PageCount reports how many pages the PDF at path has. The parser panics on
// some malformed files, so that is caught and surfaced as an error.
func PageCount(path string) (n int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = ConversionError.New("cannot parse %s: %v", filepath.Base(path), r)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return 0, ConversionError.Wrap(err, "cannot open %s", filepath.Base(path))
	}
	defer fsx.Close(f)

	n = reader.NumPage()
	if n < 1 {
		return 0, ConversionError.New("%s contains no pages", filepath.Base(path))
	}
	return n, nil
}

// run executes an external tool under the given timeout, surfacing its stderr
// in the error because that is where soffice and gs explain themselves.
func (c *Converter) run(ctx context.Context, timeout time.Duration, desc string, name string, args ...string) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.Command(name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	logger := logx.As().With().Str("tool", name).Logger()
	if err := exc.Run(ctx, cmd, logger); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return ConversionTimeoutError.New("%s timed out after %s", desc, timeout)
		}
		if detail := strings.TrimSpace(stderr.String()); detail != "" {
			return ConversionError.Wrap(err, "%s failed: %s", desc, clip(detail, maxStderrInError))
		}
		return ConversionError.Wrap(err, "%s failed", desc)
	}
	return nil
}

// writePDF renders the document into a fresh temp file and returns its path.
func (c *Converter) writePDF(doc *gofpdf.Fpdf, pattern string) (string, error) {
	out, err := os.CreateTemp(c.TempDir, pattern)
	if err != nil {
		return "", ConversionError.Wrap(err, "cannot create output file in %s", c.TempDir)
	}

	if err := doc.OutputAndClose(out); err != nil {
		fsx.Remove(out.Name())
		return "", ConversionError.Wrap(err, "cannot write %s", filepath.Base(out.Name()))
	}
	return out.Name(), nil
}

// placeImage registers img with the document and draws it centered on the
// current page, scaled to fit inside the page margins. Images are re-encoded
// as PNG first so that every decodable input format ends up in a form gofpdf
// accepts.
func placeImage(doc *gofpdf.Fpdf, name string, img image.Image, margin float64) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return ConversionError.Wrap(err, "cannot encode %s", name)
	}

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	info := doc.RegisterImageOptionsReader(name, opts, &buf)
	if err := doc.Error(); err != nil {
		return ConversionError.Wrap(err, "cannot embed %s", name)
	}

	maxW := pageWidthMM - 2*margin
	maxH := pageHeightMM - 2*margin
	w, h := info.Width(), info.Height()
	scale := math.Min(maxW/w, maxH/h)
	w *= scale
	h *= scale

	doc.ImageOptions(name, (pageWidthMM-w)/2, (pageHeightMM-h)/2, w, h, false, opts, 0, "")
	return doc.Error()
}

func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ConversionError.Wrap(err, "cannot open image %s", filepath.Base(path))
	}
	defer fsx.Close(f)

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, ConversionError.Wrap(err, "cannot decode image %s", filepath.Base(path))
	}
	return img, nil
}

func clip(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
