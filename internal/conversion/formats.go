// SPDX-License-Identifier: Apache-2.0

package conversion

import (
	"path/filepath"
	"sort"
	"strings"
)

// Extension classes decide which pipeline a file takes: PDFs go straight to
// grayscale, office and text formats go through soffice first, and images are
// rendered onto an A4 page natively.
var (
	officeExts = map[string]struct{}{
		".doc": {}, ".docx": {}, ".xls": {}, ".xlsx": {},
		".ppt": {}, ".pptx": {}, ".odt": {}, ".ods": {},
	}

	imageExts = map[string]struct{}{
		".jpg": {}, ".jpeg": {}, ".png": {}, ".gif": {},
		".bmp": {}, ".tiff": {}, ".tif": {},
	}

	textExts = map[string]struct{}{
		".txt": {}, ".rtf": {},
	}
)

// NormalizedExt returns the lower-cased extension of name, including the dot.
func NormalizedExt(name string) string {
	return strings.ToLower(filepath.Ext(name))
}

// IsPDF reports whether ext names a PDF file.
func IsPDF(ext string) bool {
	return ext == ".pdf"
}

// IsOffice reports whether ext names an office document format.
func IsOffice(ext string) bool {
	_, ok := officeExts[ext]
	return ok
}

// IsImage reports whether ext names an image format.
func IsImage(ext string) bool {
	_, ok := imageExts[ext]
	return ok
}

// IsText reports whether ext names a plain text format.
func IsText(ext string) bool {
	_, ok := textExts[ext]
	return ok
}

// NeedsSoffice reports whether ext is converted to PDF by LibreOffice. Text
// formats take the same route as office documents.
func NeedsSoffice(ext string) bool {
	return IsOffice(ext) || IsText(ext)
}

// IsSupported reports whether files with ext can be printed at all.
func IsSupported(ext string) bool {
	return IsPDF(ext) || IsOffice(ext) || IsImage(ext) || IsText(ext)
}

// SupportedExtensions lists every accepted extension in a stable order, for
// user-facing help.
func SupportedExtensions() []string {
	exts := []string{".pdf"}
	for _, class := range []map[string]struct{}{officeExts, textExts, imageExts} {
		for ext := range class {
			exts = append(exts, ext)
		}
	}
	sort.Strings(exts)
	return exts
}
