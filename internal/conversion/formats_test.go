// SPDX-License-Identifier: Apache-2.0

package conversion

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizedExt(t *testing.T) {
	require.Equal(t, ".pdf", NormalizedExt("Report.PDF"))
	require.Equal(t, ".docx", NormalizedExt("/tmp/letter.docx"))
	require.Equal(t, ".jpeg", NormalizedExt("photo.archive.JPEG"))
	require.Equal(t, "", NormalizedExt("README"))
}

func TestFormatClasses(t *testing.T) {
	tests := []struct {
		ext       string
		supported bool
		office    bool
		image     bool
		text      bool
		soffice   bool
	}{
		{".pdf", true, false, false, false, false},
		{".doc", true, true, false, false, true},
		{".docx", true, true, false, false, true},
		{".xls", true, true, false, false, true},
		{".xlsx", true, true, false, false, true},
		{".ppt", true, true, false, false, true},
		{".pptx", true, true, false, false, true},
		{".odt", true, true, false, false, true},
		{".ods", true, true, false, false, true},
		{".txt", true, false, false, true, true},
		{".rtf", true, false, false, true, true},
		{".jpg", true, false, true, false, false},
		{".png", true, false, true, false, false},
		{".tiff", true, false, true, false, false},
		{".zip", false, false, false, false, false},
		{".exe", false, false, false, false, false},
		{"", false, false, false, false, false},
	}

	for _, tt := range tests {
		t.Run("ext_"+tt.ext, func(t *testing.T) {
			require.Equal(t, tt.supported, IsSupported(tt.ext))
			require.Equal(t, tt.office, IsOffice(tt.ext))
			require.Equal(t, tt.image, IsImage(tt.ext))
			require.Equal(t, tt.text, IsText(tt.ext))
			require.Equal(t, tt.soffice, NeedsSoffice(tt.ext))
		})
	}
}

func TestSupportedExtensions(t *testing.T) {
	exts := SupportedExtensions()

	// 1 pdf + 8 office + 2 text + 7 image formats
	require.Len(t, exts, 18)
	for _, ext := range exts {
		require.True(t, IsSupported(ext), ext)
	}
	require.Contains(t, exts, ".pdf")
	require.Contains(t, exts, ".docx")
	require.Contains(t, exts, ".tif")
}
