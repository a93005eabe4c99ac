// SPDX-License-Identifier: Apache-2.0

package printing

import (
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/printworks/printbot/internal/conversion"
	"github.com/printworks/printbot/pkg/fsx"
)

func TestCalculateSignatureLayout(t *testing.T) {
	tests := []struct {
		name          string
		pages         int
		defaultSheets int
		want          SignatureLayout
	}{
		{"one page", 1, 5, SignatureLayout{1, 1, 1, 1}},
		{"exactly one sheet", 4, 5, SignatureLayout{1, 1, 1, 1}},
		{"two sheets", 8, 5, SignatureLayout{1, 2, 2, 2}},
		{"full default signature", 20, 5, SignatureLayout{1, 5, 5, 5}},
		// under-29 documents report a single signature even when the sheet
		// count overflows the default
		{"single signature boundary", 28, 5, SignatureLayout{1, 5, 7, 5}},
		{"just past the boundary", 29, 5, SignatureLayout{2, 5, 8, 10}},
		{"two full signatures", 40, 5, SignatureLayout{2, 5, 10, 10}},
		{"long document", 100, 5, SignatureLayout{5, 5, 25, 25}},
		{"thin signatures", 36, 3, SignatureLayout{3, 3, 9, 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, CalculateSignatureLayout(tt.pages, tt.defaultSheets))
		})
	}
}

func TestBookletPageOrder_KnownSequences(t *testing.T) {
	require.Equal(t, []int{4, 1, 2, 3}, BookletPageOrder(4))
	require.Equal(t, []int{8, 1, 2, 7, 6, 3, 4, 5}, BookletPageOrder(8))
	require.Equal(t,
		[]int{12, 1, 2, 11, 10, 3, 4, 9, 8, 5, 6, 7},
		BookletPageOrder(12))
}

func TestBookletPageOrder_IsAPermutation(t *testing.T) {
	for total := 4; total <= 40; total += 4 {
		order := BookletPageOrder(total)
		require.Len(t, order, total)

		sorted := append([]int(nil), order...)
		sort.Ints(sorted)
		for i, page := range sorted {
			require.Equal(t, i+1, page, "total %d", total)
		}
	}
}

func newTestBuilder(t *testing.T) (*BookletBuilder, *conversion.Converter) {
	t.Helper()

	files, err := fsx.NewManager()
	require.NoError(t, err)

	conv := conversion.NewConverter(files)
	conv.TempDir = t.TempDir()
	return NewBookletBuilder(conv), conv
}

func TestBookletBuilder_SingleSignature(t *testing.T) {
	b, conv := newTestBuilder(t)

	src, err := conv.BlankPDF(10)
	require.NoError(t, err)

	files, err := b.BuildBooklets(src, 5)
	require.NoError(t, err)
	require.Len(t, files, 1)
	require.Contains(t, filepath.Base(files[0]), "booklet_")

	// 10 pages pad to three sheets (12 pages), imposed two per sheet face
	pages, err := conversion.PageCount(files[0])
	require.NoError(t, err)
	require.Equal(t, 6, pages)
}

func TestBookletBuilder_SplitsLongDocuments(t *testing.T) {
	b, conv := newTestBuilder(t)

	src, err := conv.BlankPDF(32)
	require.NoError(t, err)

	files, err := b.BuildBooklets(src, 5)
	require.NoError(t, err)
	require.Len(t, files, 2)

	// each signature holds 20 pages, so 10 sheet faces per output file
	for _, f := range files {
		pages, err := conversion.PageCount(f)
		require.NoError(t, err)
		require.Equal(t, 10, pages)
	}
}

func TestBookletBuilder_MissingSource(t *testing.T) {
	b, _ := newTestBuilder(t)

	_, err := b.BuildBooklets(filepath.Join(t.TempDir(), "absent.pdf"), 5)
	require.Error(t, err)
}
