// SPDX-License-Identifier: Apache-2.0

// Package imaging decodes the netpbm images scanimage produces. SANE emits
// PBM for lineart scans and PGM/PPM for gray and color modes; the decoder
// covers the three binary variants (P4, P5, P6) at 8 bits per sample, which
// is everything the scan pipeline encounters.
package imaging

import (
	"bufio"
	"image"
	"image/color"
	"io"
	"os"
)

// DecodePNMFile decodes a netpbm file from disk.
func DecodePNMFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodePNM(f)
}

// DecodePNM decodes a binary netpbm image (P4 bitmap, P5 graymap, P6 pixmap).
func DecodePNM(r io.Reader) (image.Image, error) {
	br := bufio.NewReader(r)

	magic, err := readToken(br)
	if err != nil {
		return nil, DecodeError.Wrap(err, "failed to read netpbm magic number")
	}

	switch magic {
	case "P4":
		return decodeBitmap(br)
	case "P5":
		return decodeGraymap(br)
	case "P6":
		return decodePixmap(br)
	default:
		return nil, DecodeError.New("unsupported netpbm format %q, expected P4, P5 or P6", magic)
	}
}

func decodeBitmap(br *bufio.Reader) (image.Image, error) {
	width, height, err := readDimensions(br)
	if err != nil {
		return nil, err
	}

	img := image.NewGray(image.Rect(0, 0, width, height))
	rowBytes := (width + 7) / 8
	row := make([]byte, rowBytes)
	for y := 0; y < height; y++ {
		if _, err := io.ReadFull(br, row); err != nil {
			return nil, DecodeError.Wrap(err, "truncated bitmap raster at row %d", y)
		}
		for x := 0; x < width; x++ {
			// in PBM a set bit is ink, which renders black
			v := uint8(0xFF)
			if row[x/8]&(0x80>>(x%8)) != 0 {
				v = 0
			}
			img.SetGray(x, y, color.Gray{Y: v})
		}
	}
	return img, nil
}

func decodeGraymap(br *bufio.Reader) (image.Image, error) {
	width, height, err := readDimensions(br)
	if err != nil {
		return nil, err
	}
	if err := readMaxval(br); err != nil {
		return nil, err
	}

	img := image.NewGray(image.Rect(0, 0, width, height))
	if _, err := io.ReadFull(br, img.Pix); err != nil {
		return nil, DecodeError.Wrap(err, "truncated graymap raster")
	}
	return img, nil
}

func decodePixmap(br *bufio.Reader) (image.Image, error) {
	width, height, err := readDimensions(br)
	if err != nil {
		return nil, err
	}
	if err := readMaxval(br); err != nil {
		return nil, err
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	row := make([]byte, width*3)
	for y := 0; y < height; y++ {
		if _, err := io.ReadFull(br, row); err != nil {
			return nil, DecodeError.Wrap(err, "truncated pixmap raster at row %d", y)
		}
		for x := 0; x < width; x++ {
			i := img.PixOffset(x, y)
			img.Pix[i+0] = row[x*3+0]
			img.Pix[i+1] = row[x*3+1]
			img.Pix[i+2] = row[x*3+2]
			img.Pix[i+3] = 0xFF
		}
	}
	return img, nil
}

func readDimensions(br *bufio.Reader) (int, int, error) {
	width, err := readNumber(br)
	if err != nil {
		return 0, 0, DecodeError.Wrap(err, "failed to read image width")
	}
	height, err := readNumber(br)
	if err != nil {
		return 0, 0, DecodeError.Wrap(err, "failed to read image height")
	}
	if width <= 0 || height <= 0 {
		return 0, 0, DecodeError.New("invalid image dimensions %dx%d", width, height)
	}
	return width, height, nil
}

func readMaxval(br *bufio.Reader) error {
	maxval, err := readNumber(br)
	if err != nil {
		return DecodeError.Wrap(err, "failed to read sample maxval")
	}
	if maxval <= 0 || maxval > 255 {
		return DecodeError.New("unsupported sample maxval %d, expected 1-255", maxval)
	}
	return nil
}

// readToken skips whitespace and # comments, then reads one token. The token
// is terminated by a single whitespace byte, which is consumed. This matches
// the netpbm header grammar, where the raster begins immediately after the
// whitespace byte that ends the last header field.
func readToken(br *bufio.Reader) (string, error) {
	if err := skipSpaceAndComments(br); err != nil {
		return "", err
	}

	var token []byte
	for {
		b, err := br.ReadByte()
		if err == io.EOF && len(token) > 0 {
			return string(token), nil
		}
		if err != nil {
			return "", err
		}
		if isSpace(b) {
			return string(token), nil
		}
		token = append(token, b)
	}
}

func readNumber(br *bufio.Reader) (int, error) {
	token, err := readToken(br)
	if err != nil {
		return 0, err
	}

	n := 0
	for _, c := range []byte(token) {
		if c < '0' || c > '9' {
			return 0, DecodeError.New("malformed header number %q", token)
		}
		n = n*10 + int(c-'0')
		if n > 1<<24 {
			return 0, DecodeError.New("header number %q out of range", token)
		}
	}
	if len(token) == 0 {
		return 0, DecodeError.New("empty header number")
	}
	return n, nil
}

func skipSpaceAndComments(br *bufio.Reader) error {
	for {
		b, err := br.ReadByte()
		if err != nil {
			return err
		}
		if isSpace(b) {
			continue
		}
		if b == '#' {
			if _, err := br.ReadString('\n'); err != nil {
				return err
			}
			continue
		}
		return br.UnreadByte()
	}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f'
}
