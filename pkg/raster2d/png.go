package raster2d

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/pkg/errors"
)

// toGoImage converts any Surface into a stdlib image.Image so
// image/png can encode it. image/png.Encode already produces the exact
// byte-level contract spec.md §6 describes (signature, IHDR, zlib
// IDAT, CRC-32 chunks, IEND) for an image.NRGBA/image.RGBA; see
// DESIGN.md for why this is the stdlib-justified choice rather than a
// hand-rolled encoder.
func toGoImage(s Surface) image.Image {
	w, h := s.Width(), s.Height()
	switch s.Format() {
	case FormatRgba, FormatRgb:
		img := image.NewNRGBA(image.Rect(0, 0, w, h))
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				p := s.GetPixel(x, y)
				off := img.PixOffset(x, y)
				img.Pix[off], img.Pix[off+1], img.Pix[off+2], img.Pix[off+3] = p.R, p.G, p.B, p.A
			}
		}
		return img
	default:
		img := image.NewAlpha(image.Rect(0, 0, w, h))
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				p := s.GetPixel(x, y)
				img.SetAlpha(x, y, color.Alpha{A: p.A})
			}
		}
		return img
	}
}

// EncodePNG writes surf to w as a PNG image.
func EncodePNG(w io.Writer, surf Surface) error {
	if err := png.Encode(w, toGoImage(surf)); err != nil {
		return errors.Wrap(err, "EncodePNG")
	}
	return nil
}

// SavePNG writes surf to a PNG file at path.
func SavePNG(path string, surf Surface) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "SavePNG: create")
	}
	defer f.Close()
	return EncodePNG(f, surf)
}
