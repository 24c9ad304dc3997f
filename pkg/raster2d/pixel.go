package raster2d

// Format identifies a Surface's pixel storage layout.
type Format int

const (
	FormatRgba Format = iota
	FormatRgb
	FormatAlpha8
	FormatAlpha4
	FormatAlpha2
	FormatAlpha1
)

func (f Format) String() string {
	switch f {
	case FormatRgba:
		return "rgba"
	case FormatRgb:
		return "rgb"
	case FormatAlpha8:
		return "alpha8"
	case FormatAlpha4:
		return "alpha4"
	case FormatAlpha2:
		return "alpha2"
	case FormatAlpha1:
		return "alpha1"
	default:
		return "unknown"
	}
}

// Pixel is a format-tagged color value. R, G, B, A are always carried
// as straight (non-premultiplied) 8-bit channels at the field level;
// formats that store premultiplied alpha convert at the Surface
// boundary (see ImageSurface.PutPixel).
type Pixel struct {
	Format     Format
	R, G, B, A uint8
}

// RGBA constructs a straight-alpha Rgba pixel.
func RGBA(r, g, b, a uint8) Pixel {
	return Pixel{Format: FormatRgba, R: r, G: g, B: b, A: a}
}

// Gray constructs an opaque Rgb pixel with equal channels.
func Gray(v uint8) Pixel {
	return Pixel{Format: FormatRgb, R: v, G: v, B: v, A: 255}
}

// Alpha constructs an Alpha8 coverage-only pixel.
func Alpha(a uint8) Pixel {
	return Pixel{Format: FormatAlpha8, A: a}
}

// Lerp linearly interpolates between p and q by t in [0,1], per channel.
func (p Pixel) Lerp(q Pixel, t float64) Pixel {
	lerp := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t)
	}
	return Pixel{
		Format: p.Format,
		R:      lerp(p.R, q.R),
		G:      lerp(p.G, q.G),
		B:      lerp(p.B, q.B),
		A:      lerp(p.A, q.A),
	}
}

// WithAlpha returns p with its alpha channel replaced.
func (p Pixel) WithAlpha(a uint8) Pixel {
	p.A = a
	return p
}

// scaleAlpha attenuates p's alpha by coverage in [0,1], used by the
// filler's anti-aliasing path.
func (p Pixel) scaleAlpha(coverage float64) Pixel {
	p.A = uint8(float64(p.A) * coverage)
	return p
}
