package raster2d

import "sync"

// Surface is the pixel sink the core consumes: opaque to the
// rasterizer beyond this contract (spec.md §3, §6).
type Surface interface {
	Width() int
	Height() int
	Format() Format
	GetPixel(x, y int) Pixel
	PutPixel(x, y int, p Pixel) error
}

// surfaceDataPool recycles ImageSurface pixel buffers across
// allocations, matching the teacher's sync.Pool reuse pattern in
// surface.go without the teacher's cairo-ABI refcounting around it.
var surfaceDataPool = sync.Pool{
	New: func() interface{} { return nil },
}

// ImageSurface is the reference Surface implementation: an in-memory
// RGBA, RGB or Alpha8 pixel buffer. Unlike the teacher's imageSurface, it
// carries no Reference()/Destroy()/refcount machinery — Go's garbage
// collector already owns the buffer's lifetime once the last reference
// to the ImageSurface value drops (see DESIGN.md).
type ImageSurface struct {
	width, height int
	format        Format
	stride        int
	data          []byte
}

// bytesPerPixel returns the storage width of one pixel in f, or 0 for
// sub-byte alpha formats (packed formats are out of scope for this
// reference surface; callers needing Alpha4/2/1 implement their own
// Surface).
func bytesPerPixel(f Format) int {
	switch f {
	case FormatRgba:
		return 4
	case FormatRgb:
		return 3
	case FormatAlpha8:
		return 1
	default:
		return 0
	}
}

// NewImageSurface allocates a width x height surface in the given
// format. Only FormatRgba, FormatRgb, and FormatAlpha8 are supported by
// this reference implementation; other formats return
// KindUnsupportedSurfaceFormat.
func NewImageSurface(format Format, width, height int) (*ImageSurface, error) {
	bpp := bytesPerPixel(format)
	if bpp == 0 {
		return nil, newErr("NewImageSurface", KindUnsupportedSurfaceFormat, format.String())
	}
	stride := width * bpp
	size := stride * height

	var data []byte
	if pooled, _ := surfaceDataPool.Get().([]byte); cap(pooled) >= size {
		data = pooled[:size]
		for i := range data {
			data[i] = 0
		}
	} else {
		data = make([]byte, size)
	}

	return &ImageSurface{
		width: width, height: height,
		format: format, stride: stride,
		data: data,
	}, nil
}

// Release returns the surface's buffer to the shared pool. Optional:
// callers that don't call it simply let the GC reclaim the buffer.
func (s *ImageSurface) Release() {
	if s.data != nil {
		surfaceDataPool.Put(s.data[:0]) //nolint:staticcheck // pool wants capacity, not contents
		s.data = nil
	}
}

func (s *ImageSurface) Width() int    { return s.width }
func (s *ImageSurface) Height() int   { return s.height }
func (s *ImageSurface) Format() Format { return s.format }

func (s *ImageSurface) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.width && y < s.height
}

// GetPixel reads the pixel at (x, y); out-of-bounds reads return the
// zero Pixel.
func (s *ImageSurface) GetPixel(x, y int) Pixel {
	if !s.inBounds(x, y) {
		return Pixel{}
	}
	bpp := bytesPerPixel(s.format)
	off := y*s.stride + x*bpp
	switch s.format {
	case FormatRgba:
		return demultiplyRGBA(s.data[off], s.data[off+1], s.data[off+2], s.data[off+3])
	case FormatRgb:
		return Pixel{Format: FormatRgb, R: s.data[off], G: s.data[off+1], B: s.data[off+2], A: 255}
	case FormatAlpha8:
		return Alpha(s.data[off])
	default:
		return Pixel{}
	}
}

// PutPixel writes p at (x, y), converting straight alpha to the
// surface's storage convention (premultiplied for Rgba, per spec.md
// §3). Out-of-bounds writes are silently clipped, matching how a
// scanline filler's bounding box may slightly overrun a surface edge.
func (s *ImageSurface) PutPixel(x, y int, p Pixel) error {
	if !s.inBounds(x, y) {
		return nil
	}
	bpp := bytesPerPixel(s.format)
	off := y*s.stride + x*bpp
	switch s.format {
	case FormatRgba:
		pr, pg, pb, pa := premultiplyRGBA(p)
		s.data[off], s.data[off+1], s.data[off+2], s.data[off+3] = pr, pg, pb, pa
	case FormatRgb:
		s.data[off], s.data[off+1], s.data[off+2] = p.R, p.G, p.B
	case FormatAlpha8:
		s.data[off] = p.A
	default:
		return newErr("PutPixel", KindUnsupportedSurfaceFormat, s.format.String())
	}
	return nil
}

func premultiplyRGBA(p Pixel) (r, g, b, a uint8) {
	a = p.A
	scale := float64(a) / 255
	return uint8(float64(p.R) * scale), uint8(float64(p.G) * scale), uint8(float64(p.B) * scale), a
}

func demultiplyRGBA(r, g, b, a uint8) Pixel {
	if a == 0 {
		return Pixel{Format: FormatRgba}
	}
	scale := 255 / float64(a)
	clamp := func(v float64) uint8 {
		if v > 255 {
			return 255
		}
		return uint8(v)
	}
	return Pixel{
		Format: FormatRgba,
		R:      clamp(float64(r) * scale),
		G:      clamp(float64(g) * scale),
		B:      clamp(float64(b) * scale),
		A:      a,
	}
}
