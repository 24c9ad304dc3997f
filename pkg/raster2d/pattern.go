package raster2d

// Pattern is the uniform sampling capability the filler consumes: a
// closed tagged sum (spec.md §9's "dynamic dispatch" note) over Solid
// and the richer forms in gradient.go.
type Pattern interface {
	Sample(x, y int) Pixel
}

// Solid is a flat-color pattern — the only variant spec.md's minimal
// core commits to.
type Solid struct {
	Pixel Pixel
}

// NewSolid returns a Solid pattern wrapping p.
func NewSolid(p Pixel) Solid {
	return Solid{Pixel: p}
}

func (s Solid) Sample(x, y int) Pixel {
	return s.Pixel
}
