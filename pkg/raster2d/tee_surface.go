package raster2d

// TeeSurface fans PutPixel out to a primary surface plus zero or more
// secondary targets (e.g. rendering once to a display-format surface
// and once to a capture buffer), adapted from the teacher's cairo-tee
// concept onto this package's Surface interface.
type TeeSurface struct {
	primary Surface
	targets []Surface
}

// NewTeeSurface returns a TeeSurface reporting primary's dimensions and
// format; GetPixel always reads from primary.
func NewTeeSurface(primary Surface, targets ...Surface) *TeeSurface {
	return &TeeSurface{primary: primary, targets: targets}
}

func (t *TeeSurface) Width() int     { return t.primary.Width() }
func (t *TeeSurface) Height() int    { return t.primary.Height() }
func (t *TeeSurface) Format() Format { return t.primary.Format() }

func (t *TeeSurface) GetPixel(x, y int) Pixel {
	return t.primary.GetPixel(x, y)
}

// PutPixel writes to the primary surface and every target, returning
// the primary's error (if any) after attempting all writes.
func (t *TeeSurface) PutPixel(x, y int, p Pixel) error {
	err := t.primary.PutPixel(x, y, p)
	for _, target := range t.targets {
		_ = target.PutPixel(x, y, p)
	}
	return err
}

// AddTarget appends a target surface.
func (t *TeeSurface) AddTarget(s Surface) {
	t.targets = append(t.targets, s)
}

// Targets returns the current secondary surfaces.
func (t *TeeSurface) Targets() []Surface {
	return t.targets
}
