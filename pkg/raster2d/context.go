package raster2d

import "github.com/pkg/errors"

// Options holds the Context's mutable drawing state, with the defaults
// spec.md §4.6 names.
type Options struct {
	LineWidth  float64
	MiterLimit float64
	LineCap    LineCap
	LineJoin   LineJoin
	FillRule   FillRule
	Antialias  Antialias
	Tolerance  float64
	Dashes     []float64
	DashOffset float64
	CTM        Matrix
	Operator   Operator
	FontSize   float64
}

// DefaultOptions returns the Context default option table.
func DefaultOptions() Options {
	return Options{
		LineWidth:  2.0,
		MiterLimit: 10.0,
		LineCap:    CapButt,
		LineJoin:   JoinMiter,
		FillRule:   FillRuleNonZero,
		Antialias:  AntialiasDefault,
		Tolerance:  defaultTolerance,
		DashOffset: 0,
		CTM:        Identity(),
		Operator:   OperatorOver,
		FontSize:   16,
	}
}

// Context is the façade binding a Path (owned), a Pattern (owned), and
// a Surface (borrowed) with the current Options (spec.md §4.6).
type Context struct {
	Surface Surface
	Path    *Path
	Pattern Pattern
	Options Options

	face *Face // set by SetFontFace; nil until text is used
}

// NewContext constructs a Context around surf with default options and
// an empty Path and a transparent-black Solid pattern.
func NewContext(surf Surface) *Context {
	return &Context{
		Surface: surf,
		Path:    NewPath(),
		Pattern: NewSolid(Pixel{Format: FormatRgba}),
		Options: DefaultOptions(),
	}
}

// applyCTM maps a user-space point through the Context's current CTM;
// path construction records only device-space coordinates (spec.md
// §4.2: "all coordinates are transformed by the CTM at ingestion").
func (c *Context) applyCTM(x, y float64) (float64, float64) {
	p := c.Options.CTM.UserToDevice(Point{X: x, Y: y})
	return p.X, p.Y
}

func (c *Context) applyCTMDistance(dx, dy float64) (float64, float64) {
	p := c.Options.CTM.UserToDeviceDistance(Point{X: dx, Y: dy})
	return p.X, p.Y
}

// MoveTo, LineTo, CurveTo, Arc/ArcNegative, Close, Rel* mirror Path's
// builder API but apply the current CTM first.

func (c *Context) MoveTo(x, y float64) {
	dx, dy := c.applyCTM(x, y)
	c.Path.MoveTo(dx, dy)
}

func (c *Context) LineTo(x, y float64) {
	dx, dy := c.applyCTM(x, y)
	c.Path.LineTo(dx, dy)
}

func (c *Context) CurveTo(x1, y1, x2, y2, x3, y3 float64) error {
	a1, b1 := c.applyCTM(x1, y1)
	a2, b2 := c.applyCTM(x2, y2)
	a3, b3 := c.applyCTM(x3, y3)
	return c.Path.CurveTo(a1, b1, a2, b2, a3, b3)
}

func (c *Context) RelMoveTo(dx, dy float64) error {
	ddx, ddy := c.applyCTMDistance(dx, dy)
	return c.Path.RelMoveTo(ddx, ddy)
}

func (c *Context) RelLineTo(dx, dy float64) error {
	ddx, ddy := c.applyCTMDistance(dx, dy)
	return c.Path.RelLineTo(ddx, ddy)
}

func (c *Context) RelCurveTo(dx1, dy1, dx2, dy2, dx3, dy3 float64) error {
	a1, b1 := c.applyCTMDistance(dx1, dy1)
	a2, b2 := c.applyCTMDistance(dx2, dy2)
	a3, b3 := c.applyCTMDistance(dx3, dy3)
	return c.Path.RelCurveTo(a1, b1, a2, b2, a3, b3)
}

func (c *Context) Arc(xc, yc, r, theta1, theta2 float64) error {
	cx, cy := c.applyCTM(xc, yc)
	rx, _ := c.applyCTMDistance(r, 0)
	return c.Path.Arc(cx, cy, rx, theta1, theta2)
}

func (c *Context) ArcNegative(xc, yc, r, theta1, theta2 float64) error {
	cx, cy := c.applyCTM(xc, yc)
	rx, _ := c.applyCTMDistance(r, 0)
	return c.Path.ArcNegative(cx, cy, rx, theta1, theta2)
}

func (c *Context) Close() error { return c.Path.Close() }

func (c *Context) Reset() { c.Path.Reset() }

func (c *Context) IsClosed() bool { return c.Path.IsClosed() }

// SetSource stores pattern as the current fill/stroke source. For
// gradients, the Context's current CTM is frozen into the gradient's
// own transform; if the CTM is not invertible the pattern change is
// silently dropped (spec.md §4.6, §7, §8 scenario 6).
func (c *Context) SetSource(pattern Pattern) {
	switch g := pattern.(type) {
	case *LinearGradient:
		inv, err := c.Options.CTM.Inverse()
		if err != nil {
			GetLogger().Debug("SetSource: non-invertible CTM, gradient source dropped")
			return
		}
		gg := *g
		gg.Matrix = inv
		c.Pattern = &gg
	case *RadialGradient:
		inv, err := c.Options.CTM.Inverse()
		if err != nil {
			GetLogger().Debug("SetSource: non-invertible CTM, gradient source dropped")
			return
		}
		gg := *g
		gg.Matrix = inv
		c.Pattern = &gg
	default:
		c.Pattern = pattern
	}
}

// snapshot copies the option fields the fill/stroke/text pipelines
// read, decoupling them from any Context mutation mid-call (spec.md
// §9: "option snapshot at call time").
func (c *Context) snapshot() Options {
	opts := c.Options
	opts.Tolerance = clampTolerance(opts.Tolerance)
	opts.Dashes = append([]float64(nil), c.Options.Dashes...)
	return opts
}

// Fill paints the interior of the current path with the current
// pattern under the current fill rule and composites with the current
// operator, then preserves the path (call Reset to clear it).
func (c *Context) Fill() error {
	opts := c.snapshot()
	err := fillWithOperator(c.Path.Nodes, c.Pattern, c.Surface, FillOptions{
		Rule: opts.FillRule, AA: opts.Antialias, Tolerance: opts.Tolerance, Operator: opts.Operator,
	})
	if err != nil {
		return errors.Wrap(err, "Fill")
	}
	return nil
}

// Stroke converts the current path to its stroked outline (caps,
// joins, miter limit, dashes from the option snapshot) and fills that
// outline with the non_zero rule, per spec.md §4.4.
func (c *Context) Stroke() error {
	opts := c.snapshot()
	strokeNodes := Stroke(c.Path.Nodes, StrokeStyle{
		Width: opts.LineWidth, Cap: opts.LineCap, Join: opts.LineJoin,
		MiterLimit: opts.MiterLimit, Dashes: opts.Dashes, DashOffset: opts.DashOffset,
		Tolerance: opts.Tolerance,
	})
	err := fillWithOperator(strokeNodes, c.Pattern, c.Surface, FillOptions{
		Rule: FillRuleNonZero, AA: opts.Antialias, Tolerance: opts.Tolerance, Operator: opts.Operator,
	})
	if err != nil {
		return errors.Wrap(err, "Stroke")
	}
	return nil
}

// fillWithOperator forwards to Fill, which composites through
// opts.Operator; kept as a free function so Fill/Stroke and
// ShowText (text.go) share one entry point into the filler.
func fillWithOperator(nodes []Node, pat Pattern, surf Surface, opts FillOptions) error {
	return Fill(nodes, pat, surf, opts)
}
