package raster2d

import "math"

// NodeOp tags the kind of a Node.
type NodeOp int

const (
	OpMoveTo NodeOp = iota
	OpLineTo
	OpCurveTo
	OpClosePath
)

// Node is one element of a Path's node stream. CurveTo uses P1, P2 as
// control points and P3 as the endpoint; MoveTo/LineTo use only P1.
// ClosePath carries no points.
type Node struct {
	Op         NodeOp
	P1, P2, P3 Point
}

// Path accumulates a node stream: an ordered sequence of Nodes plus two
// nullable points tracking the pen. All coordinates recorded are
// already in device space — the Context applies its CTM before calling
// into Path (see Context.applyCTM).
type Path struct {
	Nodes        []Node
	initialPoint *Point
	currentPoint *Point
}

// NewPath returns an empty path.
func NewPath() *Path {
	return &Path{}
}

// CurrentPoint reports the pen position, if any.
func (p *Path) CurrentPoint() (Point, bool) {
	if p.currentPoint == nil {
		return Point{}, false
	}
	return *p.currentPoint, true
}

// MoveTo starts a new subpath at (x, y). Consecutive identical MoveTos
// at the tail of the node stream are collapsed into one.
func (p *Path) MoveTo(x, y float64) {
	pt := Point{x, y}
	if n := len(p.Nodes); n > 0 {
		last := p.Nodes[n-1]
		if last.Op == OpMoveTo && last.P1 == pt {
			p.initialPoint = &pt
			p.currentPoint = &pt
			return
		}
	}
	p.Nodes = append(p.Nodes, Node{Op: OpMoveTo, P1: pt})
	p.initialPoint = &pt
	p.currentPoint = &pt
}

// LineTo appends a straight segment to (x, y). With no current point
// this behaves as MoveTo, per spec.
func (p *Path) LineTo(x, y float64) {
	if p.currentPoint == nil {
		p.MoveTo(x, y)
		return
	}
	pt := Point{x, y}
	p.Nodes = append(p.Nodes, Node{Op: OpLineTo, P1: pt})
	p.currentPoint = &pt
}

// CurveTo appends a cubic Bézier from the current point through control
// points (x1,y1), (x2,y2) to endpoint (x3,y3). Fails with
// KindNoCurrentPoint if there is no current point.
func (p *Path) CurveTo(x1, y1, x2, y2, x3, y3 float64) error {
	if p.currentPoint == nil {
		return newErr("CurveTo", KindNoCurrentPoint, "")
	}
	p1, p2, p3 := Point{x1, y1}, Point{x2, y2}, Point{x3, y3}
	p.Nodes = append(p.Nodes, Node{Op: OpCurveTo, P1: p1, P2: p2, P3: p3})
	p.currentPoint = &p3
	return nil
}

// RelMoveTo is MoveTo at an offset from the current point.
func (p *Path) RelMoveTo(dx, dy float64) error {
	if p.currentPoint == nil {
		return newErr("RelMoveTo", KindNoCurrentPoint, "")
	}
	cp := *p.currentPoint
	p.MoveTo(cp.X+dx, cp.Y+dy)
	return nil
}

// RelLineTo is LineTo at an offset from the current point.
func (p *Path) RelLineTo(dx, dy float64) error {
	if p.currentPoint == nil {
		return newErr("RelLineTo", KindNoCurrentPoint, "")
	}
	cp := *p.currentPoint
	p.LineTo(cp.X+dx, cp.Y+dy)
	return nil
}

// RelCurveTo is CurveTo with all three points given relative to the
// current point.
func (p *Path) RelCurveTo(dx1, dy1, dx2, dy2, dx3, dy3 float64) error {
	if p.currentPoint == nil {
		return newErr("RelCurveTo", KindNoCurrentPoint, "")
	}
	cp := *p.currentPoint
	return p.CurveTo(cp.X+dx1, cp.Y+dy1, cp.X+dx2, cp.Y+dy2, cp.X+dx3, cp.Y+dy3)
}

// Close closes the current subpath: appends ClosePath then re-primes
// with MoveTo(initialPoint), per the re-prime invariant. A no-op when
// there is no current point (per spec's "empty subpath" open question,
// never an error by itself); fails with KindNoInitialPoint if a current
// point exists but the initial point was unexpectedly unset.
func (p *Path) Close() error {
	if p.currentPoint == nil {
		return nil
	}
	if p.initialPoint == nil {
		return newErr("Close", KindNoInitialPoint, "")
	}
	p.Nodes = append(p.Nodes, Node{Op: OpClosePath})
	ip := *p.initialPoint
	p.MoveTo(ip.X, ip.Y)
	return nil
}

// Reset clears the node buffer and both tracked points.
func (p *Path) Reset() {
	p.Nodes = nil
	p.initialPoint = nil
	p.currentPoint = nil
}

// IsClosed reports whether the last two nodes are ClosePath, MoveTo.
func (p *Path) IsClosed() bool {
	n := len(p.Nodes)
	if n < 2 {
		return false
	}
	return p.Nodes[n-2].Op == OpClosePath && p.Nodes[n-1].Op == OpMoveTo
}

// maxArcSpanPerSegment is the largest angular span one cubic Bézier
// covers; Arc/ArcNegative split their span into pieces no larger than a
// quarter turn (matching spec.md §9's "one cubic Bézier per quadrant"
// guidance) and emit one Bézier per piece.
const maxArcSpanPerSegment = math.Pi / 2

// Arc appends a counter-clockwise arc of the circle centered at
// (xc, yc) with radius r, from angle theta1 to theta2 (radians). If
// theta2 < theta1 it is incremented by 2π until theta2 >= theta1. If a
// current point exists, an initial LineTo to the arc's start point is
// emitted first.
func (p *Path) Arc(xc, yc, r, theta1, theta2 float64) error {
	for theta2 < theta1 {
		theta2 += 2 * math.Pi
	}
	return p.arcImpl(xc, yc, r, theta1, theta2, true)
}

// ArcNegative is the clockwise mirror of Arc: if theta2 > theta1 it is
// decremented by 2π until theta2 <= theta1.
func (p *Path) ArcNegative(xc, yc, r, theta1, theta2 float64) error {
	for theta2 > theta1 {
		theta2 -= 2 * math.Pi
	}
	return p.arcImpl(xc, yc, r, theta1, theta2, false)
}

func (p *Path) arcImpl(xc, yc, r, theta1, theta2 float64, ccw bool) error {
	start := Point{xc + r*math.Cos(theta1), yc + r*math.Sin(theta1)}
	if p.currentPoint != nil {
		p.LineTo(start.X, start.Y)
	} else {
		p.MoveTo(start.X, start.Y)
	}

	span := theta2 - theta1
	if !ccw {
		span = -span
	}
	segments := int(math.Ceil(math.Abs(span) / maxArcSpanPerSegment))
	if segments < 1 {
		segments = 1
	}
	step := (theta2 - theta1) / float64(segments)

	a := theta1
	for i := 0; i < segments; i++ {
		b := a + step
		if err := p.arcSegmentBezier(xc, yc, r, a, b); err != nil {
			return err
		}
		a = b
	}
	return nil
}

// arcSegmentBezier emits one cubic Bézier approximating the circular
// arc from angle a to b (|b-a| <= π/2), using the standard
// kappa = (4/3)*tan((b-a)/4) control-point offset.
func (p *Path) arcSegmentBezier(xc, yc, r, a, b float64) error {
	alpha := math.Tan((b - a) / 4) * 4 / 3
	sa, ca := math.Sin(a), math.Cos(a)
	sb, cb := math.Sin(b), math.Cos(b)

	p0 := Point{xc + r*ca, yc + r*sa}
	p3 := Point{xc + r*cb, yc + r*sb}
	p1 := Point{p0.X - alpha*r*sa, p0.Y + alpha*r*ca}
	p2 := Point{p3.X + alpha*r*sb, p3.Y - alpha*r*cb}

	return p.CurveTo(p1.X, p1.Y, p2.X, p2.Y, p3.X, p3.Y)
}
