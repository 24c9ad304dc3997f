package raster2d

import "math"

// LineCap is the style used to close an open subpath's endpoints.
type LineCap int

const (
	CapButt LineCap = iota
	CapRound
	CapSquare
)

// LineJoin is the style used to connect two stroked segments.
type LineJoin int

const (
	JoinMiter LineJoin = iota
	JoinRound
	JoinBevel
)

// StrokeStyle bundles the stroke transformer's inputs (spec.md §4.4),
// everything the Context's option snapshot carries besides the node
// stream itself.
type StrokeStyle struct {
	Width      float64
	Cap        LineCap
	Join       LineJoin
	MiterLimit float64
	Dashes     []float64
	DashOffset float64
	Tolerance  float64
}

// Stroke converts a node stream plus style into a new closed node
// stream representing the filled region of the stroked line,
// guaranteed fillable with the non_zero rule (spec.md §4.4).
func Stroke(nodes []Node, style StrokeStyle) []Node {
	if style.Width <= 0 {
		return nil
	}
	polylines := flattenPath(nodes, style.Tolerance)
	dashes, dashOK := normalizeDashes(style.Dashes)

	var out []Node
	halfWidth := style.Width / 2
	for _, pl := range polylines {
		segs := [][]Point{pl.Points}
		if dashOK {
			segs = applyDash(pl, dashes, style.DashOffset)
		}
		for _, seg := range segs {
			out = append(out, strokeOneSubpath(seg, pl.Closed && !dashOK, halfWidth, style)...)
		}
	}
	return out
}

// normalizeDashes validates a dash array per spec.md §4.4: empty
// disables dashing; any negative value or an all-zero array disables
// dashing entirely (returned ok=false).
func normalizeDashes(dashes []float64) ([]float64, bool) {
	if len(dashes) == 0 {
		return nil, false
	}
	allZero := true
	for _, d := range dashes {
		if d < 0 {
			return nil, false
		}
		if d > 0 {
			allZero = false
		}
	}
	if allZero {
		return nil, false
	}
	return dashes, true
}

// applyDash walks the arc length of a flattened polyline, splitting it
// into the "on" runs per the dash array and dash offset. Odd-length
// arrays repeat with their own inversion (spec.md §4.4: "[a] means on
// a, off a, ..."). A zero-length on-run emits a single degenerate
// two-point segment so the caller can still cap-stamp a dot there.
func applyDash(pl Polyline, dashes []float64, offset float64) [][]Point {
	pts := pl.Points
	if pl.Closed && len(pts) > 0 {
		pts = append(append([]Point{}, pts...), pts[0])
	}
	if len(pts) < 2 {
		return nil
	}

	n := len(dashes)
	total := 0.0
	for _, d := range dashes {
		total += d
	}
	if n%2 == 1 {
		total *= 2
	}
	if total <= 0 {
		return [][]Point{pts}
	}

	// Walk the dash phase starting at offset (positive "pulls"/advances
	// the phase, negative "pushes"/rewinds it — both are just a signed
	// starting position mod total).
	phase := math.Mod(offset, total)
	if phase < 0 {
		phase += total
	}
	idx := 0
	on := true
	remaining := 0.0
	consumed := 0.0
	for consumed+dashLen(dashes, idx, n) <= phase {
		consumed += dashLen(dashes, idx, n)
		on = !on
		idx++
	}
	remaining = dashLen(dashes, idx, n) - (phase - consumed)

	var out [][]Point
	var cur []Point
	if on {
		cur = []Point{pts[0]}
	}

	for i := 0; i < len(pts)-1; i++ {
		a, b := pts[i], pts[i+1]
		segLen := math.Hypot(b.X-a.X, b.Y-a.Y)
		pos := 0.0
		for pos < segLen {
			step := math.Min(remaining, segLen-pos)
			pos += step
			remaining -= step
			t := pos / segLen
			pt := Point{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
			if on {
				cur = append(cur, pt)
			}
			if remaining <= 1e-9 {
				if on && len(cur) >= 1 {
					if len(cur) == 1 {
						cur = append(cur, cur[0])
					}
					out = append(out, cur)
				}
				on = !on
				idx++
				remaining = dashLen(dashes, idx, n)
				if on {
					cur = []Point{pt}
				} else {
					cur = nil
				}
			}
		}
	}
	if on && len(cur) >= 2 {
		out = append(out, cur)
	}
	return out
}

func dashLen(dashes []float64, idx, n int) float64 {
	if n == 0 {
		return 0
	}
	i := idx % n
	return dashes[i]
}

// strokeOneSubpath offsets a single flattened polyline by halfWidth
// along its normals, applying joins between interior vertices (and at
// the seam of a closed subpath) and caps at open endpoints.
func strokeOneSubpath(pts []Point, closed bool, halfWidth float64, style StrokeStyle) []Node {
	pts = dedupAdjacent(pts)
	if len(pts) < 2 {
		if len(pts) == 1 && style.Cap == CapRound {
			return dotNodes(pts[0], halfWidth, style.Tolerance)
		}
		return nil
	}
	if closed {
		// flattenPath never repeats the first point at the end of a
		// closed subpath; append it here so the wrap-around edge
		// (last point back to first) gets its own normal and offset
		// like every other edge, and the seam join below connects it
		// to the first edge correctly.
		pts = append(append([]Point{}, pts...), pts[0])
	}

	var left, right []Point

	segCount := len(pts) - 1
	normals := make([]Point, segCount)
	for i := 0; i < segCount; i++ {
		normals[i] = unitNormal(pts[i], pts[i+1])
	}

	appendOffset := func(p Point, n Point, side float64) Point {
		return Point{p.X + side*halfWidth*n.X, p.Y + side*halfWidth*n.Y}
	}

	// Left outline (offset by +n), right outline (offset by -n),
	// walking vertex by vertex and joining consecutive segments.
	left = append(left, appendOffset(pts[0], normals[0], 1))
	right = append(right, appendOffset(pts[0], normals[0], -1))

	for i := 1; i < segCount; i++ {
		joinLeft := join(pts[i], normals[i-1], normals[i], halfWidth, 1, style)
		joinRight := join(pts[i], normals[i-1], normals[i], halfWidth, -1, style)
		left = append(left, joinLeft...)
		right = append(right, joinRight...)
	}

	left = append(left, appendOffset(pts[segCount], normals[segCount-1], 1))
	right = append(right, appendOffset(pts[segCount], normals[segCount-1], -1))

	var out []Node
	if closed {
		// Seam join between the last and first segment, then two
		// independent closed rings (left and right outlines; which one
		// is outer depends on the subpath's orientation) with opposite
		// winding so non_zero fills only the band between them.
		seamLeft := join(pts[0], normals[segCount-1], normals[0], halfWidth, 1, style)
		seamRight := join(pts[0], normals[segCount-1], normals[0], halfWidth, -1, style)
		left = append(left, seamLeft...)
		right = append(right, seamRight...)

		out = append(out, polygonNodes(left, true)...)
		out = append(out, polygonNodes(reversePoints(right), true)...)
		return out
	}

	// Open subpath: outline is left-forward, end cap, right-backward,
	// start cap, forming one closed ring.
	ring := append([]Point{}, left...)
	ring = append(ring, capPoints(pts[segCount], normals[segCount-1], halfWidth, style, true)...)
	ring = append(ring, reversePoints(right)...)
	ring = append(ring, capPoints(pts[0], normals[0], halfWidth, style, false)...)

	out = append(out, polygonNodes(ring, true)...)
	return out
}

func dedupAdjacent(pts []Point) []Point {
	if len(pts) == 0 {
		return pts
	}
	out := []Point{pts[0]}
	for _, p := range pts[1:] {
		last := out[len(out)-1]
		if p.X != last.X || p.Y != last.Y {
			out = append(out, p)
		}
	}
	return out
}

func unitNormal(a, b Point) Point {
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return Point{}
	}
	return Point{-dy / length, dx / length}
}

// join returns the extra outline points needed to connect the offset
// edges of segments (i-1,i) and (i,i+1) at pts[i], on the given side
// (+1 left, -1 right), per the selected join mode.
func join(p Point, n0, n1 Point, halfWidth float64, side float64, style StrokeStyle) []Point {
	p0 := Point{p.X + side*halfWidth*n0.X, p.Y + side*halfWidth*n0.Y}
	p1 := Point{p.X + side*halfWidth*n1.X, p.Y + side*halfWidth*n1.Y}

	cross := n0.X*n1.Y - n0.Y*n1.X
	dot := n0.X*n1.X + n0.Y*n1.Y
	convex := side*cross < 0 // offset edges diverge on this side (outer side of the turn)

	if !convex {
		// Inner side of the turn: both modes other than round just
		// connect directly; round still arcs.
		if style.Join == JoinRound {
			return arcBetween(p, p0, p1, halfWidth, style.Tolerance)
		}
		return []Point{p0, p1}
	}

	switch style.Join {
	case JoinBevel:
		return []Point{p0, p1}
	case JoinRound:
		return arcBetween(p, p0, p1, halfWidth, style.Tolerance)
	default: // JoinMiter
		theta := math.Acos(clampUnit(dot))
		if theta == 0 {
			return []Point{p0, p1}
		}
		sinHalf := math.Sin((math.Pi - theta) / 2)
		if sinHalf == 0 {
			return []Point{p0, p1}
		}
		ratio := 1 / sinHalf
		if ratio > style.MiterLimit {
			return []Point{p0, p1} // fall back to bevel
		}
		bis := Point{n0.X + n1.X, n0.Y + n1.Y}
		bisLen := math.Hypot(bis.X, bis.Y)
		if bisLen == 0 {
			return []Point{p0, p1}
		}
		miterDist := halfWidth * ratio
		tip := Point{
			p.X + side*miterDist*bis.X/bisLen,
			p.Y + side*miterDist*bis.Y/bisLen,
		}
		return []Point{p0, tip, p1}
	}
}

func clampUnit(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}

// arcBetween flattens a circular arc of radius r around center, from
// p0 to p1, to within tolerance.
func arcBetween(center, p0, p1 Point, r, tolerance float64) []Point {
	a0 := math.Atan2(p0.Y-center.Y, p0.X-center.X)
	a1 := math.Atan2(p1.Y-center.Y, p1.X-center.X)
	for a1 < a0 {
		a1 += 2 * math.Pi
	}
	for a1-a0 > math.Pi {
		a1 -= 2 * math.Pi
	}
	segments := int(math.Ceil(math.Abs(a1-a0) / maxArcSpanPerSegment))
	if segments < 1 {
		segments = 1
	}
	out := make([]Point, 0, segments+1)
	for i := 1; i <= segments; i++ {
		a := a0 + (a1-a0)*float64(i)/float64(segments)
		out = append(out, Point{center.X + r*math.Cos(a), center.Y + r*math.Sin(a)})
	}
	return out
}

// capPoints returns the outline points closing an open endpoint at p
// with outward normal n (pointing from right-outline toward
// left-outline), per the selected cap style. forward indicates we are
// walking from the left outline toward the right outline (end cap) or
// vice versa (start cap); both produce the same shape, extended away
// from the stroke, with points ordered for the direction of travel.
func capPoints(p Point, n Point, halfWidth float64, style StrokeStyle, forward bool) []Point {
	if !forward {
		// Start cap: flip the normal so the cap extends backward along
		// the tangent and runs from the right outline to the left.
		n = Point{-n.X, -n.Y}
	}
	switch style.Cap {
	case CapButt:
		return nil
	case CapSquare:
		dir := Point{n.Y, -n.X} // tangent, perpendicular to normal
		out := Point{p.X + dir.X*halfWidth, p.Y + dir.Y*halfWidth}
		left := Point{out.X + halfWidth*n.X, out.Y + halfWidth*n.Y}
		right := Point{out.X - halfWidth*n.X, out.Y - halfWidth*n.Y}
		return []Point{left, right}
	case CapRound:
		center := p
		left := Point{p.X + halfWidth*n.X, p.Y + halfWidth*n.Y}
		right := Point{p.X - halfWidth*n.X, p.Y - halfWidth*n.Y}
		a0 := math.Atan2(left.Y-center.Y, left.X-center.X)
		a1 := a0 - math.Pi
		segments := int(math.Ceil(math.Pi / maxArcSpanPerSegment))
		out := make([]Point, 0, segments)
		for i := 1; i < segments; i++ {
			a := a0 + (a1-a0)*float64(i)/float64(segments)
			out = append(out, Point{center.X + halfWidth*math.Cos(a), center.Y + halfWidth*math.Sin(a)})
		}
		out = append(out, right)
		return out
	default:
		return nil
	}
}

func dotNodes(p Point, halfWidth float64, tolerance float64) []Node {
	segments := 16
	pts := make([]Point, 0, segments)
	for i := 0; i < segments; i++ {
		a := 2 * math.Pi * float64(i) / float64(segments)
		pts = append(pts, Point{p.X + halfWidth*math.Cos(a), p.Y + halfWidth*math.Sin(a)})
	}
	return polygonNodes(pts, true)
}

func reversePoints(pts []Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}

// polygonNodes emits MoveTo, LineTo*, ClosePath, MoveTo for a closed
// ring of points, preserving the re-prime invariant.
func polygonNodes(pts []Point, closed bool) []Node {
	if len(pts) == 0 {
		return nil
	}
	nodes := make([]Node, 0, len(pts)+2)
	nodes = append(nodes, Node{Op: OpMoveTo, P1: pts[0]})
	for _, p := range pts[1:] {
		nodes = append(nodes, Node{Op: OpLineTo, P1: p})
	}
	if closed {
		nodes = append(nodes, Node{Op: OpClosePath}, Node{Op: OpMoveTo, P1: pts[0]})
	}
	return nodes
}
