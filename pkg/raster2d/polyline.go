package raster2d

// Polyline is one flattened subpath: an ordered list of vertices plus
// whether the node stream explicitly closed it.
type Polyline struct {
	Points []Point
	Closed bool
}

// flattenPath walks a node stream, flattening CurveTo segments to line
// segments within tolerance, and groups the result into per-subpath
// polylines. ClosePath marks the just-finished polyline Closed; the
// re-prime MoveTo that always follows it starts a fresh (possibly
// empty, per the "empty subpath" open question) polyline.
func flattenPath(nodes []Node, tolerance float64) []Polyline {
	var out []Polyline
	var cur []Point
	var last Point

	flush := func(closed bool) {
		if len(cur) >= 2 {
			out = append(out, Polyline{Points: cur, Closed: closed})
		}
		cur = nil
	}

	for _, n := range nodes {
		switch n.Op {
		case OpMoveTo:
			flush(false)
			cur = append(cur, n.P1)
			last = n.P1
		case OpLineTo:
			cur = append(cur, n.P1)
			last = n.P1
		case OpCurveTo:
			pts := flattenCubic(last, n.P1, n.P2, n.P3, tolerance, nil)
			cur = append(cur, pts...)
			last = n.P3
		case OpClosePath:
			flush(true)
		}
	}
	flush(false)
	return out
}
