package raster2d

import "math"

// FillRule selects how the scanline filler's winding counter decides
// pixel coverage.
type FillRule int

const (
	FillRuleNonZero FillRule = iota
	FillRuleEvenOdd
)

// Antialias selects the filler's sampling strategy.
type Antialias int

const (
	AntialiasDefault Antialias = iota // N x N supersampling
	AntialiasNone                     // single sample at pixel center
)

// supersample is the N in N x N supersampling for AntialiasDefault,
// matching spec.md §4.5's "typically 4x4" guidance.
const supersample = 4

// fillEdge is one edge-table entry, keyed by the y-range it spans; x(y)
// is reconstructed on demand rather than swept incrementally, trading a
// constant factor for a sweep that can't accumulate floating-point
// drift across many scanlines.
type fillEdge struct {
	yMin, yMax     float64 // yMin < yMax always
	x0, y0, x1, y1 float64 // original endpoints, y0 may be > y1
	winding        int     // +1 top-to-bottom, -1 bottom-to-top
}

func (e fillEdge) xAt(y float64) float64 {
	t := (y - e.y0) / (e.y1 - e.y0)
	return e.x0 + t*(e.x1-e.x0)
}

// FillOptions bundles the polygon filler's inputs beyond the node
// stream itself (spec.md §4.5).
type FillOptions struct {
	Rule      FillRule
	AA        Antialias
	Tolerance float64
	Operator  Operator
}

// Fill scan-converts nodes onto surf using pattern sampling, under
// opts. Returns KindPathNotClosed if any subpath (after flattening) is
// not closed — callers needing to fill an open subpath should close it
// explicitly first, per spec.md §4.5's edge cases.
func Fill(nodes []Node, pat Pattern, surf Surface, opts FillOptions) error {
	if len(nodes) == 0 {
		return nil
	}
	polylines := flattenPath(nodes, opts.Tolerance)
	for _, pl := range polylines {
		if len(pl.Points) < 2 {
			continue
		}
		if !pl.Closed {
			return newErr("Fill", KindPathNotClosed, "")
		}
	}

	edges := buildFillEdges(polylines)
	if len(edges) == 0 {
		return nil
	}

	minX, minY, maxX, maxY := edgeBounds(edges)
	if minX >= maxX || minY >= maxY {
		return nil
	}

	samples := 1
	if opts.AA == AntialiasDefault {
		samples = supersample
	}
	total := samples * samples

	for y := minY; y < maxY; y++ {
		for x := minX; x < maxX; x++ {
			inside := 0
			for j := 0; j < samples; j++ {
				subY := float64(y) + (float64(j)+0.5)/float64(samples)
				crossings := activeCrossings(edges, subY)
				for i := 0; i < samples; i++ {
					subX := float64(x) + (float64(i)+0.5)/float64(samples)
					if pointInside(crossings, subX, opts.Rule) {
						inside++
					}
				}
			}
			if inside == 0 {
				continue
			}
			coverage := float64(inside) / float64(total)
			src := pat.Sample(x, y)
			if coverage < 1 {
				src = src.scaleAlpha(coverage)
			}
			dst := surf.GetPixel(x, y)
			_ = surf.PutPixel(x, y, Composite(src, dst, opts.Operator))
		}
	}
	return nil
}

type crossing struct {
	x       float64
	winding int
}

// activeCrossings returns, sorted by x, every edge's x-intercept at
// scanline y, using the "top-inclusive, bottom-exclusive" convention
// for edges whose range starts or ends exactly at y (spec.md §4.5).
func activeCrossings(edges []fillEdge, y float64) []crossing {
	var out []crossing
	for _, e := range edges {
		if y < e.yMin || y >= e.yMax {
			continue
		}
		out = append(out, crossing{x: e.xAt(y), winding: e.winding})
	}
	// insertion sort: edge counts per scanline are small in practice
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].x < out[j-1].x; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

func pointInside(crossings []crossing, x float64, rule FillRule) bool {
	winding := 0
	count := 0
	for _, c := range crossings {
		if c.x > x {
			break
		}
		winding += c.winding
		count++
	}
	if rule == FillRuleEvenOdd {
		return count%2 == 1
	}
	return winding != 0
}

// buildFillEdges flattens each closed subpath's edges (including the
// implicit closing edge back to its first point) into the edge table,
// dropping horizontal edges — they contribute no winding (spec.md
// §4.5's edge cases).
func buildFillEdges(polylines []Polyline) []fillEdge {
	var edges []fillEdge
	for _, pl := range polylines {
		pts := pl.Points
		n := len(pts)
		if n < 2 {
			continue
		}
		for i := 0; i < n; i++ {
			a := pts[i]
			b := pts[(i+1)%n]
			if a.Y == b.Y {
				continue
			}
			winding := 1
			yMin, yMax := a.Y, b.Y
			if a.Y > b.Y {
				winding = -1
				yMin, yMax = b.Y, a.Y
			}
			edges = append(edges, fillEdge{
				yMin: yMin, yMax: yMax,
				x0: a.X, y0: a.Y, x1: b.X, y1: b.Y,
				winding: winding,
			})
		}
	}
	return edges
}

func edgeBounds(edges []fillEdge) (minX, minY, maxX, maxY int) {
	fMinX, fMinY := math.Inf(1), math.Inf(1)
	fMaxX, fMaxY := math.Inf(-1), math.Inf(-1)
	for _, e := range edges {
		fMinX = math.Min(fMinX, math.Min(e.x0, e.x1))
		fMaxX = math.Max(fMaxX, math.Max(e.x0, e.x1))
		fMinY = math.Min(fMinY, e.yMin)
		fMaxY = math.Max(fMaxY, e.yMax)
	}
	return int(math.Floor(fMinX)), int(math.Floor(fMinY)), int(math.Ceil(fMaxX)), int(math.Ceil(fMaxY))
}
