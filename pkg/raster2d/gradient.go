package raster2d

import (
	"math"
	"sort"
)

// Extend controls how a gradient's parametric position t is mapped
// back into [0,1] once it falls outside the defined stop range.
// Grounded on other_examples' cairoGradientPatternImage.At Extend
// switch.
type Extend int

const (
	ExtendNone Extend = iota
	ExtendRepeat
	ExtendReflect
	ExtendPad
)

// ColorStop is one entry of a gradient's sorted stop list.
type ColorStop struct {
	Offset float64
	Pixel  Pixel
}

type stopList []ColorStop

func (s stopList) sorted() stopList {
	out := make(stopList, len(s))
	copy(out, s)
	sort.Slice(out, func(i, j int) bool { return out[i].Offset < out[j].Offset })
	return out
}

func (s stopList) at(t float64) Pixel {
	if len(s) == 0 {
		return Pixel{}
	}
	if t <= s[0].Offset {
		return s[0].Pixel
	}
	last := s[len(s)-1]
	if t >= last.Offset {
		return last.Pixel
	}
	for i := 0; i < len(s)-1; i++ {
		a, b := s[i], s[i+1]
		if t >= a.Offset && t <= b.Offset {
			span := b.Offset - a.Offset
			if span == 0 {
				return a.Pixel
			}
			return a.Pixel.Lerp(b.Pixel, (t-a.Offset)/span)
		}
	}
	return last.Pixel
}

func applyExtend(t float64, e Extend) (float64, bool) {
	switch e {
	case ExtendNone:
		if t < 0 || t > 1 {
			return 0, false
		}
		return t, true
	case ExtendRepeat:
		return t - math.Floor(t), true
	case ExtendReflect:
		t = math.Abs(t)
		t = t - 2*math.Floor(t/2)
		if t > 1 {
			t = 2 - t
		}
		return t, true
	case ExtendPad:
		return clamp01(t), true
	default:
		return t, true
	}
}

// LinearGradient interpolates colors along the segment (X0,Y0)-(X1,Y1)
// in device space (the Context freezes its CTM into Matrix at
// SetSource time, per spec.md §4.6).
type LinearGradient struct {
	X0, Y0, X1, Y1 float64
	Stops          []ColorStop
	Extend         Extend
	Matrix         Matrix // device-to-pattern-space; Identity if unset
}

// NewLinearGradient returns a gradient along (x0,y0)-(x1,y1) with the
// given stops (need not be pre-sorted).
func NewLinearGradient(x0, y0, x1, y1 float64, stops []ColorStop) *LinearGradient {
	return &LinearGradient{X0: x0, Y0: y0, X1: x1, Y1: y1, Stops: stopList(stops).sorted(), Matrix: Identity()}
}

func (g *LinearGradient) Sample(x, y int) Pixel {
	p := g.toPatternSpace(Point{float64(x), float64(y)})
	dx, dy := g.X1-g.X0, g.Y1-g.Y0
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return Pixel{}
	}
	t := ((p.X-g.X0)*dx + (p.Y-g.Y0)*dy) / lenSq
	t, ok := applyExtend(t, g.Extend)
	if !ok {
		return Pixel{}
	}
	return stopList(g.Stops).at(t)
}

func (g *LinearGradient) toPatternSpace(p Point) Point {
	return g.Matrix.UserToDevice(p)
}

// RadialGradient interpolates colors between two circles (Cx0,Cy0,R0)
// and (Cx1,Cy1,R1). The common concentric case (Cx0==Cx1, Cy0==Cy1) is
// solved exactly as linear interpolation of radius; the general
// two-circle case falls back to the same concentric solve anchored at
// the end circle's center, so when the centers differ t is measured
// from (Cx1,Cy1) and the start circle's center does not map to t=0.
type RadialGradient struct {
	Cx0, Cy0, R0 float64
	Cx1, Cy1, R1 float64
	Stops        []ColorStop
	Extend       Extend
	Matrix       Matrix
}

// NewRadialGradient returns a gradient between the two given circles.
func NewRadialGradient(cx0, cy0, r0, cx1, cy1, r1 float64, stops []ColorStop) *RadialGradient {
	return &RadialGradient{Cx0: cx0, Cy0: cy0, R0: r0, Cx1: cx1, Cy1: cy1, R1: r1, Stops: stopList(stops).sorted(), Matrix: Identity()}
}

func (g *RadialGradient) Sample(x, y int) Pixel {
	p := g.Matrix.UserToDevice(Point{float64(x), float64(y)})
	d := math.Hypot(p.X-g.Cx1, p.Y-g.Cy1)
	span := g.R1 - g.R0
	var t float64
	if span == 0 {
		if d <= g.R1 {
			t = 0
		} else {
			t = 1
		}
	} else {
		t = (d - g.R0) / span
	}
	t, ok := applyExtend(t, g.Extend)
	if !ok {
		return Pixel{}
	}
	return stopList(g.Stops).at(t)
}
