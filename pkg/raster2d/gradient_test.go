package raster2d

import "testing"

func TestLinearGradientEndpoints(t *testing.T) {
	g := NewLinearGradient(0, 0, 10, 0, []ColorStop{
		{Offset: 0, Pixel: RGBA(255, 0, 0, 255)},
		{Offset: 1, Pixel: RGBA(0, 0, 255, 255)},
	})
	start := g.Sample(0, 0)
	end := g.Sample(10, 0)
	if start.R != 255 || start.B != 0 {
		t.Fatalf("expected start of gradient to be pure red, got %+v", start)
	}
	if end.R != 0 || end.B != 255 {
		t.Fatalf("expected end of gradient to be pure blue, got %+v", end)
	}
}

func TestLinearGradientExtendNoneOutsideRange(t *testing.T) {
	g := NewLinearGradient(0, 0, 10, 0, []ColorStop{
		{Offset: 0, Pixel: RGBA(255, 0, 0, 255)},
		{Offset: 1, Pixel: RGBA(0, 0, 255, 255)},
	})
	g.Extend = ExtendNone
	got := g.Sample(20, 0)
	if got != (Pixel{}) {
		t.Fatalf("expected ExtendNone to produce a transparent sample beyond the gradient's range, got %+v", got)
	}
}

func TestLinearGradientExtendPadClampsToEndStop(t *testing.T) {
	g := NewLinearGradient(0, 0, 10, 0, []ColorStop{
		{Offset: 0, Pixel: RGBA(255, 0, 0, 255)},
		{Offset: 1, Pixel: RGBA(0, 0, 255, 255)},
	})
	g.Extend = ExtendPad
	got := g.Sample(100, 0)
	if got.R != 0 || got.B != 255 {
		t.Fatalf("expected ExtendPad beyond t=1 to clamp to the end stop, got %+v", got)
	}
}

func TestRadialGradientCenterAndEdge(t *testing.T) {
	g := NewRadialGradient(5, 5, 0, 5, 5, 5, []ColorStop{
		{Offset: 0, Pixel: RGBA(255, 255, 255, 255)},
		{Offset: 1, Pixel: RGBA(0, 0, 0, 255)},
	})
	center := g.Sample(5, 5)
	edge := g.Sample(10, 5)
	if center.R != 255 {
		t.Fatalf("expected gradient center to sample the first stop, got %+v", center)
	}
	if edge.R != 0 {
		t.Fatalf("expected gradient edge to sample the last stop, got %+v", edge)
	}
}
