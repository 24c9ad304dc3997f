package raster2d

import "testing"

func TestPixelLerpMidpoint(t *testing.T) {
	a := RGBA(0, 0, 0, 0)
	b := RGBA(200, 100, 50, 255)
	got := a.Lerp(b, 0.5)
	if got.R != 100 || got.G != 50 || got.B != 25 || got.A != 127 {
		t.Fatalf("expected channel-wise midpoint, got %+v", got)
	}
}

func TestPixelWithAlpha(t *testing.T) {
	p := RGBA(1, 2, 3, 255).WithAlpha(10)
	if p.A != 10 || p.R != 1 {
		t.Fatalf("expected WithAlpha to only change alpha, got %+v", p)
	}
}

func TestPixelScaleAlpha(t *testing.T) {
	p := RGBA(1, 2, 3, 200).scaleAlpha(0.5)
	if p.A != 100 {
		t.Fatalf("expected scaleAlpha(0.5) to halve alpha, got %d", p.A)
	}
}
