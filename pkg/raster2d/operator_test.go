package raster2d

import "testing"

func TestCompositeOverOpaqueSourceReplacesDest(t *testing.T) {
	src := RGBA(10, 20, 30, 255)
	dst := RGBA(200, 200, 200, 255)
	got := Composite(src, dst, OperatorOver)
	if got.R != 10 || got.G != 20 || got.B != 30 || got.A != 255 {
		t.Fatalf("expected opaque src-over to equal src, got %+v", got)
	}
}

func TestCompositeClearIsTransparent(t *testing.T) {
	got := Composite(RGBA(1, 2, 3, 255), RGBA(4, 5, 6, 255), OperatorClear)
	if got != (Pixel{Format: FormatRgba}) {
		t.Fatalf("expected OperatorClear to produce transparent black, got %+v", got)
	}
}

func TestCompositeOverTransparentSourceLeavesDest(t *testing.T) {
	dst := RGBA(50, 60, 70, 255)
	got := Composite(RGBA(0, 0, 0, 0), dst, OperatorOver)
	if got.A != dst.A || got.R != dst.R || got.G != dst.G || got.B != dst.B {
		t.Fatalf("expected fully-transparent src-over to leave dest unchanged, got %+v", got)
	}
}

func TestCompositeOverHalfAlphaBlend(t *testing.T) {
	src := RGBA(255, 0, 0, 128)
	dst := RGBA(0, 255, 0, 255)
	got := Composite(src, dst, OperatorOver)
	// src-over with sa ~ 0.5 should land roughly midway between the two
	// channels, well away from either endpoint.
	if got.R < 100 || got.R > 155 {
		t.Fatalf("expected blended red channel roughly mid-range, got %d", got.R)
	}
	if got.G < 100 || got.G > 155 {
		t.Fatalf("expected blended green channel roughly mid-range, got %d", got.G)
	}
}
