package raster2d

import (
	"math"
	"testing"
)

// TestFillTriangleExactPixelCount reproduces the closed-triangle fill
// scenario: move_to(10,10); line_to(30,10); line_to(20,30); close,
// filled with AA off, must paint exactly 190 pixels red.
func TestFillTriangleExactPixelCount(t *testing.T) {
	p := NewPath()
	p.MoveTo(10, 10)
	p.LineTo(30, 10)
	p.LineTo(20, 30)
	if err := p.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	surf, err := NewImageSurface(FormatRgba, 40, 40)
	if err != nil {
		t.Fatalf("NewImageSurface: %v", err)
	}
	red := NewSolid(RGBA(255, 0, 0, 255))
	err = Fill(p.Nodes, red, surf, FillOptions{
		Rule: FillRuleNonZero, AA: AntialiasNone, Tolerance: defaultTolerance, Operator: OperatorOver,
	})
	if err != nil {
		t.Fatalf("Fill: %v", err)
	}

	count := 0
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			if surf.GetPixel(x, y).A != 0 {
				count++
			}
		}
	}
	if count != 190 {
		t.Fatalf("expected 190 painted pixels, got %d", count)
	}
}

func TestFillEmptyNodeStreamIsNoOp(t *testing.T) {
	surf, err := NewImageSurface(FormatRgba, 4, 4)
	if err != nil {
		t.Fatalf("NewImageSurface: %v", err)
	}
	if err := Fill(nil, NewSolid(RGBA(1, 2, 3, 255)), surf, FillOptions{Operator: OperatorOver}); err != nil {
		t.Fatalf("Fill of empty node stream: %v", err)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if surf.GetPixel(x, y) != (Pixel{}) {
				t.Fatalf("expected untouched surface, got %+v at (%d,%d)", surf.GetPixel(x, y), x, y)
			}
		}
	}
}

func TestFillRejectsUnclosedPath(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(5, 0)
	p.LineTo(5, 5)

	surf, err := NewImageSurface(FormatRgba, 10, 10)
	if err != nil {
		t.Fatalf("NewImageSurface: %v", err)
	}
	err = Fill(p.Nodes, NewSolid(RGBA(0, 0, 0, 255)), surf, FillOptions{Operator: OperatorOver})
	assertKind(t, err, KindPathNotClosed)
}

// TestArcClosureArea reproduces move_to(0,0); arc(10,0,5,0,2pi); close,
// checking is_closed() and that the filled area is within 1% of pi*25.
// The circle reaches y=-5, so the nodes are shifted down by 10 before
// filling to keep the whole circle on the surface. The area is the sum
// of per-pixel coverage under the default anti-aliasing, since a
// single-sample pixel count moves in whole pixels (80 here).
func TestArcClosureArea(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	if err := p.Arc(10, 0, 5, 0, 2*math.Pi); err != nil {
		t.Fatalf("Arc: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !p.IsClosed() {
		t.Fatalf("expected IsClosed true")
	}

	surf, err := NewImageSurface(FormatRgba, 20, 20)
	if err != nil {
		t.Fatalf("NewImageSurface: %v", err)
	}
	shifted := make([]Node, len(p.Nodes))
	for i, n := range p.Nodes {
		n.P1.Y += 10
		n.P2.Y += 10
		n.P3.Y += 10
		shifted[i] = n
	}
	err = Fill(shifted, NewSolid(RGBA(0, 255, 0, 255)), surf, FillOptions{
		Rule: FillRuleNonZero, AA: AntialiasDefault, Tolerance: 0.01, Operator: OperatorOver,
	})
	if err != nil {
		t.Fatalf("Fill: %v", err)
	}

	area := 0.0
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			area += float64(surf.GetPixel(x, y).A) / 255
		}
	}
	want := math.Pi * 25
	if math.Abs(area-want)/want > 0.01 {
		t.Fatalf("expected area within 1%% of %v, got %v", want, area)
	}
}
