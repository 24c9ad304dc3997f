package raster2d

import "testing"

// TestStrokeSquareBandLeavesInteriorUntouched reproduces the square
// stroke scenario: a 10x10 square stroked with line_width=2, join=miter,
// miter_limit=10 must leave its interior untouched while painting a
// band along the boundary.
func TestStrokeSquareBandLeavesInteriorUntouched(t *testing.T) {
	p := NewPath()
	p.MoveTo(10, 10)
	p.LineTo(20, 10)
	p.LineTo(20, 20)
	p.LineTo(10, 20)
	if err := p.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	nodes := Stroke(p.Nodes, StrokeStyle{
		Width: 2, Join: JoinMiter, MiterLimit: 10, Tolerance: defaultTolerance,
	})
	if len(nodes) == 0 {
		t.Fatalf("expected Stroke to produce a non-empty node stream")
	}

	surf, err := NewImageSurface(FormatRgba, 30, 30)
	if err != nil {
		t.Fatalf("NewImageSurface: %v", err)
	}
	err = Fill(nodes, NewSolid(RGBA(0, 0, 255, 255)), surf, FillOptions{
		Rule: FillRuleNonZero, AA: AntialiasNone, Tolerance: defaultTolerance, Operator: OperatorOver,
	})
	if err != nil {
		t.Fatalf("Fill: %v", err)
	}

	for y := 11; y <= 19; y++ {
		for x := 11; x <= 19; x++ {
			if surf.GetPixel(x, y).A != 0 {
				t.Fatalf("expected interior pixel (%d,%d) untouched, got %+v", x, y, surf.GetPixel(x, y))
			}
		}
	}

	painted := false
	for x := 9; x <= 20; x++ {
		if surf.GetPixel(x, 10).A != 0 {
			painted = true
		}
	}
	if !painted {
		t.Fatalf("expected some part of the top edge band to be painted")
	}
}

// TestStrokeDashedLineBands reproduces the dashed-line scenario: an
// open horizontal line at y=5, line_width=1, dashes=[4,4], offset 0,
// painting alternating 4-pixel-on/4-pixel-off bands at x in
// [0,3], [8,11], [16,19].
func TestStrokeDashedLineBands(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 5)
	p.LineTo(20, 5)

	nodes := Stroke(p.Nodes, StrokeStyle{
		Width: 1, Dashes: []float64{4, 4}, DashOffset: 0, Tolerance: defaultTolerance,
	})
	if len(nodes) == 0 {
		t.Fatalf("expected Stroke to produce a non-empty node stream")
	}

	surf, err := NewImageSurface(FormatRgba, 20, 10)
	if err != nil {
		t.Fatalf("NewImageSurface: %v", err)
	}
	err = Fill(nodes, NewSolid(RGBA(0, 0, 0, 255)), surf, FillOptions{
		Rule: FillRuleNonZero, AA: AntialiasNone, Tolerance: defaultTolerance, Operator: OperatorOver,
	})
	if err != nil {
		t.Fatalf("Fill: %v", err)
	}

	onRanges := [][2]int{{0, 3}, {8, 11}, {16, 19}}
	inOnRange := func(x int) bool {
		for _, r := range onRanges {
			if x >= r[0] && x <= r[1] {
				return true
			}
		}
		return false
	}

	for x := 0; x < 20; x++ {
		got := surf.GetPixel(x, 4).A != 0
		want := inOnRange(x)
		if got != want {
			t.Fatalf("x=%d: painted=%v, want %v", x, got, want)
		}
	}
}
