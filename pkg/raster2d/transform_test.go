package raster2d

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestIdentityMatrix(t *testing.T) {
	id := Identity()
	p := Point{3, 4}
	if got := id.UserToDevice(p); got != p {
		t.Fatalf("identity.UserToDevice(%v) = %v", p, got)
	}
	if id.Determinant() != 1 {
		t.Fatalf("identity determinant = %v, want 1", id.Determinant())
	}
}

func TestInverseRoundTrip(t *testing.T) {
	m := Identity().Rotate(0.7).Scale(2, 3).Translate(5, -1)
	p := Point{11, -4}
	dev := m.UserToDevice(p)
	back, err := m.DeviceToUser(dev)
	if err != nil {
		t.Fatalf("DeviceToUser: %v", err)
	}
	if !almostEqual(back.X, p.X) || !almostEqual(back.Y, p.Y) {
		t.Fatalf("round-trip mismatch: got %v, want %v", back, p)
	}
}

// TestTransformComposition reproduces the chain
// identity.rotate(pi/2).scale(10,10).translate(10,20).user_to_device(9,0).
func TestTransformComposition(t *testing.T) {
	m := Identity().Rotate(math.Pi/2).Scale(10, 10).Translate(10, 20)
	got := m.UserToDevice(Point{9, 0})
	want := Point{-200, 190}
	if !almostEqual(got.X, want.X) || !almostEqual(got.Y, want.Y) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

// TestInverseFailure reproduces the all-zero-linear-part matrix that
// must fail to invert.
func TestInverseFailure(t *testing.T) {
	m := Matrix{Ax: 0, By: 0, Cx: 0, Dy: 0}
	_, err := m.Inverse()
	assertKind(t, err, KindInvalidMatrix)
}

func TestSetSourceGradientSilentNoOpOnSingularCTM(t *testing.T) {
	surf, err := NewImageSurface(FormatRgba, 10, 10)
	if err != nil {
		t.Fatalf("NewImageSurface: %v", err)
	}
	ctx := NewContext(surf)
	ctx.Options.CTM = Matrix{Ax: 0, By: 0, Cx: 0, Dy: 0}

	before := ctx.Pattern
	grad := NewLinearGradient(0, 0, 10, 10, []ColorStop{
		{Offset: 0, Pixel: RGBA(255, 0, 0, 255)},
		{Offset: 1, Pixel: RGBA(0, 0, 255, 255)},
	})
	ctx.SetSource(grad)
	if ctx.Pattern != before {
		t.Fatalf("expected SetSource to silently drop the gradient on a non-invertible CTM, pattern changed to %+v", ctx.Pattern)
	}
}
