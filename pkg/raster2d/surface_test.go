package raster2d

import "testing"

func TestImageSurfacePutGetPixelRoundTrip(t *testing.T) {
	surf, err := NewImageSurface(FormatRgba, 4, 4)
	if err != nil {
		t.Fatalf("NewImageSurface: %v", err)
	}
	want := RGBA(200, 100, 50, 255)
	if err := surf.PutPixel(1, 2, want); err != nil {
		t.Fatalf("PutPixel: %v", err)
	}
	got := surf.GetPixel(1, 2)
	if got != want {
		t.Fatalf("round-trip mismatch: got %+v, want %+v", got, want)
	}
}

func TestImageSurfaceOutOfBoundsIsSilentlyClipped(t *testing.T) {
	surf, err := NewImageSurface(FormatRgba, 4, 4)
	if err != nil {
		t.Fatalf("NewImageSurface: %v", err)
	}
	if err := surf.PutPixel(-1, 0, RGBA(1, 2, 3, 4)); err != nil {
		t.Fatalf("expected out-of-bounds PutPixel to be a silent no-op, got %v", err)
	}
	if got := surf.GetPixel(100, 100); got != (Pixel{}) {
		t.Fatalf("expected out-of-bounds GetPixel to return the zero Pixel, got %+v", got)
	}
}

func TestImageSurfaceUnsupportedFormat(t *testing.T) {
	_, err := NewImageSurface(FormatAlpha4, 4, 4)
	assertKind(t, err, KindUnsupportedSurfaceFormat)
}

func TestTeeSurfaceWritesAllTargets(t *testing.T) {
	primary, err := NewImageSurface(FormatRgba, 2, 2)
	if err != nil {
		t.Fatalf("NewImageSurface: %v", err)
	}
	extra, err := NewImageSurface(FormatRgba, 2, 2)
	if err != nil {
		t.Fatalf("NewImageSurface: %v", err)
	}
	tee := NewTeeSurface(primary, extra)
	want := RGBA(9, 8, 7, 255)
	if err := tee.PutPixel(0, 0, want); err != nil {
		t.Fatalf("PutPixel: %v", err)
	}
	if got := primary.GetPixel(0, 0); got != want {
		t.Fatalf("expected primary surface to receive the write, got %+v", got)
	}
	if got := extra.GetPixel(0, 0); got != want {
		t.Fatalf("expected tee target to receive the write, got %+v", got)
	}
}
