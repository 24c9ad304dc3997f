// Command vector2draw exercises the raster2d pipeline end to end: it
// builds a handful of paths, fills and strokes them with solid and
// gradient patterns, lays out a line of text, and writes the result to
// a PNG file.
package main

import (
	"flag"
	"log"
	"math"
	"os"

	"github.com/novvoo/go-vector2d/pkg/raster2d"
)

func main() {
	var (
		width  = flag.Int("width", 400, "image width")
		height = flag.Int("height", 300, "image height")
		output = flag.String("output", "vector2draw.png", "output PNG path")
		font   = flag.String("font", "", "TrueType/OpenType font file for the text demo (optional)")
	)
	flag.Parse()

	surf, err := raster2d.NewImageSurface(raster2d.FormatRgba, *width, *height)
	if err != nil {
		log.Fatalf("NewImageSurface: %v", err)
	}
	ctx := raster2d.NewContext(surf)

	drawBackground(ctx, *width, *height)
	drawTriangle(ctx)
	drawStrokedRect(ctx)
	drawGradientCircle(ctx)
	drawDashedLine(ctx)
	if *font != "" {
		drawText(ctx, *font)
	}

	if err := raster2d.SavePNG(*output, surf); err != nil {
		log.Fatalf("SavePNG: %v", err)
	}
	log.Printf("vector2draw: wrote %s (%dx%d)\n", *output, *width, *height)
}

// drawBackground fills the whole surface with a flat pale color so the
// demo shapes show up against something other than transparent black.
func drawBackground(ctx *raster2d.Context, w, h int) {
	ctx.SetSource(raster2d.NewSolid(raster2d.RGBA(242, 242, 230, 255)))
	ctx.MoveTo(0, 0)
	ctx.LineTo(float64(w), 0)
	ctx.LineTo(float64(w), float64(h))
	ctx.LineTo(0, float64(h))
	_ = ctx.Close()
	_ = ctx.Fill()
	ctx.Reset()
}

// drawTriangle fills a small solid triangle, the same shape spec.md's
// scenario 1 exercises, scaled up so it is visible in the demo.
func drawTriangle(ctx *raster2d.Context) {
	ctx.SetSource(raster2d.NewSolid(raster2d.RGBA(204, 26, 26, 255)))
	ctx.MoveTo(20, 20)
	ctx.LineTo(80, 20)
	ctx.LineTo(50, 80)
	_ = ctx.Close()
	_ = ctx.Fill()
	ctx.Reset()
}

// drawStrokedRect strokes a square with round joins at the corners.
func drawStrokedRect(ctx *raster2d.Context) {
	ctx.SetSource(raster2d.NewSolid(raster2d.RGBA(26, 26, 153, 255)))
	ctx.Options.LineWidth = 6
	ctx.Options.LineJoin = raster2d.JoinRound
	ctx.Options.LineCap = raster2d.CapButt
	ctx.MoveTo(120, 20)
	ctx.LineTo(200, 20)
	ctx.LineTo(200, 100)
	ctx.LineTo(120, 100)
	_ = ctx.Close()
	_ = ctx.Stroke()
	ctx.Reset()
}

// drawGradientCircle fills a circular arc with a radial gradient,
// exercising the pattern-sampling pipeline and the CTM-freeze SetSource
// does for gradients.
func drawGradientCircle(ctx *raster2d.Context) {
	grad := raster2d.NewRadialGradient(175, 175, 0, 175, 175, 50, []raster2d.ColorStop{
		{Offset: 0, Pixel: raster2d.RGBA(255, 255, 102, 255)},
		{Offset: 1, Pixel: raster2d.RGBA(204, 102, 0, 255)},
	})
	grad.Extend = raster2d.ExtendPad
	ctx.SetSource(grad)
	_ = ctx.Arc(175, 175, 50, 0, 2*math.Pi)
	_ = ctx.Close()
	_ = ctx.Fill()
	ctx.Reset()
}

// drawDashedLine strokes a dashed horizontal line with a 5-on/3-off
// dash pattern.
func drawDashedLine(ctx *raster2d.Context) {
	ctx.SetSource(raster2d.NewSolid(raster2d.RGBA(26, 128, 26, 255)))
	ctx.Options.LineWidth = 3
	ctx.Options.Dashes = []float64{5, 3}
	ctx.MoveTo(20, 250)
	ctx.LineTo(380, 250)
	_ = ctx.Stroke()
	ctx.Options.Dashes = nil
	ctx.Reset()
}

// drawText loads fontPath and lays out a short line of text, exercising
// the grapheme-segmented glyph-outline-to-fill pipeline.
func drawText(ctx *raster2d.Context, fontPath string) {
	data, err := os.ReadFile(fontPath)
	if err != nil {
		log.Printf("drawText: %v (skipping text demo)", err)
		return
	}
	face, err := raster2d.NewFace(data)
	if err != nil {
		log.Printf("drawText: %v (skipping text demo)", err)
		return
	}
	ctx.SetFontFace(face)
	ctx.Options.FontSize = 24
	ctx.SetSource(raster2d.NewSolid(raster2d.RGBA(0, 0, 0, 255)))
	if err := ctx.ShowText(20, 180, "raster2d"); err != nil {
		log.Printf("ShowText: %v", err)
	}
}
