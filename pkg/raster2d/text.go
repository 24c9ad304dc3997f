package raster2d

import (
	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Face wraps a parsed TrueType/OpenType font, feeding glyph outlines
// into the path pipeline as ordinary path nodes (spec.md's "Text glue"
// row; SPEC_FULL.md §3 names golang.org/x/image/font/sfnt as the
// concrete outline-extraction collaborator).
type Face struct {
	font *sfnt.Font
	buf  sfnt.Buffer
}

// NewFace parses a TrueType/OpenType font file. The returned buffer is
// owned by data's caller only if data was itself loaded from a file by
// the caller (spec.md §3's font-buffer ownership note); Face never
// retains ownership beyond the parse.
func NewFace(data []byte) (*Face, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, errors.Wrap(err, "NewFace: parse font")
	}
	return &Face{font: f}, nil
}

// outline extracts the unhinted outline of glyph gi, scaled to sizePx
// pixels, as a sequence of Path-builder calls against dst, which is
// assumed to already be positioned at the glyph's origin in dst's
// space (callers translate between glyphs).
func (fc *Face) outline(dst *Path, gi sfnt.GlyphIndex, sizePx float64) error {
	ppem := fixed.Int26_6(sizePx * 64)
	segs, err := fc.font.LoadGlyph(&fc.buf, gi, ppem, nil)
	if err != nil {
		return errors.Wrap(err, "LoadGlyph")
	}

	toFloat := func(p fixed.Point26_6) (float64, float64) {
		return float64(p.X) / 64, -float64(p.Y) / 64 // flip: font Y-up, raster Y-down
	}

	first := true
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if !first {
				_ = dst.Close()
			}
			first = false
			x, y := toFloat(seg.Args[0])
			dst.MoveTo(x, y)
		case sfnt.SegmentOpLineTo:
			x, y := toFloat(seg.Args[0])
			dst.LineTo(x, y)
		case sfnt.SegmentOpQuadTo:
			// Degree-elevate the quadratic to an equivalent cubic:
			// c1 = p0 + 2/3*(q-p0), c2 = p3 + 2/3*(q-p3).
			p0, _ := dst.CurrentPoint()
			qx, qy := toFloat(seg.Args[0])
			x3, y3 := toFloat(seg.Args[1])
			c1x, c1y := p0.X+2.0/3*(qx-p0.X), p0.Y+2.0/3*(qy-p0.Y)
			c2x, c2y := x3+2.0/3*(qx-x3), y3+2.0/3*(qy-y3)
			_ = dst.CurveTo(c1x, c1y, c2x, c2y, x3, y3)
		case sfnt.SegmentOpCubeTo:
			x1, y1 := toFloat(seg.Args[0])
			x2, y2 := toFloat(seg.Args[1])
			x3, y3 := toFloat(seg.Args[2])
			_ = dst.CurveTo(x1, y1, x2, y2, x3, y3)
		}
	}
	if !first {
		_ = dst.Close()
	}
	return nil
}

// advanceWidth returns gi's advance width in pixels at sizePx.
func (fc *Face) advanceWidth(gi sfnt.GlyphIndex, sizePx float64) (float64, error) {
	ppem := fixed.Int26_6(sizePx * 64)
	adv, err := fc.font.GlyphAdvance(&fc.buf, gi, ppem, font.HintingNone)
	if err != nil {
		return 0, errors.Wrap(err, "GlyphAdvance")
	}
	return float64(adv) / 64, nil
}

// SetFontFace binds face as the Context's current font.
func (c *Context) SetFontFace(face *Face) {
	c.face = face
}

// ShowText grapheme-segments s (github.com/clipperhouse/uax29/v2, so
// combining marks and multi-rune clusters advance the pen once rather
// than once per rune), maps each cluster's first rune to a glyph via
// the current Face's cmap, extracts its outline at the Context's font
// size, advances the pen by the cluster's advance width, and fills the
// accumulated text path with the current pattern/fill rule — exactly
// like any other filled path (spec.md's text glue commits only to
// "feeds glyph outlines into fill pipeline"; this is that feed).
func (c *Context) ShowText(x, y float64, s string) error {
	if c.face == nil {
		return errors.New("ShowText: no font face set")
	}
	opts := c.snapshot()
	textPath := NewPath()

	pen := x
	segs := graphemes.NewSegmenter([]byte(s))
	for segs.Next() {
		cluster := segs.Value()
		r := []rune(string(cluster))[0]
		gi, err := c.face.font.GlyphIndex(&c.face.buf, r)
		if err != nil {
			return errors.Wrapf(err, "ShowText: glyph lookup for %q", r)
		}
		if gi != 0 {
			glyphPath := NewPath()
			if err := c.face.outline(glyphPath, gi, opts.FontSize); err != nil {
				return err
			}
			for _, n := range glyphPath.Nodes {
				appendOffsetNode(textPath, n, pen, y)
			}
		}
		adv, err := c.face.advanceWidth(gi, opts.FontSize)
		if err != nil {
			return err
		}
		pen += adv
	}

	return fillWithOperator(textPath.Nodes, c.Pattern, c.Surface, FillOptions{
		Rule: opts.FillRule, AA: opts.Antialias, Tolerance: opts.Tolerance, Operator: opts.Operator,
	})
}

func appendOffsetNode(dst *Path, n Node, dx, dy float64) {
	switch n.Op {
	case OpMoveTo:
		dst.MoveTo(n.P1.X+dx, n.P1.Y+dy)
	case OpLineTo:
		dst.LineTo(n.P1.X+dx, n.P1.Y+dy)
	case OpCurveTo:
		_ = dst.CurveTo(n.P1.X+dx, n.P1.Y+dy, n.P2.X+dx, n.P2.Y+dy, n.P3.X+dx, n.P3.Y+dy)
	case OpClosePath:
		_ = dst.Close()
	}
}
