package raster2d

// Operator selects a Porter-Duff compositing rule used by Surface
// writers when blending a freshly-sampled source pixel over whatever
// is already at (x, y). Grounded on the teacher's porter_duff.go, which
// implemented the same algebra over color.NRGBA for a PDF blend-mode
// dictionary; spec.md names the compositing operator table as an
// external-collaborator concern but a runnable library still needs one
// concrete implementation (see SPEC_FULL.md §4).
type Operator int

const (
	OperatorClear Operator = iota
	OperatorSource
	OperatorOver // the Context default (src_over)
	OperatorIn
	OperatorOut
	OperatorAtop
	OperatorDest
	OperatorDestOver
	OperatorDestIn
	OperatorDestOut
	OperatorDestAtop
	OperatorXor
	OperatorAdd
	OperatorSaturate
)

// Composite blends src over dst under op, operating on premultiplied
// channels internally and returning a straight-alpha Pixel.
func Composite(src, dst Pixel, op Operator) Pixel {
	sr, sg, sb, sa := premultiplied(src)
	dr, dg, db, da := premultiplied(dst)

	var or, og, ob, oa float64
	switch op {
	case OperatorClear:
		or, og, ob, oa = 0, 0, 0, 0
	case OperatorSource:
		or, og, ob, oa = sr, sg, sb, sa
	case OperatorOver:
		oa = sa + da*(1-sa)
		or = sr + dr*(1-sa)
		og = sg + dg*(1-sa)
		ob = sb + db*(1-sa)
	case OperatorIn:
		oa = sa * da
		or, og, ob = sr*da, sg*da, sb*da
	case OperatorOut:
		oa = sa * (1 - da)
		or, og, ob = sr*(1-da), sg*(1-da), sb*(1-da)
	case OperatorAtop:
		oa = sa*da + da*(1-sa)
		or = sr*da + dr*(1-sa)
		og = sg*da + dg*(1-sa)
		ob = sb*da + db*(1-sa)
	case OperatorDest:
		or, og, ob, oa = dr, dg, db, da
	case OperatorDestOver:
		oa = da + sa*(1-da)
		or = dr + sr*(1-da)
		og = dg + sg*(1-da)
		ob = db + sb*(1-da)
	case OperatorDestIn:
		oa = da * sa
		or, og, ob = dr*sa, dg*sa, db*sa
	case OperatorDestOut:
		oa = da * (1 - sa)
		or, og, ob = dr*(1-sa), dg*(1-sa), db*(1-sa)
	case OperatorDestAtop:
		oa = da*sa + sa*(1-da)
		or = dr*sa + sr*(1-da)
		og = dg*sa + sg*(1-da)
		ob = db*sa + sb*(1-da)
	case OperatorXor:
		oa = sa*(1-da) + da*(1-sa)
		or = sr*(1-da) + dr*(1-sa)
		og = sg*(1-da) + dg*(1-sa)
		ob = sb*(1-da) + db*(1-sa)
	case OperatorAdd:
		oa = clamp01(sa + da)
		or = clamp01(sr + dr)
		og = clamp01(sg + dg)
		ob = clamp01(sb + db)
	case OperatorSaturate:
		k := minF(sa, 1-da)
		oa = clamp01(sa + da)
		or = clamp01(sr*k + dr)
		og = clamp01(sg*k + dg)
		ob = clamp01(sb*k + db)
	default:
		or, og, ob, oa = sr, sg, sb, sa
	}

	return unpremultiplied(or, og, ob, oa)
}

func premultiplied(p Pixel) (r, g, b, a float64) {
	a = float64(p.A) / 255
	return float64(p.R) / 255 * a, float64(p.G) / 255 * a, float64(p.B) / 255 * a, a
}

func unpremultiplied(r, g, b, a float64) Pixel {
	if a <= 0 {
		return Pixel{Format: FormatRgba}
	}
	to8 := func(v float64) uint8 {
		v = clamp01(v/a) * 255
		if v > 255 {
			return 255
		}
		if v < 0 {
			return 0
		}
		return uint8(v)
	}
	return Pixel{Format: FormatRgba, R: to8(r), G: to8(g), B: to8(b), A: uint8(clamp01(a) * 255)}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
