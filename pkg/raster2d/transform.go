package raster2d

import "math"

// Point is an ordered pair in either user or device space. Equality is
// bitwise on both components.
type Point struct {
	X, Y float64
}

// Matrix is an affine transform:
//
//	[ ax  by  tx ]
//	[ cx  dy  ty ]
//	[  0   0   1 ]
//
// stored as six scalars in row-vector composition order.
type Matrix struct {
	Ax, By, Cx, Dy, Tx, Ty float64
}

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{Ax: 1, Dy: 1}
}

// Equal compares two matrices field by field.
func (m Matrix) Equal(o Matrix) bool {
	return m.Ax == o.Ax && m.By == o.By && m.Cx == o.Cx &&
		m.Dy == o.Dy && m.Tx == o.Tx && m.Ty == o.Ty
}

// Determinant returns ax*dy - by*cx.
func (m Matrix) Determinant() float64 {
	return m.Ax*m.Dy - m.By*m.Cx
}

// Mul composes m then o (row-vector semantics: a point transformed by
// m.Mul(o) is equivalent to transforming by m, then by o).
func (m Matrix) Mul(o Matrix) Matrix {
	return Matrix{
		Ax: m.Ax*o.Ax + m.By*o.Cx,
		By: m.Ax*o.By + m.By*o.Dy,
		Cx: m.Cx*o.Ax + m.Dy*o.Cx,
		Dy: m.Cx*o.By + m.Dy*o.Dy,
		Tx: m.Tx*o.Ax + m.Ty*o.Cx + o.Tx,
		Ty: m.Tx*o.By + m.Ty*o.Dy + o.Ty,
	}
}

// Inverse computes the inverse matrix. Two cases are handled: the
// axis-aligned special case (by=cx=0, covering scale-only and
// translate-only matrices), and the general case via the adjugate over
// the determinant. Fails with KindInvalidMatrix when the determinant is
// zero, or the axis-aligned special case has an exactly-zero ax or dy.
func (m Matrix) Inverse() (Matrix, error) {
	if m.By == 0 && m.Cx == 0 {
		if m.Ax == 0 || m.Dy == 0 {
			return Matrix{}, newErr("Inverse", KindInvalidMatrix, "zero axis scale")
		}
		return Matrix{
			Ax: 1 / m.Ax,
			Dy: 1 / m.Dy,
			Tx: -m.Tx / m.Ax,
			Ty: -m.Ty / m.Dy,
		}, nil
	}
	det := m.Determinant()
	if det == 0 {
		return Matrix{}, newErr("Inverse", KindInvalidMatrix, "zero determinant")
	}
	invDet := 1 / det
	ax := m.Dy * invDet
	by := -m.By * invDet
	cx := -m.Cx * invDet
	dy := m.Ax * invDet
	tx := -(m.Tx*ax + m.Ty*cx)
	ty := -(m.Tx*by + m.Ty*dy)
	return Matrix{Ax: ax, By: by, Cx: cx, Dy: dy, Tx: tx, Ty: ty}, nil
}

// Translate prepends a translation by (tx, ty): a point is translated
// before the rest of m is applied, so chaining
// identity.Rotate(a).Scale(s,s).Translate(tx,ty) applies the translate
// first, then the scale, then the rotation.
func (m Matrix) Translate(tx, ty float64) Matrix {
	return Matrix{Ax: 1, Dy: 1, Tx: tx, Ty: ty}.Mul(m)
}

// Scale prepends a scale by (sx, sy).
func (m Matrix) Scale(sx, sy float64) Matrix {
	return Matrix{Ax: sx, Dy: sy}.Mul(m)
}

// Rotate prepends a rotation of angle radians.
func (m Matrix) Rotate(angle float64) Matrix {
	s, c := math.Sin(angle), math.Cos(angle)
	return Matrix{Ax: c, By: s, Cx: -s, Dy: c}.Mul(m)
}

// UserToDevice maps a point through the full matrix.
func (m Matrix) UserToDevice(p Point) Point {
	return Point{
		X: p.X*m.Ax + p.Y*m.Cx + m.Tx,
		Y: p.X*m.By + p.Y*m.Dy + m.Ty,
	}
}

// UserToDeviceDistance maps a direction/length vector, ignoring (tx, ty).
func (m Matrix) UserToDeviceDistance(p Point) Point {
	return Point{
		X: p.X*m.Ax + p.Y*m.Cx,
		Y: p.X*m.By + p.Y*m.Dy,
	}
}

// DeviceToUser is Inverse().UserToDevice, surfacing KindInvalidMatrix
// when the matrix is singular.
func (m Matrix) DeviceToUser(p Point) (Point, error) {
	inv, err := m.Inverse()
	if err != nil {
		return Point{}, err
	}
	return inv.UserToDevice(p), nil
}

// DeviceToUserDistance is Inverse().UserToDeviceDistance.
func (m Matrix) DeviceToUserDistance(p Point) (Point, error) {
	inv, err := m.Inverse()
	if err != nil {
		return Point{}, err
	}
	return inv.UserToDeviceDistance(p), nil
}
