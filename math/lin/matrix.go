// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

// Matrix functions deal with 3x3 matrices expected to be used in CPU 3D
// transform or physics calculations.
//
// Rotation matrices built by SetQ and SetAa rotate a column vector
// (x, y, z) through MultMv:
//
//	x' = Xx*x + Xy*y + Xz*z
//	y' = Yx*x + Yy*y + Yz*z
//	z' = Zx*x + Zy*y + Zz*z
//
// so the rotated coordinate axes are the columns of the matrix. MultvM,
// the row-vector product, applies the inverse (transposed) rotation.
//
// This matrix implementation uses explicitly indexed, Row-Major, matrix
// members as follows:
//
//	     3x3 M3
//	[Xx, Xy, Xz]  row 0
//	[Yx, Yy, Yz]  row 1
//	[Zx, Zy, Zz]  row 2

// M3 is a 3x3 matrix where the matrix elements are individually addressable.
type M3[R Real] struct {
	Xx, Xy, Xz R // indices 0, 1, 2  [00, 01, 02]  row 0
	Yx, Yy, Yz R // indices 3, 4, 5  [10, 11, 12]  row 1
	Zx, Zy, Zz R // indices 6, 7, 8  [20, 21, 22]  row 2
}

// Eq (==) returns true if all the elements in matrix m have the same value
// as the corresponding elements in matrix a.
func (m *M3[R]) Eq(a *M3[R]) bool {
	return m.Xx == a.Xx && m.Xy == a.Xy && m.Xz == a.Xz &&
		m.Yx == a.Yx && m.Yy == a.Yy && m.Yz == a.Yz &&
		m.Zx == a.Zx && m.Zy == a.Zy && m.Zz == a.Zz
}

// Aeq (~=) almost equals returns true if all the elements in matrix m have
// essentially the same value as the corresponding elements in matrix a.
// Used where equals is unlikely to return true due to float precision.
func (m *M3[R]) Aeq(a *M3[R]) bool {
	return Aeq(m.Xx, a.Xx) && Aeq(m.Xy, a.Xy) && Aeq(m.Xz, a.Xz) &&
		Aeq(m.Yx, a.Yx) && Aeq(m.Yy, a.Yy) && Aeq(m.Yz, a.Yz) &&
		Aeq(m.Zx, a.Zx) && Aeq(m.Zy, a.Zy) && Aeq(m.Zz, a.Zz)
}

// SetS (=) explicitly sets the matrix scalar values using the given scalars.
//
//	Xx, Xy, Xz is the X Axis.
//	Yx, Yy, Yz is the Y Axis.
//	Zx, Zy, Zz is the Z Axis.
func (m *M3[R]) SetS(Xx, Xy, Xz, Yx, Yy, Yz, Zx, Zy, Zz R) *M3[R] {
	m.Xx, m.Xy, m.Xz = Xx, Xy, Xz
	m.Yx, m.Yy, m.Yz = Yx, Yy, Yz
	m.Zx, m.Zy, m.Zz = Zx, Zy, Zz
	return m
}

// Set (=) assigns all the scalar values from matrix a to the
// corresponding scalar values in matrix m.
// The source matrix a is unchanged. The updated matrix m is returned.
func (m *M3[R]) Set(a *M3[R]) *M3[R] {
	m.Xx, m.Xy, m.Xz = a.Xx, a.Xy, a.Xz
	m.Yx, m.Yy, m.Yz = a.Yx, a.Yy, a.Yz
	m.Zx, m.Zy, m.Zz = a.Zx, a.Zy, a.Zz
	return m
}

// Abs updates m to be the absolute (non-negative) element values of the
// corresponding element values in matrix a. The updated matrix m is returned.
func (m *M3[R]) Abs(a *M3[R]) *M3[R] {
	m.Xx, m.Xy, m.Xz = abs(a.Xx), abs(a.Xy), abs(a.Xz)
	m.Yx, m.Yy, m.Yz = abs(a.Yx), abs(a.Yy), abs(a.Yz)
	m.Zx, m.Zy, m.Zz = abs(a.Zx), abs(a.Zy), abs(a.Zz)
	return m
}

// Transpose updates m to be the reflection of matrix a over its diagonal.
//
//	[ Xx Xy Xz ]    [ Xx Yx Zx ]
//	[ Yx Yy Yz ] => [ Xy Yy Zy ]
//	[ Zx Zy Zz ]    [ Xz Yz Zz ]
//
// The input matrix a is not changed. Matrix m may be used as the input parameter.
func (m *M3[R]) Transpose(a *M3[R]) *M3[R] {
	tXy, tXz, tYz := a.Xy, a.Xz, a.Yz
	m.Xx, m.Xy, m.Xz = a.Xx, a.Yx, a.Zx
	m.Yx, m.Yy, m.Yz = tXy, a.Yy, a.Zy
	m.Zx, m.Zy, m.Zz = tXz, tYz, a.Zz
	return m
}

// Add (+) adds matrices a and b storing the results in m.
// It is safe to use the calling matrix m as one or both of the parameters.
func (m *M3[R]) Add(a, b *M3[R]) *M3[R] {
	m.Xx, m.Xy, m.Xz = a.Xx+b.Xx, a.Xy+b.Xy, a.Xz+b.Xz
	m.Yx, m.Yy, m.Yz = a.Yx+b.Yx, a.Yy+b.Yy, a.Yz+b.Yz
	m.Zx, m.Zy, m.Zz = a.Zx+b.Zx, a.Zy+b.Zy, a.Zz+b.Zz
	return m
}

// Sub (-) subtracts matrices b from a storing the results in m.
func (m *M3[R]) Sub(a, b *M3[R]) *M3[R] {
	m.Xx, m.Xy, m.Xz = a.Xx-b.Xx, a.Xy-b.Xy, a.Xz-b.Xz
	m.Yx, m.Yy, m.Yz = a.Yx-b.Yx, a.Yy-b.Yy, a.Yz-b.Yz
	m.Zx, m.Zy, m.Zz = a.Zx-b.Zx, a.Zy-b.Zy, a.Zz-b.Zz
	return m
}

// Mult (*) multiplies matrices l and r storing the results in m.
//
//	[ lXx lXy lXz ] [ rXx rXy rXz ]    [ mXx mXy mXz ]
//	[ lYx lYy lYz ]x[ rYx rYy rYz ] => [ mYx mYy mYz ]
//	[ lZx lZy lZz ] [ rZx rZy rZz ]    [ mZx mZy mZz ]
//
// It is safe to use the calling matrix m as one or both of the parameters.
func (m *M3[R]) Mult(l, r *M3[R]) *M3[R] {
	xx := l.Xx*r.Xx + l.Xy*r.Yx + l.Xz*r.Zx
	xy := l.Xx*r.Xy + l.Xy*r.Yy + l.Xz*r.Zy
	xz := l.Xx*r.Xz + l.Xy*r.Yz + l.Xz*r.Zz
	yx := l.Yx*r.Xx + l.Yy*r.Yx + l.Yz*r.Zx
	yy := l.Yx*r.Xy + l.Yy*r.Yy + l.Yz*r.Zy
	yz := l.Yx*r.Xz + l.Yy*r.Yz + l.Yz*r.Zz
	zx := l.Zx*r.Xx + l.Zy*r.Yx + l.Zz*r.Zx
	zy := l.Zx*r.Xy + l.Zy*r.Yy + l.Zz*r.Zy
	zz := l.Zx*r.Xz + l.Zy*r.Yz + l.Zz*r.Zz
	m.Xx, m.Xy, m.Xz = xx, xy, xz
	m.Yx, m.Yy, m.Yz = yx, yy, yz
	m.Zx, m.Zy, m.Zz = zx, zy, zz
	return m
}

// MultLtR multiplies the transpose of matrix lt on the left of matrix r
// and stores the result in m, saving a separate transpose call. The
// dynamics solver does not use it.
//
//	[ lXx lYx lZx ] [ rXx rXy rXz ]    [ mXx mXy mXz ]
//	[ lXy lYy lZy ]x[ rYx rYy rYz ] => [ mYx mYy mYz ]
//	[ lXz lYz lZz ] [ rZx rZy rZz ]    [ mZx mZy mZz ]
func (m *M3[R]) MultLtR(lt, r *M3[R]) *M3[R] {
	xx := lt.Xx*r.Xx + lt.Yx*r.Yx + lt.Zx*r.Zx
	xy := lt.Xx*r.Xy + lt.Yx*r.Yy + lt.Zx*r.Zy
	xz := lt.Xx*r.Xz + lt.Yx*r.Yz + lt.Zx*r.Zz
	yx := lt.Xy*r.Xx + lt.Yy*r.Yx + lt.Zy*r.Zx
	yy := lt.Xy*r.Xy + lt.Yy*r.Yy + lt.Zy*r.Zy
	yz := lt.Xy*r.Xz + lt.Yy*r.Yz + lt.Zy*r.Zz
	zx := lt.Xz*r.Xx + lt.Yz*r.Yx + lt.Zz*r.Zx
	zy := lt.Xz*r.Xy + lt.Yz*r.Yy + lt.Zz*r.Zy
	zz := lt.Xz*r.Xz + lt.Yz*r.Yz + lt.Zz*r.Zz
	m.Xx, m.Xy, m.Xz = xx, xy, xz
	m.Yx, m.Yy, m.Yz = yx, yy, yz
	m.Zx, m.Zy, m.Zz = zx, zy, zz
	return m
}

// Scale (*) each element of matrix m by the given scalar.
func (m *M3[R]) Scale(s R) *M3[R] {
	m.Xx, m.Xy, m.Xz = m.Xx*s, m.Xy*s, m.Xz*s
	m.Yx, m.Yy, m.Yz = m.Yx*s, m.Yy*s, m.Yz*s
	m.Zx, m.Zy, m.Zz = m.Zx*s, m.Zy*s, m.Zz*s
	return m
}

// ScaleV (*) scales each column of matrix m using the given vector v
// for elements x, y, z. The updated matrix m is returned.
func (m *M3[R]) ScaleV(v *V3[R]) *M3[R] {
	m.Xx, m.Xy, m.Xz = m.Xx*v.X, m.Xy*v.Y, m.Xz*v.Z
	m.Yx, m.Yy, m.Yz = m.Yx*v.X, m.Yy*v.Y, m.Yz*v.Z
	m.Zx, m.Zy, m.Zz = m.Zx*v.X, m.Zy*v.Y, m.Zz*v.Z
	return m
}

// SetQ converts a quaternion rotation representation to a matrix
// rotation representation. SetQ updates matrix m to be the rotation
// matrix representing the rotation described by unit-quaternion q.
//
//	                   [ mXx mXy mXz ]
//	[ qx qy qz qw ] => [ mYx mYy mYz ]
//	                   [ mZx mZy mZz ]
//
// The parameter q is unchanged. The updated matrix m is returned.
func (m *M3[R]) SetQ(q *Q[R]) *M3[R] {
	xx, yy, zz := q.X*q.X, q.Y*q.Y, q.Z*q.Z
	xy, xz, yz := q.X*q.Y, q.X*q.Z, q.Y*q.Z
	wx, wy, wz := q.W*q.X, q.W*q.Y, q.W*q.Z
	m.Xx, m.Xy, m.Xz = 1-2*(yy+zz), 2*(xy-wz), 2*(xz+wy)
	m.Yx, m.Yy, m.Yz = 2*(xy+wz), 1-2*(xx+zz), 2*(yz-wx)
	m.Zx, m.Zy, m.Zz = 2*(xz-wy), 2*(yz+wx), 1-2*(xx+yy)
	return m
}

// SetSkewSym sets the matrix m to be a skew-symmetric matrix based
// on the elements of vector v, so that m.MultMv(a) equals the cross
// product v x a.
func (m *M3[R]) SetSkewSym(v *V3[R]) *M3[R] {
	m.Xx, m.Xy, m.Xz = 0, -v.Z, v.Y
	m.Yx, m.Yy, m.Yz = v.Z, 0, -v.X
	m.Zx, m.Zy, m.Zz = -v.Y, v.X, 0
	return m
}

// Det returns the determinant of matrix m.
func (m *M3[R]) Det() R {
	return m.Xx*(m.Yy*m.Zz-m.Yz*m.Zy) + m.Xy*(m.Yz*m.Zx-m.Yx*m.Zz) + m.Xz*(m.Yx*m.Zy-m.Yy*m.Zx)
}

// Cof returns one of the possible cofactors of a 3x3 matrix given the
// input minor (the row and column removed from the calculation).
func (m *M3[R]) Cof(row, col int) R {
	minor := row*10 + col
	switch minor {
	case 00:
		return m.Yy*m.Zz - m.Yz*m.Zy
	case 01:
		return m.Yz*m.Zx - m.Yx*m.Zz
	case 02:
		return m.Yx*m.Zy - m.Yy*m.Zx
	case 10:
		return m.Xz*m.Zy - m.Xy*m.Zz
	case 11:
		return m.Xx*m.Zz - m.Xz*m.Zx
	case 12:
		return m.Xy*m.Zx - m.Xx*m.Zy
	case 20:
		return m.Xy*m.Yz - m.Xz*m.Yy
	case 21:
		return m.Xz*m.Yx - m.Xx*m.Yz
	case 22:
		return m.Xx*m.Yy - m.Xy*m.Yx
	}
	return 0
}

// Adj updates m to be the adjoint matrix of matrix a: the transpose of the
// cofactor matrix of a.
func (m *M3[R]) Adj(a *M3[R]) *M3[R] {
	xx, xy, xz := a.Cof(0, 0), a.Cof(1, 0), a.Cof(2, 0)
	yx, yy, yz := a.Cof(0, 1), a.Cof(1, 1), a.Cof(2, 1)
	zx, zy, zz := a.Cof(0, 2), a.Cof(1, 2), a.Cof(2, 2)
	m.Xx, m.Xy, m.Xz = xx, xy, xz
	m.Yx, m.Yy, m.Yz = yx, yy, yz
	m.Zx, m.Zy, m.Zz = zx, zy, zz
	return m
}

// Inv updates m to be the inverse of matrix a. The updated matrix m is returned.
// Matrix m is not updated if the matrix has no inverse.
func (m *M3[R]) Inv(a *M3[R]) *M3[R] {
	det := a.Det()
	if det != 0 {
		s := 1 / det
		xx, xy, xz := a.Cof(0, 0)*s, a.Cof(1, 0)*s, a.Cof(2, 0)*s
		yx, yy, yz := a.Cof(0, 1)*s, a.Cof(1, 1)*s, a.Cof(2, 1)*s
		zx, zy, zz := a.Cof(0, 2)*s, a.Cof(1, 2)*s, a.Cof(2, 2)*s
		m.Xx, m.Xy, m.Xz = xx, xy, xz
		m.Yx, m.Yy, m.Yz = yx, yy, yz
		m.Zx, m.Zy, m.Zz = zx, zy, zz
	}
	return m
}

// SetAa, set axis-angle, updates m to be a rotation matrix from the
// given axis (ax, ay, az) and angle (in radians). The updated matrix m
// is returned; m is unchanged if the axis has zero length.
func (m *M3[R]) SetAa(ax, ay, az, ang R) *M3[R] {
	alenSqr := ax*ax + ay*ay + az*az
	if alenSqr == 0 {
		return m
	}
	ilen := 1 / sqrt(alenSqr)
	ax, ay, az = ax*ilen, ay*ilen, az*ilen

	rcos, rsin := cos(ang), sin(ang)
	m.Xx = rcos + ax*ax*(1-rcos)
	m.Xy = -az*rsin + ay*ax*(1-rcos)
	m.Xz = ay*rsin + az*ax*(1-rcos)
	m.Yx = az*rsin + ax*ay*(1-rcos)
	m.Yy = rcos + ay*ay*(1-rcos)
	m.Yz = -ax*rsin + az*ay*(1-rcos)
	m.Zx = -ay*rsin + ax*az*(1-rcos)
	m.Zy = ax*rsin + ay*az*(1-rcos)
	m.Zz = rcos + az*az*(1-rcos)
	return m
}

// methods above do not allocate memory.
// ============================================================================
// convenience functions for allocating matrices. Nothing else should allocate.

// NewM3 creates a new, all zero, 3x3 matrix.
func NewM3[R Real]() *M3[R] { return &M3[R]{} }

// NewM3I creates a new 3x3 identity matrix.
//
//	[ 1 0 0 ]    [ Xx Xy Xz ]
//	[ 0 1 0 ] => [ Yx Yy Yz ]
//	[ 0 0 1 ]    [ Zx Zy Zz ]
func NewM3I[R Real]() *M3[R] { return &M3[R]{Xx: 1, Yy: 1, Zz: 1} }
