// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

// Vector performs 3 element vector related math needed for rigid body state.

// V3 is a 3 element vector. This can also be used as a point.
type V3[R Real] struct {
	X R // increments as X moves to the right.
	Y R // increments as Y moves up from bottom left.
	Z R // increments as Z moves out of the screen (right handed view space).
}

// Eq (==) returns true if each element in the vector v has the same value
// as the corresponding element in vector a.
func (v *V3[R]) Eq(a *V3[R]) bool {
	return v.Z == a.Z && v.Y == a.Y && v.X == a.X
}

// Aeq (~=) almost-equals returns true if all the elements in vector v have
// essentially the same value as the corresponding elements in vector a.
// Used where a direct comparison is unlikely to return true due to floats.
func (v *V3[R]) Aeq(a *V3[R]) bool {
	return Aeq(v.X, a.X) && Aeq(v.Y, a.Y) && Aeq(v.Z, a.Z)
}

// AeqZ (~=) almost equals zero returns true if the square length of the vector
// is close enough to zero that it makes no difference.
func (v *V3[R]) AeqZ() bool { return v.Dot(v) < R(Epsilon) }

// GetS returns the scalar values of the vector.
func (v *V3[R]) GetS() (x, y, z R) { return v.X, v.Y, v.Z }

// SetS (=) sets the vector elements to the given values.
// The updated vector v is returned.
func (v *V3[R]) SetS(x, y, z R) *V3[R] {
	v.X, v.Y, v.Z = x, y, z
	return v
}

// Set (=, copy, clone) sets the elements of vector v to have the same values
// as the elements of vector a. The updated vector v is returned.
func (v *V3[R]) Set(a *V3[R]) *V3[R] {
	v.X, v.Y, v.Z = a.X, a.Y, a.Z
	return v
}

// Swap exchanges the element values of vectors v and a.
// The updated vector v is returned. Vector a is also updated.
func (v *V3[R]) Swap(a *V3[R]) *V3[R] {
	v.X, a.X = a.X, v.X
	v.Y, a.Y = a.Y, v.Y
	v.Z, a.Z = a.Z, v.Z
	return v
}

// Min updates the vector v elements to be the minimum of the corresponding
// elements from either vectors a or b. The updated vector v is returned.
func (v *V3[R]) Min(a, b *V3[R]) *V3[R] {
	v.X, v.Y, v.Z = minR(a.X, b.X), minR(a.Y, b.Y), minR(a.Z, b.Z)
	return v
}

// Max updates the vector v elements to be the maximum of the corresponding
// elements from either vectors a or b. The updated vector v is returned.
func (v *V3[R]) Max(a, b *V3[R]) *V3[R] {
	v.X, v.Y, v.Z = maxR(a.X, b.X), maxR(a.Y, b.Y), maxR(a.Z, b.Z)
	return v
}

func minR[R Real](a, b R) R {
	if a < b {
		return a
	}
	return b
}

func maxR[R Real](a, b R) R {
	if a > b {
		return a
	}
	return b
}

// Abs updates vector v to have the absolute value of its own elements.
// The updated vector v is returned.
func (v *V3[R]) Abs() *V3[R] {
	v.X, v.Y, v.Z = abs(v.X), abs(v.Y), abs(v.Z)
	return v
}

// Neg (-) sets vector v to be the negative values of vector a.
// Vector v may be used as the input parameter.
// The updated vector v is returned.
func (v *V3[R]) Neg(a *V3[R]) *V3[R] {
	v.X, v.Y, v.Z = -a.X, -a.Y, -a.Z
	return v
}

// Add (+) adds vectors a and b storing the results of the addition in v.
// Vector v may be used as one or both of the parameters.
// For example (+=) is
//
//	v.Add(v, b)
//
// The updated vector v is returned.
func (v *V3[R]) Add(a, b *V3[R]) *V3[R] {
	v.X, v.Y, v.Z = a.X+b.X, a.Y+b.Y, a.Z+b.Z
	return v
}

// Sub (-) subtracts vectors b from a storing the results of the subtraction in v.
// Vector v may be used as one or both of the parameters.
// For example (-=) is
//
//	v.Sub(v, b)
//
// The updated vector v is returned.
func (v *V3[R]) Sub(a, b *V3[R]) *V3[R] {
	v.X, v.Y, v.Z = a.X-b.X, a.Y-b.Y, a.Z-b.Z
	return v
}

// Mult (*) multiplies the elements of vectors a and b storing the result in v.
// Vector v may be used as one or both of the parameters.
// The updated vector v is returned.
func (v *V3[R]) Mult(a, b *V3[R]) *V3[R] {
	v.X, v.Y, v.Z = a.X*b.X, a.Y*b.Y, a.Z*b.Z
	return v
}

// MultQ (*) multiplies a vector by quaternion, effectively applying the
// rotation of quaternion q to vector a and storing the result in v. The input
// vector a, and quaternion q are unchanged.
func (v *V3[R]) MultQ(a *V3[R], q *Q[R]) *V3[R] {
	// A implementation based on:
	//   http://molecularmusings.wordpress.com/2013/05/24/a-faster-quaternion-vector-multiplication/
	// It benchmarked about 40% faster than the standard implementation at:
	//   http://www.mathworks.com/help/aeroblks/quaternionrotation.html

	// t = 2 * cross(q.xyz, v)
	c0x, c0y, c0z := 2*(q.Y*a.Z-q.Z*a.Y), 2*(q.Z*a.X-q.X*a.Z), 2*(q.X*a.Y-q.Y*a.X)

	// v' = v + q.w * t + cross(q.xyz, t)
	c1x, c1y, c1z := q.Y*c0z-q.Z*c0y, q.Z*c0x-q.X*c0z, q.X*c0y-q.Y*c0x
	v.X, v.Y, v.Z = a.X+q.W*c0x+c1x, a.Y+q.W*c0y+c1y, a.Z+q.W*c0z+c1z
	return v
}

// Scale (*=) updates the elements in vector v by multiplying the
// corresponding elements in vector a by the given scalar value.
// Vector v may be used as one or both of the vector parameters.
// The updated vector v is returned.
func (v *V3[R]) Scale(a *V3[R], s R) *V3[R] {
	v.X, v.Y, v.Z = a.X*s, a.Y*s, a.Z*s
	return v
}

// Div (/= inverse-scale) divides each element in v by the given scalar value.
// The updated vector v is returned. Vector v is not changed if scalar s is zero.
func (v *V3[R]) Div(s R) *V3[R] {
	if s != 0 {
		inv := 1 / s
		v.X, v.Y, v.Z = v.X*inv, v.Y*inv, v.Z*inv
	}
	return v
}

// Dot vector v with input vector a. Both vectors v and a are unchanged.
func (v *V3[R]) Dot(a *V3[R]) R { return v.X*a.X + v.Y*a.Y + v.Z*a.Z }

// Len returns the length of vector v. Vector length is the square root of
// the dot product. The calling vector v is unchanged.
func (v *V3[R]) Len() R { return sqrt(v.Dot(v)) }

// LenSqr returns the length of vector v squared.
// The calling vector v is unchanged.
func (v *V3[R]) LenSqr() R { return v.Dot(v) }

// Dist returns the distance between vector end-points v and a.
// Both vectors (points) v and a are unchanged.
func (v *V3[R]) Dist(a *V3[R]) R { return sqrt(v.DistSqr(a)) }

// DistSqr returns the distance squared between vector end-points v and a.
// Both vectors (points) v and a are unchanged.
func (v *V3[R]) DistSqr(a *V3[R]) R {
	dx, dy, dz := a.X-v.X, a.Y-v.Y, a.Z-v.Z
	return dx*dx + dy*dy + dz*dz
}

// Ang returns the angle in radians between vector v and input vector a.
// Ang returns 0 if the magnitude of the two vectors is 0.
func (v *V3[R]) Ang(a *V3[R]) R {
	magnitude := sqrt(v.Dot(v) * a.Dot(a))
	if magnitude != 0 {
		return acos(v.Dot(a) / magnitude)
	}
	return 0
}

// Unit updates vector v such that its length is 1.
// Calling vector v is unchanged if its length is zero.
// The updated vector v is returned.
func (v *V3[R]) Unit() *V3[R] {
	length := v.Len()
	if length != 0 {
		return v.Div(length)
	}
	return v
}

// Cross updates v to be the cross product of vectors a and b.
// A cross product vector is a vector that is perpendicular to both input
// vectors. This is only meaningful in 3 (or 7) dimensions.
// Input vectors a and b are unchanged. Vector v may be used as either
// input parameter. The updated vector v is returned.
func (v *V3[R]) Cross(a, b *V3[R]) *V3[R] {
	v.X, v.Y, v.Z = a.Y*b.Z-a.Z*b.Y, a.Z*b.X-a.X*b.Z, a.X*b.Y-a.Y*b.X
	return v
}

// Lerp updates vector v to be a fraction of the distance (linear interpolation)
// between the input vectors a and b. The input ratio is not verified, but is
// expected to be between 0 and 1. Vector v may be used as one of the parameters.
func (v *V3[R]) Lerp(a, b *V3[R], fraction R) *V3[R] {
	v.X = (b.X-a.X)*fraction + a.X
	v.Y = (b.Y-a.Y)*fraction + a.Y
	v.Z = (b.Z-a.Z)*fraction + a.Z
	return v
}

// Nlerp updates vector v to be a normalized vector that is the linear
// interpolation between a and b.
func (v *V3[R]) Nlerp(a, b *V3[R], ratio R) *V3[R] { return v.Lerp(a, b, ratio).Unit() }

// Plane generates 2 vectors perpendicular to normal vector v and to each
// other. The perpendicular vectors are returned as values of vectors p and q.
//
// Based on bullet physics: btVector3::btPlaneSpace1
func (v *V3[R]) Plane(p, q *V3[R]) {
	squareRootof12 := R(0.7071067811865475244008443621048490)
	if abs(v.Z) > squareRootof12 {
		a := v.Y*v.Y + v.Z*v.Z
		k := 1 / sqrt(a)
		p.X, p.Y, p.Z = 0, -v.Z*k, v.Y*k
		q.X, q.Y, q.Z = a*k, -v.X*p.Z, v.X*p.Y
	} else {
		a := v.X*v.X + v.Y*v.Y
		k := 1 / sqrt(a)
		p.X, p.Y, p.Z = -v.Y*k, v.X*k, 0
		q.X, q.Y, q.Z = -v.Z*p.Y, v.Z*p.X, a*k
	}
}

// vector operations
// ============================================================================
// vector-matrix operations

// MultvM updates vector v to be the multiplication of row vector rv
// and matrix m. Vector v may be used as the input vector rv.
// The updated vector v is returned.
//
//	                [ Xx Xy Xz ]
//	[ vx vy vz ] x [ Yx Yy Yz ] = [ vx' vy' vz' ]
//	                [ Zx Zy Zz ]
func (v *V3[R]) MultvM(rv *V3[R], m *M3[R]) *V3[R] {
	x := rv.X*m.Xx + rv.Y*m.Yx + rv.Z*m.Zx
	y := rv.X*m.Xy + rv.Y*m.Yy + rv.Z*m.Zy
	z := rv.X*m.Xz + rv.Y*m.Yz + rv.Z*m.Zz
	v.X, v.Y, v.Z = x, y, z
	return v
}

// MultMv updates vector v to be the multiplication of matrix m and
// column vector cv. Vector v may be used as the input vector cv.
// The updated vector v is returned.
//
//	[ Xx Xy Xz ]   [ vx ]   [ vx' ]
//	[ Yx Yy Yz ] x [ vy ] = [ vy' ]
//	[ Zx Zy Zz ]   [ vz ]   [ vz' ]
func (v *V3[R]) MultMv(m *M3[R], cv *V3[R]) *V3[R] {
	x := m.Xx*cv.X + m.Xy*cv.Y + m.Xz*cv.Z
	y := m.Yx*cv.X + m.Yy*cv.Y + m.Yz*cv.Z
	z := m.Zx*cv.X + m.Zy*cv.Y + m.Zz*cv.Z
	v.X, v.Y, v.Z = x, y, z
	return v
}

// vector-matrix operations
// ============================================================================
// vector-quaternion operations

// MultvQ updates vector v to be the rotation of vector a by quaternion q.
func (v *V3[R]) MultvQ(a *V3[R], q *Q[R]) *V3[R] {
	v.X, v.Y, v.Z = multSQ(a.X, a.Y, a.Z, q.X, q.Y, q.Z, q.W)
	return v
}

// MultSQ applies rotation q to scalar vector (x,y,z).
// The updated scalar vector (vx,vy,vz) is returned.
func MultSQ[R Real](x, y, z R, q *Q[R]) (vx, vy, vz R) {
	return multSQ(x, y, z, q.X, q.Y, q.Z, q.W)
}

// multSQ applies rotation q (qx,qy,qz,qw) to scalar vector (x,y,z).
// The updated scalar vector (vx,vy,vz) is returned.
func multSQ[R Real](x, y, z, qx, qy, qz, qw R) (vx, vy, vz R) {
	k0 := qw*qw - R(0.5)
	k1 := x*qx + y*qy + z*qz

	rx := x*k0 + qx*k1
	ry := y*k0 + qy*k1
	rz := z*k0 + qz*k1

	rx += qw * (qy*z - qz*y)
	ry += qw * (qz*x - qx*z)
	rz += qw * (qx*y - qy*x)

	return rx + rx, ry + ry, rz + rz
}

// vector-quaternion operations
// ============================================================================
// convenience functions for allocating vectors. Nothing else should allocate.

// NewV3 creates a new, all zero, 3D vector.
func NewV3[R Real]() *V3[R] { return &V3[R]{} }

// NewV3S creates a new 3D vector using the given scalars.
func NewV3S[R Real](x, y, z R) *V3[R] { return &V3[R]{x, y, z} }
