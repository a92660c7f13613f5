// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

// Quaternion deals with quaternion math specifically for linear algebra
// rotations. For a nice explanation of quaternions see http://3dgep.com/?p=1815

// Q is a unit length quaternion representing an angle of rotation and a
// direction/orientation, used to track/manipulate 3D object rotations.
// Quaternions behave nicely for mathematical operations other than they
// are not commutative.
type Q[R Real] struct {
	X R // X component of direction vector.
	Y R // Y component of direction vector.
	Z R // Z component of direction vector.
	W R // Angle of rotation (scalar part).
}

// Eq (==) returns true if each element in the quaternion q has the same value
// as the corresponding element in quaternion r.
func (q *Q[R]) Eq(r *Q[R]) bool {
	return q.W == r.W && q.Z == r.Z && q.Y == r.Y && q.X == r.X
}

// Aeq (~=) almost-equals returns true if all the elements in quaternion q have
// essentially the same value as the corresponding elements in quaternion r.
func (q *Q[R]) Aeq(r *Q[R]) bool {
	return Aeq(q.X, r.X) && Aeq(q.Y, r.Y) && Aeq(q.Z, r.Z) && Aeq(q.W, r.W)
}

// GetS returns the component parts of a quaternion.
func (q *Q[R]) GetS() (x, y, z, w R) { return q.X, q.Y, q.Z, q.W }

// SetS (=) explicitly sets each of the quaternion values to the given values.
// The updated quaternion q is returned.
func (q *Q[R]) SetS(x, y, z, w R) *Q[R] {
	q.X, q.Y, q.Z, q.W = x, y, z, w
	return q
}

// Set (=) assigns all the elements values from quaternion r to the corresponding
// element values in quaternion q. The updated quaternion q is returned.
func (q *Q[R]) Set(r *Q[R]) *Q[R] {
	q.X, q.Y, q.Z, q.W = r.X, r.Y, r.Z, r.W
	return q
}

// Inv updates q to be inverse of quaternion r. The updated q is returned.
// The inverse of a quaternion is the same as the conjugate,
// as long as the quaternion is unit-length.
func (q *Q[R]) Inv(r *Q[R]) *Q[R] {
	q.X, q.Y, q.Z, q.W = -r.X, -r.Y, -r.Z, r.W
	return q
}

// Add (+) quaternions r and s returning the result in quaternion q.
func (q *Q[R]) Add(r, s *Q[R]) *Q[R] {
	q.X, q.Y, q.Z, q.W = r.X+s.X, r.Y+s.Y, r.Z+s.Z, r.W+s.W
	return q
}

// Neg (-) returns the negative of quaternion q where each element is negated.
func (q *Q[R]) Neg() *Q[R] {
	q.X, q.Y, q.Z, q.W = -q.X, -q.Y, -q.Z, -q.W
	return q
}

// Sub (-) subtracts quaternion s from r returning the difference in quaternion q.
func (q *Q[R]) Sub(r, s *Q[R]) *Q[R] {
	q.X, q.Y, q.Z, q.W = r.X-s.X, r.Y-s.Y, r.Z-s.Z, r.W-s.W
	return q
}

// Scale (*=) quaternion q by s returning the result in quaternion q.
func (q *Q[R]) Scale(s R) *Q[R] {
	q.X, q.Y, q.Z, q.W = q.X*s, q.Y*s, q.Z*s, q.W*s
	return q
}

// Div (/= inverse-scale) divides each element in q by the given scalar value.
// The updated q is returned. q is unchanged if s is zero.
func (q *Q[R]) Div(s R) *Q[R] {
	if s != 0 {
		s := 1 / s
		q.X, q.Y, q.Z, q.W = q.X*s, q.Y*s, q.Z*s, q.W*s
	}
	return q
}

// Mult (*) multiplies quaternions r and s returning the result in q.
// This applies the rotation of s to r giving q, leaving r and s unchanged.
// It is safe to use the calling quaternion q as one or both of the parameters.
// For example (*=) is
//
//	q.Mult(q, s)
func (q *Q[R]) Mult(r, s *Q[R]) *Q[R] {
	x := r.W*s.X + r.X*s.W - r.Y*s.Z + r.Z*s.Y
	y := r.W*s.Y + r.X*s.Z + r.Y*s.W - r.Z*s.X
	z := r.W*s.Z - r.X*s.Y + r.Y*s.X + r.Z*s.W
	w := r.W*s.W - r.X*s.X - r.Y*s.Y - r.Z*s.Z
	q.X, q.Y, q.Z, q.W = x, y, z, w
	return q
}

// Unit normalizes quaternion q to have length 1.
// q is not updated if the length of q is zero.
func (q *Q[R]) Unit() *Q[R] {
	qlen := q.Len()
	if qlen != 0 {
		q.Scale(1 / qlen)
	}
	return q
}

// Dot returns the dot product of the quaternions q and r.
func (q *Q[R]) Dot(r *Q[R]) R { return q.X*r.X + q.Y*r.Y + q.Z*r.Z + q.W*r.W }

// Len returns the length of the quaternion q.
func (q *Q[R]) Len() R { return sqrt(q.Dot(q)) }

// Ang returns the angle in radians between quaternions q and r. See
//
//	http://math.stackexchange.com/questions/90081/quaternion-distance
//
// for the formula to calculate angles between quaternions, i.e.:
//
//	angle = Acos(2⟨q dot r⟩(q dot r)−1)
func (q *Q[R]) Ang(r *Q[R]) R {
	qdotr := q.Dot(r)
	return acos(2*(qdotr*qdotr) - 1)
}

// Nlerp updates q to be the normalized linear interpolation between
// quaternions r and s where ratio is expected to be between 0 and 1.
func (q *Q[R]) Nlerp(r, s *Q[R], ratio R) *Q[R] {
	q.X = (s.X-r.X)*ratio + r.X
	q.Y = (s.Y-r.Y)*ratio + r.Y
	q.Z = (s.Z-r.Z)*ratio + r.Z
	q.W = (s.W-r.W)*ratio + r.W
	return q.Unit()
}

// quaternion operations
// ============================================================================
// quaternion-vector operations

// MultQV multiplies quaternion r and vector v and returns the result in
// quaternion q.
func (q *Q[R]) MultQV(r *Q[R], v *V3[R]) *Q[R] {
	x := +r.W*v.X + r.Y*v.Z - r.Z*v.Y
	y := +r.W*v.Y + r.Z*v.X - r.X*v.Z
	z := +r.W*v.Z + r.X*v.Y - r.Y*v.X
	w := -r.X*v.X - r.Y*v.Y - r.Z*v.Z
	q.X, q.Y, q.Z, q.W = x, y, z, w
	return q
}

// Aa gets the rotation of quaternion q as an axis and angle.
// The axis (x, y, z) and the angle in radians is returned. The angle is
// in [0, PI]: a quaternion with negative W is read as its negation, so a
// rotation past PI comes back as the shorter rotation about the negated
// axis. The return elements will be (1,0,0) axis if the length of the
// quaternion's vector part is 0.
func (q *Q[R]) Aa() (ax, ay, az, angle R) {
	x, y, z, w := q.X, q.Y, q.Z, q.W
	if w < 0 {
		x, y, z, w = -x, -y, -z, -w
	}
	sinSqr := 1 - w*w
	if AeqZ(sinSqr) {
		return 1, 0, 0, 2 * acos(w)
	}
	s := 1 / sqrt(sinSqr)
	return x * s, y * s, z * s, 2 * acos(w)
}

// SetAa, set axis-angle, updates q to have the rotation of the given
// axis (ax, ay, az) and angle (in radians). q is set to the identity
// rotation if the axis has zero length.
func (q *Q[R]) SetAa(ax, ay, az, angle R) *Q[R] {
	alenSqr := ax*ax + ay*ay + az*az
	if alenSqr == 0 {
		q.X, q.Y, q.Z, q.W = 0, 0, 0, 1
		return q
	}
	s := sin(angle*0.5) / sqrt(alenSqr)
	q.X, q.Y, q.Z, q.W = ax*s, ay*s, az*s, cos(angle*0.5)
	return q
}

// quaternion-vector operations
// ============================================================================
// quaternion-matrix operations

// SetM updates quaternion q to be the rotation of matrix m. See
//
//	http://www.flipcode.com/documents/matrfaq.html#Q55
func (q *Q[R]) SetM(m *M3[R]) *Q[R] {
	trace := m.Xx + m.Yy + m.Zz
	switch {
	case trace > 0:
		s := sqrt(trace+1) * 2 // s=4*qw
		q.W = R(0.25) * s
		q.X = (m.Zy - m.Yz) / s
		q.Y = (m.Xz - m.Zx) / s
		q.Z = (m.Yx - m.Xy) / s
	case m.Xx > m.Yy && m.Xx > m.Zz:
		s := sqrt(m.Xx-m.Yy-m.Zz+1) * 2 // s=4*qx
		q.W = (m.Zy - m.Yz) / s
		q.X = R(0.25) * s
		q.Y = (m.Xy + m.Yx) / s
		q.Z = (m.Xz + m.Zx) / s
	case m.Yy > m.Zz:
		s := sqrt(m.Yy-m.Xx-m.Zz+1) * 2 // s=4*qy
		q.W = (m.Xz - m.Zx) / s
		q.X = (m.Xy + m.Yx) / s
		q.Y = R(0.25) * s
		q.Z = (m.Yz + m.Zy) / s
	default:
		s := sqrt(m.Zz-m.Xx-m.Yy+1) * 2 // s=4*qz
		q.W = (m.Yx - m.Xy) / s
		q.X = (m.Xz + m.Zx) / s
		q.Y = (m.Yz + m.Zy) / s
		q.Z = R(0.25) * s
	}
	return q
}

// quaternion-matrix operations
// ============================================================================
// convenience functions for allocating quaternions. Nothing else should allocate.

// NewQ creates a new, all zero, quaternion.
func NewQ[R Real]() *Q[R] { return &Q[R]{} }

// NewQI creates a new identity quaternion.
func NewQI[R Real]() *Q[R] { return &Q[R]{W: 1} }
