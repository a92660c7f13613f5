// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

// T is a 3D transform for rotation and translation. It excludes scaling and
// shear information. T is used as a simplification and optimization instead
// of keeping all transform information in a 4x4 matrix.
//
// T supports a few operations similar to those supported by V3, M3, and
// Q. The main ones are:
//
//	Apply a transform or inverse transform to a vector.
//	Invert a transform.
//
// There is no operation that composes two transforms.
type T[R Real] struct {
	Loc *V3[R] // Location (translation, origin).
	Rot *Q[R]  // Rotation (direction, orientation).
}

// Eq (==) returns true if all elements of transform t have the same value as
// the corresponding element of transform a.
func (t *T[R]) Eq(a *T[R]) bool { return t.Rot.Eq(a.Rot) && t.Loc.Eq(a.Loc) }

// Aeq (~=) almost-equals returns true if all the elements in transform t have
// essentially the same value as the corresponding elements of transform a.
func (t *T[R]) Aeq(a *T[R]) bool { return t.Rot.Aeq(a.Rot) && t.Loc.Aeq(a.Loc) }

// Set (=, copy, clone) assigns all the elements values from transform a to the
// corresponding element values in transform t. The updated transform t is returned.
func (t *T[R]) Set(a *T[R]) *T[R] {
	t.Loc.Set(a.Loc)
	t.Rot.Set(a.Rot)
	return t
}

// SetI updates transform t to be the identity transform.
func (t *T[R]) SetI() *T[R] {
	t.Loc.SetS(0, 0, 0)
	t.Rot.Set(NewQI[R]())
	return t
}

// SetVQ (=) sets the transform t based on the given quaternion rotation and
// translation location. The updated transform t is returned.
func (t *T[R]) SetVQ(loc *V3[R], rot *Q[R]) *T[R] {
	t.Loc.Set(loc)
	t.Rot.Set(rot)
	return t
}

// App applies transform t's rotation then translation to vector v.
// The updated vector v is returned.
func (t *T[R]) App(v *V3[R]) *V3[R] {
	v.MultvQ(v, t.Rot)
	v.Add(v, t.Loc)
	return v
}

// AppS applies transform t, rotation then translation, to the input scalar
// vector (x,y,z) returning the transformed scalar vector (vx,vy,vz).
func (t *T[R]) AppS(x, y, z R) (vx, vy, vz R) {
	vx, vy, vz = MultSQ(x, y, z, t.Rot)
	return vx + t.Loc.X, vy + t.Loc.Y, vz + t.Loc.Z
}

// Inv updates vector v to be the inverse of transform t applied to vector v:
// inverse translation followed by inverse rotation. The updated vector v
// is returned.
func (t *T[R]) Inv(v *V3[R]) *V3[R] {
	v.Sub(v, t.Loc)
	ix, iy, iz := -t.Rot.X, -t.Rot.Y, -t.Rot.Z
	v.X, v.Y, v.Z = multSQ(v.X, v.Y, v.Z, ix, iy, iz, t.Rot.W)
	return v
}

// ============================================================================
// convenience functions for allocating transforms. Nothing else should allocate.

// NewT creates and returns a transform at the origin with no rotation.
func NewT[R Real]() *T[R] {
	return &T[R]{Loc: NewV3[R](), Rot: NewQI[R]()}
}
