// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package lin provides a linear math library that includes vectors,
// matrices, quaternions and scalar helpers used by the dynamics package to
// describe and integrate the state of rigid bodies.
//
// Package lin is provided as part of the vu (virtual universe) 3D engine.
package lin

// Design Notes:
//
// 1) This is a CPU based 3D math library. It is most often called from
//    simulation loops where performance is key. Some general guidelines,
//    verified with benchmarks, can be seen throughout the library.
//     - avoid instantiating new structures
//     - use pointers to structures
//     - prefer multiply over divide
//
// 2) The scalar type R is a build time choice: callers instantiate the
//    generic types with either float32 or float64. Go has no generic
//    trig or sqrt, so every transcendental helper below widens R to
//    float64, calls into the standard math package, and narrows back.
//
// 3) Wikipedia states: "In linear algebra, real numbers are called scalars...".

import "math"

// Real is the scalar type backing every vector, matrix and quaternion in
// this package.
type Real interface {
	~float32 | ~float64
}

// Various linear math constants, expressed as float64 since Go constants
// cannot themselves be generic; convert with R(lin.PI) at the call site.
const (
	PI     float64 = math.Pi
	PIx2   float64 = PI * 2
	HalfPi float64 = PIx2 * 0.25
	DegRad float64 = PIx2 / 360.0
	RadDeg float64 = 360.0 / PIx2

	Sqrt2 float64 = math.Sqrt2
	Sqrt3 float64 = 1.73205

	// Epsilon is used to distinguish when a value is close enough to a
	// number. Deliberately coarse so it clears single precision noise.
	Epsilon float64 = 1e-6
)

func sqrt[R Real](x R) R     { return R(math.Sqrt(float64(x))) }
func abs[R Real](x R) R      { return R(math.Abs(float64(x))) }
func atan2[R Real](y, x R) R { return R(math.Atan2(float64(y), float64(x))) }
func acos[R Real](x R) R     { return R(math.Acos(float64(x))) }
func sin[R Real](x R) R      { return R(math.Sin(float64(x))) }
func cos[R Real](x R) R      { return R(math.Cos(float64(x))) }
func mod[R Real](x, y R) R   { return R(math.Mod(float64(x), float64(y))) }

// Rad converts degrees to radians.
func Rad[R Real](deg R) R { return deg * R(DegRad) }

// Deg converts radians to degrees.
func Deg[R Real](rad R) R { return rad * R(RadDeg) }

// AeqZ (~=) almost-equals returns true if the difference between x and zero
// is so small that it doesn't matter.
func AeqZ[R Real](x R) bool { return abs(x) < R(Epsilon) }

// Aeq (~=) almost-equals returns true if the difference between a and b is
// so small that it doesn't matter.
func Aeq[R Real](a, b R) bool { return abs(a-b) < R(Epsilon) }

// Lerp returns the linear interpolation of a to b by the given ratio.
func Lerp[R Real](a, b, ratio R) R { return (b-a)*ratio + a }

// Clamp returns s restricted to the range given by lower bound lb and
// upper bound ub.
func Clamp[R Real](s, lb, ub R) R {
	switch {
	case s < lb:
		return lb
	case s > ub:
		return ub
	}
	return s
}

// Nang (normalize angle) folds a rotation angle in radians into [-PI, PI].
func Nang[R Real](radians R) R {
	radians = mod(radians, R(PIx2))
	switch {
	case radians < -R(PI):
		return radians + R(PIx2)
	case radians > R(PI):
		return radians - R(PIx2)
	}
	return radians
}
