// Copyright © 2024 Galvanized Logic Inc.

package dynamics

import (
	"fmt"

	"github.com/gazed/dynamics/math/lin"
)

func (w *World[R]) checkBody(b Idx, caller string) {
	if b < 0 || int(b) >= len(w.Pos) {
		panic(fmt.Sprintf("dynamics: %s: body index %d out of range [0,%d)", caller, b, len(w.Pos)))
	}
}

// SetBoxInertia sets body b's inverse mass and body-frame inverse inertia
// for a solid box of the given mass and side lengths.
func (w *World[R]) SetBoxInertia(b Idx, mass, xlen, ylen, zlen R) {
	w.checkBody(b, "SetBoxInertia")
	if mass <= 0 {
		panic("dynamics: SetBoxInertia: mass must be positive")
	}
	w.InvMass[b] = 1 / mass
	w.InvInertia[b] = lin.M3[R]{
		Xx: 12 / (mass * (ylen*ylen + zlen*zlen)),
		Yy: 12 / (mass * (xlen*xlen + zlen*zlen)),
		Zz: 12 / (mass * (xlen*xlen + ylen*ylen)),
	}
}

// SetCylinderInertia sets body b's inverse mass and body-frame inverse
// inertia for a solid cylinder of the given mass, radius, and height with
// its symmetry axis along Y.
func (w *World[R]) SetCylinderInertia(b Idx, mass, radius, height R) {
	w.checkBody(b, "SetCylinderInertia")
	if mass <= 0 {
		panic("dynamics: SetCylinderInertia: mass must be positive")
	}
	w.InvMass[b] = 1 / mass
	transverse := 12 / (mass * (3*radius*radius + height*height))
	axial := 2 / (mass * radius * radius)
	w.InvInertia[b] = lin.M3[R]{
		Xx: transverse,
		Yy: axial,
		Zz: transverse,
	}
}

// SetPosition writes body b's world position directly.
func (w *World[R]) SetPosition(b Idx, pos *lin.V3[R]) {
	w.checkBody(b, "SetPosition")
	w.Pos[b].Set(pos)
}

// SetRotation writes body b's orientation and refreshes its cached
// rotation matrix so the two stay in sync.
func (w *World[R]) SetRotation(b Idx, rot *lin.Q[R]) {
	w.checkBody(b, "SetRotation")
	w.Rot[b].Set(rot)
	w.RefreshRotation(b)
}

// SetLinearVelocity writes body b's linear velocity directly.
func (w *World[R]) SetLinearVelocity(b Idx, vel *lin.V3[R]) {
	w.checkBody(b, "SetLinearVelocity")
	w.Vel[b].Set(vel)
}

// SetAngularVelocity writes body b's angular velocity directly.
func (w *World[R]) SetAngularVelocity(b Idx, omega *lin.V3[R]) {
	w.checkBody(b, "SetAngularVelocity")
	w.Omega[b].Set(omega)
}

// RefreshRotation re-derives body b's cached rotation matrix from its
// quaternion. Call after any direct write to Rot to keep the two in sync.
func (w *World[R]) RefreshRotation(b Idx) {
	w.checkBody(b, "RefreshRotation")
	w.RotM[b].SetQ(&w.Rot[b])
}

// AddForce accumulates a world-frame force into body b's external wrench,
// cleared at the end of the next Step.
func (w *World[R]) AddForce(b Idx, force *lin.V3[R]) {
	w.checkBody(b, "AddForce")
	w.Force[b].Add(&w.Force[b], force)
}

// AddTorque accumulates a world-frame torque into body b's external
// wrench, cleared at the end of the next Step.
func (w *World[R]) AddTorque(b Idx, torque *lin.V3[R]) {
	w.checkBody(b, "AddTorque")
	w.Torque[b].Add(&w.Torque[b], torque)
}

// worldInvInertia returns R*Ib*Rt, body b's inverse inertia rotated into
// world frame, written into out. out is returned.
func (w *World[R]) worldInvInertia(b Idx, out *lin.M3[R]) *lin.M3[R] {
	var rt lin.M3[R]
	rt.Transpose(&w.RotM[b])
	var tmp lin.M3[R]
	tmp.Mult(&w.RotM[b], &w.InvInertia[b])
	out.Mult(&tmp, &rt)
	return out
}
