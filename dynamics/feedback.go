// Copyright © 2024 Galvanized Logic Inc.

package dynamics

import (
	"math"

	"github.com/gazed/dynamics/math/lin"
)

// HingeAngle returns hinge h's current angle, the rotation in radians of
// body 1 relative to body 0 measured against the configuration captured
// by the hinge's last AddMotor call, folded into (-PI, PI]. Hinges with
// no motor read relative to the identity reference left by zeroWorld.
func (w *World[R]) HingeAngle(h Idx) R {
	w.checkHinge(h)
	b0, b1 := w.HBody0[h], w.HBody1[h]

	var q0conj lin.Q[R]
	q0conj.Inv(&w.Rot[b0])

	var dq lin.Q[R]
	dq.Mult(&q0conj, &w.Rot[b1])

	var refConj lin.Q[R]
	refConj.Inv(&w.HRefQ[h])

	var hdq lin.Q[R]
	hdq.Mult(&dq, &refConj)

	var axisWorld lin.V3[R]
	axisWorld.MultMv(&w.RotM[b0], &w.HAxis0[h])

	hdqVec := lin.V3[R]{X: hdq.X, Y: hdq.Y, Z: hdq.Z}
	cost2 := hdq.W
	sint2 := hdqVec.Len()

	var theta R
	if hdqVec.Dot(&axisWorld) >= 0 {
		theta = R(2 * math.Atan2(float64(sint2), float64(cost2)))
	} else {
		theta = R(2 * math.Atan2(float64(sint2), float64(-cost2)))
	}
	if theta > R(lin.PI) {
		theta -= 2 * R(lin.PI)
	}
	return theta
}

// HingeAngleRate returns the rate of change of HingeAngle, in radians per
// second.
func (w *World[R]) HingeAngleRate(h Idx) R {
	w.checkHinge(h)
	b0, b1 := w.HBody0[h], w.HBody1[h]

	var axisWorld lin.V3[R]
	axisWorld.MultMv(&w.RotM[b0], &w.HAxis0[h])

	rate := -axisWorld.Dot(&w.Omega[b0])
	rate += axisWorld.Dot(&w.Omega[b1])
	return rate
}

// MotorTorque returns motor mt's currently solved torque, in Newton
// meters, bounded by the max torque passed to AddMotor.
func (w *World[R]) MotorTorque(mt Idx) R {
	w.checkMotor(mt)
	return w.Lambda[w.hc+int(mt)]
}
