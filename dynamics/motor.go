// Copyright © 2024 Galvanized Logic Inc.

package dynamics

import "github.com/gazed/dynamics/math/lin"

// AddMotor configures motor mt to drive hinge h towards maxTorque/-maxTorque
// limited angular speed. The motor's zero-angle reference is captured from
// the hinge's current body orientations at call time: HingeAngle measures
// relative rotation against that reference, not against CreateHinge time.
func (w *World[R]) AddMotor(mt, h Idx, maxTorque R) {
	w.checkMotor(mt)
	w.checkHinge(h)

	row := w.hc + int(mt)
	w.MHinge[mt] = h
	w.LambdaMax[row] = maxTorque
	w.LambdaMin[row] = -maxTorque

	b0, b1 := w.HBody0[h], w.HBody1[h]
	w.RowBody0[row], w.RowBody1[row] = b0, b1

	var q0inv lin.Q[R]
	q0inv.Inv(&w.Rot[b0])

	w.HRefQ[h].Mult(&q0inv, &w.Rot[b1])
}

// SetMotorSpeed sets motor mt's desired angular speed in radians per second.
func (w *World[R]) SetMotorSpeed(mt Idx, speed R) {
	w.checkMotor(mt)
	w.MSpeed[mt] = speed
}

func (w *World[R]) checkMotor(mt Idx) {
	if mt < 0 || int(mt) >= len(w.MHinge) {
		panic("dynamics: motor index out of range")
	}
}
