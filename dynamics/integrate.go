// Copyright © 2024 Galvanized Logic Inc.

package dynamics

import "github.com/gazed/dynamics/math/lin"

// Step advances the world by dt seconds: refreshes the hinge/motor
// Jacobian, solves for each row's Lagrange multiplier over iterations
// sweeps of Projected Gauss-Seidel, folds the solved constraint force into
// each body's external wrench, then integrates every body forward with
// semi-implicit Euler. External force and torque accumulators are cleared
// at the end of the step, ready for the caller's next round of AddForce/
// AddTorque calls.
//
// After integrating, Step zeroes the side-1 Jacobian blocks of every
// contact row, so a contact written by CollideFootCylinderTri acts for one
// step only: call it for every foot before every Step.
func (w *World[R]) Step(dt R, iterations int) {
	w.updateJacobian()
	w.solveForLambda(dt, iterations)
	w.computeFcAddToFe()

	var worldI lin.M3[R]
	for i := 0; i < w.cfg.Bodies; i++ {
		mi := w.InvMass[i]
		var dv lin.V3[R]
		dv.Scale(&w.Force[i], dt*mi)
		w.Vel[i].Add(&w.Vel[i], &dv)

		w.worldInvInertia(Idx(i), &worldI)
		var dw lin.V3[R]
		dw.MultMv(&worldI, &w.Torque[i])
		dw.Scale(&dw, dt)
		w.Omega[i].Add(&w.Omega[i], &dw)

		var dp lin.V3[R]
		dp.Scale(&w.Vel[i], dt)
		w.Pos[i].Add(&w.Pos[i], &dp)

		omegaQ := lin.Q[R]{X: w.Omega[i].X, Y: w.Omega[i].Y, Z: w.Omega[i].Z}
		var dq lin.Q[R]
		dq.Mult(&omegaQ, &w.Rot[i])
		dq.Scale(dt * R(0.5))
		w.Rot[i].Add(&w.Rot[i], &dq)
		w.Rot[i].Unit()
		w.RotM[i].SetQ(&w.Rot[i])

		w.Force[i] = lin.V3[R]{}
		w.Torque[i] = lin.V3[R]{}
	}

	for s := w.hmc; s < w.k; s++ {
		w.JT1[s] = lin.V3[R]{}
		w.JA1[s] = lin.V3[R]{}
	}
}
