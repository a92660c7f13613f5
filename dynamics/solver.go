// Copyright © 2024 Galvanized Logic Inc.

package dynamics

import "github.com/gazed/dynamics/math/lin"

// stopAtBody reports the lowest side index row s visits: 0 for hinge and
// motor rows (both bodies participate), 1 for contact rows (only the single
// tagged body, stored on side 1, participates).
func (w *World[R]) stopAtBody(s int) int {
	if s < w.hmc {
		return 0
	}
	return 1
}

func (w *World[R]) rowBody(s, bi int) Idx {
	if bi == 0 {
		return w.RowBody0[s]
	}
	return w.RowBody1[s]
}

func (w *World[R]) rowJT(s, bi int) *lin.V3[R] {
	if bi == 0 {
		return &w.JT0[s]
	}
	return &w.JT1[s]
}

func (w *World[R]) rowJA(s, bi int) *lin.V3[R] {
	if bi == 0 {
		return &w.JA0[s]
	}
	return &w.JA1[s]
}

func (w *World[R]) rowBT(s, bi int) *lin.V3[R] {
	if bi == 0 {
		return &w.bT0[s]
	}
	return &w.bT1[s]
}

func (w *World[R]) rowBA(s, bi int) *lin.V3[R] {
	if bi == 0 {
		return &w.bA0[s]
	}
	return &w.bA1[s]
}

// computeB fills B = M^-1 J^T: translational blocks scaled by inverse
// mass, angular blocks scaled by the body's world-frame inverse inertia.
func (w *World[R]) computeB() {
	var worldI lin.M3[R]
	for s := 0; s < w.k; s++ {
		stop := w.stopAtBody(s)
		for bi := 1; bi >= stop; bi-- {
			body := w.rowBody(s, bi)

			jt := w.rowJT(s, bi)
			w.rowBT(s, bi).Scale(jt, w.InvMass[body])

			w.worldInvInertia(body, &worldI)
			ja := w.rowJA(s, bi)
			w.rowBA(s, bi).MultMv(&worldI, ja)
		}
	}
}

// computeA fills a = B*lambda, the per-body accumulator the sweep loop
// keeps current as it updates each row's multiplier.
func (w *World[R]) computeA() {
	zero := lin.V3[R]{}
	for b := range w.accLin {
		w.accLin[b] = zero
		w.accAng[b] = zero
	}

	for s := 0; s < w.k; s++ {
		stop := w.stopAtBody(s)
		for bi := 1; bi >= stop; bi-- {
			body := w.rowBody(s, bi)

			var t, a lin.V3[R]
			t.Scale(w.rowBT(s, bi), w.Lambda[s])
			w.accLin[body].Add(&w.accLin[body], &t)

			a.Scale(w.rowBA(s, bi), w.Lambda[s])
			w.accAng[body].Add(&w.accAng[body], &a)
		}
	}
}

// computeD fills d = diag(J*B).
func (w *World[R]) computeD() {
	for s := 0; s < w.k; s++ {
		stop := w.stopAtBody(s)
		var dii R
		for bi := 1; bi >= stop; bi-- {
			dii += w.rowJT(s, bi).Dot(w.rowBT(s, bi))
			dii += w.rowJA(s, bi).Dot(w.rowBA(s, bi))
		}
		w.d[s] = dii
	}
}

// computeRHS fills rhs = -(1/dt)*J*v - J*M^-1*Fe, then adds hinge
// position-error feedback and the motor desired-speed term.
//
// The hinge axis error is the cross product of body 0's hinge axis with
// body 1's hinge axis, both in body 0's frame. Its length is the sine of
// the misalignment angle, so it is a first-order measure that tracks the
// angle only while the misalignment stays small.
func (w *World[R]) computeRHS(dt R) {
	var worldI lin.M3[R]
	for s := 0; s < w.k; s++ {
		stop := w.stopAtBody(s)
		var jv, jmiFe R
		for bi := 1; bi >= stop; bi-- {
			body := w.rowBody(s, bi)

			jt := w.rowJT(s, bi)
			ja := w.rowJA(s, bi)
			jv += jt.Dot(&w.Vel[body]) + ja.Dot(&w.Omega[body])

			var tFe lin.V3[R]
			tFe.Scale(&w.Force[body], w.InvMass[body])

			w.worldInvInertia(body, &worldI)
			var aFe lin.V3[R]
			aFe.MultMv(&worldI, &w.Torque[body])

			jmiFe += jt.Dot(&tFe) + ja.Dot(&aFe)
		}
		w.rhs[s] = -(1/dt)*jv - jmiFe
	}

	erp := w.cfg.erp()
	for h := 0; h < w.cfg.Hinges; h++ {
		base := h * 5
		b0, b1 := w.HBody0[h], w.HBody1[h]

		var anchorWorld0, anchorWorld1 lin.V3[R]
		anchorWorld0.MultMv(&w.RotM[b0], &w.HAnchor0[h])
		anchorWorld0.Add(&anchorWorld0, &w.Pos[b0])
		anchorWorld1.MultMv(&w.RotM[b1], &w.HAnchor1[h])
		anchorWorld1.Add(&anchorWorld1, &w.Pos[b1])

		var errV lin.V3[R]
		errV.Sub(&anchorWorld1, &anchorWorld0)

		w.rhs[base] += erp / dt * errV.X
		w.rhs[base+1] += erp / dt * errV.Y
		w.rhs[base+2] += erp / dt * errV.Z

		var axis1World lin.V3[R]
		axis1World.MultMv(&w.RotM[b1], &w.HAxis1[h])

		var rt0 lin.M3[R]
		rt0.Transpose(&w.RotM[b0])
		var axis1In0 lin.V3[R]
		axis1In0.MultMv(&rt0, &axis1World)

		var u lin.V3[R]
		u.Cross(&w.HAxis0[h], &axis1In0)

		w.rhs[base+3] += erp / dt * w.HTangent0[h].Dot(&u)
		w.rhs[base+4] += erp / dt * w.HTangent1[h].Dot(&u)
	}

	for mt := 0; mt < w.cfg.Motors; mt++ {
		w.rhs[w.hc+mt] += w.MSpeed[mt] / dt
	}
}

// clampDelta adds delta to old, keeping the result inside [min, max].
func clampDelta[R lin.Real](old, delta, min, max R) R {
	v := old + delta
	if v > max {
		return max
	}
	if v < min {
		return min
	}
	return v
}

// solveForLambda runs the Projected Gauss-Seidel sweep that updates every
// row's Lagrange multiplier, propagating each change into the acting
// bodies' accumulators as it goes (Catto, Iterative Dynamics with Temporal
// Coherence, 2005).
func (w *World[R]) solveForLambda(dt R, iterations int) {
	w.computeB()
	w.computeA()
	w.computeD()
	w.computeRHS(dt)

	for i := 0; i < iterations; i++ {
		for s := 0; s < w.k; s++ {
			stop := w.stopAtBody(s)

			var tmp R
			for bi := 1; bi >= stop; bi-- {
				body := w.rowBody(s, bi)
				tmp += w.rowJT(s, bi).Dot(&w.accLin[body])
				tmp += w.rowJA(s, bi).Dot(&w.accAng[body])
			}

			var deltaLambda R
			if w.d[s] > R(1e-7) || w.d[s] < R(-1e-7) {
				deltaLambda = (w.rhs[s] - tmp) / w.d[s]
			}

			newLambda := clampDelta(w.Lambda[s], deltaLambda, w.LambdaMin[s], w.LambdaMax[s])
			deltaLambda = newLambda - w.Lambda[s]
			w.Lambda[s] = newLambda

			for bi := 1; bi >= stop; bi-- {
				body := w.rowBody(s, bi)

				var dt3, da3 lin.V3[R]
				dt3.Scale(w.rowBT(s, bi), deltaLambda)
				w.accLin[body].Add(&w.accLin[body], &dt3)

				da3.Scale(w.rowBA(s, bi), deltaLambda)
				w.accAng[body].Add(&w.accAng[body], &da3)
			}
		}
	}
}

// computeFcAddToFe adds the solved constraint force Fc = J^T*lambda
// directly into each body's external wrench accumulator.
func (w *World[R]) computeFcAddToFe() {
	for s := 0; s < w.k; s++ {
		stop := w.stopAtBody(s)
		for bi := 1; bi >= stop; bi-- {
			body := w.rowBody(s, bi)

			var t, a lin.V3[R]
			t.Scale(w.rowJT(s, bi), w.Lambda[s])
			w.Force[body].Add(&w.Force[body], &t)

			a.Scale(w.rowJA(s, bi), w.Lambda[s])
			w.Torque[body].Add(&w.Torque[body], &a)
		}
	}
}

// ComputeFc returns the constraint force and torque acting on every body,
// Fc = J^T*lambda, kept separate from the external wrench. It is a debug
// aid for inspecting solved constraint loads; Step uses
// computeFcAddToFe instead, which folds Fc directly into Force/Torque.
func (w *World[R]) ComputeFc() (force, torque []lin.V3[R]) {
	force = make([]lin.V3[R], w.cfg.Bodies)
	torque = make([]lin.V3[R], w.cfg.Bodies)

	for s := 0; s < w.k; s++ {
		stop := w.stopAtBody(s)
		for bi := 1; bi >= stop; bi-- {
			body := w.rowBody(s, bi)

			var t, a lin.V3[R]
			t.Scale(w.rowJT(s, bi), w.Lambda[s])
			force[body].Add(&force[body], &t)

			a.Scale(w.rowJA(s, bi), w.Lambda[s])
			torque[body].Add(&torque[body], &a)
		}
	}
	return force, torque
}
