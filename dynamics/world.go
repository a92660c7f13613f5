// Copyright © 2024 Galvanized Logic Inc.

package dynamics

import (
	"log/slog"

	"github.com/gazed/dynamics/math/lin"
)

// World holds every array a simulation needs: body state, hinge and motor
// definitions, constraint rows, and the scratch storage the solver reuses
// every step. Every slice is allocated once in NewWorld, sized by the
// Config's bounds, and never grown afterward — the fixed-size-model
// property the original engine got from build-time array sizes.
type World[R lin.Real] struct {
	cfg Config[R]

	// derived, fixed row counts.
	hc, hmc, cc, k int

	// TerrainHeightFunc supplies the collision probe's terrain sample.
	// It must be side-effect-free and safe to call concurrently with
	// steps of other worlds (but never concurrently with this one).
	TerrainHeightFunc func(x, y R) R

	// Logger receives optional, non-fatal diagnostics (a debug line when
	// the collision probe runs with no TerrainHeightFunc set). Defaults to
	// slog.Default().
	Logger *slog.Logger

	// ---- body state, one entry per body in [0,Bodies) ----
	Pos        []lin.V3[R] // world position
	Rot        []lin.Q[R]  // unit orientation quaternion
	RotM       []lin.M3[R] // cached rotation matrix, kept in sync with Rot
	Vel        []lin.V3[R] // linear velocity
	Omega      []lin.V3[R] // angular velocity
	InvMass    []R         // 1/mass
	InvInertia []lin.M3[R] // body-frame inverse inertia tensor
	Force      []lin.V3[R] // accumulated external force (tFe)
	Torque     []lin.V3[R] // accumulated external torque (aFe)

	// ---- hinge state, one entry per hinge in [0,Hinges) ----
	HBody0    []Idx       // first body
	HBody1    []Idx       // second body
	HAnchor0  []lin.V3[R] // anchor offset, body-0 local frame
	HAnchor1  []lin.V3[R] // anchor offset, body-1 local frame
	HAxis0    []lin.V3[R] // hinge axis, body-0 local frame (unit length)
	HAxis1    []lin.V3[R] // hinge axis, body-1 local frame (unit length)
	HTangent0 []lin.V3[R] // tangent t0, body-0 local frame
	HTangent1 []lin.V3[R] // tangent t1, body-0 local frame
	HRefQ     []lin.Q[R]  // conj(q_b0)*q_b1 captured by AddMotor (identity until then): zero-angle reference

	// ---- motor state, one entry per motor in [0,Motors) ----
	MHinge []Idx // driven hinge
	MSpeed []R   // desired angular speed (mds)

	// ---- constraint rows, one entry per row in [0,K) ----
	RowBody0  []Idx // NoBody when the row only acts on side 1
	RowBody1  []Idx
	JT0       []lin.V3[R] // translational Jacobian block, side 0
	JA0       []lin.V3[R] // angular Jacobian block, side 0
	JT1       []lin.V3[R] // translational Jacobian block, side 1
	JA1       []lin.V3[R] // angular Jacobian block, side 1
	LambdaMin []R
	LambdaMax []R
	Lambda    []R // warm-started multiplier, persisted across steps

	// ---- solver scratch, resized with the rows/bodies, never grown per-step ----
	bT0, bA0, bT1, bA1 []lin.V3[R] // B = M^-1 J^T, per row per side
	accLin, accAng     []lin.V3[R] // a = B*lambda, per body
	rhs                []R
	d                  []R
}

// NewWorld allocates a world shaped by cfg and zeroes it.
func NewWorld[R lin.Real](cfg Config[R]) *World[R] {
	w := &World[R]{cfg: cfg, Logger: slog.Default()}
	w.hc, w.hmc, w.cc, w.k = cfg.rowCounts()

	b, h, m := cfg.Bodies, cfg.Hinges, cfg.Motors

	w.Pos = make([]lin.V3[R], b)
	w.Rot = make([]lin.Q[R], b)
	w.RotM = make([]lin.M3[R], b)
	w.Vel = make([]lin.V3[R], b)
	w.Omega = make([]lin.V3[R], b)
	w.InvMass = make([]R, b)
	w.InvInertia = make([]lin.M3[R], b)
	w.Force = make([]lin.V3[R], b)
	w.Torque = make([]lin.V3[R], b)

	w.HBody0 = make([]Idx, h)
	w.HBody1 = make([]Idx, h)
	w.HAnchor0 = make([]lin.V3[R], h)
	w.HAnchor1 = make([]lin.V3[R], h)
	w.HAxis0 = make([]lin.V3[R], h)
	w.HAxis1 = make([]lin.V3[R], h)
	w.HTangent0 = make([]lin.V3[R], h)
	w.HTangent1 = make([]lin.V3[R], h)
	w.HRefQ = make([]lin.Q[R], h)

	w.MHinge = make([]Idx, m)
	w.MSpeed = make([]R, m)

	w.RowBody0 = make([]Idx, w.k)
	w.RowBody1 = make([]Idx, w.k)
	w.JT0 = make([]lin.V3[R], w.k)
	w.JA0 = make([]lin.V3[R], w.k)
	w.JT1 = make([]lin.V3[R], w.k)
	w.JA1 = make([]lin.V3[R], w.k)
	w.LambdaMin = make([]R, w.k)
	w.LambdaMax = make([]R, w.k)
	w.Lambda = make([]R, w.k)

	w.bT0 = make([]lin.V3[R], w.k)
	w.bA0 = make([]lin.V3[R], w.k)
	w.bT1 = make([]lin.V3[R], w.k)
	w.bA1 = make([]lin.V3[R], w.k)
	w.accLin = make([]lin.V3[R], b)
	w.accAng = make([]lin.V3[R], b)
	w.rhs = make([]R, w.k)
	w.d = make([]R, w.k)

	w.zeroWorld()
	return w
}

// Reset re-zeroes every array in place without reallocating, letting a
// caller reinitialize a world between runs.
func (w *World[R]) Reset() { w.zeroWorld() }

// zeroWorld clears every array and sets the per-row multiplier bounds to
// the finite "unbounded" sentinel.
func (w *World[R]) zeroWorld() {
	zero := lin.V3[R]{}
	zeroM := lin.M3[R]{}
	identQ := lin.Q[R]{W: 1}

	for i := range w.Pos {
		w.Pos[i] = zero
		w.Rot[i] = identQ
		w.RotM[i] = lin.M3[R]{Xx: 1, Yy: 1, Zz: 1}
		w.Vel[i] = zero
		w.Omega[i] = zero
		w.InvMass[i] = 0
		w.InvInertia[i] = zeroM
		w.Force[i] = zero
		w.Torque[i] = zero
	}
	for i := range w.HBody0 {
		w.HBody0[i], w.HBody1[i] = NoBody, NoBody
		w.HAnchor0[i], w.HAnchor1[i] = zero, zero
		w.HAxis0[i], w.HAxis1[i] = zero, zero
		w.HTangent0[i], w.HTangent1[i] = zero, zero
		w.HRefQ[i] = identQ
	}
	for i := range w.MHinge {
		w.MHinge[i] = NoBody
		w.MSpeed[i] = 0
	}
	for s := range w.RowBody0 {
		w.RowBody0[s], w.RowBody1[s] = NoBody, NoBody
		w.JT0[s], w.JA0[s], w.JT1[s], w.JA1[s] = zero, zero, zero, zero
		w.LambdaMin[s] = -R(lambdaSentinel)
		w.LambdaMax[s] = R(lambdaSentinel)
		w.Lambda[s] = 0
	}
}

// Bodies, Hinges, Motors, Feet return the world's fixed bounds.
func (w *World[R]) Bodies() int { return w.cfg.Bodies }
func (w *World[R]) Hinges() int { return w.cfg.Hinges }
func (w *World[R]) Motors() int { return w.cfg.Motors }
func (w *World[R]) Feet() int   { return w.cfg.Feet }

// Rows returns the total number of constraint rows K.
func (w *World[R]) Rows() int { return w.k }

// HingeRows and MotorHingeRows return the row-block boundaries HC and HMC
// used to lay out hinge, motor, and contact rows; Rows returns K.
func (w *World[R]) HingeRows() int      { return w.hc }
func (w *World[R]) MotorHingeRows() int { return w.hmc }
