// Copyright © 2024 Galvanized Logic Inc.

// Package dynamics advances a fixed-size system of rigid bodies, hinge
// joints, torque-limited motors, and cylinder-foot/terrain contacts one
// step at a time. A World is constructed once for a chosen body/hinge/
// motor/foot count and scalar precision, then stepped every tick.
//
// A *World[R] is not safe for concurrent use from multiple goroutines;
// independent worlds may run on separate goroutines in parallel as long
// as each world is touched by only one goroutine at a time.
package dynamics

import "github.com/gazed/dynamics/math/lin"

// Idx indexes bodies, hinges, motors, and constraint rows.
type Idx int32

// NoBody marks a constraint row's side-0 body as absent: the row acts on
// a single body stored on side 1 (contact rows). zeroWorld also uses it
// for every side of rows, hinges and motors that are not yet set up.
const NoBody Idx = -1

// ContactRowsPerFoot is the fixed number of Jacobian rows the collision
// probe claims per foot: 3 non-penetration rows plus 2 (currently
// frictionless) tangent rows. See CollideFootCylinderTri.
const ContactRowsPerFoot = 5

// lambdaSentinel is the finite "unbounded" multiplier bound zero_world
// assigns to every row: large enough that no realistic torque or
// contact force clamps against it.
const lambdaSentinel = 1 << 20

// defaultERP is the error-reduction parameter used when a Config leaves
// ERP at its zero value.
const defaultERP = 0.8

// Config fixes a world's shape and scalar error-reduction parameter at
// construction time. Bodies, Hinges, Motors, and Feet are the build-time
// bounds B, H, M, F; once passed to NewWorld they never change.
type Config[R lin.Real] struct {
	Bodies int
	Hinges int
	Motors int
	Feet   int

	// ERP scales position-error feedback into the solver's right-hand
	// side. Zero means "use the default" (0.8).
	ERP R
}

func (c Config[R]) erp() R {
	if c.ERP == 0 {
		return R(defaultERP)
	}
	return c.ERP
}

// rowCounts derives HC, HMC, CC, K from a Config's bounds, matching
// spec's HC = 5H, HMC = HC+M, CC = 5, K = HMC + CC*F.
func (c Config[R]) rowCounts() (hc, hmc, cc, k int) {
	hc = 5 * c.Hinges
	hmc = hc + c.Motors
	cc = ContactRowsPerFoot
	k = hmc + cc*c.Feet
	return hc, hmc, cc, k
}
