// Copyright © 2024 Galvanized Logic Inc.

package dynamics

import (
	"testing"

	"github.com/gazed/dynamics/math/lin"
)

// With no hinges, motors, or feet there are zero constraint rows, so Step
// degenerates to plain semi-implicit Euler integration — exactly checkable.
func TestStepFreeFallIsSemiImplicitEuler(t *testing.T) {
	w := NewWorld(Config[float64]{Bodies: 1})
	w.SetBoxInertia(0, 1, 1, 1, 1)

	dt := 0.1
	w.AddForce(0, &lin.V3[float64]{Y: -10})
	w.Step(dt, 4)

	wantVel := lin.V3[float64]{Y: -1}
	if !w.Vel[0].Aeq(&wantVel) {
		t.Errorf("velocity after one step: got %v, wanted %v", w.Vel[0], wantVel)
	}
	wantPos := lin.V3[float64]{Y: -0.1}
	if !w.Pos[0].Aeq(&wantPos) {
		t.Errorf("position after one step: got %v, wanted %v (semi-implicit: uses the updated velocity)", w.Pos[0], wantPos)
	}
	if !w.Force[0].AeqZ() {
		t.Errorf("Force should be cleared at the end of Step, got %v", w.Force[0])
	}
}

func TestStepClearsTorqueAfterApplying(t *testing.T) {
	w := NewWorld(Config[float64]{Bodies: 1})
	w.SetBoxInertia(0, 1, 1, 1, 1)
	w.AddTorque(0, &lin.V3[float64]{Z: 1})
	w.Step(0.01, 1)
	if !w.Torque[0].AeqZ() {
		t.Errorf("Torque should be cleared at the end of Step, got %v", w.Torque[0])
	}
	if w.Omega[0].AeqZ() {
		t.Errorf("a nonzero torque should have changed Omega, got %v", w.Omega[0])
	}
}

func TestStepKeepsRotationNormalized(t *testing.T) {
	w := NewWorld(Config[float64]{Bodies: 1})
	w.SetBoxInertia(0, 1, 1, 1, 1)
	w.SetAngularVelocity(0, &lin.V3[float64]{Z: 5})

	for i := 0; i < 50; i++ {
		w.Step(0.01, 1)
	}
	if l := w.Rot[0].Len(); !lin.Aeq(l, 1) {
		t.Errorf("rotation quaternion drifted off unit length: |Rot|=%v", l)
	}

	// RotM is kept in sync: rotating a unit vector through it should
	// itself stay unit length.
	var x lin.V3[float64]
	x.MultMv(&w.RotM[0], &lin.V3[float64]{X: 1})
	if !lin.Aeq(x.Len(), 1) {
		t.Errorf("cached rotation matrix not orthonormal after many steps: |R*x|=%v", x.Len())
	}
}

func TestStepHingeReducesAnchorSeparation(t *testing.T) {
	w := NewWorld(Config[float64]{Bodies: 2, Hinges: 1})
	w.SetBoxInertia(0, 1, 1, 1, 1)
	w.SetBoxInertia(1, 1, 1, 1, 1)
	w.SetPosition(0, &lin.V3[float64]{X: -0.5})
	w.SetPosition(1, &lin.V3[float64]{X: 0.5})

	anchor := lin.V3[float64]{}
	axis := lin.V3[float64]{Z: 1}
	w.CreateHinge(0, 0, 1, &anchor, &axis)

	anchorSeparation := func() float64 {
		var a0, a1 lin.V3[float64]
		a0.MultMv(&w.RotM[0], &w.HAnchor0[0])
		a0.Add(&a0, &w.Pos[0])
		a1.MultMv(&w.RotM[1], &w.HAnchor1[0])
		a1.Add(&a1, &w.Pos[1])
		var d lin.V3[float64]
		d.Sub(&a1, &a0)
		return d.Len()
	}

	// CreateHinge derives both local anchors from the same world point, so
	// the block starts satisfied; displace body 1 without touching its
	// local anchor to manufacture a position error the feedback term has
	// to correct.
	w.Pos[1].Y += 0.3

	start := anchorSeparation()
	if !lin.Aeq(start, 0.3) {
		t.Fatalf("setup sanity check: initial anchor separation got %v, wanted 0.3", start)
	}

	dt := 0.01
	for i := 0; i < 60; i++ {
		w.Step(dt, 10)
	}
	end := anchorSeparation()
	if end >= start {
		t.Errorf("hinge position-error feedback should shrink anchor separation: start=%v end=%v", start, end)
	}
}
