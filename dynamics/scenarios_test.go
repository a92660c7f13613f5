// Copyright © 2024 Galvanized Logic Inc.

package dynamics

import (
	"testing"

	"github.com/gazed/dynamics/math/lin"
)

// A motor driven to a desired speed should accelerate the hinge's angle
// rate towards that speed and hold it there once reached, without ever
// exceeding its torque limit.
func TestScenarioMotorDrivesHingeTowardDesiredSpeed(t *testing.T) {
	w := NewWorld(Config[float64]{Bodies: 2, Hinges: 1, Motors: 1})
	w.SetBoxInertia(0, 1000, 1, 1, 1) // body 0 effectively fixed: huge inertia
	w.SetBoxInertia(1, 1, 1, 1, 1)

	anchor, axis := lin.V3[float64]{}, lin.V3[float64]{Z: 1}
	w.CreateHinge(0, 0, 1, &anchor, &axis)
	w.AddMotor(0, 0, 10)
	w.SetMotorSpeed(0, 2)

	dt := 0.005
	for i := 0; i < 400; i++ {
		w.Step(dt, 10)
		torque := w.MotorTorque(0)
		if torque > 10+1e-6 || torque < -10-1e-6 {
			t.Fatalf("step %d: motor torque %v exceeded its ±10 limit", i, torque)
		}
	}

	rate := w.HingeAngleRate(0)
	if rate < 1.5 || rate > 2.5 {
		t.Errorf("hinge angle rate after driving to speed 2: got %v, wanted roughly 2", rate)
	}
}

// A cylinder foot probed every step against flat terrain should stop
// sinking once its non-penetration rows are loaded, even under a
// sustained downward force — the classic "resting contact" case.
func TestScenarioFootRestsOnFlatTerrain(t *testing.T) {
	w := NewWorld(Config[float64]{Bodies: 1, Feet: 1})
	w.SetCylinderInertia(0, 1, 0.3, 0.5)
	w.TerrainHeightFunc = func(x, y float64) float64 { return 0 }
	w.SetPosition(0, &lin.V3[float64]{Z: 0.3}) // bottom starts 0.05 above the ground

	dt := 0.01
	var minZ float64 = 1e9
	for i := 0; i < 200; i++ {
		w.AddForce(0, &lin.V3[float64]{Z: -9.8})
		w.CollideFootCylinderTri(0.3, 0.5, 0, 0)
		w.Step(dt, 20)
		if w.Pos[0].Z < minZ {
			minZ = w.Pos[0].Z
		}
	}
	// The body should settle near its starting height rather than falling
	// through the floor indefinitely.
	if minZ < -1 {
		t.Errorf("foot fell through the terrain: lowest Z reached %v", minZ)
	}
}

// A world sized with zero hinges, motors, and feet is a valid, if trivial,
// configuration: Step should just integrate free bodies.
func TestScenarioNoConstraintsDegeneratesToFreeBodies(t *testing.T) {
	w := NewWorld(Config[float64]{Bodies: 2})
	w.SetBoxInertia(0, 1, 1, 1, 1)
	w.SetBoxInertia(1, 1, 1, 1, 1)
	w.SetLinearVelocity(0, &lin.V3[float64]{X: 1})

	w.Step(0.1, 4)

	want := lin.V3[float64]{X: 0.1}
	if !w.Pos[0].Aeq(&want) {
		t.Errorf("free body position after one step: got %v, wanted %v", w.Pos[0], want)
	}
	if !w.Pos[1].AeqZ() {
		t.Errorf("stationary body should not have moved: got %v", w.Pos[1])
	}
}

// Two hinges chained through a shared middle body (a 2-link arm) should
// keep both joints satisfied simultaneously; perturbing the tip must not
// separate the root joint.
func TestScenarioHingeChainKeepsBothJointsTogether(t *testing.T) {
	w := NewWorld(Config[float64]{Bodies: 3, Hinges: 2})
	for b := Idx(0); b < 3; b++ {
		w.SetBoxInertia(b, 1, 1, 1, 1)
	}
	w.SetPosition(0, &lin.V3[float64]{X: 0})
	w.SetPosition(1, &lin.V3[float64]{X: 1})
	w.SetPosition(2, &lin.V3[float64]{X: 2})

	axis := lin.V3[float64]{Z: 1}
	a0 := lin.V3[float64]{X: 0.5}
	a1 := lin.V3[float64]{X: 1.5}
	w.CreateHinge(0, 0, 1, &a0, &axis)
	w.CreateHinge(1, 1, 2, &a1, &axis)

	// Disturb the tip body.
	w.Pos[2].Y += 0.2
	w.Vel[2].Y = 1

	dt := 0.005
	for i := 0; i < 400; i++ {
		w.Step(dt, 15)
	}

	jointGap := func(h Idx) float64 {
		b0, b1 := w.HBody0[h], w.HBody1[h]
		var w0, w1 lin.V3[float64]
		w0.MultMv(&w.RotM[b0], &w.HAnchor0[h])
		w0.Add(&w0, &w.Pos[b0])
		w1.MultMv(&w.RotM[b1], &w.HAnchor1[h])
		w1.Add(&w1, &w.Pos[b1])
		var d lin.V3[float64]
		d.Sub(&w1, &w0)
		return d.Len()
	}

	if g := jointGap(0); g > 0.2 {
		t.Errorf("root joint gap grew too large after the tip disturbance: %v", g)
	}
	if g := jointGap(1); g > 0.2 {
		t.Errorf("tip joint gap grew too large: %v", g)
	}
}
