// Copyright © 2024 Galvanized Logic Inc.

package dynamics

import (
	"testing"

	"github.com/gazed/dynamics/math/lin"
)

// rowsAsM3 packs three consecutive Jacobian row vectors into a matrix whose
// rows are those vectors, so MultMv against a test vector reproduces what
// the solver does one row at a time.
func rowsAsM3(r0, r1, r2 *lin.V3[float64]) lin.M3[float64] {
	return lin.M3[float64]{
		Xx: r0.X, Xy: r0.Y, Xz: r0.Z,
		Yx: r1.X, Yy: r1.Y, Yz: r1.Z,
		Zx: r2.X, Zy: r2.Y, Zz: r2.Z,
	}
}

func TestUpdateJacobianHingeAnchorBlocksAreSkewSymmetric(t *testing.T) {
	w := newTestWorld()
	w.SetPosition(0, &lin.V3[float64]{X: -1, Y: -2, Z: -3})
	w.SetPosition(1, &lin.V3[float64]{X: 4, Y: 5, Z: 6})

	anchor := lin.V3[float64]{}
	axis := lin.V3[float64]{Z: 1}
	w.CreateHinge(0, 0, 1, &anchor, &axis)
	w.updateJacobian()

	var anchorWorld0, anchorWorld1 lin.V3[float64]
	anchorWorld0.MultMv(&w.RotM[0], &w.HAnchor0[0])
	anchorWorld1.MultMv(&w.RotM[1], &w.HAnchor1[0])

	m0 := rowsAsM3(&w.JA0[0], &w.JA0[1], &w.JA0[2])
	m1 := rowsAsM3(&w.JA1[0], &w.JA1[1], &w.JA1[2])

	probe := lin.V3[float64]{X: 1, Y: 1, Z: 1}

	var got0, want0 lin.V3[float64]
	got0.MultMv(&m0, &probe)
	neg := lin.V3[float64]{X: -anchorWorld0.X, Y: -anchorWorld0.Y, Z: -anchorWorld0.Z}
	want0.Cross(&neg, &probe)
	if !got0.Aeq(&want0) {
		t.Errorf("body-0 anchor block: got %v, wanted skew(-anchorWorld0)*probe = %v", got0, want0)
	}

	var got1, want1 lin.V3[float64]
	got1.MultMv(&m1, &probe)
	want1.Cross(&anchorWorld1, &probe)
	if !got1.Aeq(&want1) {
		t.Errorf("body-1 anchor block: got %v, wanted skew(anchorWorld1)*probe = %v", got1, want1)
	}
}

func TestUpdateJacobianHingeTangentRowsUnderIdentityRotation(t *testing.T) {
	w := newTestWorld()
	anchor, axis := lin.V3[float64]{}, lin.V3[float64]{Z: 1}
	w.CreateHinge(0, 0, 1, &anchor, &axis)
	w.updateJacobian()

	if !w.JA0[3].Aeq(&w.HTangent0[0]) {
		t.Errorf("JA0[3]: got %v, wanted HTangent0 %v (identity rotation)", w.JA0[3], w.HTangent0[0])
	}
	negT0 := lin.V3[float64]{X: -w.HTangent0[0].X, Y: -w.HTangent0[0].Y, Z: -w.HTangent0[0].Z}
	if !w.JA1[3].Aeq(&negT0) {
		t.Errorf("JA1[3]: got %v, wanted -HTangent0 %v", w.JA1[3], negT0)
	}
}

func TestUpdateJacobianMotorAxisRow(t *testing.T) {
	w := newTestWorld()
	anchor, axis := lin.V3[float64]{}, lin.V3[float64]{Z: 1}
	w.CreateHinge(0, 0, 1, &anchor, &axis)
	w.AddMotor(0, 0, 5)
	w.updateJacobian()

	row := w.hc
	negAxis := lin.V3[float64]{X: -axis.X, Y: -axis.Y, Z: -axis.Z}
	if !w.JA0[row].Aeq(&negAxis) {
		t.Errorf("motor row JA0: got %v, wanted %v", w.JA0[row], negAxis)
	}
	if !w.JA1[row].Aeq(&axis) {
		t.Errorf("motor row JA1: got %v, wanted %v", w.JA1[row], axis)
	}
}
