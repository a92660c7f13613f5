// Copyright © 2024 Galvanized Logic Inc.

package dynamics

import "github.com/gazed/dynamics/math/lin"

// CreateHinge configures hinge h to join body b0 and b1 at the given world
// anchor point along the given world axis. Both anchor and axis are
// converted to each body's local frame at call time and are reused every
// step after that — moving the bodies afterward does not move the hinge,
// calling CreateHinge again does.
func (w *World[R]) CreateHinge(h Idx, b0, b1 Idx, anchor, axis *lin.V3[R]) {
	w.checkHinge(h)
	w.checkBody(b0, "CreateHinge")
	w.checkBody(b1, "CreateHinge")

	base := int(h) * 5
	w.HBody0[h], w.HBody1[h] = b0, b1
	for s := base; s < base+5; s++ {
		w.RowBody0[s], w.RowBody1[s] = b0, b1
	}

	bodies := [2]Idx{b0, b1}
	var anchorLocal [2]lin.V3[R]
	for side := 0; side < 2; side++ {
		body := bodies[side]

		var rt lin.M3[R]
		rt.Transpose(&w.RotM[body])

		var offset lin.V3[R]
		offset.Sub(anchor, &w.Pos[body])
		anchorLocal[side].MultMv(&rt, &offset)

		var axisLocal lin.V3[R]
		unitAxis := *axis
		unitAxis.Unit()
		axisLocal.MultMv(&rt, &unitAxis)
		if side == 0 {
			w.HAxis0[h] = axisLocal
		} else {
			w.HAxis1[h] = axisLocal
		}
	}
	w.HAnchor0[h], w.HAnchor1[h] = anchorLocal[0], anchorLocal[1]

	// Build a tangent basis t0, t1 perpendicular to the body-0-local axis.
	// The loop below mirrors the original construction literally: it does
	// not stop at the first axis component clearing the 0.01 threshold. i
	// runs 0, 1, 2 and each qualifying i rebuilds t0, so when more than one
	// component qualifies the highest qualifying index wins.
	a := w.HAxis0[h]
	comp := [3]R{a.X, a.Y, a.Z}
	var t0 lin.V3[R]
	t0v := [3]R{}
	for i := 0; i < 3; i++ {
		if comp[i]*comp[i] < R(0.01) {
			continue
		}
		j := 1
		if i == 2 {
			j = 0
		} else if i == 1 {
			j = 2
		}
		k := 3 - i - j
		t0v[i] = comp[j]
		t0v[j] = -comp[i]
		t0v[k] = 0
		t0.X, t0.Y, t0.Z = t0v[0], t0v[1], t0v[2]
		t0.Unit()
		t0v[0], t0v[1], t0v[2] = t0.X, t0.Y, t0.Z
	}
	w.HTangent0[h] = t0

	var t1 lin.V3[R]
	t1.Cross(&t0, &a)
	w.HTangent1[h] = t1

	// Constant translational blocks: body 0 gets +I, body 1 gets -I on
	// the three anchor-coincidence rows.
	w.JT0[base] = lin.V3[R]{X: 1}
	w.JT0[base+1] = lin.V3[R]{Y: 1}
	w.JT0[base+2] = lin.V3[R]{Z: 1}
	w.JT1[base] = lin.V3[R]{X: -1}
	w.JT1[base+1] = lin.V3[R]{Y: -1}
	w.JT1[base+2] = lin.V3[R]{Z: -1}
}

func (w *World[R]) checkHinge(h Idx) {
	if h < 0 || int(h) >= len(w.HBody0) {
		panic("dynamics: hinge index out of range")
	}
}
