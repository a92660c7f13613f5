// Copyright © 2024 Galvanized Logic Inc.

package dynamics

import "github.com/gazed/dynamics/math/lin"

// updateJacobian refreshes the angular Jacobian blocks that depend on the
// bodies' current orientation: hinge anchor rows, hinge tangent rows, and
// motor axis rows. Translational hinge blocks are constant (set once by
// CreateHinge) and contact rows are refreshed by CollideFootCylinderTri
// each step, so neither is touched here.
func (w *World[R]) updateJacobian() {
	for h := 0; h < w.cfg.Hinges; h++ {
		base := h * 5
		b0, b1 := w.HBody0[h], w.HBody1[h]

		var anchorWorld0, anchorWorld1 lin.V3[R]
		anchorWorld0.MultMv(&w.RotM[b0], &w.HAnchor0[h])
		anchorWorld1.MultMv(&w.RotM[b1], &w.HAnchor1[h])

		// Body 0 side: skew(-anchorWorld0).
		w.JA0[base] = lin.V3[R]{X: 0, Y: anchorWorld0.Z, Z: -anchorWorld0.Y}
		w.JA0[base+1] = lin.V3[R]{X: -anchorWorld0.Z, Y: 0, Z: anchorWorld0.X}
		w.JA0[base+2] = lin.V3[R]{X: anchorWorld0.Y, Y: -anchorWorld0.X, Z: 0}

		// Body 1 side: skew(+anchorWorld1).
		w.JA1[base] = lin.V3[R]{X: 0, Y: -anchorWorld1.Z, Z: anchorWorld1.Y}
		w.JA1[base+1] = lin.V3[R]{X: anchorWorld1.Z, Y: 0, Z: -anchorWorld1.X}
		w.JA1[base+2] = lin.V3[R]{X: -anchorWorld1.Y, Y: anchorWorld1.X, Z: 0}

		// Tangent rows, axis basis rotated by body 0's current rotation.
		var t0w, t1w lin.V3[R]
		t0w.MultMv(&w.RotM[b0], &w.HTangent0[h])
		t1w.MultMv(&w.RotM[b0], &w.HTangent1[h])

		w.JA0[base+3] = t0w
		w.JA1[base+3] = lin.V3[R]{X: -t0w.X, Y: -t0w.Y, Z: -t0w.Z}
		w.JA0[base+4] = t1w
		w.JA1[base+4] = lin.V3[R]{X: -t1w.X, Y: -t1w.Y, Z: -t1w.Z}
	}

	for mt := 0; mt < w.cfg.Motors; mt++ {
		row := w.hc + mt
		h := w.MHinge[mt]
		if h == NoBody {
			continue // motor not yet bound to a hinge by AddMotor
		}
		hingeBody := w.HBody0[h]

		var axisWorld lin.V3[R]
		axisWorld.MultMv(&w.RotM[hingeBody], &w.HAxis0[h])

		w.JA0[row] = lin.V3[R]{X: -axisWorld.X, Y: -axisWorld.Y, Z: -axisWorld.Z}
		w.JA1[row] = axisWorld
	}
}
