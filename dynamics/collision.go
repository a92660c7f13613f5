// Copyright © 2024 Galvanized Logic Inc.

package dynamics

import "github.com/gazed/dynamics/math/lin"

const (
	sin30 = 0.5
	cos30 = 0.8660254037844387
)

// CollideFootCylinderTri probes footBody, modelled as a cylinder of the
// given radius and height centered on the body, against the terrain
// height field and, on contact, writes 3 non-penetration rows into the
// contact block at contactsOffset. contactsOffset is in rows, relative to
// the first contact row (w.MotorHingeRows()), and must be a multiple of
// ContactRowsPerFoot. It returns the number of rows claimed, 0 if the
// foot cleared the terrain.
//
// The block's two tangent rows are always left with J=0 and their lambda
// bounds at the unbounded sentinel: feet are frictionless, the rows are
// reserved but never wired up.
//
// TerrainHeightFunc must be set before calling; a nil func is treated as
// flat ground at height 0.
func (w *World[R]) CollideFootCylinderTri(radius, height R, contactsOffset, footBody Idx) int {
	w.checkBody(footBody, "CollideFootCylinderTri")
	base := w.hmc + int(contactsOffset)
	w.clearContactRows(base)

	pos := w.Pos[footBody]
	checkPoint := pos.Z - height*R(0.5)
	groundHeight := w.sampleTerrain(pos.X, pos.Y)
	if checkPoint > groundHeight {
		return 0
	}

	contactLocal := [3]lin.V3[R]{
		{X: -radius, Y: 0, Z: -height * R(0.5)},
		{X: R(sin30) * radius, Y: R(cos30) * radius, Z: -height * R(0.5)},
		{X: R(sin30) * radius, Y: -R(cos30) * radius, Z: -height * R(0.5)},
	}

	var contactWorldOffset, contactWorld [3]lin.V3[R]
	var groundAt [3]R
	for i := 0; i < 3; i++ {
		contactWorldOffset[i].MultMv(&w.RotM[footBody], &contactLocal[i])
		contactWorld[i].Add(&contactWorldOffset[i], &pos)
		groundAt[i] = w.sampleTerrain(contactWorld[i].X, contactWorld[i].Y)
	}

	t1 := lin.V3[R]{
		X: contactWorld[1].X - contactWorld[0].X,
		Y: contactWorld[1].Y - contactWorld[0].Y,
		Z: groundAt[1] - groundAt[0],
	}
	t2 := lin.V3[R]{
		X: contactWorld[2].X - contactWorld[0].X,
		Y: contactWorld[2].Y - contactWorld[0].Y,
		Z: groundAt[2] - groundAt[0],
	}
	var normal lin.V3[R]
	normal.Cross(&t2, &t1)
	normal.Unit()

	for i := 0; i < 3; i++ {
		s := base + i
		w.RowBody0[s], w.RowBody1[s] = NoBody, footBody
		w.JT1[s] = normal

		var cxn lin.V3[R]
		cxn.Cross(&contactWorldOffset[i], &normal)
		w.JA1[s] = cxn
		w.LambdaMin[s] = 0
		w.LambdaMax[s] = R(lambdaSentinel)
	}

	return ContactRowsPerFoot
}

// clearContactRows resets a foot's 5-row block to the zeroed, inactive
// state CollideFootCylinderTri leaves a non-contacting step in.
func (w *World[R]) clearContactRows(base int) {
	zero := lin.V3[R]{}
	for i := 0; i < ContactRowsPerFoot; i++ {
		s := base + i
		w.RowBody0[s], w.RowBody1[s] = NoBody, NoBody
		w.JT1[s], w.JA1[s] = zero, zero
		w.LambdaMin[s] = -R(lambdaSentinel)
		w.LambdaMax[s] = R(lambdaSentinel)
	}
}

// sampleTerrain calls TerrainHeightFunc if set; otherwise it logs a debug
// line on every call and falls back to flat ground.
func (w *World[R]) sampleTerrain(x, y R) R {
	if w.TerrainHeightFunc != nil {
		return w.TerrainHeightFunc(x, y)
	}
	if w.Logger != nil {
		w.Logger.Debug("dynamics: no TerrainHeightFunc set, treating terrain as flat")
	}
	return 0
}
