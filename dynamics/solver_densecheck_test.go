// Copyright © 2024 Galvanized Logic Inc.

package dynamics

import (
	"testing"

	"github.com/gazed/dynamics/math/lin"
	"gonum.org/v1/gonum/mat"
)

// TestSolveForLambdaMatchesDenseSolve cross-checks the PGS sweep against a
// direct solve of the same (J*M^-1*J^T)*lambda = rhs system, built from the
// identical B, d, and rhs arrays solveForLambda itself computes. The two
// methods only need to agree where the PGS solution sits strictly inside
// its box constraints, so this hinge has no motor (unbounded rows) and a
// tiny ERP so the position-error term stays negligible.
func TestSolveForLambdaMatchesDenseSolve(t *testing.T) {
	w := NewWorld(Config[float64]{Bodies: 2, Hinges: 1, ERP: 1e-9})
	w.SetBoxInertia(0, 1, 1, 1, 1)
	w.SetBoxInertia(1, 2, 1, 1, 1)
	w.SetPosition(0, &lin.V3[float64]{X: -0.5})
	w.SetPosition(1, &lin.V3[float64]{X: 0.5})
	w.SetLinearVelocity(0, &lin.V3[float64]{Y: 1})
	w.SetLinearVelocity(1, &lin.V3[float64]{Y: -1})

	anchor := lin.V3[float64]{}
	axis := lin.V3[float64]{Z: 1}
	w.CreateHinge(0, 0, 1, &anchor, &axis)
	w.updateJacobian()

	dt := 0.01
	k := w.k

	// Assemble the dense system from the same per-row blocks the solver
	// uses: A[s][r] = (row s's J) . (row r's B), built by reusing the
	// package's own row accessors rather than re-deriving the formula.
	w.computeB()
	w.computeD()
	w.computeRHS(dt)

	a := mat.NewDense(k, k, nil)
	b := mat.NewVecDense(k, nil)
	for s := 0; s < k; s++ {
		b.SetVec(s, w.rhs[s])
		stopS := w.stopAtBody(s)
		for r := 0; r < k; r++ {
			stopR := w.stopAtBody(r)
			var sum float64
			for bi := 1; bi >= stopS; bi-- {
				body := w.rowBody(s, bi)
				for bj := 1; bj >= stopR; bj-- {
					if w.rowBody(r, bj) != body {
						continue
					}
					sum += w.rowJT(s, bi).Dot(w.rowBT(r, bj))
					sum += w.rowJA(s, bi).Dot(w.rowBA(r, bj))
				}
			}
			a.Set(s, r, sum)
		}
	}

	var lambda mat.VecDense
	if err := lambda.SolveVec(a, b); err != nil {
		t.Fatalf("dense solve failed: %v", err)
	}

	w.solveForLambda(dt, 500)

	const tol = 1e-3 // PGS converges geometrically, not exactly, in finite iterations
	for s := 0; s < k; s++ {
		diff := w.Lambda[s] - lambda.AtVec(s)
		if diff < -tol || diff > tol {
			t.Errorf("row %d: PGS lambda %v, dense solve %v (diff %v)", s, w.Lambda[s], lambda.AtVec(s), diff)
		}
	}
}
