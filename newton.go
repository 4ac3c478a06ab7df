// Copyright 2024 The Pathcont Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathcont

import (
	"fmt"
	"math"

	"github.com/cpmech/gosl/la"
)

// funcVal is a general residual callable used by the Newton corrector: the
// augmented residual g(y) or, in tests, a bare user residual.
type funcVal func(y la.Vector) la.Vector

// funcJac is the matching Jacobian callable.
type funcJac func(y la.Vector) JacValue

// newtonResult is the outcome of one run of the Newton corrector, the Go
// analogue of contique's NewtonResult.
type newtonResult struct {
	Success     bool
	Status      int
	Message     string
	NIterations int
	Y           la.Vector
	Fun         la.Vector
	Jac         JacValue
}

// newtonCorrect is a damped-free Newton-Raphson corrector on a general
// residual g(y)=0, direct descendant of the teacher's num.NlSolver.Solve,
// generalized from a fixed n-equation system to the augmented (n+1)-system
// this package needs, and re-expressed around a pluggable SolveFunc rather
// than the teacher's internal dense/sparse branch.
//
// maxiter=0 returns the initial point with one residual+Jacobian
// evaluation, without iterating — the driver uses this to materialize the
// very first emitted result. maxiter=1 computes exactly one (undamped)
// Newton step — the driver uses this as a predictor to pre-identify the
// control coordinate before committing to cycles.
func newtonCorrect(g funcVal, y0 la.Vector, dg funcJac, maxiter int, tol float64, solve SolveFunc) newtonResult {
	res := newtonResult{
		Y:       y0.GetCopy(),
		Message: "not started",
	}
	res.Fun = g(res.Y)
	res.Jac = dg(res.Y)

	if maxiter == 0 {
		res.Message = "initial point (maxiter=0, not iterated)"
		return res
	}

	if solve == nil {
		solve = DefaultSolve
	}

	for it := 1; it <= maxiter; it++ {
		res.NIterations = it

		rhs := res.Fun.GetCopy()
		for i := range rhs {
			rhs[i] = -rhs[i]
		}

		delta, err := solve(res.Jac, rhs)
		if err != nil {
			for i := range res.Y {
				res.Y[i] = math.NaN()
			}
			res.Success = false
			res.Status = 0
			res.Message = fmt.Sprintf("linear solve failed: %v", err)
			return res
		}
		for i := range res.Y {
			res.Y[i] += delta[i]
		}

		res.Fun = g(res.Y)
		res.Jac = dg(res.Y)

		if res.Fun.Norm() < tol {
			res.Success = true
			res.Status = 1
			if it == 1 {
				res.Message = "solution converged in 1 iteration"
			} else {
				res.Message = fmt.Sprintf("solution converged in %d iterations", it)
			}
			return res
		}
	}

	res.Success = false
	res.Status = 0
	if maxiter == 1 {
		res.Message = "calculated linear solution because of input parameter maxiter=1 (not converged)"
	} else {
		res.Message = "Newton-Raphson process failed to converge"
	}
	return res
}

// DefaultSolve is the default linear-solver collaborator of §6: it solves
// densely via la.MatInv when jac is dense, and via la.Triplet/la.Umfpack
// when jac is sparse, exactly the branch num.NlSolver.Init(useDn, numJ)
// takes in the teacher package.
func DefaultSolve(jac JacValue, b la.Vector) (x la.Vector, err error) {
	if jac.IsSparse() {
		return sparseSolve(jac.Sparse, b)
	}
	return denseSolve(jac.Dense, b)
}

func denseSolve(a *la.Matrix, b la.Vector) (x la.Vector, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("dense solve breakdown: %v", r)
		}
	}()
	n := len(b)
	ai := la.NewMatrix(n, n)
	la.MatInv(ai, a, false)
	x = la.NewVector(n)
	for i := 0; i < n; i++ {
		var s float64
		for j := 0; j < n; j++ {
			s += ai.Get(i, j) * b[j]
		}
		x[i] = s
	}
	return x, nil
}

func sparseSolve(a *la.Triplet, b la.Vector) (x la.Vector, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("sparse solve breakdown: %v", r)
		}
	}()
	var lis la.Umfpack
	lis.Init(a, &la.SpArgs{Symmetric: false, Verbose: false, Ordering: "", Scaling: "", Guess: nil, Communicator: nil})
	defer lis.Free()
	lis.Fact()
	x = la.NewVector(len(b))
	lis.Solve(x, b, false)
	return x, nil
}
