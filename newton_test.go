// Copyright 2024 The Pathcont Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathcont

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// TestNewtonCorrectCubicSystem mirrors num.TestNls01: the 2-equation cubic
// system x0^3+x1=1, -x0+x1^3=-1, with the known root (1,0), solved with
// the analytic Jacobian.
func TestNewtonCorrectCubicSystem(tst *testing.T) {
	chk.PrintTitle("NewtonCorrect. 2-eq cubic system, analytic Jacobian")

	g := func(y la.Vector) la.Vector {
		return la.Vector{
			y[0]*y[0]*y[0] + y[1] - 1,
			-y[0] + y[1]*y[1]*y[1] + 1,
		}
	}
	dg := func(y la.Vector) JacValue {
		j := la.NewMatrix(2, 2)
		j.Set(0, 0, 3*y[0]*y[0])
		j.Set(0, 1, 1)
		j.Set(1, 0, -1)
		j.Set(1, 1, 3*y[1]*y[1])
		return JacValue{Dense: j}
	}

	y0 := la.Vector{0.5, 0.5}
	res := newtonCorrect(g, y0, dg, 20, 1e-10, nil)

	if !res.Success {
		tst.Fatalf("expected convergence, got message=%q", res.Message)
	}
	chk.Array(tst, "y == (1,0)", 1e-8, res.Y, []float64{1.0, 0.0})
}

func TestNewtonCorrectMaxIterZeroReturnsInitialPoint(tst *testing.T) {
	chk.PrintTitle("NewtonCorrect. maxiter=0 materializes the initial point")

	g := func(y la.Vector) la.Vector { return la.Vector{y[0] - 3} }
	dg := func(y la.Vector) JacValue {
		j := la.NewMatrix(1, 1)
		j.Set(0, 0, 1)
		return JacValue{Dense: j}
	}

	y0 := la.Vector{0.0}
	res := newtonCorrect(g, y0, dg, 0, 1e-10, nil)

	if res.NIterations != 0 {
		tst.Fatalf("expected 0 iterations, got %d", res.NIterations)
	}
	chk.Array(tst, "y unchanged", 1e-15, res.Y, y0)
	chk.Array(tst, "fun = g(y0)", 1e-15, res.Fun, []float64{-3})
}

func TestNewtonCorrectSingularJacobianYieldsNaN(tst *testing.T) {
	chk.PrintTitle("NewtonCorrect. singular Jacobian fails without panicking")

	g := func(y la.Vector) la.Vector { return la.Vector{y[0]*0 + 1, y[1]*0 + 1} }
	dg := func(y la.Vector) JacValue {
		// all-zero Jacobian: singular by construction.
		return JacValue{Dense: la.NewMatrix(2, 2)}
	}

	y0 := la.Vector{1.0, 1.0}
	res := newtonCorrect(g, y0, dg, 5, 1e-10, nil)

	if res.Success {
		tst.Fatalf("expected failure on singular Jacobian")
	}
	for _, v := range res.Y {
		if !isNaN(v) {
			tst.Fatalf("expected NaN state after solve breakdown, got %v", res.Y)
		}
	}
}

func isNaN(f float64) bool {
	return f != f
}
