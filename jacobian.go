// Copyright 2024 The Pathcont Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathcont

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// MACHEPS is the machine epsilon used to derive the default
// finite-difference step width, matching num.MACHEPS in the teacher
// package.
const MACHEPS = 2.220446049250313e-16

// fdStep returns the user-supplied step width, or the default
// eps^(1/mode) when eps<=0, matching contique.jacobian's `h = eps**(1/mode)`.
func fdStep(mode int, eps float64) float64 {
	if eps > 0 {
		return eps
	}
	return math.Pow(MACHEPS, 1/float64(mode))
}

// densify coerces a ResidualValue returned by a Residual callback into a
// dense la.Vector, accepting either a la.Vector directly or any value
// implementing Densifier (the Go analogue of contique's
// `if sparse.issparse(f): f = f.toarray()`).
func densify(v ResidualValue) la.Vector {
	switch t := v.(type) {
	case la.Vector:
		return t
	case Densifier:
		return t.ToDense()
	default:
		chk.Panic("residual callback returned a value that is neither la.Vector nor Densifier: %T", v)
	}
	return nil
}

// fdJacX approximates df/dx, the n-by-n Jacobian of the residual w.r.t. the
// state vector x, by forward (mode=2) or central (mode=3)
// finite-differences. x is never mutated: each perturbed evaluation works
// on a fresh copy, mirroring the deep-copy of the argument tuple in
// contique's jacobian decorator.
func fdJacX(f Residual, x la.Vector, lpf float64, args interface{}, mode int, eps float64) *la.Matrix {
	h := fdStep(mode, eps)
	n := len(x)
	f0 := densify(f(x, lpf, args))
	m := len(f0)
	jac := la.NewMatrix(m, n)
	for j := 0; j < n; j++ {
		xfwd := x.GetCopy()
		xfwd[j] += h
		ffwd := densify(f(xfwd, lpf, args))

		fref := f0
		if mode == 3 {
			xrev := x.GetCopy()
			xrev[j] -= h
			fref = densify(f(xrev, lpf, args))
		}

		for i := 0; i < m; i++ {
			jac.Set(i, j, (ffwd[i]-fref[i])/h/float64(mode-1))
		}
	}
	return jac
}

// fdJacLambda approximates df/dlpf, the length-n Jacobian of the residual
// w.r.t. the scalar load-proportionality factor, by forward (mode=2) or
// central (mode=3) finite-differences.
func fdJacLambda(f Residual, x la.Vector, lpf float64, args interface{}, mode int, eps float64) la.Vector {
	h := fdStep(mode, eps)
	f0 := densify(f(x, lpf, args))
	ffwd := densify(f(x, lpf+h, args))

	fref := f0
	if mode == 3 {
		fref = densify(f(x, lpf-h, args))
	}

	n := len(ffwd)
	d := la.NewVector(n)
	for i := 0; i < n; i++ {
		d[i] = (ffwd[i] - fref[i]) / h / float64(mode-1)
	}
	return d
}
