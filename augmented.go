// Copyright 2024 The Pathcont Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathcont

import (
	"github.com/cpmech/gosl/la"
)

// augmentedResidual evaluates g(y) = [ f(x,lpf) ; needle.(y-ytarget) ],
// the user residual adjoined with the scalar control equation that pins
// y[needle's nonzero index] to ytarget's corresponding component. This is
// the Go counterpart of contique's funxt.
func augmentedResidual(y, needle, ytarget la.Vector, f Residual, args interface{}) la.Vector {
	n := len(y) - 1
	x, lpf := y[:n], y[n]

	fval := densify(f(x, lpf, args))

	g := la.NewVector(len(fval) + 1)
	copy(g, fval)

	var dot float64
	for i := range needle {
		dot += needle[i] * (y[i] - ytarget[i])
	}
	g[len(fval)] = dot
	return g
}

// augmentedJacobian evaluates Dg(y), the Jacobian of augmentedResidual
// w.r.t. y: the user (or finite-difference) Jacobian block [df/dx df/dlpf],
// with the needle vector appended as the last row. This is the Go
// counterpart of contique's jacxt.
//
// When df/dx is dense, the result is a dense (n+1)x(n+1) matrix. When df/dx
// is sparse, the result is a sparse triplet with the needle row appended,
// mirroring the dense/sparse hstack-then-vstack in the source.
func augmentedJacobian(y, needle la.Vector, f Residual, jac *JacPair, jacmode int, jaceps float64, args interface{}) JacValue {
	n := len(y) - 1
	x, lpf := y[:n], y[n]

	if jac == nil {
		dfdx := fdJacX(f, x, lpf, args, jacmode, jaceps)
		dfdl := fdJacLambda(f, x, lpf, args, jacmode, jaceps)
		return stackDense(dfdx, dfdl, needle)
	}

	dfdl := jac.DFDLambda(x, lpf, args)

	if jac.DFDXSparse != nil {
		return stackSparse(jac.DFDXSparse, x, lpf, args, dfdl, needle, n)
	}

	dfdx := jac.DFDX(x, lpf, args)
	return stackDense(dfdx, dfdl, needle)
}

// stackDense builds the dense augmented Jacobian from a dense df/dx block,
// a df/dlpf column, and the needle row.
func stackDense(dfdx *la.Matrix, dfdl, needle la.Vector) JacValue {
	n, _ := dfdx.M, dfdx.N
	dg := la.NewMatrix(n+1, n+1)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			dg.Set(i, j, dfdx.Get(i, j))
		}
		dg.Set(i, n, dfdl[i])
	}
	for j := 0; j <= n; j++ {
		dg.Set(n, j, needle[j])
	}
	return JacValue{Dense: dg}
}

// stackSparse builds the sparse augmented Jacobian by letting the user's
// df/dx callback fill a triplet this function owns, then appending the
// df/dlpf column and needle row with further Put calls, preserving the
// sparse representation through assembly (§4.C).
//
// gosl's la.Triplet has no public accessor for an existing Triplet's
// entries (no way to read back what a user-built Triplet already
// contains), so the df/dx block cannot be copied out of one Triplet and
// into another. Instead dfdxFn is called write-into style against a
// Triplet dg already sized for the full (n+1)x(n+1) augmented system,
// exactly as num.NlSolver invokes its own JfcnSp collaborator against a
// Triplet it owns (`o.JfcnSp(&o.Jtri, x)`), rather than receiving one back.
func stackSparse(dfdxFn JacXSparseFunc, x la.Vector, lpf float64, args interface{}, dfdl, needle la.Vector, n int) JacValue {
	dg := new(la.Triplet)
	dg.Init(n+1, n+1, (n+1)*(n+1))

	dfdxFn(dg, x, lpf, args)

	for i := 0; i < n; i++ {
		if dfdl[i] != 0 {
			dg.Put(i, n, dfdl[i])
		}
	}
	for j := 0; j <= n; j++ {
		if needle[j] != 0 {
			dg.Put(n, j, needle[j])
		}
	}
	return JacValue{Sparse: dg}
}
