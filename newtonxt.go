// Copyright 2024 The Pathcont Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathcont

import (
	"math"

	"github.com/cpmech/gosl/la"
)

// newtonxtResult extends newtonResult with the normalized increment and the
// a-posteriori control coordinate, mirroring contique's newtonxt.
type newtonxtResult struct {
	newtonResult
	Dys     la.Vector
	Control Control
}

// newtonxt solves the augmented equilibrium equations starting from y0
// under control0 (the pinned coordinate and its target direction), using a
// per-coordinate cap dymax, then derives the normalized increment and the
// new (a-posteriori) control coordinate from it.
func newtonxt(f Residual, jac *JacPair, y0 la.Vector, control0 Control, dymax la.Vector, jacmode int, jaceps float64, args interface{}, maxiter int, tol float64, solve SolveFunc) newtonxtResult {
	n := len(y0)
	needle := oneHot(control0.Index, n)

	ytarget := la.NewVector(n)
	for i := 0; i < n; i++ {
		ytarget[i] = y0[i] + float64(control0.Sign)*dymax[i]
	}

	g := func(y la.Vector) la.Vector {
		return augmentedResidual(y, needle, ytarget, f, args)
	}
	dg := func(y la.Vector) JacValue {
		return augmentedJacobian(y, needle, f, jac, jacmode, jaceps, args)
	}

	base := newtonCorrect(g, y0, dg, maxiter, tol, solve)

	dys := la.NewVector(n)
	anyNaN := false
	for i := 0; i < n; i++ {
		dys[i] = (base.Y[i] - y0[i]) / dymax[i]
		if math.IsNaN(dys[i]) {
			anyNaN = true
		}
	}

	newControl := control0
	if !anyNaN && !allZero(dys) {
		newControl = selectControl(dys)
	}

	return newtonxtResult{
		newtonResult: base,
		Dys:          dys,
		Control:      newControl,
	}
}

// allZero reports whether every component of v is exactly zero: the case in
// which selectControl's argmax/sign rule is ill-defined (§9's open question
// on control sign at the first step). The driver must honor the caller's
// control0 verbatim here rather than re-selecting.
func allZero(v la.Vector) bool {
	for _, vi := range v {
		if vi != 0 {
			return false
		}
	}
	return true
}
