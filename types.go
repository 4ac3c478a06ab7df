// Copyright 2024 The Pathcont Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathcont

import (
	"github.com/cpmech/gosl/la"
)

// Control identifies the coordinate of the augmented state vector y=(x,lpf)
// that is pinned during a cycle, and the direction (sign) it was pinned in.
// Index n (the last component, where n = len(x)) denotes the LPF.
type Control struct {
	Index int
	Sign  int
}

// Densifier is implemented by residual return values that are not already a
// dense la.Vector (e.g. a sparse column vector), matching the
// `sparse.issparse(f)` check in contique's funxt.
type Densifier interface {
	ToDense() la.Vector
}

// ResidualValue is whatever a Residual returns: either a la.Vector directly,
// or a value implementing Densifier.
type ResidualValue interface{}

// Residual evaluates the user's f(x,lpf) equilibrium equations. args is the
// value captured in Config.Args, passed through unchanged and treated as
// read-only.
type Residual func(x la.Vector, lpf float64, args interface{}) ResidualValue

// JacXFunc computes the dense df/dx at (x, lpf).
type JacXFunc func(x la.Vector, lpf float64, args interface{}) *la.Matrix

// JacXSparseFunc fills the sparse df/dx at (x, lpf) into dst, calling
// dst.Start() followed by dst.Put(i, j, value) for each nonzero entry. dst
// arrives already sized by Init and must not be replaced. This mirrors
// num.NlSolver's JfcnSp collaborator, which the teacher invokes as
// `o.JfcnSp(&o.Jtri, x)` to fill a triplet it owns rather than returning a
// new one: gosl's la.Triplet exposes no public way to copy another
// Triplet's entries out, so write-into-caller's-triplet is the only way to
// assemble a sparse augmented Jacobian from the public API.
type JacXSparseFunc func(dst *la.Triplet, x la.Vector, lpf float64, args interface{})

// JacLambdaFunc computes df/dlpf at (x, lpf), a vector of length n.
type JacLambdaFunc func(x la.Vector, lpf float64, args interface{}) la.Vector

// JacPair is the optional analytic-Jacobian collaborator of §6. When nil,
// the driver falls back to the finite-difference approximator of
// jacobian.go, which is always dense. Exactly one of DFDX, DFDXSparse is
// set; DFDXSparse takes precedence when both are non-nil.
type JacPair struct {
	DFDX       JacXFunc
	DFDXSparse JacXSparseFunc
	DFDLambda  JacLambdaFunc
}

// JacValue is the augmented Jacobian Dg(y): exactly one of Dense or Sparse
// is set. This is the small tagged-union the design notes of the source
// specification call for in place of threading an untyped matrix value
// through every component.
type JacValue struct {
	Dense  *la.Matrix
	Sparse *la.Triplet
}

// IsSparse reports whether the sparse representation is populated.
func (j JacValue) IsSparse() bool {
	return j.Sparse != nil
}

// SolveFunc solves A*x = b for x. It returns an error instead of panicking
// on a singular/breakdown condition so the Newton corrector can fall through
// to its NaN-and-fail recovery path (§4.D, §7.1) rather than aborting the
// run.
type SolveFunc func(jac JacValue, b la.Vector) (la.Vector, error)

// ResultCallback is invoked once per accepted step, before the
// corresponding Result is yielded from Run. It must not mutate res. A panic
// from ResultCallback propagates out of Run and terminates the continuation
// (§7.5).
type ResultCallback func(step int, res Result)

// Result is one emitted point of the traced branch.
type Result struct {
	Success     bool
	Status      int // 0 = not converged, 1 = converged
	Message     string
	NIterations int
	Y           la.Vector // state + lpf, y=(x,lpf)
	Fun         la.Vector // augmented residual g(y) at Y
	Jac         JacValue  // augmented Jacobian Dg(y) at Y
	Dys         la.Vector // normalized increment (Y-Yprev)/dymax
	Control     Control   // control re-selected from Dys, pinned by the next step
}

// X returns the state unknowns (all but the last component of Y).
func (r Result) X() la.Vector {
	return r.Y[:len(r.Y)-1]
}

// LPF returns the load-proportionality factor (the last component of Y).
func (r Result) LPF() float64 {
	return r.Y[len(r.Y)-1]
}
