// Copyright 2024 The Pathcont Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathcont

import (
	"math"

	"github.com/cpmech/gosl/la"
)

// oneHot returns a vector of length m with a 1 at index i and 0 elsewhere.
// It is used both as the gradient of the control equation and as the row
// appended to the augmented Jacobian — the "needle" of the source design.
func oneHot(i, m int) la.Vector {
	v := la.NewVector(m)
	v[i] = 1
	return v
}

// selectControl returns the dominant (index, sign) pair of v: the lowest
// index attaining max_i |v[i]|, and the sign of v at that index.
//
// The tie-break (lowest index wins) is load-bearing for reproducibility
// across runs and must not be replaced with a "last index wins" argmax, as
// a naive reverse scan would give.
func selectControl(v la.Vector) Control {
	best := 0
	bestAbs := math.Abs(v[0])
	for i := 1; i < len(v); i++ {
		a := math.Abs(v[i])
		if a > bestAbs {
			bestAbs = a
			best = i
		}
	}
	s := 0
	switch {
	case v[best] > 0:
		s = 1
	case v[best] < 0:
		s = -1
	}
	return Control{Index: best, Sign: s}
}

// resolveControl0 turns a user-supplied initial control (which may use a
// negative index to mean "counted from the end", e.g. -1 is the LPF
// component) into an absolute index into y, mirroring `control0[0] =
// ncomp - abs(control0[0])` in the source driver.
func resolveControl0(c Control, ncomp int) Control {
	if c.Index < 0 {
		c.Index = ncomp - intAbs(c.Index)
	}
	return c
}

func intAbs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
