// Copyright 2024 The Pathcont Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathcont

import (
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// nref is the reference Newton-iteration count used by the rebalancer's
// reward-fast-convergence term, fixed at 8 per §4.G of the source
// specification.
const nref = 8.0

// rebalance adjusts the per-coordinate caps dymax (§4.G). x0 is the
// original (step-zero) caps, xn the caps used for the step that just
// finished. lastfailed is the running count of consecutive successful
// steps since the last failure, mutated in place.
//
// It returns the proposed caps and whether they actually changed anything
// (rebalanced==false signals the driver to terminate on a failed step
// rather than spin on an unchanging rebalance).
func rebalance(x0, xn la.Vector, success bool, n int, lastfailed *int, increase, decrease, high, low float64, minlastfailed int) (la.Vector, bool) {
	x := xn.GetCopy()

	if success {
		*lastfailed++
		if *lastfailed >= minlastfailed {
			nEff := float64(n)
			if nEff > nref {
				nEff = nref
			}
			factor := 1 + (nref-nEff)/nref*increase
			for i := range x {
				x[i] = xn[i] * factor
			}
		}
		// else: x already equals xn, i.e. no change.
	} else {
		for i := range x {
			x[i] = xn[i] / decrease
		}
		*lastfailed = 0
	}

	y := x0.GetCopy()
	for i := range y {
		ratio := utl.Max(utl.Min(x[i]/x0[i], high), low)
		y[i] = ratio * x0[i]
	}

	rebalanced := y[0] != xn[0]
	return y, rebalanced
}
