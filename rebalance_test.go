// Copyright 2024 The Pathcont Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathcont

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

func TestRebalanceFailureShrinksCaps(tst *testing.T) {
	chk.PrintTitle("rebalance. failure divides caps by `decrease`")

	x0 := la.Vector{0.1, 0.1}
	xn := la.Vector{0.1, 0.1}
	lastfailed := 5

	y, ok := rebalance(x0, xn, false, 0, &lastfailed, 0.5, 2.0, 10, 1e-6, 3)

	chk.Array(tst, "caps halved", 1e-15, y, []float64{0.05, 0.05})
	if lastfailed != 0 {
		tst.Fatalf("expected lastfailed reset to 0, got %d", lastfailed)
	}
	if !ok {
		tst.Fatalf("expected caps to have changed")
	}
}

func TestRebalanceSuccessBelowThresholdIsNoop(tst *testing.T) {
	chk.PrintTitle("rebalance. success below minlastfailed leaves caps unchanged")

	x0 := la.Vector{0.1}
	xn := la.Vector{0.1}
	lastfailed := 0

	y, ok := rebalance(x0, xn, true, 2, &lastfailed, 0.5, 2.0, 10, 1e-6, 3)

	chk.Array(tst, "caps unchanged", 1e-15, y, []float64{0.1})
	if ok {
		tst.Fatalf("expected rebalanced=false when caps did not change")
	}
	if lastfailed != 1 {
		tst.Fatalf("expected lastfailed=1, got %d", lastfailed)
	}
}

func TestRebalanceSuccessAboveThresholdGrowsCapsFasterOnFastConvergence(tst *testing.T) {
	chk.PrintTitle("rebalance. success above threshold rewards fast convergence")

	x0 := la.Vector{0.1}
	xn := la.Vector{0.1}
	lastfailed := 3

	// n=1 (fast convergence) should grow caps more than n=8 (nref, slow).
	yFast, _ := rebalance(x0, xn, true, 1, &lastfailed, 0.5, 2.0, 10, 1e-6, 3)

	lastfailed = 3
	ySlow, _ := rebalance(x0, xn, true, 8, &lastfailed, 0.5, 2.0, 10, 1e-6, 3)

	if !(yFast[0] > ySlow[0]) {
		tst.Fatalf("expected fast convergence (n=1) to grow caps more than slow (n=nref): %v vs %v", yFast[0], ySlow[0])
	}
}

func TestRebalanceClampsToLowHighBand(tst *testing.T) {
	chk.PrintTitle("rebalance. clamps to [low,high] * x0")

	x0 := la.Vector{0.1}
	xn := la.Vector{10.0} // way above high*x0
	lastfailed := 10

	y, _ := rebalance(x0, xn, true, 1, &lastfailed, 0.5, 2.0, 10, 1e-6, 3)
	chk.Array(tst, "clamped to high*x0", 1e-12, y, []float64{1.0})
}
