// Copyright 2024 The Pathcont Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathcont

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

func TestOneHot(tst *testing.T) {
	chk.PrintTitle("OneHot. needle vector")

	v := oneHot(2, 5)
	chk.Array(tst, "needle", 1e-15, v, []float64{0, 0, 1, 0, 0})
}

func TestSelectControlLowestIndexTieBreak(tst *testing.T) {
	chk.PrintTitle("SelectControl. lowest-index tie-break")

	// two components tie at the same magnitude: index 1 must win, not 3.
	c := selectControl(la.Vector{0.1, -0.5, 0.2, 0.5})
	if c.Index != 1 || c.Sign != -1 {
		tst.Fatalf("expected (1,-1), got (%d,%d)", c.Index, c.Sign)
	}
}

func TestSelectControlSign(tst *testing.T) {
	chk.PrintTitle("SelectControl. sign of dominant component")

	c := selectControl(la.Vector{0.01, 0.02, 3.0})
	if c.Index != 2 || c.Sign != 1 {
		tst.Fatalf("expected (2,1), got (%d,%d)", c.Index, c.Sign)
	}

	c = selectControl(la.Vector{0.01, -3.0, 0.02})
	if c.Index != 1 || c.Sign != -1 {
		tst.Fatalf("expected (1,-1), got (%d,%d)", c.Index, c.Sign)
	}
}

func TestResolveControl0(tst *testing.T) {
	chk.PrintTitle("resolveControl0. negative index counts from the end")

	c := resolveControl0(Control{Index: -1, Sign: 1}, 3)
	if c.Index != 2 || c.Sign != 1 {
		tst.Fatalf("expected (2,1), got (%d,%d)", c.Index, c.Sign)
	}

	c = resolveControl0(Control{Index: 0, Sign: -1}, 3)
	if c.Index != 0 || c.Sign != -1 {
		tst.Fatalf("expected (0,-1) unchanged, got (%d,%d)", c.Index, c.Sign)
	}
}
