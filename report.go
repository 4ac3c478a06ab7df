// Copyright 2024 The Pathcont Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathcont

import (
	"github.com/cpmech/gosl/io"
)

// The cycle* constants are the display status of one reported cycle,
// matching the 4-way encoding of §4.H.
const (
	cycleFailed            = 0
	cycleConverged         = 1
	cycleConvergedRecycle  = 2
	cycleConvergedOvershot = 3
)

// reporter is the progress-reporter external collaborator (§4.H). It only
// ever reads the values it is given; it must never alter driver state. A
// nil *reporter (via Verbose=false) makes every method a no-op.
type reporter struct {
	enabled bool
}

func newReporter(enabled bool) *reporter {
	return &reporter{enabled: enabled}
}

// header prints the column banner, once, before the step loop begins.
func (r *reporter) header() {
	if !r.enabled {
		return
	}
	io.Pf("|Step,C.| Control Component | Norm (Iter.#) | Message     |\n")
	io.Pf("|-------|-------------------|---------------|-------------|\n")
}

// cycle reports the outcome of one corrector cycle within a step.
func (r *reporter) cycle(step, cycl int, control0, control Control, newtonStatus int, fnorm float64, niterations int, overshootOK bool) {
	if !r.enabled {
		return
	}

	status := newtonStatus
	if control0 != control && newtonStatus == cycleConverged {
		if overshootOK {
			status = cycleConvergedOvershot
		} else {
			status = cycleConvergedRecycle
		}
	}

	messages := []string{
		"Failed       ",
		"             ",
		" => re-Cycle ",
		"tol.Overshoot",
	}

	stp := "     "
	if cycl == 1 {
		stp = io.Sf("%4d,", step)
	}

	io.Pf("|%5s%1d |%6d%+d  =>%6d%+d | %.1e (%2d#) |%13s|\n",
		stp, cycl,
		control0.Index, control0.Sign,
		control.Index, control.Sign,
		fnorm, niterations,
		messages[status],
	)
}

// errorControl prints the control-switch exhaustion banner (§4.F step
// 2.d, §7.3).
func (r *reporter) errorControl() {
	if !r.enabled {
		return
	}
	io.Pf("\nERROR. Control component changed in last cycle.\n")
	io.Pf("       Possible solution: Reduce stepwidth.\n")
}

// errorFinal prints the terminal-failure banner (§7.4).
func (r *reporter) errorFinal() {
	if !r.enabled {
		return
	}
	io.Pf("\nERROR. Numerical continuation stopped.\n")
}
