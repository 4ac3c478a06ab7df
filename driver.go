// Copyright 2024 The Pathcont Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathcont

import (
	"iter"
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Config collects every tunable of the continuation driver (§4.F). validate
// rejects an empty X0, a nil Fun, non-positive DXMax, DLPFMax, Tol,
// MaxSteps or MaxCycles, a negative MaxIter, Overshoot < 1 and an
// out-of-range Control0.Index; the other fields are not checked.
type Config struct {
	// Problem definition.
	X0   la.Vector // initial state unknowns
	LPF0 float64   // initial load-proportionality factor
	Fun  Residual  // user residual f(x,lpf,args)
	Jac  *JacPair  // optional analytic Jacobian; nil uses finite differences
	Args interface{}

	// Step geometry.
	DXMax    float64 // initial max. absolute increase of state components per step
	DLPFMax  float64 // initial max. absolute increase of lpf per step
	Control0 Control // initial control coordinate; negative Index counts from the end

	// Finite-difference Jacobian settings (used when Jac==nil).
	JacMode int     // 2 (forward) or 3 (central)
	JacEps  float64 // step width; <=0 selects the default eps^(1/JacMode)

	// Iteration budgets.
	MaxSteps  int
	MaxCycles int
	MaxIter   int

	// Tolerances.
	Tol       float64 // residual 2-norm convergence tolerance
	Overshoot float64 // >=1, accept a control switch within this normalized overshoot

	// Step-width rebalancing (§4.G). Experimental, matching the source.
	Rebalance     bool
	Increase      float64
	Decrease      float64
	High          float64
	Low           float64
	MinLastFailed int

	// Collaborators (§6).
	Solve    SolveFunc
	Callback ResultCallback
	Verbose  bool
}

// DefaultConfig returns a Config with the same numeric defaults as
// contique.solve's keyword arguments. Callers must still set X0, LPF0, and
// Fun.
func DefaultConfig() Config {
	return Config{
		DXMax:         0.05,
		DLPFMax:       0.05,
		Control0:      Control{Index: -1, Sign: 1},
		JacMode:       3,
		MaxSteps:      50,
		MaxCycles:     4,
		MaxIter:       8,
		Tol:           1e-6,
		Overshoot:     1.0,
		Increase:      0.5,
		Decrease:      2.0,
		High:          10,
		Low:           1e-6,
		MinLastFailed: 3,
	}
}

// validate rejects malformed configuration eagerly via chk.Panic, matching
// num.NlSolver.Init's panic on an invalid parameter.
func validate(cfg Config) {
	if len(cfg.X0) == 0 {
		chk.Panic("pathcont: Config.X0 must not be empty")
	}
	if cfg.Fun == nil {
		chk.Panic("pathcont: Config.Fun must not be nil")
	}
	if cfg.DXMax <= 0 || cfg.DLPFMax <= 0 {
		chk.Panic("pathcont: Config.DXMax and Config.DLPFMax must be positive")
	}
	if cfg.Tol <= 0 {
		chk.Panic("pathcont: Config.Tol must be positive")
	}
	if cfg.MaxSteps <= 0 || cfg.MaxCycles <= 0 || cfg.MaxIter < 0 {
		chk.Panic("pathcont: Config.MaxSteps and Config.MaxCycles must be positive, MaxIter must be non-negative")
	}
	if cfg.Overshoot < 1 {
		chk.Panic("pathcont: Config.Overshoot must be >= 1")
	}
	ncomp := len(cfg.X0) + 1
	idx := cfg.Control0.Index
	if idx >= 0 && idx >= ncomp {
		chk.Panic("pathcont: Config.Control0.Index out of range")
	}
	if idx < 0 && intAbs(idx) > ncomp {
		chk.Panic("pathcont: Config.Control0.Index out of range")
	}
}

// Run traces the solution branch described by cfg, yielding one Result per
// emitted point: the initial state first, then one Result per accepted
// step, in order (§3 Lifecycle, §5 Result emission).
//
// The sequence is lazy and pull-based: nothing after the requested prefix
// is computed. It ends either when MaxSteps is exhausted, or earlier when a
// step fails and rebalancing (if enabled) made no further progress (§7.4) —
// in the latter case the sequence simply ends without yielding a trailing
// failure marker, exactly as contique's generator returns without a final
// yield on an unrecovered failure.
//
// Callback, if set, is invoked synchronously with each accepted step's
// Result before that Result is yielded (§5, §6); a panic from Callback
// propagates out of Run (§7.5).
func Run(cfg Config) iter.Seq[Result] {
	validate(cfg)

	return func(yield func(Result) bool) {
		n := len(cfg.X0)
		ncomp := n + 1

		control := resolveControl0(cfg.Control0, ncomp)

		y := la.NewVector(ncomp)
		copy(y, cfg.X0)
		y[n] = cfg.LPF0

		dymax0 := la.NewVector(ncomp)
		for i := 0; i < n; i++ {
			dymax0[i] = cfg.DXMax
		}
		dymax0[n] = cfg.DLPFMax
		dymax := dymax0.GetCopy()

		rep := newReporter(cfg.Verbose)

		initial := newtonxt(cfg.Fun, cfg.Jac, y, control, dymax, cfg.JacMode, cfg.JacEps, cfg.Args, 0, cfg.Tol, cfg.Solve)
		if !yield(toResult(initial)) {
			return
		}

		rep.header()

		lastfailed := 0

		for step := 1; step <= cfg.MaxSteps; step++ {
			// Predictor: identifies a tentative direction but is not committed.
			newtonxt(cfg.Fun, cfg.Jac, y, control, dymax, cfg.JacMode, cfg.JacEps, cfg.Args, 1, cfg.Tol, cfg.Solve)

			var cycleRes newtonxtResult
			accepted := false

			for cycl := 1; cycl <= cfg.MaxCycles; cycl++ {
				cycleRes = newtonxt(cfg.Fun, cfg.Jac, y, control, dymax, cfg.JacMode, cfg.JacEps, cfg.Args, cfg.MaxIter, cfg.Tol, cfg.Solve)

				overshootOK := maxAbs(cycleRes.Dys) <= cfg.Overshoot
				rep.cycle(step, cycl, control, cycleRes.Control, cycleRes.Status, cycleRes.Fun.Norm(), cycleRes.NIterations, overshootOK)

				if !cycleRes.Success {
					break
				}

				if cycleRes.Control == control || overshootOK {
					control = cycleRes.Control
					y = cycleRes.Y
					accepted = true
					break
				}

				if cycl == cfg.MaxCycles {
					rep.errorControl()
					cycleRes.Success = false
					cycleRes.Message = "control component changed in last cycle; reduce stepwidth"
				} else {
					control = cycleRes.Control
				}
			}

			if accepted {
				res := toResult(cycleRes)
				if cfg.Callback != nil {
					cfg.Callback(step, res)
				}
				if !yield(res) {
					return
				}
			}

			rebalanced := false
			if cfg.Rebalance {
				var newDymax la.Vector
				newDymax, rebalanced = rebalance(dymax0, dymax, cycleRes.Success, cycleRes.NIterations, &lastfailed, cfg.Increase, cfg.Decrease, cfg.High, cfg.Low, cfg.MinLastFailed)
				dymax = newDymax
			}

			if !cycleRes.Success && !rebalanced {
				rep.errorFinal()
				return
			}
		}
	}
}

// toResult converts the internal newtonxtResult into the public Result.
func toResult(r newtonxtResult) Result {
	return Result{
		Success:     r.Success,
		Status:      r.Status,
		Message:     r.Message,
		NIterations: r.NIterations,
		Y:           r.Y,
		Fun:         r.Fun,
		Jac:         r.Jac,
		Dys:         r.Dys,
		Control:     r.Control,
	}
}

// maxAbs returns max_i |v[i]|, the overshoot measure of §3/§4.F.
func maxAbs(v la.Vector) float64 {
	m := 0.0
	for _, x := range v {
		a := math.Abs(x)
		if a > m {
			m = a
		}
	}
	return m
}
