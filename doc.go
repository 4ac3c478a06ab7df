// Copyright 2024 The Pathcont Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pathcont implements numerical continuation (pseudo-arclength /
// local-parametrization path following) of parametrized nonlinear
// equilibrium equations f(x,lpf) = 0.
//
// Given a user residual in the state x and a scalar load-proportionality
// factor lpf, Run traces a connected branch in the combined (x,lpf) space,
// switching the continuation (control) coordinate dynamically to whichever
// component of the normalized tangent is moving fastest. This lets the
// driver negotiate limit points (turning points in lpf) without stalling.
package pathcont
