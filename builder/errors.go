// SPDX-License-Identifier: MIT
// Package: landmarks/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w.

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (n, rows, cols)
// is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrGraphTooSmall indicates the target graph has fewer nodes than the
// constructor needs at the configured offset.
var ErrGraphTooSmall = errors.New("builder: graph has too few nodes")

// ErrInvalidProbability indicates that a probability value is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that construction could not proceed
// (nil constructor, nil graph, or an insertion rejected by core).
var ErrConstructFailed = errors.New("builder: construction failed")
