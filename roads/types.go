// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Status, Mode, Pair, Candidate, Result, options and sentinel errors
//       for the road planner.

package roads

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/landmarks/bfs"
)

// Sentinel errors for Plan.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("roads: graph is nil")

	// ErrLabelOutOfRange indicates X or Y is not in [1, NodeCount].
	ErrLabelOutOfRange = errors.New("roads: landmark label out of range")

	// ErrSameLandmark indicates X == Y.
	ErrSameLandmark = errors.New("roads: landmarks must be distinct")

	// ErrUnknownMode indicates a mode name ParseMode does not recognize.
	ErrUnknownMode = errors.New("roads: unknown mode")
)

// Status classifies a planning outcome.
type Status int

const (
	// Feasible means at least one new road keeps the X–Y distance.
	Feasible Status = iota
	// NoInitialPath means X and Y are not connected; no pair was examined.
	NoInitialPath
	// NoValidPairs means every candidate road would shorten the X–Y distance,
	// or no candidate exists at all.
	NoValidPairs
)

// String returns the canonical name of the status.
func (s Status) String() string {
	switch s {
	case Feasible:
		return "Feasible"
	case NoInitialPath:
		return "NoInitialPath"
	case NoValidPairs:
		return "NoValidPairs"
	default:
		return "Unknown"
	}
}

// Mode selects how an unreachable distance takes part in candidate arithmetic.
type Mode int

const (
	// ModeLiteral uses bfs.Unreachable (-1) as a plain integer, matching the
	// reference output of the road planner. A candidate that routes through an
	// unreachable node can therefore look shorter than it is.
	ModeLiteral Mode = iota

	// ModeUnreachableInfinite treats any route term touching an unreachable
	// node as infinitely long. A pair whose both routes are infinite is valid.
	ModeUnreachableInfinite
)

// String returns the canonical name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeLiteral:
		return "literal"
	case ModeUnreachableInfinite:
		return "infinite"
	default:
		return "unknown"
	}
}

// ParseMode maps "literal" and "infinite" to their Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "literal":
		return ModeLiteral, nil
	case "infinite":
		return ModeUnreachableInfinite, nil
	default:
		return ModeLiteral, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Pair is a candidate road between two 1-based landmark labels, A < B.
type Pair struct {
	A int
	B int
}

// Candidate describes one examined non-road pair, reported to OnCandidate.
// I and J are 0-based indices, I < J.
type Candidate struct {
	I, J     int
	Distance int  // candidate distance; meaningless when Finite is false
	Finite   bool // false when both routes are infinite (ModeUnreachableInfinite only)
	Valid    bool // inserting the road keeps the original distance
}

// Result is the outcome of Plan.
type Result struct {
	Status Status

	// OriginalDistance is the X–Y shortest-path length, bfs.Unreachable if none.
	OriginalDistance int

	// Pairs lists valid new roads in enumeration order (i asc, then j asc).
	Pairs []Pair

	// FromX and FromY are the distance vectors from X and from Y.
	FromX bfs.DistanceVector
	FromY bfs.DistanceVector
}

// Feasible reports whether at least one valid pair was found.
func (r *Result) Feasible() bool {
	return r != nil && r.Status == Feasible
}

// Option configures Plan via functional arguments.
type Option func(*Options)

// Options holds parameters for Plan.
type Options struct {
	// Ctx allows cancellation; checked once per row of the pair scan.
	Ctx context.Context

	// Mode selects the unreachable arithmetic; default ModeLiteral.
	Mode Mode

	// OnCandidate, if non-nil, observes every examined non-road pair.
	OnCandidate func(Candidate)
}

// DefaultOptions returns Options with a background context, ModeLiteral
// and no candidate hook.
func DefaultOptions() Options {
	return Options{
		Ctx:  context.Background(),
		Mode: ModeLiteral,
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMode selects the unreachable arithmetic.
func WithMode(m Mode) Option {
	return func(o *Options) {
		o.Mode = m
	}
}

// WithOnCandidate installs a hook invoked for each examined non-road pair.
func WithOnCandidate(fn func(Candidate)) Option {
	return func(o *Options) {
		o.OnCandidate = fn
	}
}
