// Package steiner defines configuration options and sentinel errors for the
// pipe network optimizer.
package steiner

import "errors"

// Sentinel errors returned by Solve.
var (
	// ErrOutOfBounds indicates the source or a consumer coordinate lies
	// outside the grid. Out-of-bounds input is reported, never clamped.
	ErrOutOfBounds = errors.New("steiner: coordinate outside grid bounds")

	// ErrNegativePenalty indicates WithJunctionPenalty was given a negative
	// value; the penalty is a non-negative weight (0 disables it).
	ErrNegativePenalty = errors.New("steiner: junction penalty must be non-negative")
)

// Options configures one Solve call.
//
// JunctionPenalty – extra cost per routing step that would convert a
// degree-2 cell into a branch point. 0 disables branch discouragement.
// Seed – 64-bit seed controlling all tie-breaking; a fixed seed makes the
// solution fully reproducible.
type Options struct {
	JunctionPenalty float64
	Seed            uint64
}

// Option is a functional option for configuring Solve.
type Option func(*Options)

// WithJunctionPenalty sets the junction penalty weight.
// Must be non-negative; negative values panic with ErrNegativePenalty to
// signal the misconfiguration early.
func WithJunctionPenalty(p float64) Option {
	return func(o *Options) {
		if p < 0 {
			panic(ErrNegativePenalty.Error())
		}
		o.JunctionPenalty = p
	}
}

// WithSeed sets the tie-breaking seed.
func WithSeed(seed uint64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// DefaultOptions returns the defaults: no junction penalty, seed 0.
func DefaultOptions() Options {
	return Options{JunctionPenalty: 0, Seed: 0}
}
