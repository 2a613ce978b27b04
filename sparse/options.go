// SPDX-License-Identifier: MIT

// Package sparse: functional configuration for Matrix construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies them in order.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package sparse

import "log/slog"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultBTreeDegree is the branching degree of the ordered coordinate map
	// backing the uncompressed state.
	DefaultBTreeDegree = 32

	// minBTreeDegree is the smallest degree the B-tree accepts.
	minBTreeDegree = 2
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicLoggerNil     = "sparse: WithLogger: logger must be non-nil"
	panicDegreeInvalid = "sparse: WithBTreeDegree: degree must be >= 2"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	logger *slog.Logger // state transitions are logged at Debug
	degree int          // B-tree degree of the uncompressed map
}

// WithLogger routes state-transition logs (compress, uncompress, resize,
// batch merge) to l. Records are emitted at slog.LevelDebug.
// Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// WithBTreeDegree sets the branching degree of the uncompressed map.
// Larger degrees trade insertion cost for shallower trees.
// Panics if degree < 2.
func WithBTreeDegree(degree int) Option {
	if degree < minBTreeDegree {
		panic(panicDegreeInvalid)
	}

	return func(o *Options) { o.degree = degree }
}

// gatherOptions applies user setters over the defaults, last writer wins.
// Complexity: O(len(user)).
func gatherOptions(user ...Option) Options {
	o := Options{
		logger: slog.New(slog.DiscardHandler),
		degree: DefaultBTreeDegree,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
