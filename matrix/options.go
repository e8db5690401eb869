// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Dense instances. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Options are captured by the Dense at construction time. Clone and the
//     lazily allocated scratch matrices inherit them; there is no way to change
//     the policy of an existing matrix.
//   - The pivot tolerance is shared by Gauss–Jordan pivot search and by the
//     determinant check of the closed-form 3×3 and 4×4 inverses.
package matrix

import (
	"io"
	"log/slog"
	"math"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPivotTolerance is the magnitude below which a pivot is treated
	// as zero. Closed forms compare |det| / ∏‖row‖ against the larger of this
	// and a fixed floor.
	DefaultPivotTolerance float32 = 1e-6

	// DefaultClosedFormInverse enables the 3×3 and 4×4 cofactor inverses.
	// Gauss–Jordan elimination remains the fallback for every size.
	//
	// The closed form judges by the scale-relative determinant, elimination
	// by absolute pivots, so badly scaled input can differ between them:
	// diag(1e-7, 1e4, 1e4) inverts here but is ErrSingular under
	// WithGeneralInverse.
	DefaultClosedFormInverse = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPivotToleranceInvalid = "matrix: WithPivotTolerance: tolerance must be finite and > 0"
	panicLoggerNil             = "matrix: WithLogger: logger must not be nil"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	tol        float32      // > 0; DefaultPivotTolerance
	closedForm bool         // DefaultClosedFormInverse
	logger     *slog.Logger // never nil after gatherOptions
}

// ---------- Constructors (WithX) ----------

// WithPivotTolerance sets the near-zero threshold used by inversion.
// Implementation:
//   - Stage 1: validate eps is finite and > 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Behavior highlights:
//   - A pivot p with |p| < eps is not usable; elimination searches the rows
//     below for a replacement and fails with ErrSingular if none exists.
//   - Closed-form inverses with |det| < eps defer to elimination.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithPivotTolerance(eps float32) Option {
	f := float64(eps)
	if math.IsNaN(f) || math.IsInf(f, 0) || eps <= 0 {
		panic(panicPivotToleranceInvalid)
	}

	return func(o *Options) { o.tol = eps }
}

// WithClosedFormInverse enables the cofactor fast paths for 3×3 and 4×4 inverses.
// This is the default.
func WithClosedFormInverse() Option {
	return func(o *Options) { o.closedForm = true }
}

// WithGeneralInverse forces Gauss–Jordan elimination for every size.
//
// AI-Hints:
//   - Useful to compare results of the two paths in tests, or when bit-level
//     reproducibility across sizes matters more than speed.
func WithGeneralInverse() Option {
	return func(o *Options) { o.closedForm = false }
}

// WithLogger routes diagnostics (pivot exchanges at Debug, singular inputs at
// Warn) to l. The default logger discards everything.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// noopLogger discards all records.
func noopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // unreachable level
	}))
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		tol:        DefaultPivotTolerance,
		closedForm: DefaultClosedFormInverse,
		logger:     noopLogger(),
	}
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Implementation:
//   - Stage 1: start from defaultOptions().
//   - Stage 2: apply setters in order (last-writer-wins).
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
