// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - validateNaNInf controls whether Set/Apply/ingestion rejects NaN/±Inf.
//     The guard applies to floating element types only; integer matrices can
//     never hold a non-finite value, so the flag is a no-op there.
//   - eps is the absolute tolerance consumed by EqualApprox. Elimination
//     kernels (Determinant) compare pivots against exact zero and never read
//     eps: a swap/short-circuit decision must not depend on a tunable.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

// Numeric policy.
const (
	// DefaultEpsilon defines the non-negative tolerance used by approximate
	// comparison (EqualApprox).
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are intentionally unexported to prevent external mutation; public
// entry points accept `...Option` and internally resolve them via gatherOptions.
type Options struct {
	// numeric policy
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
}

// ---------- Constructors (WithX) ----------

// WithEpsilon sets the numeric tolerance eps used by approximate comparison.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Behavior highlights:
//   - Strict validation in constructor; panics on nonsensical values.
//
// Inputs:
//   - eps: non-negative finite tolerance.
//
// Returns:
//   - Option: functional setter.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Applies to EqualApprox only. Larger eps relaxes equality checks; use
//     judiciously. Determinant pivot tests stay exact regardless of eps.
//
// AI-Hints:
//   - Prefer small positive eps (e.g., 1e-9) for double-precision data or unless dealing with noisy data.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	// Assign validated epsilon
	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables strict finite-value validation.
// Implementation:
//   - Stage 1: set validateNaNInf=true.
//
// Behavior highlights:
//   - When enabled, NaN and ±Inf are rejected at Set/Apply for float elements.
//
// Returns:
//   - Option: functional setter.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Affects newly created matrices via constructors; existing matrices keep their policy.
//   - This is the default; use WithNoValidateNaNInf to relax.
//
// AI-Hints:
//   - Keep this enabled in data-clean pipelines; disable only when ingesting
//     external data with known ±Inf placeholders and sanitizing later or in controlled experiments.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (use with care).
// Implementation:
//   - Stage 1: set validateNaNInf=false.
//
// Behavior highlights:
//   - Allows ±Inf/NaN to pass through on newly created matrices.
//
// Returns:
//   - Option: functional setter.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - This flag propagates only on creation; existing matrices are unaffected.
//
// AI-Hints:
//   - Pair with FromGonum when the source may carry sentinel infinities.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// --------------------------- Option Resolution ---------------------------

// defaultOptions returns the documented defaults (single source of truth).
// Implementation:
//   - Stage 1: fill fields from Default* constants.
//
// Behavior highlights:
//   - Ensures defaults and comments never diverge.
//
// Returns:
//   - Options: defaults snapshot.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Keep this in sync with constants above.
func defaultOptions() Options {
	o := Options{
		// numeric policy
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
	}

	finalizeOptions(&o)

	return o
}

// gatherOptions applies user-provided Option setters on top of defaults and
// finalizes derived invariants. This is the canonical internal entry in
// api/impl layers.
// Implementation:
//   - Stage 1: start from defaultOptions().
//   - Stage 2: apply setters in order (last-writer-wins).
//   - Stage 3: finalize invariants.
//
// Behavior highlights:
//   - Derivations in one place prevent drift across call sites.
//
// Inputs:
//   - user: sequence of Option setters.
//
// Returns:
//   - Options: fully resolved configuration.
//
// Determinism:
//   - Stable for a given sequence of setters.
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(user).
//
// AI-Hints:
//   - Prefer gatherOptions(...) over ad-hoc defaulting in callers.
func gatherOptions(user ...Option) Options {
	o := Options{
		// numeric policy
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	finalizeOptions(&o)

	return o
}

// isNonFinite reports whether v converts to a NaN or ±Inf float64.
// Integer element types can never be non-finite, so the check degenerates
// to a constant false for them.
func isNonFinite[T Scalar](v T) bool {
	f := float64(v)

	return math.IsNaN(f) || math.IsInf(f, 0)
}

// finalizeOptions enforces derived invariants in exactly one place.
// Implementation:
//   - Stage 1: normalize eps to a finite, non-negative value.
//
// Behavior highlights:
//   - Centralized invariant enforcement prevents drift across call sites.
//
// Inputs:
//   - o: pointer to Options to normalize.
//
// Returns:
//   - None (mutates *o).
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - This function MUST be called after applying all Option setters.
func finalizeOptions(o *Options) {
	// eps stays finite and non-negative; WithEpsilon already panics on bad
	// input, so this only matters for future setters that skip validation.
	if isNonFinite(o.eps) || o.eps < 0 {
		o.eps = DefaultEpsilon
	}
}
