// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for Private Helpers and Options Snapshot
//
// Purpose:
//   - Expose selected UNEXPORTED helpers and an internal options snapshot to matrix_test ONLY.
//   - Enable white-box verification without widening the production API.
//
// Build Policy:
//   - The `_test.go` suffix keeps this file out of production builds; it is
//     compiled only into the test binary. Because it lives in package matrix
//     (not matrix_test), it can reach private symbols and re-export them.
//
// Provided Surface:
//   - PanicEpsilonInvalid_TestOnly: stable panic message for option guards.
//   - OptionsSnapshot + DefaultOptionsSnapshot_TestOnly / GatherOptionsSnapshot_TestOnly:
//     read-only view of internal Options for black-box default/override assertions.
//   - CloneToDense_TestOnly / IsNonFinite_TestOnly: thin pass-throughs to private helpers.
//
// Behavior & Determinism:
//   - No allocations beyond what the wrapped functions do.
//   - Deterministic wrappers; no side effects.
//
// Risks & Maintenance:
//   - Keep OptionsSnapshot in sync with internal Options fields. If Options changes,
//     update snapshotOf(...) accordingly (tests will catch drift).
//
// AI-Hints:
//   - Prefer keeping ALL test-only bridges co-located here to avoid clutter across files.
//   - If a private helper changes signature, mirror the change here once, not across many tests.

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicEpsilonInvalid_TestOnly = panicEpsilonInvalid
)

// --- private helper bridges ---------------------------------------------------

// CloneToDense_TestOnly forwards to the private cloneToDense helper.
// Implementation:
//   - Stage 1: Call the private function directly; return its outputs verbatim.
//
// Behavior highlights:
//   - No production API change; test-only surface.
func CloneToDense_TestOnly[T Scalar](m Matrix[T]) (*Dense[T], error) {
	return cloneToDense(m)
}

// IsNonFinite_TestOnly forwards to isNonFinite.
func IsNonFinite_TestOnly[T Scalar](v T) bool {
	return isNonFinite(v)
}

// --- options snapshot bridge --------------------------------------------------

// OptionsSnapshot is a stable, test-facing copy of internal Options fields.
// Purpose:
//   - Allow matrix_test to assert defaults and "last writer wins" semantics
//     without accessing unexported fields directly.
//
// Determinism:
//   - Pure struct copy; no side effects.
type OptionsSnapshot struct {
	Eps            float64
	ValidateNaNInf bool
}

// DefaultOptionsSnapshot_TestOnly returns a snapshot of the documented defaults.
// Implementation:
//   - Stage 1: o := defaultOptions()
//   - Stage 2: snapshotOf(o)
func DefaultOptionsSnapshot_TestOnly() OptionsSnapshot {
	o := defaultOptions()

	return snapshotOf(o)
}

// GatherOptionsSnapshot_TestOnly returns a snapshot after internal derivation.
// Implementation:
//   - Stage 1: o := gatherOptions(opts...) // internal constructor
//   - Stage 2: snapshotOf(o)
//
// Notes:
//   - Keep this wrapper in sync if the internal derivation pipeline changes.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return snapshotOf(o)
}

// snapshotOf copies internal fields to a public struct. Keep in sync with Options layout.
// Behavior highlights:
//   - No allocations besides the snapshot value itself.
func snapshotOf(o Options) OptionsSnapshot {
	return OptionsSnapshot{
		Eps:            o.eps,
		ValidateNaNInf: o.validateNaNInf,
	}
}
