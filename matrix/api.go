// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication: each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock fast-paths in kernels (flat-slice loops).
//   - Use NewIdentity/NewZeros to build matrices with explicit shape and neutral elements.
//   - Det mirrors Determinant for callers used to the short spelling.

package matrix

import "golang.org/x/exp/constraints"

// ---------- Constructors & Utilities (O(1) alloc + O(rc) zeroing by runtime) ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
// Deterministic: single allocation; no hidden work.
// Complexity: O(r*c) zero-init by the runtime.
//
// Note: Returns (*Dense, error) to surface ErrInvalidDimensions.
func NewZeros[T Scalar](rows, cols int) (*Dense[T], error) {
	// Delegate directly to the strict constructor (single allocation).
	return NewDense[T](rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
//
// AI-Hints: Use as a neutral element for products and as a determinant anchor (det = 1).
func NewIdentity[T Scalar](n int) (*Dense[T], error) {
	// Allocate an n×n zero matrix via the constructor.
	I, err := NewDense[T](n, n) // O(1) alloc + O(n^2) zeroing
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	// Set the diagonal deterministically in a single loop.
	for i := 0; i < n; i++ { // fixed i order guarantees reproducibility
		_ = I.Set(i, i, 1) // Set is bounds-safe; error is not expected after shape validation
	}

	// Return the identity matrix.
	return I, nil
}

// CloneMatrix returns a structural clone of m (same type if m is *Dense).
// Thin wrapper over Matrix.Clone for API discoverability.
// Complexity: O(r*c) copy for dense; implementation-defined otherwise.
func CloneMatrix[T Scalar](m Matrix[T]) Matrix[T] {
	// Delegate to polymorphic clone on the concrete implementation.
	return m.Clone()
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Complexity: O(1) alloc + O(rc) zeroing. Handy to preallocate staging buffers.
//
// AI-Hints: Useful for staging buffers or accumulating into fresh containers.
func ZerosLike[T Scalar](m Matrix[T]) (*Dense[T], error) {
	// Read shape once and call NewDense with the same dimensions.
	return NewDense[T](m.Rows(), m.Cols()) // errors (if any) bubble up
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
// Complexity: O(n^2). Validates square via central validator.
//
// AI-Hints: Handy as the neutral element matching an existing operand's shape.
func IdentityLike[T Scalar](m Matrix[T]) (*Dense[T], error) {
	// Ensure the input is square using the centralized validator.
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err) // wrap with call-site tag
	}

	// Construct the identity of matching dimension.
	return NewIdentity[T](m.Rows()) // returns (*Dense, error)
}

// ---------- Linear Algebra (facades map 1:1 to kernels; O(rc) unless noted) ----------

// Sum is an alias for Add: element-wise a + b.
// Complexity: O(rc).
//
// AI-Hints: Prefer passing *Dense operands for single flat-loop fast-path.
func Sum[T Scalar](a, b Matrix[T]) (Matrix[T], error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
// Complexity: O(rc).
func Diff[T Scalar](a, b Matrix[T]) (Matrix[T], error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
// Complexity: O(r*n*c).
//
// AI-Hints: Prefer Dense to unlock cache-friendly fast path.
func Product[T Scalar](a, b Matrix[T]) (Matrix[T], error) { return Mul(a, b) }

// HadamardProd is an alias for Hadamard: element-wise product a ⊙ b.
// Complexity: O(rc).
func HadamardProd[T Scalar](a, b Matrix[T]) (Matrix[T], error) { return Hadamard(a, b) }

// T is an alias for Transpose: returns mᵀ.
// Complexity: O(rc).
//
// AI-Hints: Good for small helpers and chaining.
func T[E Scalar](m Matrix[E]) (Matrix[E], error) { return Transpose(m) }

// ScaleBy is an alias for Scale: α*m.
// Complexity: O(rc).
func ScaleBy[T Scalar](m Matrix[T], alpha T) (Matrix[T], error) { return Scale(m, alpha) }

// MatVecMul is an alias for MatVec: y = m·x.
// Complexity: O(rc).
//
// AI-Hints: For repeated calls with same shape, reuse x/y slices outside.
func MatVecMul[T Scalar](m Matrix[T], x []T) ([]T, error) { return MatVec(m, x) }

// Det is an alias for Determinant: Gaussian elimination with row/column pivoting.
// Complexity: O(n^3).
func Det[T constraints.Float](m Matrix[T]) (T, error) { return Determinant(m) }

// ---------- Convenience facades (compositions only; no loop duplication) ----------

// Negate returns -m, an alias for Scale(m, -1).
// Complexity: O(rc).
//
// AI-Hints: Sub(a, b) equals Add(a, Negate(b)); handy in antisymmetry checks.
func Negate[T Scalar](m Matrix[T]) (Matrix[T], error) { return Scale[T](m, -1) }

// Symmetrize returns (m + mᵀ)/2. Deterministic composition: Transpose → Add → Scale.
// Restricted to float element types (the half factor is not representable in integers).
// Complexity: O(rc).
//
// AI-Hints: Useful in spectral methods (PCA, Laplacians) to repair asymmetry drift.
func Symmetrize[T constraints.Float](m Matrix[T]) (Matrix[T], error) {
	// Transpose first; kernel validates non-nil input.
	mt, err := Transpose(m) // O(rc)
	if err != nil {
		return nil, matrixErrorf("Symmetrize", err) // wrap with context
	}
	// Add original and transpose; shapes are guaranteed identical.
	sum, err := Add(m, mt) // O(rc)
	if err != nil {
		return nil, matrixErrorf("Symmetrize", err) // wrap
	}

	// Scale by 0.5 to complete the symmetrization.
	return Scale[T](sum, 0.5) // O(rc)
}

// RowSums returns vector r where r[i] = sum_j m[i,j].
// Implementation: MatVec(m, ones(cols)). No custom loops.
// Complexity: O(rc).
//
// AI-Hints: Used by stochastic normalization, degree-like features, quick invariants.
func RowSums[T Scalar](m Matrix[T]) ([]T, error) {
	// Build an all-ones vector of length equal to the number of columns.
	cols := m.Cols()            // O(1) read of dimension
	ones := make([]T, cols)     // allocate the vector once
	for j := 0; j < cols; j++ { // deterministic fill
		ones[j] = 1 // neutral element for summation
	}

	// Multiply m by the ones vector to get per-row sums.
	return MatVec(m, ones) // O(rc), kernel validates lengths
}

// ColSums returns vector c where c[j] = sum_i m[i,j].
// Implementation: T(m) then MatVec with ones(rows).
// Complexity: O(rc).
//
// AI-Hints: Useful for indegree-like stats, column-normalization, quick invariants.
func ColSums[T Scalar](m Matrix[T]) ([]T, error) {
	// Transpose m first.
	mt, err := Transpose(m) // O(rc)
	if err != nil {
		return nil, matrixErrorf("ColSums", err) // wrap with context
	}
	// Build an all-ones vector of length equal to the (transposed) number of columns,
	// which equals the original number of rows.
	rows := mt.Cols()           // == m.Rows()
	ones := make([]T, rows)     // allocate the vector once
	for i := 0; i < rows; i++ { // deterministic fill
		ones[i] = 1 // neutral element for summation
	}

	// Multiply to get per-column sums of the original matrix.
	return MatVec(mt, ones) // O(rc)
}
