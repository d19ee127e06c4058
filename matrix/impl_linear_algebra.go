// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation,
// including element-wise addition, subtraction, matrix multiplication,
// transpose, scalar scaling, the Hadamard product, matrix-vector products,
// trace and equality predicates. All functions perform strict fail-fast
// validation and return clear errors on shape violations.
//
// Purpose:
//   - Declare canonical linear-algebra kernels used across the package.
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - The elimination kernel (Determinant) lives in impl_determinant.go; it shares
//     the operation-tag registry and matrixErrorf defined here.
//   - All kernels must use central validators and return plain sentinels or wrapped via matrixErrorf at the facade.

package matrix

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// ZeroSum is the initial accumulator value for dot-products and similar reductions.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opScale       = "Scale"
	opHadamard    = "Hadamard"
	opMatVec      = "MatVec"
	opTrace       = "Trace"
	opDeterminant = "Determinant"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting across facades.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Implementation:
//   - Stage 1: Wrap using fmt.Errorf("%s: %w", tag, err) to enable errors.Is/As.
//
// Behavior highlights:
//   - Preserves the underlying sentinel/type for errors.Is/errors.As.
//   - Keeps human-readable operation prefixes (e.g., "Add|Sub", "Determinant").
//
// Inputs:
//   - tag: operation name/label (use package-level op* constants; no magic strings).
//   - err: underlying non-nil error to wrap.
//
// Returns:
//   - error: a non-nil error that formats as "<tag>: <underlying>" and still matches Is/As.
//
// Errors:
//   - None produced here; this function assumes err != nil. Caller responsibility.
//
// Determinism:
//   - Fully deterministic formatting; no data-dependent branches.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Wrapping nil with %w yields a non-nil error that wraps a nil cause; do not do this.
//   - Centralizes formatting so all kernels expose uniform error surfaces.
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
//   - Keep `tag` to the canonical constants to simplify log/search pipelines.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are not mutated.
// Internal helper for Add/Sub to share validation, allocation, and fast-path.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense - single flat loop 0..n-1.
//     Otherwise, fallback At/Set with fixed i→j order.
//
// Behavior highlights:
//   - Deterministic loop orders (flat in fast-path; i→j in fallback).
//   - Single result allocation; no inner-loop temps beyond scalars.
//   - Inputs remain immutable.
//
// Inputs:
//   - a, b: conformable matrices (non-nil; same rows/cols).
//   - sign: +1 for Add, −1 for Sub (callers must enforce).
//   - opTag: opAdd for Add, opSub for Sub (for error wrapping).
//
// Returns:
//   - Matrix[T]: newly allocated Dense with the result.
//   - error    : validation/allocation failures wrapped with opAdd/opSub.
//
// Errors:
//   - ErrNilMatrix     (from ValidateBinarySameShape when a or b is nil).
//   - ErrSizeMismatch  (from ValidateBinarySameShape when shapes differ).
//   - Allocation errors (from NewDense).
//
// Determinism:
//   - Fast-path: single flat slice walk 0..(r*c−1).
//   - Fallback: fixed nested loops i=0..r−1, j=0..c−1.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
//
// Notes:
//   - Keeping `sign` as a value of T avoids an extra branch inside the hot loop.
//   - The function is unexported; invariants are enforced by Add/Sub.
//
// AI-Hints:
//   - To trigger fast-path, pass concrete *Dense operands (avoid interface wrappers).
//   - If you need in-place add/sub, implement a dedicated kernel; do not modify inputs here.
//   - Prefer batching several add/sub calls at a higher level to amortize allocations.
func addSub[T Scalar](a, b Matrix[T], sign T, opTag string) (Matrix[T], error) {
	// Validate shapes match
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Allocate result Dense
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense[T]); okA {
		if db, okB := b.(*Dense[T]); okB {
			// direct element-wise addition on backing slices
			length := rows * cols
			for idx := 0; idx < length; idx++ { // deterministic 0..n-1
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int // loop iterators (deterministic order)
	var av, bv T // element temporaries
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			// Read a(i,j).
			av, err = a.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			// Read b(i,j).
			bv, err = b.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			// Write result(i,j).
			if err = res.Set(i, j, av+sign*bv); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	// Return result
	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Implementation:
//   - Stage 1: Validate both operands are non-nil and have identical shapes.
//   - Stage 2: If both are *Dense, run a single flat loop; otherwise fall back to i→j.
//
// Behavior highlights:
//   - Deterministic loop order; no hidden aliasing; one allocation for the result.
//
// Inputs:
//   - A: left matrix operand (any Matrix[T]).
//   - B: right matrix operand (any Matrix[T]) with the same shape as A.
//
// Returns:
//   - Matrix[T]: a new Dense with C[i,j] = A[i,j] + B[i,j].
//
// Errors:
//   - ErrNilMatrix (nil input), ErrSizeMismatch (shape mismatch).
//
// Determinism:
//   - Flat 0..n-1 for *Dense; i→j for the generic path.
//
// Complexity:
//   - Time O(r*c), Space O(r*c). The fast path is bandwidth-bound.
//
// Notes:
//   - Inputs are never mutated; result is always a freshly allocated Dense.
//
// AI-Hints:
//   - Prefer *Dense inputs for tight loops and contiguous data; hide concrete types
//     (e.g., via wrappers) to force the fallback path in tests or when needed.
func Add[T Scalar](a, b Matrix[T]) (Matrix[T], error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
// Implementation:
//   - Stage 1: Validate both operands are non-nil and have identical shapes.
//   - Stage 2: If both are *Dense, run a single flat loop; otherwise fall back to i→j.
//
// Behavior highlights:
//   - Deterministic loop order; no hidden aliasing; one allocation for the result.
//
// Inputs:
//   - A: left matrix operand (any Matrix[T]).
//   - B: right matrix operand (any Matrix[T]) with the same shape as A.
//
// Returns:
//   - Matrix[T]: a new Dense with C[i,j] = A[i,j] - B[i,j].
//
// Errors:
//   - ErrNilMatrix (nil input), ErrSizeMismatch (shape mismatch).
//
// Determinism:
//   - Flat 0..n-1 for *Dense; i→j for the generic path.
//
// Complexity:
//   - Time O(r*c), Space O(r*c). The fast path is bandwidth-bound.
//
// Notes:
//   - Inputs are never mutated; result is always a freshly allocated Dense.
//   - Sub(a, b) and Scale(Sub(b, a), -1) agree elementwise; antisymmetry holds exactly
//     for integer types and bit-for-bit for floats under the fixed loop order.
//
// AI-Hints:
//   - Prefer *Dense inputs for tight loops and contiguous data; hide concrete types
//     (e.g., via wrappers) to force the fallback path in tests or when needed.
func Sub[T Scalar](a, b Matrix[T]) (Matrix[T], error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides and skip zeros;
//     otherwise use i→j→k with a fixed order and zero-skip on A[i,k].
//
// Behavior highlights:
//   - Deterministic triple loops; no temporary tiles; one allocation for C.
//   - C[i,j] accumulates the dot product of row i of A with column j of B.
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - Matrix[T]: new Dense C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Determinism:
//   - Fixed loop orders (i→k→j for fast path, i→j→k for fallback).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c). Skipping zero A[i,k] avoids useless multiplies.
//
// Notes:
//   - For extremely sparse workloads consider dedicated sparse kernels outside this package.
//
// AI-Hints:
//   - If you can keep A as *Dense and cache-friendly by rows, you unlock the best path here.
func Mul[T Scalar](a, b Matrix[T]) (Matrix[T], error) {
	// Validate inputs via canonical validator
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Allocate result Dense
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense[T](aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int // loop iterators
		av, bv, current T
	)
	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense[T]); okA {
		if db, okB := b.(*Dense[T]); okB {
			// row-major multiplication into res.data
			// da.data layout: i*aCols + k
			// db.data layout: k*bCols + j
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue // skip zero for performance
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if av == 0 {
					continue // skip zero for performance
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv // accumulate product
			}
			if err = res.Set(i, j, current); err != nil {
				return nil, matrixErrorf(opMul, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	// Return result
	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Input is validated non-nil; the original matrix is never mutated.
// Fast-path copies *Dense data via flat indexing; fallback uses At/Set.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m). Allocate Dense(cols, rows).
//   - Stage 2: If m is *Dense, use contiguous slice mapping; else generic i→j loop.
//
// Behavior highlights:
//   - Deterministic copy order (dense: row blocks; generic: i→j).
//   - One allocation for the result; no temporaries proportional to size.
//
// Inputs:
//   - m: non-nil matrix (r×c).
//
// Returns:
//   - Matrix[T]: newly allocated Dense(c×r) with mᵀ.
//   - error    : validation/allocation failures wrapped with opTranspose.
//
// Errors:
//   - ErrNilMatrix      (from ValidateNotNil).
//   - Allocation errors (from NewDense).
//
// Determinism:
//   - Fixed traversal orders independent of data values.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the returned matrix.
//
// Notes:
//   - Transpose is a full materialization; if a lazy/view is needed, add a separate type.
//
// AI-Hints:
//   - Keep operands as *Dense to unlock the flat-copy fast-path.
//   - Avoid transposing repeatedly in tight loops; hoist and reuse the result where possible.
func Transpose[T Scalar](m Matrix[T]) (Matrix[T], error) {
	// Validate input non-nil
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Allocate result Dense with flipped dimensions
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense[T](cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Fast-path for Dense → Dense
	var i, j int // loop iterators
	if dm, ok := m.(*Dense[T]); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	// Fallback: generic interface loop
	var v T
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(j, i, v); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("Set(%d,%d): %w", j, i, err))
			}
		}
	}

	// Return result
	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// Input is validated non-nil; the original matrix is never mutated.
// Fast-path multiplies a *Dense backing slice in a single flat loop.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m). Allocate Dense(rows, cols).
//   - Stage 2: If *Dense, flat multiply; else generic i→j At/Set scaling.
//
// Behavior highlights:
//   - Deterministic traversal order (flat or i→j).
//   - Exactly one allocation for the result, no extra buffers.
//
// Inputs:
//   - m     : non-nil matrix (r×c).
//   - alpha : scalar multiplier of the element type.
//
// Returns:
//   - Matrix[T]: Dense with elements alpha*m[i,j].
//   - error    : validation/allocation failures wrapped with opScale.
//
// Errors:
//   - ErrNilMatrix      (from ValidateNotNil).
//   - Allocation errors (from NewDense).
//
// Determinism:
//   - Fixed loop orders independent of values.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - alpha = 0 yields an explicit zero matrix with the same shape.
//   - alpha = -1 negates; the Negate facade in api.go spells that out.
//
// AI-Hints:
//   - Use *Dense to hit the flat-slice path; keep data contiguous.
//   - Prefer composing `Scale(M, a)` then `Add/ Mul` only if reuse justifies the copy;
//     otherwise fold `alpha` into the consumer kernel to save work.
func Scale[T Scalar](m Matrix[T], alpha T) (Matrix[T], error) {
	// Validate input non-nil
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	// Allocate result Dense
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	// Fast-path for Dense → Dense
	if dm, ok := m.(*Dense[T]); ok {
		n := rows * cols
		for idx := 0; idx < n; idx++ {
			res.data[idx] = dm.data[idx] * alpha
		}

		return res, nil
	}

	// Fallback: generic interface loop
	var i, j int
	var v T
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opScale, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(i, j, v*alpha); err != nil {
				return nil, matrixErrorf(opScale, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	// Return result
	return res, nil
}

// Hadamard computes the elementwise product (a ⊙ b) with a fresh Dense result.
// Both inputs must be non-nil and have identical shapes; operands are not mutated.
// Uses a single flat loop for *Dense×*Dense and a fixed-order generic fallback.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate Dense(rows, cols).
//   - Stage 2: Fast-path if both *Dense (flat 0..n-1). Else At/Set with i→j loops.
//
// Behavior highlights:
//   - Bandwidth-bound kernel; contiguous data and flat traversal maximize throughput.
//   - Deterministic loop orders; no data-dependent branches in the hot path.
//
// Inputs:
//   - a, b: conformable matrices (same r×c).
//
// Returns:
//   - Matrix[T]: Dense with a[i,j]*b[i,j].
//   - error    : validation/allocation failures wrapped with opHadamard.
//
// Errors:
//   - ErrNilMatrix     (from ValidateBinarySameShape when a or b is nil).
//   - ErrSizeMismatch  (from ValidateBinarySameShape when shapes differ).
//   - Allocation errors (from NewDense).
//
// Determinism:
//   - Flat 0..(r*c−1) in fast-path; i→j in fallback; results stable across runs.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - Hadamard ≠ matrix multiplication; it is elementwise. Use Mul for A×B.
//
// AI-Hints:
//   - Favor *Dense inputs to avoid interface dispatch and enable tight loops.
//   - If chaining multiple elementwise ops, consider fusing into one pass to reduce memory traffic.
func Hadamard[T Scalar](a, b Matrix[T]) (Matrix[T], error) {
	// Validate both operands are non-nil and have identical shapes.
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	// Allocate the result Dense with the same shape.
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	// Fast-path: both operands are *Dense → operate on flat slices directly.
	if da, okA := a.(*Dense[T]); okA {
		if db, okB := b.(*Dense[T]); okB {
			var n, idx int                // predeclare loop variables
			n = rows * cols               // total number of elements
			for idx = 0; idx < n; idx++ { // fixed order ensures deterministic accumulation
				res.data[idx] = da.data[idx] * db.data[idx] // element-wise product
			}

			return res, nil // return immediately on fast-path
		}
	}

	// Fallback: generic interface loop using At/Set (bounds-safe, shape already validated).
	var i, j int // loop indices (predeclared)
	var av, bv T
	for i = 0; i < rows; i++ { // fixed i-outer loop
		for j = 0; j < cols; j++ { // fixed j-inner loop
			av, err = a.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opHadamard, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			bv, err = b.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opHadamard, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(i, j, av*bv); err != nil {
				return nil, matrixErrorf(opHadamard, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	// Return the computed result (Dense implements Matrix).
	return res, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Fast-path: *Dense performs one pass per row with flat indexing.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
//
// AI-Hints:
//   - Use *Dense to keep a single pass per row with flat indexing.
//   - Skipping zero x[j] helps when x is sparse-ish.
func MatVec[T Scalar](m Matrix[T], x []T) ([]T, error) {
	// Validate m is not nil.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	// Validate x is not nil and match with number of columns
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	// Prepare result vector y with length rows.
	rows, cols := m.Rows(), m.Cols()
	y := make([]T, rows) // allocate exactly rows outputs

	// Fast-path: *Dense allows flat, row-major dot-products.
	if d, ok := m.(*Dense[T]); ok {
		var i, j, base int // indices and row base offset
		var acc, xv T
		for i = 0; i < d.r; i++ { // iterate rows deterministically
			acc = ZeroSum             // reset accumulator per row
			base = i * d.c            // compute flat base offset for row i
			for j = 0; j < d.c; j++ { // iterate columns
				xv = x[j]    // read x(j) once per iteration
				if xv != 0 { // micro-optimization: skip zero multiplications
					acc += d.data[base+j] * xv // accumulate a(i,j)*x(j)
				}
			}
			y[i] = acc // store y(i)
		}

		return y, nil // return on fast-path
	}

	// Fallback: interface-based dot-products via At.
	var i, j int // loop indices
	var mv T     // temporary to hold m(i,j)
	var err error
	for i = 0; i < rows; i++ { // iterate rows
		y[i] = ZeroSum             // initialize y(i) to zero
		for j = 0; j < cols; j++ { // iterate columns
			mv, err = m.At(i, j) // read m(i,j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j] // accumulate
		}
	}

	return y, nil // return computed vector
}

// Trace returns the sum of main-diagonal elements of a square matrix.
//
// Contract: m non-nil and square.
// Fast-path: *Dense walks data[i*n+i] directly.
// Determinism: fixed i order.
// Complexity: Time O(n), Space O(1).
func Trace[T Scalar](m Matrix[T]) (T, error) {
	var zero T
	if err := ValidateSquareNonNil(m); err != nil {
		return zero, matrixErrorf(opTrace, err)
	}

	n := m.Rows()
	var acc T = ZeroSum
	// Fast-path: flat diagonal walk.
	if d, ok := m.(*Dense[T]); ok {
		var i int
		for i = 0; i < n; i++ {
			acc += d.data[i*n+i]
		}

		return acc, nil
	}

	// Fallback: interface reads along the diagonal.
	var i int
	var v T
	var err error
	for i = 0; i < n; i++ {
		v, err = m.At(i, i)
		if err != nil {
			return zero, matrixErrorf(opTrace, fmt.Errorf("At(%d,%d): %w", i, i, err))
		}
		acc += v
	}

	return acc, nil
}

// Equal reports exact structural equality of two matrices: identical shape and
// identical elements at every coordinate (operator ==).
//
// Contract: nil operands are allowed; two nils are equal, a nil and a non-nil are not.
// Equality is a predicate, never an error source: any failed interface read reports false.
// Determinism: fixed i→j order; short-circuits on the first difference.
// Complexity: Time O(r*c), Space O(1).
//
// AI-Hints:
//   - For float data with roundoff, use EqualApprox with a tolerance instead.
func Equal[T Scalar](a, b Matrix[T]) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}

	// Fast-path: both *Dense → flat buffer comparison.
	if da, okA := a.(*Dense[T]); okA {
		if db, okB := b.(*Dense[T]); okB {
			var idx int
			for idx = 0; idx < len(da.data); idx++ {
				if da.data[idx] != db.data[idx] {
					return false
				}
			}

			return true
		}
	}

	// Fallback: interface reads with fixed i→j order.
	var i, j int
	var av, bv T
	var err error
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			av, err = a.At(i, j)
			if err != nil {
				return false
			}
			bv, err = b.At(i, j)
			if err != nil {
				return false
			}
			if av != bv {
				return false
			}
		}
	}

	return true
}

// EqualApprox reports elementwise equality within an absolute tolerance eps:
// |a[i,j] - b[i,j]| ≤ eps at every coordinate, with identical shapes.
//
// The tolerance comes from the numeric policy (DefaultEpsilon) and can be
// overridden per call via WithEpsilon. Restricted to float element types;
// integer matrices compare exactly with Equal.
//
// Contract: nil handling mirrors Equal (two nils equal, mixed not).
// Determinism: fixed i→j order; short-circuits on the first violation.
// Complexity: Time O(r*c), Space O(1).
//
// AI-Hints:
//   - Pick eps to match the scale of accumulated roundoff (1e-9 suits unit-scale data).
func EqualApprox[T constraints.Float](a, b Matrix[T], opts ...Option) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	o := gatherOptions(opts...)

	// Fast-path: both *Dense → flat buffer comparison.
	if da, okA := a.(*Dense[T]); okA {
		if db, okB := b.(*Dense[T]); okB {
			var idx int
			for idx = 0; idx < len(da.data); idx++ {
				if math.Abs(float64(da.data[idx]-db.data[idx])) > o.eps {
					return false
				}
			}

			return true
		}
	}

	// Fallback: interface reads with fixed i→j order.
	var i, j int
	var av, bv T
	var err error
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			av, err = a.At(i, j)
			if err != nil {
				return false
			}
			bv, err = b.At(i, j)
			if err != nil {
				return false
			}
			if math.Abs(float64(av-bv)) > o.eps {
				return false
			}
		}
	}

	return true
}
