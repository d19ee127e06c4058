// SPDX-License-Identifier: MIT

// Package matrix - determinant via Gaussian elimination with pivoting.
//
// Purpose:
//   - Reduce a private working copy to upper-triangular form with row-then-column pivoting.
//   - Track the permutation sign across exchanges so the diagonal product is exact in sign.
//   - Short-circuit singular inputs to a zero result (success, not an error).
//
// AI-Hints:
//   - Pass *Dense to skip the interface copy-in; the elimination itself always runs flat.
//   - Singularity is detected structurally (no pivot found), not via a tolerance.
//
// Complexity quicksheet:
//   - Determinant: Time O(n^3), Space O(n^2) for the working copy.

package matrix

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// ZeroPivot is the sentinel for detecting a zero pivot during elimination.
const ZeroPivot = 0.0

// cloneToDense materializes an independent *Dense working copy of m.
// MAIN DESCRIPTION:
//   - Elimination kernels mutate their working storage; this helper guarantees a
//     flat row-major buffer regardless of the input's dynamic type.
//
// Implementation:
//   - Stage 1: if m is *Dense, deep-copy its buffer directly.
//   - Stage 2: otherwise allocate a fresh Dense and gather elements via At,
//     writing into the buffer directly (the source values are taken as-is).
//
// Inputs:
//   - m: non-nil matrix (validated by the caller).
//
// Returns:
//   - *Dense[T]: independent copy; mutations never reach m.
//
// Errors:
//   - Propagated At failures from foreign implementations, wrapped with coordinates.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func cloneToDense[T Scalar](m Matrix[T]) (*Dense[T], error) {
	if d, ok := m.(*Dense[T]); ok {
		cp := make([]T, len(d.data))
		copy(cp, d.data)

		return &Dense[T]{
			r:              d.r,
			c:              d.c,
			data:           cp,
			validateNaNInf: d.validateNaNInf,
		}, nil
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, err
	}
	var i, j, base int
	var v T
	for i = 0; i < rows; i++ {
		base = i * cols
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			res.data[base+j] = v // direct write; source values are taken as-is
		}
	}

	return res, nil
}

// Determinant computes det(m) by Gaussian elimination with row-then-column pivoting.
// MAIN DESCRIPTION:
//   - Reduce a working copy to upper-triangular form; the determinant is the
//     tracked permutation sign times the product of the diagonal.
//
// Implementation:
//   - Stage 1: validate m (non-nil, square); materialize a *Dense working copy.
//   - Stage 2: for each pivot index i (top-left to bottom-right):
//     a. read pivot = work[i][i];
//     b. if zero, scan rows i+1..n-1 in increasing order for the first row with a
//     nonzero entry in column i; exchange it with row i and negate the sign;
//     c. if still zero, scan columns i+1..n-1 the same way along row i; exchange
//     with column i and negate the sign;
//     d. if still zero the matrix is singular: return 0 immediately;
//     e. otherwise eliminate below: for each row x > i, factor = work[x][i]/pivot,
//     row_x -= factor * row_i, then force the sub-diagonal slot to exact zero.
//   - Stage 3: multiply the diagonal entries into the signed accumulator.
//
// Behavior highlights:
//   - The input is never mutated; all arithmetic happens on the working copy.
//   - Row search always precedes column search, and both take the lowest-indexed
//     candidate, so results are reproducible bit-for-bit across runs.
//   - A singular matrix is a normal outcome with value 0, not an error.
//   - Each exchange flips the sign exactly once; i==x never occurs (scans start at i+1).
//
// Inputs:
//   - m: non-nil square matrix (n×n).
//
// Returns:
//   - T: det(m); exact sign, magnitude subject to float rounding.
//   - error: validation failures wrapped with opDeterminant.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrNotSquare (r != c).
//
// Determinism:
//   - Fixed pivot scan order and fixed elimination order i→x→j.
//
// Complexity:
//   - Time O(n^3), Space O(n^2) for the working copy.
//
// Notes:
//   - Restricted to float element types: elimination divides by the pivot, and
//     truncating integer division would corrupt the result. Integer matrices
//     convert via CastDense before calling (det of an int matrix is an integer,
//     recoverable by rounding for magnitudes within float64's exact range).
//   - Pivot tests compare against exact zero. Near-zero pivots are used as-is;
//     conditioning concerns belong upstream.
//
// AI-Hints:
//   - det(I)=1, det(diag)=∏diag, one row/col exchange flips the sign: cheap sanity anchors.
//   - For repeated determinants of slightly modified matrices, recompute; there is no factor cache.
func Determinant[T constraints.Float](m Matrix[T]) (T, error) {
	var zero T
	// Validate input non-nil and square.
	if err := ValidateSquareNonNil(m); err != nil {
		return zero, matrixErrorf(opDeterminant, err)
	}

	// Private working copy: the caller's matrix stays untouched.
	work, err := cloneToDense(m)
	if err != nil {
		return zero, matrixErrorf(opDeterminant, err)
	}

	n := work.r
	var (
		i, j, x  int // pivot index, elimination column, scan/elimination row
		sign     T   // running permutation sign: +1 or -1
		pivot    T   // current pivot value work[i][i]
		factor   T   // per-row elimination multiplier
		pivotRow []T // cached slice of row i (valid after all exchanges)
		row      []T // row being eliminated
	)
	sign = 1

	for i = 0; i < n; i++ {
		pivot = work.data[i*n+i]

		// Row exchange: first row below i with a nonzero entry in column i.
		if pivot == ZeroPivot {
			for x = i + 1; x < n; x++ {
				if work.data[x*n+i] != ZeroPivot {
					_ = work.SwapRows(i, x) // indices verified by the loop bounds
					sign = -sign
					pivot = work.data[i*n+i]

					break
				}
			}
		}

		// Column exchange: the fallback axis, scanned only if rows yielded nothing.
		if pivot == ZeroPivot {
			for x = i + 1; x < n; x++ {
				if work.data[i*n+x] != ZeroPivot {
					_ = work.SwapCols(i, x) // indices verified by the loop bounds
					sign = -sign
					pivot = work.data[i*n+i]

					break
				}
			}
		}

		// No pivot on either axis: singular, determinant is exactly zero.
		if pivot == ZeroPivot {
			return zero, nil
		}

		// Eliminate below the pivot. Cache row i after the exchanges so every
		// subtraction reads the settled pivot row.
		pivotRow = work.data[i*n : i*n+n]
		for x = i + 1; x < n; x++ {
			row = work.data[x*n : x*n+n]
			factor = row[i] / pivot
			if factor == ZeroPivot {
				continue // row already eliminated in this column
			}
			for j = i + 1; j < n; j++ {
				row[j] -= factor * pivotRow[j]
			}
			row[i] = zero // exact zero below the diagonal, no residual roundoff
		}
	}

	// Upper-triangular now: determinant = sign * product of the diagonal.
	det := sign
	for i = 0; i < n; i++ {
		det *= work.data[i*n+i]
	}

	return det, nil
}
