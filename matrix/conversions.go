// SPDX-License-Identifier: MIT

// Package matrix - converters between Dense and external representations.
//
// Purpose:
//   - Bridge to gonum (gonum.org/v1/gonum/mat) for callers that mix this
//     package with the wider gonum ecosystem.
//   - Convert between element types (CastDense) without exposing the buffer.
//
// Policy:
//   - Always copy, never alias: a converted matrix owns its storage, and
//     mutating it never reaches the source (both directions).
//   - gonum's mat.Dense is float64-only; integer matrices convert through
//     float64 on export (exact for magnitudes within 2^53).
//
// AI-Hints:
//   - ToGonum + mat.Det is a convenient cross-check oracle for Determinant.
//   - FromGonum honors the numeric policy: NaN/±Inf in the source are rejected
//     unless WithNoValidateNaNInf is passed.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToGonum exports m as a gonum *mat.Dense (row-major, freshly allocated).
// MAIN DESCRIPTION:
//   - Copy every element into a new float64 backing slice and hand it to
//     mat.NewDense; the result shares nothing with m.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m).
//   - Stage 2: fast path for *Dense: convert the flat buffer in one loop.
//   - Stage 3: fallback: gather via At with fixed i→j order.
//
// Inputs:
//   - m: non-nil matrix of any Scalar element type.
//
// Returns:
//   - *mat.Dense: independent gonum matrix with float64(m[i,j]) values.
//
// Errors:
//   - ErrNilMatrix (nil input); propagated At failures with coordinates.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - Integer values beyond 2^53 lose precision in the float64 conversion.
func ToGonum[T Scalar](m Matrix[T]) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ToGonum", err)
	}
	rows, cols := m.Rows(), m.Cols()
	buf := make([]float64, rows*cols) // mat.NewDense retains this slice; it is ours alone

	// Fast-path: flat conversion from the Dense buffer.
	if d, ok := m.(*Dense[T]); ok {
		var idx int
		for idx = 0; idx < len(d.data); idx++ {
			buf[idx] = float64(d.data[idx])
		}

		return mat.NewDense(rows, cols, buf), nil
	}

	// Fallback: interface reads with fixed i→j order.
	var i, j int
	var v T
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf("ToGonum", fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			buf[i*cols+j] = float64(v)
		}
	}

	return mat.NewDense(rows, cols, buf), nil
}

// FromGonum imports a gonum matrix as a *Dense[float64] (deep copy).
// MAIN DESCRIPTION:
//   - Read src through the mat.Matrix interface and copy into fresh storage.
//
// Implementation:
//   - Stage 1: reject nil src and empty shapes.
//   - Stage 2: allocate via NewDense (options resolve the numeric policy).
//   - Stage 3: copy with fixed i→j order; reject NaN/±Inf under policy.
//
// Inputs:
//   - src: any gonum mat.Matrix (mat.Dense, views, products, ...).
//   - opts: optional numeric policy overrides (WithNoValidateNaNInf for
//     sources that legitimately carry sentinel infinities).
//
// Returns:
//   - *Dense[float64]: independent copy of src.
//
// Errors:
//   - ErrNilMatrix (nil src); ErrInvalidDimensions (empty shape);
//     ErrNaNInf (non-finite element under policy, with coordinates).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromGonum(src mat.Matrix, opts ...Option) (*Dense[float64], error) {
	if src == nil {
		return nil, matrixErrorf("FromGonum", ErrNilMatrix)
	}
	rows, cols := src.Dims()
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf("FromGonum", ErrInvalidDimensions)
	}
	res, err := NewDense[float64](rows, cols, opts...)
	if err != nil {
		return nil, matrixErrorf("FromGonum", err)
	}

	var i, j, base int
	var v float64
	for i = 0; i < rows; i++ {
		base = i * cols
		for j = 0; j < cols; j++ {
			v = src.At(i, j)
			if res.validateNaNInf && isNonFinite(v) {
				return nil, matrixErrorf("FromGonum", fmt.Errorf("(%d,%d): %w", i, j, ErrNaNInf))
			}
			res.data[base+j] = v // direct write; policy already enforced above
		}
	}

	return res, nil
}

// CastDense converts element types: Dense[T] values become Dense[U] values.
// MAIN DESCRIPTION:
//   - Elementwise Go conversion U(v) into a freshly allocated Dense[U].
//
// Implementation:
//   - Stage 1: ValidateNotNil(m); allocate NewDense[U] (options resolve policy).
//   - Stage 2: under policy, reject non-finite source values (their integer
//     conversion is not well defined); then convert with fixed order.
//
// Behavior highlights:
//   - Float→integer conversion truncates toward zero (Go conversion semantics).
//   - Integer→float conversion is exact within the float's integer range.
//
// Inputs:
//   - m: non-nil source matrix.
//   - opts: numeric policy overrides for the result.
//
// Returns:
//   - *Dense[U]: independent converted copy.
//
// Errors:
//   - ErrNilMatrix (nil input); ErrNaNInf (non-finite source under policy);
//     propagated At failures with coordinates.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - CastDense[int, float64] feeds integer matrices into Determinant;
//     round the result back when the true determinant is integral.
func CastDense[T, U Scalar](m Matrix[T], opts ...Option) (*Dense[U], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("CastDense", err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense[U](rows, cols, opts...)
	if err != nil {
		return nil, matrixErrorf("CastDense", err)
	}

	// Fast-path: flat conversion from the Dense buffer.
	if d, ok := m.(*Dense[T]); ok {
		var idx int
		for idx = 0; idx < len(d.data); idx++ {
			if res.validateNaNInf && isNonFinite(d.data[idx]) {
				return nil, matrixErrorf("CastDense",
					fmt.Errorf("(%d,%d): %w", idx/cols, idx%cols, ErrNaNInf))
			}
			res.data[idx] = U(d.data[idx])
		}

		return res, nil
	}

	// Fallback: interface reads with fixed i→j order.
	var i, j, base int
	var v T
	for i = 0; i < rows; i++ {
		base = i * cols
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf("CastDense", fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if res.validateNaNInf && isNonFinite(v) {
				return nil, matrixErrorf("CastDense", fmt.Errorf("(%d,%d): %w", i, j, ErrNaNInf))
			}
			res.data[base+j] = U(v)
		}
	}

	return res, nil
}
