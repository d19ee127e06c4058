// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check them
// via errors.Is. No operation should panic on user-triggered error conditions.
// Panics are reserved for programmer errors in option constructors.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary; callers will still use errors.Is to match.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// non-positive, or that constructor input (nested rows, flat data) cannot
	// describe a legal shape. Constructors must validate before allocation.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers (At/Set, Row/Column, SetRow/SetColumn,
	// SwapRows/SwapCols) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrSizeMismatch indicates that a supplied replacement sequence has the
	// wrong length (SetRow/SetColumn, MatVec), or that two elementwise
	// operands (Add/Sub/Hadamard) disagree in shape.
	ErrSizeMismatch = errors.New("matrix: size mismatch")

	// ErrDimensionMismatch indicates incompatible inner dimensions between
	// multiplication operands (a.Cols != b.Rows).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNotSquare signals that a square matrix was required but the input
	// wasn't (Determinant, Diagonal, Trace, IdentityLike).
	ErrNotSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (ingestion, Set, Apply).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
