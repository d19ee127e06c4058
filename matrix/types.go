// SPDX-License-Identifier: MIT

// Package matrix: element constraints and the public Matrix interface.
// This file intentionally contains ONLY type-level contracts (Scalar, Matrix);
// errors and options live in dedicated files (errors.go, options.go) per the
// package conventions.
package matrix

import "golang.org/x/exp/constraints"

// Scalar constrains the element type of a matrix to the built-in signed
// numeric kinds: signed integers and floats. The operation set every Scalar
// admits (addition, subtraction, multiplication, the additive identity,
// the multiplicative identity T(1), sign negation, equality and zero test)
// is exactly what the arithmetic kernels need.
//
// Unsigned integers are excluded: row/column exchange tracking and
// subtraction both require negative values.
//
// Division appears only inside elimination kernels; those are constrained to
// constraints.Float separately (see Determinant), so integer matrices pay no
// division tax and lose no precision elsewhere.
type Scalar interface {
	constraints.Signed | constraints.Float
}

// Matrix represents a two-dimensional mutable array of Scalar values.
// Each method enforces bounds checking and returns sentinel errors on misuse.
// Users can implement this interface to provide custom storage layouts;
// kernels fast-path on the concrete *Dense and fall back to At/Set here.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix[T Scalar] interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (T, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v T) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix[T]
}
