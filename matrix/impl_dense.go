// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: accessors return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Offer whole-row/whole-column reads and writes, in-place exchanges and a readable dump.
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// AI-Hints:
//   - Prefer fast-paths on *Dense in hot algebra (see impl_linear_algebra.go): operate on the flat data slice directly.
//   - Row/Column/Diagonal return fresh copies; mutate through SetRow/SetColumn, never through the returned slice.
//   - SwapRows/SwapCols permute in place; use them for pivoting instead of rebuilding matrices.
//   - DefaultValidateNaNInf is on; insert only finite values unless you explicitly disable upstream.
//
// Complexity quicksheet:
//   - NewDense/NewFilled: O(r*c); At/Set: O(1); Row/Column/SwapRows/SwapCols: O(n); Clone: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt        = "At"        // method tag used in error wrappers
	ctxSet       = "Set"       // method tag used in error wrappers
	ctxApply     = "Apply"     // method tag used in error wrappers
	ctxRow       = "Row"       // whole-row read
	ctxColumn    = "Column"    // whole-column read
	ctxDiagonal  = "Diagonal"  // main-diagonal read
	ctxSetRow    = "SetRow"    // whole-row write
	ctxSetColumn = "SetColumn" // whole-column write
	ctxSwapRows  = "SwapRows"  // row exchange
	ctxSwapCols  = "SwapCols"  // column exchange
	ctxFill      = "Fill"      // whole-matrix write
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "{ "
	_fmtRowClose = " }\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// MAIN DESCRIPTION:
//   - Attach method context and coordinates to a sentinel error for diagnostics.
//
// Implementation:
//   - Stage 1: format "Dense.<method>(row,col): %w".
//   - Stage 2: return wrapped error.
//
// Behavior highlights:
//   - Stable, human-friendly messages; preserves sentinel via %w.
//
// Inputs:
//   - method: context tag (ctxAt/ctxSet/ctxApply/...)
//   - row, col: coordinates
//   - err: sentinel (e.g., ErrOutOfRange, ErrNaNInf)
//
// Returns:
//   - error: wrapped with context
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Keep tags in constants for grep-ability and consistency.
//
// AI-Hints:
//   - Prefer to wrap at the nearest detection site for precise coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// denseAxisErrorf wraps an error for whole-row/whole-column operations that
// carry a single index (Row, Column, SetRow, SetColumn).
// Format: "Dense.<method>(index): %w".
// Complexity: O(1).
func denseAxisErrorf(method string, index int, err error) error {
	return fmt.Errorf("Dense.%s(%d): %w", method, index, err)
}

// Dense is a concrete row-major matrix over a Scalar element type.
//   - r,c hold dimensions (rows, cols), both > 0 (enforced by constructors).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection on writes (policy default
//     from options.go); the guard is meaningful for float kinds only.
type Dense[T Scalar] struct {
	r, c           int  // row and column counts
	data           []T  // contiguous row-major storage (len == r*c)
	validateNaNInf bool // numeric guard: reject NaN/Inf on writes when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix[float64] = (*Dense[float64])(nil) // *Dense implements our public Matrix interface
	_ Matrix[int]     = (*Dense[int])(nil)     // integer instantiations expose the same surface
	_ fmt.Stringer    = (*Dense[float64])(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation and configurable numeric policy.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: resolve options (numeric policy).
//   - Stage 3: allocate zero-filled buffer and initialize policy.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - Public constructor forbids empty dimensions to avoid accidental 0×0 matrices.
//
// Inputs:
//   - rows: positive number of rows
//   - cols: positive number of columns
//   - opts: optional numeric policy overrides (WithNoValidateNaNInf, ...).
//
// Returns:
//   - *Dense[T]: newly allocated matrix.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Determinism:
//   - Always allocates the same layout for given (rows, cols).
//   - Fixed zero initialization; no randomness.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - The zero value of T fills the buffer (0 for integers, 0.0 for floats).
//
// AI-Hints:
//   - Prefer this ctor for public creation; use NewFilled for a uniform non-zero start.
func NewDense[T Scalar](rows, cols int, opts ...Option) (*Dense[T], error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Resolve numeric policy once, at creation time.
	o := gatherOptions(opts...)
	// Allocate a contiguous flat buffer; make() zero-fills it deterministically.
	buf := make([]T, rows*cols)

	return &Dense[T]{
		r:              rows,
		c:              cols,
		data:           buf,
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// NewFilled creates an r×c matrix with every element set to fill.
// MAIN DESCRIPTION:
//   - Uniform-value constructor; the canonical way to seed a constant matrix.
//
// Implementation:
//   - Stage 1: delegate shape validation and allocation to NewDense.
//   - Stage 2: enforce numeric policy on the fill value.
//   - Stage 3: write fill into every slot of the flat buffer.
//
// Behavior highlights:
//   - Rejects a non-finite fill when the policy is enabled (float kinds).
//
// Inputs:
//   - rows, cols: positive dimensions.
//   - fill: value stored at every coordinate.
//   - opts: optional numeric policy overrides.
//
// Returns:
//   - *Dense[T] or a sentinel error.
//
// Errors:
//   - ErrInvalidDimensions (bad shape); ErrNaNInf (non-finite fill under policy).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - NewFilled(n, n, 0) is equivalent to NewDense(n, n); prefer NewDense for zeros.
func NewFilled[T Scalar](rows, cols int, fill T, opts ...Option) (*Dense[T], error) {
	m, err := NewDense[T](rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	// Numeric policy applies to the seed value as well.
	if m.validateNaNInf && isNonFinite(fill) {
		return nil, ErrNaNInf
	}
	var i int
	for i = 0; i < len(m.data); i++ {
		m.data[i] = fill
	}

	return m, nil
}

// NewFromRows builds a Dense from a rectangular slice of rows (deep copy).
// MAIN DESCRIPTION:
//   - Ingestion constructor: validate shape and values, then copy row by row.
//
// Implementation:
//   - Stage 1: reject empty input (no rows, or an empty first row).
//   - Stage 2: verify every row has the same length as the first (rectangular contract).
//   - Stage 3: enforce numeric policy on every value when enabled.
//   - Stage 4: copy rows into a fresh flat buffer (input stays untouched).
//
// Behavior highlights:
//   - All-or-nothing: any violation aborts before the matrix exists.
//   - The result owns its buffer; later mutation of the input slices has no effect.
//
// Inputs:
//   - rows: non-empty slice of equally sized, non-empty rows.
//   - opts: optional numeric policy overrides.
//
// Returns:
//   - *Dense[T] or a sentinel error.
//
// Errors:
//   - ErrInvalidDimensions (empty input); ErrSizeMismatch (ragged rows);
//     ErrNaNInf (non-finite element under policy).
//
// Determinism:
//   - Fixed i→j copy order.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Use for literals in tests and examples: NewFromRows([][]float64{{2, 3}, {4, 5}}).
func NewFromRows[T Scalar](rows [][]T, opts ...Option) (*Dense[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	r, c := len(rows), len(rows[0])

	// Rectangular contract: every row matches the width of the first.
	var i, j int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("NewFromRows: row %d: %w", i, ErrSizeMismatch)
		}
	}

	m, err := NewDense[T](r, c, opts...)
	if err != nil {
		return nil, err
	}
	// Scan before the first write so a rejected value leaves nothing half-built.
	if m.validateNaNInf {
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				if isNonFinite(rows[i][j]) {
					return nil, fmt.Errorf("NewFromRows: (%d,%d): %w", i, j, ErrNaNInf)
				}
			}
		}
	}
	for i = 0; i < r; i++ {
		copy(m.data[i*c:(i+1)*c], rows[i]) // deep copy each row
	}

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Bounds-check (row,col) and compute flat offset for row-major storage.
//
// Implementation:
//   - Stage 1: validate 0 ≤ row < m.r and 0 ≤ col < m.c.
//   - Stage 2: compute row*m.c + col.
//
// Behavior highlights:
//   - Returns a sentinel (ErrOutOfRange) without adding context; public
//     methods (At/Set) will wrap with coordinates and method name.
//
// Inputs:
//   - row, col: coordinates.
//
// Returns:
//   - (offset, nil) on success; (0, ErrOutOfRange) otherwise.
//
// Errors:
//   - ErrOutOfRange when indices are invalid
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Keep unexported to avoid accidental panics at public surface.
//
// AI-Hints:
//   - Reuse in At/Set to keep identical bound semantics.
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read at coordinates.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: load from flat buffer.
//
// Behavior highlights:
//   - Never panics on out-of-range; returns sentinel error.
//
// Inputs:
//   - row, col: zero-based indices.
//
// Returns:
//   - (value, nil) on success; (zero, ErrOutOfRange) on invalid indices.
//
// Errors:
//   - ErrOutOfRange when out of bounds
//
// Determinism:
//   - Stable access cost; no allocations.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Prefer At in external code; internal hot paths may index directly.
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T

		return zero, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// MAIN DESCRIPTION:
//   - Safe element write with optional finite-only policy.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: enforce numeric policy (reject NaN/±Inf when enabled).
//   - Stage 3: write into flat buffer.
//
// Behavior highlights:
//   - Never panics; returns sentinel errors.
//   - Numeric policy is a per-instance flag preserved by Clone.
//
// Inputs:
//   - row, col: element coordinates.
//   - v      : value to store.
//
// Returns:
//   - nil on success; errors on invalid indices.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for invalid numbers
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Integer element types can never trip the policy (always finite).
//
// AI-Hints:
//   - Keep policy ON in production data flows; disable only in controlled ingestion.
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	// Numeric policy: optional finite-only enforcement.
	if m.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v // direct flat write

	return nil
}

// Row returns a fresh copy of row i.
// MAIN DESCRIPTION:
//   - Whole-row read; the result is detached from the matrix storage.
//
// Implementation:
//   - Stage 1: bounds-check i.
//   - Stage 2: copy the contiguous row slice into a new buffer.
//
// Behavior highlights:
//   - Mutating the returned slice never touches the matrix.
//
// Inputs:
//   - i: zero-based row index.
//
// Returns:
//   - ([]T of length Cols(), nil) or (nil, ErrOutOfRange).
//
// Complexity:
//   - Time O(c), Space O(c).
func (m *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, denseAxisErrorf(ctxRow, i, ErrOutOfRange)
	}
	out := make([]T, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c]) // contiguous in row-major storage

	return out, nil
}

// Column returns a fresh copy of column j.
// MAIN DESCRIPTION:
//   - Whole-column read; strided gather from row-major storage.
//
// Implementation:
//   - Stage 1: bounds-check j.
//   - Stage 2: gather data[k*c + j] for k in [0..r).
//
// Behavior highlights:
//   - Mutating the returned slice never touches the matrix.
//
// Inputs:
//   - j: zero-based column index.
//
// Returns:
//   - ([]T of length Rows(), nil) or (nil, ErrOutOfRange).
//
// Complexity:
//   - Time O(r), Space O(r).
func (m *Dense[T]) Column(j int) ([]T, error) {
	if j < 0 || j >= m.c {
		return nil, denseAxisErrorf(ctxColumn, j, ErrOutOfRange)
	}
	out := make([]T, m.r)
	var k int
	for k = 0; k < m.r; k++ {
		out[k] = m.data[k*m.c+j] // stride c between consecutive column entries
	}

	return out, nil
}

// Diagonal returns a fresh copy of the main diagonal of a square matrix.
// MAIN DESCRIPTION:
//   - Read data[k*c + k] for k in [0..n); requires r == c.
//
// Returns:
//   - ([]T of length n, nil) or (nil, ErrNotSquare).
//
// Complexity:
//   - Time O(n), Space O(n).
//
// Notes:
//   - The main diagonal of a non-square matrix is ambiguous here, hence the error.
func (m *Dense[T]) Diagonal() ([]T, error) {
	if m.r != m.c {
		return nil, fmt.Errorf("Dense.%s: %w", ctxDiagonal, ErrNotSquare)
	}
	out := make([]T, m.r)
	var k int
	for k = 0; k < m.r; k++ {
		out[k] = m.data[k*m.c+k]
	}

	return out, nil
}

// SetRow replaces row i with vals (copied; the input slice is not retained).
// MAIN DESCRIPTION:
//   - Whole-row write with all-or-nothing semantics.
//
// Implementation:
//   - Stage 1: bounds-check i.
//   - Stage 2: length-check vals against Cols().
//   - Stage 3: enforce numeric policy on every value before the first write.
//   - Stage 4: copy vals over the contiguous row slice.
//
// Behavior highlights:
//   - Validation precedes mutation; a rejected call leaves the row intact.
//
// Inputs:
//   - i: zero-based row index.
//   - vals: replacement values, len(vals) == Cols().
//
// Returns:
//   - nil on success; a wrapped sentinel otherwise.
//
// Errors:
//   - ErrOutOfRange (bad index); ErrSizeMismatch (nil or wrong-length vals);
//     ErrNaNInf (non-finite value under policy).
//
// Complexity:
//   - Time O(c), Space O(1).
func (m *Dense[T]) SetRow(i int, vals []T) error {
	if i < 0 || i >= m.r {
		return denseAxisErrorf(ctxSetRow, i, ErrOutOfRange)
	}
	if len(vals) != m.c {
		return denseAxisErrorf(ctxSetRow, i, ErrSizeMismatch)
	}
	if m.validateNaNInf {
		var j int
		for j = 0; j < m.c; j++ {
			if isNonFinite(vals[j]) {
				return denseErrorf(ctxSetRow, i, j, ErrNaNInf)
			}
		}
	}
	copy(m.data[i*m.c:(i+1)*m.c], vals)

	return nil
}

// SetColumn replaces column j with vals (copied; the input slice is not retained).
// MAIN DESCRIPTION:
//   - Whole-column write with all-or-nothing semantics.
//
// Implementation:
//   - Stage 1: bounds-check j.
//   - Stage 2: length-check vals against Rows().
//   - Stage 3: enforce numeric policy on every value before the first write.
//   - Stage 4: strided scatter data[k*c + j] = vals[k].
//
// Behavior highlights:
//   - Validation precedes mutation; a rejected call leaves the column intact.
//
// Inputs:
//   - j: zero-based column index.
//   - vals: replacement values, len(vals) == Rows().
//
// Returns:
//   - nil on success; a wrapped sentinel otherwise.
//
// Errors:
//   - ErrOutOfRange (bad index); ErrSizeMismatch (nil or wrong-length vals);
//     ErrNaNInf (non-finite value under policy).
//
// Complexity:
//   - Time O(r), Space O(1).
func (m *Dense[T]) SetColumn(j int, vals []T) error {
	if j < 0 || j >= m.c {
		return denseAxisErrorf(ctxSetColumn, j, ErrOutOfRange)
	}
	if len(vals) != m.r {
		return denseAxisErrorf(ctxSetColumn, j, ErrSizeMismatch)
	}
	var k int
	if m.validateNaNInf {
		for k = 0; k < m.r; k++ {
			if isNonFinite(vals[k]) {
				return denseErrorf(ctxSetColumn, k, j, ErrNaNInf)
			}
		}
	}
	for k = 0; k < m.r; k++ {
		m.data[k*m.c+j] = vals[k] // stride c between consecutive column slots
	}

	return nil
}

// SwapRows exchanges rows i and j in place.
// MAIN DESCRIPTION:
//   - Row permutation primitive; the backbone of pivoting in elimination.
//
// Implementation:
//   - Stage 1: bounds-check both indices.
//   - Stage 2: i == j is a successful no-op (nothing to move).
//   - Stage 3: element-wise parallel swap of the two contiguous row slices.
//
// Behavior highlights:
//   - Pure permutation: applying the same call twice restores the matrix.
//   - No allocation; the flat buffer is rearranged in place.
//
// Inputs:
//   - i, j: zero-based row indices.
//
// Returns:
//   - nil on success; ErrOutOfRange (wrapped) on a bad index.
//
// Determinism:
//   - Fixed k order over columns.
//
// Complexity:
//   - Time O(c), Space O(1).
//
// AI-Hints:
//   - Determinant tracks a sign flip per effective swap; the container does not.
func (m *Dense[T]) SwapRows(i, j int) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.r {
		return denseErrorf(ctxSwapRows, i, j, ErrOutOfRange)
	}
	if i == j {
		return nil // no-op by contract
	}
	ri := m.data[i*m.c : (i+1)*m.c]
	rj := m.data[j*m.c : (j+1)*m.c]
	var k int
	for k = 0; k < m.c; k++ {
		ri[k], rj[k] = rj[k], ri[k]
	}

	return nil
}

// SwapCols exchanges columns i and j in place.
// MAIN DESCRIPTION:
//   - Column permutation primitive; the fallback axis when a pivot row search fails.
//
// Implementation:
//   - Stage 1: bounds-check both indices.
//   - Stage 2: i == j is a successful no-op.
//   - Stage 3: strided parallel swap data[k*c+i] <-> data[k*c+j] for every row k.
//
// Behavior highlights:
//   - Pure permutation: self-inverse, no allocation.
//
// Inputs:
//   - i, j: zero-based column indices.
//
// Returns:
//   - nil on success; ErrOutOfRange (wrapped) on a bad index.
//
// Complexity:
//   - Time O(r), Space O(1).
func (m *Dense[T]) SwapCols(i, j int) error {
	if i < 0 || i >= m.c || j < 0 || j >= m.c {
		return denseErrorf(ctxSwapCols, i, j, ErrOutOfRange)
	}
	if i == j {
		return nil // no-op by contract
	}
	var k, base int
	for k = 0; k < m.r; k++ {
		base = k * m.c
		m.data[base+i], m.data[base+j] = m.data[base+j], m.data[base+i]
	}

	return nil
}

// Fill overwrites every element with v.
// MAIN DESCRIPTION:
//   - Whole-matrix write honoring the numeric policy.
//
// Returns:
//   - nil on success; ErrNaNInf (wrapped) when v is non-finite under policy.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense[T]) Fill(v T) error {
	if m.validateNaNInf && isNonFinite(v) {
		return fmt.Errorf("Dense.%s: %w", ctxFill, ErrNaNInf)
	}
	var i int
	for i = 0; i < len(m.data); i++ {
		m.data[i] = v
	}

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// MAIN DESCRIPTION:
//   - Produce an independent Dense with identical shape/data/policy.
//
// Implementation:
//   - Stage 1: allocate new buffer len==r*c.
//   - Stage 2: copy data and flags.
//
// Behavior highlights:
//   - Independence: mutations do not affect the original.
//
// Returns:
//   - Matrix[T]: *Dense implementing Matrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - Returned dynamic type is *Dense[T].
//
// AI-Hints:
//   - For structural copy with transform, consider Apply on a clone.
func (m *Dense[T]) Clone() Matrix[T] {
	cp := make([]T, len(m.data)) // allocate same length
	copy(cp, m.data)             // deep copy contents

	return &Dense[T]{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf, // preserve guard policy
	}
}

// Equal reports exact structural equality with another matrix.
// MAIN DESCRIPTION:
//   - Same shape and identical elements at every coordinate (operator ==).
//
// Implementation:
//   - Stage 1: reject nil and shape mismatches (no error, just false).
//   - Stage 2: fast path when other is *Dense: compare flat buffers.
//   - Stage 3: fallback: element loop via At; any read error reports false.
//
// Behavior highlights:
//   - Equality is a predicate, never an error source.
//   - Exact comparison; for tolerance-based checks on floats use EqualApprox.
//
// Inputs:
//   - other: any Matrix[T] implementation (nil allowed, reports false).
//
// Returns:
//   - bool: true iff shapes and all elements match exactly.
//
// Determinism:
//   - Fixed i→j order; short-circuits on the first difference.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense[T]) Equal(other Matrix[T]) bool {
	if other == nil {
		return false
	}
	if od, ok := other.(*Dense[T]); ok {
		if od == nil {
			return false
		}
		if m.r != od.r || m.c != od.c {
			return false
		}
		var i int
		for i = 0; i < len(m.data); i++ {
			if m.data[i] != od.data[i] {
				return false
			}
		}

		return true
	}
	if m.r != other.Rows() || m.c != other.Cols() {
		return false
	}
	var i, j int
	var v T
	var err error
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			v, err = other.At(i, j)
			if err != nil || m.data[i*m.c+j] != v {
				return false
			}
		}
	}

	return true
}

// String renders a human-readable row-wise dump for diagnostics.
// MAIN DESCRIPTION:
//   - One line per row: "{ v, v, ..., v }\n" in row-major order.
//
// Implementation:
//   - Stage 1: iterate rows/cols deterministically.
//   - Stage 2: write values into strings.Builder with standard delimiters.
//
// Behavior highlights:
//   - Not for hot paths; intended for logs and debugging.
//   - Every row line ends with a newline, the last one included; print with
//     fmt.Print rather than fmt.Println to avoid a blank trailing line.
//
// Returns:
//   - string: multi-line representation of the matrix.
//
// Determinism:
//   - Fixed traversal order.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
//
// AI-Hints:
//   - For large matrices prefer printing a few rows/cols or summarize.
func (m *Dense[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen) // open row
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate cols
			b.WriteString(fmt.Sprintf("%v", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep) // separate values with comma + space
			}
		}
		b.WriteString(_fmtRowClose) // close row
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// MAIN DESCRIPTION:
//   - Read-only visitor; stops early when f returns false.
//
// Implementation:
//   - Stage 1: nested loops - double for-loop over rows then cols; compute base offset per row.
//   - Stage 2: call f on each element; stop when f returns false.
//
// Behavior highlights:
//   - Read-only with respect to the callback; no allocations; deterministic order.
//
// Inputs:
//   - f: callback returning continue/stop flag (false to stop early).
//
// Determinism:
//   - Fixed i→j order.
//
// Complexity:
//   - Time O(r*c), Space O(1).
//
// AI-Hints:
//   - Use to accumulate stats without temporary allocations.
func (m *Dense[T]) Do(f func(i, j int, v T) bool) {
	var i, j, base int // predeclare loop counters and base offset
	var v T            // temporary for current value

	for i = 0; i < m.r; i++ { // iterate rows deterministically
		base = i * m.c            // compute flat base offset for row i
		for j = 0; j < m.c; j++ { // iterate columns
			v = m.data[base+j] // read current element
			if !f(i, j, v) {   // invoke callback; stop if it returns false
				return // early exit requested by caller
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place.
// MAIN DESCRIPTION:
//   - In-place map with policy enforcement and deterministic order.
//
// Implementation:
//   - Stage 1: nested loops - double for-loop over rows then cols; compute new value via f.
//   - Stage 2: compute new value; reject NaN/Inf if policy enabled.
//   - Stage 3: write back.
//
// Behavior highlights:
//   - Deterministic row-major order; no extra allocations.
//   - Respects validateNaNInf (rejects NaN/±Inf when enabled).
//   - Early error aborts; elements written before the error remain updated.
//
// Inputs:
//   - f: transformer from (i,j,v) to new value.
//
// Returns:
//   - error: ErrNaNInf when transformer produced non-finite (if policy ON).
//
// Determinism:
//   - Fixed i→j order; side effects are predictable.
//
// Complexity:
//   - Time O(r*c), Space O(1).
//
// Notes:
//   - For all-or-nothing semantics, transform into a clone and swap on success.
//
// AI-Hints:
//   - Keep transforms pure; avoid capturing external mutable state.
func (m *Dense[T]) Apply(f func(i, j int, v T) T) error {
	var i, j, base int // predeclare loop counters and base offset
	var v, nv T        // old and new values

	for i = 0; i < m.r; i++ { // iterate rows
		base = i * m.c            // base offset for row i
		for j = 0; j < m.c; j++ { // iterate columns
			v = m.data[base+j] // read current value
			nv = f(i, j, v)    // compute new value
			// Enforce numeric policy if enabled.
			if m.validateNaNInf && isNonFinite(nv) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf) // wrap with coordinates
			}
			m.data[base+j] = nv // write back new value
		}
	}

	return nil // success
}
