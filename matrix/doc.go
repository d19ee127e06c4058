// Package matrix offers dense row-major matrices generic over numeric element types.
//
// The matrix package provides:
//
//   - Dense[T], a contiguous row-major container with bounds-safe accessors
//     (At/Set, Row/Column/Diagonal, SetRow/SetColumn) and in-place row/column
//     exchanges (SwapRows/SwapCols).
//   - Elementwise and product kernels (Add, Sub, Mul, Hadamard, Transpose,
//     Scale, MatVec, Trace) with *Dense fast paths and interface fallbacks.
//   - Determinant via Gaussian elimination with row-then-column pivoting,
//     permutation-sign tracking and a singular short-circuit to zero.
//   - Exact (Equal) and tolerance-based (EqualApprox) comparison, plus
//     converters to and from gonum (ToGonum/FromGonum) and between element
//     types (CastDense).
//
// Dense storage is best for small-to-medium matrices where O(r*c) memory is
// acceptable; there is no sparse representation here.
//
// See the examples directory for usage patterns.
package matrix
