// Package lvlmat is your in-memory toolkit for building, transforming, and
// measuring dense numeric matrices, from safe element access to determinants.
//
// 🚀 What is lvlmat?
//
//	A modern, deterministic, generics-based library that brings together:
//		• Dense[T] container: row-major storage, bounds-safe At/Set, whole-row
//		  and whole-column access, in-place row/column exchanges
//		• Arithmetic kernels: Add, Sub, Mul, Hadamard, Transpose, Scale, MatVec, Trace
//		• Determinant: Gaussian elimination with row/column pivoting and sign tracking
//		• Comparison: exact Equal and tolerance-based EqualApprox
//		• Interop: converters to/from gonum and between element types
//
// ✨ Why choose lvlmat?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – sentinel errors, strict validation, fixed loop orders
//   - Generic – one Dense[T] for ints and floats alike, no duplication
//   - Interoperable – first-class bridge to the gonum ecosystem
//
// Under the hood, everything is organized under one subpackage:
//
//	matrix/   - Dense[T], kernels, determinant, validators, converters
//	examples/ - runnable demos (construction, arithmetic, determinants, gonum)
//
// Quick ASCII example:
//
//	{ 2, 3 }
//	{ 4, 5 }
//
//	renders a 2×2 matrix whose determinant is 2*5 - 3*4 = -2.
//
// Dive into README.md for full examples and the feature matrix.
//
//	go get github.com/katalvlaran/lvlmat
package lvlmat
