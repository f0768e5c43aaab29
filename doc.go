// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lll implements the L² variant of the Lenstra–Lenstra–Lovász
// lattice basis reduction algorithm over exact arbitrary-precision
// arithmetic.
//
// Given a matrix whose rows are linearly independent integer vectors
// spanning a lattice L ⊂ ℤⁿ, Reduce rewrites those rows in place so that
// the resulting basis is (η, δ)-LLL-reduced: for every pair of rows the
// Gram-Schmidt coefficients are bounded by η, and consecutive
// Gram-Schmidt norms satisfy the Lovász condition for δ. The reduced
// basis spans the same lattice and its first row is bounded in norm by
// a provable factor of the shortest nonzero lattice vector.
//
// All arithmetic is exact: the Gram matrix is integral and the
// Gram-Schmidt coefficients μ and norms r are exact rationals, both
// maintained incrementally (package bigmat) rather than recomputed from
// scratch on every row operation.
package lll
