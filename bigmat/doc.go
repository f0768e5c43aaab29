// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bigmat provides exact-arithmetic matrix and vector containers
// over math/big's Int and Rat types.
//
// Basis holds the d×n integer matrix whose rows are the lattice basis
// vectors being reduced. TriInt and TriRat hold the d×d Gram, r and μ
// matrices in packed lower-triangular form: only entries with column
// index ≤ row index are stored, at the convention "(max(i,j), min(i,j))"
// used throughout the lll package.
package bigmat
