// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigmat

import "math/big"

// packedIndex returns the offset of entry (i, j) in a row-major packed
// lower-triangular layout of size n(n+1)/2, honoring the convention that
// ⟨bᵢ, bⱼ⟩ is stored at (max(i,j), min(i,j)).
func packedIndex(i, j int) int {
	if j > i {
		i, j = j, i
	}
	return i*(i+1)/2 + j
}

// TriInt is a packed lower-triangular d×d matrix of *big.Int, used for
// the Gram matrix G. Only entries with column ≤ row are meaningful; At
// and Set transparently fold (i,j) to (max(i,j), min(i,j)).
type TriInt struct {
	n    int
	data []*big.Int
}

// NewTriInt creates a zero-valued n×n packed triangular integer matrix.
func NewTriInt(n int) *TriInt {
	if n <= 0 {
		panic(ErrShape)
	}
	data := make([]*big.Int, n*(n+1)/2)
	for i := range data {
		data[i] = new(big.Int)
	}
	return &TriInt{n: n, data: data}
}

// N returns the dimension of t.
func (t *TriInt) N() int { return t.n }

// At returns the entry at (i, j), folding to the stored (max, min) pair.
func (t *TriInt) At(i, j int) *big.Int {
	if i < 0 || i >= t.n || j < 0 || j >= t.n {
		panic(ErrIndex)
	}
	return t.data[packedIndex(i, j)]
}

// Set stores v at (i, j) (folded to (max(i,j), min(i,j))). Set copies v.
func (t *TriInt) Set(i, j int, v *big.Int) {
	if i < 0 || i >= t.n || j < 0 || j >= t.n {
		panic(ErrIndex)
	}
	t.data[packedIndex(i, j)].Set(v)
}

// TriRat is a packed lower-triangular d×d matrix of *big.Rat, used for
// the r and μ matrices. Only entries with column ≤ row are meaningful.
type TriRat struct {
	n    int
	data []*big.Rat
}

// NewTriRat creates a zero-valued n×n packed triangular rational matrix.
func NewTriRat(n int) *TriRat {
	if n <= 0 {
		panic(ErrShape)
	}
	data := make([]*big.Rat, n*(n+1)/2)
	for i := range data {
		data[i] = new(big.Rat)
	}
	return &TriRat{n: n, data: data}
}

// N returns the dimension of t.
func (t *TriRat) N() int { return t.n }

// At returns the entry at (i, j), folding to the stored (max, min) pair.
func (t *TriRat) At(i, j int) *big.Rat {
	if i < 0 || i >= t.n || j < 0 || j >= t.n {
		panic(ErrIndex)
	}
	return t.data[packedIndex(i, j)]
}

// Set stores v at (i, j) (folded to (max(i,j), min(i,j))). Set copies v.
func (t *TriRat) Set(i, j int, v *big.Rat) {
	if i < 0 || i >= t.n || j < 0 || j >= t.n {
		panic(ErrIndex)
	}
	t.data[packedIndex(i, j)].Set(v)
}
