// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigmat

import "math/big"

// RawBasis is the backing store of a Basis, exposed for callers that
// need to build one from raw data without a defensive copy, mirroring
// mat64.RawMatrix.
type RawBasis struct {
	Rows, Cols int
	Stride     int
	Data       []*big.Int
}

// Basis is a dense d×n matrix of arbitrary-precision integers whose rows
// are the vectors of a lattice basis. Rows are mutated in place by row
// operations (SetRow/SwapRows); the set of rows as a whole is owned and
// mutated only by whichever single caller is reducing it.
type Basis struct {
	mat RawBasis
}

// NewBasis creates a Basis with d rows of dimension n. If data is non-nil
// it is used as the backing store in row-major order and must have
// length d*n; otherwise the matrix is filled with zero-valued big.Ints.
func NewBasis(d, n int, data []*big.Int) *Basis {
	if d <= 0 || n <= 0 {
		panic(ErrShape)
	}
	if data != nil && len(data) != d*n {
		panic(ErrShape)
	}
	if data == nil {
		data = make([]*big.Int, d*n)
		for i := range data {
			data[i] = new(big.Int)
		}
	}
	return &Basis{RawBasis{Rows: d, Cols: n, Stride: n, Data: data}}
}

// Dims returns the number of rows (d) and columns (n) of b.
func (b *Basis) Dims() (d, n int) { return b.mat.Rows, b.mat.Cols }

// RawBasis returns the underlying RawBasis of b.
func (b *Basis) RawBasis() RawBasis { return b.mat }

// At returns the element at row i, column j.
func (b *Basis) At(i, j int) *big.Int {
	if i < 0 || i >= b.mat.Rows || j < 0 || j >= b.mat.Cols {
		panic(ErrIndex)
	}
	return b.mat.Data[i*b.mat.Stride+j]
}

// Row returns the backing slice for row i. Mutating its elements mutates
// the basis; callers that need a private copy should use CloneInt on the
// result.
func (b *Basis) Row(i int) []*big.Int {
	if i < 0 || i >= b.mat.Rows {
		panic(ErrIndex)
	}
	off := i * b.mat.Stride
	return b.mat.Data[off : off+b.mat.Cols]
}

// SetRow replaces row i with row, which must have length equal to b's
// column count.
func (b *Basis) SetRow(i int, row []*big.Int) {
	if i < 0 || i >= b.mat.Rows {
		panic(ErrIndex)
	}
	if len(row) != b.mat.Cols {
		panic(ErrRowLength)
	}
	copy(b.Row(i), row)
}

// SwapRows exchanges rows i and j in place. Only the *big.Int pointers
// are moved, never the numbers they point to: reads share references,
// and only writes ever copy.
func (b *Basis) SwapRows(i, j int) {
	if i < 0 || i >= b.mat.Rows || j < 0 || j >= b.mat.Rows {
		panic(ErrIndex)
	}
	if i == j {
		return
	}
	ri, rj := b.Row(i), b.Row(j)
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}
}
