// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigmat

import (
	"math/big"
	"testing"
)

func newTestBasis(rows ...[]int64) *Basis {
	d := len(rows)
	n := len(rows[0])
	data := make([]*big.Int, 0, d*n)
	for _, row := range rows {
		for _, v := range row {
			data = append(data, big.NewInt(v))
		}
	}
	return NewBasis(d, n, data)
}

func TestBasisAtAndDims(t *testing.T) {
	b := newTestBasis([]int64{1, 1, 1}, []int64{-1, 0, 2}, []int64{3, 5, 6})
	d, n := b.Dims()
	if d != 3 || n != 3 {
		t.Fatalf("Dims() = (%d, %d), want (3, 3)", d, n)
	}
	if b.At(2, 1).Int64() != 5 {
		t.Errorf("At(2,1) = %v, want 5", b.At(2, 1))
	}
}

func TestBasisSwapRows(t *testing.T) {
	b := newTestBasis([]int64{1, 2}, []int64{3, 4})
	b.SwapRows(0, 1)
	if b.At(0, 0).Int64() != 3 || b.At(1, 0).Int64() != 1 {
		t.Errorf("SwapRows did not exchange rows: got %v / %v", b.Row(0), b.Row(1))
	}
}

func TestBasisSetRow(t *testing.T) {
	b := newTestBasis([]int64{1, 2}, []int64{3, 4})
	b.SetRow(0, []*big.Int{big.NewInt(9), big.NewInt(9)})
	if b.At(0, 0).Int64() != 9 || b.At(0, 1).Int64() != 9 {
		t.Errorf("SetRow did not update row: got %v", b.Row(0))
	}
	if !panics(func() { b.SetRow(0, []*big.Int{big.NewInt(1)}) }) {
		t.Error("SetRow did not panic on row length mismatch")
	}
}

func TestNewBasisZeroed(t *testing.T) {
	b := NewBasis(2, 3, nil)
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			if b.At(i, j).Sign() != 0 {
				t.Errorf("At(%d,%d) = %v, want 0", i, j, b.At(i, j))
			}
		}
	}
}

func TestNewBasisPanics(t *testing.T) {
	if !panics(func() { NewBasis(0, 3, nil) }) {
		t.Error("NewBasis did not panic on zero rows")
	}
	if !panics(func() { NewBasis(2, 2, make([]*big.Int, 3)) }) {
		t.Error("NewBasis did not panic on mismatched data length")
	}
}
