// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigmat

import "math/big"

// DotInt returns the dot product of u and v, Σᵢ uᵢ·vᵢ, computed exactly.
// DotInt panics with ErrRowLength if u and v have different lengths, and
// with ErrZeroLen if they are empty.
func DotInt(u, v []*big.Int) *big.Int {
	if len(u) != len(v) {
		panic(ErrRowLength)
	}
	if len(u) == 0 {
		panic(ErrZeroLen)
	}
	sum := new(big.Int)
	t := new(big.Int)
	for i, ui := range u {
		t.Mul(ui, v[i])
		sum.Add(sum, t)
	}
	return sum
}

// SubInt returns a newly allocated vector equal to u - v, componentwise.
func SubInt(u, v []*big.Int) []*big.Int {
	if len(u) != len(v) {
		panic(ErrRowLength)
	}
	out := make([]*big.Int, len(u))
	for i := range out {
		out[i] = new(big.Int).Sub(u[i], v[i])
	}
	return out
}

// ScaleInt returns a newly allocated vector equal to x·u, componentwise.
func ScaleInt(u []*big.Int, x *big.Int) []*big.Int {
	out := make([]*big.Int, len(u))
	for i, ui := range u {
		out[i] = new(big.Int).Mul(ui, x)
	}
	return out
}

// SubScaledInt returns a newly allocated vector equal to u - x·v, the
// operation at the heart of size-reduction (bₖ ← bₖ - x·bᵢ).
func SubScaledInt(u, v []*big.Int, x *big.Int) []*big.Int {
	if len(u) != len(v) {
		panic(ErrRowLength)
	}
	out := make([]*big.Int, len(u))
	t := new(big.Int)
	for i := range out {
		t.Mul(v[i], x)
		out[i] = new(big.Int).Sub(u[i], t)
	}
	return out
}

// CloneInt returns a newly allocated copy of u.
func CloneInt(u []*big.Int) []*big.Int {
	out := make([]*big.Int, len(u))
	for i, ui := range u {
		out[i] = new(big.Int).Set(ui)
	}
	return out
}
