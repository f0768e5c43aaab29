// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigmat

import "math/big"

// RatFromInt returns the exact rational promotion of n.
func RatFromInt(n *big.Int) *big.Rat {
	return new(big.Rat).SetInt(n)
}

// RatSquare returns r·r, newly allocated.
func RatSquare(r *big.Rat) *big.Rat {
	return new(big.Rat).Mul(r, r)
}

// RatDiv returns a/b, newly allocated. It panics with ErrShape if b is
// zero, mirroring the "division by zero arises only on a singular basis"
// precondition the lll package turns into ErrSingularBasis.
func RatDiv(a, b *big.Rat) *big.Rat {
	if b.Sign() == 0 {
		panic(ErrShape)
	}
	return new(big.Rat).Quo(a, b)
}

// RatAbsCmp compares |a| to b, returning -1, 0, or +1 as |a| is less
// than, equal to, or greater than b. b is assumed non-negative.
func RatAbsCmp(a, b *big.Rat) int {
	if a.Sign() < 0 {
		return new(big.Rat).Neg(a).Cmp(b)
	}
	return a.Cmp(b)
}

// NearestInt rounds r to the nearest integer, ties rounded away from
// zero (the conventional LLL choice).
func NearestInt(r *big.Rat) *big.Int {
	num := new(big.Int).Set(r.Num())
	den := new(big.Int).Set(r.Denom())

	neg := num.Sign() < 0
	if neg {
		num.Neg(num)
	}

	// q, rem such that num = q*den + rem, 0 <= rem < den.
	q, rem := new(big.Int), new(big.Int)
	q.QuoRem(num, den, rem)

	// Round half away from zero: bump q if 2*rem >= den.
	twiceRem := new(big.Int).Lsh(rem, 1)
	if twiceRem.CmpAbs(den) >= 0 {
		q.Add(q, big.NewInt(1))
	}

	if neg {
		q.Neg(q)
	}
	return q
}
