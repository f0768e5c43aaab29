// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lll

import (
	"math/big"

	"gonum.org/v1/lll/bigmat"
)

// sizeReduce makes row k of basis eta-size-reduced against rows 0..k-1:
// after it returns (with a nil error), |μ[k][j]| ≤ eta for every j < k.
//
// It re-derives r[k][·] and μ[k][·] from G[k][·] at the start of every
// pass, then, if any μ exceeds eta, subtracts integer multiples of
// earlier rows from row k from i = k-1 down to 0, incrementally updating
// μ[k][·] inline to decide each subsequent rounding, and loops back to
// re-derive from scratch before checking for a fixed point. This
// iterative changed-flag loop stands in for tail recursion, which Go
// does not guarantee to optimize away.
func sizeReduce(k, d int, basis *bigmat.Basis, g *bigmat.TriInt, mu, r *bigmat.TriRat, eta *big.Rat) (changed bool, err error) {
	for {
		for i := 0; i <= k; i++ {
			sum := new(big.Rat)
			for t := 0; t < i; t++ {
				sum.Add(sum, new(big.Rat).Mul(mu.At(i, t), r.At(k, t)))
			}
			rki := new(big.Rat).Sub(bigmat.RatFromInt(g.At(k, i)), sum)
			r.Set(k, i, rki)
			if r.At(i, i).Sign() == 0 {
				return changed, ErrSingularBasis
			}
			mu.Set(k, i, bigmat.RatDiv(rki, r.At(i, i)))
		}

		exceeds := false
		for j := 0; j < k; j++ {
			if bigmat.RatAbsCmp(mu.At(k, j), eta) > 0 {
				exceeds = true
				break
			}
		}
		if !exceeds {
			return changed, nil
		}
		changed = true

		for i := k - 1; i >= 0; i-- {
			x := bigmat.NearestInt(mu.At(k, i))
			if x.Sign() == 0 {
				continue
			}

			basis.SetRow(k, bigmat.SubScaledInt(basis.Row(k), basis.Row(i), x))

			for j := 0; j < d; j++ {
				if j < k {
					g.Set(k, j, bigmat.DotInt(basis.Row(k), basis.Row(j)))
				} else {
					g.Set(j, k, bigmat.DotInt(basis.Row(k), basis.Row(j)))
				}
			}

			xr := bigmat.RatFromInt(x)
			for j := 0; j < i; j++ {
				shift := new(big.Rat).Mul(xr, mu.At(i, j))
				mu.Set(k, j, new(big.Rat).Sub(mu.At(k, j), shift))
			}
		}
	}
}
