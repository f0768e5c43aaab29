// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lll

import (
	"math/big"
	"time"

	"gonum.org/v1/lll/bigmat"
)

var (
	halfRat    = big.NewRat(1, 2)
	quarterRat = big.NewRat(1, 4)
	oneRat     = big.NewRat(1, 1)
	twoRat     = big.NewRat(2, 1)
)

// Reduce rewrites the rows of basis in place so that the resulting basis
// is (η, δ)-LLL-reduced: for every 0 ≤ j < i < d, |μ[i][j]| ≤ eta, and
// for every 1 ≤ i < d, delta·r[i-1][i-1] ≤ r[i][i] + μ[i][i-1]²·r[i-1][i-1].
// The ℤ-span of basis's rows (the lattice) is unchanged.
//
// Reduce requires eta ∈ (1/2, √delta) and delta ∈ (1/4, 1); violating
// either returns ErrBadEta or ErrBadDelta without mutating basis. A basis
// whose rows are not linearly independent is detected lazily, during
// reduction, and reported as ErrSingularBasis; basis may be partially
// mutated when this occurs. ErrDimMismatch, like ErrBadEta and
// ErrBadDelta, is returned before basis is touched.
//
// Reduce is synchronous and single-threaded: it must be the only reader
// or writer of basis for the duration of the call.
func Reduce(basis *bigmat.Basis, eta, delta *big.Rat) (Stats, error) {
	start := time.Now()

	if delta.Cmp(quarterRat) <= 0 || delta.Cmp(oneRat) >= 0 {
		return Stats{}, ErrBadDelta
	}
	if eta.Cmp(halfRat) <= 0 || bigmat.RatSquare(eta).Cmp(delta) >= 0 {
		return Stats{}, ErrBadEta
	}

	d, n := basis.Dims()
	if d <= 0 || d > n {
		return Stats{}, ErrDimMismatch
	}

	etaPlus := new(big.Rat).Add(eta, halfRat)
	etaPlus.Quo(etaPlus, twoRat)

	deltaPlus := new(big.Rat).Add(delta, oneRat)
	deltaPlus.Quo(deltaPlus, twoRat)

	g := bigmat.NewTriInt(d)
	r := bigmat.NewTriRat(d)
	mu := bigmat.NewTriRat(d)

	for i := 0; i < d; i++ {
		for j := 0; j <= i; j++ {
			g.Set(i, j, bigmat.DotInt(basis.Row(i), basis.Row(j)))
		}
	}
	r.Set(0, 0, bigmat.RatFromInt(g.At(0, 0)))

	var stats Stats
	k := 1
	for k < d {
		changed, err := sizeReduce(k, d, basis, g, mu, r, etaPlus)
		if err != nil {
			stats.Runtime = time.Since(start)
			return stats, err
		}
		if changed {
			stats.SizeReductions++
		}

		lhs := new(big.Rat).Mul(deltaPlus, r.At(k-1, k-1))
		muSq := bigmat.RatSquare(mu.At(k, k-1))
		rhs := new(big.Rat).Add(r.At(k, k), new(big.Rat).Mul(muSq, r.At(k-1, k-1)))

		if lhs.Cmp(rhs) < 0 {
			k++
			continue
		}

		basis.SwapRows(k-1, k)
		stats.Swaps++

		for j := 0; j < d; j++ {
			if j < k {
				g.Set(k, j, bigmat.DotInt(basis.Row(k), basis.Row(j)))
				g.Set(k-1, j, bigmat.DotInt(basis.Row(k-1), basis.Row(j)))
			} else {
				g.Set(j, k, bigmat.DotInt(basis.Row(k), basis.Row(j)))
				g.Set(j, k-1, bigmat.DotInt(basis.Row(k-1), basis.Row(j)))
			}
		}

		for i := 0; i <= k; i++ {
			for j := 0; j <= i; j++ {
				sum := new(big.Rat)
				for t := 0; t < j; t++ {
					sum.Add(sum, new(big.Rat).Mul(mu.At(j, t), r.At(i, t)))
				}
				rij := new(big.Rat).Sub(bigmat.RatFromInt(g.At(i, j)), sum)
				r.Set(i, j, rij)
				if r.At(j, j).Sign() == 0 {
					stats.Runtime = time.Since(start)
					return stats, ErrSingularBasis
				}
				mu.Set(i, j, bigmat.RatDiv(rij, r.At(j, j)))
			}
		}

		if k > 1 {
			k--
		}
	}

	stats.Runtime = time.Since(start)
	return stats, nil
}
