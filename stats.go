// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lll

import "time"

// Stats reports counters collected during a Reduce call.
type Stats struct {
	// Swaps is the number of Lovász-condition failures that triggered a
	// row swap.
	Swaps int

	// SizeReductions is the number of sizeReduce calls that changed row k
	// (found at least one |μ| > η⁺); a call that needs several sweeps
	// still counts once.
	SizeReductions int

	// Runtime is the wall-clock duration of the Reduce call.
	Runtime time.Duration
}
