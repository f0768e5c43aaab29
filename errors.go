// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lll

// Error represents lll package errors, following the same string-sentinel
// pattern as mat64.Error: a small closed set of named values comparable
// with ==.
type Error string

func (err Error) Error() string { return string(err) }

const (
	// ErrBadEta reports that eta was outside (1/2, sqrt(delta)).
	ErrBadEta = Error("lll: eta out of range")

	// ErrBadDelta reports that delta was outside (1/4, 1).
	ErrBadDelta = Error("lll: delta out of range")

	// ErrDimMismatch reports a malformed basis: zero or negative
	// dimension, or more rows than columns.
	ErrDimMismatch = Error("lll: basis dimension mismatch")

	// ErrSingularBasis reports that the input rows are not linearly
	// independent: a Gram-Schmidt norm r[i][i] was found to be zero,
	// which would otherwise make μ's defining division by zero.
	ErrSingularBasis = Error("lll: basis rows are linearly dependent")
)
