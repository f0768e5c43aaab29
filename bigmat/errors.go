// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigmat

// Error represents bigmat package errors. It is a string so that sentinel
// values can be declared as constants and compared with ==.
type Error string

func (err Error) Error() string { return string(err) }

// Sentinel errors returned or panicked with by this package.
const (
	ErrRowLength = Error("bigmat: row length mismatch")
	ErrZeroLen   = Error("bigmat: zero length vector")
	ErrIndex     = Error("bigmat: index out of range")
	ErrShape     = Error("bigmat: dimension mismatch")
)
