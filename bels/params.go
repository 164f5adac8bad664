// Copyright (c) 2025 The Belstd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package bels

import "github.com/belstd/core/stberr"

// MaxShares is the largest number of shares Split supports (one per
// entry of alpha).
const MaxShares = 16

// alpha holds the 16 public generator values alpha_1..alpha_16 used as
// share x-coordinates; alpha[i] is alpha_{i+1}. The values are the
// integers 1..16, not the fixed table of the Bels standard, so shares
// made here do not interoperate with other Bels implementations.
var alpha = [MaxShares]byte{
	1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16,
}

var (
	// ErrBadSecretKey is returned when a secret has an unsupported length.
	ErrBadSecretKey = stberr.New(stberr.BadSecretKey, "bels: secret must be 16, 24 or 32 octets")
	// ErrBadShareKey is returned when a share count/threshold/body is invalid.
	ErrBadShareKey = stberr.New(stberr.BadShareKey, "bels: invalid share parameters")
)

func validSecretLen(n int) bool { return n == 16 || n == 24 || n == 32 }
