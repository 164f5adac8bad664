// Copyright (c) 2025 The Belstd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package belt

import (
	"github.com/belstd/core/stberr"
	"golang.org/x/crypto/pbkdf2"
)

// MinPBKDF2Iter is the minimum iteration count PBKDF2Key accepts.
const MinPBKDF2Iter = 10000

var (
	// ErrWeakIterCount is returned when an iteration count below
	// MinPBKDF2Iter is requested.
	ErrWeakIterCount = stberr.New(stberr.BadParams, "belt: pbkdf2 iteration count must be >= 10000")
)

// PBKDF2Key derives a keyLen-octet key from password and salt using
// PBKDF2 with HMAC-HBelt as the pseudorandom function; the iteration
// loop itself is golang.org/x/crypto/pbkdf2's, driven over the
// beltHashAdapter from belt/hmac.go. iter must be at least MinPBKDF2Iter.
func PBKDF2Key(password, salt []byte, iter, keyLen int) ([]byte, error) {
	if iter < MinPBKDF2Iter {
		return nil, ErrWeakIterCount
	}
	return pbkdf2.Key(password, salt, iter, keyLen, newBeltHashAdapter), nil
}
