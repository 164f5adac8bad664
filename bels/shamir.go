// Copyright (c) 2025 The Belstd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package bels

import (
	"crypto/rand"
)

// Share is a single Bels share: the 1-octet index (one of the fixed
// alpha generators, 1..16) followed by the share body (16, 24 or
// 32 octets, matching the secret's length).
type Share struct {
	Index byte
	Body  []byte
}

// Bytes encodes a share as index || body.
func (s Share) Bytes() []byte {
	return append([]byte{s.Index}, s.Body...)
}

// ParseShare decodes a share previously produced by Bytes.
func ParseShare(b []byte) (Share, error) {
	if len(b) < 2 || !validSecretLen(len(b)-1) {
		return Share{}, ErrBadShareKey
	}
	return Share{Index: b[0], Body: append([]byte(nil), b[1:]...)}, nil
}

// Split generates n shares of secret (16, 24 or 32 octets) of which any
// k recover it: a random degree-(k-1) polynomial is sampled
// independently for each octet of the secret, with that octet as the
// constant term, and share_i's body is the polynomial evaluated at the
// i-th standard generator alpha_i.
func Split(secret []byte, n, k int) ([]Share, error) {
	if !validSecretLen(len(secret)) {
		return nil, ErrBadSecretKey
	}
	if k < 2 || n < k || n > MaxShares {
		return nil, ErrBadShareKey
	}

	coeffs := make([][]byte, len(secret))
	for i, b := range secret {
		c := make([]byte, k)
		c[0] = b
		if _, err := rand.Read(c[1:]); err != nil {
			return nil, err
		}
		coeffs[i] = c
	}

	shares := make([]Share, n)
	for i := 0; i < n; i++ {
		x := alpha[i]
		body := make([]byte, len(secret))
		for j := range secret {
			body[j] = evalPoly(coeffs[j], x)
		}
		shares[i] = Share{Index: x, Body: body}
	}
	return shares, nil
}

// evalPoly evaluates a polynomial (lowest-degree coefficient first) at
// x via Horner's method in GF(2^8).
func evalPoly(coeffs []byte, x byte) byte {
	degree := len(coeffs) - 1
	out := coeffs[degree]
	for i := degree - 1; i >= 0; i-- {
		out = gfAdd(gfMul(out, x), coeffs[i])
	}
	return out
}

// Recover reconstructs the secret from k (or more) shares via Lagrange
// interpolation at x=0, applied independently octet-by-octet.
func Recover(shares []Share) ([]byte, error) {
	if len(shares) < 2 {
		return nil, ErrBadShareKey
	}
	n := len(shares[0].Body)
	if !validSecretLen(n) {
		return nil, ErrBadShareKey
	}
	for _, s := range shares {
		if len(s.Body) != n {
			return nil, ErrBadShareKey
		}
	}

	secret := make([]byte, n)
	for j := 0; j < n; j++ {
		var result byte
		for i := range shares {
			var basis byte = 1
			for k := range shares {
				if k == i {
					continue
				}
				num := gfAdd(0, shares[k].Index)
				denom := gfAdd(shares[i].Index, shares[k].Index)
				basis = gfMul(basis, gfDiv(num, denom))
			}
			result = gfAdd(result, gfMul(shares[i].Body[j], basis))
		}
		secret[j] = result
	}
	return secret, nil
}
