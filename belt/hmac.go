// Copyright (c) 2025 The Belstd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package belt

import "hash"

// HMACSize is the length of a Belt-HMAC tag in octets.
const HMACSize = HashSize

// HMACContext computes HMAC over Belt-HASH (RFC 2104, instantiated with
// Hash and hashBlockSize as the underlying block size).
type HMACContext struct {
	inner *HashContext
	opad  [hashBlockSize]byte
}

// NewHMAC starts a new Belt-HMAC context under key (any length).
func NewHMAC(key []byte) *HMACContext {
	var block [hashBlockSize]byte
	if len(key) > hashBlockSize {
		k := Hash(key)
		copy(block[:], k[:])
	} else {
		copy(block[:], key)
	}

	var ipad, opad [hashBlockSize]byte
	for i := range block {
		ipad[i] = block[i] ^ 0x36
		opad[i] = block[i] ^ 0x5c
	}

	h := &HMACContext{inner: NewHash(), opad: opad}
	h.inner.Write(ipad[:])
	return h
}

// Write absorbs more input.
func (h *HMACContext) Write(p []byte) {
	h.inner.Write(p)
}

// Sum finalizes the HMAC and returns the 32-octet tag.
func (h *HMACContext) Sum() [HMACSize]byte {
	innerDigest := h.inner.Sum()
	outer := NewHash()
	outer.Write(h.opad[:])
	outer.Write(innerDigest[:])
	tag := outer.Sum()
	h.opad = [hashBlockSize]byte{}
	return tag
}

// HMAC computes Belt-HMAC(key, msg) in one call.
func HMAC(key, msg []byte) [HMACSize]byte {
	ctx := NewHMAC(key)
	ctx.Write(msg)
	return ctx.Sum()
}

// beltHashAdapter exposes plain Belt-HASH (not HMAC) as a
// standard hash.Hash, so that golang.org/x/crypto/pbkdf2 — which builds
// HMAC itself via crypto/hmac's generic construction — drives PBKDF2
// with HMAC-HBelt as the PRF without a second, redundant HMAC layer.
type beltHashAdapter struct {
	h *HashContext
}

func newBeltHashAdapter() hash.Hash {
	return &beltHashAdapter{h: NewHash()}
}

func (a *beltHashAdapter) Write(p []byte) (int, error) { a.h.Write(p); return len(p), nil }

func (a *beltHashAdapter) Sum(b []byte) []byte {
	clone := *a.h
	clone.buf = append([]byte(nil), a.h.buf...)
	digest := clone.Sum()
	return append(b, digest[:]...)
}

func (a *beltHashAdapter) Reset()         { a.h = NewHash() }
func (a *beltHashAdapter) Size() int      { return HashSize }
func (a *beltHashAdapter) BlockSize() int { return hashBlockSize }
