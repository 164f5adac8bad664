// Copyright (c) 2025 The Belstd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package bash

import "crypto/subtle"

// MACSize is the default bashAE authentication tag length in octets.
const MACSize = 32

// AE is a bashAE authenticated-encryption context layered over a Prg:
// Start absorbs key and IV, AbsorbAAD folds in associated data, Encr/
// Decr run the duplex cipher, and Tag/Verify produce or check the
// authentication tag.
type AE struct {
	prg *Prg
}

// NewAE starts a bashAE context from a key and nonce/IV.
func NewAE(key, iv []byte) *AE {
	p := NewPrg()
	p.Start(key)
	p.AbsorbKey(iv)
	return &AE{prg: p}
}

// AbsorbAAD folds associated data into the running state.
func (a *AE) AbsorbAAD(aad []byte) {
	a.prg.Absorb(aad)
}

// Encr encrypts plaintext, folding the resulting ciphertext into the
// authentication state.
func (a *AE) Encr(pt []byte) []byte {
	return a.prg.Encr(pt)
}

// Decr decrypts ciphertext, folding it into the authentication state.
func (a *AE) Decr(ct []byte) []byte {
	return a.prg.Decr(ct)
}

// Tag finalizes the context and squeezes a MACSize-octet authentication
// tag. The context must not be used afterward.
func (a *AE) Tag() []byte {
	return a.prg.Squeeze(MACSize)
}

// Verify finalizes the context and reports whether the squeezed tag
// matches want, via a constant-time comparison.
func (a *AE) Verify(want []byte) bool {
	got := a.Tag()
	return subtle.ConstantTimeCompare(got, want) == 1
}

// Seal encrypts plaintext under key/iv/aad in one call, returning the
// ciphertext and a MACSize-octet tag.
func Seal(key, iv, aad, plaintext []byte) (ciphertext, tag []byte) {
	ae := NewAE(key, iv)
	ae.AbsorbAAD(aad)
	ciphertext = ae.Encr(plaintext)
	tag = ae.Tag()
	return
}

// Open decrypts ciphertext and verifies tag under key/iv/aad in one
// call, returning (nil, false) on authentication failure.
func Open(key, iv, aad, ciphertext, tag []byte) ([]byte, bool) {
	ae := NewAE(key, iv)
	ae.AbsorbAAD(aad)
	plaintext := ae.Decr(ciphertext)
	if !ae.Verify(tag) {
		for i := range plaintext {
			plaintext[i] = 0
		}
		return nil, false
	}
	return plaintext, true
}
