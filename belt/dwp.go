// Copyright (c) 2025 The Belstd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package belt

import (
	"crypto/subtle"

	"github.com/belstd/core/stberr"
	"github.com/belstd/core/word"
)

// ErrAuthFailed is returned when authenticated decryption fails integrity
// verification.
var ErrAuthFailed = stberr.New(stberr.BadMac, "belt: authentication failed")

// DWPSeal encrypts plaintext under CTR mode and authenticates (aad,
// ciphertext) with a GF(2^128) polynomial MAC (a GHASH-style construction,
// keyed by H = E_k(zero)), returning ciphertext and a MaxMACLen-octet tag.
func DWPSeal(ek ExpandedKey, iv Block, aad, plaintext []byte) (ciphertext, tag []byte) {
	ciphertext = CTREncrypt(ek, iv, plaintext)
	tag = polyMAC(ek, aad, ciphertext)
	return ciphertext, tag
}

// DWPOpen verifies tag over (aad, ciphertext) and, if valid, decrypts.
func DWPOpen(ek ExpandedKey, iv Block, aad, ciphertext, tag []byte) ([]byte, error) {
	want := polyMAC(ek, aad, ciphertext)
	if subtle.ConstantTimeCompare(want[:len(tag)], tag) != 1 {
		return nil, ErrAuthFailed
	}
	return CTRDecrypt(ek, iv, ciphertext), nil
}

// polyMAC computes a GHASH-style polynomial MAC over aad and data: blocks
// of aad then data (each right-padded with zeros to BlockSize) are folded
// into an accumulator that is multiplied by H = E_k(zero block) in
// GF(2^128) after every block, followed by a final block carrying the
// bit lengths of aad and data.
func polyMAC(ek ExpandedKey, aad, data []byte) []byte {
	var h Block
	EncryptBlock(ek, &h)

	var acc Block
	fold := func(b []byte) {
		for off := 0; off < len(b); off += BlockSize {
			var blk Block
			end := off + BlockSize
			if end > len(b) {
				end = len(b)
			}
			copy(blk[:], b[off:end])
			xorBytes(acc[:], acc[:], blk[:])
			acc = gfMul(acc, h)
		}
	}
	fold(aad)
	fold(data)

	var lenBlk Block
	word.StoreLE64(lenBlk[0:8], uint64(len(aad))*8)
	word.StoreLE64(lenBlk[8:16], uint64(len(data))*8)
	xorBytes(acc[:], acc[:], lenBlk[:])
	acc = gfMul(acc, h)

	EncryptBlock(ek, &acc)
	return acc[:MaxMACLen]
}

// gfMul multiplies a and b in GF(2^128)/(x^128+x^7+x^2+x+1), the same
// field gfDouble operates in, via standard double-and-add over a's bits
// from the highest degree down (b is added wherever a's bit is set).
func gfMul(a, b Block) Block {
	var result Block
	for deg := 8*BlockSize - 1; deg >= 0; deg-- {
		result = gfDouble(result)
		byteIdx := deg / 8
		bitIdx := uint(deg % 8)
		if (a[byteIdx]>>bitIdx)&1 == 1 {
			xorBytes(result[:], result[:], b[:])
		}
	}
	return result
}
