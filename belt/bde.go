// Copyright (c) 2025 The Belstd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package belt

import "github.com/belstd/core/stberr"

// ErrUnalignedInput is returned by the disk-sector modes (BDE, SDE) when
// the input is not a whole number of blocks; sector payloads are always
// block-aligned in practice, so these modes do not implement the
// ciphertext-stealing tail WBL/ECB/CBC use.
var ErrUnalignedInput = stberr.New(stberr.BadInput, "belt: input must be a multiple of BlockSize")

// BDEEncrypt encrypts a disk sector under an XEX-like tweakable mode: the
// sector tweak T0 = E(sector) is doubled in GF(2^128) for each successive
// block, and each block is encrypted as E(P_i XOR T_i) XOR T_i.
func BDEEncrypt(ek ExpandedKey, sector Block, x []byte) ([]byte, error) {
	return xexTransform(ek, sector, x, EncryptBlock)
}

// BDEDecrypt is the inverse of BDEEncrypt.
func BDEDecrypt(ek ExpandedKey, sector Block, c []byte) ([]byte, error) {
	return xexTransform(ek, sector, c, DecryptBlock)
}

func xexTransform(ek ExpandedKey, sector Block, x []byte, op func(ExpandedKey, *Block)) ([]byte, error) {
	if len(x) == 0 || len(x)%BlockSize != 0 {
		return nil, ErrUnalignedInput
	}
	tweak := sector
	EncryptBlock(ek, &tweak)

	out := make([]byte, len(x))
	for off := 0; off < len(x); off += BlockSize {
		var blk Block
		copy(blk[:], x[off:off+BlockSize])
		xorBytes(blk[:], blk[:], tweak[:])
		op(ek, &blk)
		xorBytes(blk[:], blk[:], tweak[:])
		copy(out[off:off+BlockSize], blk[:])
		tweak = gfDouble(tweak)
	}
	return out, nil
}

// gfDouble multiplies a 128-bit little-endian block by x in
// GF(2^128)/(x^128+x^7+x^2+x+1), the standard XTS tweak polynomial.
func gfDouble(b Block) Block {
	var out Block
	var carry byte
	for i := 0; i < BlockSize; i++ {
		cur := b[i]
		out[i] = (cur << 1) | carry
		carry = cur >> 7
	}
	if carry != 0 {
		out[0] ^= 0x87
	}
	return out
}
