// Copyright (c) 2025 The Belstd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package belt

import "crypto/subtle"

// CHESeal is a single-pass AEAD: each plaintext block is CFB-encrypted
// (the register starts at iv) and the ciphertext block is immediately
// folded into a CBC-MAC chain under the same ek. The chain starts from the
// zero block with the AAD folded in first; iv does not enter it, and no
// counter-derived subkey is used, so encryption and authentication share
// one key and one pass over the data.
func CHESeal(ek ExpandedKey, iv Block, aad, plaintext []byte) (ciphertext, tag []byte) {
	ciphertext = make([]byte, len(plaintext))
	reg := iv
	mac := che32SubkeyChain(ek, iv, aad)

	for off := 0; off < len(plaintext); off += BlockSize {
		end := off + BlockSize
		if end > len(plaintext) {
			end = len(plaintext)
		}
		ks := reg
		EncryptBlock(ek, &ks)
		n := end - off
		xorBytes(ciphertext[off:end], plaintext[off:end], ks[:n])

		var full Block
		copy(full[:], ciphertext[off:end])
		xorBytes(mac[:], mac[:], full[:])
		EncryptBlock(ek, &mac)

		var next Block
		copy(next[:], ciphertext[off:end])
		reg = next
	}
	return ciphertext, mac[:MaxMACLen]
}

// CHEOpen verifies tag and, if valid, decrypts ciphertext.
func CHEOpen(ek ExpandedKey, iv Block, aad, ciphertext, tag []byte) ([]byte, error) {
	plaintext := make([]byte, len(ciphertext))
	reg := iv
	mac := che32SubkeyChain(ek, iv, aad)

	for off := 0; off < len(ciphertext); off += BlockSize {
		end := off + BlockSize
		if end > len(ciphertext) {
			end = len(ciphertext)
		}
		ks := reg
		EncryptBlock(ek, &ks)
		n := end - off

		var full Block
		copy(full[:], ciphertext[off:end])
		xorBytes(mac[:], mac[:], full[:])
		EncryptBlock(ek, &mac)

		xorBytes(plaintext[off:end], ciphertext[off:end], ks[:n])
		reg = full
	}

	if subtle.ConstantTimeCompare(mac[:len(tag)], tag) != 1 {
		return nil, ErrAuthFailed
	}
	return plaintext, nil
}

// che32SubkeyChain folds the AAD into the running MAC chain before any
// ciphertext block, seeding the chain from the zero block.
func che32SubkeyChain(ek ExpandedKey, iv Block, aad []byte) Block {
	var mac Block
	for off := 0; off < len(aad); off += BlockSize {
		var blk Block
		end := off + BlockSize
		if end > len(aad) {
			end = len(aad)
		}
		copy(blk[:], aad[off:end])
		xorBytes(mac[:], mac[:], blk[:])
		EncryptBlock(ek, &mac)
	}
	return mac
}
