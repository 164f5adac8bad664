// Copyright (c) 2025 The Belstd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package belt

// CFBEncrypt encrypts x under 128-bit self-synchronizing CFB feedback
// seeded by iv. Any length is accepted; the final chunk may be a partial
// block.
func CFBEncrypt(ek ExpandedKey, iv Block, x []byte) []byte {
	out := make([]byte, len(x))
	reg := iv
	for off := 0; off < len(x); off += BlockSize {
		end := off + BlockSize
		if end > len(x) {
			end = len(x)
		}
		ks := reg
		EncryptBlock(ek, &ks)
		xorBytes(out[off:end], x[off:end], ks[:end-off])

		var next Block
		copy(next[:], out[off:end]) // next register shifts in the ciphertext
		reg = next
	}
	return out
}

// CFBDecrypt decrypts c; the feedback register shifts in the ciphertext,
// which here is the input rather than the output.
func CFBDecrypt(ek ExpandedKey, iv Block, c []byte) []byte {
	out := make([]byte, len(c))
	reg := iv
	for off := 0; off < len(c); off += BlockSize {
		end := off + BlockSize
		if end > len(c) {
			end = len(c)
		}
		ks := reg
		EncryptBlock(ek, &ks)
		xorBytes(out[off:end], c[off:end], ks[:end-off])

		var next Block
		copy(next[:], c[off:end])
		reg = next
	}
	return out
}
