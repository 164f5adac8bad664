// Copyright (c) 2025 The Belstd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package belt

// SDEEncrypt is BDE with an additional per-call IV folded into the sector
// tweak (SDE: "sector + IV disk encryption"), letting the same sector be
// re-encrypted under different tweaks without a key change.
func SDEEncrypt(ek ExpandedKey, sector, iv Block, x []byte) ([]byte, error) {
	return xexTransform(ek, combineTweak(sector, iv), x, EncryptBlock)
}

// SDEDecrypt is the inverse of SDEEncrypt.
func SDEDecrypt(ek ExpandedKey, sector, iv Block, c []byte) ([]byte, error) {
	return xexTransform(ek, combineTweak(sector, iv), c, DecryptBlock)
}

func combineTweak(sector, iv Block) Block {
	var t Block
	xorBytes(t[:], sector[:], iv[:])
	return t
}
