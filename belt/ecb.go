// Copyright (c) 2025 The Belstd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package belt

import "github.com/belstd/core/stberr"

// ErrShortInput is returned when an input is shorter than the minimum a
// mode requires (e.g. ECB/CBC ciphertext stealing needs at least one full
// block plus a nonempty tail).
var ErrShortInput = stberr.New(stberr.BadInput, "belt: input too short for this mode")

// ECBEncrypt encrypts x in ECB mode, using ciphertext stealing on the
// final two blocks when len(x) is not a multiple of BlockSize. len(x)
// must be >= BlockSize. The result has the same length as x.
func ECBEncrypt(ek ExpandedKey, x []byte) ([]byte, error) {
	if len(x) < BlockSize {
		return nil, ErrShortInput
	}
	out := make([]byte, len(x))
	full := len(x) / BlockSize
	rem := len(x) % BlockSize

	if rem == 0 {
		for i := 0; i < full; i++ {
			var blk Block
			copy(blk[:], x[i*BlockSize:])
			EncryptBlock(ek, &blk)
			copy(out[i*BlockSize:], blk[:])
		}
		return out, nil
	}

	// Encrypt all blocks before the penultimate one normally.
	for i := 0; i < full-1; i++ {
		var blk Block
		copy(blk[:], x[i*BlockSize:])
		EncryptBlock(ek, &blk)
		copy(out[i*BlockSize:], blk[:])
	}

	penult := x[(full-1)*BlockSize : full*BlockSize]
	tail := x[full*BlockSize:]
	cLast, cPenult := ctsEncryptTail(ek, penult, tail)

	copy(out[(full-1)*BlockSize:], cPenult[:])
	copy(out[full*BlockSize:], cLast)
	return out, nil
}

// ECBDecrypt is the inverse of ECBEncrypt.
func ECBDecrypt(ek ExpandedKey, c []byte) ([]byte, error) {
	if len(c) < BlockSize {
		return nil, ErrShortInput
	}
	out := make([]byte, len(c))
	full := len(c) / BlockSize
	rem := len(c) % BlockSize

	if rem == 0 {
		for i := 0; i < full; i++ {
			var blk Block
			copy(blk[:], c[i*BlockSize:])
			DecryptBlock(ek, &blk)
			copy(out[i*BlockSize:], blk[:])
		}
		return out, nil
	}

	for i := 0; i < full-1; i++ {
		var blk Block
		copy(blk[:], c[i*BlockSize:])
		DecryptBlock(ek, &blk)
		copy(out[i*BlockSize:], blk[:])
	}

	cPenult := c[(full-1)*BlockSize : full*BlockSize]
	cLast := c[full*BlockSize:]
	pPenult, pLast := ctsDecryptTail(ek, cPenult, cLast)

	copy(out[(full-1)*BlockSize:], pPenult[:])
	copy(out[full*BlockSize:], pLast)
	return out, nil
}

// ctsEncryptTail implements ECB's ciphertext-stealing step (CBC uses its
// own cbcCTSEncryptTail): given the last full plaintext block and the short (r-octet) tail
// that follows it, returns (cLast, cPenult) where cLast is r octets and
// cPenult is a full block, with the roles of "penultimate" and "last"
// swapped in the ciphertext so the short tail need not be padded.
func ctsEncryptTail(ek ExpandedKey, penult, tail []byte) (cLast, cPenult []byte) {
	r := len(tail)
	var d Block
	copy(d[:], penult)
	EncryptBlock(ek, &d)

	cLast = append([]byte(nil), d[:r]...)

	var stolen Block
	copy(stolen[:r], tail)
	copy(stolen[r:], d[r:])
	EncryptBlock(ek, &stolen)
	cPenult = append([]byte(nil), stolen[:]...)
	return cLast, cPenult
}

// ctsDecryptTail is the inverse of ctsEncryptTail.
func ctsDecryptTail(ek ExpandedKey, cPenult, cLast []byte) (pPenult, pLast []byte) {
	r := len(cLast)
	var d Block
	copy(d[:], cPenult)
	DecryptBlock(ek, &d)

	pLast = append([]byte(nil), d[:r]...)

	var reconstructed Block
	copy(reconstructed[:r], cLast)
	copy(reconstructed[r:], d[r:])
	DecryptBlock(ek, &reconstructed)
	pPenult = append([]byte(nil), reconstructed[:]...)
	return pPenult, pLast
}
