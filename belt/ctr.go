// Copyright (c) 2025 The Belstd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package belt

// CTRStream is a resumable CTR-mode keystream context: counter E(IV),
// E(IV+1), ... incremented mod 2^128, XOR'd with the input. Step may be
// called repeatedly with arbitrary chunk boundaries; the observable
// output is identical to a single call over the concatenation. Not safe
// for concurrent use.
type CTRStream struct {
	ek      ExpandedKey
	counter Block
	ks      Block
	pos     int // number of already-consumed keystream octets in ks
}

// NewCTRStream starts a CTR stream at the given 128-bit initial counter.
func NewCTRStream(ek ExpandedKey, iv Block) *CTRStream {
	return &CTRStream{ek: ek, counter: iv, pos: BlockSize}
}

// Step XORs src into dst (which may alias src) using the next len(src)
// keystream octets, advancing the stream.
func (s *CTRStream) Step(dst, src []byte) {
	off := 0
	for off < len(src) {
		if s.pos == BlockSize {
			s.ks = s.counter
			EncryptBlock(s.ek, &s.ks)
			incCounter(&s.counter)
			s.pos = 0
		}
		n := BlockSize - s.pos
		if rem := len(src) - off; rem < n {
			n = rem
		}
		xorBytes(dst[off:off+n], src[off:off+n], s.ks[s.pos:s.pos+n])
		s.pos += n
		off += n
	}
}

// Wipe zeroizes the stream's sensitive state.
func (s *CTRStream) Wipe() {
	s.counter = Block{}
	s.ks = Block{}
	s.pos = BlockSize
}

// CTREncrypt is a one-shot convenience wrapper: CTR is its own inverse, so
// the same function serves for decryption.
func CTREncrypt(ek ExpandedKey, iv Block, x []byte) []byte {
	s := NewCTRStream(ek, iv)
	out := make([]byte, len(x))
	s.Step(out, x)
	return out
}

// CTRDecrypt is an alias for CTREncrypt (CTR mode is symmetric).
func CTRDecrypt(ek ExpandedKey, iv Block, c []byte) []byte {
	return CTREncrypt(ek, iv, c)
}
