// Copyright (c) 2025 The Belstd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package belt

import "github.com/belstd/core/word"

// HashSize is the Belt-HASH digest length in octets.
const HashSize = 32

// hashBlockSize is the message block size Belt-HASH compresses at a time.
const hashBlockSize = 32

// hashStateSize is the width of the internal Merkle-Damgard accumulator.
const hashStateSize = 64

// HashContext is a Belt-HASH streaming context: Merkle-Damgard with a
// wide (64-octet) internal accumulator, compressed 32 octets of message
// at a time through four keyed Belt block-cipher calls in a
// Davies-Meyer-style feed-forward. Not safe for concurrent use.
type HashContext struct {
	state   [hashStateSize]byte
	buf     []byte
	written uint64
}

// NewHash starts a new Belt-HASH context.
func NewHash() *HashContext {
	return &HashContext{}
}

// Write absorbs more input.
func (h *HashContext) Write(p []byte) (int, error) {
	n := len(p)
	h.written += uint64(n)
	h.buf = append(h.buf, p...)
	for len(h.buf) >= hashBlockSize {
		var blk [hashBlockSize]byte
		copy(blk[:], h.buf[:hashBlockSize])
		h.state = compress(h.state, blk)
		h.buf = h.buf[hashBlockSize:]
	}
	return n, nil
}

// Sum finalizes the hash (padding and processing any remaining buffered
// octets) and returns the 32-octet digest. The context is consumed.
func (h *HashContext) Sum() [HashSize]byte {
	bitLen := h.written * 8
	pad := append([]byte(nil), h.buf...)
	pad = append(pad, 0x80)
	for len(pad)%hashBlockSize != hashBlockSize-8 {
		pad = append(pad, 0)
	}
	lenBytes := make([]byte, 8)
	word.StoreLE64(lenBytes, bitLen)
	pad = append(pad, lenBytes...)

	state := h.state
	for off := 0; off < len(pad); off += hashBlockSize {
		var blk [hashBlockSize]byte
		copy(blk[:], pad[off:off+hashBlockSize])
		state = compress(state, blk)
	}

	var digest [HashSize]byte
	copy(digest[:], state[:HashSize])
	h.Wipe()
	return digest
}

// Wipe zeroizes the context's sensitive state.
func (h *HashContext) Wipe() {
	h.state = [hashStateSize]byte{}
	for i := range h.buf {
		h.buf[i] = 0
	}
	h.buf = nil
}

// Hash computes Belt-HASH(msg) in one call.
func Hash(msg []byte) [HashSize]byte {
	h := NewHash()
	h.Write(msg)
	return h.Sum()
}

// compress is the Belt-HASH compression function: the 64-octet state is
// split into four 16-octet lanes and the 32-octet message block into two;
// two Belt keys are derived from the state lanes and each message lane is
// run through both keys in a Davies-Meyer feed-forward.
func compress(state [hashStateSize]byte, msg [hashBlockSize]byte) [hashStateSize]byte {
	var key1, key2 [32]byte
	copy(key1[:], state[0:32])
	copy(key2[:], state[32:64])
	ek1, _ := ExpandKey(key1[:])
	ek2, _ := ExpandKey(key2[:])

	var m0, m1 Block
	copy(m0[:], msg[0:16])
	copy(m1[:], msg[16:32])

	var s0, s1, s2, s3 Block
	copy(s0[:], state[0:16])
	copy(s1[:], state[16:32])
	copy(s2[:], state[32:48])
	copy(s3[:], state[48:64])

	e0 := m0
	EncryptBlock(ek1, &e0)
	xorBytes(e0[:], e0[:], m0[:])
	xorBytes(e0[:], e0[:], s0[:])

	e1 := m1
	EncryptBlock(ek1, &e1)
	xorBytes(e1[:], e1[:], m1[:])
	xorBytes(e1[:], e1[:], s1[:])

	var t2 Block
	xorBytes(t2[:], m0[:], s2[:])
	EncryptBlock(ek2, &t2)
	xorBytes(t2[:], t2[:], s2[:])

	var t3 Block
	xorBytes(t3[:], m1[:], s3[:])
	EncryptBlock(ek2, &t3)
	xorBytes(t3[:], t3[:], s3[:])

	var out [hashStateSize]byte
	copy(out[0:16], e0[:])
	copy(out[16:32], e1[:])
	copy(out[32:48], t2[:])
	copy(out[48:64], t3[:])
	return out
}
