// Copyright (c) 2025 The Belstd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package belt

// MaxMACLen is the default (and maximum) MAC tag length in octets.
const MaxMACLen = 8

// MACContext is a CMAC-style one-key MAC context over Belt: a CBC-MAC
// with the final block masked by a subkey derived from encrypting the
// zero block, doubled in GF(2^128), exactly as CMAC masks its final
// block. Start/Write/Sum follow the module's Start/Step/Finish streaming
// contract; Write may be called repeatedly with arbitrary chunk
// boundaries.
type MACContext struct {
	ek    ExpandedKey
	chain Block
	buf   []byte // buffered, not-yet-processed octets (always < BlockSize after a full Write unless this is the tail)
}

// NewMAC starts a new MAC context under the given expanded key.
func NewMAC(ek ExpandedKey) *MACContext {
	return &MACContext{ek: ek}
}

// Write absorbs more input. It never returns an error.
func (m *MACContext) Write(p []byte) {
	m.buf = append(m.buf, p...)
	for len(m.buf) > BlockSize {
		var blk Block
		copy(blk[:], m.buf[:BlockSize])
		xorBytes(blk[:], blk[:], m.chain[:])
		EncryptBlock(m.ek, &blk)
		m.chain = blk
		m.buf = m.buf[BlockSize:]
	}
}

// Sum finalizes the MAC and returns a tag truncated to tagLen octets
// (1 <= tagLen <= MaxMACLen). The context is consumed; a new context must
// be started for further MACs.
func (m *MACContext) Sum(tagLen int) []byte {
	if tagLen < 1 || tagLen > MaxMACLen {
		tagLen = MaxMACLen
	}
	var zero Block
	k1 := zero
	EncryptBlock(m.ek, &k1)
	k1 = gfDouble(k1)

	var last Block
	if len(m.buf) == BlockSize {
		copy(last[:], m.buf)
		xorBytes(last[:], last[:], k1[:])
	} else {
		k2 := gfDouble(k1)
		copy(last[:], m.buf)
		last[len(m.buf)] = 0x80
		xorBytes(last[:], last[:], k2[:])
	}
	xorBytes(last[:], last[:], m.chain[:])
	EncryptBlock(m.ek, &last)
	m.Wipe()
	return last[:tagLen]
}

// Wipe zeroizes the context's sensitive state.
func (m *MACContext) Wipe() {
	m.chain = Block{}
	for i := range m.buf {
		m.buf[i] = 0
	}
	m.buf = nil
}

// MAC computes the Belt MAC of msg in one call, truncated to tagLen octets.
func MAC(ek ExpandedKey, msg []byte, tagLen int) []byte {
	ctx := NewMAC(ek)
	ctx.Write(msg)
	return ctx.Sum(tagLen)
}
