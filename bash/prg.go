// Copyright (c) 2025 The Belstd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package bash

// prgRate is the bashPrg sponge rate in octets (1024-bit rate, 512-bit
// capacity — the control octet lives at buf[prgRate], the first octet
// of the capacity).
const prgRate = 128

// prgType identifies the logical role of the data an operation just
// finished committing.
type prgType byte

const (
	prgNull prgType = 0x00
	prgKey  prgType = 0x01
	prgData prgType = 0x02
	prgText prgType = 0x03
	prgOut  prgType = 0x04
)

// Prg is a bashPrg programmable-sponge context. Commit of the control
// octet for a finished operation is deferred until either the rate
// buffer fills mid-operation or a new operation of a different type
// begins — never immediately at the call that logically ended the
// operation — per the reference construction's lazy-commit boundary.
// Not safe for concurrent use.
type Prg struct {
	state       State
	pos         int
	pendType    prgType
	phase       byte // 0x00 or 0x80, toggled on every commit
	havePending bool
}

// NewPrg starts a fresh bashPrg context with a zero state.
func NewPrg() *Prg { return &Prg{} }

// Start resets the context and absorbs key under the KEY type.
func (p *Prg) Start(key []byte) {
	p.state = State{}
	p.pos = 0
	p.phase = 0
	p.havePending = false
	p.absorb(key, prgKey)
}

// beginOp commits a still-pending operation of a different type before
// a new one begins.
func (p *Prg) beginOp(t prgType) {
	if p.havePending && p.pendType != t {
		p.flush(p.pendType)
	}
}

// flush XORs t's control octet (combined with the current phase bit)
// into the fixed control lane, permutes, and advances the phase.
func (p *Prg) flush(t prgType) {
	buf := p.state.Bytes()
	buf[prgRate] ^= byte(t) ^ p.phase
	p.state = FromBytes(buf)
	permute(&p.state)
	p.pos = 0
	p.phase ^= 0x80
	p.havePending = false
}

func (p *Prg) absorb(data []byte, t prgType) {
	p.beginOp(t)
	for len(data) > 0 {
		buf := p.state.Bytes()
		n := prgRate - p.pos
		if n > len(data) {
			n = len(data)
		}
		for i := 0; i < n; i++ {
			buf[p.pos+i] ^= data[i]
		}
		p.state = FromBytes(buf)
		p.pos += n
		data = data[n:]
		if p.pos == prgRate && len(data) > 0 {
			p.flush(t)
		}
	}
	p.pendType = t
	p.havePending = true
}

// Absorb absorbs data under the DATA type.
func (p *Prg) Absorb(data []byte) { p.absorb(data, prgData) }

// AbsorbKey absorbs key material under the KEY type.
func (p *Prg) AbsorbKey(key []byte) { p.absorb(key, prgKey) }

// AbsorbText absorbs associated text under the TEXT type.
func (p *Prg) AbsorbText(text []byte) { p.absorb(text, prgText) }

// Squeeze draws n octets of output under the OUT type.
func (p *Prg) Squeeze(n int) []byte {
	p.beginOp(prgOut)
	out := make([]byte, 0, n)
	buf := p.state.Bytes()
	for len(out) < n {
		if p.pos == prgRate {
			p.flush(prgOut)
			buf = p.state.Bytes()
		}
		take := prgRate - p.pos
		if take > n-len(out) {
			take = n - len(out)
		}
		out = append(out, buf[p.pos:p.pos+take]...)
		p.pos += take
	}
	p.pendType = prgOut
	p.havePending = true
	return out
}

// Encr encrypts pt in duplex mode: each octet is XORed with the next
// rate-lane octet to form ciphertext, and that ciphertext octet (not
// the plaintext) is folded back into the state.
func (p *Prg) Encr(pt []byte) []byte {
	p.beginOp(prgData)
	out := make([]byte, len(pt))
	buf := p.state.Bytes()
	for i := range pt {
		if p.pos == prgRate {
			p.flush(prgData)
			buf = p.state.Bytes()
		}
		ct := pt[i] ^ buf[p.pos]
		buf[p.pos] = ct
		out[i] = ct
		p.pos++
	}
	p.state = FromBytes(buf)
	p.pendType = prgData
	p.havePending = true
	return out
}

// Decr is the dual of Encr: ciphertext octets are folded back into the
// state directly, with plaintext recovered by XOR against the rate lane.
func (p *Prg) Decr(ct []byte) []byte {
	p.beginOp(prgData)
	out := make([]byte, len(ct))
	buf := p.state.Bytes()
	for i := range ct {
		if p.pos == prgRate {
			p.flush(prgData)
			buf = p.state.Bytes()
		}
		pt := ct[i] ^ buf[p.pos]
		buf[p.pos] = ct[i]
		out[i] = pt
		p.pos++
	}
	p.state = FromBytes(buf)
	p.pendType = prgData
	p.havePending = true
	return out
}

// Ratchet permutes the state and XORs the pre-permutation state into
// the result, a one-way boundary that makes the state prior to the
// ratchet unrecoverable from the state after it.
func (p *Prg) Ratchet() {
	p.beginOp(prgNull)
	pre := p.state
	permute(&p.state)
	for i := range p.state {
		p.state[i] ^= pre[i]
	}
	p.pos = 0
	p.havePending = false
}
