// Copyright (c) 2025 The Belstd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package brng implements the Brng deterministic random generator
// (STB 34.101.47): a Belt-encrypted counter mixed with feedback from
// its own prior output, seeded from a 256-bit key and a 256-bit IV.
package brng

import "github.com/belstd/core/belt"

// Generator is a Brng context: not safe for concurrent use, and its
// output is fully determined by the (key, iv) it was seeded with —
// the same seed always produces the same stream.
type Generator struct {
	ek       belt.ExpandedKey
	counter  belt.Block
	feedback belt.Block
	buf      belt.Block
	pos      int
}

// New seeds a Brng generator from a 256-bit key and a 256-bit IV: the
// IV's first half seeds the counter, its second half the initial
// feedback block.
func New(key, iv [32]byte) (*Generator, error) {
	ek, err := belt.ExpandKey(key[:])
	if err != nil {
		return nil, err
	}
	g := &Generator{ek: ek, pos: belt.BlockSize}
	copy(g.counter[:], iv[:16])
	copy(g.feedback[:], iv[16:32])
	return g, nil
}

// Rekey reseeds the generator in place, as required after certain
// ceremonies (e.g. Bels share generation) that must not reuse a stream.
func (g *Generator) Rekey(key, iv [32]byte) error {
	ek, err := belt.ExpandKey(key[:])
	if err != nil {
		return err
	}
	g.ek = ek
	g.counter = belt.Block{}
	g.feedback = belt.Block{}
	copy(g.counter[:], iv[:16])
	copy(g.feedback[:], iv[16:32])
	g.buf = belt.Block{}
	g.pos = belt.BlockSize
	return nil
}

// Read fills p with generator output, implementing io.Reader. Each
// 128-bit block is E_k(counter XOR feedback); the produced block
// becomes both the output and the next round's feedback before the
// counter is incremented.
func (g *Generator) Read(p []byte) (int, error) {
	off := 0
	for off < len(p) {
		if g.pos == belt.BlockSize {
			var block belt.Block
			for i := range block {
				block[i] = g.counter[i] ^ g.feedback[i]
			}
			belt.EncryptBlock(g.ek, &block)
			g.feedback = block
			g.buf = block
			incBlock(&g.counter)
			g.pos = 0
		}
		n := belt.BlockSize - g.pos
		if rem := len(p) - off; rem < n {
			n = rem
		}
		copy(p[off:off+n], g.buf[g.pos:g.pos+n])
		g.pos += n
		off += n
	}
	return len(p), nil
}

// Wipe zeroizes the generator's sensitive state.
func (g *Generator) Wipe() {
	g.counter = belt.Block{}
	g.feedback = belt.Block{}
	g.buf = belt.Block{}
	g.pos = belt.BlockSize
}

// incBlock increments a 128-bit little-endian counter by 1 modulo 2^128.
func incBlock(b *belt.Block) {
	for i := range b {
		b[i]++
		if b[i] != 0 {
			return
		}
	}
}
