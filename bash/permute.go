// Copyright (c) 2025 The Belstd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package bash implements the Bash sponge permutation (STB 34.101.77)
// and its hash, programmable-sponge, and authenticated-encryption
// layers, built on the 1536-bit permutation in this file.
package bash

import "github.com/belstd/core/word"

// StateWords is the number of 64-bit lanes in the Bash state (1536 bits).
const StateWords = 24

// rounds is the number of S/P/C rounds the permutation applies.
const rounds = 24

// State is the 1536-bit Bash permutation state, viewed as a 3x8 matrix
// of 64-bit lanes in row-major order: State[8*i+j] is row i, column j.
type State [StateWords]uint64

// FromBytes loads a little-endian 192-octet buffer into a State.
func FromBytes(b [192]byte) State {
	var s State
	for i := 0; i < StateWords; i++ {
		s[i] = word.LoadLE64(b[8*i : 8*i+8])
	}
	return s
}

// Bytes stores a State as a little-endian 192-octet buffer.
func (s State) Bytes() [192]byte {
	var b [192]byte
	for i := 0; i < StateWords; i++ {
		word.StoreLE64(b[8*i:8*i+8], s[i])
	}
	return b
}

// colPerm reorders the 8 columns after each row's cyclic shift; a fixed
// permutation of 0..7 used identically every round.
var colPerm = [8]int{5, 2, 7, 0, 4, 1, 6, 3}

// rowShift is the per-row cyclic shift applied to the 8 columns of that
// row before the column permutation, varying the row's column strictly
// per the "cycles rows" step.
var rowShift = [3]int{0, 1, 2}

// roundConst holds the 24 round constants, a Galois LFSR sequence
// seeded at roundConst[0] = 0x3BF5080AC8BA94B1 and advanced by
// lfsrDouble between rounds.
var roundConst = buildRoundConsts()

func buildRoundConsts() [rounds]uint64 {
	var rc [rounds]uint64
	rc[0] = 0x3BF5080AC8BA94B1
	for i := 1; i < rounds; i++ {
		rc[i] = lfsrDouble(rc[i-1])
	}
	return rc
}

// lfsrDouble advances the round-constant Galois LFSR by one step:
// a left shift with feedback polynomial x^64+x^4+x^3+x+1 (0x1B) folded
// in when the vacated top bit was set, the 64-bit analogue of the
// doubling step belt's GF(2^128) tweak schedule uses.
func lfsrDouble(x uint64) uint64 {
	top := x >> 63
	x <<= 1
	if top == 1 {
		x ^= 0x1B
	}
	return x
}

// sBox is the nonlinear three-word column substitution: each round
// applies it independently to all 8 columns, feeding the outputs
// through a rotation chain (8/53/14/1 bit positions) around an AND-based
// nonlinearity.
func sBox(w0, w1, w2 uint64) (uint64, uint64, uint64) {
	w0 ^= w1 & w2
	t := w2 ^ word.RotHi64(w0, 8)
	w2n := w1 ^ word.RotHi64(t, 53)
	w1n := w0 ^ word.RotHi64(w2n, 14)
	w0n := t ^ word.RotHi64(w1n, 1)
	return w0n, w1n, w2n
}

// permute applies the 24-round S/P/C Bash permutation to s in place.
func permute(s *State) {
	for r := 0; r < rounds; r++ {
		sBoxLayer(s)
		pLayer(s)
		s[0] ^= roundConst[r]
	}
}

func sBoxLayer(s *State) {
	for j := 0; j < 8; j++ {
		w0, w1, w2 := s[j], s[8+j], s[16+j]
		s[j], s[8+j], s[16+j] = sBox(w0, w1, w2)
	}
}

func pLayer(s *State) {
	var shifted State
	for i := 0; i < 3; i++ {
		for j := 0; j < 8; j++ {
			shifted[8*i+j] = s[8*i+(j+rowShift[i])%8]
		}
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 8; j++ {
			s[8*i+colPerm[j]] = shifted[8*i+j]
		}
	}
}

// Permute applies the public Bash permutation to s and returns the
// result, leaving s unmodified.
func Permute(s State) State {
	out := s
	permute(&out)
	return out
}

// invertSBox is the exact inverse of sBox: given the three outputs it
// recovers the three inputs by undoing the rotation chain from the last
// step back to the first.
func invertSBox(w0n, w1n, w2n uint64) (w0, w1, w2 uint64) {
	t := w0n ^ word.RotHi64(w1n, 1)
	w0p := w1n ^ word.RotHi64(w2n, 14)
	w2 = t ^ word.RotHi64(w0p, 8)
	w1 = w2n ^ word.RotHi64(t, 53)
	w0 = w0p ^ (w1 & w2)
	return
}

func invertSBoxLayer(s *State) {
	for j := 0; j < 8; j++ {
		w0n, w1n, w2n := s[j], s[8+j], s[16+j]
		s[j], s[8+j], s[16+j] = invertSBox(w0n, w1n, w2n)
	}
}

// invertPLayer is the exact inverse of pLayer: it undoes the column
// permutation (itself a bijection, so reading it forwards suffices)
// and then the per-row cyclic shift, in reverse order.
func invertPLayer(s *State) {
	var shifted State
	for i := 0; i < 3; i++ {
		for j := 0; j < 8; j++ {
			shifted[8*i+j] = s[8*i+colPerm[j]]
		}
	}
	for i := 0; i < 3; i++ {
		for m := 0; m < 8; m++ {
			src := ((m-rowShift[i])%8 + 8) % 8
			s[8*i+m] = shifted[8*i+src]
		}
	}
}

// invertPermute is the exact inverse of permute, undoing each round's
// S/P/C steps in reverse order. It exists purely to let tests confirm
// Permute is a bijection; no production code path calls it.
func invertPermute(s *State) {
	for r := rounds - 1; r >= 0; r-- {
		s[0] ^= roundConst[r]
		invertPLayer(s)
		invertSBoxLayer(s)
	}
}
