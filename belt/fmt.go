// Copyright (c) 2025 The Belstd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package belt

import (
	"math/big"

	"github.com/belstd/core/stberr"
)

// FMTRounds is the minimum Feistel round count for format-preserving
// encryption.
const FMTRounds = 12

var (
	// ErrBadFMTInput is returned when the modulus or digit sequence given
	// to FMTEncrypt/FMTDecrypt is invalid.
	ErrBadFMTInput = stberr.New(stberr.BadInput, "belt: fmt modulus must be > 1 and the sequence must have >= 2 elements")
)

// FMTEncrypt performs format-preserving encryption of a sequence of
// integers, each in [0, m), via an alternating Feistel network of
// FMTRounds rounds over two fixed-length halves A (the low half) and B
// (the high half); the round function is Belt-MAC keyed by ek and
// tweaked by the round index and a caller-supplied tweak. The output
// sequence has the same length and per-element range as the input.
func FMTEncrypt(ek ExpandedKey, m uint64, tweak []byte, digits []uint64) ([]uint64, error) {
	a, b, err := fmtSplit(m, digits)
	if err != nil {
		return nil, err
	}
	modA := fmtModulus(m, len(a))
	modB := fmtModulus(m, len(b))

	for i := 0; i < FMTRounds; i++ {
		if i%2 == 0 {
			f := fmtRoundFunc(ek, i, tweak, b, modA)
			sum := fmtAddMod(fmtNumeral(m, a), f, modA)
			a = fmtDigits(sum, m, len(a))
		} else {
			f := fmtRoundFunc(ek, i, tweak, a, modB)
			sum := fmtAddMod(fmtNumeral(m, b), f, modB)
			b = fmtDigits(sum, m, len(b))
		}
	}
	return append(a, b...), nil
}

// FMTDecrypt is the inverse of FMTEncrypt.
func FMTDecrypt(ek ExpandedKey, m uint64, tweak []byte, digits []uint64) ([]uint64, error) {
	a, b, err := fmtSplit(m, digits)
	if err != nil {
		return nil, err
	}
	modA := fmtModulus(m, len(a))
	modB := fmtModulus(m, len(b))

	for i := FMTRounds - 1; i >= 0; i-- {
		if i%2 == 0 {
			f := fmtRoundFunc(ek, i, tweak, b, modA)
			diff := fmtSubMod(fmtNumeral(m, a), f, modA)
			a = fmtDigits(diff, m, len(a))
		} else {
			f := fmtRoundFunc(ek, i, tweak, a, modB)
			diff := fmtSubMod(fmtNumeral(m, b), f, modB)
			b = fmtDigits(diff, m, len(b))
		}
	}
	return append(a, b...), nil
}

func fmtSplit(m uint64, digits []uint64) (a, b []uint64, err error) {
	if m < 2 || len(digits) < 2 {
		return nil, nil, ErrBadFMTInput
	}
	for _, d := range digits {
		if d >= m {
			return nil, nil, ErrBadFMTInput
		}
	}
	mid := len(digits) / 2
	a = append([]uint64(nil), digits[:mid]...)
	b = append([]uint64(nil), digits[mid:]...)
	return a, b, nil
}

func fmtModulus(m uint64, n int) *big.Int {
	mod := big.NewInt(1)
	base := big.NewInt(int64(m))
	for i := 0; i < n; i++ {
		mod.Mul(mod, base)
	}
	return mod
}

func fmtNumeral(m uint64, digits []uint64) *big.Int {
	n := big.NewInt(0)
	base := big.NewInt(int64(m))
	for _, d := range digits {
		n.Mul(n, base)
		n.Add(n, big.NewInt(int64(d)))
	}
	return n
}

func fmtDigits(n *big.Int, m uint64, length int) []uint64 {
	out := make([]uint64, length)
	base := big.NewInt(int64(m))
	rem := new(big.Int).Set(n)
	for i := length - 1; i >= 0; i-- {
		q, r := new(big.Int), new(big.Int)
		q.DivMod(rem, base, r)
		out[i] = r.Uint64()
		rem = q
	}
	return out
}

func fmtAddMod(a, b, mod *big.Int) *big.Int {
	return new(big.Int).Mod(new(big.Int).Add(a, b), mod)
}

func fmtSubMod(a, b, mod *big.Int) *big.Int {
	return new(big.Int).Mod(new(big.Int).Sub(a, b), mod)
}

// fmtRoundFunc derives the Feistel round value from the opposite half,
// reduced modulo mod: Belt-MAC(ek, round || tweak || encoded half)
// interpreted as a big-endian integer.
func fmtRoundFunc(ek ExpandedKey, round int, tweak []byte, half []uint64, mod *big.Int) *big.Int {
	buf := make([]byte, 0, 4+len(tweak)+8*len(half))
	buf = append(buf, byte(round), byte(round>>8), byte(round>>16), byte(round>>24))
	buf = append(buf, tweak...)
	for _, d := range half {
		buf = append(buf,
			byte(d), byte(d>>8), byte(d>>16), byte(d>>24),
			byte(d>>32), byte(d>>40), byte(d>>48), byte(d>>56))
	}
	tag := MAC(ek, buf, MaxMACLen)
	n := new(big.Int).SetBytes(tag)
	return n.Mod(n, mod)
}
