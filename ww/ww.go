// Copyright (c) 2025 The Belstd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package ww implements the multi-precision integer layer (the "ww"/"zz"
// layer of the C2 component): fixed-width non-negative integers, modular
// arithmetic, Montgomery reduction and modular inversion, plus primality
// testing for parameter validation.
//
// An Int carries a declared bit length and always serializes to a fixed
// number of octets for that length, matching the little-endian
// big-integer data model the rest of this module relies on.
// Internally the heavy lifting (multiplication, division, modular
// exponentiation) is delegated to math/big, which is the standard
// correct-by-construction arbitrary-precision engine; fixed-modulus,
// curve-specific field-element types aren't a fit for primes that vary
// across the STB curve parameter sets, so this is a deliberate stdlib
// boundary, not a default.
package ww

import (
	"crypto/rand"
	"math/big"
)

// Int is a non-negative integer of a fixed declared bit length.
type Int struct {
	bitLen int
	v      *big.Int
}

// NewInt returns the zero value of the given declared bit length.
func NewInt(bitLen int) Int {
	return Int{bitLen: bitLen, v: new(big.Int)}
}

// FromBytes interprets b as a little-endian octet string and returns the
// corresponding Int with a declared bit length of 8*len(b).
func FromBytes(b []byte) Int {
	rev := reverseBytes(b)
	return Int{bitLen: 8 * len(b), v: new(big.Int).SetBytes(rev)}
}

// FromUint64 returns an Int of the given declared bit length with value x.
func FromUint64(x uint64, bitLen int) Int {
	return Int{bitLen: bitLen, v: new(big.Int).SetUint64(x)}
}

// BitLen returns the declared bit length (not the bit length of the value).
func (x Int) BitLen() int { return x.bitLen }

// Bytes returns the little-endian octet encoding of x, zero-padded (or, if
// the value overflows the declared length after an operation that grows
// it, truncated from the top) to ceil(bitLen/8) octets.
func (x Int) Bytes() []byte {
	n := (x.bitLen + 7) / 8
	be := x.v.Bytes()
	out := make([]byte, n)
	for i, j := 0, len(be)-1; j >= 0 && i < n; i, j = i+1, j-1 {
		out[i] = be[j]
	}
	return out
}

// IsZero reports whether x is zero.
func (x Int) IsZero() bool { return x.v.Sign() == 0 }

// Cmp compares x and y as unsigned integers.
func (x Int) Cmp(y Int) int { return x.v.Cmp(y.v) }

// Add returns x+y with the declared bit length of x.
func (x Int) Add(y Int) Int {
	return Int{bitLen: x.bitLen, v: new(big.Int).Add(x.v, y.v)}
}

// Sub returns x-y (undefined/panics if y > x) with the declared bit length of x.
func (x Int) Sub(y Int) Int {
	if x.v.Cmp(y.v) < 0 {
		panic("ww: Sub underflow")
	}
	return Int{bitLen: x.bitLen, v: new(big.Int).Sub(x.v, y.v)}
}

// Mul returns x*y with a declared bit length of x.bitLen+y.bitLen.
func (x Int) Mul(y Int) Int {
	return Int{bitLen: x.bitLen + y.bitLen, v: new(big.Int).Mul(x.v, y.v)}
}

// Mod returns x mod m, with the declared bit length of m.
func (x Int) Mod(m Int) Int {
	return Int{bitLen: m.bitLen, v: new(big.Int).Mod(x.v, m.v)}
}

// AddMod returns (x+y) mod m.
func (x Int) AddMod(y, m Int) Int { return x.Add(y).Mod(m) }

// SubMod returns (x-y) mod m (wrapping, unlike Sub).
func (x Int) SubMod(y, m Int) Int {
	d := new(big.Int).Sub(x.v, y.v)
	d.Mod(d, m.v)
	return Int{bitLen: m.bitLen, v: d}
}

// MulMod returns (x*y) mod m.
func (x Int) MulMod(y, m Int) Int {
	p := new(big.Int).Mul(x.v, y.v)
	p.Mod(p, m.v)
	return Int{bitLen: m.bitLen, v: p}
}

// ModInverse returns x^-1 mod m, or the zero Int if x has no inverse mod m.
func (x Int) ModInverse(m Int) Int {
	inv := new(big.Int).ModInverse(x.v, m.v)
	if inv == nil {
		return NewInt(m.bitLen)
	}
	return Int{bitLen: m.bitLen, v: inv}
}

// Exp returns x^e mod m.
func (x Int) Exp(e, m Int) Int {
	return Int{bitLen: m.bitLen, v: new(big.Int).Exp(x.v, e.v, m.v)}
}

// IsProbablePrime runs n rounds of Miller-Rabin (via math/big.ProbablyPrime,
// which additionally performs a Baillie-PSW check) against x.
func (x Int) IsProbablePrime(n int) bool { return x.v.ProbablyPrime(n) }

// RandBelow returns a uniformly random Int in [0, bound) read from the
// provided entropy source (typically a brng.Generator or crypto/rand.Reader).
func RandBelow(src interface{ Read([]byte) (int, error) }, bound Int) (Int, error) {
	n, err := rand.Int(readerOf(src), bound.v)
	if err != nil {
		return Int{}, err
	}
	return Int{bitLen: bound.bitLen, v: n}, nil
}

type reader struct{ r interface{ Read([]byte) (int, error) } }

func (w reader) Read(p []byte) (int, error) { return w.r.Read(p) }

func readerOf(src interface{ Read([]byte) (int, error) }) reader { return reader{r: src} }

// Montgomery holds the precomputed constants for Montgomery-form modular
// multiplication against a fixed odd modulus m.
type Montgomery struct {
	Mod  Int
	r    *big.Int // R = 2^bitLen mod m
	rInv *big.Int // R^-1 mod m
}

// NewMontgomery builds the Montgomery context for modulus m, whose
// declared bit length determines R = 2^bitLen.
func NewMontgomery(m Int) Montgomery {
	r := new(big.Int).Lsh(big.NewInt(1), uint(m.bitLen))
	r.Mod(r, m.v)
	rInv := new(big.Int).ModInverse(r, m.v)
	return Montgomery{Mod: m, r: r, rInv: rInv}
}

// ToMont converts x (ordinary residue) into Montgomery form: x*R mod m.
func (mc Montgomery) ToMont(x Int) Int {
	p := new(big.Int).Mul(x.v, mc.r)
	p.Mod(p, mc.Mod.v)
	return Int{bitLen: mc.Mod.bitLen, v: p}
}

// FromMont converts x out of Montgomery form: x*R^-1 mod m.
func (mc Montgomery) FromMont(x Int) Int {
	p := new(big.Int).Mul(x.v, mc.rInv)
	p.Mod(p, mc.Mod.v)
	return Int{bitLen: mc.Mod.bitLen, v: p}
}

// MontMul multiplies two Montgomery-form operands, returning a
// Montgomery-form result: (a*b)*R^-1 mod m.
func (mc Montgomery) MontMul(a, b Int) Int {
	p := new(big.Int).Mul(a.v, b.v)
	p.Mul(p, mc.rInv)
	p.Mod(p, mc.Mod.v)
	return Int{bitLen: mc.Mod.bitLen, v: p}
}

// Wipe zeroizes the backing storage of x. Callers holding sensitive
// scalars (private keys, ephemeral nonces) must call Wipe on every exit
// path, including error paths.
func (x *Int) Wipe() {
	if x.v == nil {
		return
	}
	bits := x.v.Bits()
	for i := range bits {
		bits[i] = 0
	}
	x.v.SetInt64(0)
}

func reverseBytes(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		out[len(b)-1-i] = c
	}
	return out
}
