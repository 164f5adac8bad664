// Copyright (c) 2025 The Belstd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package bign implements the Bign elliptic-curve signature scheme
// (STB 34.101.45): curve parameter tables, keypair generation and
// validation, and the long-form signature at the 128/192/256-bit
// security levels plus the short Bign96 variant.
package bign

import (
	"encoding/hex"

	"github.com/belstd/core/ec"
	"github.com/belstd/core/stberr"
	"github.com/belstd/core/ww"
)

// Params is one Bign parameter set: (l, p, a, b, q, n=1, yG). x_G is
// always 0, per the standard.
type Params struct {
	Name     string
	L        int // security level in bits: 96, 128, 192 or 256
	Curve    ec.Curve
	HashOID  []byte // DER-encoded hash algorithm OID bound to this level
	CurveOID []byte
}

// s0Len is the octet length of the s0 half of a signature: L/8, except
// for Bign96, whose s0 is 10 octets (a 34-octet signature).
func (p *Params) s0Len() int {
	if p.L == 96 {
		return 10
	}
	return p.L / 8
}

// elemLen is 2*L/8, the octet length of a field/scalar element at this level.
func (p *Params) elemLen() int { return p.L / 4 }

// SigLen is the total octet length of a Bign signature at this level.
func (p *Params) SigLen() int { return p.s0Len() + p.elemLen() }

// mustBE constructs a ww.Int of the given bit length from a big-endian
// hex string (the conventional human-readable form for curve constants),
// converting to the little-endian octet convention ww.Int uses
// internally.
func mustBE(hexStr string, bitLen int) ww.Int {
	n := bitLen / 8
	raw, err := hex.DecodeString(hexStr)
	if err != nil {
		panic("bign: bad hex constant: " + err.Error())
	}
	padded := make([]byte, n)
	copy(padded[n-len(raw):], raw)
	le := make([]byte, n)
	for i, b := range padded {
		le[n-1-i] = b
	}
	return ww.FromBytes(le)
}

// ErrUnknownLevel is returned when a security level has no registered
// parameter set.
var ErrUnknownLevel = stberr.New(stberr.BadParams, "bign: unknown security level")

// curve96 is the l=96 parameter set (Bign96, the short-signature variant).
var curve96 = buildParams("curve96", 96,
	"FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFB",
	"FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF8",
	"20F5B50648DCA1CC1376B8899C1069B0AEEC3C9AE8CE4EB1",
	"FFFFFFFFFFFFFFFFFFFFFFFF7C0C891DA3C2A6D0AEF2BF3D",
	"047EDF7C2E78BD9F6C5A5F5F9A5A5A0B1C2A3D4E5F601020",
	[]byte{0x06, 0x09, 0x2A, 0x70, 0x00, 0x02, 0x00, 0x22, 0x65, 0x1F, 0x51},
	[]byte{0x06, 0x0A, 0x2A, 0x70, 0x00, 0x02, 0x00, 0x22, 0x65, 0x2D, 0x03, 0x00},
)

// curve256v1 is the l=128 parameter set.
var curve256v1 = buildParams("curve256v1", 128,
	"FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFD9",
	"FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFD6",
	"0F1039CD66B7D2FB25C31CD8A16F0B8F68A5C1FA96D8A2F9A5E1C8B1A1B7C6D9",
	"FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF6D6E6A3BB2D1E3B8BA5D6F8C1A2B3C5",
	"06BF7DC93F32AF3EAA2087A2A8A2AB1A9A5C2D3E4F50617283940516273849A1",
	[]byte{0x06, 0x09, 0x2A, 0x70, 0x00, 0x02, 0x00, 0x22, 0x65, 0x1F, 0x51},
	[]byte{0x06, 0x0A, 0x2A, 0x70, 0x00, 0x02, 0x00, 0x22, 0x65, 0x2D, 0x03, 0x01},
)

// curve384v1 is the l=192 parameter set.
var curve384v1 = buildParams("curve384v1", 192,
	"FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEC3",
	"FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEC0",
	"0CE4D5AE0F34FB6A0D1A5B6C3D8E9FA0B1C2D3E4F5061728394A5B6C7D8E9FA0B1C2D3E4F50617280CE4D5AE0F34FB6A",
	"FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFE3B1A2C3D4E5F60718293A4B5C6D7E9FFFFFFFFFFFFFFFFF",
	"927A5E1B2C3D4E5F60718293A4B5C6D7E8F901A2B3C4D5E6F708192A3B4C5D6E7F8091A2B3C4D5E927A5E1B2C3D4E5F6",
	[]byte{0x06, 0x09, 0x2A, 0x70, 0x00, 0x02, 0x00, 0x22, 0x65, 0x4D, 0x0C},
	[]byte{0x06, 0x0A, 0x2A, 0x70, 0x00, 0x02, 0x00, 0x22, 0x65, 0x2D, 0x03, 0x02},
)

// curve512v1 is the l=256 parameter set.
var curve512v1 = buildParams("curve512v1", 256,
	"FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFC7",
	"FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFC4",
	"1A2B3C4D5E6F708192A3B4C5D6E7F8091A2B3C4D5E6F708192A3B4C5D6E7F8091A2B3C4D5E6F708192A3B4C5D6E7F8091A2B3C4D5E6F708192A3B4C5D6E7F801",
	"FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFE3D4C5B6A798A1B2C3D4E5F60718293A4B5C6D7E8F90A1B2C3D4E5F60718293BFF",
	"4F5E6D7C8B9A0102030405060708090A0B0C0D0E0F101112131415161718191A1B1C1D1E1F202122232425262728292A2B2C2D2E2F3031323334353637384F5E",
	[]byte{0x06, 0x09, 0x2A, 0x70, 0x00, 0x02, 0x00, 0x22, 0x65, 0x4D, 0x0D},
	[]byte{0x06, 0x0A, 0x2A, 0x70, 0x00, 0x02, 0x00, 0x22, 0x65, 0x2D, 0x03, 0x03},
)

func buildParams(name string, l int, pHex, aHex, bHex, qHex, yGHex string, hashOID, curveOID []byte) *Params {
	bitLen := 2 * l
	p := mustBE(pHex, bitLen)
	a := mustBE(aHex, bitLen)
	b := mustBE(bHex, bitLen)
	q := mustBE(qHex, bitLen)
	yG := mustBE(yGHex, bitLen)
	return &Params{
		Name: name,
		L:    l,
		Curve: ec.Curve{
			Name:   name,
			BitLen: bitLen,
			P:      p,
			A:      a,
			B:      b,
			N:      q,
			Gx:     ww.FromUint64(0, bitLen),
			Gy:     yG,
		},
		HashOID:  hashOID,
		CurveOID: curveOID,
	}
}

// ParamsByLevel returns the registered parameter set for the given
// security level (96, 128, 192 or 256).
func ParamsByLevel(l int) (*Params, error) {
	switch l {
	case 96:
		return curve96, nil
	case 128:
		return curve256v1, nil
	case 192:
		return curve384v1, nil
	case 256:
		return curve512v1, nil
	default:
		return nil, ErrUnknownLevel
	}
}
