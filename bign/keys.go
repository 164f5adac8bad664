// Copyright (c) 2025 The Belstd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package bign

import (
	"io"

	"github.com/belstd/core/ec"
	"github.com/belstd/core/stberr"
	"github.com/belstd/core/ww"
)

var (
	// ErrBadPrivateKey is returned when a decoded private-key scalar is
	// out of range.
	ErrBadPrivateKey = stberr.New(stberr.BadPrivkey, "bign: private key out of range")
)

// PrivateKey is a Bign private scalar d in [1, q).
type PrivateKey struct {
	Params *Params
	D      ww.Int
}

// PublicKey is a Bign public point Q = d*G.
type PublicKey struct {
	Params *Params
	Q      ec.Point
}

// GenerateKey samples d uniformly from [1, q) using rng and derives
// Q = d*G.
func GenerateKey(params *Params, rng io.Reader) (*PrivateKey, *PublicKey, error) {
	q := params.Curve.N
	var d ww.Int
	for {
		cand, err := ww.RandBelow(rng, q)
		if err != nil {
			return nil, nil, err
		}
		if !cand.IsZero() {
			d = cand
			break
		}
	}
	q2 := params.Curve.ScalarMul(d, params.Curve.BasePoint())
	return &PrivateKey{Params: params, D: d}, &PublicKey{Params: params, Q: q2}, nil
}

// PrivateKeyFromBytes decodes a little-endian private-key octet string
// (2*L/8 octets) into a scalar.
func PrivateKeyFromBytes(params *Params, b []byte) (*PrivateKey, error) {
	if len(b) != params.elemLen() {
		return nil, ErrBadPrivateKey
	}
	d := ww.FromBytes(b)
	if d.IsZero() || d.Cmp(params.Curve.N) >= 0 {
		return nil, ErrBadPrivateKey
	}
	return &PrivateKey{Params: params, D: d}, nil
}

// Bytes encodes the private scalar as a little-endian octet string.
func (priv *PrivateKey) Bytes() []byte { return priv.D.Bytes() }

// PublicKeyFromBytes decodes a concatenated (x, y) public-key octet
// string (4*L/8 octets total).
func PublicKeyFromBytes(params *Params, b []byte) (*PublicKey, error) {
	n := params.elemLen()
	if len(b) != 2*n {
		return nil, ec.ErrNotOnCurve
	}
	x := ww.FromBytes(b[:n])
	y := ww.FromBytes(b[n:])
	q := ec.Point{X: x, Y: y}
	if err := params.Curve.Validate(q); err != nil {
		return nil, err
	}
	return &PublicKey{Params: params, Q: q}, nil
}

// Bytes encodes the public point as concatenated (x, y) octet strings.
func (pub *PublicKey) Bytes() []byte {
	return append(append([]byte(nil), pub.Q.X.Bytes()...), pub.Q.Y.Bytes()...)
}

// Validate checks that pub lies on the curve and has the expected order.
func (pub *PublicKey) Validate() error {
	if err := pub.Params.Curve.Validate(pub.Q); err != nil {
		logger.Debug().Err(err).Int("level", pub.Params.L).Msg("bign: public key failed validation")
		return err
	}
	return nil
}

// Wipe zeroizes the private scalar.
func (priv *PrivateKey) Wipe() { priv.D.Wipe() }
