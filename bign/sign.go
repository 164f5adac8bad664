// Copyright (c) 2025 The Belstd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package bign

import (
	"crypto/rand"

	"github.com/belstd/core/ww"
)

// Sign computes a Bign signature over the precomputed message digest H
// (the caller hashes the message with the algorithm bound to priv's
// security level; see hashFor). If t is non-nil, the nonce k is derived
// deterministically as hash(OID || H || t) mod q; otherwise k is drawn
// uniformly from crypto/rand. The returned signature is s0 || s1,
// params.SigLen() octets total.
func Sign(priv *PrivateKey, H, t []byte) ([]byte, error) {
	params := priv.Params
	q := params.Curve.N

	var k ww.Int
	if t != nil {
		data := make([]byte, 0, len(params.HashOID)+len(H)+len(t))
		data = append(data, params.HashOID...)
		data = append(data, H...)
		data = append(data, t...)
		k = ww.FromBytes(hashFor(params, data)).Mod(q)
		if k.IsZero() {
			k = ww.FromUint64(1, q.BitLen())
		}
	} else {
		var err error
		k, err = ww.RandBelow(rand.Reader, q)
		if err != nil {
			return nil, err
		}
		if k.IsZero() {
			k = ww.FromUint64(1, q.BitLen())
		}
	}

	r := params.Curve.ScalarMul(k, params.Curve.BasePoint())
	rx := r.X.Mod(q)

	s0Input := make([]byte, 0, len(params.HashOID)+params.elemLen()+len(H))
	s0Input = append(s0Input, params.HashOID...)
	s0Input = append(s0Input, rx.Bytes()...)
	s0Input = append(s0Input, H...)
	s0Digest := hashFor(params, s0Input)
	s0Bytes := s0Digest[:params.s0Len()]
	s0 := ww.FromBytes(s0Bytes)

	hInt := ww.FromBytes(H).Mod(q)
	s1 := k.SubMod(s0.MulMod(priv.D, q), q).SubMod(hInt, q)

	sig := make([]byte, 0, params.SigLen())
	sig = append(sig, s0Bytes...)
	sig = append(sig, s1.Bytes()...)
	return sig, nil
}
