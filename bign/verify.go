// Copyright (c) 2025 The Belstd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package bign

import (
	"crypto/subtle"

	"github.com/belstd/core/stberr"
	"github.com/belstd/core/ww"
)

// ErrBadSig is returned when a signature fails to parse or verify.
var ErrBadSig = stberr.New(stberr.BadSig, "bign: signature verification failed")

// Verify checks sig against the precomputed message digest H and pub,
// recomputing R' = (s1+H)*G + s0*Q and comparing the truncated hash
// against s0.
func Verify(pub *PublicKey, H, sig []byte) error {
	params := pub.Params
	if len(sig) != params.SigLen() {
		return ErrBadSig
	}
	q := params.Curve.N

	s0Bytes := sig[:params.s0Len()]
	s1Bytes := sig[params.s0Len():]
	s0 := ww.FromBytes(s0Bytes)
	s1 := ww.FromBytes(s1Bytes)

	hInt := ww.FromBytes(H).Mod(q)
	lhsScalar := s1.AddMod(hInt, q)

	p1 := params.Curve.ScalarMul(lhsScalar, params.Curve.BasePoint())
	p2 := params.Curve.ScalarMul(s0, pub.Q)
	rPrime := params.Curve.Add(p1, p2)
	if rPrime.Infinity {
		return ErrBadSig
	}
	rx := rPrime.X.Mod(q)

	s0Input := make([]byte, 0, len(params.HashOID)+params.elemLen()+len(H))
	s0Input = append(s0Input, params.HashOID...)
	s0Input = append(s0Input, rx.Bytes()...)
	s0Input = append(s0Input, H...)
	h := hashFor(params, s0Input)

	if subtle.ConstantTimeCompare(h[:params.s0Len()], s0Bytes) != 1 {
		return ErrBadSig
	}
	return nil
}
