// Copyright (c) 2025 The Belstd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package ww

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBytesRoundTrip(t *testing.T) {
	b := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	x := FromBytes(b)
	require.Equal(t, b, x.Bytes())
}

func TestModArith(t *testing.T) {
	m := FromUint64(97, 32)
	a := FromUint64(50, 32)
	b := FromUint64(60, 32)
	require.Equal(t, byte(13), a.AddMod(b, m).Bytes()[0:1][0])
}

func TestModInverse(t *testing.T) {
	m := FromUint64(97, 32)
	a := FromUint64(5, 32)
	inv := a.ModInverse(m)
	require.True(t, a.MulMod(inv, m).Cmp(FromUint64(1, 32)) == 0)
}

func TestMontgomeryRoundTrip(t *testing.T) {
	m := FromUint64(97, 32)
	mc := NewMontgomery(m)
	a := FromUint64(11, 32)
	b := FromUint64(23, 32)

	aM := mc.ToMont(a)
	bM := mc.ToMont(b)
	prodM := mc.MontMul(aM, bM)
	prod := mc.FromMont(prodM)

	want := a.MulMod(b, m)
	require.Equal(t, 0, prod.Cmp(want))
}

func TestIsProbablePrime(t *testing.T) {
	require.True(t, FromUint64(104729, 32).IsProbablePrime(20))
	require.False(t, FromUint64(104730, 32).IsProbablePrime(20))
}

func TestWipe(t *testing.T) {
	x := FromUint64(0xDEADBEEF, 32)
	x.Wipe()
	require.True(t, x.IsZero())
}
