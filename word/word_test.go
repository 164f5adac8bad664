// Copyright (c) 2025 The Belstd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package word

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRotRoundTrip(t *testing.T) {
	x := uint32(0x12345678)
	require.Equal(t, x, RotLo32(RotHi32(x, 7), 7))

	y := uint64(0x0123456789ABCDEF)
	require.Equal(t, y, RotLo64(RotHi64(y, 23), 23))
}

func TestRevInvolution(t *testing.T) {
	require.Equal(t, byte(0xB1), Rev8(0x8D))
	require.Equal(t, uint32(0x12345678), Rev32(Rev32(0x12345678)))
	require.Equal(t, uint64(0x1122334455667788), Rev64(Rev64(0x1122334455667788)))
}

func TestWeightParity(t *testing.T) {
	require.Equal(t, 4, Weight32(0x0F))
	require.Equal(t, uint32(0), Parity32(0x0F))
	require.Equal(t, uint32(1), Parity32(0x07))
}

func TestCTZCLZ(t *testing.T) {
	require.Equal(t, 4, CTZ32(0x10))
	require.Equal(t, 32, CTZ32(0))
	require.Equal(t, 27, CLZ32(0x10))
	require.Equal(t, 64, CLZ64(0))
}

func TestShuffleDeshuffleRoundTrip(t *testing.T) {
	x := uint32(0xDEADBEEF)
	require.Equal(t, x, Deshuffle32(Shuffle32(x)))
}

func TestNegInv32(t *testing.T) {
	x := uint32(0xC0FFEE01)
	mu := NegInv32(x)
	require.Equal(t, uint32(0xFFFFFFFF), x*mu+1)
}

func TestLoadStoreLERoundTrip(t *testing.T) {
	b := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	require.Equal(t, uint32(0x04030201), LoadLE32(b))
	require.Equal(t, uint64(0x0807060504030201), LoadLE64(b))

	out := make([]byte, 8)
	StoreLE64(out, LoadLE64(b))
	require.Equal(t, b, out)
}
