// Copyright (c) 2025 The Belstd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package belt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWBLRoundTrip(t *testing.T) {
	ek := testKey()
	for _, n := range []int{32, 33, 47, 48, 100} {
		p := testPlaintext(n)
		c, err := WBLEncrypt(ek, p)
		require.NoError(t, err)
		require.Len(t, c, n)
		got, err := WBLDecrypt(ek, c)
		require.NoError(t, err)
		require.Equal(t, p, got, "n=%d", n)
	}
}

func TestWBLDiffusion(t *testing.T) {
	ek := testKey()
	p := testPlaintext(64)
	c1, err := WBLEncrypt(ek, p)
	require.NoError(t, err)

	p2 := append([]byte(nil), p...)
	p2[len(p2)-1] ^= 0x01 // flip a bit in the tail
	c2, err := WBLEncrypt(ek, p2)
	require.NoError(t, err)

	// Wide-block diffusion: a change anywhere should affect the head block too.
	require.NotEqual(t, c1[:BlockSize], c2[:BlockSize])
}

func TestWBLTooShort(t *testing.T) {
	_, err := WBLEncrypt(testKey(), make([]byte, 16))
	require.Error(t, err)
}

func TestBDERoundTrip(t *testing.T) {
	ek := testKey()
	var sector Block
	sector[0] = 0x2A
	p := testPlaintext(64)
	c, err := BDEEncrypt(ek, sector, p)
	require.NoError(t, err)
	got, err := BDEDecrypt(ek, sector, c)
	require.NoError(t, err)
	require.Equal(t, p, got)
}

func TestBDERejectsUnaligned(t *testing.T) {
	var sector Block
	_, err := BDEEncrypt(testKey(), sector, make([]byte, 17))
	require.Error(t, err)
}

func TestSDERoundTripDifferentIVsDiffer(t *testing.T) {
	ek := testKey()
	var sector, iv1, iv2 Block
	iv2[0] = 1
	p := testPlaintext(32)

	c1, err := SDEEncrypt(ek, sector, iv1, p)
	require.NoError(t, err)
	c2, err := SDEEncrypt(ek, sector, iv2, p)
	require.NoError(t, err)
	require.NotEqual(t, c1, c2)

	got, err := SDEDecrypt(ek, sector, iv1, c1)
	require.NoError(t, err)
	require.Equal(t, p, got)
}
