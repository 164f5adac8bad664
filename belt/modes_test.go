// Copyright (c) 2025 The Belstd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package belt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testKey() ExpandedKey {
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i*11 + 3)
	}
	ek, _ := ExpandKey(key)
	return ek
}

func testPlaintext(n int) []byte {
	p := make([]byte, n)
	for i := range p {
		p[i] = byte(i * 17)
	}
	return p
}

func TestECBRoundTrip(t *testing.T) {
	ek := testKey()
	for _, n := range []int{16, 17, 31, 32, 33, 47} {
		p := testPlaintext(n)
		c, err := ECBEncrypt(ek, p)
		require.NoError(t, err)
		require.Len(t, c, n)
		got, err := ECBDecrypt(ek, c)
		require.NoError(t, err)
		require.Equal(t, p, got, "n=%d", n)
	}
}

func TestECBShortInput(t *testing.T) {
	_, err := ECBEncrypt(testKey(), make([]byte, 5))
	require.Error(t, err)
}

func TestCBCRoundTrip(t *testing.T) {
	ek := testKey()
	var iv Block
	for i := range iv {
		iv[i] = byte(i)
	}
	for _, n := range []int{16, 17, 31, 32, 48, 50} {
		p := testPlaintext(n)
		c, err := CBCEncrypt(ek, iv, p)
		require.NoError(t, err)
		got, err := CBCDecrypt(ek, iv, c)
		require.NoError(t, err)
		require.Equal(t, p, got, "n=%d", n)
	}
}

func TestCFBRoundTrip(t *testing.T) {
	ek := testKey()
	var iv Block
	for i := range iv {
		iv[i] = byte(0xA0 + i)
	}
	for _, n := range []int{0, 1, 15, 16, 17, 100} {
		p := testPlaintext(n)
		c := CFBEncrypt(ek, iv, p)
		got := CFBDecrypt(ek, iv, c)
		require.Equal(t, p, got, "n=%d", n)
	}
}

func TestCTRRoundTripAndChunking(t *testing.T) {
	ek := testKey()
	var iv Block
	p := testPlaintext(200)

	c := CTREncrypt(ek, iv, p)
	got := CTRDecrypt(ek, iv, c)
	require.Equal(t, p, got)

	// Chunked Step calls must match the one-shot result.
	s := NewCTRStream(ek, iv)
	chunked := make([]byte, len(p))
	chunks := []int{3, 50, 1, 146}
	off := 0
	for _, n := range chunks {
		s.Step(chunked[off:off+n], p[off:off+n])
		off += n
	}
	require.Equal(t, c, chunked)
}
