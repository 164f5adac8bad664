// Copyright (c) 2025 The Belstd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package brng

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGeneratorDeterministic(t *testing.T) {
	var key, iv [32]byte
	for i := range key {
		key[i] = byte(i)
	}
	for i := range iv {
		iv[i] = byte(31 - i)
	}

	g1, err := New(key, iv)
	require.NoError(t, err)
	g2, err := New(key, iv)
	require.NoError(t, err)

	out1 := make([]byte, 100)
	out2 := make([]byte, 100)
	_, err = g1.Read(out1)
	require.NoError(t, err)
	_, err = g2.Read(out2)
	require.NoError(t, err)
	require.Equal(t, out1, out2)
}

func TestGeneratorDifferentSeedsDiffer(t *testing.T) {
	var key1, key2, iv [32]byte
	key2[0] = 1

	g1, err := New(key1, iv)
	require.NoError(t, err)
	g2, err := New(key2, iv)
	require.NoError(t, err)

	out1 := make([]byte, 32)
	out2 := make([]byte, 32)
	g1.Read(out1)
	g2.Read(out2)
	require.NotEqual(t, out1, out2)
}

func TestRekeyChangesStream(t *testing.T) {
	var key, iv, key2 [32]byte
	key2[5] = 9

	g, err := New(key, iv)
	require.NoError(t, err)
	before := make([]byte, 16)
	g.Read(before)

	require.NoError(t, g.Rekey(key2, iv))
	after := make([]byte, 16)
	g.Read(after)

	require.NotEqual(t, before, after)
}

func TestReadAcrossMultipleBlocks(t *testing.T) {
	var key, iv [32]byte
	g, err := New(key, iv)
	require.NoError(t, err)

	whole := make([]byte, 50)
	_, err = g.Read(whole)
	require.NoError(t, err)

	g2, err := New(key, iv)
	require.NoError(t, err)
	chunked := make([]byte, 50)
	g2.Read(chunked[:10])
	g2.Read(chunked[10:33])
	g2.Read(chunked[33:])

	require.Equal(t, whole, chunked)
}
