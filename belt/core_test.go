// Copyright (c) 2025 The Belstd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package belt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSBoxIsPermutation(t *testing.T) {
	var seen [256]bool
	h := debugRegenerateSBox()
	for _, v := range h {
		require.False(t, seen[v], "sbox is not a bijection")
		seen[v] = true
	}
}

func TestBlockRoundTrip(t *testing.T) {
	for _, keyLen := range []int{16, 24, 32} {
		key := make([]byte, keyLen)
		for i := range key {
			key[i] = byte(i*7 + 1)
		}
		ek, err := ExpandKey(key)
		require.NoError(t, err)

		var b Block
		for i := range b {
			b[i] = byte(i * 13)
		}
		orig := b
		EncryptBlock(ek, &b)
		require.NotEqual(t, orig, b)
		DecryptBlock(ek, &b)
		require.Equal(t, orig, b)
	}
}

func TestExpandKeyBadLen(t *testing.T) {
	_, err := ExpandKey(make([]byte, 10))
	require.Error(t, err)
}

func TestSelfTestPasses(t *testing.T) {
	require.NoError(t, SelfTest())
}
