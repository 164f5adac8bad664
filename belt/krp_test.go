// Copyright (c) 2025 The Belstd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package belt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKRPOutputLengths(t *testing.T) {
	key := testPlaintext(32)
	var level [KRPLevelSize]byte
	var header [KRPHeaderSize]byte
	level[0] = 1
	header[0] = 2

	for _, n := range []int{16, 24, 32} {
		sub, err := KRP(key, level, header, n)
		require.NoError(t, err)
		require.Len(t, sub, n)
	}
}

func TestKRPRejectsBadLen(t *testing.T) {
	key := testPlaintext(32)
	var level [KRPLevelSize]byte
	var header [KRPHeaderSize]byte
	_, err := KRP(key, level, header, 20)
	require.Error(t, err)
}

func TestKRPDistinguishesLevel(t *testing.T) {
	key := testPlaintext(32)
	var level1, level2 [KRPLevelSize]byte
	level2[0] = 0xFF
	var header [KRPHeaderSize]byte

	sub1, err := KRP(key, level1, header, 32)
	require.NoError(t, err)
	sub2, err := KRP(key, level2, header, 32)
	require.NoError(t, err)
	require.NotEqual(t, sub1, sub2)
}
