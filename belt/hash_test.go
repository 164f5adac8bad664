// Copyright (c) 2025 The Belstd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package belt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashDeterministicAndSensitive(t *testing.T) {
	msg := testPlaintext(100)
	d1 := Hash(msg)
	d2 := Hash(msg)
	require.Equal(t, d1, d2)

	msg2 := append([]byte(nil), msg...)
	msg2[0] ^= 1
	d3 := Hash(msg2)
	require.NotEqual(t, d1, d3)
}

func TestHashChunkedMatchesOneShot(t *testing.T) {
	msg := testPlaintext(130)
	oneShot := Hash(msg)

	ctx := NewHash()
	ctx.Write(msg[:17])
	ctx.Write(msg[17:64])
	ctx.Write(msg[64:])
	chunked := ctx.Sum()

	require.Equal(t, oneShot, chunked)
}

func TestHashEmptyMessage(t *testing.T) {
	d := Hash(nil)
	require.Len(t, d, HashSize)
}

func TestHashDifferentLengthsDiffer(t *testing.T) {
	d1 := Hash(testPlaintext(31))
	d2 := Hash(testPlaintext(32))
	require.NotEqual(t, d1, d2)
}
