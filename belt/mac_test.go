// Copyright (c) 2025 The Belstd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package belt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMACDeterministicAndSensitive(t *testing.T) {
	ek := testKey()
	msg := testPlaintext(50)

	tag1 := MAC(ek, msg, MaxMACLen)
	tag2 := MAC(ek, msg, MaxMACLen)
	require.Equal(t, tag1, tag2)
	require.Len(t, tag1, MaxMACLen)

	msg2 := append([]byte(nil), msg...)
	msg2[0] ^= 1
	tag3 := MAC(ek, msg2, MaxMACLen)
	require.NotEqual(t, tag1, tag3)
}

func TestMACChunkedMatchesOneShot(t *testing.T) {
	ek := testKey()
	msg := testPlaintext(70)

	oneShot := MAC(ek, msg, 4)

	ctx := NewMAC(ek)
	ctx.Write(msg[:10])
	ctx.Write(msg[10:33])
	ctx.Write(msg[33:])
	chunked := ctx.Sum(4)

	require.Equal(t, oneShot, chunked)
}

func TestMACEmptyMessage(t *testing.T) {
	ek := testKey()
	tag := MAC(ek, nil, MaxMACLen)
	require.Len(t, tag, MaxMACLen)
}
