// Copyright (c) 2025 The Belstd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package belt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHMACDeterministicAndKeyed(t *testing.T) {
	key := testPlaintext(32)
	msg := testPlaintext(80)

	t1 := HMAC(key, msg)
	t2 := HMAC(key, msg)
	require.Equal(t, t1, t2)

	key2 := append([]byte(nil), key...)
	key2[0] ^= 1
	t3 := HMAC(key2, msg)
	require.NotEqual(t, t1, t3)
}

func TestHMACChunkedMatchesOneShot(t *testing.T) {
	key := testPlaintext(16)
	msg := testPlaintext(90)
	oneShot := HMAC(key, msg)

	ctx := NewHMAC(key)
	ctx.Write(msg[:40])
	ctx.Write(msg[40:])
	chunked := ctx.Sum()

	require.Equal(t, oneShot, chunked)
}

func TestHMACLongKeyIsHashed(t *testing.T) {
	longKey := testPlaintext(hashBlockSize + 17)
	tag := HMAC(longKey, testPlaintext(10))
	require.Len(t, tag, HMACSize)
}
