// Copyright (c) 2025 The Belstd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package bash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHash384And512Lengths(t *testing.T) {
	require.Len(t, Hash384([]byte("test data")), 48)
	require.Len(t, Hash512([]byte("test data")), 64)
}

func TestHashDeterministicAndSensitive(t *testing.T) {
	a := Hash512([]byte("abc"))
	b := Hash512([]byte("abc"))
	c := Hash512([]byte("abd"))
	require.Equal(t, a, b)
	require.NotEqual(t, a, c)
}

func TestHashChunkedMatchesOneShot(t *testing.T) {
	msg := make([]byte, 300)
	for i := range msg {
		msg[i] = byte(i)
	}
	oneShot := Hash384(msg)

	h := NewHashContext(192)
	h.Write(msg[:64])
	h.Write(msg[64:])
	chunked := h.Sum()

	require.Equal(t, oneShot, chunked)
}
