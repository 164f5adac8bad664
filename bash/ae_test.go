// Copyright (c) 2025 The Belstd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package bash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAESealOpenRoundTrip(t *testing.T) {
	key := []byte("0123456789abcdef")
	iv := []byte("fedcba9876543210")
	aad := []byte("header")
	pt := []byte("the quick brown fox")

	ct, tag := Seal(key, iv, aad, pt)
	got, ok := Open(key, iv, aad, ct, tag)
	require.True(t, ok)
	require.Equal(t, pt, got)
}

func TestAERejectsTamperedCiphertext(t *testing.T) {
	key := []byte("0123456789abcdef")
	iv := []byte("fedcba9876543210")
	aad := []byte("header")
	pt := []byte("the quick brown fox")

	ct, tag := Seal(key, iv, aad, pt)
	ct[0] ^= 1

	_, ok := Open(key, iv, aad, ct, tag)
	require.False(t, ok)
}

func TestAERejectsTamperedAAD(t *testing.T) {
	key := []byte("0123456789abcdef")
	iv := []byte("fedcba9876543210")
	pt := []byte("the quick brown fox")

	ct, tag := Seal(key, iv, []byte("header"), pt)
	_, ok := Open(key, iv, []byte("header2"), ct, tag)
	require.False(t, ok)
}
