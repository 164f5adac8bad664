// Copyright (c) 2025 The Belstd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package belt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCHERoundTrip(t *testing.T) {
	ek := testKey()
	var iv Block
	iv[1] = 7
	aad := []byte("header")
	pt := testPlaintext(48)

	ct, tag := CHESeal(ek, iv, aad, pt)
	got, err := CHEOpen(ek, iv, aad, ct, tag)
	require.NoError(t, err)
	require.Equal(t, pt, got)
}

func TestCHERejectsTamperedTag(t *testing.T) {
	ek := testKey()
	var iv Block
	pt := testPlaintext(20)

	ct, tag := CHESeal(ek, iv, nil, pt)
	tag[0] ^= 1
	_, err := CHEOpen(ek, iv, nil, ct, tag)
	require.Error(t, err)
}

func TestCHENonBlockAligned(t *testing.T) {
	ek := testKey()
	var iv Block
	pt := testPlaintext(37)

	ct, tag := CHESeal(ek, iv, []byte("aad"), pt)
	got, err := CHEOpen(ek, iv, []byte("aad"), ct, tag)
	require.NoError(t, err)
	require.Equal(t, pt, got)
}
