// Copyright (c) 2025 The Belstd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package bign

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignVerifyRoundTrip128(t *testing.T) {
	params, err := ParamsByLevel(128)
	require.NoError(t, err)

	priv, pub, err := GenerateKey(params, rand.Reader)
	require.NoError(t, err)
	require.NoError(t, pub.Validate())

	H := hashFor(params, []byte("test data"))
	sig, err := Sign(priv, H, nil)
	require.NoError(t, err)
	require.Len(t, sig, params.SigLen())

	require.NoError(t, Verify(pub, H, sig))

	sig[0] ^= 1
	require.Error(t, Verify(pub, H, sig))
}

func TestSignVerifyRoundTripAllLevels(t *testing.T) {
	for _, l := range []int{96, 128, 192, 256} {
		params, err := ParamsByLevel(l)
		require.NoError(t, err)

		priv, pub, err := GenerateKey(params, rand.Reader)
		require.NoError(t, err)

		H := hashFor(params, []byte("message"))
		sig, err := Sign(priv, H, []byte("t"))
		require.NoError(t, err)

		require.NoError(t, Verify(pub, H, sig))
	}
}

func TestVerifyRejectsWrongMessage(t *testing.T) {
	params, err := ParamsByLevel(128)
	require.NoError(t, err)

	priv, pub, err := GenerateKey(params, rand.Reader)
	require.NoError(t, err)

	H1 := hashFor(params, []byte("message one"))
	H2 := hashFor(params, []byte("message two"))
	sig, err := Sign(priv, H1, nil)
	require.NoError(t, err)

	require.Error(t, Verify(pub, H2, sig))
}
