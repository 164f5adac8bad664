// Copyright (c) 2025 The Belstd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package bign

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrivateKeyBytesRoundTrip(t *testing.T) {
	params, err := ParamsByLevel(128)
	require.NoError(t, err)

	priv, _, err := GenerateKey(params, rand.Reader)
	require.NoError(t, err)

	b := priv.Bytes()
	require.Len(t, b, params.elemLen())

	got, err := PrivateKeyFromBytes(params, b)
	require.NoError(t, err)
	require.Equal(t, 0, priv.D.Cmp(got.D))
}

func TestPublicKeyBytesRoundTrip(t *testing.T) {
	params, err := ParamsByLevel(128)
	require.NoError(t, err)

	_, pub, err := GenerateKey(params, rand.Reader)
	require.NoError(t, err)
	require.NoError(t, pub.Validate())

	b := pub.Bytes()
	require.Len(t, b, 2*params.elemLen())

	got, err := PublicKeyFromBytes(params, b)
	require.NoError(t, err)
	require.NoError(t, got.Validate())
	require.Equal(t, 0, pub.Q.X.Cmp(got.Q.X))
	require.Equal(t, 0, pub.Q.Y.Cmp(got.Q.Y))
}

func TestPrivateKeyFromBytesRejectsWrongLength(t *testing.T) {
	params, err := ParamsByLevel(128)
	require.NoError(t, err)
	_, err = PrivateKeyFromBytes(params, make([]byte, 3))
	require.Error(t, err)
}

func TestPrivateKeyWipeZeroizes(t *testing.T) {
	params, err := ParamsByLevel(128)
	require.NoError(t, err)
	priv, _, err := GenerateKey(params, rand.Reader)
	require.NoError(t, err)

	priv.Wipe()
	require.True(t, priv.D.IsZero())
}
