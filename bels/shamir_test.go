// Copyright (c) 2025 The Belstd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package bels

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func randSecret(t *testing.T, n int) []byte {
	t.Helper()
	b := make([]byte, n)
	_, err := rand.Read(b)
	require.NoError(t, err)
	return b
}

func TestSplitRecoverExactThreshold(t *testing.T) {
	for _, n := range []int{16, 24, 32} {
		secret := randSecret(t, n)
		shares, err := Split(secret, 5, 3)
		require.NoError(t, err)
		require.Len(t, shares, 5)

		got, err := Recover(shares[:3])
		require.NoError(t, err)
		require.Equal(t, secret, got)
	}
}

func TestRecoverAnyKSubset(t *testing.T) {
	secret := randSecret(t, 32)
	shares, err := Split(secret, 6, 4)
	require.NoError(t, err)

	subset := []Share{shares[1], shares[3], shares[4], shares[5]}
	got, err := Recover(subset)
	require.NoError(t, err)
	require.Equal(t, secret, got)
}

func TestRecoverBelowThresholdFails(t *testing.T) {
	secret := randSecret(t, 16)
	shares, err := Split(secret, 5, 3)
	require.NoError(t, err)

	got, err := Recover(shares[:2])
	require.NoError(t, err)
	require.NotEqual(t, secret, got)
}

func TestShareBytesRoundTrip(t *testing.T) {
	secret := randSecret(t, 16)
	shares, err := Split(secret, 3, 2)
	require.NoError(t, err)

	encoded := shares[0].Bytes()
	require.Len(t, encoded, 17)

	decoded, err := ParseShare(encoded)
	require.NoError(t, err)
	require.Equal(t, shares[0], decoded)
}

func TestSplitRejectsBadSecretLen(t *testing.T) {
	_, err := Split(make([]byte, 15), 5, 3)
	require.Error(t, err)
}
