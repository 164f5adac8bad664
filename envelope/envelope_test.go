// Copyright (c) 2025 The Belstd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package envelope

import (
	"testing"

	"github.com/belstd/core/der"
	"github.com/stretchr/testify/require"
)

func TestBuildParseRoundTrip(t *testing.T) {
	certs := []byte("fake-cert-chain-octets")
	date := [DateLen]byte{26, 1, 8, 0, 0, 0}
	sig := make([]byte, 48)
	sig[0] = 0xAB

	blob, err := Build(certs, date, sig)
	require.NoError(t, err)

	env, err := Parse(blob)
	require.NoError(t, err)
	require.Equal(t, certs, env.Certs)
	require.NotNil(t, env.Date)
	require.Equal(t, date, *env.Date)
	require.Equal(t, sig, env.Sig)
}

func TestParseLegacyNoDateForm(t *testing.T) {
	certs := []byte("legacy-certs")
	sig := make([]byte, 34)
	legacy := der.EncodeSequence(der.EncodeOctetString(certs), der.EncodeOctetString(sig))

	env, err := ParseDER(legacy)
	require.NoError(t, err)
	require.Nil(t, env.Date)
	require.Equal(t, certs, env.Certs)
	require.Equal(t, sig, env.Sig)
}

func TestBuildRejectsBadSigLen(t *testing.T) {
	_, err := Build([]byte("x"), [DateLen]byte{}, make([]byte, 20))
	require.Error(t, err)
}

func TestParseFromTail(t *testing.T) {
	certs := []byte("tail-certs")
	date := [DateLen]byte{26, 6, 15, 12, 0, 0}
	sig := make([]byte, 72)

	blob, err := Build(certs, date, sig)
	require.NoError(t, err)

	file := append([]byte("signed-content-goes-here"), blob...)
	env, err := ParseFromTail(file)
	require.NoError(t, err)
	require.Equal(t, certs, env.Certs)
	require.Equal(t, sig, env.Sig)
}

func TestParseFromTailTruncatedFails(t *testing.T) {
	_, err := ParseFromTail([]byte{0x01})
	require.Error(t, err)
}

func TestParseRejectsTamperedTag(t *testing.T) {
	certs := []byte("certs")
	date := [DateLen]byte{1, 2, 3, 4, 5, 6}
	sig := make([]byte, 96)
	blob, err := Build(certs, date, sig)
	require.NoError(t, err)

	corrupt := append([]byte(nil), blob...)
	corrupt[len(corrupt)-1] ^= 0xFF
	_, err = Parse(corrupt)
	require.Error(t, err)
}

func TestHashSignedContentSelectsAlgByLength(t *testing.T) {
	content := []byte("payload")
	chain := []byte("chain")
	date := []byte("date12")

	h128, err := HashSignedContent(48, content, chain, date)
	require.NoError(t, err)
	require.Len(t, h128, 32)

	h384, err := HashSignedContent(72, content, chain, date)
	require.NoError(t, err)
	require.Len(t, h384, 48)

	h512, err := HashSignedContent(96, content, chain, date)
	require.NoError(t, err)
	require.Len(t, h512, 64)

	_, err = HashSignedContent(17, content, chain, date)
	require.Error(t, err)
}
