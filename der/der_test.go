// Copyright (c) 2025 The Belstd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package der

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOctetStringRoundTrip(t *testing.T) {
	enc := EncodeOctetString([]byte("hello world"))
	tlv, rest, err := Decode(enc)
	require.NoError(t, err)
	require.Empty(t, rest)
	require.Equal(t, byte(TagOctetString), tlv.Tag)
	require.Equal(t, []byte("hello world"), tlv.Value)
}

func TestSequenceRoundTrip(t *testing.T) {
	inner := EncodeOctetString([]byte("payload"))
	seq := EncodeSequence(EncodeInteger([]byte{0}), inner)

	tlv, _, err := Decode(seq)
	require.NoError(t, err)
	require.Equal(t, byte(TagSequence), tlv.Tag)

	elems, err := DecodeAll(tlv.Value)
	require.NoError(t, err)
	require.Len(t, elems, 2)
	require.Equal(t, byte(TagInteger), elems[0].Tag)
	require.Equal(t, byte(TagOctetString), elems[1].Tag)
}

func TestLongFormLength(t *testing.T) {
	big := make([]byte, 300)
	enc := EncodeOctetString(big)
	tlv, rest, err := Decode(enc)
	require.NoError(t, err)
	require.Empty(t, rest)
	require.Equal(t, big, tlv.Value)
}

func TestOIDRoundTrip(t *testing.T) {
	enc := EncodeOID(OIDBeltHash)
	tlv, _, err := Decode(enc)
	require.NoError(t, err)
	got, err := DecodeOID(tlv)
	require.NoError(t, err)
	require.Equal(t, OIDBeltHash, got)
}

func TestIntegerPadsHighBit(t *testing.T) {
	enc := EncodeInteger([]byte{0xFF})
	tlv, _, err := Decode(enc)
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0xFF}, tlv.Value)
}

func TestDecodeRejectsTruncated(t *testing.T) {
	enc := EncodeOctetString([]byte("abc"))
	_, _, err := Decode(enc[:len(enc)-1])
	require.Error(t, err)
}
