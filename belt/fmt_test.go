// Copyright (c) 2025 The Belstd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package belt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFMTRoundTrip(t *testing.T) {
	ek := testKey()
	tweak := []byte("tweak")
	digits := []uint64{1, 2, 3, 4, 5, 6}

	ct, err := FMTEncrypt(ek, 10, tweak, digits)
	require.NoError(t, err)
	require.Len(t, ct, len(digits))
	for _, d := range ct {
		require.Less(t, d, uint64(10))
	}

	pt, err := FMTDecrypt(ek, 10, tweak, ct)
	require.NoError(t, err)
	require.Equal(t, digits, pt)
}

func TestFMTChangesInput(t *testing.T) {
	ek := testKey()
	digits := []uint64{0, 0, 0, 0}
	ct, err := FMTEncrypt(ek, 10, nil, digits)
	require.NoError(t, err)
	require.NotEqual(t, digits, ct)
}

func TestFMTRejectsBadInput(t *testing.T) {
	ek := testKey()
	_, err := FMTEncrypt(ek, 1, nil, []uint64{0, 0})
	require.Error(t, err)

	_, err = FMTEncrypt(ek, 10, nil, []uint64{1})
	require.Error(t, err)

	_, err = FMTEncrypt(ek, 5, nil, []uint64{5, 1})
	require.Error(t, err)
}
