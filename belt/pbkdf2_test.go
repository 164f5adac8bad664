// Copyright (c) 2025 The Belstd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package belt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPBKDF2KeyDeterministicAndSalted(t *testing.T) {
	pw := []byte("correct horse battery staple")
	salt1 := []byte("salt-one-------")
	salt2 := []byte("salt-two-------")

	k1, err := PBKDF2Key(pw, salt1, MinPBKDF2Iter, 32)
	require.NoError(t, err)
	k1b, err := PBKDF2Key(pw, salt1, MinPBKDF2Iter, 32)
	require.NoError(t, err)
	require.Equal(t, k1, k1b)

	k2, err := PBKDF2Key(pw, salt2, MinPBKDF2Iter, 32)
	require.NoError(t, err)
	require.NotEqual(t, k1, k2)
}

func TestPBKDF2KeyRejectsWeakIterCount(t *testing.T) {
	_, err := PBKDF2Key([]byte("pw"), []byte("salt"), MinPBKDF2Iter-1, 32)
	require.Error(t, err)
}
