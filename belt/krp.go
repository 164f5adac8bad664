// Copyright (c) 2025 The Belstd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package belt

import "github.com/belstd/core/stberr"

// KRPLevelSize and KRPHeaderSize are the fixed lengths of the level
// descriptor and header octets consumed by KRP.
const (
	KRPLevelSize  = 12
	KRPHeaderSize = 16
)

var (
	// ErrBadKRPOutLen is returned when the requested KRP output length is
	// not one of the supported subkey sizes.
	ErrBadKRPOutLen = stberr.New(stberr.BadInput, "belt: krp output length must be 16, 24 or 32 octets")
)

// KRP derives an outLen-octet subkey from key, a 12-octet level descriptor
// and a 16-octet header, via HMAC over Belt-HASH. outLen must be 16, 24 or
// 32 (the Belt key lengths).
func KRP(key []byte, level [KRPLevelSize]byte, header [KRPHeaderSize]byte, outLen int) ([]byte, error) {
	if outLen != 16 && outLen != 24 && outLen != 32 {
		return nil, ErrBadKRPOutLen
	}
	info := make([]byte, 0, KRPLevelSize+KRPHeaderSize)
	info = append(info, level[:]...)
	info = append(info, header[:]...)
	tag := HMAC(key, info)
	return append([]byte(nil), tag[:outLen]...), nil
}
