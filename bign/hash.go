// Copyright (c) 2025 The Belstd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package bign

import (
	"github.com/belstd/core/bash"
	"github.com/belstd/core/belt"
)

// hashFor dispatches to the hash algorithm bound to params' security
// level: Belt-HASH for l in {96, 128}, Bash-HASH384/512 for l in
// {192, 256}, matching the HashOID each Params carries.
func hashFor(params *Params, msg []byte) []byte {
	switch params.L {
	case 96, 128:
		h := belt.Hash(msg)
		return h[:]
	case 192:
		return bash.Hash384(msg)
	case 256:
		return bash.Hash512(msg)
	default:
		panic("bign: unreachable security level")
	}
}
