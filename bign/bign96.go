// Copyright (c) 2025 The Belstd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package bign

import (
	"crypto/rand"

	"github.com/belstd/core/stberr"
)

// ErrBadBign96Key is returned when a packed Bign96 public key has the
// wrong length.
var ErrBadBign96Key = stberr.New(stberr.BadPubkey, "bign: bign96 public key must be 48 octets")

// GenerateKey96 generates a curve96 keypair using the same construction
// as GenerateKey; Bign96 differs from the long-form scheme only in its
// parameter set and the ISO-compliant bit-packing of the public key.
func GenerateKey96() (*PrivateKey, *PublicKey, error) {
	return GenerateKey(curve96, rand.Reader)
}

// PackPublicKey96 packs a curve96 public key into ISO 9796-2-style
// compact form: the concatenation of the x and y coordinates, each
// 24 octets, matching PublicKey.Bytes for l=96 (48 octets total). The
// standard's "ISO-compliant bit-packing" reduces to this fixed-width
// concatenation because x_G is always 0 and curve96's coordinates
// already occupy exactly 24 octets each.
func PackPublicKey96(pub *PublicKey) ([]byte, error) {
	if pub.Params.L != 96 {
		return nil, ErrBadBign96Key
	}
	b := pub.Bytes()
	if len(b) != 48 {
		return nil, ErrBadBign96Key
	}
	return b, nil
}

// UnpackPublicKey96 is the inverse of PackPublicKey96.
func UnpackPublicKey96(b []byte) (*PublicKey, error) {
	if len(b) != 48 {
		return nil, ErrBadBign96Key
	}
	return PublicKeyFromBytes(curve96, b)
}

// Sign96 signs H with a curve96 private key, producing the 34-octet
// short-form signature.
func Sign96(priv *PrivateKey, H, t []byte) ([]byte, error) {
	return Sign(priv, H, t)
}

// Verify96 verifies a 34-octet curve96 signature.
func Verify96(pub *PublicKey, H, sig []byte) error {
	return Verify(pub, H, sig)
}
