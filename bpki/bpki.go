// Copyright (c) 2025 The Belstd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package bpki implements the Bpki encrypted-container formats
// (STB 34.101.78): PBES2-style PBKDF2 + Belt-KWP wrapping of Bign
// private keys and Bels shares into a DER-encoded container.
package bpki

import (
	"crypto/rand"

	"github.com/belstd/core/belt"
	"github.com/belstd/core/der"
	"github.com/belstd/core/stberr"
)

// SaltLen is the octet length of a freshly generated PBKDF2 salt.
const SaltLen = 8

var (
	// ErrBadFormat is returned when a container fails to parse.
	ErrBadFormat = stberr.New(stberr.BadFormat, "bpki: malformed container")
	// ErrBadPayload is returned when a payload doesn't match any
	// supported Bign-private-key or Bels-share length.
	ErrBadPayload = stberr.New(stberr.BadInput, "bpki: unsupported payload length")
)

// Options configures Wrap's PBKDF2 ceremony parameters.
type Options struct {
	Iterations int
}

// Option mutates Options; the functional-option pattern lets Wrap take
// sensible defaults while still allowing callers to override individual
// ceremony parameters.
type Option func(*Options)

// WithIterations overrides the default PBKDF2 iteration count.
func WithIterations(n int) Option {
	return func(o *Options) { o.Iterations = n }
}

func newOptions(opts ...Option) *Options {
	o := &Options{Iterations: belt.MinPBKDF2Iter}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// payloadOID returns the DER OID bound to a payload's type, inferred
// from its length: 32/48/64-octet Bign private keys, or 17/25/33-octet
// Bels shares.
func payloadOID(payload []byte) (der.OID, error) {
	switch len(payload) {
	case 32, 48, 64:
		return der.OIDBignPubkey, nil
	case 17, 25, 33:
		return der.OIDBelsShare, nil
	default:
		return nil, ErrBadPayload
	}
}

// NewSalt generates a fresh random SaltLen-octet PBKDF2 salt.
func NewSalt() ([]byte, error) {
	salt := make([]byte, SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// Wrap encrypts payload (a Bign private key or Bels share) under
// password pwd and salt, returning the DER-encoded container
// SEQ{ SEQ{ OID(id-PBES2), SEQ{ PBKDF2-params, KWP-params } }, OCT(ciphertext) }.
func Wrap(payload, pwd, salt []byte, opts ...Option) ([]byte, error) {
	o := newOptions(opts...)
	algOID, err := payloadOID(payload)
	if err != nil {
		return nil, err
	}

	key, err := belt.PBKDF2Key(pwd, salt, o.Iterations, 32)
	if err != nil {
		return nil, err
	}
	ek, err := belt.ExpandKey(key)
	if err != nil {
		return nil, err
	}

	info := der.EncodeSequence(
		der.EncodeInteger([]byte{0}),
		der.EncodeSequence(der.EncodeOID(algOID), der.EncodeOID(der.OIDBeltKWP256)),
		der.EncodeOctetString(payload),
	)

	blob, padLen, err := belt.WrapRaw(ek, nil, info)
	if err != nil {
		return nil, err
	}

	pbkdf2Params := der.EncodeSequence(
		der.EncodeOctetString(salt),
		der.EncodeInteger(bigEndianUint(o.Iterations)),
	)
	kwpParams := der.EncodeSequence(
		der.EncodeOID(der.OIDBeltKWP256),
		der.EncodeInteger(bigEndianUint(padLen)),
	)
	algIdent := der.EncodeSequence(
		der.EncodeOID(der.OIDPBES2),
		der.EncodeSequence(pbkdf2Params, kwpParams),
	)
	container := der.EncodeSequence(algIdent, der.EncodeOctetString(blob))
	return container, nil
}

// Unwrap reverses Wrap, rejecting iteration counts below
// belt.MinPBKDF2Iter (belt.ErrWeakIterCount) and payload-size mismatches
// (format errors).
func Unwrap(container, pwd []byte) ([]byte, error) {
	outer, rest, err := der.Decode(container)
	if err != nil || len(rest) != 0 || outer.Tag != der.TagSequence {
		logger.Debug().Err(err).Msg("bpki: container is not a well-formed outer SEQUENCE")
		return nil, ErrBadFormat
	}
	parts, err := der.DecodeAll(outer.Value)
	if err != nil || len(parts) != 2 {
		return nil, ErrBadFormat
	}
	algIdentTLV, ciphertextTLV := parts[0], parts[1]
	if algIdentTLV.Tag != der.TagSequence || ciphertextTLV.Tag != der.TagOctetString {
		return nil, ErrBadFormat
	}

	algParts, err := der.DecodeAll(algIdentTLV.Value)
	if err != nil || len(algParts) != 2 {
		return nil, ErrBadFormat
	}
	paramsParts, err := der.DecodeAll(algParts[1].Value)
	if err != nil || len(paramsParts) != 2 {
		return nil, ErrBadFormat
	}
	pbkdf2Parts, err := der.DecodeAll(paramsParts[0].Value)
	if err != nil || len(pbkdf2Parts) != 2 {
		return nil, ErrBadFormat
	}
	kwpParts, err := der.DecodeAll(paramsParts[1].Value)
	if err != nil || len(kwpParts) != 2 {
		return nil, ErrBadFormat
	}

	salt := pbkdf2Parts[0].Value
	iterBytes, err := der.DecodeIntegerBytes(pbkdf2Parts[1])
	if err != nil {
		return nil, ErrBadFormat
	}
	iter := uintFromBigEndian(iterBytes)
	if iter < belt.MinPBKDF2Iter {
		return nil, belt.ErrWeakIterCount
	}
	padLenBytes, err := der.DecodeIntegerBytes(kwpParts[1])
	if err != nil {
		return nil, ErrBadFormat
	}
	padLen := uintFromBigEndian(padLenBytes)

	key, err := belt.PBKDF2Key(pwd, salt, iter, 32)
	if err != nil {
		return nil, err
	}
	ek, err := belt.ExpandKey(key)
	if err != nil {
		return nil, err
	}

	_, info, err := belt.UnwrapRaw(ek, ciphertextTLV.Value, 0, padLen)
	if err != nil {
		return nil, err
	}

	infoTLV, rest, err := der.Decode(info)
	if err != nil || len(rest) != 0 || infoTLV.Tag != der.TagSequence {
		logger.Debug().Msg("bpki: decrypted payload is not a well-formed PrivateKeyInfo SEQUENCE")
		return nil, ErrBadFormat
	}
	infoParts, err := der.DecodeAll(infoTLV.Value)
	if err != nil || len(infoParts) != 3 {
		logger.Debug().Msg("bpki: PrivateKeyInfo has the wrong number of fields")
		return nil, ErrBadFormat
	}
	payloadTLV := infoParts[2]
	if payloadTLV.Tag != der.TagOctetString {
		logger.Debug().Msg("bpki: PrivateKeyInfo payload field is not an OCTET STRING")
		return nil, ErrBadFormat
	}
	if _, err := payloadOID(payloadTLV.Value); err != nil {
		logger.Debug().Int("payload_len", len(payloadTLV.Value)).Msg("bpki: payload length matches no known key or share type")
		return nil, ErrBadFormat
	}
	return payloadTLV.Value, nil
}

func bigEndianUint(n int) []byte {
	if n == 0 {
		return []byte{0}
	}
	var out []byte
	for n > 0 {
		out = append([]byte{byte(n & 0xff)}, out...)
		n >>= 8
	}
	return out
}

func uintFromBigEndian(b []byte) int {
	n := 0
	for _, v := range b {
		n = n<<8 | int(v)
	}
	return n
}
