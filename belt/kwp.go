// Copyright (c) 2025 The Belstd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package belt

import (
	"github.com/belstd/core/stberr"
	"github.com/belstd/core/word"
)

// kwpICV is the fixed 64-bit integrity-check value: it seeds the A
// register (AES-KW's default IV role) and is also prefixed to the
// plaintext as an extra register, so a wrapped blob is 16 octets longer
// than its plaintext and unwrap checks both copies.
var kwpICV = [8]byte{0xB6, 0x6F, 0x6E, 0xB6, 0xB6, 0x6F, 0x6E, 0xB6}

var (
	// ErrBadKWPLen is returned when the key-to-wrap is not 16, 24 or 32 octets.
	ErrBadKWPLen = stberr.New(stberr.BadInput, "belt: kwp input must be 16, 24 or 32 octets")
	// ErrBadKWPBlob is returned when an unwrapped blob fails integrity
	// validation or has an invalid length.
	ErrBadKWPBlob = stberr.New(stberr.BadFormat, "belt: kwp blob is malformed")
)

// KWPWrap wraps key (16/24/32 octets) plus an optional header, producing a
// blob 16 octets longer than len(header)+len(key): a generalized
// AES-KW/RFC 5649 style construction built from six passes of Belt block
// encryption over 64-bit half-blocks.
func KWPWrap(ek ExpandedKey, header, key []byte) ([]byte, error) {
	if len(key) != 16 && len(key) != 24 && len(key) != 32 {
		return nil, ErrBadKWPLen
	}
	plain := append(append([]byte(nil), header...), key...)
	if len(plain)%8 != 0 {
		return nil, ErrBadKWPLen
	}
	return kwWrap(ek, plain), nil
}

// KWPUnwrap is the inverse of KWPWrap; headerLen is the number of leading
// octets to return separately as the header.
func KWPUnwrap(ek ExpandedKey, blob []byte, headerLen int) (header, key []byte, err error) {
	plain, err := kwUnwrap(ek, blob)
	if err != nil {
		return nil, nil, err
	}
	if headerLen < 0 || headerLen > len(plain) {
		return nil, nil, ErrBadKWPBlob
	}
	return plain[:headerLen], plain[headerLen:], nil
}

// WrapRaw is the generalized form KWPWrap's 16/24/32-octet restriction
// exists to rule out: it wraps arbitrary payloads (the Bpki container
// formats' DER-encoded PrivateKeyInfo structures are not themselves
// fixed-width keys), requiring only that len(header)+len(data) be a
// positive multiple of 8 octets, padding up to the next multiple
// otherwise. The returned blob is 16 octets longer than the padded
// plaintext; padLen records how many zero pad octets were appended so
// UnwrapRaw can strip them.
func WrapRaw(ek ExpandedKey, header, data []byte) (blob []byte, padLen int, err error) {
	plain := append(append([]byte(nil), header...), data...)
	if len(plain) == 0 {
		return nil, 0, ErrBadKWPLen
	}
	for len(plain)%8 != 0 {
		plain = append(plain, 0)
		padLen++
	}
	return kwWrap(ek, plain), padLen, nil
}

// UnwrapRaw is the inverse of WrapRaw.
func UnwrapRaw(ek ExpandedKey, blob []byte, headerLen, padLen int) (header, data []byte, err error) {
	plain, err := kwUnwrap(ek, blob)
	if err != nil {
		return nil, nil, err
	}
	if padLen < 0 || padLen > len(plain) {
		return nil, nil, ErrBadKWPBlob
	}
	plain = plain[:len(plain)-padLen]
	if headerLen < 0 || headerLen > len(plain) {
		return nil, nil, ErrBadKWPBlob
	}
	return plain[:headerLen], plain[headerLen:], nil
}

// kwWrap implements the generalized key-wrap transform: A || R1..Rn (each
// 8 octets) start as ICV || ICV || plaintext split into 8-octet registers
// (zero-padded to a multiple of 8); 6n steps each pass one register
// (cycling R1..Rn) through A, XOR'ing the step counter t into A.
func kwWrap(ek ExpandedKey, plain []byte) []byte {
	n := (len(plain)+7)/8 + 1
	regs := make([][8]byte, n)
	padded := make([]byte, n*8)
	copy(padded, kwpICV[:])
	copy(padded[8:], plain)
	for i := 0; i < n; i++ {
		copy(regs[i][:], padded[i*8:i*8+8])
	}

	var a [8]byte
	copy(a[:], kwpICV[:])

	for t := 1; t <= 6*n; t++ {
		var blk Block
		copy(blk[0:8], a[:])
		copy(blk[8:16], regs[(t-1)%n][:])
		EncryptBlock(ek, &blk)
		var t64 [8]byte
		word.StoreLE64(t64[:], uint64(t))
		for i := range a {
			a[i] = blk[i] ^ t64[i]
		}
		copy(regs[(t-1)%n][:], blk[8:16])
	}

	out := make([]byte, 8+n*8)
	copy(out[0:8], a[:])
	for i := 0; i < n; i++ {
		copy(out[8+i*8:16+i*8], regs[i][:])
	}
	return out
}

func kwUnwrap(ek ExpandedKey, blob []byte) ([]byte, error) {
	if len(blob) < 24 || len(blob)%8 != 0 {
		return nil, ErrBadKWPBlob
	}
	n := len(blob)/8 - 1
	var a [8]byte
	copy(a[:], blob[0:8])
	regs := make([][8]byte, n)
	for i := 0; i < n; i++ {
		copy(regs[i][:], blob[8+i*8:16+i*8])
	}

	for t := 6 * n; t >= 1; t-- {
		var t64 [8]byte
		word.StoreLE64(t64[:], uint64(t))
		var aXor [8]byte
		for i := range a {
			aXor[i] = a[i] ^ t64[i]
		}
		var blk Block
		copy(blk[0:8], aXor[:])
		copy(blk[8:16], regs[(t-1)%n][:])
		DecryptBlock(ek, &blk)
		copy(a[:], blk[0:8])
		copy(regs[(t-1)%n][:], blk[8:16])
	}

	if a != kwpICV || regs[0] != kwpICV {
		return nil, ErrBadKWPBlob
	}
	plain := make([]byte, 0, (n-1)*8)
	for i := 1; i < n; i++ {
		plain = append(plain, regs[i][:]...)
	}
	return plain, nil
}
