// Copyright (c) 2025 The Belstd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package envelope implements the high-level signature envelope format:
// a DER SEQUENCE of a certificate chain, an optional date, and the raw
// signature octets, stored byte-reversed so it can be located from the
// tail of any signed file.
package envelope

import (
	"github.com/belstd/core/bash"
	"github.com/belstd/core/belt"
	"github.com/belstd/core/der"
	"github.com/belstd/core/stberr"
)

// ErrBadFormat is returned when an envelope fails to parse.
var ErrBadFormat = stberr.New(stberr.BadFormat, "envelope: malformed signature envelope")

// DateLen is the fixed octet length of the envelope's optional date field.
const DateLen = 6

// Envelope is a decoded signature envelope. Date is nil for the legacy
// no-date form.
type Envelope struct {
	Certs []byte
	Date  *[DateLen]byte
	Sig   []byte
}

func validSigLen(n int) bool {
	return n == 34 || n == 48 || n == 72 || n == 96
}

// HashSignedContent computes the hash that binds signed_content,
// cert_chain_octets and date_bytes together. The signature length picks
// the hash: 34/48-octet signatures (l=96/128) bind to Belt-HASH,
// 72/96-octet signatures (l=192/256) bind to Bash-HASH384/512.
func HashSignedContent(sigLen int, signedContent, certChain, dateBytes []byte) ([]byte, error) {
	data := make([]byte, 0, len(signedContent)+len(certChain)+len(dateBytes))
	data = append(data, signedContent...)
	data = append(data, certChain...)
	data = append(data, dateBytes...)

	switch sigLen {
	case 34, 48:
		h := belt.Hash(data)
		return h[:], nil
	case 72:
		return bash.Hash384(data), nil
	case 96:
		return bash.Hash512(data), nil
	default:
		return nil, ErrBadFormat
	}
}

// reverseBytes returns a reversed copy of b.
func reverseBytes(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}

// EncodeDER builds the envelope's plain (non-reversed) DER encoding.
// Build always includes the date field (the dated form is the only one
// this module produces); ParseDER accepts both forms on read.
func EncodeDER(certs []byte, date *[DateLen]byte, sig []byte) ([]byte, error) {
	if !validSigLen(len(sig)) {
		return nil, ErrBadFormat
	}
	parts := [][]byte{der.EncodeOctetString(certs)}
	if date != nil {
		parts = append(parts, der.EncodeOctetString(date[:]))
	}
	parts = append(parts, der.EncodeOctetString(sig))
	return der.EncodeSequence(parts...), nil
}

// Build encodes an envelope with a date and returns it byte-reversed,
// ready to be appended to a signed file.
func Build(certs []byte, date [DateLen]byte, sig []byte) ([]byte, error) {
	raw, err := EncodeDER(certs, &date, sig)
	if err != nil {
		return nil, err
	}
	return reverseBytes(raw), nil
}

// ParseDER decodes a plain (non-reversed) envelope, accepting both the
// 3-part dated form (certs, date, sig) and the legacy 2-part form
// (certs, sig).
func ParseDER(b []byte) (*Envelope, error) {
	outer, rest, err := der.Decode(b)
	if err != nil || len(rest) != 0 || outer.Tag != der.TagSequence {
		return nil, ErrBadFormat
	}
	parts, err := der.DecodeAll(outer.Value)
	if err != nil || (len(parts) != 2 && len(parts) != 3) {
		return nil, ErrBadFormat
	}

	certsTLV := parts[0]
	if certsTLV.Tag != der.TagOctetString {
		return nil, ErrBadFormat
	}

	env := &Envelope{Certs: certsTLV.Value}
	var sigTLV der.TLV
	if len(parts) == 3 {
		dateTLV := parts[1]
		if dateTLV.Tag != der.TagOctetString || len(dateTLV.Value) != DateLen {
			return nil, ErrBadFormat
		}
		var d [DateLen]byte
		copy(d[:], dateTLV.Value)
		env.Date = &d
		sigTLV = parts[2]
	} else {
		sigTLV = parts[1]
	}
	if sigTLV.Tag != der.TagOctetString || !validSigLen(len(sigTLV.Value)) {
		return nil, ErrBadFormat
	}
	env.Sig = sigTLV.Value
	return env, nil
}

// Parse decodes a byte-reversed envelope (the form Build produces and
// the form stored in a signed file).
func Parse(reversed []byte) (*Envelope, error) {
	return ParseDER(reverseBytes(reversed))
}

// ParseFromTail locates and decodes an envelope appended to the tail of
// file: it reads up to 16 octets from the tail, reverses them to learn
// the envelope's total encoded length from its leading SEQUENCE header,
// then re-reads and decodes the full envelope.
func ParseFromTail(file []byte) (*Envelope, error) {
	probeLen := 16
	if probeLen > len(file) {
		probeLen = len(file)
	}
	if probeLen < 2 {
		return nil, ErrBadFormat
	}
	probe := reverseBytes(file[len(file)-probeLen:])
	total, err := der.TLVTotalLen(probe)
	if err != nil {
		return nil, ErrBadFormat
	}
	if total > len(file) {
		return nil, ErrBadFormat
	}
	return Parse(file[len(file)-total:])
}
