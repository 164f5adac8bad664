// Copyright (c) 2025 The Belstd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package der implements the minimal subset of DER (Distinguished
// Encoding Rules) this module's container formats need: tag-length-value
// framing for INTEGER, OCTET STRING, OBJECT IDENTIFIER and SEQUENCE,
// plus the raw encode/decode primitives those formats build on.
// Go's standard encoding/asn1 is general-purpose but struct-tag driven
// and does not expose the low-level TLV cursor this module's envelope
// format (which reads its length from the tail of a file) needs; this
// package is hand-rolled for that reason, not by default.
package der

import (
	"github.com/belstd/core/stberr"
)

// Tag values used by this module.
const (
	TagInteger     = 0x02
	TagOctetString = 0x04
	TagObjectID    = 0x06
	TagSequence    = 0x30 // constructed | sequence
)

var (
	// ErrBadFormat is returned when a DER buffer is malformed or truncated.
	ErrBadFormat = stberr.New(stberr.BadFormat, "der: malformed encoding")
)

// TLV is a decoded tag-length-value triple; Value holds the raw content
// octets (for constructed types, the nested TLV encoding).
type TLV struct {
	Tag   byte
	Value []byte
}

// EncodeLength encodes n in DER's definite form (short form below 128,
// long form otherwise).
func EncodeLength(n int) []byte {
	if n < 0x80 {
		return []byte{byte(n)}
	}
	var be []byte
	for n > 0 {
		be = append([]byte{byte(n & 0xff)}, be...)
		n >>= 8
	}
	return append([]byte{0x80 | byte(len(be))}, be...)
}

// Encode wraps value in a tag-length-value triple.
func Encode(tag byte, value []byte) []byte {
	out := append([]byte{tag}, EncodeLength(len(value))...)
	return append(out, value...)
}

// EncodeSequence wraps the concatenation of elements in a SEQUENCE TLV.
func EncodeSequence(elements ...[]byte) []byte {
	var body []byte
	for _, e := range elements {
		body = append(body, e...)
	}
	return Encode(TagSequence, body)
}

// EncodeInteger encodes a non-negative integer given as big-endian
// octets, adding a leading 0x00 pad octet if the high bit is set (DER
// requires INTEGER content to be interpreted as two's-complement).
func EncodeInteger(be []byte) []byte {
	v := be
	for len(v) > 1 && v[0] == 0 {
		v = v[1:]
	}
	if len(v) == 0 {
		v = []byte{0}
	}
	if v[0]&0x80 != 0 {
		v = append([]byte{0x00}, v...)
	}
	return Encode(TagInteger, v)
}

// EncodeOctetString wraps b in an OCTET STRING TLV.
func EncodeOctetString(b []byte) []byte {
	return Encode(TagOctetString, b)
}

// Decode reads one TLV from the front of b and returns it along with
// the remaining unconsumed octets.
func Decode(b []byte) (TLV, []byte, error) {
	if len(b) < 2 {
		return TLV{}, nil, ErrBadFormat
	}
	tag := b[0]
	n, lenOctets, err := decodeLength(b[1:])
	if err != nil {
		return TLV{}, nil, err
	}
	start := 1 + lenOctets
	end := start + n
	if end > len(b) {
		return TLV{}, nil, ErrBadFormat
	}
	return TLV{Tag: tag, Value: b[start:end]}, b[end:], nil
}

// DecodeAll decodes every TLV in b, requiring the entire buffer to be
// consumed (used for the contents of a constructed SEQUENCE).
func DecodeAll(b []byte) ([]TLV, error) {
	var out []TLV
	for len(b) > 0 {
		var tlv TLV
		var err error
		tlv, b, err = Decode(b)
		if err != nil {
			return nil, err
		}
		out = append(out, tlv)
	}
	return out, nil
}

// TLVTotalLen returns the total octet length (tag + length octets +
// value) of the TLV starting at b, given only its header — b need not
// contain the full value, only enough leading octets to decode the tag
// and length fields (at most 6 octets for any length this module uses).
func TLVTotalLen(b []byte) (int, error) {
	if len(b) < 2 {
		return 0, ErrBadFormat
	}
	n, lenOctets, err := decodeLength(b[1:])
	if err != nil {
		return 0, err
	}
	return 1 + lenOctets + n, nil
}

func decodeLength(b []byte) (n, consumed int, err error) {
	if len(b) == 0 {
		return 0, 0, ErrBadFormat
	}
	if b[0] < 0x80 {
		return int(b[0]), 1, nil
	}
	numOctets := int(b[0] & 0x7f)
	if numOctets == 0 || numOctets > 4 || len(b) < 1+numOctets {
		return 0, 0, ErrBadFormat
	}
	n = 0
	for i := 0; i < numOctets; i++ {
		n = n<<8 | int(b[1+i])
	}
	return n, 1 + numOctets, nil
}

// DecodeIntegerBytes returns an INTEGER TLV's value with any DER pad
// octet stripped.
func DecodeIntegerBytes(tlv TLV) ([]byte, error) {
	if tlv.Tag != TagInteger || len(tlv.Value) == 0 {
		return nil, ErrBadFormat
	}
	v := tlv.Value
	for len(v) > 1 && v[0] == 0 {
		v = v[1:]
	}
	return v, nil
}
