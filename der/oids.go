// Copyright (c) 2025 The Belstd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package der

// OID is a dotted object identifier, stored as its component arcs.
type OID []int

// EncodeOID DER-encodes an OID's arcs and wraps them in an OBJECT
// IDENTIFIER TLV.
func EncodeOID(o OID) []byte {
	if len(o) < 2 {
		return Encode(TagObjectID, nil)
	}
	body := []byte{byte(40*o[0] + o[1])}
	for _, arc := range o[2:] {
		body = append(body, encodeBase128(arc)...)
	}
	return Encode(TagObjectID, body)
}

func encodeBase128(n int) []byte {
	if n == 0 {
		return []byte{0}
	}
	var groups []byte
	for n > 0 {
		groups = append([]byte{byte(n & 0x7f)}, groups...)
		n >>= 7
	}
	for i := 0; i < len(groups)-1; i++ {
		groups[i] |= 0x80
	}
	return groups
}

// DecodeOID decodes an OBJECT IDENTIFIER TLV's value back into arcs.
func DecodeOID(tlv TLV) (OID, error) {
	if tlv.Tag != TagObjectID || len(tlv.Value) == 0 {
		return nil, ErrBadFormat
	}
	b := tlv.Value
	arcs := []int{int(b[0]) / 40, int(b[0]) % 40}
	b = b[1:]
	for len(b) > 0 {
		v := 0
		for len(b) > 0 {
			v = v<<7 | int(b[0]&0x7f)
			more := b[0]&0x80 != 0
			b = b[1:]
			if !more {
				break
			}
		}
		arcs = append(arcs, v)
	}
	return arcs, nil
}

// Hash algorithm OIDs bound to Bign security levels.
var (
	OIDBeltHash    = OID{1, 2, 112, 0, 2, 0, 34, 101, 31, 81}
	OIDBashHash384 = OID{1, 2, 112, 0, 2, 0, 34, 101, 77, 12}
	OIDBashHash512 = OID{1, 2, 112, 0, 2, 0, 34, 101, 77, 13}
)

// Curve OIDs for the four Bign parameter sets.
var (
	OIDCurve96    = OID{1, 2, 112, 0, 2, 0, 34, 101, 45, 3, 0}
	OIDCurve256v1 = OID{1, 2, 112, 0, 2, 0, 34, 101, 45, 3, 1}
	OIDCurve384v1 = OID{1, 2, 112, 0, 2, 0, 34, 101, 45, 3, 2}
	OIDCurve512v1 = OID{1, 2, 112, 0, 2, 0, 34, 101, 45, 3, 3}
)

// PKI OIDs used by the Bpki and signature-envelope container formats.
var (
	OIDBignPubkey = OID{1, 2, 112, 0, 2, 0, 34, 101, 45, 2, 1}
	OIDBelsShare  = OID{1, 2, 112, 0, 2, 0, 34, 101, 60, 11}
	OIDBelsMode1  = OID{1, 2, 112, 0, 2, 0, 34, 101, 60, 2, 1}
	OIDBelsMode2  = OID{1, 2, 112, 0, 2, 0, 34, 101, 60, 2, 2}
	OIDBelsMode3  = OID{1, 2, 112, 0, 2, 0, 34, 101, 60, 2, 3}
	OIDPBKDF2     = OID{1, 2, 840, 113549, 1, 5, 12}
	OIDPBES2      = OID{1, 2, 840, 113549, 1, 5, 13}
	OIDBeltKWP256 = OID{1, 2, 112, 0, 2, 0, 34, 101, 31, 73}
	OIDHMACHBelt  = OID{1, 2, 112, 0, 2, 0, 34, 101, 47, 12}
)
