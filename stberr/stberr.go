// Copyright (c) 2025 The Belstd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package stberr defines the exhaustive error-kind enumeration every
// package in this module returns through. Packages still declare their
// own sentinel values at the point of use — e.g.
// `var ErrBadMac = stberr.New(stberr.BadMac, "belt: mac mismatch")` next to
// the code that returns it — following the common Go convention of a
// per-file `var ( Err... = errors.New(...) )` block; stberr only supplies
// the shared Kind so callers can branch on category with errors.Is /
// errors.As instead of string matching.
package stberr

import "fmt"

// Kind is one of the exhaustive error categories a core operation may
// fail with.
type Kind int

const (
	_ Kind = iota
	BadInput
	BadParams
	BadKey
	BadPubkey
	BadPrivkey
	BadSecretKey
	BadShareKey
	BadHash
	BadSig
	BadMac
	BadCrc
	BadFormat
	BadDate
	BadCert
	BadOid
	BadRng
	NotEnoughEntropy
	OutOfMemory
	NotTrusted
	NotImplemented
	FileRead
	FileWrite
	FileOpen
	FileCreate
	FileNotFound
	SelfTest
)

var names = map[Kind]string{
	BadInput:         "bad_input",
	BadParams:        "bad_params",
	BadKey:           "bad_key",
	BadPubkey:        "bad_pubkey",
	BadPrivkey:       "bad_privkey",
	BadSecretKey:     "bad_secret_key",
	BadShareKey:      "bad_share_key",
	BadHash:          "bad_hash",
	BadSig:           "bad_sig",
	BadMac:           "bad_mac",
	BadCrc:           "bad_crc",
	BadFormat:        "bad_format",
	BadDate:          "bad_date",
	BadCert:          "bad_cert",
	BadOid:           "bad_oid",
	BadRng:           "bad_rng",
	NotEnoughEntropy: "not_enough_entropy",
	OutOfMemory:      "out_of_memory",
	NotTrusted:       "not_trusted",
	NotImplemented:   "not_implemented",
	FileRead:         "file_read",
	FileWrite:        "file_write",
	FileOpen:         "file_open",
	FileCreate:       "file_create",
	FileNotFound:     "file_not_found",
	SelfTest:         "self_test",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if s, ok := names[k]; ok {
		return s
	}
	return "unknown"
}

// Error is the concrete error type returned across this module. It
// carries a Kind for programmatic dispatch and a human-readable message.
type Error struct {
	Kind Kind
	Msg  string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Is supports errors.Is(err, stberr.Of(stberr.BadMac)) style comparisons:
// it matches any *Error target of the same Kind, ignoring the message.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

// New constructs an *Error of the given kind.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Newf constructs an *Error of the given kind with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// KindOf returns the Kind carried by an *Error, or false if err is not one.
func KindOf(err error) (Kind, bool) {
	e, ok := err.(*Error)
	if !ok {
		return 0, false
	}
	return e.Kind, true
}

// Of returns a message-less *Error of the given kind, a sentinel for
// errors.Is(err, stberr.Of(stberr.BadMac)) style matching.
func Of(kind Kind) error { return &Error{Kind: kind} }
