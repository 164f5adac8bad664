// Copyright (c) 2025 The Belstd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package bpki

import "github.com/rs/zerolog"

// logger is a package-level, overridable structured logger, silent
// (zerolog.Nop) until a caller opts in via SetLogger. Unwrap logs a
// debug event before returning a format error when the container is not
// a well-formed outer SEQUENCE or the decrypted payload is not a
// well-formed PrivateKeyInfo SEQUENCE (its other format checks return
// without logging), to help a caller tell a
// malformed container apart from a wrong password without leaking
// either into the returned error.
var logger = zerolog.Nop()

// SetLogger installs l as the logger used for Unwrap's diagnostic
// events. Passing the zero value restores silence.
func SetLogger(l zerolog.Logger) {
	logger = l
}
