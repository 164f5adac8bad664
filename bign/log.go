// Copyright (c) 2025 The Belstd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package bign

import "github.com/rs/zerolog"

// logger is a package-level, overridable structured logger, silent
// (zerolog.Nop) until a caller opts in. Validate is the only function
// in this package that logs; signing and verification stay on the hot
// path and never touch it.
var logger = zerolog.Nop()

// SetLogger installs l as the logger used for diagnostic events raised
// by Validate. Passing the zero value restores silence.
func SetLogger(l zerolog.Logger) {
	logger = l
}
