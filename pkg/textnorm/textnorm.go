// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package textnorm normalizes user-supplied display names before storage.
//
// # Usage
//
// Names typed on different platforms can carry the same accented character in
// composed or decomposed form. Normalizing to NFC keeps stored names byte-stable
// so equal-looking names compare equal.
package textnorm

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Name returns s in Unicode NFC with surrounding whitespace removed.
//
// Interior whitespace and letter case are preserved.
func Name(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
