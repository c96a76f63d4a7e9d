// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codec

import "strings"

const (
	// RecordStart opens a record.
	RecordStart = '{'

	// RecordEnd closes a record.
	RecordEnd = '}'

	// FieldSeparator separates the fields of a record, and the
	// records of a record list.
	FieldSeparator = ','

	// EscapeChar marks the following delimiter as part of a field.
	EscapeChar = '\\'
)

var (
	escaper   = strings.NewReplacer(",", `\,`, "}", `\}`)
	unescaper = strings.NewReplacer(`\,`, ",", `\}`, "}")
)

// Escape escapes the field separator and record end characters in the
// given field text. The escape character itself is not escaped.
func Escape(s string) string { return escaper.Replace(s) }

// Unescape reverses [Escape].
func Unescape(s string) string { return unescaper.Replace(s) }

// IndexUnescaped returns the index of the first byte of s at or after
// from that is one of the given delimiters and is not immediately
// preceded by [EscapeChar], or -1 if there is none.
func IndexUnescaped(s string, from int, delims string) int {
	for i := from; i < len(s); i++ {
		if strings.IndexByte(delims, s[i]) < 0 {
			continue
		}
		if i > 0 && s[i-1] == EscapeChar {
			continue
		}
		return i
	}
	return -1
}
