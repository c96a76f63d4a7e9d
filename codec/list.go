// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codec

import (
	"reflect"
	"strings"

	"cogentcore.org/props/flat"
	"cogentcore.org/props/shapes"
)

const (
	// NumberSeparator separates numeric and bool elements in list text.
	NumberSeparator = " "

	// TextSeparator separates text elements in list text.
	TextSeparator = "|"
)

// Separator returns the separator between elements of the given kind.
func Separator(kind shapes.Kinds) string {
	if kind == shapes.Text {
		return TextSeparator
	}
	return NumberSeparator
}

// FormatList returns the list text for all elements of the given buffer.
func FormatList(b *flat.Buffer, kind shapes.Kinds) string {
	sep := Separator(kind)
	var sb strings.Builder
	for i := range b.Len() {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(FormatElement(b.Index(i)))
	}
	return sb.String()
}

// SplitList splits list text into element tokens. Numeric tokens are
// separated by any run of whitespace. Text tokens are separated by
// [TextSeparator], and empty tokens are kept.
func SplitList(s string, kind shapes.Kinds) []string {
	if kind == shapes.Text {
		return strings.Split(s, TextSeparator)
	}
	return strings.Fields(s)
}

// ParseList parses list text into a new slice of the given element type.
func ParseList(s string, elem reflect.Type, kind shapes.Kinds) (reflect.Value, error) {
	return parseTokens(SplitList(s, kind), elem)
}

func parseTokens(tokens []string, elem reflect.Type) (reflect.Value, error) {
	sl := reflect.MakeSlice(reflect.SliceOf(elem), len(tokens), len(tokens))
	for i, tok := range tokens {
		if err := ParseElement(tok, sl.Index(i)); err != nil {
			return reflect.Value{}, err
		}
	}
	return sl, nil
}
