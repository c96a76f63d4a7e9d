// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shapes

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// basicTypes are the element types that can be named in a type tag.
var basicTypes = map[string]reflect.Type{
	"int":     reflect.TypeFor[int](),
	"int8":    reflect.TypeFor[int8](),
	"int16":   reflect.TypeFor[int16](),
	"int32":   reflect.TypeFor[int32](),
	"int64":   reflect.TypeFor[int64](),
	"uint":    reflect.TypeFor[uint](),
	"uint8":   reflect.TypeFor[uint8](),
	"uint16":  reflect.TypeFor[uint16](),
	"uint32":  reflect.TypeFor[uint32](),
	"uint64":  reflect.TypeFor[uint64](),
	"float32": reflect.TypeFor[float32](),
	"float64": reflect.TypeFor[float64](),
	"string":  reflect.TypeFor[string](),
	"bool":    reflect.TypeFor[bool](),
}

// MaxTagElements is the largest number of elements in the fixed arrays
// of a type given by [ParseTypeTag], so that a type tag read from a
// document cannot allocate an arbitrarily large value.
const MaxTagElements = 1 << 20

// ParseTypeTag returns the type for the given type tag, as produced by
// [Info.TypeTag] for values of basic element types (eg: "[]float64",
// "[4][4]float32"). Record types cannot be recovered from a tag.
// Tags with more than [MaxTagElements] fixed array elements are
// rejected. The resulting type has not been classified; use [Classify]
// for that.
func ParseTypeTag(tag string) (reflect.Type, error) {
	return parseTypeTag(strings.TrimSpace(tag), 1)
}

// parseTypeTag parses the given tag, within fixed arrays totaling
// the given number of elements.
func parseTypeTag(tag string, elems int) (reflect.Type, error) {
	if typ, ok := basicTypes[tag]; ok {
		return typ, nil
	}
	if strings.HasPrefix(tag, "[]") {
		el, err := parseTypeTag(tag[2:], elems)
		if err != nil {
			return nil, err
		}
		return reflect.SliceOf(el), nil
	}
	if strings.HasPrefix(tag, "[") {
		end := strings.IndexByte(tag, ']')
		if end < 0 {
			return nil, fmt.Errorf("%w: malformed type tag %q", ErrUnsupportedShape, tag)
		}
		n, err := strconv.Atoi(tag[1:end])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: invalid array size in type tag %q", ErrUnsupportedShape, tag)
		}
		if n > 0 && elems > MaxTagElements/n {
			return nil, fmt.Errorf("%w: type tag %q has more than %d elements", ErrUnsupportedShape, tag, MaxTagElements)
		}
		el, err := parseTypeTag(tag[end+1:], elems*max(n, 1))
		if err != nil {
			return nil, err
		}
		return reflect.ArrayOf(n, el), nil
	}
	return nil, fmt.Errorf("%w: unknown type tag %q", ErrUnsupportedShape, tag)
}
