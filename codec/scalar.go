// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package codec provides the text encodings of property values:
// single elements, lists of elements, and records described by a [Layout].
// The encodings are locale independent and designed to round trip.
package codec

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"cogentcore.org/core/base/reflectx"
)

// ErrParse is returned (wrapped) when text cannot be parsed into
// the expected number or kind of elements.
var ErrParse = errors.New("parse error")

// FormatElement returns the canonical text for a single base element.
// Integers are written in base 10 and floating point numbers in the
// shortest form that parses back to the same value.
func FormatElement(v reflect.Value) string {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'g', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'g', -1, 64)
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	case reflect.String:
		return v.String()
	}
	return reflectx.ToString(v.Interface())
}

// ParseElement parses the given text into dst, which must be a settable
// base element. Surrounding whitespace is ignored for everything except
// text. dst is not modified if an error is returned.
func ParseElement(s string, dst reflect.Value) error {
	typ := dst.Type()
	if dst.Kind() != reflect.String {
		s = strings.TrimSpace(s)
	}
	switch dst.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(s, 10, typ.Bits())
		if err != nil {
			return parseError(s, typ)
		}
		dst.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(s, 10, typ.Bits())
		if err != nil {
			return parseError(s, typ)
		}
		dst.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, typ.Bits())
		if err != nil {
			return parseError(s, typ)
		}
		dst.SetFloat(f)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return parseError(s, typ)
		}
		dst.SetBool(b)
	case reflect.String:
		dst.SetString(s)
	default:
		return fmt.Errorf("%w: %v is not a base element type", ErrParse, typ)
	}
	return nil
}

func parseError(s string, typ reflect.Type) error {
	return fmt.Errorf("%w: %q is not a valid %v", ErrParse, s, typ)
}
