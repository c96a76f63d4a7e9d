// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shapes

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrUnsupportedShape is returned when a type cannot be classified
// into one of the supported [Shapes] and [Kinds].
var ErrUnsupportedShape = errors.New("unsupported shape")

// Classify returns the [Info] for the given type. It is total over
// the supported element kinds combined with nesting depth of at most two,
// where the inner level of a two level nesting must be a fixed array:
// E, [n]E, []E, [n][m]E and [][m]E. Any other type results in an error
// wrapping [ErrUnsupportedShape].
func Classify(typ reflect.Type) (Info, error) {
	if typ == nil {
		return Info{}, fmt.Errorf("%w: nil type", ErrUnsupportedShape)
	}
	in := Info{Type: typ}
	switch typ.Kind() {
	case reflect.Array:
		if typ.Len() < 1 {
			return Info{}, fmt.Errorf("%w: zero length array %v", ErrUnsupportedShape, typ)
		}
		inner := typ.Elem()
		if inner.Kind() == reflect.Array {
			if inner.Len() < 1 {
				return Info{}, fmt.Errorf("%w: zero length array %v", ErrUnsupportedShape, typ)
			}
			in.Shape = FixedMatrix
			in.Rows = typ.Len()
			in.Columns = inner.Len()
			in.Elem = inner.Elem()
		} else {
			in.Shape = FixedArray
			in.Rows = 1
			in.Columns = typ.Len()
			in.Elem = inner
		}
	case reflect.Slice:
		inner := typ.Elem()
		if inner.Kind() == reflect.Array {
			if inner.Len() < 1 {
				return Info{}, fmt.Errorf("%w: zero length array %v", ErrUnsupportedShape, typ)
			}
			in.Shape = DynamicListOfFixedArray
			in.Columns = inner.Len()
			in.Elem = inner.Elem()
		} else {
			in.Shape = DynamicList
			in.Columns = 1
			in.Elem = inner
		}
	default:
		in.Shape = Scalar
		in.Rows = 1
		in.Columns = 1
		in.Elem = typ
	}
	kind, err := KindOf(in.Elem)
	if err != nil {
		return Info{}, fmt.Errorf("%w (in %v)", err, typ)
	}
	if kind == Record && (in.Shape == FixedMatrix || in.Shape == DynamicListOfFixedArray) {
		return Info{}, fmt.Errorf("%w: records are not supported in %v shapes: %v", ErrUnsupportedShape, in.Shape, typ)
	}
	in.Kind = kind
	return in, nil
}

// KindOf returns the base element [Kinds] of the given element type.
// Containers at this level mean that the nesting is too deep.
func KindOf(typ reflect.Type) (Kinds, error) {
	switch typ.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Integer, nil
	case reflect.Float32:
		return Float, nil
	case reflect.Float64:
		return Double, nil
	case reflect.String:
		return Text, nil
	case reflect.Bool:
		return Bool, nil
	case reflect.Struct:
		return Record, nil
	case reflect.Array, reflect.Slice:
		return 0, fmt.Errorf("%w: nesting is deeper than supported at %v", ErrUnsupportedShape, typ)
	}
	return 0, fmt.Errorf("%w: element type %v of kind %v", ErrUnsupportedShape, typ, typ.Kind())
}
