// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flat

import (
	"errors"
	"fmt"
	"reflect"

	"cogentcore.org/props/shapes"
)

// ErrMismatch is returned by [Unflatten] when a buffer does not
// fit the shape it is being written into.
var ErrMismatch = errors.New("flat buffer does not match shape")

// Flatten returns a new [Buffer] holding a copy of the elements of the
// given value, which must be of the type described by info.
func Flatten(v reflect.Value, info shapes.Info) *Buffer {
	switch info.Shape {
	case shapes.Scalar:
		b := New(info.Elem, 1, 1, false)
		b.Index(0).Set(v)
		return b
	case shapes.FixedArray:
		b := New(info.Elem, 1, info.Columns, false)
		reflect.Copy(b.Values, v)
		return b
	case shapes.DynamicList:
		b := New(info.Elem, v.Len(), 1, true)
		reflect.Copy(b.Values, v)
		return b
	case shapes.FixedMatrix:
		b := New(info.Elem, info.Rows, info.Columns, false)
		for r := range info.Rows {
			reflect.Copy(b.Values.Slice(r*info.Columns, (r+1)*info.Columns), v.Index(r))
		}
		return b
	case shapes.DynamicListOfFixedArray:
		rows := v.Len()
		b := New(info.Elem, rows, info.Columns, true)
		for r := range rows {
			reflect.Copy(b.Values.Slice(r*info.Columns, (r+1)*info.Columns), v.Index(r))
		}
		return b
	}
	return nil
}

// Unflatten writes the elements of the given buffer into dst, which must
// be settable and of the type described by info. Fixed shapes require
// the buffer to have exactly the fixed number of elements, while dynamic
// shapes take their number of rows from the buffer. dst is not modified
// if an error is returned.
func Unflatten(b *Buffer, dst reflect.Value, info shapes.Info) error {
	if b.ElemType() != info.Elem {
		return fmt.Errorf("%w: element type %v instead of %v", ErrMismatch, b.ElemType(), info.Elem)
	}
	if b.Columns != info.Columns {
		return fmt.Errorf("%w: %d columns instead of %d", ErrMismatch, b.Columns, info.Columns)
	}
	if !info.Resizable() && b.Len() != info.Len() {
		return fmt.Errorf("%w: %d elements instead of %d", ErrMismatch, b.Len(), info.Len())
	}
	switch info.Shape {
	case shapes.Scalar:
		dst.Set(b.Index(0))
	case shapes.FixedArray:
		reflect.Copy(dst, b.Values)
	case shapes.DynamicList:
		n := b.Len()
		if dst.Len() != n {
			dst.Set(reflect.MakeSlice(info.Type, n, n))
		}
		reflect.Copy(dst, b.Values)
	case shapes.FixedMatrix:
		for r := range info.Rows {
			reflect.Copy(dst.Index(r), b.Values.Slice(r*info.Columns, (r+1)*info.Columns))
		}
	case shapes.DynamicListOfFixedArray:
		rows := b.Rows()
		if dst.Len() != rows {
			dst.Set(reflect.MakeSlice(info.Type, rows, rows))
		}
		for r := range rows {
			reflect.Copy(dst.Index(r), b.Values.Slice(r*info.Columns, (r+1)*info.Columns))
		}
	}
	return nil
}
