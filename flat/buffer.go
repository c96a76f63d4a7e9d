// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package flat provides [Buffer], the canonical one-dimensional
// representation of a property value: an ordered list of base elements
// with a row width (number of columns), which every supported shape
// reduces to and is reconstructed from.
package flat

import (
	"math"
	"reflect"

	"cogentcore.org/core/base/reflectx"
)

// Buffer is a flat, row-major list of base elements.
// The number of elements is always a multiple of Columns.
type Buffer struct {

	// Values is a slice of base elements ([]E), in row-major order.
	Values reflect.Value

	// Columns is the row width, which is at least 1.
	Columns int

	// Resizable is whether the number of rows can be changed
	// with [Buffer.SetRows].
	Resizable bool
}

// New returns a new [Buffer] of zero elements of the given type,
// with the given number of rows and columns.
func New(elem reflect.Type, rows, columns int, resizable bool) *Buffer {
	columns = max(1, columns)
	rows = max(0, rows)
	n := rows * columns
	return &Buffer{Values: reflect.MakeSlice(reflect.SliceOf(elem), n, n), Columns: columns, Resizable: resizable}
}

// Len returns the total number of elements.
func (b *Buffer) Len() int { return b.Values.Len() }

// Rows returns the number of rows (Len / Columns).
func (b *Buffer) Rows() int { return b.Len() / b.Columns }

// ElemType returns the type of the base elements.
func (b *Buffer) ElemType() reflect.Type { return b.Values.Type().Elem() }

// Index returns the settable element at the given flat index.
func (b *Buffer) Index(i int) reflect.Value { return b.Values.Index(i) }

// RowCell returns the settable element at the given row and column.
func (b *Buffer) RowCell(row, cell int) reflect.Value {
	return b.Values.Index(row*b.Columns + cell)
}

// SetRows sets the number of rows. It does nothing if the buffer is
// not [Buffer.Resizable]. Otherwise it truncates, or pads with zero
// elements, preserving the existing elements in the common prefix.
func (b *Buffer) SetRows(rows int) {
	if !b.Resizable {
		return
	}
	rows = max(0, rows)
	n := rows * b.Columns
	if n == b.Len() {
		return
	}
	nv := reflect.MakeSlice(b.Values.Type(), n, n)
	reflect.Copy(nv, b.Values)
	b.Values = nv
}

// Clone returns a copy of the buffer with its own element storage.
func (b *Buffer) Clone() *Buffer {
	n := b.Len()
	nv := reflect.MakeSlice(b.Values.Type(), n, n)
	reflect.Copy(nv, b.Values)
	return &Buffer{Values: nv, Columns: b.Columns, Resizable: b.Resizable}
}

// Float1D returns the element at the given flat index as a float64.
// Non-numeric elements return 0, except bools which are 0 or 1.
func (b *Buffer) Float1D(i int) float64 {
	v := b.Values.Index(i)
	switch {
	case v.CanInt():
		return float64(v.Int())
	case v.CanUint():
		return float64(v.Uint())
	case v.CanFloat():
		return v.Float()
	case v.Kind() == reflect.Bool:
		if v.Bool() {
			return 1
		}
	}
	return 0
}

// SetFloat1D sets the element at the given flat index from a float64,
// converting to the element type. Integer elements saturate at the
// limits of their type, and are not changed by NaN.
// Non-numeric elements are not changed.
func (b *Buffer) SetFloat1D(val float64, i int) {
	v := b.Values.Index(i)
	switch {
	case v.CanInt():
		if math.IsNaN(val) {
			return
		}
		bits := v.Type().Bits()
		lim := math.Ldexp(1, bits-1)
		switch {
		case val >= lim:
			v.SetInt(math.MaxInt64 >> (64 - bits))
		case val < -lim:
			v.SetInt(math.MinInt64 >> (64 - bits))
		default:
			v.SetInt(int64(val))
		}
	case v.CanUint():
		if math.IsNaN(val) {
			return
		}
		bits := v.Type().Bits()
		switch {
		case val >= math.Ldexp(1, bits):
			v.SetUint(math.MaxUint64 >> (64 - bits))
		case val < 0:
			v.SetUint(0)
		default:
			v.SetUint(uint64(val))
		}
	case v.CanFloat():
		v.SetFloat(val)
	}
}

// Limits returns the smallest and largest values that the elements
// can hold, as float64. They are infinite for float64 and
// non-numeric elements.
func (b *Buffer) Limits() (min, max float64) {
	typ := b.ElemType()
	switch typ.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		lim := math.Ldexp(1, typ.Bits()-1)
		return -lim, lim - 1
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return 0, math.Ldexp(1, typ.Bits()) - 1
	case reflect.Float32:
		return -math.MaxFloat32, math.MaxFloat32
	}
	return math.Inf(-1), math.Inf(1)
}

// String1D returns the element at the given flat index as a string.
func (b *Buffer) String1D(i int) string {
	return reflectx.ToString(b.Values.Index(i).Interface())
}
