// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shapes classifies the static structure of values that can be
// exposed as properties. Every supported value is one of a small closed set
// of shapes ([Shapes]) over a base element kind ([Kinds]), and the pair
// determines how the value is flattened and encoded as text.
package shapes

import (
	"fmt"
	"reflect"
)

//go:generate core generate

// Shapes are the structural classifications of a property value.
type Shapes int32 //enums:enum

const (
	// Scalar is a single base element.
	Scalar Shapes = iota

	// FixedArray is a fixed size array of n elements ([n]E).
	FixedArray

	// DynamicList is a dynamically sized list of elements ([]E).
	DynamicList

	// FixedMatrix is a fixed array of fixed arrays ([n][m]E).
	FixedMatrix

	// DynamicListOfFixedArray is a dynamically sized list of
	// fixed arrays ([][m]E), for example a list of 3D points.
	DynamicListOfFixedArray
)

// Kinds are the base element kinds found at the leaf of every shape.
type Kinds int32 //enums:enum

const (
	// Integer is any signed or unsigned Go integer type.
	Integer Kinds = iota

	// Float is a 32 bit floating point number.
	Float

	// Double is a 64 bit floating point number.
	Double

	// Text is a string.
	Text

	// Bool is a boolean, typically presented as a checkbox.
	Bool

	// Record is a struct with named fields, which can only be
	// encoded as text through a record layout.
	Record
)

// IsNumber returns whether the kind is numeric (Integer, Float or Double).
func (k Kinds) IsNumber() bool {
	return k == Integer || k == Float || k == Double
}

// Info is the result of classifying a type.
type Info struct {

	// Type is the full type of the value.
	Type reflect.Type

	// Elem is the type of the base elements.
	Elem reflect.Type

	// Shape is the structural classification.
	Shape Shapes

	// Kind is the base element kind.
	Kind Kinds

	// Rows is the fixed number of rows: 1 for Scalar and FixedArray,
	// n for FixedMatrix, and 0 for the dynamic shapes.
	Rows int

	// Columns is the row width: 1 for Scalar and DynamicList, n for
	// FixedArray, and the inner array size for FixedMatrix and
	// DynamicListOfFixedArray.
	Columns int
}

// Resizable returns whether the number of rows can change at runtime.
func (in Info) Resizable() bool {
	return in.Shape == DynamicList || in.Shape == DynamicListOfFixedArray
}

// Len returns the fixed number of elements, or 0 for resizable shapes.
func (in Info) Len() int {
	return in.Rows * in.Columns
}

// TypeTag returns the tag that identifies the runtime shape and element
// kind of the value, which is the Go type string (eg: "[3][3]float32").
func (in Info) TypeTag() string {
	if in.Type == nil {
		return ""
	}
	return in.Type.String()
}

func (in Info) String() string {
	switch in.Shape {
	case FixedArray:
		return fmt.Sprintf("%v(%d) of %v", in.Shape, in.Columns, in.Kind)
	case FixedMatrix:
		return fmt.Sprintf("%v(%d, %d) of %v", in.Shape, in.Rows, in.Columns, in.Kind)
	case DynamicListOfFixedArray:
		return fmt.Sprintf("%v(%d) of %v", in.Shape, in.Columns, in.Kind)
	}
	return fmt.Sprintf("%v of %v", in.Shape, in.Kind)
}
