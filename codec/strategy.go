// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codec

import (
	"fmt"
	"reflect"

	"cogentcore.org/props/flat"
	"cogentcore.org/props/shapes"
)

// Strategy encodes and decodes values of one shape and element kind.
// Strategies are selected once per value type with [For].
type Strategy interface {

	// Encode returns the text for the given value.
	Encode(v reflect.Value) string

	// Decode parses the given text into dst, which must be settable.
	// dst is not modified if an error wrapping [ErrParse] is returned.
	// Record lists return a [*PartialError] together with the records
	// decoded before the malformed one, which are set into dst.
	Decode(s string, dst reflect.Value) error
}

// For returns the [Strategy] for values with the given shape info.
// Record elements use the given layout, or a default [NewLayout] of
// the element type if it is nil. Records are supported as scalars and
// in fixed arrays or dynamic lists.
func For(info shapes.Info, l *Layout) (Strategy, error) {
	return strategyFor(info, l, map[reflect.Type]bool{})
}

func strategyFor(info shapes.Info, l *Layout, visiting map[reflect.Type]bool) (Strategy, error) {
	if info.Kind != shapes.Record {
		if info.Shape == shapes.Scalar {
			return scalarStrategy{}, nil
		}
		return &listStrategy{info: info}, nil
	}
	if l == nil {
		var err error
		l, err = newLayout(info.Elem, nil, visiting)
		if err != nil {
			return nil, err
		}
	} else if l.Type != info.Elem {
		return nil, fmt.Errorf("record layout for %v cannot be used with %v", l.Type, info.Elem)
	}
	switch info.Shape {
	case shapes.Scalar:
		return &recordStrategy{layout: l}, nil
	case shapes.FixedArray, shapes.DynamicList:
		return &recordListStrategy{info: info, layout: l}, nil
	}
	return nil, fmt.Errorf("%w: records are not supported in %v shapes", shapes.ErrUnsupportedShape, info.Shape)
}

// scalarStrategy encodes a single base element.
type scalarStrategy struct{}

func (scalarStrategy) Encode(v reflect.Value) string {
	return FormatElement(v)
}

func (scalarStrategy) Decode(s string, dst reflect.Value) error {
	tmp := reflect.New(dst.Type()).Elem()
	if err := ParseElement(s, tmp); err != nil {
		return err
	}
	dst.Set(tmp)
	return nil
}

// listStrategy encodes all non-scalar shapes of base elements
// through a flat buffer.
type listStrategy struct {
	info shapes.Info
}

func (ls *listStrategy) Encode(v reflect.Value) string {
	return FormatList(flat.Flatten(v, ls.info), ls.info.Kind)
}

func (ls *listStrategy) Decode(s string, dst reflect.Value) error {
	info := ls.info
	var tokens []string
	if s != "" || !info.Resizable() {
		tokens = SplitList(s, info.Kind)
	}
	n := len(tokens)
	if !info.Resizable() && n != info.Len() {
		return fmt.Errorf("%w: %d elements instead of %d for %v", ErrParse, n, info.Len(), info.Type)
	}
	if n%info.Columns != 0 {
		return fmt.Errorf("%w: %d elements is not a multiple of %d columns for %v", ErrParse, n, info.Columns, info.Type)
	}
	sl, err := parseTokens(tokens, info.Elem)
	if err != nil {
		return err
	}
	b := &flat.Buffer{Values: sl, Columns: info.Columns, Resizable: info.Resizable()}
	return flat.Unflatten(b, dst, info)
}

// recordStrategy encodes a single record.
type recordStrategy struct {
	layout *Layout
}

func (rs *recordStrategy) Encode(v reflect.Value) string {
	return EncodeRecord(v, rs.layout)
}

func (rs *recordStrategy) Decode(s string, dst reflect.Value) error {
	return DecodeRecord(s, dst, rs.layout)
}

// recordListStrategy encodes a fixed array or dynamic list of records.
type recordListStrategy struct {
	info   shapes.Info
	layout *Layout
}

func (rs *recordListStrategy) Encode(v reflect.Value) string {
	return EncodeRecords(v, rs.layout)
}

func (rs *recordListStrategy) Decode(s string, dst reflect.Value) error {
	list, err := DecodeRecords(s, rs.layout)
	if !rs.info.Resizable() {
		if err != nil {
			return fmt.Errorf("%w: %w", ErrParse, err)
		}
		if list.Len() != rs.info.Len() {
			return fmt.Errorf("%w: %d records instead of %d for %v", ErrParse, list.Len(), rs.info.Len(), rs.info.Type)
		}
		reflect.Copy(dst, list)
		return nil
	}
	dst.Set(list.Convert(rs.info.Type))
	return err
}
