// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codec

import (
	"fmt"
	"reflect"

	"cogentcore.org/props/shapes"
)

// Field describes one field of a record.
type Field struct {

	// Name is the name of the struct field.
	Name string

	// Index is the index path of the struct field, for use with
	// [reflect.Value.FieldByIndex].
	Index []int

	// Info is the shape classification of the field.
	Info shapes.Info

	// strategy encodes and decodes the field value.
	strategy Strategy
}

// Value returns the field value within the given record value.
func (f *Field) Value(rec reflect.Value) reflect.Value {
	return rec.FieldByIndex(f.Index)
}

// Layout is the ordered list of fields of a record type that are
// encoded as record text.
type Layout struct {

	// Type is the struct type of the record.
	Type reflect.Type

	// Fields are the encoded fields, in encoding order.
	Fields []Field
}

// NewLayout returns a new [Layout] for the given struct type. If no names
// are given, all exported fields (including promoted fields of embedded
// structs) are used in declaration order, skipping any with a `prop:"-"`
// tag. Otherwise the named fields are used in the given order.
// Each field must have a supported shape.
func NewLayout(typ reflect.Type, names ...string) (*Layout, error) {
	return newLayout(typ, names, map[reflect.Type]bool{})
}

func newLayout(typ reflect.Type, names []string, visiting map[reflect.Type]bool) (*Layout, error) {
	if typ == nil || typ.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: record layout requires a struct type, not %v", shapes.ErrUnsupportedShape, typ)
	}
	if visiting[typ] {
		return nil, fmt.Errorf("%w: record type %v contains itself", shapes.ErrUnsupportedShape, typ)
	}
	visiting[typ] = true
	defer delete(visiting, typ)

	var fields []reflect.StructField
	if len(names) == 0 {
		for _, sf := range reflect.VisibleFields(typ) {
			if sf.Anonymous || !sf.IsExported() || sf.Tag.Get("prop") == "-" || throughPointer(typ, sf.Index) {
				continue
			}
			fields = append(fields, sf)
		}
	} else {
		for _, nm := range names {
			sf, ok := typ.FieldByName(nm)
			if !ok || !sf.IsExported() || throughPointer(typ, sf.Index) {
				return nil, fmt.Errorf("record type %v has no exported field named %q", typ, nm)
			}
			fields = append(fields, sf)
		}
	}

	l := &Layout{Type: typ}
	for _, sf := range fields {
		info, err := shapes.Classify(sf.Type)
		if err != nil {
			return nil, fmt.Errorf("field %s.%s: %w", typ.Name(), sf.Name, err)
		}
		st, err := strategyFor(info, nil, visiting)
		if err != nil {
			return nil, fmt.Errorf("field %s.%s: %w", typ.Name(), sf.Name, err)
		}
		l.Fields = append(l.Fields, Field{Name: sf.Name, Index: sf.Index, Info: info, strategy: st})
	}
	return l, nil
}

// throughPointer returns whether the given field index path passes
// through an embedded pointer, which may be nil.
func throughPointer(typ reflect.Type, index []int) bool {
	for _, i := range index[:len(index)-1] {
		f := typ.Field(i)
		if f.Type.Kind() == reflect.Pointer {
			return true
		}
		typ = f.Type
	}
	return false
}

// Names returns the names of the fields in order.
func (l *Layout) Names() []string {
	names := make([]string, len(l.Fields))
	for i, f := range l.Fields {
		names[i] = f.Name
	}
	return names
}
