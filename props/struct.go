// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package props

import (
	"fmt"
	"log/slog"
	"math"
	"reflect"
	"strings"

	"cogentcore.org/core/base/reflectx"
	"cogentcore.org/props/behaviors"
)

// FromStruct returns a new [Set] with the given name, with an [Aliased]
// property for every exported field of the struct pointed to by ptr.
// Fields of unsupported shapes are skipped and logged. Fields are
// configured with struct tags:
//
//   - desc: the help text
//   - group: the group name
//   - edit:"-": read only
//   - min, max: a [behaviors.Range] validator (either bound can be omitted)
//   - hint: checkbox, enum, slider, color, file or directory
//   - labels: comma separated labels for an enum hint
//   - step: the step of a slider hint
//   - filter: the filter of a file hint
//   - prop:"-": skip the field
func FromStruct(name string, ptr any) (*Set, error) {
	rv := reflect.ValueOf(ptr)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("props.FromStruct: need a non-nil pointer to a struct, not %T", ptr)
	}
	s := NewSet(name)
	sv := rv.Elem()
	for _, f := range reflect.VisibleFields(sv.Type()) {
		if f.Anonymous || !f.IsExported() || f.Tag.Get("prop") == "-" {
			continue
		}
		fv, err := sv.FieldByIndexErr(f.Index)
		if err != nil { // through a nil embedded pointer
			continue
		}
		bs, err := fieldBehaviors(f)
		if err != nil {
			return nil, fmt.Errorf("props.FromStruct: field %s: %w", f.Name, err)
		}
		meta := Meta{Name: f.Name, Help: f.Tag.Get("desc"), Group: f.Tag.Get("group"), ReadOnly: f.Tag.Get("edit") == "-"}
		p, err := NewAliasedProperty(meta, fv.Addr().Interface(), bs...)
		if err != nil {
			slog.Warn("props.FromStruct: skipping field", "set", name, "field", f.Name, "err", err)
			continue
		}
		if err := s.Add(p); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// fieldBehaviors returns the behaviors given by the struct tags of the field.
func fieldBehaviors(f reflect.StructField) ([]behaviors.Behavior, error) {
	var bs []behaviors.Behavior
	minTag, hasMin := f.Tag.Lookup("min")
	maxTag, hasMax := f.Tag.Lookup("max")
	lo, hi := math.Inf(-1), math.Inf(1)
	if hasMin {
		v, err := reflectx.ToFloat(minTag)
		if err != nil {
			return nil, fmt.Errorf("invalid min tag %q: %w", minTag, err)
		}
		lo = v
	}
	if hasMax {
		v, err := reflectx.ToFloat(maxTag)
		if err != nil {
			return nil, fmt.Errorf("invalid max tag %q: %w", maxTag, err)
		}
		hi = v
	}
	if hasMin || hasMax {
		bs = append(bs, behaviors.NewRange(lo, hi))
	}
	hintTag, ok := f.Tag.Lookup("hint")
	if !ok {
		return bs, nil
	}
	var tag behaviors.HintTags
	if err := tag.SetString(hintTag); err != nil {
		return nil, err
	}
	var h *behaviors.PresentationHint
	switch tag {
	case behaviors.Checkbox:
		h = behaviors.NewCheckbox()
	case behaviors.Enum:
		var labels []string
		if lt := f.Tag.Get("labels"); lt != "" {
			labels = strings.Split(lt, ",")
		}
		h = behaviors.NewEnum(labels...)
	case behaviors.Slider:
		step := 0.0
		if st, ok := f.Tag.Lookup("step"); ok {
			v, err := reflectx.ToFloat(st)
			if err != nil {
				return nil, fmt.Errorf("invalid step tag %q: %w", st, err)
			}
			step = v
		}
		h = behaviors.NewSlider(lo, hi, step)
	case behaviors.Color:
		h = behaviors.NewColor()
	case behaviors.File:
		h = behaviors.NewFile(f.Tag.Get("filter"))
	case behaviors.Directory:
		h = behaviors.NewDirectory()
	}
	return append(bs, h), nil
}
