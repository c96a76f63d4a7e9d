// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package persist

import (
	"encoding/xml"
	"fmt"
	"math"
	"reflect"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/props/behaviors"
	"cogentcore.org/props/props"
	"cogentcore.org/props/shapes"
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// Document is the persisted form of a [props.Set].
type Document struct {
	XMLName xml.Name `toml:"-" yaml:"-" json:"-" xml:"properties"`

	// Name is the name of the property set.
	Name string `toml:"name" yaml:"name" json:"name" xml:"name,attr"`

	// Properties are the entries for the properties, in order.
	Properties []Entry `toml:"properties" yaml:"properties" json:"properties" xml:"property"`
}

// Entry is the persisted form of a [props.Property].
type Entry struct {

	// Name is the name of the property.
	Name string `toml:"name" yaml:"name" json:"name" xml:"name,attr"`

	// Type is the type tag of the property value (eg: "[3]float64").
	Type string `toml:"type" yaml:"type" json:"type" xml:"type,attr"`

	Help     string `toml:"help,omitempty" yaml:"help,omitempty" json:"help,omitempty" xml:"help,attr,omitempty"`
	Group    string `toml:"group,omitempty" yaml:"group,omitempty" json:"group,omitempty" xml:"group,attr,omitempty"`
	ReadOnly bool   `toml:"read-only,omitempty" yaml:"read-only,omitempty" json:"read-only,omitempty" xml:"read-only,attr,omitempty"`

	// Min and Max are the finite bounds of a range validator, if any.
	Min *float64 `toml:"min,omitempty" yaml:"min,omitempty" json:"min,omitempty" xml:"min,attr,omitempty"`
	Max *float64 `toml:"max,omitempty" yaml:"max,omitempty" json:"max,omitempty" xml:"max,attr,omitempty"`

	// Hint is the presentation hint tag, if any (eg: "slider"),
	// with its step, comma separated enum labels, and file filter.
	Hint   string  `toml:"hint,omitempty" yaml:"hint,omitempty" json:"hint,omitempty" xml:"hint,attr,omitempty"`
	Step   float64 `toml:"step,omitempty" yaml:"step,omitempty" json:"step,omitempty" xml:"step,attr,omitempty"`
	Labels string  `toml:"labels,omitempty" yaml:"labels,omitempty" json:"labels,omitempty" xml:"labels,attr,omitempty"`
	Filter string  `toml:"filter,omitempty" yaml:"filter,omitempty" json:"filter,omitempty" xml:"filter,attr,omitempty"`

	// Value is the text encoding of the property value.
	Value string `toml:"value" yaml:"value" json:"value" xml:",chardata"`
}

// FromSet returns a new [Document] with the current values of
// all properties in the given set.
func FromSet(s *props.Set) *Document {
	doc := &Document{Name: s.Name}
	for _, p := range s.Properties() {
		e := Entry{
			Name:     p.Name(),
			Type:     p.TypeTag(),
			Help:     p.Help(),
			Group:    p.Group(),
			ReadOnly: p.ReadOnly(),
			Value:    p.Value().String(),
		}
		e.setBehaviors(p.Value())
		doc.Properties = append(doc.Properties, e)
	}
	return doc
}

// setBehaviors sets the bounds and hint of the entry from the
// behaviors of the given value. Only the first range is kept.
func (e *Entry) setBehaviors(v *props.Value) {
	for _, b := range v.Behaviors() {
		r, ok := b.(*behaviors.Range)
		if !ok {
			continue
		}
		lo, hi := r.Bounds()
		if !math.IsInf(lo, 0) {
			e.Min = &lo
		}
		if !math.IsInf(hi, 0) {
			e.Max = &hi
		}
		break
	}
	h, ok := v.Hint()
	if !ok {
		return
	}
	e.Hint = h.Tag.String()
	e.Step = h.Step
	e.Labels = strings.Join(h.Labels, ",")
	e.Filter = h.Filter
}

// newBehaviors returns the range and hint behaviors given by the entry.
func (e *Entry) newBehaviors() ([]behaviors.Behavior, error) {
	var bs []behaviors.Behavior
	lo, hi := math.Inf(-1), math.Inf(1)
	if e.Min != nil {
		lo = *e.Min
	}
	if e.Max != nil {
		hi = *e.Max
	}
	if e.Min != nil || e.Max != nil {
		bs = append(bs, behaviors.NewRange(lo, hi))
	}
	if e.Hint == "" {
		return bs, nil
	}
	h := &behaviors.PresentationHint{Filter: e.Filter}
	if err := h.Tag.SetString(e.Hint); err != nil {
		return nil, err
	}
	if e.Labels != "" {
		h.Labels = strings.Split(e.Labels, ",")
	}
	if h.Tag == behaviors.Slider {
		h.Min, h.Max, h.Step = lo, hi, e.Step
	}
	return append(bs, h), nil
}

// Apply sets the values of the properties in the given set from the
// entries of the document with the same name. Entries for unknown
// properties, entries with a different type, and values that cannot
// be parsed are reported in the returned error, without stopping.
// Properties without an entry are not changed.
func (doc *Document) Apply(s *props.Set) error {
	var errs []error
	for _, e := range doc.Properties {
		p, ok := s.Property(e.Name)
		if !ok {
			err := fmt.Errorf("persist: %q has no property %q", s.Name, e.Name)
			if sug := suggest(e.Name, s.Names()); sug != "" {
				err = fmt.Errorf("%w (did you mean %q?)", err, sug)
			}
			errs = append(errs, err)
			continue
		}
		if e.Type != "" && e.Type != p.TypeTag() {
			errs = append(errs, fmt.Errorf("persist: property %q is %s, not %s", e.Name, p.TypeTag(), e.Type))
			continue
		}
		if err := p.Value().SetString(e.Value); err != nil {
			errs = append(errs, fmt.Errorf("persist: property %q: %w", e.Name, err))
		}
	}
	return errors.Join(errs...)
}

// NewSet returns a new [props.Set] with an owned property for every
// entry, of the type given by its type tag, with the range and hint
// given by the entry. Only type tags of base
// elements in the supported shapes can be restored this way; records
// need [Document.Apply] on a set that already has the record types.
func (doc *Document) NewSet() (*props.Set, error) {
	s := props.NewSet(doc.Name)
	for _, e := range doc.Properties {
		typ, err := shapes.ParseTypeTag(e.Type)
		if err != nil {
			return nil, fmt.Errorf("persist: property %q: %w", e.Name, err)
		}
		bs, err := e.newBehaviors()
		if err != nil {
			return nil, fmt.Errorf("persist: property %q: %w", e.Name, err)
		}
		meta := props.Meta{Name: e.Name, Help: e.Help, Group: e.Group, ReadOnly: e.ReadOnly}
		p, err := props.NewOwnedProperty(meta, reflect.Zero(typ).Interface(), bs...)
		if err != nil {
			return nil, fmt.Errorf("persist: property %q: %w", e.Name, err)
		}
		if err := p.Value().SetString(e.Value); err != nil {
			return nil, fmt.Errorf("persist: property %q: %w", e.Name, err)
		}
		if err := s.Add(p); err != nil {
			return nil, fmt.Errorf("persist: %w", err)
		}
	}
	return s, nil
}

// minSimilarity is the minimum similarity for a name to be suggested.
const minSimilarity = 0.5

// suggest returns the name most similar to the given one,
// or "" if none is similar enough.
func suggest(name string, names []string) string {
	lev := metrics.NewLevenshtein()
	lev.CaseSensitive = false
	best, bestSim := "", minSimilarity
	for _, n := range names {
		if sim := strutil.Similarity(name, n, lev); sim >= bestSim {
			best, bestSim = n, sim
		}
	}
	return best
}
