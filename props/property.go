// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package props provides named, typed properties that expose values of
// supported shapes to editors and exporters, with attached behaviors and
// text encoding, and property sets that bridge them to live data.
package props

import (
	"fmt"

	"cogentcore.org/core/base/strcase"
	"cogentcore.org/props/behaviors"
)

//go:generate core generate

// Meta is the descriptive metadata of a [Property].
type Meta struct {

	// Name is the unique name of the property within its set.
	Name string

	// Help is the documentation shown for the property.
	Help string

	// Group is the name of the group the property is shown in.
	Group string

	// ReadOnly is whether the property can not be edited.
	ReadOnly bool
}

// Property is a named [Value] with metadata. Its name, help, group,
// and type tag are fixed at construction; only read-only status can
// be changed afterwards.
type Property struct {
	meta    Meta
	typeTag string
	value   *Value
}

// NewProperty returns a new [Property] with the given metadata and value.
func NewProperty(meta Meta, v *Value) (*Property, error) {
	if meta.Name == "" {
		return nil, fmt.Errorf("props.NewProperty: empty name")
	}
	if v == nil {
		return nil, fmt.Errorf("props.NewProperty: nil value for %q", meta.Name)
	}
	return &Property{meta: meta, typeTag: v.TypeTag(), value: v}, nil
}

// NewOwnedProperty returns a new [Property] with an [Owned] [Value]
// holding a copy of the given value.
func NewOwnedProperty(meta Meta, v any, bs ...behaviors.Behavior) (*Property, error) {
	val, err := NewOwned(v, bs...)
	if err != nil {
		return nil, fmt.Errorf("property %q: %w", meta.Name, err)
	}
	return NewProperty(meta, val)
}

// NewAliasedProperty returns a new [Property] with an [Aliased] [Value]
// referring to the storage pointed to by ptr.
func NewAliasedProperty(meta Meta, ptr any, bs ...behaviors.Behavior) (*Property, error) {
	val, err := NewAliased(ptr, bs...)
	if err != nil {
		return nil, fmt.Errorf("property %q: %w", meta.Name, err)
	}
	return NewProperty(meta, val)
}

func (p *Property) Name() string { return p.meta.Name }

func (p *Property) Help() string { return p.meta.Help }

func (p *Property) Group() string { return p.meta.Group }

func (p *Property) ReadOnly() bool { return p.meta.ReadOnly }

// Meta returns a copy of the metadata.
func (p *Property) Meta() Meta { return p.meta }

// SetReadOnly sets whether the property can be edited.
func (p *Property) SetReadOnly(ro bool) *Property {
	p.meta.ReadOnly = ro
	return p
}

// TypeTag returns the type tag bound at construction,
// which always matches the value.
func (p *Property) TypeTag() string { return p.typeTag }

// Value returns the value of the property.
func (p *Property) Value() *Value { return p.value }

// String returns the property as name = text.
func (p *Property) String() string {
	return p.meta.Name + " = " + p.value.String()
}

// Label returns a user friendly label for the property, in sentence
// case (eg: "MaxSpeed" becomes "Max speed").
func (p *Property) Label() string {
	return strcase.ToSentence(p.meta.Name)
}
