// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package props

import (
	"fmt"
	"reflect"
	"slices"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/keylist"
	"cogentcore.org/props/behaviors"
)

// Set is an ordered collection of uniquely named properties for one
// inspected object, with bridges that copy between the property values
// and live external data, and callbacks for modifications.
//
// A Set owns its properties and bridges, but never the external data
// that aliased values and bridges refer to. It must not be used from more
// than one goroutine at a time; overlapping calls to [Set.Pull] and
// [Set.Push] and [Set.Validate] panic with [ErrConcurrentAccess].
type Set struct {

	// Name is the name of the inspected object.
	Name string

	properties keylist.List[string, *Property]
	bridges    []bridge
	modified   []func() error
	guard      guard
}

// bridge pairs a property with the functions that copy between its
// value and live data.
type bridge struct {
	prop *Property
	pull func(v *Value) error
	push func(v *Value) error
}

// NewSet returns a new empty [Set] with the given name.
func NewSet(name string) *Set {
	return &Set{Name: name}
}

// Add adds the given property to the end of the set.
// An error is returned if the name is already used.
func (s *Set) Add(p *Property) error {
	if p == nil {
		return fmt.Errorf("props.Set.Add: nil property")
	}
	return s.properties.Add(p.Name(), p)
}

// Property returns the property with the given name, if it exists.
func (s *Set) Property(name string) (*Property, bool) {
	return s.properties.AtTry(name)
}

// Properties returns the properties in order.
func (s *Set) Properties() []*Property {
	return slices.Clone(s.properties.Values)
}

// Names returns the property names in order.
func (s *Set) Names() []string {
	return slices.Clone(s.properties.Keys)
}

// Len returns the number of properties.
func (s *Set) Len() int { return s.properties.Len() }

// Groups returns the distinct group names in order of first use.
func (s *Set) Groups() []string {
	var gps []string
	for _, p := range s.properties.Values {
		if !slices.Contains(gps, p.Group()) {
			gps = append(gps, p.Group())
		}
	}
	return gps
}

// InGroup returns the properties in the given group, in order.
func (s *Set) InGroup(group string) []*Property {
	var ps []*Property
	for _, p := range s.properties.Values {
		if p.Group() == group {
			ps = append(ps, p)
		}
	}
	return ps
}

// Bridge registers a bridge for the given property, which must be in
// the set. pull copies live data into the value, and push copies the
// value back into live data; either can be nil.
func (s *Set) Bridge(p *Property, pull, push func(v *Value) error) error {
	if cur, ok := s.Property(p.Name()); !ok || cur != p {
		return fmt.Errorf("props.Set.Bridge: property %q is not in set %q", p.Name(), s.Name)
	}
	s.bridges = append(s.bridges, bridge{prop: p, pull: pull, push: push})
	return nil
}

// Mirror adds an [Owned] property holding a copy of the data pointed to
// by live, and a bridge that copies between them: [Set.Pull] copies the
// live data into the property, and [Set.Push] copies it back.
func (s *Set) Mirror(meta Meta, live any, bs ...behaviors.Behavior) (*Property, error) {
	rv := reflect.ValueOf(live)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return nil, fmt.Errorf("props.Set.Mirror: need a non-nil pointer for %q, not %T", meta.Name, live)
	}
	p, err := NewOwnedProperty(meta, rv.Elem().Interface(), bs...)
	if err != nil {
		return nil, err
	}
	if err := s.Add(p); err != nil {
		return nil, err
	}
	pull := func(v *Value) error {
		return v.Set(rv.Elem().Interface())
	}
	push := func(v *Value) error {
		rv.Elem().Set(reflect.ValueOf(v.Get()))
		return nil
	}
	return p, s.Bridge(p, pull, push)
}

// Pull runs the pull function of every bridge in registration order,
// copying live data into the properties. Every bridge runs even if an
// earlier one fails; the errors are returned joined.
func (s *Set) Pull() error {
	defer s.guard.borrow()()
	var errs []error
	for _, b := range s.bridges {
		if b.pull == nil {
			continue
		}
		if err := b.call(b.pull); err != nil {
			errs = append(errs, fmt.Errorf("pull %q: %w", b.prop.Name(), err))
		}
	}
	return errors.Join(errs...)
}

// Push runs the push function of every bridge in registration order,
// copying the properties into live data. Every bridge runs even if an
// earlier one fails; the errors are returned joined.
func (s *Set) Push() error {
	defer s.guard.borrow()()
	var errs []error
	for _, b := range s.bridges {
		if b.push == nil {
			continue
		}
		if err := b.call(b.push); err != nil {
			errs = append(errs, fmt.Errorf("push %q: %w", b.prop.Name(), err))
		}
	}
	return errors.Join(errs...)
}

func (b *bridge) call(fun func(v *Value) error) (err error) {
	defer func() { err = recovered(recover(), err) }()
	return fun(b.prop.Value())
}

// OnModified adds a function to be called by [Set.Modified].
func (s *Set) OnModified(fun func() error) {
	s.modified = append(s.modified, fun)
}

// Modified calls every function added with [Set.OnModified], in order,
// to report that the properties have changed. Every function runs even
// if an earlier one fails or panics; the errors are returned joined.
// Modified does not take the guard of the set, so that the functions
// can call [Set.Pull], [Set.Push] and [Set.Validate].
func (s *Set) Modified() error {
	var errs []error
	for i, fun := range s.modified {
		if err := callModified(fun); err != nil {
			errs = append(errs, fmt.Errorf("modified callback %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

func callModified(fun func() error) (err error) {
	defer func() { err = recovered(recover(), err) }()
	return fun()
}

// recovered returns an error for the given recovered panic value,
// or err if there was no panic.
func recovered(r any, err error) error {
	switch r := r.(type) {
	case nil:
		return err
	case error:
		return fmt.Errorf("panic: %w", r)
	default:
		return fmt.Errorf("panic: %v", r)
	}
}

// Validate validates every property value, and returns the names of
// the properties that changed. Like [Set.Pull] and [Set.Push], it
// panics with [ErrConcurrentAccess] if it overlaps one of them.
func (s *Set) Validate() []string {
	defer s.guard.borrow()()
	var changed []string
	for _, p := range s.properties.Values {
		if p.Value().Validate() {
			changed = append(changed, p.Name())
		}
	}
	return changed
}
