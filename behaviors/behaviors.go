// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package behaviors provides the capabilities that can be attached to
// a property value: validators that constrain it, presentation hints
// for widgets, and record layouts for composite values.
package behaviors

import (
	"fmt"
	"slices"

	"cogentcore.org/props/codec"
)

//go:generate core generate

// Kinds are the kinds of behaviors.
type Kinds int32 //enums:enum

const (
	// ValidatorBehavior mutates a value in place to satisfy an invariant.
	ValidatorBehavior Kinds = iota

	// HintBehavior is presentation metadata for widgets.
	HintBehavior

	// LayoutBehavior describes the fields of a record value.
	LayoutBehavior
)

// Behavior is a capability attached to a value, queried by kind.
type Behavior interface {

	// BehaviorKind returns the kind of the behavior.
	BehaviorKind() Kinds
}

// RecordLayout is the [LayoutBehavior], which holds the
// [codec.Layout] used to encode a record value.
type RecordLayout struct {
	*codec.Layout
}

// NewRecordLayout returns a new [RecordLayout] behavior for the given layout.
func NewRecordLayout(l *codec.Layout) *RecordLayout {
	return &RecordLayout{Layout: l}
}

func (rl *RecordLayout) BehaviorKind() Kinds { return LayoutBehavior }

// Set is an ordered collection of behaviors. Behaviors are kept in
// the order they were added, and cannot be removed.
type Set struct {
	items []Behavior
}

// Add adds the given behavior to the end of the set.
// Only one [RecordLayout] is allowed.
func (s *Set) Add(b Behavior) error {
	if b == nil {
		return fmt.Errorf("behaviors.Set.Add: nil behavior")
	}
	if b.BehaviorKind() == LayoutBehavior && len(s.OfKind(LayoutBehavior)) > 0 {
		return fmt.Errorf("behaviors.Set.Add: a record layout is already set")
	}
	s.items = append(s.items, b)
	return nil
}

// Len returns the number of behaviors.
func (s *Set) Len() int { return len(s.items) }

// All returns a copy of all behaviors in order.
func (s *Set) All() []Behavior { return slices.Clone(s.items) }

// OfKind returns all behaviors of the given kind, in order.
func (s *Set) OfKind(kind Kinds) []Behavior {
	var bs []Behavior
	for _, b := range s.items {
		if b.BehaviorKind() == kind {
			bs = append(bs, b)
		}
	}
	return bs
}

// Validators returns all validators in registration order.
func (s *Set) Validators() []Validator {
	var vs []Validator
	for _, b := range s.items {
		if v, ok := b.(Validator); ok {
			vs = append(vs, v)
		}
	}
	return vs
}

// Hint returns the first presentation hint, if any.
func (s *Set) Hint() (*PresentationHint, bool) {
	for _, b := range s.items {
		if h, ok := b.(*PresentationHint); ok {
			return h, true
		}
	}
	return nil, false
}

// Layout returns the record layout, if any.
func (s *Set) Layout() (*codec.Layout, bool) {
	for _, b := range s.items {
		if rl, ok := b.(*RecordLayout); ok {
			return rl.Layout, true
		}
	}
	return nil, false
}
