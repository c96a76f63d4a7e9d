// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package behaviors

import (
	"fmt"
	"math"
	"reflect"

	"cogentcore.org/props/flat"
	"cogentcore.org/props/shapes"
)

// Validator is a behavior that mutates a value in place
// so that it satisfies an invariant.
type Validator interface {
	Behavior

	// Accepts returns an error if the validator cannot be
	// applied to elements of the given kind. It is checked
	// when the validator is attached to a value.
	Accepts(kind shapes.Kinds) error

	// Apply modifies the elements of the given buffer as needed,
	// and returns whether any element changed.
	Apply(b *flat.Buffer) bool
}

// Bounder is implemented by behaviors that define numeric bounds.
type Bounder interface {

	// Bounds returns the minimum and maximum values.
	Bounds() (min, max float64)
}

// Range is a [Validator] that clamps every numeric element
// into [Min, Max].
type Range struct {
	Min float64
	Max float64
}

// NewRange returns a new [Range] validator.
func NewRange(min, max float64) *Range {
	return &Range{Min: min, Max: max}
}

func (r *Range) BehaviorKind() Kinds { return ValidatorBehavior }

func (r *Range) Bounds() (min, max float64) { return r.Min, r.Max }

func (r *Range) Accepts(kind shapes.Kinds) error {
	if !kind.IsNumber() {
		return fmt.Errorf("range validator cannot be applied to %v elements", kind)
	}
	if r.Min > r.Max {
		return fmt.Errorf("range validator has min %g greater than max %g", r.Min, r.Max)
	}
	return nil
}

// Apply clamps every element into [Min, Max]. Bounds that an integer
// element type cannot represent are clipped to its limits, so a range
// entirely outside of them clamps to the nearest representable value.
func (r *Range) Apply(b *flat.Buffer) bool {
	lo, hi := r.Min, r.Max
	if k := b.ElemType().Kind(); k != reflect.Float32 && k != reflect.Float64 {
		// integer elements can only hold whole bounds within their limits
		tmin, tmax := b.Limits()
		lo, hi = math.Ceil(lo), math.Floor(hi)
		lo, hi = min(max(lo, tmin), tmax), min(max(hi, tmin), tmax)
	}
	changed := false
	for i := range b.Len() {
		v := b.Float1D(i)
		switch {
		case v < lo:
			b.SetFloat1D(lo, i)
		case v > hi:
			b.SetFloat1D(hi, i)
		default:
			continue
		}
		if b.Float1D(i) != v {
			changed = true
		}
	}
	return changed
}

// Func is a [Validator] defined by a function, which
// accepts elements of the given kinds (all kinds if none).
type Func struct {

	// Kinds are the element kinds accepted, or all if empty.
	Kinds []shapes.Kinds

	// Fun applies the validator.
	Fun func(b *flat.Buffer) bool
}

// NewFunc returns a new [Func] validator.
func NewFunc(fun func(b *flat.Buffer) bool, kinds ...shapes.Kinds) *Func {
	return &Func{Kinds: kinds, Fun: fun}
}

func (f *Func) BehaviorKind() Kinds { return ValidatorBehavior }

func (f *Func) Accepts(kind shapes.Kinds) error {
	if len(f.Kinds) == 0 {
		return nil
	}
	for _, k := range f.Kinds {
		if k == kind {
			return nil
		}
	}
	return fmt.Errorf("validator cannot be applied to %v elements", kind)
}

func (f *Func) Apply(b *flat.Buffer) bool { return f.Fun(b) }
