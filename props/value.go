// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package props

import (
	"fmt"
	"reflect"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/props/behaviors"
	"cogentcore.org/props/codec"
	"cogentcore.org/props/flat"
	"cogentcore.org/props/shapes"
	"github.com/jinzhu/copier"
)

// Ownership is how a [Value] holds its data.
type Ownership int32 //enums:enum

const (
	// Owned values hold a private copy of their data.
	Owned Ownership = iota

	// Aliased values refer to data owned by the caller,
	// and write through to it.
	Aliased
)

// Value is a typed value of a supported shape, with attached behaviors.
// Its shape is fixed at construction; only its content, and the row count
// of resizable shapes, can change.
//
// A Value must not be used from more than one goroutine at a time.
// Overlapping calls panic with [ErrConcurrentAccess].
type Value struct {
	info      shapes.Info
	ownership Ownership

	// data is the settable value of type info.Type: a private
	// variable for Owned values, and the caller's storage for Aliased ones.
	data reflect.Value

	behaviors behaviors.Set
	strategy  codec.Strategy
	guard     guard
}

// NewOwned returns a new [Owned] [Value] holding a deep copy of the
// given value, with the given behaviors attached in order.
func NewOwned(v any, bs ...behaviors.Behavior) (*Value, error) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return nil, fmt.Errorf("props.NewOwned: %w: nil value", shapes.ErrUnsupportedShape)
	}
	val, err := newValue(rv.Type(), Owned, reflect.New(rv.Type()).Elem(), bs)
	if err != nil {
		return nil, fmt.Errorf("props.NewOwned: %w", err)
	}
	val.copyIn(rv)
	return val, nil
}

// NewAliased returns a new [Aliased] [Value] referring to the storage
// pointed to by the given non-nil pointer, with the given behaviors
// attached in order. The Value reads from and writes to that storage.
func NewAliased(ptr any, bs ...behaviors.Behavior) (*Value, error) {
	rv := reflect.ValueOf(ptr)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return nil, fmt.Errorf("props.NewAliased: %w: need a non-nil pointer, not %T", shapes.ErrUnsupportedShape, ptr)
	}
	val, err := newValue(rv.Type().Elem(), Aliased, rv.Elem(), bs)
	if err != nil {
		return nil, fmt.Errorf("props.NewAliased: %w", err)
	}
	return val, nil
}

func newValue(typ reflect.Type, own Ownership, data reflect.Value, bs []behaviors.Behavior) (*Value, error) {
	info, err := shapes.Classify(typ)
	if err != nil {
		return nil, err
	}
	v := &Value{info: info, ownership: own, data: data}
	for _, b := range bs {
		if err := v.addBehavior(b); err != nil {
			return nil, err
		}
	}
	if v.strategy == nil {
		v.strategy, err = codec.For(info, nil)
		if err != nil {
			return nil, err
		}
	}
	return v, nil
}

// Info returns the shape information of the value.
func (v *Value) Info() shapes.Info { return v.info }

// Ownership returns whether the value is [Owned] or [Aliased].
func (v *Value) Ownership() Ownership { return v.ownership }

// TypeTag returns the type tag of the value, which identifies its
// shape and element kind.
func (v *Value) TypeTag() string { return v.info.TypeTag() }

// Get returns a copy of the current content of the value.
// For [Aliased] values this is the current content of the storage.
func (v *Value) Get() any {
	defer v.guard.borrow()()
	return v.copyOut().Interface()
}

// Get returns a copy of the current content of the given value as type T,
// and an error if the value is not of type T.
func Get[T any](v *Value) (T, error) {
	var zv T
	x, ok := v.Get().(T)
	if !ok {
		return zv, fmt.Errorf("props.Get: value is %v, not %T", v.info.Type, zv)
	}
	return x, nil
}

// Set sets the content of the value from a deep copy of the given value,
// which must be assignable or convertible to the type of the value.
// [Aliased] values write through to their storage. For resizable
// shapes, the row count follows the given value.
func (v *Value) Set(x any) error {
	defer v.guard.borrow()()
	rv := reflect.ValueOf(x)
	if !rv.IsValid() {
		return fmt.Errorf("props.Value.Set: cannot set %v from nil", v.info.Type)
	}
	if rv.Type() != v.info.Type {
		if !v.convertible(rv.Type()) {
			return fmt.Errorf("props.Value.Set: cannot set %v from %T", v.info.Type, x)
		}
		rv = rv.Convert(v.info.Type)
	}
	v.copyIn(rv)
	return nil
}

// convertible returns whether values of the given type can be converted
// to the value type: types with the same kind and underlying type, or
// any number for a numeric scalar.
func (v *Value) convertible(typ reflect.Type) bool {
	if !typ.ConvertibleTo(v.info.Type) {
		return false
	}
	if typ.Kind() == v.info.Type.Kind() {
		return true
	}
	if v.info.Shape != shapes.Scalar || !v.info.Kind.IsNumber() {
		return false
	}
	k, err := shapes.KindOf(typ)
	return err == nil && k.IsNumber()
}

// String returns the text encoding of the current content.
func (v *Value) String() string {
	defer v.guard.borrow()()
	return v.strategy.Encode(v.data)
}

// SetString sets the content from the given text encoding. If the text
// cannot be parsed, an error wrapping [codec.ErrParse] is returned and
// the content is unchanged. For resizable shapes, the parsed element
// count determines the new row count. Lists of records keep the records
// parsed before a malformed one, and return an error wrapping
// [codec.ErrPartialDecode].
func (v *Value) SetString(s string) error {
	defer v.guard.borrow()()
	return v.strategy.Decode(s, v.data)
}

// Validate applies every validator in registration order to the current
// content, and returns whether any of them changed it.
func (v *Value) Validate() bool {
	defer v.guard.borrow()()
	vals := v.behaviors.Validators()
	if len(vals) == 0 {
		return false
	}
	b := flat.Flatten(v.data, v.info)
	changed := false
	for _, val := range vals {
		if val.Apply(b) {
			changed = true
		}
	}
	if changed {
		errors.Log(flat.Unflatten(b, v.data, v.info))
	}
	return changed
}

// Behaviors returns the attached behaviors in order.
func (v *Value) Behaviors() []behaviors.Behavior {
	return v.behaviors.All()
}

// AddBehavior attaches the given behavior. Validators must accept the
// element kind of the value, and a record layout must describe its
// record element type.
func (v *Value) AddBehavior(b behaviors.Behavior) error {
	defer v.guard.borrow()()
	return v.addBehavior(b)
}

func (v *Value) addBehavior(b behaviors.Behavior) error {
	var st codec.Strategy
	switch bh := b.(type) {
	case behaviors.Validator:
		if err := bh.Accepts(v.info.Kind); err != nil {
			return fmt.Errorf("cannot attach to %v: %w", v.info, err)
		}
	case *behaviors.RecordLayout:
		if v.info.Kind != shapes.Record {
			return fmt.Errorf("cannot attach a record layout to %v", v.info)
		}
		var err error
		st, err = codec.For(v.info, bh.Layout)
		if err != nil {
			return err
		}
	}
	if err := v.behaviors.Add(b); err != nil {
		return err
	}
	if st != nil {
		v.strategy = st
	}
	return nil
}

// Hint returns the presentation hint, if any.
func (v *Value) Hint() (*behaviors.PresentationHint, bool) {
	return v.behaviors.Hint()
}

// Layout returns the record layout behavior, if any.
func (v *Value) Layout() (*codec.Layout, bool) {
	return v.behaviors.Layout()
}

// Bounds returns the numeric bounds of the value, from the first
// validator that has bounds, or else from a slider hint.
func (v *Value) Bounds() (min, max float64, ok bool) {
	for _, val := range v.behaviors.Validators() {
		if bd, isb := val.(behaviors.Bounder); isb {
			min, max = bd.Bounds()
			return min, max, true
		}
	}
	if h, has := v.behaviors.Hint(); has {
		return h.SliderBounds()
	}
	return 0, 0, false
}

// Rows returns the current number of rows.
func (v *Value) Rows() int {
	if v.info.Resizable() {
		return v.data.Len()
	}
	return v.info.Rows
}

// Resize sets the number of rows of a resizable value, truncating or
// padding with zero elements. It does nothing for fixed shapes.
func (v *Value) Resize(rows int) {
	defer v.guard.borrow()()
	if !v.info.Resizable() {
		return
	}
	b := flat.Flatten(v.data, v.info)
	b.SetRows(rows)
	errors.Log(flat.Unflatten(b, v.data, v.info))
}

// Flat returns a flat copy of the current content, for table access.
func (v *Value) Flat() *flat.Buffer {
	defer v.guard.borrow()()
	return flat.Flatten(v.data, v.info)
}

// SetFlat sets the content from the given flat buffer, which must
// have the element type and columns of the value, and the exact
// number of elements for fixed shapes.
func (v *Value) SetFlat(b *flat.Buffer) error {
	defer v.guard.borrow()()
	return flat.Unflatten(b.Clone(), v.data, v.info)
}

// copyIn sets the data from a deep copy of src, which is of the value type.
func (v *Value) copyIn(src reflect.Value) {
	v.deepCopy(v.data, src)
}

// copyOut returns a new deep copy of the data.
func (v *Value) copyOut() reflect.Value {
	out := reflect.New(v.info.Type).Elem()
	v.deepCopy(out, v.data)
	return out
}

// deepCopy copies src into dst through a flat buffer, which copies the
// elements. Record elements are then deep copied so that they do not
// share any slices with src.
func (v *Value) deepCopy(dst, src reflect.Value) {
	b := flat.Flatten(src, v.info)
	if v.info.Kind == shapes.Record {
		for i := range b.Len() {
			el := b.Index(i)
			rec := reflect.New(v.info.Elem)
			errors.Log(copier.CopyWithOption(rec.Interface(), el.Interface(), copier.Option{CaseSensitive: true, DeepCopy: true}))
			el.Set(rec.Elem())
		}
	}
	errors.Log(flat.Unflatten(b, dst, v.info))
}
