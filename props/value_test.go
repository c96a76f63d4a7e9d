// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package props

import (
	"reflect"
	"testing"

	"cogentcore.org/props/behaviors"
	"cogentcore.org/props/codec"
	"cogentcore.org/props/flat"
	"cogentcore.org/props/shapes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contact struct {
	ID    int
	Label string
	Mass  float32
}

type joint struct {
	Name   string
	Axis   [3]float64
	Bodies []string
}

func owned(t *testing.T, v any, bs ...behaviors.Behavior) *Value {
	val, err := NewOwned(v, bs...)
	require.NoError(t, err)
	return val
}

// roundTrip checks that the text of a value decodes back to the same value.
func roundTrip[T any](t *testing.T, x T) {
	t.Helper()
	v := owned(t, x)
	s := v.String()
	w, err := NewOwned(*new(T))
	require.NoError(t, err)
	require.NoError(t, w.SetString(s), s)
	got, err := Get[T](w)
	require.NoError(t, err)
	assert.Equal(t, x, got, s)
	assert.Equal(t, s, w.String())
}

func TestValueRoundTrip(t *testing.T) {
	roundTrip(t, 42)
	roundTrip(t, int8(-7))
	roundTrip(t, uint64(1<<63))
	roundTrip(t, float32(0.1))
	roundTrip(t, 1.0/3.0)
	roundTrip(t, "hello world")
	roundTrip(t, true)

	roundTrip(t, [3]int{1, -2, 3})
	roundTrip(t, [2]float32{1.5, -0.25})
	roundTrip(t, [4]float64{1e-300, 2, 3, 1e300})
	roundTrip(t, [3]string{"a b", "", "c"})

	roundTrip(t, []int{5, 6, 7})
	roundTrip(t, []float32{0.5})
	roundTrip(t, []float64(nil))
	roundTrip(t, []string{"alpha", "beta", "gamma"})
	roundTrip(t, []bool{true, false})

	roundTrip(t, [2][3]int{{1, 2, 3}, {4, 5, 6}})
	roundTrip(t, [3][3]float32{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})
	roundTrip(t, [2][2]string{{"a", "b"}, {"c", "d"}})

	roundTrip(t, [][3]float64{{1, 2, 3}, {4, 5, 6}})
	roundTrip(t, [][2]float32(nil))
	roundTrip(t, [][2]string{{"x", "y"}})
}

func TestValueRecordRoundTrip(t *testing.T) {
	roundTrip(t, contact{ID: 1, Label: "plain", Mass: 2})
	roundTrip(t, contact{ID: 2, Label: "a,b}c", Mass: 0.5})
	roundTrip(t, []contact{{1, "a", 2}, {2, "b,}", 3.5}})
	roundTrip(t, [2]contact{{1, "x", 1}, {2, "y", 2}})
	roundTrip(t, joint{Name: "hinge", Axis: [3]float64{0, 0, 1}, Bodies: []string{"a", "b"}})
}

func TestValueTypeTag(t *testing.T) {
	v := owned(t, [3][3]float32{})
	assert.Equal(t, "[3][3]float32", v.TypeTag())
	assert.Equal(t, shapes.FixedMatrix, v.Info().Shape)
	assert.Equal(t, shapes.Float, v.Info().Kind)
	assert.Equal(t, Owned, v.Ownership())
}

func TestValueUnsupported(t *testing.T) {
	_, err := NewOwned([][]int{{1}})
	assert.ErrorIs(t, err, shapes.ErrUnsupportedShape)
	_, err = NewOwned(map[string]int{})
	assert.ErrorIs(t, err, shapes.ErrUnsupportedShape)
	_, err = NewOwned(nil)
	assert.ErrorIs(t, err, shapes.ErrUnsupportedShape)
	_, err = NewAliased([3]int{})
	assert.ErrorIs(t, err, shapes.ErrUnsupportedShape)
	_, err = NewAliased((*int)(nil))
	assert.ErrorIs(t, err, shapes.ErrUnsupportedShape)
}

func TestValueOwnedCopy(t *testing.T) {
	src := []float64{1, 2, 3}
	v := owned(t, src)
	src[0] = 100
	assert.Equal(t, []float64{1, 2, 3}, v.Get())

	got := v.Get().([]float64)
	got[1] = 200
	assert.Equal(t, []float64{1, 2, 3}, v.Get())

	j := joint{Name: "j", Bodies: []string{"a"}}
	jv := owned(t, j)
	j.Bodies[0] = "changed"
	jg, err := Get[joint](jv)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, jg.Bodies)
}

func TestValueAliasedWriteThrough(t *testing.T) {
	pos := [3]float64{1, 2, 3}
	v, err := NewAliased(&pos)
	require.NoError(t, err)
	assert.Equal(t, Aliased, v.Ownership())

	require.NoError(t, v.Set([3]float64{4, 5, 6}))
	assert.Equal(t, [3]float64{4, 5, 6}, pos)

	require.NoError(t, v.SetString("7 8 9"))
	assert.Equal(t, [3]float64{7, 8, 9}, pos)

	pos[0] = -1
	assert.Equal(t, "-1 8 9", v.String())

	names := []string{"a", "b"}
	nv, err := NewAliased(&names)
	require.NoError(t, err)
	require.NoError(t, nv.SetString("x|y|z"))
	assert.Equal(t, []string{"x", "y", "z"}, names)
}

func TestValueSet(t *testing.T) {
	v := owned(t, 1.5)
	require.NoError(t, v.Set(2))
	assert.Equal(t, 2.0, v.Get())
	assert.Error(t, v.Set("3"))
	assert.Error(t, v.Set(nil))

	type speeds []float64
	sv := owned(t, speeds{1})
	require.NoError(t, sv.Set([]float64{1, 2, 3}))
	assert.Equal(t, speeds{1, 2, 3}, sv.Get())
	assert.Equal(t, 3, sv.Rows())

	tv := owned(t, "name")
	assert.Error(t, tv.Set(65))
	assert.Equal(t, "name", tv.Get())

	_, err := Get[int](v)
	assert.Error(t, err)
}

func TestValueSetStringError(t *testing.T) {
	v := owned(t, [3]float32{1, 2, 3})
	assert.ErrorIs(t, v.SetString("1 2"), codec.ErrParse)
	assert.ErrorIs(t, v.SetString("1 2 x"), codec.ErrParse)
	assert.Equal(t, [3]float32{1, 2, 3}, v.Get())

	iv := owned(t, 7)
	assert.ErrorIs(t, iv.SetString("seven"), codec.ErrParse)
	assert.Equal(t, 7, iv.Get())

	lv := owned(t, []int{1, 2})
	require.NoError(t, lv.SetString("4 5 6"))
	assert.Equal(t, 3, lv.Rows())
	require.NoError(t, lv.SetString(""))
	assert.Equal(t, 0, lv.Rows())
}

func TestValuePartialDecode(t *testing.T) {
	v := owned(t, []contact{{9, "old", 9}})
	err := v.SetString("{1,a,2.0},{2,b,BADFLOAT")
	assert.ErrorIs(t, err, codec.ErrPartialDecode)
	assert.NotErrorIs(t, err, codec.ErrParse)
	assert.Equal(t, []contact{{1, "a", 2}}, v.Get())
}

func TestValueValidate(t *testing.T) {
	v := owned(t, []float64{-5, 3, 15}, behaviors.NewRange(0, 10))
	assert.True(t, v.Validate())
	assert.Equal(t, []float64{0, 3, 10}, v.Get())
	assert.False(t, v.Validate())

	nv := owned(t, 5)
	assert.False(t, nv.Validate())

	ordered := owned(t, 50, behaviors.NewRange(0, 100), behaviors.NewRange(0, 10))
	assert.True(t, ordered.Validate())
	assert.Equal(t, 10, ordered.Get())
	assert.False(t, ordered.Validate())
}

func TestValueValidateNarrowInteger(t *testing.T) {
	x := int8(0)
	v, err := NewAliased(&x, behaviors.NewRange(200, 300))
	require.NoError(t, err)
	assert.True(t, v.Validate())
	assert.Equal(t, int8(127), x)
	assert.False(t, v.Validate())
	assert.Equal(t, int8(127), x)
}

func TestValueBehaviors(t *testing.T) {
	_, err := NewOwned("text", behaviors.NewRange(0, 1))
	assert.Error(t, err)

	h := behaviors.NewSlider(-1, 1, 0.1)
	v := owned(t, 0.5, h)
	gh, ok := v.Hint()
	assert.True(t, ok)
	assert.Same(t, h, gh)
	min, max, ok := v.Bounds()
	assert.True(t, ok)
	assert.Equal(t, -1.0, min)
	assert.Equal(t, 1.0, max)

	require.NoError(t, v.AddBehavior(behaviors.NewRange(-0.5, 0.5)))
	min, max, ok = v.Bounds()
	assert.True(t, ok)
	assert.Equal(t, -0.5, min)
	assert.Equal(t, 0.5, max)
	assert.Len(t, v.Behaviors(), 2)

	_, _, ok = owned(t, 1).Bounds()
	assert.False(t, ok)

	l, err := codec.NewLayout(reflect.TypeFor[contact]())
	require.NoError(t, err)
	assert.Error(t, v.AddBehavior(behaviors.NewRecordLayout(l)))
}

func TestValueRecordLayout(t *testing.T) {
	l, err := codec.NewLayout(reflect.TypeFor[contact](), "Label", "ID")
	require.NoError(t, err)
	v := owned(t, contact{ID: 3, Label: "c", Mass: 1}, behaviors.NewRecordLayout(l))
	assert.Equal(t, "{c,3}", v.String())
	gl, ok := v.Layout()
	assert.True(t, ok)
	assert.Same(t, l, gl)

	require.NoError(t, v.SetString("{d,4}"))
	assert.Equal(t, contact{ID: 4, Label: "d", Mass: 1}, v.Get())

	jl, err := codec.NewLayout(reflect.TypeFor[joint]())
	require.NoError(t, err)
	_, err = NewOwned(contact{}, behaviors.NewRecordLayout(jl))
	assert.Error(t, err)
}

func TestValueResize(t *testing.T) {
	v := owned(t, []int{1, 2, 3})
	v.Resize(5)
	assert.Equal(t, []int{1, 2, 3, 0, 0}, v.Get())
	v.Resize(2)
	assert.Equal(t, []int{1, 2}, v.Get())
	v.Resize(5)
	assert.Equal(t, []int{1, 2, 0, 0, 0}, v.Get())

	pts := owned(t, [][3]float32{{1, 2, 3}})
	pts.Resize(2)
	assert.Equal(t, [][3]float32{{1, 2, 3}, {0, 0, 0}}, pts.Get())
	assert.Equal(t, 2, pts.Rows())
}

func TestValueFixedResize(t *testing.T) {
	for _, x := range []any{7, [3]int{1, 2, 3}, [2][2]float64{{1, 2}, {3, 4}}} {
		v := owned(t, x)
		rows := v.Rows()
		v.Resize(10)
		assert.Equal(t, x, v.Get())
		assert.Equal(t, rows, v.Rows())
		assert.False(t, v.Info().Resizable())
		assert.False(t, v.Flat().Resizable)
	}
}

func TestValueFlat(t *testing.T) {
	v := owned(t, [][2]int{{1, 2}, {3, 4}})
	b := v.Flat()
	assert.Equal(t, 2, b.Columns)
	assert.Equal(t, 2, b.Rows())
	b.RowCell(1, 0).SetInt(30)
	assert.Equal(t, [][2]int{{1, 2}, {3, 4}}, v.Get())
	require.NoError(t, v.SetFlat(b))
	assert.Equal(t, [][2]int{{1, 2}, {30, 4}}, v.Get())

	assert.ErrorIs(t, v.SetFlat(flat.New(b.ElemType(), 1, 3, true)), flat.ErrMismatch)
}

func TestValueTransformMatrix(t *testing.T) {
	p, err := NewOwnedProperty(Meta{Name: "Transform"}, [3][3]float32{}, behaviors.NewRange(-1000, 1000))
	require.NoError(t, err)
	v := p.Value()
	require.NoError(t, v.SetString("1 0 0 0 1 0 0 0 1"))
	assert.False(t, v.Validate())
	assert.Equal(t, "1 0 0 0 1 0 0 0 1", v.String())
	assert.Equal(t, "[3][3]float32", p.TypeTag())
}

func TestValueConcurrentAccess(t *testing.T) {
	var v *Value
	reenter := behaviors.NewFunc(func(b *flat.Buffer) bool {
		_ = v.String()
		return false
	})
	v = owned(t, 1, reenter)
	assert.PanicsWithValue(t, ErrConcurrentAccess, func() { v.Validate() })
	assert.Equal(t, "1", v.String())
}
