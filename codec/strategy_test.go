// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codec

import (
	"reflect"
	"testing"

	"cogentcore.org/props/shapes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// roundTrip encodes the given value with its strategy, decodes the
// text into a new value, and checks that the two are equal.
func roundTrip[T any](t *testing.T, value T) string {
	st, err := For(info[T](t), nil)
	require.NoError(t, err)
	text := st.Encode(reflect.ValueOf(value))
	var got T
	require.NoError(t, st.Decode(text, reflect.ValueOf(&got).Elem()), text)
	assert.Equal(t, value, got, text)
	return text
}

func TestStrategyRoundTrip(t *testing.T) {
	assert.Equal(t, "7", roundTrip(t, 7))
	assert.Equal(t, "0.25", roundTrip(t, float32(0.25)))
	assert.Equal(t, "hello, world}", roundTrip(t, "hello, world}"))
	assert.Equal(t, "1 2 3", roundTrip(t, [3]int{1, 2, 3}))
	assert.Equal(t, "1.5 -2 3e+10", roundTrip(t, []float64{1.5, -2, 3e10}))
	assert.Equal(t, "a|b|c", roundTrip(t, []string{"a", "b", "c"}))
	assert.Equal(t, "true false", roundTrip(t, []bool{true, false}))
	assert.Equal(t, "1 0 0 1", roundTrip(t, [2][2]float32{{1, 0}, {0, 1}}))
	assert.Equal(t, "1 2 3 4 5 6", roundTrip(t, [][3]int{{1, 2, 3}, {4, 5, 6}}))
	assert.Equal(t, "|", roundTrip(t, [2]string{"", ""}))
	assert.Equal(t, "", roundTrip(t, [1]string{""}))
}

func TestStrategyEmptyLists(t *testing.T) {
	st, err := For(info[[]string](t), nil)
	require.NoError(t, err)
	list := []string{"x"}
	require.NoError(t, st.Decode("", reflect.ValueOf(&list).Elem()))
	assert.Len(t, list, 0)

	nst, err := For(info[[]int](t), nil)
	require.NoError(t, err)
	nums := []int{1, 2}
	require.NoError(t, nst.Decode("  ", reflect.ValueOf(&nums).Elem()))
	assert.Len(t, nums, 0)
}

func TestStrategySingleEmptyText(t *testing.T) {
	st, err := For(info[[]string](t), nil)
	require.NoError(t, err)
	text := st.Encode(reflect.ValueOf([]string{""}))
	assert.Equal(t, "", text)

	got := []string{"x"}
	require.NoError(t, st.Decode(text, reflect.ValueOf(&got).Elem()))
	assert.Len(t, got, 0)

	assert.Equal(t, "|", roundTrip(t, []string{"", ""}))
}

func TestStrategyCountErrors(t *testing.T) {
	st, err := For(info[[3]float64](t), nil)
	require.NoError(t, err)
	arr := [3]float64{1, 2, 3}
	assert.ErrorIs(t, st.Decode("1 2", reflect.ValueOf(&arr).Elem()), ErrParse)
	assert.ErrorIs(t, st.Decode("1 2 3 4", reflect.ValueOf(&arr).Elem()), ErrParse)
	assert.ErrorIs(t, st.Decode("1 2 x", reflect.ValueOf(&arr).Elem()), ErrParse)
	assert.Equal(t, [3]float64{1, 2, 3}, arr)

	pst, err := For(info[[][2]int](t), nil)
	require.NoError(t, err)
	pts := [][2]int{{1, 1}}
	assert.ErrorIs(t, pst.Decode("1 2 3", reflect.ValueOf(&pts).Elem()), ErrParse)
	assert.Equal(t, [][2]int{{1, 1}}, pts)
}

func TestStrategyLayoutMismatch(t *testing.T) {
	_, err := For(info[[]rec](t), &Layout{Type: reflect.TypeFor[other]()})
	assert.Error(t, err)
}

func TestStrategyRecordInMatrix(t *testing.T) {
	in := info[[]rec](t)
	in.Shape = shapes.FixedMatrix
	in.Rows, in.Columns = 2, 2
	_, err := For(in, nil)
	assert.ErrorIs(t, err, shapes.ErrUnsupportedShape)
}
