// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package props

import (
	"errors"
	"testing"

	"cogentcore.org/props/behaviors"
	"cogentcore.org/props/flat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProperty(t *testing.T) {
	p, err := NewOwnedProperty(Meta{Name: "MaxSpeed", Help: "top speed", Group: "Motion"}, 12.5, behaviors.NewRange(0, 100))
	require.NoError(t, err)
	assert.Equal(t, "MaxSpeed", p.Name())
	assert.Equal(t, "Max speed", p.Label())
	assert.Equal(t, "top speed", p.Help())
	assert.Equal(t, "Motion", p.Group())
	assert.Equal(t, "float64", p.TypeTag())
	assert.False(t, p.ReadOnly())
	assert.Equal(t, "MaxSpeed = 12.5", p.String())

	p.SetReadOnly(true)
	assert.True(t, p.ReadOnly())
	assert.True(t, p.Meta().ReadOnly)

	_, err = NewProperty(Meta{}, p.Value())
	assert.Error(t, err)
	_, err = NewProperty(Meta{Name: "x"}, nil)
	assert.Error(t, err)
	_, err = NewOwnedProperty(Meta{Name: "bad"}, map[int]int{})
	assert.Error(t, err)

	n := 3
	ap, err := NewAliasedProperty(Meta{Name: "Count"}, &n)
	require.NoError(t, err)
	require.NoError(t, ap.Value().SetString("4"))
	assert.Equal(t, 4, n)
}

func newSet(t *testing.T) *Set {
	s := NewSet("body")
	for _, m := range []Meta{{Name: "A", Group: "G1"}, {Name: "B", Group: "G2"}, {Name: "C", Group: "G1"}} {
		p, err := NewOwnedProperty(m, 0)
		require.NoError(t, err)
		require.NoError(t, s.Add(p))
	}
	return s
}

func TestSet(t *testing.T) {
	s := newSet(t)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []string{"A", "B", "C"}, s.Names())
	assert.Equal(t, []string{"G1", "G2"}, s.Groups())
	g1 := s.InGroup("G1")
	require.Len(t, g1, 2)
	assert.Equal(t, "C", g1[1].Name())

	p, ok := s.Property("B")
	assert.True(t, ok)
	assert.Equal(t, "B", p.Name())
	_, ok = s.Property("D")
	assert.False(t, ok)

	dup, err := NewOwnedProperty(Meta{Name: "A"}, 1)
	require.NoError(t, err)
	assert.Error(t, s.Add(dup))
	assert.Error(t, s.Add(nil))
	assert.Error(t, s.Bridge(dup, nil, nil))
	assert.Equal(t, 3, s.Len())
}

func TestSetMirror(t *testing.T) {
	live := struct {
		Pos  [3]float64
		Path []string
	}{Pos: [3]float64{1, 2, 3}, Path: []string{"a"}}

	s := NewSet("node")
	pos, err := s.Mirror(Meta{Name: "Pos"}, &live.Pos)
	require.NoError(t, err)
	path, err := s.Mirror(Meta{Name: "Path"}, &live.Path)
	require.NoError(t, err)
	assert.Equal(t, Owned, pos.Value().Ownership())

	live.Pos[0] = 10
	assert.Equal(t, "1 2 3", pos.Value().String())
	require.NoError(t, s.Pull())
	assert.Equal(t, "10 2 3", pos.Value().String())

	require.NoError(t, pos.Value().SetString("4 5 6"))
	require.NoError(t, path.Value().SetString("x|y"))
	assert.Equal(t, [3]float64{10, 2, 3}, live.Pos)
	require.NoError(t, s.Push())
	assert.Equal(t, [3]float64{4, 5, 6}, live.Pos)
	assert.Equal(t, []string{"x", "y"}, live.Path)

	_, err = s.Mirror(Meta{Name: "Bad"}, live.Pos)
	assert.Error(t, err)
}

func TestSetBridgeErrors(t *testing.T) {
	s := newSet(t)
	var order []string
	errA := errors.New("a failed")
	a, _ := s.Property("A")
	b, _ := s.Property("B")
	c, _ := s.Property("C")
	require.NoError(t, s.Bridge(a, func(v *Value) error {
		order = append(order, "A")
		return errA
	}, nil))
	require.NoError(t, s.Bridge(b, func(v *Value) error {
		order = append(order, "B")
		panic("boom")
	}, nil))
	require.NoError(t, s.Bridge(c, func(v *Value) error {
		order = append(order, "C")
		return v.Set(7)
	}, func(v *Value) error {
		order = append(order, "push C")
		return nil
	}))

	err := s.Pull()
	assert.ErrorIs(t, err, errA)
	assert.ErrorContains(t, err, "boom")
	assert.Equal(t, []string{"A", "B", "C"}, order)
	assert.Equal(t, 7, c.Value().Get())

	order = nil
	assert.NoError(t, s.Push())
	assert.Equal(t, []string{"push C"}, order)
}

func TestSetModified(t *testing.T) {
	s := NewSet("node")
	errFirst := errors.New("first")
	calls := 0
	s.OnModified(func() error { calls++; return errFirst })
	s.OnModified(func() error { calls++; panic("listener crashed") })
	s.OnModified(func() error { calls++; return nil })

	err := s.Modified()
	assert.Equal(t, 3, calls)
	assert.ErrorIs(t, err, errFirst)
	assert.ErrorContains(t, err, "listener crashed")

	assert.NoError(t, NewSet("empty").Modified())
}

func TestSetModifiedPull(t *testing.T) {
	live := 1.0
	s := NewSet("node")
	p, err := s.Mirror(Meta{Name: "X"}, &live)
	require.NoError(t, err)
	s.OnModified(s.Pull)
	live = 2
	require.NoError(t, s.Modified())
	assert.Equal(t, 2.0, p.Value().Get())
}

func TestSetConcurrentAccess(t *testing.T) {
	s := newSet(t)
	a, _ := s.Property("A")
	require.NoError(t, s.Bridge(a, func(v *Value) error {
		return s.Push()
	}, nil))
	err := s.Pull()
	assert.ErrorIs(t, err, ErrConcurrentAccess)
}

func TestSetValidateConcurrentAccess(t *testing.T) {
	s := newSet(t)
	a, _ := s.Property("A")
	require.NoError(t, s.Bridge(a, func(v *Value) error {
		s.Validate()
		return nil
	}, nil))
	assert.ErrorIs(t, s.Pull(), ErrConcurrentAccess)

	v := NewSet("reentrant")
	p, err := NewOwnedProperty(Meta{Name: "N"}, 1, behaviors.NewFunc(func(b *flat.Buffer) bool {
		v.Pull()
		return false
	}))
	require.NoError(t, err)
	require.NoError(t, v.Add(p))
	assert.PanicsWithValue(t, ErrConcurrentAccess, func() { v.Validate() })
	assert.NotPanics(t, func() { v.Validate() }, "guard released after panic")

	m := NewSet("modified")
	q, err := NewOwnedProperty(Meta{Name: "Speed"}, 50, behaviors.NewRange(0, 10))
	require.NoError(t, err)
	require.NoError(t, m.Add(q))
	var changed []string
	m.OnModified(func() error { changed = m.Validate(); return nil })
	require.NoError(t, m.Modified())
	assert.Equal(t, []string{"Speed"}, changed)
}

func TestSetValidate(t *testing.T) {
	s := NewSet("limits")
	p, err := NewOwnedProperty(Meta{Name: "Speed"}, 50, behaviors.NewRange(0, 10))
	require.NoError(t, err)
	require.NoError(t, s.Add(p))
	q, err := NewOwnedProperty(Meta{Name: "Mass"}, 5, behaviors.NewRange(0, 10))
	require.NoError(t, err)
	require.NoError(t, s.Add(q))
	assert.Equal(t, []string{"Speed"}, s.Validate())
	assert.Empty(t, s.Validate())
}
