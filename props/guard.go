// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package props

import (
	"sync/atomic"

	"cogentcore.org/core/base/errors"
)

// ErrConcurrentAccess is the panic value when calls on the same
// [Value] or [Set] overlap, which means that the caller did not
// provide the required mutual exclusion.
var ErrConcurrentAccess = errors.New("props: concurrent access to a value or property set")

// guard detects overlapping calls. It does not lock: a second
// caller panics instead of waiting.
type guard struct {
	busy atomic.Bool
}

// borrow marks the guard as busy, panicking if it already is,
// and returns the function that releases it.
func (g *guard) borrow() func() {
	if !g.busy.CompareAndSwap(false, true) {
		panic(ErrConcurrentAccess)
	}
	return g.release
}

func (g *guard) release() { g.busy.Store(false) }
