// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bseq

import (
	"math"
	"slices"

	"code.hybscloud.com/atomix"
)

// Shared is a producer that may be advanced from many goroutines at once.
// Each item is claimed by exactly one Advance call. Which goroutine gets
// which item is unspecified, but every item is produced once and the
// claim order follows insertion order.
type Shared[T any] struct {
	items  []T
	cursor atomix.Uint32
}

// MaxSharedItems is the largest input NewShared accepts.
// The headroom above it absorbs cursor increments from goroutines that pass
// the exhaustion check together, so the uint32 cursor cannot wrap.
const MaxSharedItems = math.MaxUint32 / 2

// NewShared creates a concurrent producer over a private copy of items.
// Panics if items has more than MaxSharedItems elements.
func NewShared[T any](items ...T) *Shared[T] {
	if uint64(len(items)) > MaxSharedItems {
		panic("bseq: too many items for Shared")
	}
	return &Shared[T]{items: slices.Clone(items)}
}

// Advance claims the next item. Safe for concurrent use.
func (s *Shared[T]) Advance() (T, bool) {
	n := uint32(len(s.items))
	// Load first so that calls after exhaustion do not keep growing the
	// counter; concurrent overshoot is bounded by the number of callers.
	if s.cursor.Load() >= n {
		var zero T
		return zero, true
	}
	i := s.cursor.Add(1) - 1
	if i >= n {
		var zero T
		return zero, true
	}
	return s.items[i], false
}

// Len returns the number of items fixed at construction.
func (s *Shared[T]) Len() int {
	return len(s.items)
}

// Cursor returns how many items have been claimed so far.
func (s *Shared[T]) Cursor() int {
	return int(min(s.cursor.Load(), uint32(len(s.items))))
}

// Exhausted reports whether every item has been claimed.
func (s *Shared[T]) Exhausted() bool {
	return s.cursor.Load() >= uint32(len(s.items))
}
