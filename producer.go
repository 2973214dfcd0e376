// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bseq

import (
	"slices"
)

// Source is anything that hands out a bounded sequence one item at a time.
// Advance returns (item, false) while items remain and (zero, true) once
// the sequence is exhausted. Exhaustion is permanent.
type Source[T any] interface {
	Advance() (T, bool)
}

// Producer yields each element of a fixed collection exactly once, in
// insertion order, then reports exhaustion on every later call.
//
// A Producer is not safe for concurrent use. Callers that share one across
// goroutines must serialize Advance themselves, or use [Shared].
type Producer[T any] struct {
	items  []T
	cursor int
}

// New creates a producer over a private copy of items.
// Mutating the caller's slice afterwards does not affect the producer.
// An empty input yields a producer that is exhausted from the start.
func New[T any](items ...T) *Producer[T] {
	return &Producer[T]{items: slices.Clone(items)}
}

// Advance returns the next item and false, or the zero value and true
// once every item has been produced. The cursor never moves backwards.
func (p *Producer[T]) Advance() (T, bool) {
	if p.cursor >= len(p.items) {
		var zero T
		return zero, true
	}
	v := p.items[p.cursor]
	p.cursor++
	return v, false
}

// Len returns the number of items fixed at construction.
func (p *Producer[T]) Len() int {
	return len(p.items)
}

// Cursor returns how many items have been produced so far.
func (p *Producer[T]) Cursor() int {
	return p.cursor
}

// Remaining returns how many items are left.
func (p *Producer[T]) Remaining() int {
	return len(p.items) - p.cursor
}

// Exhausted reports whether the next Advance would report done.
func (p *Producer[T]) Exhausted() bool {
	return p.cursor >= len(p.items)
}
