// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bseq

import (
	"code.hybscloud.com/kont"
)

// Item is the result of one pull: a value, or Done once the source is
// exhausted. Value is the zero value when Done is set.
type Item[T any] struct {
	Value T
	Done  bool
}

// Next is the effect operation for pulling one item from a source of T.
// Perform(Next[T]{}) resumes with an [Item].
type Next[T any] struct {
	kont.Phantom[Item[T]]
}

// DispatchSource handles Next by advancing src. Never blocks unless src does.
func (Next[T]) DispatchSource(src Source[T]) kont.Resumed {
	v, done := src.Advance()
	return Item[T]{Value: v, Done: done}
}

// sourceDispatcher is the structural interface for operations on a
// source of T.
type sourceDispatcher[T any] interface {
	DispatchSource(src Source[T]) kont.Resumed
}

// sourceHandler implements kont.Handler for pull effects on one source.
// Value type: passed to evalFrames on the stack, avoiding heap allocation.
type sourceHandler[T, R any] struct {
	src Source[T]
}

// Dispatch implements kont.Handler via structural interface assertion.
func (h sourceHandler[T, R]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	sop, ok := op.(sourceDispatcher[T])
	if !ok {
		panic("bseq: unhandled effect in sourceHandler")
	}
	return sop.DispatchSource(h.src), true
}
