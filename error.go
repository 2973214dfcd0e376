// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bseq

import (
	"code.hybscloud.com/kont"
)

// errorDispatcher is the structural interface for kont error operations.
type errorDispatcher[E any] interface {
	DispatchError(ctx *kont.ErrorContext[E]) (kont.Resumed, bool)
}

// sourceErrorHandler handles both pull and error effects.
// Pulls go to the source. Error ops short-circuit on Throw.
// Value type: passed to evalFrames on the stack, avoiding heap allocation.
type sourceErrorHandler[T, E, A any] struct {
	src    Source[T]
	errCtx *kont.ErrorContext[E]
}

// Dispatch implements kont.Handler for the composed Source+Error handler.
// Dispatch order: Source → Error.
func (h sourceErrorHandler[T, E, A]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	if sop, ok := op.(sourceDispatcher[T]); ok {
		return sop.DispatchSource(h.src), true
	}
	if eop, ok := op.(errorDispatcher[E]); ok {
		v, _ := eop.DispatchError(h.errCtx)
		if h.errCtx.HasErr {
			return kont.Left[E, A](h.errCtx.Err), false
		}
		return v, true
	}
	panic("bseq: unhandled effect in sourceErrorHandler")
}

// Expect pulls one item and passes its value to f.
// Throws onDone instead when the source is exhausted.
//
// Do not place Expect inside a Catch body: kont runs Catch bodies under an
// error-only handler, so a pull there panics as an unhandled effect. Bind
// Expect after the Catch instead; its throw surfaces as Left from ExecError.
func Expect[E, T, B any](onDone E, f func(T) kont.Eff[B]) kont.Eff[B] {
	return NextBind(func(it Item[T]) kont.Eff[B] {
		if it.Done {
			return kont.ThrowError[E, B](onDone)
		}
		return f(it.Value)
	})
}

// ExprExpect is the Expr-world form of Expect.
func ExprExpect[E, T, B any](onDone E, f func(T) kont.Expr[B]) kont.Expr[B] {
	return ExprNextBind(func(it Item[T]) kont.Expr[B] {
		if it.Done {
			return kont.ExprThrowError[E, B](onDone)
		}
		return f(it.Value)
	})
}

// ExecError runs a Cont-world consumer with error handling against src.
// Returns Either[E, R]: Right on success, Left on Throw.
// Catch body and handler must be pure error effects (no pulls).
func ExecError[E, T, R any](src Source[T], consumer kont.Eff[R]) kont.Either[E, R] {
	wrapped := kont.Map[kont.Resumed, R, kont.Either[E, R]](consumer, func(r R) kont.Either[E, R] {
		return kont.Right[E, R](r)
	})
	var errCtx kont.ErrorContext[E]
	h := sourceErrorHandler[T, E, R]{src: src, errCtx: &errCtx}
	return kont.Handle(wrapped, h)
}

// ExecErrorExpr runs an Expr-world consumer with error handling against src.
// Returns Either[E, R]: Right on success, Left on Throw.
func ExecErrorExpr[E, T, R any](src Source[T], consumer kont.Expr[R]) kont.Either[E, R] {
	wrapped := kont.ExprMap(consumer, func(r R) kont.Either[E, R] {
		return kont.Right[E, R](r)
	})
	var errCtx kont.ErrorContext[E]
	h := sourceErrorHandler[T, E, R]{src: src, errCtx: &errCtx}
	return kont.HandleExpr(wrapped, h)
}

// StepError evaluates a consumer with error support until its first
// suspension. Returns (Either[E, R], nil) on completion or error,
// or (zero, suspension) if pending.
func StepError[E, R any](consumer kont.Expr[R]) (kont.Either[E, R], *kont.Suspension[kont.Either[E, R]]) {
	wrapped := kont.ExprMap(consumer, func(r R) kont.Either[E, R] {
		return kont.Right[E, R](r)
	})
	return kont.StepExpr(wrapped)
}

// AdvanceError dispatches the suspended operation.
// Pulls advance src. Throw discards the suspension and returns Left.
func AdvanceError[E, T, R any](src Source[T], susp *kont.Suspension[kont.Either[E, R]]) (kont.Either[E, R], *kont.Suspension[kont.Either[E, R]]) {
	if sop, ok := susp.Op().(sourceDispatcher[T]); ok {
		return susp.Resume(sop.DispatchSource(src))
	}
	if eop, ok := susp.Op().(errorDispatcher[E]); ok {
		var ctx kont.ErrorContext[E]
		v, _ := eop.DispatchError(&ctx)
		if ctx.HasErr {
			susp.Discard()
			return kont.Left[E, R](ctx.Err), nil
		}
		return susp.Resume(v)
	}
	panic("bseq: unhandled effect in AdvanceError")
}
