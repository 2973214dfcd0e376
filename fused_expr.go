// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bseq

import (
	"code.hybscloud.com/kont"
)

// exprReturnFrame is pre-boxed to avoid a heap escape when storing
// ReturnFrame{} into a kont.Frame.
var exprReturnFrame kont.Frame = kont.ReturnFrame{}

// identityResume is the identity resume function for EffectFrame construction.
func identityResume(v kont.Erased) kont.Erased { return v }

func nextBindUnwind[T, B any](data, _, _ kont.Erased, current kont.Erased) (kont.Erased, kont.Frame) {
	f := data.(func(Item[T]) kont.Expr[B])
	result := f(current.(Item[T]))
	return kont.Erased(result.Value), result.Frame
}

// ExprNextBind pulls one item and passes it to f.
// Fuses ExprPerform(Next[T]{}) + ExprBind.
func ExprNextBind[T, B any](f func(Item[T]) kont.Expr[B]) kont.Expr[B] {
	bf := kont.AcquireUnwindFrame()
	bf.Data1 = f
	bf.Unwind = nextBindUnwind[T, B]
	ef := kont.AcquireEffectFrame()
	ef.Operation = Next[T]{}
	ef.Resume = identityResume
	ef.Next = bf
	return kont.ExprSuspend[B](ef)
}

// ExprDrain pulls until the source is exhausted and returns the items in order.
func ExprDrain[T any]() kont.Expr[[]T] {
	return ExprLoop([]T(nil), func(acc []T) kont.Expr[kont.Either[[]T, []T]] {
		return ExprNextBind(func(it Item[T]) kont.Expr[kont.Either[[]T, []T]] {
			if it.Done {
				return kont.ExprReturn(kont.Right[[]T](acc))
			}
			return kont.ExprReturn(kont.Left[[]T, []T](append(acc, it.Value)))
		})
	})
}
