// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bseq

import (
	"code.hybscloud.com/kont"
)

// NextBind pulls one item and passes it to f.
// Fuses Perform(Next[T]{}) + Bind.
func NextBind[T, B any](f func(Item[T]) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(Next[T]{}), f)
}

// Drain pulls until the source is exhausted and returns the items in order.
func Drain[T any]() kont.Eff[[]T] {
	return Loop([]T(nil), func(acc []T) kont.Eff[kont.Either[[]T, []T]] {
		return NextBind(func(it Item[T]) kont.Eff[kont.Either[[]T, []T]] {
			if it.Done {
				return kont.Pure(kont.Right[[]T](acc))
			}
			return kont.Pure(kont.Left[[]T, []T](append(acc, it.Value)))
		})
	})
}

// Take pulls at most n items and returns them in order. It stops early
// when the source is exhausted.
func Take[T any](n int) kont.Eff[[]T] {
	return Loop(make([]T, 0, max(n, 0)), func(acc []T) kont.Eff[kont.Either[[]T, []T]] {
		if len(acc) >= n {
			return kont.Pure(kont.Right[[]T](acc))
		}
		return NextBind(func(it Item[T]) kont.Eff[kont.Either[[]T, []T]] {
			if it.Done {
				return kont.Pure(kont.Right[[]T](acc))
			}
			return kont.Pure(kont.Left[[]T, []T](append(acc, it.Value)))
		})
	})
}
