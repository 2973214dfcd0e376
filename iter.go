// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bseq

import "iter"

// Values returns a single-use iterator that pulls from src until it is
// exhausted. Breaking out of the loop leaves the rest of the items in src.
func Values[T any](src Source[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, done := src.Advance()
			if done || !yield(v) {
				return
			}
		}
	}
}

// Collect drains src and returns the remaining items in order.
func Collect[T any](src Source[T]) []T {
	var out []T
	for v := range Values(src) {
		out = append(out, v)
	}
	return out
}
