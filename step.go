// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bseq

import (
	"code.hybscloud.com/kont"
)

// Step evaluates a consumer until its first pull.
// Returns (result, nil) on completion, or (zero, suspension) if pending.
func Step[R any](consumer kont.Expr[R]) (R, *kont.Suspension[R]) {
	return kont.StepExpr(consumer)
}

// Advance dispatches the suspended pull against src and resumes the
// consumer up to its next pull or completion. The suspension is consumed.
// Panics if the suspended operation is not a pull on a source of T.
func Advance[T, R any](src Source[T], susp *kont.Suspension[R]) (R, *kont.Suspension[R]) {
	sop, ok := susp.Op().(sourceDispatcher[T])
	if !ok {
		panic("bseq: unhandled effect in Advance")
	}
	return susp.Resume(sop.DispatchSource(src))
}
