// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bseq

import (
	"code.hybscloud.com/kont"
)

// Exec runs a Cont-world consumer against src until it completes.
// Every Next performed by the consumer advances src once.
func Exec[T, R any](src Source[T], consumer kont.Eff[R]) R {
	h := sourceHandler[T, R]{src: src}
	return kont.Handle(consumer, h)
}

// ExecExpr runs an Expr-world consumer against src until it completes.
func ExecExpr[T, R any](src Source[T], consumer kont.Expr[R]) R {
	h := sourceHandler[T, R]{src: src}
	return kont.HandleExpr(consumer, h)
}
