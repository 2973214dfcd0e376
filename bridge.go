// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bseq

import (
	"code.hybscloud.com/kont"
)

// Reify converts a Cont-world consumer to Expr-world, so it can be
// stepped with Step and Advance or driven by RunPipe.
func Reify[A any](consumer kont.Eff[A]) kont.Expr[A] {
	return kont.Reify(consumer)
}

// Reflect converts an Expr-world consumer to Cont-world for Exec.
func Reflect[A any](consumer kont.Expr[A]) kont.Eff[A] {
	return kont.Reflect(consumer)
}
