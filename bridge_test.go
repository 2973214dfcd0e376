// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bseq_test

import (
	"slices"
	"testing"

	"code.hybscloud.com/bseq"
)

func TestReifyRoundTrip(t *testing.T) {
	p := bseq.New(1, 2, 3)
	got := bseq.ExecExpr[int](p, bseq.Reify(bseq.Drain[int]()))
	if !slices.Equal(got, []int{1, 2, 3}) {
		t.Fatalf("got %v", got)
	}
}

func TestReflectRoundTrip(t *testing.T) {
	p := bseq.New("a", "b")
	got := bseq.Exec[string](p, bseq.Reflect(bseq.ExprDrain[string]()))
	if !slices.Equal(got, []string{"a", "b"}) {
		t.Fatalf("got %v", got)
	}
}

func TestReifyReflectIdentity(t *testing.T) {
	p := bseq.New(4, 5)
	got := bseq.Exec[int](p, bseq.Reflect(bseq.Reify(bseq.Take[int](1))))
	if !slices.Equal(got, []int{4}) {
		t.Fatalf("got %v", got)
	}
	if p.Remaining() != 1 {
		t.Fatalf("remaining got %d, want 1", p.Remaining())
	}
}
