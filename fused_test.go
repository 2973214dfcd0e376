// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bseq_test

import (
	"fmt"
	"slices"
	"testing"

	"code.hybscloud.com/bseq"
	"code.hybscloud.com/kont"
)

func TestNextBindSum(t *testing.T) {
	p := bseq.New(3, 4)
	// pull, pull, pull(done)
	consumer := bseq.NextBind(func(a bseq.Item[int]) kont.Eff[string] {
		return bseq.NextBind(func(b bseq.Item[int]) kont.Eff[string] {
			return bseq.NextBind(func(c bseq.Item[int]) kont.Eff[string] {
				return kont.Pure(fmt.Sprintf("%d %v", a.Value+b.Value, c.Done))
			})
		})
	})

	got := bseq.Exec[int](p, consumer)
	if got != "7 true" {
		t.Fatalf("got %q, want %q", got, "7 true")
	}
}

func TestDrain(t *testing.T) {
	p := bseq.New("x", "y", "z")
	got := bseq.Exec[string](p, bseq.Drain[string]())
	if !slices.Equal(got, []string{"x", "y", "z"}) {
		t.Fatalf("got %v", got)
	}
	if !p.Exhausted() {
		t.Fatal("producer should be exhausted")
	}
}

func TestDrainEmpty(t *testing.T) {
	got := bseq.Exec[int](bseq.New[int](), bseq.Drain[int]())
	if len(got) != 0 {
		t.Fatalf("got %v, want empty", got)
	}
}

func TestTake(t *testing.T) {
	p := bseq.New(1, 2, 3, 4, 5)
	first := bseq.Exec[int](p, bseq.Take[int](2))
	if !slices.Equal(first, []int{1, 2}) {
		t.Fatalf("first got %v", first)
	}
	rest := bseq.Exec[int](p, bseq.Take[int](10))
	if !slices.Equal(rest, []int{3, 4, 5}) {
		t.Fatalf("rest got %v", rest)
	}
	none := bseq.Exec[int](p, bseq.Take[int](3))
	if len(none) != 0 {
		t.Fatalf("after exhaustion got %v", none)
	}
}

func TestTakeZeroDoesNotPull(t *testing.T) {
	p := bseq.New(1)
	got := bseq.Exec[int](p, bseq.Take[int](0))
	if len(got) != 0 || p.Cursor() != 0 {
		t.Fatalf("got %v, cursor %d", got, p.Cursor())
	}
}

func TestExecOnShared(t *testing.T) {
	s := bseq.NewShared(10, 20)
	got := bseq.Exec[int](s, bseq.Drain[int]())
	if !slices.Equal(got, []int{10, 20}) {
		t.Fatalf("got %v", got)
	}
}

func TestExecUnhandledPanics(t *testing.T) {
	type bogus struct{ kont.Phantom[int] }

	defer func() {
		r := recover()
		msg, ok := r.(string)
		if !ok || msg != "bseq: unhandled effect in sourceHandler" {
			t.Fatalf("unexpected panic: %v", r)
		}
	}()
	bseq.Exec[int](bseq.New(1), kont.Perform(bogus{}))
}

func TestExecMismatchedItemTypePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic for Next[string] on a source of int")
		}
	}()
	bseq.Exec[int](bseq.New(1), bseq.Drain[string]())
}
