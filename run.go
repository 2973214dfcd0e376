// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bseq

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// AdvancePipe dispatches the suspended pull on the reader side of p.
// Non-blocking: returns iox.ErrWouldBlock when the queue is empty and the
// pipe is still open. On ErrWouldBlock the suspension is unconsumed and
// may be retried after the writer pumps.
func AdvancePipe[T, R any](p *Pipe[T], susp *kont.Suspension[R]) (R, *kont.Suspension[R], error) {
	if _, ok := susp.Op().(Next[T]); !ok {
		panic("bseq: unhandled effect in AdvancePipe")
	}
	v, done, err := p.TryAdvance()
	if err != nil {
		var zero R
		return zero, susp, err
	}
	result, next := susp.Resume(Item[T]{Value: v, Done: done})
	return result, next, nil
}

// RunPipe drives both sides of p on the calling goroutine: it pumps the
// producer and steps the consumer in turn, backing off with iox.Backoff
// when neither side can make progress. Does not spawn goroutines.
func RunPipe[T, R any](p *Pipe[T], consumer kont.Expr[R]) R {
	result, susp := Step[R](consumer)
	var bo iox.Backoff
	for susp != nil {
		progress := false
		if n, _ := p.Pump(); n > 0 {
			progress = true
		}
		var err error
		result, susp, err = AdvancePipe(p, susp)
		if err == nil {
			progress = true
		}
		if !progress {
			bo.Wait()
		} else {
			bo.Reset()
		}
	}
	return result
}
