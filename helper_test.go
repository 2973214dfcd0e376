// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bseq_test

import (
	"code.hybscloud.com/bseq"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// stepAll drives a consumer to completion via the Step+Advance loop.
// Used by stepping tests to exercise the one-pull-at-a-time path.
func stepAll[T, R any](src bseq.Source[T], consumer kont.Expr[R]) R {
	result, susp := bseq.Step[R](consumer)
	for susp != nil {
		result, susp = bseq.Advance[T](src, susp)
	}
	return result
}

// pumpLoop pumps p until the producer behind it is exhausted, backing off
// while the queue is full. Runs on the writer goroutine.
func pumpLoop[T any](p *bseq.Pipe[T]) {
	var bo iox.Backoff
	for {
		n, err := p.Pump()
		if err == nil {
			return
		}
		if n > 0 {
			bo.Reset()
		} else {
			bo.Wait()
		}
	}
}
