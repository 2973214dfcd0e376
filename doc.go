// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package bseq provides bounded sequence producers: values that hand out the
// elements of a fixed, finite collection exactly once, in order, and then stay
// exhausted forever.
//
// # Architecture
//
//   - Core: [Producer] owns a private copy of its items and a cursor. [New] snapshots the input.
//   - Pull: [Producer.Advance] returns (value, done). After the first done, every call returns (zero, true).
//   - Concurrency: [Shared] claims items with an atomic cursor via [code.hybscloud.com/atomix].
//   - Transport: [Pipe] moves a producer across goroutines over a lock-free SPSC queue from [code.hybscloud.com/lfq].
//     Non-blocking operations return [code.hybscloud.com/iox.ErrWouldBlock] on backpressure.
//   - Effects: consumers can be written as [code.hybscloud.com/kont] computations that perform [Next].
//
// # API Topologies
//
//   - Constructors: [New], [Distinct], [Sorted], [NewShared], [NewPipe].
//   - Iteration: [Values], [Collect] over any [Source].
//   - Cont-world: [NextBind], [Drain], [Expect], [Loop].
//   - Expr-world: [ExprNextBind], [ExprDrain], [ExprExpect], [ExprLoop]. Bridge via [Reify] and [Reflect].
//
// # Integration
//
//   - Stepping: [Step] and [Advance] (or [StepError]/[AdvanceError]) evaluate a consumer one pull at a time.
//   - Blocking: [Exec], [ExecExpr] (and Error variants) run a consumer to completion.
//   - Pipes: [RunPipe] interleaves pumping and consuming on the calling goroutine.
//
// # Example
//
//	p := bseq.New(1, 2, 3)
//	for {
//		v, done := p.Advance()
//		if done {
//			break
//		}
//		fmt.Println(v)
//	}
package bseq
