// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bseq

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// DefaultPipeCapacity is the queue capacity used when NewPipe is given a
// non-positive capacity.
// 4 keeps the ring buffer small while still amortizing the writer's
// cached-index refresh.
const DefaultPipeCapacity = 4

// minPipeCapacity is the smallest capacity lfq.SPSC accepts.
const minPipeCapacity = 2

// Pipe moves the items of a producer from one goroutine to another over a
// bounded lock-free SPSC queue.
//
// Exactly one goroutine may call the writer side ([Pipe.Pump]) and exactly
// one goroutine may call the reader side ([Pipe.TryAdvance], [Pipe.Advance]).
// The reader sees the producer's items in order, then permanent exhaustion.
type Pipe[T any] struct {
	src     *Producer[T]
	q       lfq.SPSC[T]
	closed  atomix.Uint32
	slot    T
	pending bool
	serial  Serial
}

// NewPipe creates a pipe that drains src. src must not be advanced by
// anyone else afterwards.
// A non-positive capacity selects DefaultPipeCapacity; a capacity of 1 is
// raised to 2, the smallest queue lfq supports.
func NewPipe[T any](src *Producer[T], capacity int) *Pipe[T] {
	if src == nil {
		panic("bseq: nil producer in NewPipe")
	}
	switch {
	case capacity <= 0:
		capacity = DefaultPipeCapacity
	case capacity < minPipeCapacity:
		capacity = minPipeCapacity
	}
	p := &Pipe[T]{src: src, serial: nextSerial()}
	p.q.Init(capacity)
	return p
}

// Serial returns the serial number assigned to this pipe.
func (p *Pipe[T]) Serial() Serial {
	return p.serial
}

// Pump moves items from the producer into the queue until the queue is
// full or the producer is exhausted. It returns the number of items moved.
//
// Returns iox.ErrWouldBlock when the queue is full and items remain. An
// item taken from the producer but not yet enqueued is held and sent first
// on the next call. Once the producer is exhausted the pipe is closed and
// Pump returns (0, nil) from then on.
func (p *Pipe[T]) Pump() (int, error) {
	n := 0
	for {
		if !p.pending {
			v, done := p.src.Advance()
			if done {
				p.closed.Store(1)
				return n, nil
			}
			p.slot, p.pending = v, true
		}
		if err := p.q.Enqueue(&p.slot); err != nil {
			return n, err
		}
		p.pending = false
		n++
	}
}

// TryAdvance takes the next item without blocking.
// Returns iox.ErrWouldBlock when the queue is empty and the writer has not
// closed the pipe yet. After the pipe is closed and drained it returns
// (zero, true, nil) on every call.
func (p *Pipe[T]) TryAdvance() (T, bool, error) {
	v, err := p.q.Dequeue()
	if err == nil {
		return v, false, nil
	}
	if p.closed.Load() == 0 {
		var zero T
		return zero, false, err
	}
	// The close flag is set after the final enqueue; look once more.
	v, err = p.q.Dequeue()
	if err == nil {
		return v, false, nil
	}
	var zero T
	return zero, true, nil
}

// Advance takes the next item, waiting with adaptive backoff while the
// queue is empty. It blocks forever if nobody pumps the pipe.
func (p *Pipe[T]) Advance() (T, bool) {
	var bo iox.Backoff
	for {
		v, done, err := p.TryAdvance()
		if err == nil {
			return v, done
		}
		bo.Wait()
	}
}
