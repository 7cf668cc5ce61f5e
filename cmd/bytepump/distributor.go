package main

import (
	"errors"
	"io"
	"sync/atomic"

	pkgerrors "github.com/pkg/errors"

	bytering "github.com/cloneable/bytering"
)

// runProducerPump is the producer-side half of the streaming termination
// pattern described in spec.md §6: it drives WithEmptyIovecs with a
// vectored read from src, and once src reports zero bytes while a
// non-zero region was offered, it marks exhausted and returns. This is
// the byte-streaming analogue of the teacher's StartInputDistributor loop
// -- a `for { ring op; dispatch }` shape -- except here the "dispatch" is
// the vectored read syscall itself, not a switch over event types.
func runProducerPump(p *bytering.Producer, src VectoredReader, exhausted *atomic.Bool) error {
	for {
		offered := false
		n, err := p.WithEmptyIovecs(func(iovecs []bytering.Iovec, total int) (int, error) {
			if total == 0 {
				return 0, nil
			}
			offered = true
			return src.Readv(iovecs)
		})
		if err != nil {
			if errors.Is(err, io.EOF) {
				exhausted.Store(true)
				return nil
			}
			return pkgerrors.Wrap(err, "bytepump: producer pump read")
		}
		if offered && n == 0 {
			exhausted.Store(true)
			return nil
		}
	}
}

// runConsumerPump is the consumer-side half: it drives WithFilledIovecs
// with a vectored write to dst, and stops once the producer has both
// reported exhaustion and fully drained.
func runConsumerPump(c *bytering.Consumer, isEmpty func() bool, exhausted *atomic.Bool, dst VectoredWriter) error {
	for {
		if exhausted.Load() && isEmpty() {
			return nil
		}
		_, err := c.WithFilledIovecs(func(iovecs []bytering.Iovec, total int) (int, error) {
			if total == 0 {
				return 0, nil
			}
			return dst.Writev(iovecs)
		})
		if err != nil {
			return pkgerrors.Wrap(err, "bytepump: consumer pump write")
		}
	}
}
