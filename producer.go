package bytering

// Producer is the non-shareable handle granting exclusive write access to
// the ring's empty region. It is movable between goroutines but must never
// be used concurrently by two of them, symmetrically to Consumer.
type Producer struct {
	s *shared
}

// EmptyFunc is called by WithEmptySlices with the up-to-two mutable views
// over the currently empty region and their combined length. It must
// return the number of bytes it actually wrote (0 <= n <= total) or an
// error; on error the write counter is not advanced.
type EmptyFunc func(views [2][]byte, total int) (n int, err error)

// WithEmptySlices is the producer-side synchronized write primitive
// (spec's synced_write_into_empty), symmetric to Consumer.WithFilledSlices:
// load read with acquire ordering, compute the empty region, invoke f, and
// on success publish the write counter's advance with release ordering so
// the consumer's next acquire-load of write observes exactly the bytes
// just written.
func (p *Producer) WithEmptySlices(f EmptyFunc) (int, error) {
	w := p.s.write.Load()
	r := p.s.read.Load() // acquire: pairs with consumer's release-store of read

	rng := emptyRanges(p.s.mask, r, w)
	views := [2][]byte{
		p.s.storage.mutableView(rng.First.Start, rng.First.End),
		p.s.storage.mutableView(rng.Second.Start, rng.Second.End),
	}

	n, err := f(views, int(rng.Len()))
	if err != nil {
		return n, err
	}
	if n < 0 || uint64(n) > rng.Len() {
		panic("bytering: EmptyFunc returned out-of-range byte count")
	}

	p.s.write.Store(checkedAdd(w, uint64(n))) // release: publishes new bytes to consumer
	return n, nil
}

// BytesConsumed reports the absolute count of bytes the consumer has
// released so far, as observed by this producer.
func (p *Producer) BytesConsumed() uint64 {
	return p.s.read.Load()
}

// BytesProduced reports the absolute count of bytes this producer has
// published since the ring was created.
func (p *Producer) BytesProduced() uint64 {
	return p.s.write.Load()
}

// IsEmpty reports whether the buffer is fully drained, i.e. the consumer
// has caught up to every byte this producer has published so far. Useful
// to a downstream consumer-of-the-pipeline deciding whether a declared
// end-of-stream has been fully consumed (see the streaming termination
// pattern in cmd/bytepump).
func (p *Producer) IsEmpty() bool {
	return p.s.read.Load() == p.s.write.Load()
}
