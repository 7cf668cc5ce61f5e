package bytering

// Consumer is the non-shareable handle granting exclusive read access to
// the ring's filled region. It is movable between goroutines but must
// never be used concurrently by two of them: it is the sole writer of the
// read counter, and the release/acquire pairing with the producer's write
// counter only holds if that remains true.
type Consumer struct {
	s *shared
}

// FilledFunc is called by WithFilledSlices with the up-to-two read-only
// views over the currently filled region and their combined length. It
// must return the number of bytes it actually consumed (0 <= n <= total)
// or an error; on error the read counter is not advanced, so the same
// bytes will be offered again on the next call.
type FilledFunc func(views [2][]byte, total int) (n int, err error)

// WithFilledSlices is the consumer-side synchronized read primitive
// (spec's synced_read_of_filled): load write with acquire ordering so
// every byte the producer published before its release-store of write is
// visible here, compute the filled region, invoke f, and on success
// publish the read counter's advance with release ordering so the
// producer's next acquire-load of read observes exactly the bytes freed.
//
// If the filled region is empty, f is still called with two zero-length
// views; WithFilledSlices never spins, blocks, or retries on f's behalf.
func (c *Consumer) WithFilledSlices(f FilledFunc) (int, error) {
	r := c.s.read.Load()
	w := c.s.write.Load() // acquire: pairs with producer's release-store of write

	rng := filledRanges(c.s.mask, r, w)
	views := [2][]byte{
		c.s.storage.view(rng.First.Start, rng.First.End),
		c.s.storage.view(rng.Second.Start, rng.Second.End),
	}

	n, err := f(views, int(rng.Len()))
	if err != nil {
		return n, err
	}
	if n < 0 || uint64(n) > rng.Len() {
		panic("bytering: FilledFunc returned out-of-range byte count")
	}

	c.s.read.Store(checkedAdd(r, uint64(n))) // release: publishes freed space to producer
	return n, nil
}

// BytesConsumed reports the absolute count of bytes this consumer has
// released back to the producer since the ring was created.
func (c *Consumer) BytesConsumed() uint64 {
	return c.s.read.Load()
}

// BytesProduced reports the absolute count of bytes the producer has
// published so far, as observed by this consumer.
func (c *Consumer) BytesProduced() uint64 {
	return c.s.write.Load()
}
