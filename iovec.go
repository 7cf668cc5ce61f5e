package bytering

// Iovec is a vectored I/O descriptor: a (pointer, length) pair suitable for
// scatter/gather system calls, independent of any particular platform's
// native iovec layout (unix.Iovec's Len field width varies by GOARCH; this
// type does not).
type Iovec struct {
	Base *byte
	Len  int
}

func iovecsFromViews(views [2][]byte) []Iovec {
	iovecs := make([]Iovec, 0, 2)
	for _, v := range views {
		if len(v) == 0 {
			continue
		}
		iovecs = append(iovecs, Iovec{Base: &v[0], Len: len(v)})
	}
	return iovecs
}

// FilledIovecFunc is called by WithFilledIovecs with the filled region
// wrapped as a scatter/gather descriptor pair, ready to adapt to a
// platform's vectored write syscall. Same contract as FilledFunc: returns
// bytes consumed and/or an error.
type FilledIovecFunc func(iovecs []Iovec, total int) (n int, err error)

// WithFilledIovecs is the vectored-I/O-descriptor variant of
// WithFilledSlices: the same read-of-filled synchronization protocol, but
// f receives []Iovec pointing at the filled region's storage instead of
// plain []byte slices, so it can be adapted directly to a readv/writev-
// style syscall without any intermediate copy.
func (c *Consumer) WithFilledIovecs(f FilledIovecFunc) (int, error) {
	return c.WithFilledSlices(func(views [2][]byte, total int) (int, error) {
		return f(iovecsFromViews(views), total)
	})
}

// EmptyIovecFunc is the producer-side mirror of FilledIovecFunc.
type EmptyIovecFunc func(iovecs []Iovec, total int) (n int, err error)

// WithEmptyIovecs is the vectored-I/O-descriptor variant of
// WithEmptySlices.
func (p *Producer) WithEmptyIovecs(f EmptyIovecFunc) (int, error) {
	return p.WithEmptySlices(func(views [2][]byte, total int) (int, error) {
		return f(iovecsFromViews(views), total)
	})
}
