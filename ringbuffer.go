// Package bytering implements a fixed-capacity, single-producer /
// single-consumer lock-free byte ring buffer for streaming bulk I/O between
// two cooperating goroutines.
//
// Two absolute, never-wrapped counters (read and write) are the sole
// synchronization channel between the two endpoints: the producer owns
// write, the consumer owns read, and a release/acquire pair on each
// publishes the bytes that counter's advance exposes. Occupancy is simply
// write-read; there is no reserved slot and no full/empty ambiguity.
package bytering

import (
	"math/bits"
	"sync/atomic"

	"github.com/pkg/errors"
)

const cacheLineSize = 64

// shared is the ring state jointly owned by a Consumer and a Producer.
// Its storage is released once both endpoints become unreachable; unlike a
// manually-memory-managed language, Go's garbage collector makes the
// "last one out deallocates" rule automatic, so shared carries no explicit
// refcount.
type shared struct {
	mask    uint64
	storage *alignedStorage

	// Padded so read and write never share a cache line with each other
	// or with mask/storage above: the producer only ever writes write
	// and reads read; the consumer is the mirror image. Without padding
	// the two endpoints' cores would repeatedly invalidate each other's
	// cache line on every single advance.
	_pad0 [cacheLineSize]byte
	write atomic.Uint64
	_pad1 [cacheLineSize - 8]byte
	read  atomic.Uint64
	_pad2 [cacheLineSize - 8]byte
}

// Ring is the undivided handle returned by New. It cannot perform I/O; its
// only purpose is to enforce that a buffer is split into its two endpoints
// exactly once.
type Ring struct {
	s *shared
}

// New validates capacity and align (both must be powers of two, capacity
// non-zero; an align of 0 is treated as 1) and allocates storage. Any
// precondition failure is a
// *ConstructionError, which callers are expected to treat as fatal (see
// MustNew for a panicking convenience wrapper matching the construct-or-
// panic shape used elsewhere in this codebase's ambient style).
func New(capacity, align uint64) (*Ring, error) {
	if align == 0 {
		align = 1
	}
	storage, err := newAlignedStorage(capacity, align)
	if err != nil {
		return nil, &ConstructionError{cause: err}
	}
	s := &shared{
		mask:    capacity - 1,
		storage: storage,
	}
	return &Ring{s: s}, nil
}

// MustNew calls New and panics on error, mirroring the construct-or-panic
// idiom used for other fatal setup failures in this codebase; precondition
// and allocation failures are specified as fatal, not recoverable.
func MustNew(capacity, align uint64) *Ring {
	r, err := New(capacity, align)
	if err != nil {
		panic(err)
	}
	return r
}

// IntoParts consumes the undivided Ring and returns its two endpoints.
// Calling IntoParts more than once on the same Ring would hand out two
// Consumers or two Producers for the same shared state, breaking the
// single-writer-per-counter invariant the whole protocol depends on, so a
// second call panics.
func (r *Ring) IntoParts() (*Consumer, *Producer) {
	s := r.s
	if s == nil {
		panic("bytering: IntoParts called more than once on the same Ring")
	}
	r.s = nil
	return &Consumer{s: s}, &Producer{s: s}
}

// checkedAdd advances base by n, panicking on overflow rather than wrapping
// silently. Overflow is specified as a fatal, abort-worthy condition (64-bit
// counters make it a non-issue in practice, but the check costs nothing on
// the hot path relative to the atomic store that follows it).
func checkedAdd(base, n uint64) uint64 {
	sum, carry := bits.Add64(base, n, 0)
	if carry != 0 {
		panic(errors.Errorf("bytering: counter overflow advancing by %d past %d", n, base))
	}
	return sum
}
