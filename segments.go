package bytering

// byteRange is a half-open range [Start, End) of offsets within storage.
type byteRange struct {
	Start uint64
	End   uint64
}

func (r byteRange) Len() uint64 {
	return r.End - r.Start
}

// rangePair is the "up to two contiguous segments" view the spec requires:
// a non-wrapping region is represented by a non-empty First and an empty
// Second ([0,0)); a wrapping region splits across both.
type rangePair struct {
	First  byteRange
	Second byteRange
}

func (p rangePair) Len() uint64 {
	return p.First.Len() + p.Second.Len()
}

// split builds the rangePair for a region of the given length starting at
// byte offset start within a ring of the given capacity. A region that
// reaches exactly to the end of storage (start+length == capacity) is
// represented as a single non-wrapping range ending at capacity, not as a
// wrapped range ending at 0 — the two are equivalent modulo capacity, but
// only the former matches the boundary shapes spec.md's segment arithmetic
// calls out explicitly (empty-buffer and full-buffer cases).
func split(capacity, start, length uint64) rangePair {
	if start+length <= capacity {
		return rangePair{
			First:  byteRange{Start: start, End: start + length},
			Second: byteRange{Start: 0, End: 0},
		}
	}
	return rangePair{
		First:  byteRange{Start: start, End: capacity},
		Second: byteRange{Start: 0, End: start + length - capacity},
	}
}

// filledRanges maps (mask, read, write) to the filled region: the bytes the
// consumer may read, as up to two half-open ranges within [0, capacity).
func filledRanges(mask, read, write uint64) rangePair {
	capacity := mask + 1
	length := write - read
	start := read & mask
	return split(capacity, start, length)
}

// emptyRanges maps (mask, read, write) to the empty region: the bytes the
// producer may write into, symmetric to filledRanges.
func emptyRanges(mask, read, write uint64) rangePair {
	capacity := mask + 1
	length := capacity - (write - read)
	start := write & mask
	return split(capacity, start, length)
}
