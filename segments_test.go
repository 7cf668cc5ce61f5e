package bytering

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Scenarios A-F from spec.md's testable-properties seed table.
func TestFilledRangesScenarios(t *testing.T) {
	cases := []struct {
		name        string
		mask        uint64
		read, write uint64
		wantFirst   byteRange
		wantSecond  byteRange
		wantLen     uint64
	}{
		{"A", 15, 2, 13, byteRange{2, 13}, byteRange{0, 0}, 11},
		{"B", 15, 10, 20, byteRange{10, 16}, byteRange{0, 4}, 10},
		{"C", 15, 16, 20, byteRange{0, 4}, byteRange{0, 0}, 4},
		{"D", 15, 0, 16, byteRange{0, 16}, byteRange{0, 0}, 16},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := filledRanges(c.mask, c.read, c.write)
			require.Equal(t, c.wantFirst, got.First)
			require.Equal(t, c.wantSecond, got.Second)
			require.Equal(t, c.wantLen, got.Len())
		})
	}
}

func TestEmptyRangesScenarios(t *testing.T) {
	cases := []struct {
		name        string
		mask        uint64
		read, write uint64
		wantFirst   byteRange
		wantSecond  byteRange
		wantLen     uint64
	}{
		{"E", 15, 15, 15, byteRange{15, 16}, byteRange{0, 15}, 16},
		{"F", 15, 13, 17, byteRange{1, 13}, byteRange{0, 0}, 12},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := emptyRanges(c.mask, c.read, c.write)
			require.Equal(t, c.wantFirst, got.First)
			require.Equal(t, c.wantSecond, got.Second)
			require.Equal(t, c.wantLen, got.Len())
		})
	}
}

// Property 1: filledRanges length sum equals write-read.
func TestFilledRangesLengthSum(t *testing.T) {
	const capacity = 64
	const mask = capacity - 1
	for read := uint64(0); read < 3*capacity; read++ {
		for occ := uint64(0); occ <= capacity; occ++ {
			write := read + occ
			got := filledRanges(mask, read, write)
			require.Equal(t, occ, got.Len(), "read=%d write=%d", read, write)
		}
	}
}

// Property 2: emptyRanges total length equals capacity-(write-read).
func TestEmptyRangesComplement(t *testing.T) {
	const capacity = 64
	const mask = capacity - 1
	for read := uint64(0); read < 3*capacity; read++ {
		for occ := uint64(0); occ <= capacity; occ++ {
			write := read + occ
			got := emptyRanges(mask, read, write)
			require.Equal(t, capacity-occ, got.Len(), "read=%d write=%d", read, write)
		}
	}
}

// Property 3: filled and empty ranges are disjoint and together cover
// [0, capacity) exactly.
func TestFilledAndEmptyRangesPartitionStorage(t *testing.T) {
	const capacity = 32
	const mask = capacity - 1
	for read := uint64(0); read < 3*capacity; read++ {
		for occ := uint64(0); occ <= capacity; occ++ {
			write := read + occ

			var covered [capacity]int // 0 = uncovered, 1 = filled, 2 = empty
			mark := func(rng rangePair, tag int) {
				for _, r := range [2]byteRange{rng.First, rng.Second} {
					for i := r.Start; i < r.End; i++ {
						require.Zerof(t, covered[i], "byte %d double-covered (read=%d write=%d)", i, read, write)
						covered[i] = tag
					}
				}
			}
			mark(filledRanges(mask, read, write), 1)
			mark(emptyRanges(mask, read, write), 2)

			for i, c := range covered {
				require.NotZerof(t, c, "byte %d uncovered (read=%d write=%d)", i, read, write)
			}
		}
	}
}

// Property 4: at most one of the two sub-ranges wraps; when
// (read&mask)+(write-read) <= capacity the second sub-range is empty.
func TestWrapShape(t *testing.T) {
	const capacity = 32
	const mask = capacity - 1
	for read := uint64(0); read < 3*capacity; read++ {
		for occ := uint64(0); occ <= capacity; occ++ {
			write := read + occ
			got := filledRanges(mask, read, write)
			if (read&mask)+occ <= capacity {
				require.Equal(t, uint64(0), got.Second.Len())
			}
		}
	}
}
