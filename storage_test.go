package bytering

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestNewAlignedStorageRejectsNonPowerOfTwoCapacity(t *testing.T) {
	_, err := newAlignedStorage(10, 8)
	require.Error(t, err)
}

func TestNewAlignedStorageRejectsZeroCapacity(t *testing.T) {
	_, err := newAlignedStorage(0, 8)
	require.Error(t, err)
}

func TestNewAlignedStorageRejectsNonPowerOfTwoAlignment(t *testing.T) {
	_, err := newAlignedStorage(64, 3)
	require.Error(t, err)
}

func TestNewAlignedStorageAlignment(t *testing.T) {
	for _, align := range []uint64{1, 2, 8, 64, 4096} {
		s, err := newAlignedStorage(256, align)
		require.NoError(t, err)
		addr := uintptr(unsafe.Pointer(&s.bytes[0]))
		require.Zerof(t, addr&(uintptr(align)-1), "align=%d addr=%x", align, addr)
		require.Equal(t, uint64(256), s.len())
	}
}

func TestNewAlignedStorageIsZeroed(t *testing.T) {
	s, err := newAlignedStorage(128, 16)
	require.NoError(t, err)
	for i, b := range s.bytes {
		require.Zerof(t, b, "byte %d not zeroed", i)
	}
}

func TestAlignedStorageViewsAreDisjointSlicesOfSameArray(t *testing.T) {
	s, err := newAlignedStorage(64, 8)
	require.NoError(t, err)

	a := s.mutableView(0, 32)
	b := s.mutableView(32, 64)
	a[0] = 0xAA
	b[0] = 0xBB
	require.Equal(t, byte(0xAA), s.bytes[0])
	require.Equal(t, byte(0xBB), s.bytes[32])
}
