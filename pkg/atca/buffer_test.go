package atca

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	buf := NewByteBuffer(5)
	require.Len(t, buf, 5)
	require.Equal(t, ByteBuffer{0, 0, 0, 0, 0}, buf)
}

func TestByteBufferOf(t *testing.T) {
	init := []byte{1, 2, 3}
	buf := ByteBufferOf(init)
	require.Equal(t, ByteBuffer{1, 2, 3}, buf)

	// the buffer is a copy, not an alias
	init[0] = 9
	require.EqualValues(t, 1, buf[0])
}

func TestReferenceComparisons(t *testing.T) {
	r := NewReference(7)
	require.True(t, r.Value == 7)
	require.True(t, r.Value != 8)
	require.True(t, r.Value < 9)
	require.True(t, r.Value <= 7)
	require.True(t, r.Value > 3)
	require.True(t, r.Value >= 7)
	require.Equal(t, "7", r.String())
}

func TestReferenceWriteThrough(t *testing.T) {
	r := NewReference(0)
	out := func(dst *uint32) { *dst = 42 } // stand-in for a boundary call
	out(&r.Value)
	require.EqualValues(t, 42, r.Uint32())

	r.Set(13)
	require.True(t, r.Value == 13)
}

func TestZeroizeBytes(t *testing.T) {
	buf := ByteBufferOf([]byte{0xDE, 0xAD, 0xBE, 0xEF})
	ZeroizeBytes(buf)
	if !bytes.Equal(buf, make([]byte, 4)) {
		t.Errorf("buffer not wiped: %x", buf)
	}
}
