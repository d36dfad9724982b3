package atca

import "strconv"

// ByteBuffer is the plain mutable byte sequence handed across the native
// boundary for commands that fill or consume raw memory.
type ByteBuffer []byte

// NewByteBuffer allocates a zero-filled buffer of n bytes.
func NewByteBuffer(n int) ByteBuffer {
	return make(ByteBuffer, n)
}

// ByteBufferOf allocates a buffer of matching length initialized from init.
func ByteBufferOf(init []byte) ByteBuffer {
	buf := make(ByteBuffer, len(init))
	copy(buf, init)
	return buf
}

// Reference boxes a single unsigned integer so a boundary call can write an
// output value through it, emulating a C out parameter for callers holding
// an otherwise immutable value. Comparisons and arithmetic happen on the
// exported Value field.
type Reference struct {
	Value uint32
}

// NewReference boxes v.
func NewReference(v uint32) *Reference {
	return &Reference{Value: v}
}

// Set overwrites the boxed value.
func (r *Reference) Set(v uint32) { r.Value = v }

// Uint32 returns the boxed value.
func (r *Reference) Uint32() uint32 { return r.Value }

func (r *Reference) String() string {
	return strconv.FormatUint(uint64(r.Value), 10)
}
