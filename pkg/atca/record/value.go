package record

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrShortBuffer reports a hydration buffer shorter than the value size.
var ErrShortBuffer = errors.New("record: buffer shorter than value size")

// Value is an instance of a Type backed by a byte buffer of exactly the
// declared size. Field and Index return views that alias the parent buffer,
// so writes through a view are visible in the parent, matching C member
// access semantics.
type Value struct {
	typ *Type
	buf []byte
}

// NewValue allocates a zero-filled instance of t. It panics when t is nil,
// mirroring reflect.New.
func NewValue(t *Type) *Value {
	if t == nil {
		panic("record: NewValue of nil type")
	}
	return &Value{typ: t, buf: make([]byte, t.size)}
}

// Type returns the layout this value instantiates.
func (v *Value) Type() *Type { return v.typ }

// Size returns the declared byte size.
func (v *Value) Size() int { return v.typ.size }

// Bytes copies the backing memory into a fresh byte slice of exactly the
// declared size.
func (v *Value) Bytes() []byte {
	out := make([]byte, len(v.buf))
	copy(out, v.buf)
	return out
}

// Buffer returns the backing memory itself, for handing to a boundary call
// that fills or consumes it in place. The slice aliases the value.
func (v *Value) Buffer() []byte { return v.buf }

// UpdateFromBuffer overwrites the backing memory from buf. It fails with
// ErrShortBuffer when buf holds fewer bytes than the declared size; excess
// bytes are ignored.
func (v *Value) UpdateFromBuffer(buf []byte) error {
	if len(buf) < len(v.buf) {
		return fmt.Errorf("%w: have %d, need %d", ErrShortBuffer, len(buf), len(v.buf))
	}
	copy(v.buf, buf[:len(v.buf)])
	return nil
}

// Field returns a view of the named struct or union member.
func (v *Value) Field(name string) (*Value, error) {
	if v.typ.kind != Struct && v.typ.kind != Union {
		return nil, fmt.Errorf("record: %s has no fields", v.typ)
	}
	f, ok := v.typ.FieldByName(name)
	if !ok {
		return nil, fmt.Errorf("record: %s has no field %q", v.typ, name)
	}
	return &Value{typ: f.Type, buf: v.buf[f.offset : f.offset+f.Type.size]}, nil
}

// Index returns a view of the i'th array element.
func (v *Value) Index(i int) (*Value, error) {
	if v.typ.kind != Array {
		return nil, fmt.Errorf("record: %s is not an array", v.typ)
	}
	if i < 0 || i >= v.typ.count {
		return nil, fmt.Errorf("record: index %d out of range [0,%d)", i, v.typ.count)
	}
	off := i * v.typ.elem.size
	return &Value{typ: v.typ.elem, buf: v.buf[off : off+v.typ.elem.size]}, nil
}

// Uint reads a scalar value, little-endian.
func (v *Value) Uint() (uint64, error) {
	if v.typ.kind != Scalar {
		return 0, fmt.Errorf("record: %s is not a scalar", v.typ)
	}
	switch v.typ.size {
	case 1:
		return uint64(v.buf[0]), nil
	case 2:
		return uint64(binary.LittleEndian.Uint16(v.buf)), nil
	default:
		return uint64(binary.LittleEndian.Uint32(v.buf)), nil
	}
}

// SetUint writes a scalar value, little-endian, rejecting values that do
// not fit the scalar width.
func (v *Value) SetUint(u uint64) error {
	if v.typ.kind != Scalar {
		return fmt.Errorf("record: %s is not a scalar", v.typ)
	}
	if max := uint64(1)<<(8*v.typ.size) - 1; u > max {
		return fmt.Errorf("record: value %d does not fit %s", u, v.typ)
	}
	switch v.typ.size {
	case 1:
		v.buf[0] = byte(u)
	case 2:
		binary.LittleEndian.PutUint16(v.buf, uint16(u))
	default:
		binary.LittleEndian.PutUint32(v.buf, uint32(u))
	}
	return nil
}

// Equal reports whether o instantiates the same Type with identical backing
// bytes.
func (v *Value) Equal(o *Value) bool {
	if v == nil || o == nil {
		return v == o
	}
	return v.typ == o.typ && bytes.Equal(v.buf, o.buf)
}
