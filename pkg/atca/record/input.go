package record

import (
	"errors"
	"fmt"
)

// ErrSizeMismatch reports an integer-to-aggregate bit copy whose target is
// not exactly the width of the integer representation.
var ErrSizeMismatch = errors.New("record: bit copy target is not 4 bytes")

// Input is the closed set of host-language shapes that can be marshalled
// into a fixed-layout record:
//
//	Fields:  keyword construction of a struct or union
//	Integer: a plain integer
//	Enum:    an enumerated constant
//	Bytes:   a raw byte sequence, for byte arrays
//	String:  an ASCII string, for byte arrays
//	List:    per-element array construction
//	*Value:  an already-marshalled record, passed through
type Input interface {
	isInput()
}

// Fields constructs a struct or union from named member inputs, marshalling
// nested aggregates recursively.
type Fields map[string]Input

// Integer is a plain integer input. Into a scalar it is a range-checked
// assignment; into a 4-byte struct or union it is a raw little-endian bit
// copy of its 4-byte representation.
type Integer uint32

// Enum is an enumerated constant input. It converts exactly like Integer
// and exists so call sites keep the distinction between arbitrary numbers
// and named device constants.
type Enum uint32

// Bytes is a raw byte sequence input for byte arrays.
type Bytes []byte

// String is an ASCII string input for byte arrays.
type String string

// List builds an array element by element, each element marshalled
// recursively against the array's element type.
type List []Input

func (Fields) isInput()  {}
func (Integer) isInput() {}
func (Enum) isInput()    {}
func (Bytes) isInput()   {}
func (String) isInput()  {}
func (List) isInput()    {}
func (*Value) isInput()  {}

// Marshal converts in into an instance of t. Array types dispatch to
// MarshalArray; the remaining conversions follow the shape of the input:
// Fields construct aggregates member by member, Integer and Enum either
// assign a scalar or bit-copy into a 4-byte aggregate, and a *Value of the
// same type passes through unchanged.
func Marshal(t *Type, in Input) (*Value, error) {
	if t == nil {
		return nil, errors.New("record: marshal into nil type")
	}
	if t.kind == Array {
		return MarshalArray(t, in)
	}

	switch in := in.(type) {
	case *Value:
		if in == nil {
			return nil, fmt.Errorf("record: nil input for %s", t)
		}
		if in.typ != t {
			return nil, fmt.Errorf("record: cannot pass %s value as %s", in.typ, t)
		}
		return in, nil
	case Fields:
		return marshalFields(t, in)
	case Integer:
		return marshalWord(t, uint32(in))
	case Enum:
		return marshalWord(t, uint32(in))
	case Bytes, String, List:
		return nil, fmt.Errorf("record: %T input not valid for %s %s", in, t.kind, t)
	case nil:
		return nil, fmt.Errorf("record: nil input for %s", t)
	default:
		return nil, fmt.Errorf("record: unsupported input %T for %s", in, t)
	}
}

// MarshalArray converts in into an instance of the array type t. Arrays of
// 1-byte scalars accept String (ASCII only) and Bytes inputs; every array
// accepts List and an already-typed *Value. Shorter inputs leave the
// remaining elements zeroed, longer inputs are an error.
func MarshalArray(t *Type, in Input) (*Value, error) {
	if t == nil {
		return nil, errors.New("record: marshal into nil type")
	}
	if t.kind != Array {
		return nil, fmt.Errorf("record: %s is not an array", t)
	}

	byteElem := t.elem.kind == Scalar && t.elem.size == 1

	switch in := in.(type) {
	case *Value:
		if in == nil {
			return nil, fmt.Errorf("record: nil input for %s", t)
		}
		if in.typ != t {
			return nil, fmt.Errorf("record: cannot pass %s value as %s", in.typ, t)
		}
		return in, nil
	case String:
		if !byteElem {
			return nil, fmt.Errorf("record: string input needs a byte array, have %s", t)
		}
		for i := 0; i < len(in); i++ {
			if in[i] > 0x7F {
				return nil, fmt.Errorf("record: non-ASCII byte %#x in string input", in[i])
			}
		}
		return fillBytes(t, []byte(in))
	case Bytes:
		if !byteElem {
			return nil, fmt.Errorf("record: bytes input needs a byte array, have %s", t)
		}
		return fillBytes(t, in)
	case List:
		if len(in) > t.count {
			return nil, fmt.Errorf("record: %d elements exceed %s", len(in), t)
		}
		v := NewValue(t)
		for i, e := range in {
			ev, err := Marshal(t.elem, e)
			if err != nil {
				return nil, fmt.Errorf("record: element %d: %w", i, err)
			}
			copy(v.buf[i*t.elem.size:], ev.buf)
		}
		return v, nil
	case nil:
		return nil, fmt.Errorf("record: nil input for %s", t)
	default:
		return nil, fmt.Errorf("record: %T input not valid for %s", in, t)
	}
}

func fillBytes(t *Type, b []byte) (*Value, error) {
	if len(b) > t.count {
		return nil, fmt.Errorf("record: %d bytes exceed %s", len(b), t)
	}
	v := NewValue(t)
	copy(v.buf, b)
	return v, nil
}

func marshalFields(t *Type, in Fields) (*Value, error) {
	if t.kind != Struct && t.kind != Union {
		return nil, fmt.Errorf("record: field input not valid for %s %s", t.kind, t)
	}
	if t.kind == Union && len(in) > 1 {
		return nil, fmt.Errorf("record: %d members set on union %s", len(in), t)
	}

	v := NewValue(t)
	for name, fin := range in {
		f, ok := t.FieldByName(name)
		if !ok {
			return nil, fmt.Errorf("record: %s has no field %q", t, name)
		}
		fv, err := Marshal(f.Type, fin)
		if err != nil {
			return nil, fmt.Errorf("record: field %s.%s: %w", t, name, err)
		}
		copy(v.buf[f.offset:f.offset+f.Type.size], fv.buf)
	}
	return v, nil
}

// marshalWord implements the integer conversion paths. A scalar target is a
// range-checked assignment. An aggregate target takes the little-endian
// 4-byte representation of w as its backing bytes, but only when the target
// is exactly 4 bytes wide.
func marshalWord(t *Type, w uint32) (*Value, error) {
	v := NewValue(t)
	if t.kind == Scalar {
		if err := v.SetUint(uint64(w)); err != nil {
			return nil, err
		}
		return v, nil
	}
	if t.size != 4 {
		return nil, fmt.Errorf("%w: %s is %d bytes", ErrSizeMismatch, t, t.size)
	}
	v.buf[0] = byte(w)
	v.buf[1] = byte(w >> 8)
	v.buf[2] = byte(w >> 16)
	v.buf[3] = byte(w >> 24)
	return v, nil
}
