package record

import (
	"errors"
	"fmt"
)

// Kind discriminates the layout classes a Type can describe.
type Kind uint8

const (
	Invalid Kind = iota
	Scalar
	Struct
	Union
	Array
)

func (k Kind) String() string {
	switch k {
	case Scalar:
		return "scalar"
	case Struct:
		return "struct"
	case Union:
		return "union"
	case Array:
		return "array"
	default:
		return "invalid"
	}
}

// Type describes the memory layout of a fixed-layout native record. Types
// are immutable once constructed; the scalar types are package singletons,
// and aggregate types are built with NewStruct, NewPackedStruct, NewUnion
// and ArrayOf. Two values are layout-compatible only when they share the
// same *Type.
type Type struct {
	name   string
	kind   Kind
	size   int
	align  int
	fields []Field
	byName map[string]int
	elem   *Type
	count  int
}

// The fixed-width unsigned scalar types used by the cryptoauth C API.
var (
	Uint8  = &Type{name: "uint8_t", kind: Scalar, size: 1, align: 1}
	Uint16 = &Type{name: "uint16_t", kind: Scalar, size: 2, align: 2}
	Uint32 = &Type{name: "uint32_t", kind: Scalar, size: 4, align: 4}
)

// Field is one named member of a struct or union type.
type Field struct {
	Name string
	Type *Type

	offset int
}

// Offset returns the member's byte offset within its parent type. It is
// only meaningful on fields obtained from a constructed Type.
func (f Field) Offset() int { return f.offset }

// Name returns the declared C type name.
func (t *Type) Name() string { return t.name }

// Kind returns the layout class.
func (t *Type) Kind() Kind { return t.kind }

// Size returns the byte size of the layout, including trailing padding for
// aligned aggregates.
func (t *Type) Size() int { return t.size }

// Align returns the alignment requirement in bytes.
func (t *Type) Align() int { return t.align }

// NumFields returns the member count of a struct or union, zero otherwise.
func (t *Type) NumFields() int { return len(t.fields) }

// FieldAt returns the i'th declared member of a struct or union.
func (t *Type) FieldAt(i int) Field { return t.fields[i] }

// FieldByName looks up a struct or union member by name.
func (t *Type) FieldByName(name string) (Field, bool) {
	i, ok := t.byName[name]
	if !ok {
		return Field{}, false
	}
	return t.fields[i], true
}

// Elem returns the element type of an array, nil otherwise.
func (t *Type) Elem() *Type { return t.elem }

// Len returns the element count of an array, zero otherwise.
func (t *Type) Len() int { return t.count }

func (t *Type) String() string {
	if t.kind == Array {
		return fmt.Sprintf("%s[%d]", t.elem, t.count)
	}
	return t.name
}

// NewStruct builds a struct type with natural C member alignment: each
// member is placed at the next offset aligned to its own requirement and
// the total size is rounded up to the widest member alignment.
func NewStruct(name string, fields ...Field) (*Type, error) {
	return buildAggregate(name, Struct, fields, false)
}

// NewPackedStruct builds a struct type with no padding between members,
// matching C structs declared with a packed attribute. The cryptoauth wire
// structures are packed.
func NewPackedStruct(name string, fields ...Field) (*Type, error) {
	return buildAggregate(name, Struct, fields, true)
}

// NewUnion builds a union type: all members start at offset zero and the
// size is the widest member rounded up to the union alignment.
func NewUnion(name string, fields ...Field) (*Type, error) {
	return buildAggregate(name, Union, fields, false)
}

// ArrayOf returns the array type with count elements of elem. Like
// reflect.ArrayOf it panics when elem is nil or count is not positive,
// since both indicate a malformed type definition.
func ArrayOf(elem *Type, count int) *Type {
	if elem == nil {
		panic("record: ArrayOf of nil element type")
	}
	if count <= 0 {
		panic("record: ArrayOf with non-positive count")
	}
	return &Type{
		kind:  Array,
		size:  elem.size * count,
		align: elem.align,
		elem:  elem,
		count: count,
	}
}

func buildAggregate(name string, kind Kind, fields []Field, packed bool) (*Type, error) {
	if name == "" {
		return nil, errors.New("record: aggregate type needs a name")
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("record: %s has no fields", name)
	}

	t := &Type{
		name:   name,
		kind:   kind,
		align:  1,
		byName: make(map[string]int, len(fields)),
	}

	offset := 0
	for _, f := range fields {
		if f.Name == "" {
			return nil, fmt.Errorf("record: %s has an unnamed field", name)
		}
		if f.Type == nil || f.Type.kind == Invalid {
			return nil, fmt.Errorf("record: field %s.%s has no type", name, f.Name)
		}
		if _, dup := t.byName[f.Name]; dup {
			return nil, fmt.Errorf("record: duplicate field %s.%s", name, f.Name)
		}

		align := f.Type.align
		if packed {
			align = 1
		}
		if kind == Union {
			f.offset = 0
			if f.Type.size > t.size {
				t.size = f.Type.size
			}
		} else {
			offset = alignUp(offset, align)
			f.offset = offset
			offset += f.Type.size
		}
		if align > t.align {
			t.align = align
		}

		t.byName[f.Name] = len(t.fields)
		t.fields = append(t.fields, f)
	}

	if kind == Struct {
		t.size = offset
	}
	t.size = alignUp(t.size, t.align)
	return t, nil
}

func alignUp(n, align int) int {
	return (n + align - 1) &^ (align - 1)
}
