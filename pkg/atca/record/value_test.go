package record

import (
	"bytes"
	"errors"
	"testing"
)

func mustStruct(t *testing.T, name string, fields ...Field) *Type {
	t.Helper()
	typ, err := NewStruct(name, fields...)
	if err != nil {
		t.Fatalf("NewStruct(%s): %v", name, err)
	}
	return typ
}

func TestNewValueZeroed(t *testing.T) {
	typ := mustStruct(t, "z",
		Field{Name: "a", Type: Uint32},
		Field{Name: "b", Type: ArrayOf(Uint8, 9)},
	)
	v := NewValue(typ)
	if v.Size() != typ.Size() {
		t.Fatalf("size = %d, want %d", v.Size(), typ.Size())
	}
	if !bytes.Equal(v.Bytes(), make([]byte, typ.Size())) {
		t.Error("new value not zero-filled")
	}
}

func TestScalarAccess(t *testing.T) {
	for _, typ := range []*Type{Uint8, Uint16, Uint32} {
		v := NewValue(typ)
		max := uint64(1)<<(8*typ.Size()) - 1
		if err := v.SetUint(max); err != nil {
			t.Fatalf("%s: SetUint(%d): %v", typ, max, err)
		}
		got, err := v.Uint()
		if err != nil {
			t.Fatalf("%s: Uint: %v", typ, err)
		}
		if got != max {
			t.Errorf("%s: round-trip %d, want %d", typ, got, max)
		}
		if err := v.SetUint(max + 1); err == nil {
			t.Errorf("%s: out-of-range value accepted", typ)
		}
	}
}

func TestScalarLittleEndian(t *testing.T) {
	v := NewValue(Uint32)
	if err := v.SetUint(0x11223344); err != nil {
		t.Fatal(err)
	}
	if want := []byte{0x44, 0x33, 0x22, 0x11}; !bytes.Equal(v.Bytes(), want) {
		t.Errorf("bytes = %x, want %x", v.Bytes(), want)
	}
}

func TestFieldViewsAliasParent(t *testing.T) {
	typ := mustStruct(t, "pair",
		Field{Name: "lo", Type: Uint16},
		Field{Name: "hi", Type: Uint16},
	)
	v := NewValue(typ)

	hi, err := v.Field("hi")
	if err != nil {
		t.Fatal(err)
	}
	if err := hi.SetUint(0xBEEF); err != nil {
		t.Fatal(err)
	}

	if want := []byte{0, 0, 0xEF, 0xBE}; !bytes.Equal(v.Bytes(), want) {
		t.Errorf("parent bytes = %x, want %x", v.Bytes(), want)
	}

	if _, err := v.Field("nope"); err == nil {
		t.Error("unknown field accepted")
	}
}

func TestIndexViews(t *testing.T) {
	arr := ArrayOf(Uint16, 3)
	v := NewValue(arr)

	for i := 0; i < 3; i++ {
		e, err := v.Index(i)
		if err != nil {
			t.Fatal(err)
		}
		if err := e.SetUint(uint64(i + 1)); err != nil {
			t.Fatal(err)
		}
	}
	if want := []byte{1, 0, 2, 0, 3, 0}; !bytes.Equal(v.Bytes(), want) {
		t.Errorf("bytes = %x, want %x", v.Bytes(), want)
	}

	if _, err := v.Index(3); err == nil {
		t.Error("out-of-range index accepted")
	}
	if _, err := NewValue(Uint8).Index(0); err == nil {
		t.Error("Index on scalar accepted")
	}
}

func TestUpdateFromBuffer(t *testing.T) {
	typ := mustStruct(t, "blk", Field{Name: "raw", Type: ArrayOf(Uint8, 4)})
	v := NewValue(typ)

	if err := v.UpdateFromBuffer([]byte{1, 2, 3}); !errors.Is(err, ErrShortBuffer) {
		t.Fatalf("short buffer: err = %v, want ErrShortBuffer", err)
	}

	if err := v.UpdateFromBuffer([]byte{1, 2, 3, 4}); err != nil {
		t.Fatalf("exact buffer: %v", err)
	}
	if want := []byte{1, 2, 3, 4}; !bytes.Equal(v.Bytes(), want) {
		t.Errorf("bytes = %x, want %x", v.Bytes(), want)
	}

	// excess bytes are ignored
	if err := v.UpdateFromBuffer([]byte{9, 8, 7, 6, 5, 4}); err != nil {
		t.Fatalf("long buffer: %v", err)
	}
	if want := []byte{9, 8, 7, 6}; !bytes.Equal(v.Bytes(), want) {
		t.Errorf("bytes = %x, want %x", v.Bytes(), want)
	}
}

func TestBytesIsACopy(t *testing.T) {
	v := NewValue(Uint32)
	b := v.Bytes()
	b[0] = 0xFF
	if v.Bytes()[0] != 0 {
		t.Error("Bytes aliases the backing memory")
	}
	v.Buffer()[0] = 0xAA
	if v.Bytes()[0] != 0xAA {
		t.Error("Buffer does not alias the backing memory")
	}
}

func TestEqual(t *testing.T) {
	a := mustStruct(t, "a", Field{Name: "x", Type: Uint32})
	b := mustStruct(t, "b", Field{Name: "x", Type: Uint32})

	va, vb := NewValue(a), NewValue(a)
	if !va.Equal(vb) {
		t.Error("zero values of the same type differ")
	}
	if va.Equal(NewValue(b)) {
		t.Error("values of distinct types compare equal")
	}
	fx, _ := vb.Field("x")
	fx.SetUint(1)
	if va.Equal(vb) {
		t.Error("differing bytes compare equal")
	}
}
