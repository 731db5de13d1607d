package serialize

import (
	"testing"

	"github.com/availcore/avail/internal/object"
)

func roundTrip(t *testing.T, v object.Value) object.Value {
	t.Helper()
	enc := NewEncoder()
	if err := enc.Encode(v); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	dec := NewDecoder(enc.Bytes())
	out, err := dec.Decode()
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	return out
}

func TestRoundTripPrimitives(t *testing.T) {
	cases := []object.Value{
		object.NilValue(),
		object.IntValue(-7),
		object.FloatValue(3.5),
		object.BoolValue(true),
	}
	for _, v := range cases {
		got := roundTrip(t, v)
		if !got.Equals(v) {
			t.Fatalf("round trip mismatch: want %s, got %s", v.Inspect(), got.Inspect())
		}
	}
}

func TestRoundTripTuple(t *testing.T) {
	tup := object.NewTuple([]object.Value{object.IntValue(1), object.IntValue(2), object.IntValue(3)})
	v := object.ObjValue(tup)
	got := roundTrip(t, v)
	if !got.Equals(v) {
		t.Fatalf("round trip mismatch: want %s, got %s", v.Inspect(), got.Inspect())
	}
}

func TestRoundTripSetAndMap(t *testing.T) {
	s := object.NewSetFromValues([]object.Value{object.IntValue(1), object.IntValue(2)})
	got := roundTrip(t, object.ObjValue(s))
	if !got.Equals(object.ObjValue(s)) {
		t.Fatalf("set round trip mismatch")
	}

	m := object.EmptyAvailMap().Put(object.IntValue(1), object.IntValue(10))
	got2 := roundTrip(t, object.ObjValue(m))
	if !got2.Equals(object.ObjValue(m)) {
		t.Fatalf("map round trip mismatch")
	}
}

func TestRoundTripAtomPreservesIdentity(t *testing.T) {
	a := object.NewAtom("example")
	tup := object.NewTuple([]object.Value{object.ObjValue(a), object.ObjValue(a)})

	enc := NewEncoder()
	if err := enc.Encode(object.ObjValue(tup)); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	dec := NewDecoder(enc.Bytes())
	out, err := dec.Decode()
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	decoded := out.Obj.(*object.Tuple)
	first := decoded.At(1).Obj.(*object.Atom)
	second := decoded.At(2).Obj.(*object.Atom)
	if first.ID != second.ID {
		t.Fatalf("expected both tuple slots to decode to the same atom identity")
	}
}
