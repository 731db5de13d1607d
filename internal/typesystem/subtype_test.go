package typesystem

import "testing"

func TestIsSubtypeOfNominalAncestry(t *testing.T) {
	cases := []struct {
		sub, sup string
		want     bool
	}{
		{"Int", "Number", true},
		{"Int", "AnyType", true},
		{"Float", "Number", true},
		{"Number", "Int", false},
		{"String", "Tuple", true},
		{"String", "AnyType", true},
		{"Int", "String", false},
		{"AnyType", "Int", false},
	}
	for _, c := range cases {
		got := IsSubtypeOf(TCon{Name: c.sub}, TCon{Name: c.sup})
		if got != c.want {
			t.Errorf("IsSubtypeOf(%s, %s) = %v, want %v", c.sub, c.sup, got, c.want)
		}
	}
}

func TestIsSubtypeOfAnyTypeIsTop(t *testing.T) {
	if !IsSubtypeOf(TCon{Name: "Widget"}, TCon{Name: "AnyType"}) {
		t.Fatal("every type must be a subtype of AnyType, even an unregistered one")
	}
}

func TestIsSubtypeOfTAppIsCovariantInArgs(t *testing.T) {
	tupleOfInt := TApp{Constructor: TCon{Name: "Tuple"}, Args: []Type{TCon{Name: "Int"}}}
	tupleOfNumber := TApp{Constructor: TCon{Name: "Tuple"}, Args: []Type{TCon{Name: "Number"}}}
	tupleOfString := TApp{Constructor: TCon{Name: "Tuple"}, Args: []Type{TCon{Name: "String"}}}

	if !IsSubtypeOf(tupleOfInt, tupleOfNumber) {
		t.Error("Tuple<Int> should be a subtype of Tuple<Number>")
	}
	if IsSubtypeOf(tupleOfInt, tupleOfString) {
		t.Error("Tuple<Int> should not be a subtype of Tuple<String>")
	}
	if IsSubtypeOf(tupleOfNumber, tupleOfInt) {
		t.Error("Tuple<Number> should not be a subtype of Tuple<Int>")
	}

	setOfInt := TApp{Constructor: TCon{Name: "Set"}, Args: []Type{TCon{Name: "Int"}}}
	if IsSubtypeOf(tupleOfInt, setOfInt) {
		t.Error("different constructors must not unify under IsSubtypeOf")
	}
}

func TestIsSubtypeOfTTupleIsElementwise(t *testing.T) {
	a := TTuple{Elements: []Type{TCon{Name: "Int"}, TCon{Name: "Int"}}}
	b := TTuple{Elements: []Type{TCon{Name: "Number"}, TCon{Name: "Number"}}}
	c := TTuple{Elements: []Type{TCon{Name: "Int"}}}

	if !IsSubtypeOf(a, b) {
		t.Error("(Int, Int) should be a subtype of (Number, Number)")
	}
	if IsSubtypeOf(a, c) {
		t.Error("tuples of different arity must not be subtypes of each other")
	}
}

func TestIsSubtypeOfTUnion(t *testing.T) {
	union := TUnion{Types: []Type{TCon{Name: "Int"}, TCon{Name: "Nil"}}}

	// A super-side union accepts a type that is a subtype of any variant.
	if !IsSubtypeOf(TCon{Name: "Int"}, union) {
		t.Error("Int should be a subtype of Int | Nil")
	}
	if IsSubtypeOf(TCon{Name: "String"}, union) {
		t.Error("String should not be a subtype of Int | Nil")
	}

	// A sub-side union is a subtype only if every variant is.
	both := TUnion{Types: []Type{TCon{Name: "Int"}, TCon{Name: "Float"}}}
	if !IsSubtypeOf(both, TCon{Name: "Number"}) {
		t.Error("Int | Float should be a subtype of Number since both variants are")
	}
}

func TestRegisterSubtypeExtendsLattice(t *testing.T) {
	RegisterSubtype("Widget", "AnyType")
	RegisterSubtype("Gadget", "Widget")

	if !IsSubtypeOf(TCon{Name: "Gadget"}, TCon{Name: "Widget"}) {
		t.Error("Gadget should be a direct subtype of Widget")
	}
	if !IsSubtypeOf(TCon{Name: "Gadget"}, TCon{Name: "AnyType"}) {
		t.Error("Gadget should transitively reach AnyType through Widget")
	}
	if IsSubtypeOf(TCon{Name: "Widget"}, TCon{Name: "Gadget"}) {
		t.Error("Widget must not be a subtype of its own child Gadget")
	}

	// Registering the same edge twice must not duplicate it or break
	// ancestor traversal.
	RegisterSubtype("Gadget", "Widget")
	if !IsSubtypeOf(TCon{Name: "Gadget"}, TCon{Name: "AnyType"}) {
		t.Error("re-registering an existing edge should be a no-op, not break the lattice")
	}
}

func TestMostSpecific(t *testing.T) {
	if !MostSpecific(TCon{Name: "Int"}, TCon{Name: "Number"}) {
		t.Error("Int should be strictly more specific than Number")
	}
	if MostSpecific(TCon{Name: "Number"}, TCon{Name: "Int"}) {
		t.Error("Number should not be more specific than Int")
	}
	if MostSpecific(TCon{Name: "Int"}, TCon{Name: "Int"}) {
		t.Error("a type is never strictly more specific than itself")
	}
	if MostSpecific(TCon{Name: "Int"}, TCon{Name: "String"}) {
		t.Error("unrelated types are neither more nor less specific")
	}
}
