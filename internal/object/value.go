package object

import (
	"fmt"
	"math"

	"github.com/availcore/avail/internal/typesystem"
)

// Object is implemented by every heap-allocated Avail value: tuples, sets,
// maps, atoms, variables, functions, compiled code, and continuations.
type Object interface {
	// Kind returns the value's most specific type (spec §3 "kind").
	Kind() typesystem.Type
	Inspect() string
	// Hash must agree with structural equality: equal values have equal
	// hashes (spec §8 "Structural sharing").
	Hash() uint32
}

// ValueType tags the inline representation stored in Value.Data, avoiding
// a heap allocation for the common immediate kinds.
type ValueType uint8

const (
	KindNil ValueType = iota
	KindInt
	KindFloat
	KindBool
	KindObj // heap object: tuple, set, map, atom, variable, function, continuation, ...
)

// Value is a stack-allocated tagged union: the operand-stack and
// register-file representation used uniformly by L1 and L2 (spec §3, §6).
type Value struct {
	Type ValueType
	Data uint64 // int64 bits, float64 bits, or bool (0/1)
	Obj  Object // heap object, kept alive for GC when Type == KindObj
}

func NilValue() Value           { return Value{Type: KindNil} }
func IntValue(v int64) Value    { return Value{Type: KindInt, Data: uint64(v)} }
func FloatValue(v float64) Value {
	return Value{Type: KindFloat, Data: math.Float64bits(v)}
}
func BoolValue(v bool) Value {
	var d uint64
	if v {
		d = 1
	}
	return Value{Type: KindBool, Data: d}
}
func ObjValue(o Object) Value { return Value{Type: KindObj, Obj: o} }

func (v Value) IsNil() bool   { return v.Type == KindNil }
func (v Value) IsInt() bool   { return v.Type == KindInt }
func (v Value) IsFloat() bool { return v.Type == KindFloat }
func (v Value) IsBool() bool  { return v.Type == KindBool }
func (v Value) IsObj() bool   { return v.Type == KindObj }

func (v Value) AsInt() int64     { return int64(v.Data) }
func (v Value) AsFloat() float64 { return math.Float64frombits(v.Data) }
func (v Value) AsBool() bool     { return v.Data == 1 }

// Kind returns the static type of the value (spec §3 "kind").
func (v Value) Kind() typesystem.Type {
	switch v.Type {
	case KindInt:
		return typesystem.TCon{Name: "Int"}
	case KindFloat:
		return typesystem.TCon{Name: "Float"}
	case KindBool:
		return typesystem.TCon{Name: "Boolean"}
	case KindNil:
		return typesystem.TCon{Name: "Nil"}
	case KindObj:
		if v.Obj != nil {
			return v.Obj.Kind()
		}
		return typesystem.TCon{Name: "Nil"}
	default:
		return typesystem.TCon{Name: "Unknown"}
	}
}

func (v Value) Inspect() string {
	switch v.Type {
	case KindInt:
		return fmt.Sprintf("%d", v.AsInt())
	case KindFloat:
		return fmt.Sprintf("%g", v.AsFloat())
	case KindBool:
		return fmt.Sprintf("%t", v.AsBool())
	case KindNil:
		return "nil"
	case KindObj:
		if v.Obj != nil {
			return v.Obj.Inspect()
		}
		return "<nil obj>"
	default:
		return "<?>"
	}
}

func (v Value) Hash() uint32 {
	switch v.Type {
	case KindInt:
		return uint32(v.Data ^ (v.Data >> 32))
	case KindFloat:
		// An integral float equals the Int of the same value (see Equals),
		// so it must hash like that Int.
		if f := v.AsFloat(); f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 {
			return IntValue(int64(f)).Hash()
		}
		return uint32(v.Data ^ (v.Data >> 32))
	case KindBool:
		return uint32(v.Data)
	case KindNil:
		return 0
	case KindObj:
		if v.Obj != nil {
			return v.Obj.Hash()
		}
		return 0
	default:
		return 0
	}
}

// Equals implements Avail structural equality, including the substitution
// of interned shared values (spec §3, §8 round-trip/invariant notes): two
// values compare equal when their structure matches, regardless of which
// holder's copy is examined.
func (v Value) Equals(other Value) bool {
	if v.Type != other.Type {
		if v.Type == KindInt && other.Type == KindFloat {
			return float64(v.AsInt()) == other.AsFloat()
		}
		if v.Type == KindFloat && other.Type == KindInt {
			return v.AsFloat() == float64(other.AsInt())
		}
		return false
	}
	switch v.Type {
	case KindInt, KindBool, KindFloat:
		return v.Data == other.Data
	case KindNil:
		return true
	case KindObj:
		return objectsEqual(v.Obj, other.Obj)
	default:
		return false
	}
}

// objectsEqual compares two heap objects structurally. Equatable is an
// optional refinement implemented by variants whose Inspect()/Hash() pair
// is not already a sufficient equality witness (e.g. tuples, sets, maps).
func objectsEqual(a, b Object) bool {
	if a == nil || b == nil {
		return a == b
	}
	if ea, ok := a.(Equatable); ok {
		return ea.EqualsObject(b)
	}
	return a == b
}

// Equatable lets a value variant define structural equality beyond
// pointer identity.
type Equatable interface {
	EqualsObject(other Object) bool
}
