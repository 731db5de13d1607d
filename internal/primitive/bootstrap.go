package primitive

import (
	"github.com/availcore/avail/internal/object"
)

// RegisterBootstrap installs the small set of primitives every other
// piece of the bootstrap library is defined in terms of: integer
// arithmetic, tuple concatenation, set union, and atom equality (spec §6
// "bootstrap primitives"). Numbering mirrors the spec's own informal
// ordering (arithmetic first) rather than carrying any significance
// beyond uniqueness.
func RegisterBootstrap(r *Registry) {
	number := 1
	reg := func(name string, flags Flag, fn Func) {
		_ = r.Register(&Primitive{Number: number, Name: name, Flags: flags, Fn: fn})
		number++
	}

	reg("Integer+Integer", CanFold|CannotFail|Bootstrap, func(args []object.Value) Result {
		a, b := args[0], args[1]
		if a.IsInt() && b.IsInt() {
			return Succeed(object.IntValue(a.AsInt() + b.AsInt()))
		}
		return Succeed(object.FloatValue(numericOf(a) + numericOf(b)))
	})

	reg("Integer-Integer", CanFold|CannotFail|Bootstrap, func(args []object.Value) Result {
		a, b := args[0], args[1]
		if a.IsInt() && b.IsInt() {
			return Succeed(object.IntValue(a.AsInt() - b.AsInt()))
		}
		return Succeed(object.FloatValue(numericOf(a) - numericOf(b)))
	})

	reg("Integer*Integer", CanFold|CannotFail|Bootstrap, func(args []object.Value) Result {
		a, b := args[0], args[1]
		if a.IsInt() && b.IsInt() {
			return Succeed(object.IntValue(a.AsInt() * b.AsInt()))
		}
		return Succeed(object.FloatValue(numericOf(a) * numericOf(b)))
	})

	reg("Integer/Integer", CanFold|Bootstrap, func(args []object.Value) Result {
		a, b := args[0], args[1]
		if b.IsInt() && b.AsInt() == 0 {
			return Fail(object.ObjValue(mustAtom("division-by-zero")))
		}
		if a.IsInt() && b.IsInt() {
			return Succeed(object.IntValue(a.AsInt() / b.AsInt()))
		}
		return Succeed(object.FloatValue(numericOf(a) / numericOf(b)))
	})

	reg("tuple*tuple-concatenate", CanFold|CannotFail, func(args []object.Value) Result {
		at := args[0].Obj.(*object.Tuple)
		bt := args[1].Obj.(*object.Tuple)
		return Succeed(object.ObjValue(at.Concat(bt)))
	})

	reg("set*set-union", CanFold|CannotFail, func(args []object.Value) Result {
		a := args[0].Obj.(*object.Set)
		b := args[1].Obj.(*object.Set)
		return Succeed(object.ObjValue(object.Union(a, b, false)))
	})

	reg("atom=atom", CanFold|CannotFail|CanInline, func(args []object.Value) Result {
		return Succeed(object.BoolValue(args[0].Equals(args[1])))
	})
}

func numericOf(v object.Value) float64 {
	if v.IsInt() {
		return float64(v.AsInt())
	}
	return v.AsFloat()
}

func mustAtom(name string) *object.Atom { return object.NewSpecialAtom(name) }
