package object

import (
	"unsafe"

	"github.com/availcore/avail/internal/typesystem"
)

// VariableKind classifies a local or outer slot for the interpreter's
// final-use analysis (spec §4.1).
type VariableKind uint8

const (
	SlotArgument VariableKind = iota
	SlotLocal
	SlotLabel
)

// CompiledCode is the immutable record the L1 generator produces (spec §3,
// §6 "Compiled-code record"). Nybbles is the encoded L1 instruction
// stream produced by internal/l1; this package only stores it, it does
// not interpret it, keeping the object model independent from the L1
// encoding.
type CompiledCode struct {
	Nybbles         []byte
	NumArgs         int
	NumLocals       int
	MaxStackDepth   int
	FunctionType    typesystem.Type // argument tuple type + return type
	PrimitiveNumber int             // 0 = none
	Literals        []Value         // interned literal pool (I5: each literal appears once)
	LocalKinds      []VariableKind
	OuterKinds      []VariableKind
	Name            string
}

func (c *CompiledCode) Mutability() Mutability { return Shared }
func (c *CompiledCode) Promote(Mutability)      {}

func (c *CompiledCode) Kind() typesystem.Type {
	if c.FunctionType != nil {
		return c.FunctionType
	}
	return typesystem.TCon{Name: "Function"}
}
func (c *CompiledCode) Inspect() string { return "<compiled code " + c.Name + ">" }
func (c *CompiledCode) Hash() uint32    { return uint32(uintptr(unsafe.Pointer(c))) }

// Function pairs a CompiledCode with its captured outer values (spec §3
// "function (compiled-code + a tuple of captured outer values)").
type Function struct {
	Code   *CompiledCode
	Outers []Value
	mut    Mutability
}

func NewFunction(code *CompiledCode, outers []Value) *Function {
	return &Function{Code: code, Outers: outers, mut: Mutable}
}

func (f *Function) Mutability() Mutability { return f.mut }
func (f *Function) Promote(to Mutability) {
	if to <= f.mut {
		return
	}
	for _, o := range f.Outers {
		if o.IsObj() {
			if m, ok := o.Obj.(Mutabler); ok {
				MustPromote(m, to)
			}
		}
	}
	f.mut = to
}

func (f *Function) Kind() typesystem.Type { return f.Code.Kind() }
func (f *Function) Inspect() string       { return "<fn " + f.Code.Name + ">" }
func (f *Function) Hash() uint32          { return uint32(uintptr(unsafe.Pointer(f))) }
