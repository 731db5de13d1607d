// Package l2 implements the optional Level Two register-based
// intermediate representation: an advisory, invalidatable translation
// of a CompiledCode's L1 body used to speed up hot code (spec §4.1
// "Level Two is advisory; it can always be discarded and execution
// falls back to Level One").
package l2

import "fmt"

// OperandKind classifies an L2 instruction operand.
type OperandKind uint8

const (
	ReadPointer OperandKind = iota // reads an architectural register
	WritePointer                   // writes an architectural register
	Vector                         // an ordered list of register numbers
	Literal                        // index into the owning chunk's literal pool
	Immediate                      // a constant embedded directly in the instruction
	PC                             // an instruction index, used by branches
)

// Operand is one operand slot of an L2 instruction.
type Operand struct {
	Kind     OperandKind
	Register int   // valid when Kind is ReadPointer or WritePointer
	Vec      []int // valid when Kind is Vector
	Value    int64 // valid when Kind is Literal, Immediate, or PC
}

func Read(reg int) Operand     { return Operand{Kind: ReadPointer, Register: reg} }
func Write(reg int) Operand    { return Operand{Kind: WritePointer, Register: reg} }
func Vec(regs ...int) Operand  { return Operand{Kind: Vector, Vec: regs} }
func Lit(index int) Operand    { return Operand{Kind: Literal, Value: int64(index)} }
func Imm(v int64) Operand      { return Operand{Kind: Immediate, Value: v} }
func Target(pc int) Operand    { return Operand{Kind: PC, Value: int64(pc)} }

func (o Operand) String() string {
	switch o.Kind {
	case ReadPointer:
		return fmt.Sprintf("r%d", o.Register)
	case WritePointer:
		return fmt.Sprintf("=>r%d", o.Register)
	case Vector:
		return fmt.Sprintf("%v", o.Vec)
	case Literal:
		return fmt.Sprintf("lit[%d]", o.Value)
	case Immediate:
		return fmt.Sprintf("#%d", o.Value)
	case PC:
		return fmt.Sprintf("@%d", o.Value)
	default:
		return "?"
	}
}

// Defs returns the registers this operand writes.
func (o Operand) Defs() []int {
	if o.Kind == WritePointer {
		return []int{o.Register}
	}
	return nil
}

// Uses returns the registers this operand reads.
func (o Operand) Uses() []int {
	switch o.Kind {
	case ReadPointer:
		return []int{o.Register}
	case Vector:
		return o.Vec
	default:
		return nil
	}
}
