package l2

import (
	"strings"

	"github.com/availcore/avail/internal/typesystem"
)

// Op names an L2 operation. The set is deliberately smaller than L1's:
// L2 exists to fuse common L1 sequences (a send whose method is
// monomorphic at a call site, a variable read immediately followed by
// a type check) into single instructions a JIT-free interpreter can
// still execute quickly.
type Op uint8

const (
	MoveConstant Op = iota
	GetVariable
	SetVariable // refines the written register's known type to the value's static type
	ClearObject // writes a nil constant and records it for subsequent type propagation
	CreateTuple
	InvokeMonomorphic
	InvokePolymorphic // falls back to full dispatch; still an L2 instruction, just unspecialized
	JumpIfBoolean     // declares both successors (see Successors); L2 instructions carry no side-effect flag
	Jump
	ReturnValue
)

// Instruction is one Level Two operation with typed register
// operands. Def/use tracking is mechanical: Defs/Uses walk Operands.
type Instruction struct {
	Op       Op
	Operands []Operand

	// RegisterTypes records, for each register this instruction
	// defines, the static type known to hold after execution.
	RegisterTypes map[int]typesystem.Type
}

func (ins Instruction) Defs() []int {
	var out []int
	for _, o := range ins.Operands {
		out = append(out, o.Defs()...)
	}
	return out
}

func (ins Instruction) Uses() []int {
	var out []int
	for _, o := range ins.Operands {
		out = append(out, o.Uses()...)
	}
	return out
}

// Successors lists the instruction indices that may execute next.
// Non-branch instructions implicitly fall through (handled by the
// chunk walker); only branches need to declare extra targets here.
func (ins Instruction) Successors(fallthroughPC int) []int {
	switch ins.Op {
	case Jump:
		return []int{int(ins.Operands[0].Value)}
	case JumpIfBoolean:
		return []int{int(ins.Operands[1].Value), fallthroughPC}
	case ReturnValue:
		return nil
	default:
		return []int{fallthroughPC}
	}
}

func (ins Instruction) String() string {
	var b strings.Builder
	b.WriteString(opName[ins.Op])
	for _, o := range ins.Operands {
		b.WriteByte(' ')
		b.WriteString(o.String())
	}
	return b.String()
}

var opName = map[Op]string{
	MoveConstant:      "move-constant",
	GetVariable:       "get-variable",
	SetVariable:       "set-variable",
	ClearObject:       "clear-object",
	CreateTuple:       "create-tuple",
	InvokeMonomorphic: "invoke-monomorphic",
	InvokePolymorphic: "invoke-polymorphic",
	JumpIfBoolean:     "jump-if-boolean",
	Jump:              "jump",
	ReturnValue:       "return-value",
}
