package l2

import (
	"sync/atomic"

	"github.com/availcore/avail/internal/object"
	"github.com/availcore/avail/internal/typesystem"
)

// Chunk is a specialization of a CompiledCode's L1 body: an array of
// typed register instructions plus the register file layout. A Chunk
// is advisory: Valid reports whether it may still be used, and the
// owning CompiledCode's L1 body remains authoritative (spec §4.1).
// internal/interp does not execute Chunks; it always interprets L1.
type Chunk struct {
	Code         *object.CompiledCode
	Instructions []Instruction
	NumRegisters int
	Literals     []object.Value

	valid int32 // atomic; 1 = usable, 0 = invalidated
}

func NewChunk(code *object.CompiledCode, instructions []Instruction, numRegisters int) *Chunk {
	return &Chunk{Code: code, Instructions: instructions, NumRegisters: numRegisters, valid: 1}
}

func (c *Chunk) Valid() bool { return atomic.LoadInt32(&c.valid) == 1 }

// Invalidate discards this specialization. Any in-flight execution
// must notice on its next instruction fetch and unwind to the L1
// interpreter (spec "invalidation falls back to L1"); it never
// retroactively corrects state already produced under the stale
// assumption.
func (c *Chunk) Invalidate() { atomic.StoreInt32(&c.valid, 0) }

// RegisterFile holds the typed values live across an L2 execution.
// Register 0 conventionally holds the function's result once
// ReturnValue executes.
type RegisterFile struct {
	Values []object.Value
	Types  []typesystem.Type // per-register, nil if unknown/top
}

func NewRegisterFile(n int) *RegisterFile {
	return &RegisterFile{Values: make([]object.Value, n), Types: make([]typesystem.Type, n)}
}

// PropagateTypes walks the chunk's instructions in order and records,
// for each defined register, the narrowest type the translation's own
// rules establish (spec: "set_variable refines the written register's
// known type; clear_object records a nil constant") in the defining
// instruction's RegisterTypes. NewChunk does not call it; callers run it
// after building a chunk. It is not a dataflow fixpoint solver, since L2 chunks are acyclic specializations
// of a single execution path traced from L1, not general control-flow
// graphs with back edges feeding type info backward.
func (c *Chunk) PropagateTypes() {
	any := typesystem.Type(typesystem.TCon{Name: "AnyType"})
	types := make([]typesystem.Type, c.NumRegisters)
	for i := range types {
		types[i] = any
	}
	for i := range c.Instructions {
		ins := &c.Instructions[i]
		switch ins.Op {
		case SetVariable:
			for reg, t := range ins.RegisterTypes {
				types[reg] = t
			}
		case ClearObject:
			if ins.RegisterTypes == nil {
				ins.RegisterTypes = map[int]typesystem.Type{}
			}
			for _, reg := range ins.Defs() {
				types[reg] = typesystem.TCon{Name: "Nil"}
				ins.RegisterTypes[reg] = types[reg]
			}
		case MoveConstant:
			for reg, t := range ins.RegisterTypes {
				types[reg] = t
			}
		}
	}
	for i := range c.Instructions {
		if c.Instructions[i].RegisterTypes == nil {
			c.Instructions[i].RegisterTypes = map[int]typesystem.Type{}
		}
	}
}
