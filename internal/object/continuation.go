package object

import (
	"unsafe"

	"github.com/availcore/avail/internal/typesystem"
)

// Continuation is the first-class reified form of a suspended call
// frame (spec §3 "continuation (function + program counter + operand
// stack + locals + caller continuation, possibly nil)"). Unlike the
// teacher's CallFrame, which lives on the native Go call stack, a
// Continuation is a heap Object: reification (spec §4.4) builds a
// chain of these from an interpreter's live frames so that the chain
// can outlive the call that produced it.
type Continuation struct {
	Function     *Function
	PC           int
	OperandStack []Value
	StackPointer int
	Locals       []Value
	Caller       *Continuation // nil marks the outermost frame (invariant I2)
	mut          Mutability
}

// NewContinuation builds a frame ready to resume at pc with the given
// locals and an empty operand stack. The stack is sized from the owning
// CompiledCode's declared maximum (spec §6 "maximum operand stack
// depth"), so pushes within that depth never reallocate.
func NewContinuation(fn *Function, pc int, locals []Value, caller *Continuation) *Continuation {
	depth := 0
	if fn != nil && fn.Code != nil {
		depth = fn.Code.MaxStackDepth
	}
	return &Continuation{
		Function:     fn,
		PC:           pc,
		OperandStack: make([]Value, depth),
		Locals:       locals,
		Caller:       caller,
		mut:          Mutable,
	}
}

func (c *Continuation) Push(v Value) {
	if c.StackPointer >= len(c.OperandStack) {
		c.OperandStack = append(c.OperandStack, v)
	} else {
		c.OperandStack[c.StackPointer] = v
	}
	c.StackPointer++
}

func (c *Continuation) Pop() Value {
	c.StackPointer--
	return c.OperandStack[c.StackPointer]
}

// IsOutermost reports whether this frame has no caller (I2).
func (c *Continuation) IsOutermost() bool { return c.Caller == nil }

func (c *Continuation) Mutability() Mutability { return c.mut }

func (c *Continuation) Promote(to Mutability) {
	if to <= c.mut {
		return
	}
	if c.Function != nil {
		MustPromote(c.Function, to)
	}
	for _, v := range c.Locals {
		if v.IsObj() {
			if m, ok := v.Obj.(Mutabler); ok {
				MustPromote(m, to)
			}
		}
	}
	for i := 0; i < c.StackPointer; i++ {
		v := c.OperandStack[i]
		if v.IsObj() {
			if m, ok := v.Obj.(Mutabler); ok {
				MustPromote(m, to)
			}
		}
	}
	if c.Caller != nil {
		MustPromote(c.Caller, to)
	}
	c.mut = to
}

func (c *Continuation) Kind() typesystem.Type {
	return typesystem.TCon{Name: "Continuation"}
}

func (c *Continuation) Inspect() string {
	name := "<unknown>"
	if c.Function != nil && c.Function.Code != nil {
		name = c.Function.Code.Name
	}
	return "<continuation in " + name + ">"
}

func (c *Continuation) Hash() uint32 { return uint32(uintptr(unsafe.Pointer(c))) }
