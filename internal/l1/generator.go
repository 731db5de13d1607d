package l1

import (
	"fmt"

	"github.com/availcore/avail/internal/object"
)

// Instruction is the generator's intermediate form before nybble
// encoding: one opcode plus its operands, still addressable by index
// so that jump-like constructs (label declarations) can be patched.
type Instruction struct {
	Op       Opcode
	Operands []uint32
}

// Generator assembles a CompiledCode body in a single emit pass that
// appends instructions and tracks operand-stack depth. It performs no
// final-use analysis: a read clears its local or outer slot only where
// the caller emits GetLocalClearing or GetOuterClearing itself.
type Generator struct {
	instructions []Instruction
	literals     []object.Value
	literalIndex map[uint32]int // hash(value) -> index, for interning (I5)

	numArgs   int
	numLocals int

	depth    int
	maxDepth int

	labelSeen bool // true once any non-label instruction has been emitted
}

func NewGenerator(numArgs, numLocals int) *Generator {
	return &Generator{
		numArgs:      numArgs,
		numLocals:    numLocals,
		literalIndex: make(map[uint32]int),
	}
}

// InternLiteral returns the pool index for v, reusing an existing slot
// when the identical value was already interned (I5 "each literal
// value appears at most once in a code object's literal pool").
func (g *Generator) InternLiteral(v object.Value) uint32 {
	h := v.Hash()
	if idx, ok := g.literalIndex[h]; ok && g.literals[idx].Equals(v) {
		return uint32(idx)
	}
	idx := len(g.literals)
	g.literals = append(g.literals, v)
	g.literalIndex[h] = idx
	return uint32(idx)
}

func (g *Generator) emit(op Opcode, operands ...uint32) {
	g.instructions = append(g.instructions, Instruction{Op: op, Operands: operands})
	g.adjustDepth(op, operands)
	if op != LabelDeclaration {
		g.markNonLabel()
	}
}

func (g *Generator) adjustDepth(op Opcode, operands []uint32) {
	switch op {
	case MakeTuple:
		count := int(operands[0])
		g.depth -= count
		g.depth++
	case Call, SuperCall:
		argCount := int(operands[1])
		g.depth -= argCount
		g.depth++
	case CloseCode:
		outerCount := int(operands[1])
		g.depth -= outerCount
		g.depth++
	default:
		g.depth += fixedStackEffect[op]
	}
	if g.depth > g.maxDepth {
		g.maxDepth = g.depth
	}
	if g.depth < 0 {
		panic(fmt.Sprintf("l1: generator produced negative operand stack depth at %s", op))
	}
}

func (g *Generator) PushLiteral(v object.Value) { g.emit(PushLiteral, g.InternLiteral(v)) }
func (g *Generator) PushLocal(index int)        { g.emit(PushLocal, uint32(index)) }
func (g *Generator) PushOuter(index int)        { g.emit(PushOuter, uint32(index)) }
func (g *Generator) GetLocalClearing(index int) { g.emit(GetLocalClearing, uint32(index)) }
func (g *Generator) GetOuterClearing(index int) { g.emit(GetOuterClearing, uint32(index)) }
func (g *Generator) SetLocal(index int)         { g.emit(SetLocal, uint32(index)) }
func (g *Generator) SetOuter(index int)         { g.emit(SetOuter, uint32(index)) }
func (g *Generator) GetTypeAtDepth(depth int)   { g.emit(GetTypeAtDepth, uint32(depth)) }
func (g *Generator) Pop()                       { g.emit(Pop) }
func (g *Generator) Return()                    { g.emit(Return) }

func (g *Generator) MakeTuple(count int) { g.emit(MakeTuple, uint32(count)) }

// Call pushes argCount arguments (already on the stack) and invokes
// the method named by the literal at bundleLiteralIndex.
func (g *Generator) Call(bundleLiteralIndex uint32, argCount int) {
	g.emit(Call, bundleLiteralIndex, uint32(argCount))
}

// SuperCall behaves like Call but dispatches using the argument's
// declared static types, recorded at generation time as a literal
// tuple of TypeValues, rather than the arguments' runtime types (spec
// GLOSSARY "super call").
func (g *Generator) SuperCall(bundleLiteralIndex uint32, argCount int, staticTypesLiteralIndex uint32) {
	g.emit(SuperCall, bundleLiteralIndex, uint32(argCount), staticTypesLiteralIndex)
}

// CloseCode builds a Function from the CompiledCode literal at
// codeLiteralIndex, capturing outerCount values already on the stack.
func (g *Generator) CloseCode(codeLiteralIndex uint32, outerCount int) {
	g.emit(CloseCode, codeLiteralIndex, uint32(outerCount))
}

// PushLabel and LabelDeclaration implement the first-class label
// mechanism used to build loop continuations (spec I4 "a label
// declaration, if present, must be the first statement of a code
// object").
func (g *Generator) PushLabel() { g.emit(PushLabel) }

func (g *Generator) LabelDeclaration() {
	if g.labelSeen {
		panic("l1: label declaration must be the first statement of a code object")
	}
	g.emit(LabelDeclaration)
}

func (g *Generator) markNonLabel() { g.labelSeen = true }

// Finish encodes the accumulated instructions into a nybble stream and
// returns it along with the interned literal pool and the maximum
// operand-stack depth observed across every path the generator
// actually emitted (I3).
func (g *Generator) Finish() (nybbles []byte, literals []object.Value, maxDepth int) {
	w := NewNybbleWriter()
	for _, ins := range g.instructions {
		w.WriteOpcode(ins.Op)
		for _, operand := range ins.Operands {
			w.WriteOperand(operand)
		}
	}
	return w.Bytes(), g.literals, g.maxDepth
}

// Decode walks a nybble stream back into Instructions, used by the
// disassembler and by the interpreter's L2-invalidation fallback path.
func Decode(nybbles []byte) []Instruction {
	r := NewNybbleReader(nybbles)
	var out []Instruction
	for r.More() {
		// A lone zero nybble at the very end is the padding of an
		// odd-length stream: every opcode 0 instruction has an operand.
		if r.nybble == len(nybbles)*2-1 && nybbles[len(nybbles)-1]&0xF == 0 {
			break
		}
		op := r.ReadOpcode()
		ins := Instruction{Op: op}
		switch op {
		case PushLiteral, PushLocal, PushOuter, GetLocalClearing, GetOuterClearing,
			SetLocal, SetOuter, PushLastOuter, GetTypeAtDepth, MakeTuple:
			ins.Operands = []uint32{r.ReadOperand()}
		case Call, CloseCode:
			ins.Operands = []uint32{r.ReadOperand(), r.ReadOperand()}
		case SuperCall:
			ins.Operands = []uint32{r.ReadOperand(), r.ReadOperand(), r.ReadOperand()}
		}
		out = append(out, ins)
	}
	return out
}
