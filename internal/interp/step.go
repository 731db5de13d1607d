package interp

import (
	"fmt"

	"github.com/availcore/avail/internal/fiber"
	"github.com/availcore/avail/internal/l1"
	"github.com/availcore/avail/internal/obslog"
	"github.com/availcore/avail/internal/object"
	"github.com/availcore/avail/internal/typesystem"
)

// step executes the single L1 instruction at cur.PC and reports what
// run should do next. Locals are laid out arguments-then-locals, so
// cur.Locals[i] is valid for i in [0, NumArgs+NumLocals).
func (in *Interpreter) step(f *fiber.Fiber, cur *object.Continuation) (action, error) {
	code := cur.Function.Code
	instructions := in.decoded(code)
	if cur.PC >= len(instructions) {
		return action{}, fmt.Errorf("program-counter-out-of-range: pc=%d len=%d", cur.PC, len(instructions))
	}
	ins := instructions[cur.PC]
	pc := cur.PC
	cur.PC++

	if f.TraceEnabled && in.Journal != nil {
		if err := in.Journal.Record(f.Name, pc, ins.Op.String(), ""); err != nil {
			obslog.Default.Warn("trace: failed to record step for fiber %s: %v", f.Name, err)
		}
	}

	switch ins.Op {
	case l1.PushLiteral:
		cur.Push(code.Literals[ins.Operands[0]])

	case l1.PushLocal:
		cur.Push(cur.Locals[ins.Operands[0]])

	case l1.PushOuter:
		cur.Push(cur.Function.Outers[ins.Operands[0]])

	case l1.PushLastOuter:
		idx := ins.Operands[0]
		cur.Push(cur.Function.Outers[idx])
		cur.Function.Outers[idx] = object.NilValue()

	case l1.GetLocalClearing:
		idx := ins.Operands[0]
		cur.Push(cur.Locals[idx])
		cur.Locals[idx] = object.NilValue()

	case l1.GetOuterClearing:
		idx := ins.Operands[0]
		cur.Push(cur.Function.Outers[idx])
		cur.Function.Outers[idx] = object.NilValue()

	case l1.SetLocal:
		cur.Locals[ins.Operands[0]] = cur.Pop()

	case l1.SetOuter:
		cur.Function.Outers[ins.Operands[0]] = cur.Pop()

	case l1.GetTypeAtDepth:
		depth := int(ins.Operands[0])
		v := cur.OperandStack[cur.StackPointer-1-depth]
		cur.Push(object.ObjValue(object.NewTypeValue(v.Kind())))

	case l1.MakeTuple:
		count := int(ins.Operands[0])
		elems := make([]object.Value, count)
		for i := count - 1; i >= 0; i-- {
			elems[i] = cur.Pop()
		}
		cur.Push(object.ObjValue(object.NewTuple(elems)))

	case l1.Pop:
		cur.Pop()

	case l1.Call:
		argCount := int(ins.Operands[1])
		return in.doCall(cur, ins.Operands[0], argCount, nil)

	case l1.SuperCall:
		argCount := int(ins.Operands[1])
		staticTypesLit := code.Literals[ins.Operands[2]]
		types := typesFromTupleValue(staticTypesLit)
		return in.doCall(cur, ins.Operands[0], argCount, types)

	case l1.CloseCode:
		outerCount := int(ins.Operands[1])
		outers := make([]object.Value, outerCount)
		for i := outerCount - 1; i >= 0; i-- {
			outers[i] = cur.Pop()
		}
		fnCode := code.Literals[ins.Operands[0]].Obj.(*object.CompiledCode)
		cur.Push(object.ObjValue(object.NewFunction(fnCode, outers)))

	case l1.PushLabel:
		label := object.NewContinuation(cur.Function, 0, append([]object.Value(nil), cur.Locals...), cur.Caller)
		cur.Push(object.ObjValue(label))

	case l1.LabelDeclaration:
		// Validated structurally at generation time (I4); nothing to do
		// at run time beyond advancing past it.

	case l1.Return:
		return action{kind: actionReturn, value: cur.Pop()}, nil

	case l1.ExtensionEscape:
		return action{}, fmt.Errorf("unsupported-operation: extension-escape")

	default:
		return action{}, fmt.Errorf("unsupported-operation: unknown l1 opcode %v", ins.Op)
	}

	return action{kind: actionContinue}, nil
}

// doCall pops argCount operands (in declaration order) and sends them
// to the bundle named by the literal at bundleLiteralIndex.
func (in *Interpreter) doCall(cur *object.Continuation, bundleLiteralIndex uint32, argCount int, staticTypes []typesystem.Type) (action, error) {
	args := make([]object.Value, argCount)
	for i := argCount - 1; i >= 0; i-- {
		args[i] = cur.Pop()
	}
	nameLit := cur.Function.Code.Literals[bundleLiteralIndex]
	atom, ok := nameLit.Obj.(*object.Atom)
	if !ok {
		return action{}, fmt.Errorf("malformed-bytecode: call literal is not a method name atom")
	}
	return in.send(atom.Name, args, staticTypes, cur)
}

// typesFromTupleValue unpacks the literal tuple-of-TypeValues a
// SuperCall records for its static argument types.
func typesFromTupleValue(v object.Value) []typesystem.Type {
	tup := v.Obj.(*object.Tuple)
	out := make([]typesystem.Type, tup.Len())
	for i := 1; i <= tup.Len(); i++ {
		tv := tup.At(i).Obj.(*object.TypeValue)
		out[i-1] = tv.T
	}
	return out
}
