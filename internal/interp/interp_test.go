package interp

import (
	"context"
	"testing"

	"github.com/availcore/avail/internal/dispatch"
	"github.com/availcore/avail/internal/fiber"
	"github.com/availcore/avail/internal/l1"
	"github.com/availcore/avail/internal/object"
	"github.com/availcore/avail/internal/primitive"
	"github.com/availcore/avail/internal/typesystem"
)

// buildConstCode builds a zero-argument CompiledCode body that pushes
// a literal and returns it, exercising PushLiteral + Return.
func buildConstCode(name string, v object.Value) *object.CompiledCode {
	g := l1.NewGenerator(0, 0)
	g.PushLiteral(v)
	g.Return()
	nybbles, literals, maxDepth := g.Finish()
	return &object.CompiledCode{
		Nybbles:       nybbles,
		NumArgs:       0,
		NumLocals:     0,
		MaxStackDepth: maxDepth,
		Literals:      literals,
		Name:          name,
	}
}

func TestRunReturnsLiteral(t *testing.T) {
	code := buildConstCode("answer", object.IntValue(42))
	fn := object.NewFunction(code, nil)
	cont := object.NewContinuation(fn, 0, nil, nil)

	f := fiber.New(128)
	f.Continuation = cont

	var result object.Value
	var gotFailure error
	f.OnResult = func(v object.Value) { result = v }
	f.OnFailure = func(err error) { gotFailure = err }

	in := New(dispatch.NewRegistry(), primitive.NewRegistry())
	state := in.Run(context.Background(), f)

	if gotFailure != nil {
		t.Fatalf("unexpected failure: %v", gotFailure)
	}
	if state != fiber.Terminated {
		t.Fatalf("expected Terminated, got %s", state)
	}
	if !result.IsInt() || result.AsInt() != 42 {
		t.Fatalf("expected 42, got %v", result.Inspect())
	}
}

func TestRunSendsToBundle(t *testing.T) {
	// callee: push local 0 (its only argument), return it unchanged.
	calleeGen := l1.NewGenerator(1, 0)
	calleeGen.PushLocal(0)
	calleeGen.Return()
	calleeNybbles, calleeLiterals, calleeDepth := calleeGen.Finish()
	calleeCode := &object.CompiledCode{
		Nybbles: calleeNybbles, NumArgs: 1, MaxStackDepth: calleeDepth,
		Literals: calleeLiterals, Name: "identity",
	}
	calleeFn := object.NewFunction(calleeCode, nil)

	bundles := dispatch.NewRegistry()
	b := bundles.GetOrCreate("identity", 1)
	if err := b.AddDefinition(&dispatch.Definition{
		Signature: []typesystem.Type{typesystem.TCon{Name: "Int"}},
		Body:      calleeFn,
	}); err != nil {
		t.Fatalf("AddDefinition: %v", err)
	}

	// caller: push literal 7, call identity/1, return result.
	callerGen := l1.NewGenerator(0, 0)
	nameLit := callerGen.InternLiteral(object.ObjValue(object.NewAtom("identity")))
	callerGen.PushLiteral(object.IntValue(7))
	callerGen.Call(nameLit, 1)
	callerGen.Return()
	callerNybbles, callerLiterals, callerDepth := callerGen.Finish()
	callerCode := &object.CompiledCode{
		Nybbles: callerNybbles, MaxStackDepth: callerDepth,
		Literals: callerLiterals, Name: "caller",
	}
	callerFn := object.NewFunction(callerCode, nil)
	cont := object.NewContinuation(callerFn, 0, nil, nil)

	f := fiber.New(128)
	f.Continuation = cont
	var result object.Value
	var gotFailure error
	f.OnResult = func(v object.Value) { result = v }
	f.OnFailure = func(err error) { gotFailure = err }

	in := New(bundles, primitive.NewRegistry())
	state := in.Run(context.Background(), f)

	if gotFailure != nil {
		t.Fatalf("unexpected failure: %v", gotFailure)
	}
	if state != fiber.Terminated {
		t.Fatalf("expected Terminated, got %s", state)
	}
	if !result.IsInt() || result.AsInt() != 7 {
		t.Fatalf("expected 7, got %v", result.Inspect())
	}
}
