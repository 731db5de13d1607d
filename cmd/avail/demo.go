package main

import (
	"github.com/availcore/avail/internal/dispatch"
	"github.com/availcore/avail/internal/l1"
	"github.com/availcore/avail/internal/object"
	"github.com/availcore/avail/internal/typesystem"
)

// buildConstFunction compiles a zero-argument function that pushes the
// literal v and returns it. There is no surface-syntax front end in
// this core, so demo programs are assembled directly against the
// generator the way a bootstrap compiler pass would.
func buildConstFunction(name string, v object.Value) *object.Function {
	g := l1.NewGenerator(0, 0)
	g.PushLiteral(v)
	g.Return()
	nybbles, literals, maxDepth := g.Finish()
	code := &object.CompiledCode{
		Nybbles:       nybbles,
		NumArgs:       0,
		MaxStackDepth: maxDepth,
		FunctionType:  typesystem.TCon{Name: "Int"},
		Literals:      literals,
		Name:          name,
	}
	return object.NewFunction(code, nil)
}

// buildIdentityFunction compiles a one-argument function that returns
// its argument unchanged, and registers it as a bundle named
// bundleName/1 so a caller program can dispatch to it by name.
func buildIdentityFunction(registry *dispatch.Registry, bundleName string) {
	g := l1.NewGenerator(1, 0)
	g.PushLocal(0)
	g.Return()
	nybbles, literals, maxDepth := g.Finish()
	code := &object.CompiledCode{
		Nybbles:       nybbles,
		NumArgs:       1,
		MaxStackDepth: maxDepth,
		FunctionType:  typesystem.TCon{Name: "Int"},
		Literals:      literals,
		Name:          bundleName,
	}
	fn := object.NewFunction(code, nil)

	bundle := registry.GetOrCreate(bundleName, 1)
	_ = bundle.AddDefinition(&dispatch.Definition{
		Signature: []typesystem.Type{typesystem.TCon{Name: "Int"}},
		Body:      fn,
	})
}

// buildSendDemoFunction compiles a zero-argument function that pushes
// the literal 7, sends it to bundleName/1, and returns whatever that
// call returns. Exercises the generator's Call opcode end to end
// through the interpreter's dispatch path.
func buildSendDemoFunction(bundleName string) *object.Function {
	g := l1.NewGenerator(0, 0)
	nameLit := g.InternLiteral(object.ObjValue(object.NewAtom(bundleName)))
	g.PushLiteral(object.IntValue(7))
	g.Call(nameLit, 1)
	g.Return()
	nybbles, literals, maxDepth := g.Finish()
	code := &object.CompiledCode{
		Nybbles:       nybbles,
		NumArgs:       0,
		MaxStackDepth: maxDepth,
		FunctionType:  typesystem.TCon{Name: "Int"},
		Literals:      literals,
		Name:          "send-demo",
	}
	return object.NewFunction(code, nil)
}
