package interp

import (
	"fmt"

	"github.com/availcore/avail/internal/dispatch"
	"github.com/availcore/avail/internal/object"
	"github.com/availcore/avail/internal/primitive"
	"github.com/availcore/avail/internal/typesystem"
)

// send resolves a message (by runtime argument types, or by the
// caller-supplied static types for a super call) to a Definition and
// either invokes its primitive or builds a callee frame for its L1
// body (spec §4.3 "a send consults the dispatch tree, then either
// invokes the chosen primitive or calls the chosen function").
func (in *Interpreter) send(bundleName string, args []object.Value, staticTypes []typesystem.Type, caller *object.Continuation) (action, error) {
	b, err := in.Bundles.Lookup(bundleName, len(args))
	if err != nil {
		return action{}, err
	}

	var def *dispatch.Definition
	if staticTypes != nil {
		def, err = b.LookupByTypes(staticTypes)
	} else {
		def, err = b.LookupByValues(args)
	}
	if err != nil {
		return action{}, err
	}

	if def.Body.Code.PrimitiveNumber != 0 {
		return in.sendPrimitive(def, args, caller)
	}

	callee, err := newCallFrame(def.Body, args, caller)
	if err != nil {
		return action{}, err
	}
	return action{kind: actionCall, callee: callee}, nil
}

func (in *Interpreter) sendPrimitive(def *dispatch.Definition, args []object.Value, caller *object.Continuation) (action, error) {
	res, err := in.Primitives.Invoke(def.Body.Code.PrimitiveNumber, args)
	if err != nil {
		return action{}, err
	}
	switch res.Kind {
	case primitive.Success:
		return action{kind: actionReturn, value: res.Value}, nil
	case primitive.Failure:
		return action{}, fmt.Errorf("primitive-failed: %s", res.FailureValue.Inspect())
	case primitive.ReadyToInvoke:
		callee, err := newCallFrame(res.ToInvoke, res.InvokeArgs, caller)
		if err != nil {
			return action{}, err
		}
		return action{kind: actionCall, callee: callee}, nil
	case primitive.Suspend:
		return action{kind: actionSuspend}, nil
	default:
		return action{}, fmt.Errorf("primitive returned unknown result kind %d", res.Kind)
	}
}
