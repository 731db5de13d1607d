package interp

import (
	"fmt"

	"github.com/availcore/avail/internal/object"
)

type actionKind uint8

const (
	actionContinue actionKind = iota
	actionCall
	actionReturn
	actionSuspend
)

// action tells run what to do after one step: keep going in the same
// frame, descend into a newly built callee frame, or unwind a return
// value to the caller.
type action struct {
	kind   actionKind
	callee *object.Continuation
	value  object.Value
}

// newCallFrame builds the callee continuation for a Call/SuperCall,
// seeding its locals with the supplied arguments (spec §4.4 "invoking
// a function builds a fresh continuation for its body").
func newCallFrame(fn *object.Function, args []object.Value, caller *object.Continuation) (*object.Continuation, error) {
	depth := 1
	for c := caller; c != nil; c = c.Caller {
		depth++
	}
	if depth > maxFrameCount {
		return nil, fmt.Errorf("call-stack-depth-exceeded")
	}

	locals := make([]object.Value, fn.Code.NumArgs+fn.Code.NumLocals)
	copy(locals, args)
	return object.NewContinuation(fn, 0, locals, caller), nil
}
