package interp

import "github.com/availcore/avail/internal/object"

// Reify materializes the currently suspended continuation chain
// rooted at innermost so that it can be stored, inspected, or resumed
// independently of this Interpreter run (spec §4.4 "stack reification
// materializes the native call stack into first-class continuations").
//
// In this engine a Continuation already is the first-class object the
// interpreter operates on directly (there is no separate native call
// stack to unwind), so reification is a capture, not a translation:
// it snapshots each frame's mutable fields (PC, operand stack
// contents, locals) so later mutation of the live frame cannot
// retroactively change the reified copy.
func Reify(innermost *object.Continuation) *object.Continuation {
	if innermost == nil {
		return nil
	}
	var caller *object.Continuation
	if innermost.Caller != nil {
		caller = Reify(innermost.Caller)
	}
	snapshot := object.NewContinuation(innermost.Function, innermost.PC,
		append([]object.Value(nil), innermost.Locals...), caller)
	copy(snapshot.OperandStack, innermost.OperandStack[:innermost.StackPointer])
	snapshot.StackPointer = innermost.StackPointer
	return snapshot
}

// ReifyOnSuspend captures the current frame chain of a fiber that a
// CanSuspend primitive is parking and returns the reified continuation;
// storing it in the fiber is left to the caller.
func ReifyOnSuspend(cur *object.Continuation) *object.Continuation {
	return Reify(cur)
}
