// Package interp is the execution engine: it steps a fiber's
// continuation through its Level One nybblecode, performs method
// dispatch sends, and reifies the native call stack into first-class
// continuations when a fiber suspends (spec §4.4).
package interp

import (
	"context"
	"fmt"
	"sync"

	"github.com/availcore/avail/internal/dispatch"
	"github.com/availcore/avail/internal/fiber"
	"github.com/availcore/avail/internal/l1"
	"github.com/availcore/avail/internal/object"
	"github.com/availcore/avail/internal/primitive"
	"github.com/availcore/avail/internal/trace"
)

const maxFrameCount = 4096

// Interpreter owns the dispatch and primitive registries every fiber
// it runs shares. Its shape mirrors the teacher's VM (internal/vm.VM):
// a bounded call depth plus the cross-cutting tables a send needs to
// consult, generalized here to a Bundle registry and a primitive
// registry instead of the teacher's trait-method maps.
type Interpreter struct {
	Bundles    *dispatch.Registry
	Primitives *primitive.Registry

	// Journal is consulted only for fibers with TraceEnabled set; it is
	// nil by default so tracing costs nothing when unused.
	Journal *trace.Journal

	mu          sync.Mutex
	decodeCache map[*object.CompiledCode][]l1.Instruction
}

func New(bundles *dispatch.Registry, prims *primitive.Registry) *Interpreter {
	return &Interpreter{
		Bundles:     bundles,
		Primitives:  prims,
		decodeCache: map[*object.CompiledCode][]l1.Instruction{},
	}
}

func (in *Interpreter) decoded(code *object.CompiledCode) []l1.Instruction {
	in.mu.Lock()
	defer in.mu.Unlock()
	if d, ok := in.decodeCache[code]; ok {
		return d
	}
	d := l1.Decode(code.Nybbles)
	in.decodeCache[code] = d
	return d
}

// suspendError is returned up through step/run when a primitive with
// CanSuspend parked the fiber; Run translates it into fiber.Suspended
// instead of propagating it as a language-level failure.
type suspendError struct{}

func (suspendError) Error() string { return "fiber suspended" }

// Run drives f's continuation until it returns, fails, or suspends,
// and reports the resulting fiber state to the scheduler (this is the
// fiber.RunFunc the Scheduler is constructed with).
func (in *Interpreter) Run(ctx context.Context, f *fiber.Fiber) fiber.State {
	cont := f.Continuation
	if cont == nil {
		if f.OnFailure != nil {
			f.OnFailure(fmt.Errorf("fiber has no continuation to run"))
		}
		return fiber.Terminated
	}

	result, err := in.run(ctx, f, cont)
	if err != nil {
		if _, ok := err.(suspendError); ok {
			return fiber.Suspended
		}
		if f.OnFailure != nil {
			f.OnFailure(err)
		}
		return fiber.Terminated
	}
	if f.OnResult != nil {
		f.OnResult(result)
	}
	return fiber.Terminated
}

// run executes frames starting at cont until the outermost frame
// (I2: nil caller) returns a value, respecting program-order execution
// within the fiber (spec §4.4 "Ordering guarantees: program order
// within one fiber").
func (in *Interpreter) run(ctx context.Context, f *fiber.Fiber, cont *object.Continuation) (object.Value, error) {
	cur := cont
	for {
		select {
		case <-ctx.Done():
			f.Continuation = cur
			return object.Value{}, ctx.Err()
		default:
		}

		action, err := in.step(f, cur)
		if err != nil {
			f.Continuation = cur
			return object.Value{}, err
		}

		switch action.kind {
		case actionContinue:
			continue
		case actionCall:
			cur = action.callee
		case actionReturn:
			if cur.IsOutermost() {
				return action.value, nil
			}
			caller := cur.Caller
			caller.Push(action.value)
			cur = caller
		case actionSuspend:
			f.Continuation = Reify(cur)
			return object.Value{}, suspendError{}
		}
	}
}
