package primitive

import (
	"fmt"
	"sync"

	"github.com/availcore/avail/internal/object"
	"github.com/availcore/avail/internal/typesystem"
)

// ResultKind tags what a Primitive's invocation produced: success with
// a value, failure with a value carried in Result.FailureValue,
// ready-to-invoke to ask the interpreter to run a supplied function on
// its behalf, or a request to suspend the fiber.
type ResultKind uint8

const (
	Success ResultKind = iota
	Failure
	ReadyToInvoke
	Suspend
)

type Result struct {
	Kind ResultKind

	Value        object.Value // valid when Kind == Success
	FailureValue object.Value // valid when Kind == Failure

	ToInvoke   *object.Function // valid when Kind == ReadyToInvoke
	InvokeArgs []object.Value
}

func Succeed(v object.Value) Result { return Result{Kind: Success, Value: v} }
func Fail(v object.Value) Result    { return Result{Kind: Failure, FailureValue: v} }
func Invoke(fn *object.Function, args []object.Value) Result {
	return Result{Kind: ReadyToInvoke, ToInvoke: fn, InvokeArgs: args}
}

// SuspendNow requests that the interpreter park the calling fiber
// (spec §4.5, primitives flagged CanSuspend); the scheduler is
// responsible for re-running the fiber's reified continuation once
// whatever condition it was waiting for is satisfied.
func SuspendNow() Result { return Result{Kind: Suspend} }

// Func is the Go implementation behind a numbered primitive.
type Func func(args []object.Value) Result

// Primitive is one numbered primitive (spec §6 "Primitive invocation
// protocol"): a Go function plus the declared metadata the rest of the
// system needs without calling it.
type Primitive struct {
	Number       int
	Name         string
	Flags        Flag
	ArgsType     typesystem.Type // the tuple type of acceptable argument lists
	FailureType  typesystem.Type // nil if CannotFail
	Fn           Func
}

// Registry is the numbered-primitive table, keyed by both number
// (what CompiledCode.PrimitiveNumber references) and name (for
// disassembly and the bootstrap loader).
type Registry struct {
	mu      sync.RWMutex
	byNum   map[int]*Primitive
	byName  map[string]*Primitive
}

func NewRegistry() *Registry {
	return &Registry{byNum: map[int]*Primitive{}, byName: map[string]*Primitive{}}
}

func (r *Registry) Register(p *Primitive) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byNum[p.Number]; exists {
		return fmt.Errorf("primitive %d already registered", p.Number)
	}
	r.byNum[p.Number] = p
	r.byName[p.Name] = p
	return nil
}

func (r *Registry) ByNumber(n int) (*Primitive, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byNum[n]
	return p, ok
}

func (r *Registry) ByName(name string) (*Primitive, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byName[name]
	return p, ok
}

// Invoke runs primitive number n, validating CannotFail's contract:
// a primitive flagged CannotFail that nonetheless returns Failure is a
// primitive implementation bug, not a language-level failure, so it
// panics rather than propagating a failure value the declared flags
// said could never occur.
func (r *Registry) Invoke(n int, args []object.Value) (Result, error) {
	p, ok := r.ByNumber(n)
	if !ok {
		return Result{}, fmt.Errorf("unknown primitive number %d", n)
	}
	res := p.Fn(args)
	if res.Kind == Failure && p.Flags.Has(CannotFail) {
		panic(fmt.Sprintf("primitive %s (%d) declared CannotFail but returned a failure", p.Name, p.Number))
	}
	return res, nil
}
