package fiber

import (
	"sync"
	"unsafe"

	"github.com/availcore/avail/internal/object"
	"github.com/availcore/avail/internal/typesystem"
)

// TextInterface lets a fiber's primitives read/write a console-like
// stream without the scheduler depending on any particular I/O
// backend (spec §6 "fibers have an associated text interface").
type TextInterface interface {
	WriteString(s string) (int, error)
	ReadLine() (string, error)
}

// ResultContinuation and FailureContinuation are invoked (at most
// once, mutually exclusive) when a fiber finishes (spec §4.5).
type ResultContinuation func(result object.Value)
type FailureContinuation func(failure error)

// Fiber is Avail's unit of cooperative concurrency: a continuation
// plus the scheduling metadata needed to run it to completion (spec
// §3, §4.5).
type Fiber struct {
	mu sync.Mutex

	Name     string
	Priority uint8 // 0-255, higher runs sooner (spec §4.5 "quasi-deadline")
	state    State

	Continuation *object.Continuation

	// OrdinaryGlobals are private to this fiber; HeritableGlobals are
	// copied into any fiber this one forks (spec §5 "heritable
	// globals propagate to descendant fibers; ordinary globals do
	// not").
	OrdinaryGlobals  *object.Map
	HeritableGlobals *object.Map

	OnResult  ResultContinuation
	OnFailure FailureContinuation

	Text TextInterface

	TraceEnabled bool

	scheduled bool // set by Scheduler.Schedule; never cleared
	bound     chan struct{} // closed when the fiber reaches a terminal state
}

func New(priority uint8) *Fiber {
	return &Fiber{
		Priority:         priority,
		state:            Unstarted,
		OrdinaryGlobals:  object.EmptyAvailMap(),
		HeritableGlobals: object.EmptyAvailMap(),
		bound:            make(chan struct{}),
	}
}

// Fork creates a new Unstarted fiber inheriting this one's heritable
// globals (spec §5).
func (f *Fiber) Fork(priority uint8) *Fiber {
	child := New(priority)
	f.mu.Lock()
	child.HeritableGlobals = f.HeritableGlobals
	f.mu.Unlock()
	return child
}

func (f *Fiber) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// transition validates and applies a state change under the fiber's
// lock, so a cancellation request racing with completion always
// observes a consistent state (spec §4.5 "cancellation is checked
// under the fiber's own lock before committing a transition").
func (f *Fiber) transition(to State) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := checkTransition(f.state, to); err != nil {
		return err
	}
	f.state = to
	if to == Retired {
		select {
		case <-f.bound:
		default:
			close(f.bound)
		}
	}
	return nil
}

// Wait blocks until the fiber is Retired, or is Aborted by RequestCancel.
func (f *Fiber) Wait() { <-f.bound }

// RequestCancel moves a fiber directly to Aborted, unless it has
// already left the running states. The check and the transition
// happen atomically under the fiber's lock (spec §4.5 "pre-termination
// check").
func (f *Fiber) RequestCancel() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == Terminated || f.state == Aborted || f.state == Retired {
		return errFiberAlreadyDone
	}
	if err := checkTransition(f.state, Aborted); err != nil {
		return err
	}
	f.state = Aborted
	select {
	case <-f.bound:
	default:
		close(f.bound)
	}
	return nil
}

var errFiberAlreadyDone = object.ErrFiberTerminated

// Fiber is itself a first-class Avail value (spec §3), so it
// implements object.Object and object.Mutabler like every other
// runtime value. Fibers are always Shared: they are the very
// mechanism by which values cross fiber boundaries, so a fiber that
// could still be exclusively owned by one fiber would be incoherent.
func (f *Fiber) Mutability() object.Mutability { return object.Shared }
func (f *Fiber) Promote(object.Mutability)      {}

func (f *Fiber) Kind() typesystem.Type { return typesystem.TCon{Name: "Fiber"} }
func (f *Fiber) Inspect() string       { return "<fiber " + f.Name + " (" + f.State().String() + ")>" }
func (f *Fiber) Hash() uint32          { return uint32(uintptr(unsafe.Pointer(f))) }
