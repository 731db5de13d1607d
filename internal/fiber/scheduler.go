package fiber

import (
	"sync"

	"github.com/availcore/avail/internal/obslog"
)

// RunFunc executes one fiber's continuation until it yields control
// back to the scheduler (by terminating, suspending, or being
// interrupted). internal/interp supplies the real implementation; the
// scheduler only knows how to run it on a worker and act on the
// returned state.
type RunFunc func(f *Fiber) State

// Scheduler runs fibers on a bounded pool of worker goroutines,
// pulling from a quasi-deadline priority queue (spec §4.5). Protecting
// the queue and the live-fiber set with one mutex mirrors the
// teacher's pattern of a single RWMutex guarding a server's shared
// state (cmd/lsp/server.go).
type Scheduler struct {
	mu      sync.Mutex
	queue   *PriorityQueue
	workers int
	wake    chan struct{}
	run     RunFunc

	stopped bool
	wg      sync.WaitGroup
}

func NewScheduler(workers int, run RunFunc) *Scheduler {
	if workers < 1 {
		workers = 1
	}
	return &Scheduler{
		queue:   NewPriorityQueue(),
		workers: workers,
		wake:    make(chan struct{}, workers),
		run:     run,
	}
}

// Start launches the worker pool. Stop must be called to release the
// goroutines.
func (s *Scheduler) Start() {
	for i := 0; i < s.workers; i++ {
		s.wg.Add(1)
		go s.workerLoop()
	}
}

func (s *Scheduler) Stop() {
	s.mu.Lock()
	s.stopped = true
	s.mu.Unlock()
	close(s.wake)
	s.wg.Wait()
}

// Schedule transitions a fiber to Running-eligible and enqueues it
// (spec §4.5 Unstarted/Suspended/Interrupted -> Running).
func (s *Scheduler) Schedule(f *Fiber) {
	s.mu.Lock()
	f.scheduled = true
	s.queue.Enqueue(f)
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *Scheduler) workerLoop() {
	defer s.wg.Done()
	for {
		f, ok := s.next()
		if !ok {
			_, open := <-s.wake
			if !open {
				return
			}
			continue
		}
		s.runOne(f)
	}
}

func (s *Scheduler) next() (*Fiber, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return nil, false
	}
	return s.queue.Dequeue()
}

func (s *Scheduler) runOne(f *Fiber) {
	if err := f.transition(Running); err != nil {
		// Another path (e.g. a racing cancellation) already moved the
		// fiber; log and drop it rather than crash the worker (spec
		// §4.5 "log and suppress" behavior for scheduling conflicts
		// that are not the running program's fault).
		obslog.Default.Warn("scheduler: %v", err)
		return
	}

	next := s.run(f)

	switch next {
	case Suspended, Interrupted:
		if err := f.transition(next); err != nil {
			obslog.Default.Warn("scheduler: %v", err)
			return
		}
	case Terminated, Aborted:
		if f.State() != next {
			if err := f.transition(next); err != nil {
				obslog.Default.Warn("scheduler: %v", err)
			}
		}
		if err := f.transition(Retired); err != nil {
			obslog.Default.Warn("scheduler: %v", err)
		}
	default:
		obslog.Default.Warn("scheduler: run returned unexpected state %s", next)
	}
}
