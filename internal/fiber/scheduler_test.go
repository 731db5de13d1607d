package fiber

import (
	"sync"
	"testing"
)

func TestIllegalTransitionRejected(t *testing.T) {
	f := New(100)
	if err := f.transition(Suspended); err == nil {
		t.Fatal("expected error transitioning Unstarted -> Suspended directly")
	}
}

func TestCancelFromUnstartedSucceeds(t *testing.T) {
	f := New(100)
	if err := f.RequestCancel(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.State() != Aborted {
		t.Fatalf("expected Aborted, got %s", f.State())
	}
}

func TestCancelAfterTerminationFails(t *testing.T) {
	f := New(100)
	mustTransition(t, f, Running)
	mustTransition(t, f, Terminated)
	if err := f.RequestCancel(); err == nil {
		t.Fatal("expected cancel on a terminated fiber to fail")
	}
}

func TestPriorityQueueHigherPriorityFirst(t *testing.T) {
	pq := NewPriorityQueue()
	low := New(10)
	high := New(250)
	pq.Enqueue(low)
	pq.Enqueue(high)

	first, ok := pq.Dequeue()
	if !ok || first != high {
		t.Fatalf("expected the higher-priority fiber first")
	}
}

func TestSchedulerRunsFiberToRetired(t *testing.T) {
	var mu sync.Mutex
	ran := 0
	s := NewScheduler(2, func(f *Fiber) State {
		mu.Lock()
		ran++
		mu.Unlock()
		return Terminated
	})
	s.Start()
	defer s.Stop()

	f := New(128)
	s.Schedule(f)
	f.Wait()

	if f.State() != Retired {
		t.Fatalf("expected Retired, got %s", f.State())
	}
	mu.Lock()
	defer mu.Unlock()
	if ran != 1 {
		t.Fatalf("expected run to be called once, got %d", ran)
	}
}

func mustTransition(t *testing.T, f *Fiber, to State) {
	t.Helper()
	if err := f.transition(to); err != nil {
		t.Fatalf("transition to %s: %v", to, err)
	}
}
