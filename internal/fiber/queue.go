package fiber

import (
	"container/heap"
	"time"
)

// deadlineOf computes a fiber's quasi-deadline: a higher priority
// pulls the deadline closer to "now", so it is popped sooner without
// fibers of the same priority starving each other (spec §4.5
// "quasi-deadline queue"). The formula keeps the adjustment bounded to
// under a second regardless of priority so it never reorders fibers
// across a call that was already waiting a long time.
func deadlineOf(now time.Time, priority uint8) time.Time {
	offset := time.Duration(255-int(priority)) * time.Second / 256
	return now.Add(offset)
}

type queueItem struct {
	fiber    *Fiber
	deadline time.Time
	index    int
}

// readyQueue is a container/heap.Interface ordering fibers by
// quasi-deadline; ties broken by insertion order (earlier arrival
// wins) to keep scheduling deterministic for equal-priority fibers.
type readyQueue []*queueItem

func (q readyQueue) Len() int { return len(q) }
func (q readyQueue) Less(i, j int) bool {
	if q[i].deadline.Equal(q[j].deadline) {
		return q[i].index < q[j].index
	}
	return q[i].deadline.Before(q[j].deadline)
}
func (q readyQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *readyQueue) Push(x interface{}) { *q = append(*q, x.(*queueItem)) }
func (q *readyQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// PriorityQueue is the scheduler's run queue: a binary heap keyed on
// quasi-deadline (spec §4.5). It is not safe for concurrent use by
// itself; Scheduler serializes access with its own mutex.
type PriorityQueue struct {
	items   readyQueue
	counter int
}

func NewPriorityQueue() *PriorityQueue {
	pq := &PriorityQueue{}
	heap.Init(&pq.items)
	return pq
}

func (pq *PriorityQueue) Enqueue(f *Fiber) {
	pq.counter++
	heap.Push(&pq.items, &queueItem{fiber: f, deadline: deadlineOf(timeNow(), f.Priority), index: pq.counter})
}

func (pq *PriorityQueue) Dequeue() (*Fiber, bool) {
	if pq.items.Len() == 0 {
		return nil, false
	}
	item := heap.Pop(&pq.items).(*queueItem)
	return item.fiber, true
}

func (pq *PriorityQueue) Len() int { return pq.items.Len() }

// timeNow is the single seam for "now" so a future deterministic test
// harness can substitute a fixed clock without touching scheduling
// logic.
var timeNow = time.Now
