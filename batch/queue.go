package batch

import (
	"context"
	"sync"
)

// Queue is a fixed capacity FIFO of paths shared by one feeder and several
// workers.
//
// Both wait predicates share one mutex. notEmpty wakes workers, notFull
// wakes the feeder; every waiter re-checks its predicate after waking.
type Queue struct {
	mu       sync.Mutex
	notEmpty *sync.Cond
	notFull  *sync.Cond

	slots    []string
	read     int
	write    int
	occupied int
	stopped  bool
}

// NewQueue returns an empty queue with room for capacity paths. A capacity
// below one is raised to one.
func NewQueue(capacity int) *Queue {
	if capacity < 1 {
		capacity = 1
	}
	q := &Queue{slots: make([]string, capacity)}
	q.notEmpty = sync.NewCond(&q.mu)
	q.notFull = sync.NewCond(&q.mu)
	return q
}

// Enqueue appends path, blocking while the queue is full. It returns the
// context error if ctx is cancelled before a slot frees up, and
// ErrQueueStopped after Stop.
func (q *Queue) Enqueue(ctx context.Context, path string) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.occupied == len(q.slots) && !q.stopped && ctx.Err() == nil {
		q.notFull.Wait()
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if q.stopped {
		return ErrQueueStopped
	}

	q.slots[q.write] = path
	q.write = (q.write + 1) % len(q.slots)
	q.occupied++
	if q.occupied == 1 {
		q.notEmpty.Broadcast()
	}
	return nil
}

// Dequeue removes the oldest path, blocking while the queue is empty and not
// stopped. ok is false once the queue is stopped and drained, or when ctx is
// cancelled; the worker must then terminate.
func (q *Queue) Dequeue(ctx context.Context) (path string, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.occupied == 0 && !q.stopped && ctx.Err() == nil {
		q.notEmpty.Wait()
	}
	if q.occupied == 0 || ctx.Err() != nil {
		return "", false
	}

	path = q.slots[q.read]
	q.slots[q.read] = ""
	q.read = (q.read + 1) % len(q.slots)
	q.occupied--
	if q.occupied == len(q.slots)-1 {
		q.notFull.Signal()
	}
	return path, true
}

// Stop marks the end of input and wakes every waiter. Paths already queued
// are still handed out.
func (q *Queue) Stop() {
	q.mu.Lock()
	q.stopped = true
	q.notEmpty.Broadcast()
	q.notFull.Broadcast()
	q.mu.Unlock()
}

// Interrupt wakes every waiter so it can observe a cancelled context.
func (q *Queue) Interrupt() {
	q.mu.Lock()
	q.notEmpty.Broadcast()
	q.notFull.Broadcast()
	q.mu.Unlock()
}

// Len returns the number of queued paths.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.occupied
}

// Cap returns the queue capacity.
func (q *Queue) Cap() int {
	return len(q.slots)
}
