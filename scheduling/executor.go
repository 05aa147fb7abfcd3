package scheduling

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"sync/atomic"
)

// Executor is a fixed pool of fatigue-tracked workers. Dispatch is a
// priority-queue pop: the next task always goes to the least-fatigued
// idle worker.
//
// SubmitAll is the bulk barrier used by the engine: it submits a batch
// and returns only after every task has finished. Shutdown drains the
// pool, poison-pills every worker and joins them.
type Executor struct {
	workers []*Worker
	idle    *idleSet

	inFlight atomic.Int64 // submitted-but-not-finished task count

	mu   sync.Mutex // completion-signal lock, also held across SubmitAll
	done *sync.Cond // broadcast when inFlight reaches zero

	closed   atomic.Bool // set once Shutdown begins
	joinOnce sync.Once   // pills and joins exactly once
}

// NewExecutor creates a pool of n workers and starts them. Fatigue
// factors default to a uniform draw from [0.5, 1.5) per worker; use
// WithFatigueFactors or WithSeed to pin them.
// Returns ErrNonPositiveWorkers for n <= 0 and ErrFactorCount when an
// explicit factor list does not cover the pool.
func NewExecutor(n int, opts ...Option) (*Executor, error) {
	if n <= 0 {
		return nil, ErrNonPositiveWorkers
	}

	var c config
	for _, opt := range opts {
		opt(&c)
	}
	if c.factors != nil && len(c.factors) != n {
		return nil, ErrFactorCount
	}

	e := &Executor{
		workers: make([]*Worker, n),
		idle:    newIdleSet(),
	}
	e.done = sync.NewCond(&e.mu)

	for i := 0; i < n; i++ {
		factor := 0.5
		switch {
		case c.factors != nil:
			factor = c.factors[i]
		case c.rng != nil:
			factor += c.rng.Float64()
		default:
			factor += rand.Float64()
		}
		w := newWorker(i, factor)
		e.workers[i] = w
		e.idle.put(w)
		go w.run()
	}
	return e, nil
}

// Submit dispatches one task to the least-fatigued idle worker,
// blocking while no worker is idle. Returns ErrNilTask or ErrShutdown;
// an offer rejection (unreachable under the pool protocol) is rolled
// back and returned as ErrNotReady.
func (e *Executor) Submit(task Task) error {
	if task == nil {
		return ErrNilTask
	}
	if e.closed.Load() {
		return ErrShutdown
	}

	worker := e.idle.take()

	// Increment BEFORE the offer: a fast task completing between offer
	// and increment would drive the counter negative and wake the
	// barrier against a stale count.
	e.inFlight.Add(1)

	wrapped := func() {
		defer func() {
			// Requeue first so a blocked take sees the worker before the
			// barrier can wake; the worker now sorts further back under
			// its grown busyNanos.
			e.idle.put(worker)
			if e.inFlight.Add(-1) == 0 {
				e.mu.Lock()
				e.done.Broadcast()
				e.mu.Unlock()
			}
		}()
		task()
	}

	if err := worker.Offer(wrapped); err != nil {
		e.inFlight.Add(-1)
		e.idle.put(worker)
		return err
	}
	return nil
}

// SubmitAll submits every task in order and blocks until all of them
// have finished. The completion mutex is held across submission and
// wait, so the zero-crossing broadcast cannot fire before the waiter
// is in position.
func (e *Executor) SubmitAll(tasks []Task) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	// Hold one extra in-flight count for the whole submission loop: no
	// completion can then reach zero (and need e.mu to broadcast) while
	// this goroutine holds e.mu and waits in Submit for an idle worker.
	e.inFlight.Add(1)
	var err error
	for _, task := range tasks {
		if err = e.Submit(task); err != nil {
			break
		}
	}
	if e.inFlight.Add(-1) == 0 {
		e.done.Broadcast()
	}
	if err != nil {
		return err
	}
	for e.inFlight.Load() > 0 {
		e.done.Wait()
	}
	return nil
}

// Shutdown waits for in-flight work to drain, then poison-pills every
// worker and joins them. Idempotent: later calls (or concurrent ones)
// wait on the same join.
func (e *Executor) Shutdown() {
	e.closed.Store(true)

	e.mu.Lock()
	for e.inFlight.Load() > 0 {
		e.done.Wait()
	}
	e.mu.Unlock()

	e.joinOnce.Do(func() {
		for _, w := range e.workers {
			w.shutdown()
		}
		for _, w := range e.workers {
			w.join()
		}
	})
}

// Workers returns the pool members in id order, for telemetry and
// tests. The slice is a copy; the workers are live.
func (e *Executor) Workers() []*Worker {
	out := make([]*Worker, len(e.workers))
	copy(out, e.workers)
	return out
}

// Report formats a per-worker stats snapshot: id, factor, fatigue,
// cumulative busy and idle nanos, and the busy flag.
func (e *Executor) Report() string {
	var b strings.Builder
	b.WriteString("worker report:\n")
	for _, w := range e.workers {
		fmt.Fprintf(&b, "worker %d: factor=%.2f fatigue=%.2f busyNanos=%d idleNanos=%d busy=%v\n",
			w.ID(), w.FatigueFactor(), w.Fatigue(), w.BusyNanos(), w.IdleNanos(), w.Busy())
	}
	return b.String()
}
