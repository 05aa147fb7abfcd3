// Package scheduling implements parmat's fatigue-priority worker pool.
//
// A Worker is a long-lived goroutine with a capacity-1 handoff channel
// and a cumulative busy-time counter. Its fatigue is the product
// fatigueFactor × busyNanos; the factor is drawn once at construction
// (uniform in [0.5, 1.5) by default) and never changes. Workers order
// by (fatigue, id) ascending, with the id breaking ties so the order is
// total and deterministic. Fatigue is computed from the stored counter
// only — never from a live clock — so comparisons are stable while a
// worker sits in the idle set.
//
// The Executor keeps every idle worker in a min-heap keyed by that
// ordering and always dispatches to the least-fatigued one. Because
// fatigue grows with cumulative busy time, steady-state load is
// inversely proportional to the fatigue factor — a natural weighted
// round-robin.
//
// Correctness contracts:
//
//   - The in-flight counter is incremented BEFORE a task is offered to
//     a worker. A fast task completing between offer and increment
//     would otherwise drive the counter negative and wake SubmitAll
//     against a not-yet-installed count.
//   - SubmitAll holds the completion mutex across submission and wait,
//     closing the race where every task completes (and broadcasts)
//     before the waiter reaches its wait.
//   - A worker adds the elapsed nanos to its busy counter BEFORE
//     clearing its busy flag: an observer that sees busy=false is
//     guaranteed to see the final counter for the just-finished task.
//   - Shutdown waits for quiescence, then delivers a poison pill to
//     each worker with a blocking send (guaranteed pickup) and joins
//     them all.
//
// Construction is configured with functional options:
//
//	scheduling.NewExecutor(4)                                    // random factors
//	scheduling.NewExecutor(4, scheduling.WithSeed(7))            // deterministic stream
//	scheduling.NewExecutor(2, scheduling.WithFatigueFactors(0.5, 1.4))
//
// Errors:
//
//	ErrNonPositiveWorkers - pool size <= 0.
//	ErrFactorCount        - explicit factor list length != pool size.
//	ErrNilTask            - nil task submitted or offered.
//	ErrNotReady           - non-blocking offer to a worker whose slot is full.
//	ErrShutdown           - submission after Shutdown.
//
// SPDX-License-Identifier: MIT
package scheduling
