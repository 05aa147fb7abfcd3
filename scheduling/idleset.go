package scheduling

import (
	"container/heap"
	"sync"
)

// workerHeap is a min-heap over (fatigue, id).
type workerHeap []*Worker

func (h workerHeap) Len() int            { return len(h) }
func (h workerHeap) Less(i, j int) bool  { return h[i].less(h[j]) }
func (h workerHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *workerHeap) Push(x interface{}) { *h = append(*h, x.(*Worker)) }
func (h *workerHeap) Pop() interface{} {
	old := *h
	n := len(old)
	w := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return w
}

// idleSet is the ordered concurrent collection of workers not currently
// executing a task. take blocks while the set is empty; put re-ranks
// the worker under its grown fatigue.
type idleSet struct {
	mu   sync.Mutex
	cond *sync.Cond
	h    workerHeap
}

func newIdleSet() *idleSet {
	s := &idleSet{}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// take removes and returns the least-fatigued worker, blocking while
// the set is empty.
func (s *idleSet) take() *Worker {
	s.mu.Lock()
	defer s.mu.Unlock()
	for s.h.Len() == 0 {
		s.cond.Wait()
	}
	return heap.Pop(&s.h).(*Worker)
}

// put returns a worker to the set and wakes one blocked take.
func (s *idleSet) put(w *Worker) {
	s.mu.Lock()
	heap.Push(&s.h, w)
	s.mu.Unlock()
	s.cond.Signal()
}
