package engine

import (
	"sync"

	"github.com/katalvlaran/parmat/memory"
	"github.com/katalvlaran/parmat/scheduling"
)

// firstError keeps the first error reported by any row task. Dimension
// checks run before staging, so task-level errors are unexpected; they
// are still surfaced rather than dropped.
type firstError struct {
	mu  sync.Mutex
	err error
}

func (f *firstError) set(err error) {
	if err == nil {
		return
	}
	f.mu.Lock()
	if f.err == nil {
		f.err = err
	}
	f.mu.Unlock()
}

func (f *firstError) get() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

// addTasks builds one task per row: M1.row(i) += M2.row(i).
func (e *Engine) addTasks(rec *firstError) []scheduling.Task {
	tasks := make([]scheduling.Task, e.left.Len())
	for i := range tasks {
		i := i
		tasks[i] = func() {
			l, err := e.left.Get(i)
			if err != nil {
				rec.set(err)
				return
			}
			r, err := e.right.Get(i)
			if err != nil {
				rec.set(err)
				return
			}
			rec.set(l.Add(r))
		}
	}
	return tasks
}

// multiplyTasks builds one task per row: M1.row(i) = M1.row(i) × M2,
// with M2 staged column-major so each dot product reads one column
// vector.
func (e *Engine) multiplyTasks(rec *firstError) []scheduling.Task {
	tasks := make([]scheduling.Task, e.left.Len())
	for i := range tasks {
		i := i
		tasks[i] = func() {
			row, err := e.left.Get(i)
			if err != nil {
				rec.set(err)
				return
			}
			rec.set(row.VecMatMul(e.right))
		}
	}
	return tasks
}

// negateTasks builds one task per row: M1.row(i) = -M1.row(i).
func (e *Engine) negateTasks() []scheduling.Task {
	tasks := make([]scheduling.Task, e.left.Len())
	for i := range tasks {
		i := i
		tasks[i] = func() {
			if row, err := e.left.Get(i); err == nil {
				row.Negate()
			}
		}
	}
	return tasks
}

// transposeTasks builds one task per input column. Task c copies input
// column c into row c of a private output buffer; rows are disjoint, so
// the copies need no locks beyond the per-vector reads. The last task
// to finish — observed under a small critical section on the remaining
// counter — installs the buffer into M1. No task ever waits on another
// task, so the scheme works at pool size one.
func (e *Engine) transposeTasks(rec *firstError) ([]scheduling.Task, error) {
	inputRows := e.left.Len()
	if inputRows == 0 {
		return nil, nil // empty in, empty out: M1 already holds it
	}

	// Capture the input vectors now: M1 is overwritten by the install,
	// but the vectors themselves live until every task has read them.
	inputs := make([]*memory.Vector, inputRows)
	for i := range inputs {
		v, err := e.left.Get(i)
		if err != nil {
			return nil, err
		}
		inputs[i] = v
	}
	inputCols := inputs[0].Len()

	transposed := make([][]float64, inputCols)
	for c := range transposed {
		transposed[c] = make([]float64, inputRows)
	}

	var mu sync.Mutex
	remaining := inputCols

	tasks := make([]scheduling.Task, inputCols)
	for c := range tasks {
		c := c
		tasks[c] = func() {
			for i, in := range inputs {
				x, err := in.At(c)
				if err != nil {
					rec.set(err)
					return
				}
				transposed[c][i] = x
			}

			mu.Lock()
			remaining--
			if remaining == 0 {
				// Last finisher: every other task has published its row,
				// so installing the buffer is safe.
				rec.set(e.left.LoadRowMajor(transposed))
			}
			mu.Unlock()
		}
	}
	return tasks, nil
}
