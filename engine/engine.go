package engine

import (
	"github.com/katalvlaran/parmat/expr"
	"github.com/katalvlaran/parmat/memory"
	"github.com/katalvlaran/parmat/scheduling"
)

// Engine evaluates expression trees over a fatigue-priority pool.
// M1 (left) doubles as the result slot; M2 (right) holds the second
// operand of binary operators.
type Engine struct {
	left  *memory.Matrix // M1: left operand and result
	right *memory.Matrix // M2: right operand
	exec  *scheduling.Executor
}

// New creates an engine backed by a pool of threads workers. Options
// are forwarded to scheduling.NewExecutor. Returns
// scheduling.ErrNonPositiveWorkers for threads <= 0.
func New(threads int, opts ...scheduling.Option) (*Engine, error) {
	exec, err := scheduling.NewExecutor(threads, opts...)
	if err != nil {
		return nil, err
	}
	return &Engine{
		left:  memory.NewMatrix(),
		right: memory.NewMatrix(),
		exec:  exec,
	}, nil
}

// Run evaluates the tree rooted at root and returns the result matrix.
// The tree is mutated in place: every resolved operator collapses into
// a literal, and on success the root itself is a literal carrying the
// returned matrix. The executor is shut down on every exit path.
func (e *Engine) Run(root *expr.Node) (result [][]float64, err error) {
	defer e.exec.Shutdown()

	if root == nil {
		return nil, expr.ErrNilNode
	}
	if root.Kind == expr.Literal {
		return root.Matrix, nil
	}

	root.AssociativeNesting()

	for root.Kind != expr.Literal {
		node := root.FindResolvable()
		if node == nil {
			return nil, ErrNoResolvable
		}
		if err = e.loadAndCompute(node); err != nil {
			return nil, err
		}
		node.Resolve(e.left.ReadRowMajor())
	}
	return root.Matrix, nil
}

// WorkerReport returns the executor's per-worker stats snapshot.
func (e *Engine) WorkerReport() string {
	return e.exec.Report()
}

// loadAndCompute stages node's operands into M1/M2, generates the
// per-row task batch for its operator and runs it through the barrier.
// On return the operator's result sits in M1.
func (e *Engine) loadAndCompute(node *expr.Node) error {
	if node == nil {
		return expr.ErrNilNode
	}
	for _, c := range node.Children {
		if c.Kind != expr.Literal {
			return ErrUnresolvedChild
		}
	}

	var tasks []scheduling.Task
	rec := &firstError{}

	switch node.Kind {
	case expr.Add:
		if len(node.Children) != 2 {
			return expr.ErrBadArity
		}
		l, r := node.Children[0].Matrix, node.Children[1].Matrix
		if len(l) != len(r) || (len(l) > 0 && len(l[0]) != len(r[0])) {
			return memory.ErrDimensionMismatch
		}
		if err := e.left.LoadRowMajor(l); err != nil {
			return err
		}
		if err := e.right.LoadRowMajor(r); err != nil {
			return err
		}
		tasks = e.addTasks(rec)

	case expr.Multiply:
		if len(node.Children) != 2 {
			return expr.ErrBadArity
		}
		l, r := node.Children[0].Matrix, node.Children[1].Matrix
		leftCols := 0
		if len(l) > 0 {
			leftCols = len(l[0])
		}
		if leftCols != len(r) {
			return memory.ErrDimensionMismatch
		}
		if err := e.left.LoadRowMajor(l); err != nil {
			return err
		}
		if err := e.right.LoadColumnMajor(r); err != nil {
			return err
		}
		tasks = e.multiplyTasks(rec)

	case expr.Negate:
		if len(node.Children) != 1 {
			return expr.ErrBadArity
		}
		if err := e.left.LoadRowMajor(node.Children[0].Matrix); err != nil {
			return err
		}
		tasks = e.negateTasks()

	case expr.Transpose:
		if len(node.Children) != 1 {
			return expr.ErrBadArity
		}
		if err := e.left.LoadRowMajor(node.Children[0].Matrix); err != nil {
			return err
		}
		var err error
		if tasks, err = e.transposeTasks(rec); err != nil {
			return err
		}

	default:
		return expr.ErrUnknownKind
	}

	if err := e.exec.SubmitAll(tasks); err != nil {
		return err
	}
	return rec.get()
}
