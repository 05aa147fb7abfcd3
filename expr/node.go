package expr

// Kind tags a Node as a literal matrix or one of the four operators.
type Kind uint8

const (
	// Literal is a leaf carrying a concrete matrix.
	Literal Kind = iota
	// Add is n-ary element-wise addition.
	Add
	// Multiply is n-ary, left-associative matrix multiplication.
	Multiply
	// Negate is unary element-wise negation.
	Negate
	// Transpose is unary matrix transposition.
	Transpose
)

// String returns the operator token used by the JSON surface, or
// "literal" for leaves.
func (k Kind) String() string {
	switch k {
	case Literal:
		return "literal"
	case Add:
		return "+"
	case Multiply:
		return "*"
	case Negate:
		return "-"
	case Transpose:
		return "T"
	default:
		return "?"
	}
}

// Node is one expression-tree vertex. A Literal node carries Matrix and
// no children; an operator node carries Children and no matrix. The
// engine mutates trees in place via Resolve.
type Node struct {
	Kind     Kind
	Matrix   [][]float64 // literal payload; nil on operator nodes
	Children []*Node     // operand subtrees; nil on literals
}

// NewLiteral builds a leaf from a row-major matrix. The payload is
// referenced, not copied; the shared-memory layer deep-copies on load.
// Returns ErrNilMatrix for nil input (or a nil row) and ErrRaggedMatrix
// for rows of unequal length.
func NewLiteral(m [][]float64) (*Node, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if len(m) > 0 {
		if m[0] == nil {
			return nil, ErrNilMatrix
		}
		width := len(m[0])
		for _, row := range m[1:] {
			if row == nil {
				return nil, ErrNilMatrix
			}
			if len(row) != width {
				return nil, ErrRaggedMatrix
			}
		}
	}
	return &Node{Kind: Literal, Matrix: m}, nil
}

// NewNode builds an operator node over the given operand subtrees.
// Add and Multiply take two or more operands, Negate and Transpose
// exactly one. Returns ErrUnknownKind, ErrBadArity or ErrNilNode.
func NewNode(kind Kind, children ...*Node) (*Node, error) {
	switch kind {
	case Add, Multiply:
		if len(children) < 2 {
			return nil, ErrBadArity
		}
	case Negate, Transpose:
		if len(children) != 1 {
			return nil, ErrBadArity
		}
	default:
		return nil, ErrUnknownKind
	}
	for _, c := range children {
		if c == nil {
			return nil, ErrNilNode
		}
	}
	return &Node{Kind: kind, Children: children}, nil
}

// AssociativeNesting rewrites, recursively, every operator of arity
// greater than two into a left-associative binary chain:
//
//	op(a,b,c,d) → op(op(op(a,b),c),d)
//
// Unary operators and literals are unchanged. After this pass every
// Add/Multiply node has exactly two children, which is what the
// engine's two staging slots expect.
func (n *Node) AssociativeNesting() {
	if n == nil || n.Kind == Literal {
		return
	}
	for _, c := range n.Children {
		c.AssociativeNesting()
	}
	if (n.Kind != Add && n.Kind != Multiply) || len(n.Children) <= 2 {
		return
	}

	// Fold all but the last child into a nested left spine, then keep
	// (spine, last) as this node's two children.
	last := len(n.Children) - 1
	left := n.Children[0]
	for i := 1; i < last; i++ {
		left = &Node{Kind: n.Kind, Children: []*Node{left, n.Children[i]}}
	}
	n.Children = []*Node{left, n.Children[last]}
}

// FindResolvable returns the first ready node — an operator whose
// children are all literals — in deepest-first, left-to-right order.
// It returns nil when the receiver is already a literal (or when no
// ready node exists, which only happens on malformed trees).
func (n *Node) FindResolvable() *Node {
	if n == nil || n.Kind == Literal {
		return nil
	}
	for _, c := range n.Children {
		if r := c.FindResolvable(); r != nil {
			return r
		}
	}
	for _, c := range n.Children {
		if c.Kind != Literal {
			return nil
		}
	}
	return n
}

// Resolve collapses an operator node into a literal carrying m and
// discards its children. Called by the engine once the operator's
// result has been read back from shared memory.
func (n *Node) Resolve(m [][]float64) {
	n.Kind = Literal
	n.Matrix = m
	n.Children = nil
}
