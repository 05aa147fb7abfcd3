// Package parser_test covers JSON parsing into expression trees.
package parser_test

import (
	"testing"

	"github.com/katalvlaran/parmat/expr"
	"github.com/katalvlaran/parmat/parser"
	"github.com/stretchr/testify/require"
)

// TestParseBareMatrix parses a literal document.
func TestParseBareMatrix(t *testing.T) {
	root, err := parser.Parse([]byte(` [[1, 2], [3, 4]] `))
	require.NoError(t, err)

	require.Equal(t, expr.Literal, root.Kind)
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, root.Matrix)
}

// TestParseOperatorObject parses a binary addition.
func TestParseOperatorObject(t *testing.T) {
	doc := `{"operator": "+", "operands": [[[1]], [[2]]]}`

	root, err := parser.Parse([]byte(doc))
	require.NoError(t, err)

	require.Equal(t, expr.Add, root.Kind)
	require.Len(t, root.Children, 2)
	require.Equal(t, [][]float64{{1}}, root.Children[0].Matrix)
	require.Equal(t, [][]float64{{2}}, root.Children[1].Matrix)
}

// TestParseNestedOperators parses T over a nested multiply.
func TestParseNestedOperators(t *testing.T) {
	doc := `{"operator": "T", "operands": [
		{"operator": "*", "operands": [[[1,2]], [[3],[4]]]}
	]}`

	root, err := parser.Parse([]byte(doc))
	require.NoError(t, err)

	require.Equal(t, expr.Transpose, root.Kind)
	require.Len(t, root.Children, 1)
	require.Equal(t, expr.Multiply, root.Children[0].Kind)
	require.Len(t, root.Children[0].Children, 2)
}

// TestParseNaryOperands keeps all operands for the nesting rewrite.
func TestParseNaryOperands(t *testing.T) {
	doc := `{"operator": "*", "operands": [[[1]], [[2]], [[3]], [[4]]]}`

	root, err := parser.Parse([]byte(doc))
	require.NoError(t, err)
	require.Len(t, root.Children, 4) // arity preserved pre-nesting
}

// TestParseUnknownOperator rejects tokens outside the surface.
func TestParseUnknownOperator(t *testing.T) {
	doc := `{"operator": "/", "operands": [[[1]], [[2]]]}`

	_, err := parser.Parse([]byte(doc))
	require.ErrorIs(t, err, parser.ErrUnknownOperator)
}

// TestParseArityViolations surfaces expr.ErrBadArity.
func TestParseArityViolations(t *testing.T) {
	_, err := parser.Parse([]byte(`{"operator": "+", "operands": [[[1]]]}`))
	require.ErrorIs(t, err, expr.ErrBadArity) // + with one operand

	_, err = parser.Parse([]byte(`{"operator": "-", "operands": [[[1]], [[2]]]}`))
	require.ErrorIs(t, err, expr.ErrBadArity) // - with two operands

	_, err = parser.Parse([]byte(`{"operator": "T", "operands": []}`))
	require.ErrorIs(t, err, expr.ErrBadArity) // T with none
}

// TestParseBadDocuments rejects non-matrix, non-object operands.
func TestParseBadDocuments(t *testing.T) {
	_, err := parser.Parse([]byte(`42`))
	require.ErrorIs(t, err, parser.ErrBadOperand)

	_, err = parser.Parse([]byte(``))
	require.ErrorIs(t, err, parser.ErrBadOperand)

	_, err = parser.Parse([]byte(`{"operator": "+", "operands": [[[1]], "x"]}`))
	require.ErrorIs(t, err, parser.ErrBadOperand)

	_, err = parser.Parse([]byte(`[[1, 2], [3]]`)) // ragged literal
	require.ErrorIs(t, err, expr.ErrRaggedMatrix)

	_, err = parser.Parse([]byte(`[[1, "a"]]`)) // non-numeric cell
	require.Error(t, err)
}

// TestParseFileMissing wraps the underlying I/O failure.
func TestParseFileMissing(t *testing.T) {
	_, err := parser.ParseFile("/nonexistent/input.json")
	require.Error(t, err)
	require.Contains(t, err.Error(), "parser: read")
}
