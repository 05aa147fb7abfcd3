package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/katalvlaran/parmat/expr"
)

// operator tokens of the JSON surface.
const (
	tokenAdd       = "+"
	tokenMultiply  = "*"
	tokenNegate    = "-"
	tokenTranspose = "T"
)

// opEnvelope is the shape of an operator object.
type opEnvelope struct {
	Operator string            `json:"operator"`
	Operands []json.RawMessage `json:"operands"`
}

// ParseFile reads path and parses it into an expression tree.
func ParseFile(path string) (*expr.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("parser: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse builds an expression tree from a JSON document: either a bare
// 2-D number array or an operator object with nested operands.
func Parse(data []byte) (*expr.Node, error) {
	return parseNode(json.RawMessage(data))
}

// parseNode dispatches on the leading JSON token: '[' is a literal
// matrix, '{' is an operator envelope, anything else is rejected.
func parseNode(raw json.RawMessage) (*expr.Node, error) {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, ErrBadOperand
	}

	switch trimmed[0] {
	case '[':
		var m [][]float64
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("parser: matrix literal: %w", err)
		}
		// json leaves inner nils for rows like null; NewLiteral rejects
		// them along with ragged shapes.
		return expr.NewLiteral(m)

	case '{':
		var env opEnvelope
		if err := json.Unmarshal(raw, &env); err != nil {
			return nil, fmt.Errorf("parser: operator object: %w", err)
		}
		kind, err := kindOf(env.Operator)
		if err != nil {
			return nil, err
		}
		children := make([]*expr.Node, len(env.Operands))
		for i, operand := range env.Operands {
			if children[i], err = parseNode(operand); err != nil {
				return nil, err
			}
		}
		return expr.NewNode(kind, children...)

	default:
		return nil, ErrBadOperand
	}
}

// kindOf maps an operator token to its node kind.
func kindOf(token string) (expr.Kind, error) {
	switch token {
	case tokenAdd:
		return expr.Add, nil
	case tokenMultiply:
		return expr.Multiply, nil
	case tokenNegate:
		return expr.Negate, nil
	case tokenTranspose:
		return expr.Transpose, nil
	default:
		return 0, fmt.Errorf("parser: operator %q: %w", token, ErrUnknownOperator)
	}
}
