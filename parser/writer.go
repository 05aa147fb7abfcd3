package parser

import (
	"encoding/json"
	"fmt"
	"os"
)

// resultDoc is the success envelope: {"result": [[...]]}.
type resultDoc struct {
	Result [][]float64 `json:"result"`
}

// errorDoc is the failure envelope: {"error": "..."}.
type errorDoc struct {
	Error string `json:"error"`
}

// WriteResult writes {"result": m} to path. Nil slices are normalised
// to empty ones so the JSON carries arrays, never null.
func WriteResult(m [][]float64, path string) error {
	if m == nil {
		m = [][]float64{}
	}
	for i, row := range m {
		if row == nil {
			m[i] = []float64{}
		}
	}
	return writeDoc(resultDoc{Result: m}, path)
}

// WriteError writes {"error": msg} to path.
func WriteError(msg, path string) error {
	return writeDoc(errorDoc{Error: msg}, path)
}

// writeDoc marshals v and writes it with a trailing newline.
func writeDoc(v interface{}, path string) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("parser: marshal output: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("parser: write %s: %w", path, err)
	}
	return nil
}
