// End-to-end scenarios for the CLI surface, driven through run.
package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeInput drops a JSON document into a temp file.
func writeInput(t *testing.T, dir, doc string) string {
	t.Helper()
	path := filepath.Join(dir, "input.json")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	return path
}

// readOutput parses the output envelope.
func readOutput(t *testing.T, path string) map[string]json.RawMessage {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	return doc
}

// requireResult asserts a success envelope with the given matrix.
func requireResult(t *testing.T, path string, want [][]float64) {
	t.Helper()
	doc := readOutput(t, path)
	require.Contains(t, doc, "result")
	require.NotContains(t, doc, "error")
	var got [][]float64
	require.NoError(t, json.Unmarshal(doc["result"], &got))
	require.Equal(t, want, got)
}

// requireError asserts a failure envelope with a non-empty message.
func requireError(t *testing.T, path string) {
	t.Helper()
	doc := readOutput(t, path)
	require.Contains(t, doc, "error")
	require.NotContains(t, doc, "result")
	var msg string
	require.NoError(t, json.Unmarshal(doc["error"], &msg))
	require.NotEmpty(t, msg)
}

// TestLiteralPassthrough mirrors scenario 1: a bare matrix echoes back.
func TestLiteralPassthrough(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, `[[1,2],[3,4]]`)
	out := filepath.Join(dir, "out.json")

	run([]string{"2", in, out})

	requireResult(t, out, [][]float64{{1, 2}, {3, 4}})
}

// TestAddScenario mirrors scenario 2.
func TestAddScenario(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, `{"operator":"+","operands":[[[1,2],[3,4]],[[10,20],[30,40]]]}`)
	out := filepath.Join(dir, "out.json")

	run([]string{"3", in, out})

	requireResult(t, out, [][]float64{{11, 22}, {33, 44}})
}

// TestMultiplyScenario mirrors scenario 3.
func TestMultiplyScenario(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, `{"operator":"*","operands":[[[1,2,3],[4,5,6]],[[7,8],[9,10],[11,12]]]}`)
	out := filepath.Join(dir, "out.json")

	run([]string{"4", in, out})

	requireResult(t, out, [][]float64{{58, 64}, {139, 154}})
}

// TestNegateScenario mirrors scenario 4.
func TestNegateScenario(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, `{"operator":"-","operands":[[[1,-2],[3,0]]]}`)
	out := filepath.Join(dir, "out.json")

	run([]string{"2", in, out})

	requireResult(t, out, [][]float64{{-1, 2}, {-3, 0}})
}

// TestTransposeSingleThread mirrors scenario 5 at pool size one, the
// last-finisher install path.
func TestTransposeSingleThread(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, `{"operator":"T","operands":[[[1,2,3],[4,5,6]]]}`)
	out := filepath.Join(dir, "out.json")

	run([]string{"1", in, out})

	requireResult(t, out, [][]float64{{1, 4}, {2, 5}, {3, 6}})
}

// TestNaryAddScenario mirrors scenario 6.
func TestNaryAddScenario(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, `{"operator":"+","operands":[[[1,1],[1,1]],[[2,2],[2,2]],[[3,3],[3,3]]]}`)
	out := filepath.Join(dir, "out.json")

	run([]string{"3", in, out})

	requireResult(t, out, [][]float64{{6, 6}, {6, 6}})
}

// TestDimensionMismatchScenario mirrors scenario 7: error envelope,
// no result field.
func TestDimensionMismatchScenario(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, `{"operator":"+","operands":[[[1,2]],[[1,2],[3,4]]]}`)
	out := filepath.Join(dir, "out.json")

	run([]string{"2", in, out})

	requireError(t, out)
}

// TestInvalidThreadsScenario mirrors scenario 8.
func TestInvalidThreadsScenario(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, `[[1]]`)
	out := filepath.Join(dir, "out.json")

	run([]string{"abc", in, out})
	requireError(t, out)

	run([]string{"0", in, out})
	requireError(t, out) // non-positive is rejected too
}

// TestMissingInputFile renders the read failure into the envelope.
func TestMissingInputFile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.json")

	run([]string{"2", filepath.Join(dir, "missing.json"), out})

	requireError(t, out)
}

// TestWrongArity writes the usage error to the default path.
func TestWrongArity(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() { require.NoError(t, os.Chdir(cwd)) }()

	run([]string{"2", "only-two-args"})

	requireError(t, filepath.Join(dir, "error.json"))
}
