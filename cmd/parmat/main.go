// Command parmat evaluates a JSON linear-algebra expression tree on a
// fatigue-priority worker pool:
//
//	parmat <threads> <input.json> <output.json>
//
// The process never exits with an uncaught failure: every error is
// rendered as {"error": "..."} into the output file (or error.json when
// no output path was given) and the exit code is 0.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/katalvlaran/parmat/engine"
	"github.com/katalvlaran/parmat/parser"
)

// defaultErrorPath receives the usage error when no output path exists.
const defaultErrorPath = "error.json"

func main() {
	run(os.Args[1:])
}

// run is the whole CLI, separated from main for tests.
func run(args []string) {
	if len(args) != 3 {
		_ = parser.WriteError("usage: parmat <threads> <input.json> <output.json>", defaultErrorPath)
		return
	}
	outputPath := args[2]

	threads, err := strconv.Atoi(args[0])
	if err != nil {
		_ = parser.WriteError("invalid number of threads: "+args[0], outputPath)
		return
	}
	if threads <= 0 {
		_ = parser.WriteError("number of threads must be positive", outputPath)
		return
	}

	root, err := parser.ParseFile(args[1])
	if err != nil {
		writeFailure(err, outputPath)
		return
	}

	eng, err := engine.New(threads)
	if err != nil {
		writeFailure(err, outputPath)
		return
	}

	result, err := eng.Run(root)
	if err != nil {
		writeFailure(err, outputPath)
		return
	}

	if err := parser.WriteResult(result, outputPath); err != nil {
		writeFailure(err, outputPath)
	}
}

// writeFailure renders err into the error envelope. An empty message
// falls back to the error's type so the field is never blank.
func writeFailure(err error, path string) {
	msg := err.Error()
	if msg == "" {
		msg = fmt.Sprintf("%T", err)
	}
	_ = parser.WriteError(msg, path)
}
