// internal/output/registry.go
package output

import (
	"fmt"
	"io"
)

// Writer registry (format → handler). Writers register in init() blocks.
var writers = map[string]func(io.Writer, []Result) error{}

// Register installs a writer for a format (idempotent, last wins).
func Register(format string, fn func(io.Writer, []Result) error) { writers[format] = fn }

// Formats lists the registered format names.
func Formats() []string {
	out := make([]string, 0, len(writers))
	for f := range writers {
		out = append(out, f)
	}
	return out
}

// Known reports whether a writer is registered for format.
func Known(format string) bool {
	_, ok := writers[format]
	return ok
}

// Write dispatches the result stream to the writer registered for format.
func Write(format string, w io.Writer, results []Result) error {
	fn, ok := writers[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, results)
}
