// internal/report/lines.go
package report

import (
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Lines reads a report file and returns its lines. A trailing newline does
// not produce an empty final line.
func Lines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read report %s", path)
	}
	return Split(string(data)), nil
}

// Split splits report text into lines, tolerating CRLF and a trailing
// newline.
func Split(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}

// LastLine returns the final line of a report, or "" for an empty file.
func LastLine(path string) (string, error) {
	lines, err := Lines(path)
	if err != nil {
		return "", err
	}
	if len(lines) == 0 {
		return "", nil
	}
	return lines[len(lines)-1], nil
}

// Contains reports whether the case-sensitive needle appears anywhere in
// the report file.
func Contains(path, needle string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, errors.Wrapf(err, "read report %s", path)
	}
	return strings.Contains(string(data), needle), nil
}
