// internal/output/text.go
package output

import (
	"fmt"
	"io"
)

func init() { Register("text", WriteText) }

// WriteText prints one line per passed check, the format CI logs grep for.
func WriteText(w io.Writer, results []Result) error {
	for _, r := range results {
		if _, err := fmt.Fprintf(w, "%s check %s\n", r.Check, r.Status); err != nil {
			return err
		}
	}
	return nil
}
