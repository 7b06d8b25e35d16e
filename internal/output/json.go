// internal/output/json.go
package output

import (
	"io"

	"flowcheck/internal/jsonutil"
)

func init() { Register("json", WriteJSON) }

// WriteJSON emits the result stream as a pretty-printed JSON array.
func WriteJSON(w io.Writer, results []Result) error {
	if results == nil {
		results = []Result{}
	}
	return jsonutil.EncodePretty(w, results)
}
