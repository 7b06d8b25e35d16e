// internal/output/result.go
package output

// StatusClean marks a check that passed. Failed checks never produce a
// Result; they abort the run with an error.
const StatusClean = "clean"

// Result is one passed check in the verification stream.
type Result struct {
	Check  string `json:"check"`
	Status string `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// Clean builds a passing Result.
func Clean(check, detail string) Result {
	return Result{Check: check, Status: StatusClean, Detail: detail}
}
