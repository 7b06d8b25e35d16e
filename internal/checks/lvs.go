// internal/checks/lvs.go
package checks

import (
	"strings"

	"flowcheck/internal/flow"
	"flowcheck/internal/output"
	"flowcheck/internal/report"
)

// lvsFailureMarker is case-sensitive: the cryo and work report generators
// both spell a failure in lower case, and "Failed" in prose must not trip
// the check.
const lvsFailureMarker = "failed"

// LVS verifies the layout-versus-schematic report. The cryo report
// generator puts the verdict on the last line only; the work report format
// may mention a failure anywhere.
func (c *Checker) LVS() (output.Result, error) {
	if c.RC.Mode == flow.Cryo {
		last, err := report.LastLine(c.RC.LVSReport)
		if err != nil {
			return output.Result{}, err
		}
		c.Log.Debugw("lvs verdict line", "report", c.RC.LVSReport, "line", last)
		if strings.Contains(last, lvsFailureMarker) {
			return output.Result{}, flow.Verifyf(CheckLVS, "report %s verdict: %s", c.RC.LVSReport, last)
		}
		return output.Clean(CheckLVS, "verdict line clean"), nil
	}

	found, err := report.Contains(c.RC.LVSReport, lvsFailureMarker)
	if err != nil {
		return output.Result{}, err
	}
	if found {
		return output.Result{}, flow.Verifyf(CheckLVS,
			"report %s contains %q", c.RC.LVSReport, lvsFailureMarker)
	}
	return output.Clean(CheckLVS, "no failures reported"), nil
}
