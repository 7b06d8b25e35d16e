// internal/checks/drc.go
package checks

import (
	"fmt"
	"path/filepath"

	"flowcheck/internal/flow"
	"flowcheck/internal/output"
	"flowcheck/internal/report"
)

// DRC verifies the design-rule-check report. The LDO generator's report is
// compared line-for-line against a fixture; every other mode's clean report
// is a short boilerplate header, so any extra line encodes a violation.
func (c *Checker) DRC() (output.Result, error) {
	if c.RC.Mode == flow.Ldo {
		fixture := filepath.Join(c.RC.Root, c.RC.Layout.LdoDRCFixture)
		equal, diff, err := report.Compare(c.RC.DRCReport, fixture)
		if err != nil {
			return output.Result{}, err
		}
		if !equal {
			return output.Result{}, &flow.VerificationError{
				Check: CheckDRC,
				Msg:   fmt.Sprintf("report %s does not match expected %s", c.RC.DRCReport, fixture),
				Diff:  diff,
			}
		}
		c.Log.Debugw("drc report matches fixture", "report", c.RC.DRCReport)
		return output.Clean(CheckDRC, "report matches expected"), nil
	}

	lines, err := report.Lines(c.RC.DRCReport)
	if err != nil {
		return output.Result{}, err
	}
	max := c.RC.Layout.MaxCleanDRCLines
	c.Log.Debugw("drc report read", "report", c.RC.DRCReport, "lines", len(lines))
	if len(lines) > max {
		return output.Result{}, flow.Verifyf(CheckDRC,
			"report %s has %d lines (max %d for a clean run)", c.RC.DRCReport, len(lines), max)
	}
	return output.Clean(CheckDRC, fmt.Sprintf("%d lines", len(lines))), nil
}
