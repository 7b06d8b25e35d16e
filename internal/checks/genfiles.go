// internal/checks/genfiles.go
package checks

import (
	"fmt"
	"strings"

	"flowcheck/internal/flow"
	"flowcheck/internal/manifest"
	"flowcheck/internal/output"
)

// GeneratedFiles verifies that every file the mode's manifest lists was
// produced by the generator run. A missing file aborts the run; the
// upstream flow treated this as advisory, which let CI go green on a
// failing check.
func (c *Checker) GeneratedFiles() (output.Result, error) {
	m, err := manifest.Load(c.RC.Manifest)
	if err != nil {
		return output.Result{}, err
	}
	total := len(m.Required) + len(m.CryoRequired)
	c.Log.Debugw("manifest loaded", "path", c.RC.Manifest, "entries", total)

	missing := m.Missing(c.RC.Root, c.RC.CryoLibrary)
	if len(missing) > 0 {
		return output.Result{}, flow.Verifyf(CheckGenFiles,
			"%d of %d files missing: %s", len(missing), total, strings.Join(missing, ", "))
	}
	return output.Clean(CheckGenFiles, fmt.Sprintf("%d files present", total)), nil
}
