// internal/checks/sim.go
package checks

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"flowcheck/internal/flow"
	"flowcheck/internal/jsonutil"
	"flowcheck/internal/output"
	"flowcheck/internal/report"

	"github.com/pkg/errors"
)

// SimState is the sentinel the simulation harness writes when it finishes.
type SimState struct {
	FailedSims    int `json:"failed_sims"`
	CompletedSims int `json:"completed_sims"`
}

// Simulation verifies the temp-sense simulation results: the result file
// against its fixture (only when the pinned ngspice version is installed),
// the failure count in the sentinel, and the parameter/log/spice triple of
// every completed run.
func (c *Checker) Simulation(ctx context.Context) (output.Result, error) {
	if err := c.simResult(ctx); err != nil {
		return output.Result{}, err
	}

	var state SimState
	statePath := filepath.Join(c.RC.Root, c.RC.Layout.SimStateFile)
	if err := jsonutil.LoadFile(statePath, &state); err != nil {
		return output.Result{}, err
	}
	if state.FailedSims > 0 {
		return output.Result{}, flow.Verifyf(CheckSim,
			"%d of %d simulations failed", state.FailedSims, state.FailedSims+state.CompletedSims)
	}

	runDir, err := c.runDir()
	if err != nil {
		return output.Result{}, err
	}
	for i := 1; i <= state.CompletedSims; i++ {
		for _, pat := range []string{
			c.RC.Layout.SimParamPattern,
			c.RC.Layout.SimLogPattern,
			c.RC.Layout.SimSpicePattern,
		} {
			name := fmt.Sprintf(pat, i)
			if _, err := os.Stat(filepath.Join(runDir, name)); err != nil {
				return output.Result{}, flow.Verifyf(CheckSim,
					"run %d is missing %s under %s", i, name, runDir)
			}
		}
	}
	c.Log.Debugw("simulation runs verified", "dir", runDir, "completed", state.CompletedSims)
	return output.Clean(CheckSim, fmt.Sprintf("%d runs verified", state.CompletedSims)), nil
}

// simResult compares the simulation result file against its fixture. The
// comparison only binds when the installed ngspice matches the pinned
// version; otherwise results may legitimately drift, so we just warn.
func (c *Checker) simResult(ctx context.Context) error {
	banner, err := c.Probe(ctx)
	if err != nil {
		c.Log.Warnf("ngspice probe failed, skipping result comparison: %v", err)
		return nil
	}
	want := c.RC.Layout.NgspiceVersion
	if !strings.Contains(banner, want) {
		c.Log.Warnf("installed simulator %q does not match pinned %q, skipping result comparison",
			banner, want)
		return nil
	}

	got := filepath.Join(c.RC.Root, c.RC.Layout.SimResultFile)
	fixture := filepath.Join(c.RC.Root, c.RC.Layout.SimResultFixture)
	equal, diff, err := report.Compare(got, fixture)
	if err != nil {
		return err
	}
	if !equal {
		return &flow.VerificationError{
			Check: CheckSim,
			Msg:   fmt.Sprintf("result %s does not match expected %s", got, fixture),
			Diff:  diff,
		}
	}
	return nil
}

// runDir resolves the directory holding per-run files. The harness writes
// exactly one run directory per CI invocation; anything else is a layout
// problem we refuse to guess around.
func (c *Checker) runDir() (string, error) {
	base := filepath.Join(c.RC.Root, c.RC.Layout.SimRunsDir)
	entries, err := os.ReadDir(base)
	if os.IsNotExist(err) {
		return "", &flow.LookupError{Dir: base, Msg: "simulation runs directory does not exist"}
	}
	if err != nil {
		return "", errors.Wrapf(err, "list %s", base)
	}

	var dirs []string
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, e.Name())
		}
	}
	switch len(dirs) {
	case 0:
		return "", &flow.LookupError{Dir: base, Msg: "no run directory found"}
	case 1:
		return filepath.Join(base, dirs[0]), nil
	default:
		return "", flow.Configf("expected one run directory under %s, found %d: %s",
			base, len(dirs), strings.Join(dirs, ", "))
	}
}
