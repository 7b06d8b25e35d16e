// internal/checks/checker.go
package checks

import (
	"context"

	"flowcheck/internal/flow"
	"flowcheck/internal/ngspice"

	"go.uber.org/zap"
)

// Check names used in results and error messages.
const (
	CheckDRC      = "DRC"
	CheckLVS      = "LVS"
	CheckGenFiles = "generated files"
	CheckSim      = "simulation"
)

// VersionProbe reports the installed simulator banner.
type VersionProbe func(ctx context.Context) (string, error)

// Checker runs the verification checks against one resolved run
// configuration. Checks are sequential and fail-fast; the first error
// aborts the run.
type Checker struct {
	RC    flow.RunConfig
	Log   *zap.SugaredLogger
	Probe VersionProbe
}

// New returns a Checker with the real ngspice probe.
func New(rc flow.RunConfig, log *zap.SugaredLogger) *Checker {
	return &Checker{RC: rc, Log: log, Probe: ngspice.Probe}
}
