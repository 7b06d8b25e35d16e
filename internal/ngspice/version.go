// internal/ngspice/version.go
package ngspice

import (
	"context"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

// Probe runs `ngspice --version` and returns the banner line identifying
// the installed simulator.
func Probe(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, "ngspice", "--version").Output()
	if err != nil {
		return "", errors.Wrap(err, "probe ngspice version")
	}
	return ParseBanner(string(out)), nil
}

// ParseBanner extracts the version banner from `ngspice --version` output:
// the first non-empty line, trimmed.
func ParseBanner(out string) string {
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			return line
		}
	}
	return ""
}
