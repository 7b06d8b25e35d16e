// internal/checks/checks_test.go
package checks

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"flowcheck/internal/config"
	"flowcheck/internal/flow"
	"flowcheck/internal/logging"

	"github.com/stretchr/testify/require"
)

// write places a file under root, creating parents.
func write(t *testing.T, root, rel, data string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
}

// testChecker resolves a RunConfig over root and wires a probe that always
// reports the pinned simulator version.
func testChecker(t *testing.T, root, modeArg string) *Checker {
	t.Helper()
	rc, err := flow.Resolve(root, modeArg, config.Default())
	require.NoError(t, err)
	return &Checker{
		RC:  rc,
		Log: logging.Nop(),
		Probe: func(context.Context) (string, error) {
			return config.Default().NgspiceVersion, nil
		},
	}
}

func removeFile(root, rel string) error { return os.Remove(filepath.Join(root, rel)) }

func removeAll(root, rel string) error { return os.RemoveAll(filepath.Join(root, rel)) }

// cryoTree prepares a flow tree with one discovered cryo library.
func cryoTree(t *testing.T, lib string) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "flow/reports", lib, "cryo"), 0o755))
	return root
}
