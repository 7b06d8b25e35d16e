// internal/flow/resolve.go
package flow

import (
	"os"
	"path/filepath"
	"sort"

	"flowcheck/internal/config"

	"github.com/pkg/errors"
)

// RunConfig is the immutable per-invocation configuration. It is built once
// by Resolve and passed to every check; the checks hold no other state about
// the flow tree.
type RunConfig struct {
	Mode        Mode
	CryoLibrary string // set only in Cryo mode
	Root        string
	Layout      config.Layout

	// Absolute-ish paths, resolved against Root.
	DRCReport string
	LVSReport string
	Manifest  string
}

// Resolve determines the run mode from the optional positional argument and
// computes every report path up front. A cryo argument that does not match
// the discovered library fails here rather than at first path use.
func Resolve(root, modeArg string, lay config.Layout) (RunConfig, error) {
	rc := RunConfig{Root: root, Layout: lay}

	switch modeArg {
	case "":
		rc.Mode = TempSense
	case LdoArg:
		rc.Mode = Ldo
	default:
		rc.Mode = Cryo
		lib, err := discoverLibrary(filepath.Join(root, lay.ReportsDir))
		if err != nil {
			return rc, err
		}
		if modeArg != lib {
			return rc, Configf("cryo library %q does not match discovered library %q under %s",
				modeArg, lib, lay.ReportsDir)
		}
		rc.CryoLibrary = lib
	}

	switch rc.Mode {
	case Cryo:
		base := filepath.Join(root, lay.ReportsDir, rc.CryoLibrary, lay.CryoSubdir)
		rc.DRCReport = filepath.Join(base, filepath.Base(lay.WorkDRCReport))
		rc.LVSReport = filepath.Join(base, filepath.Base(lay.WorkLVSReport))
	default:
		rc.DRCReport = filepath.Join(root, lay.WorkDRCReport)
		rc.LVSReport = filepath.Join(root, lay.WorkLVSReport)
	}

	if rc.Mode == Ldo {
		rc.Manifest = filepath.Join(root, lay.LdoManifest)
	} else {
		rc.Manifest = filepath.Join(root, lay.DefaultManifest)
	}
	return rc, nil
}

// discoverLibrary returns the first entry of the reports directory.
func discoverLibrary(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return "", &LookupError{Dir: dir, Msg: "reports directory does not exist"}
	}
	if err != nil {
		return "", errors.Wrapf(err, "list %s", dir)
	}
	if len(entries) == 0 {
		return "", &LookupError{Dir: dir, Msg: "no library found in reports directory"}
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names[0], nil
}
