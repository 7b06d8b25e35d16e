// internal/manifest/manifest.go
package manifest

import (
	"os"
	"path/filepath"
	"strings"

	"flowcheck/internal/jsonutil"
)

// libraryPlaceholder is expanded in cryo_required entries.
const libraryPlaceholder = "{library}"

// Manifest lists the files a generator run must have produced. Paths are
// relative to the flow root. Entries under cryo_required may reference the
// discovered cryo library via "{library}".
type Manifest struct {
	Required     []string `json:"required"`
	CryoRequired []string `json:"cryo_required,omitempty"`
}

// Load reads a manifest JSON file.
func Load(path string) (Manifest, error) {
	var m Manifest
	if err := jsonutil.LoadFile(path, &m); err != nil {
		return m, err
	}
	return m, nil
}

// Missing returns the manifest entries whose files do not exist under root.
// library expands the "{library}" placeholder and is required only when the
// manifest carries cryo entries.
func (m Manifest) Missing(root, library string) []string {
	var missing []string
	for _, rel := range m.Required {
		if !exists(filepath.Join(root, rel)) {
			missing = append(missing, rel)
		}
	}
	for _, rel := range m.CryoRequired {
		expanded := strings.ReplaceAll(rel, libraryPlaceholder, library)
		if !exists(filepath.Join(root, expanded)) {
			missing = append(missing, expanded)
		}
	}
	return missing
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
