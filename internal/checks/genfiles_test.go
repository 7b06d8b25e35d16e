// internal/checks/genfiles_test.go
package checks

import (
	"testing"

	"flowcheck/internal/flow"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratedFilesAllPresent(t *testing.T) {
	root := t.TempDir()
	write(t, root, "test.json", `{"required":["out/chip.gds","out/chip.lef"]}`)
	write(t, root, "out/chip.gds", "x")
	write(t, root, "out/chip.lef", "x")
	ck := testChecker(t, root, "")

	res, err := ck.GeneratedFiles()
	require.NoError(t, err)
	assert.Equal(t, CheckGenFiles, res.Check)
	assert.Contains(t, res.Detail, "2 files")
}

func TestGeneratedFilesMissingAborts(t *testing.T) {
	root := t.TempDir()
	write(t, root, "test.json", `{"required":["out/chip.gds","out/chip.lef"]}`)
	write(t, root, "out/chip.gds", "x")
	ck := testChecker(t, root, "")

	_, err := ck.GeneratedFiles()
	var verr *flow.VerificationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Msg, "out/chip.lef")
}

func TestGeneratedFilesLdoUsesSpecManifest(t *testing.T) {
	root := t.TempDir()
	write(t, root, "spec.json", `{"required":["ldo.gds"]}`)
	write(t, root, "ldo.gds", "x")
	ck := testChecker(t, root, flow.LdoArg)

	_, err := ck.GeneratedFiles()
	require.NoError(t, err)
}

func TestGeneratedFilesCryoExpandsLibrary(t *testing.T) {
	root := cryoTree(t, "mylib")
	write(t, root, "test.json", `{"required":[],"cryo_required":["flow/{library}/chip.v"]}`)
	write(t, root, "flow/mylib/chip.v", "x")
	ck := testChecker(t, root, "mylib")

	_, err := ck.GeneratedFiles()
	require.NoError(t, err)
}

func TestGeneratedFilesMissingManifest(t *testing.T) {
	ck := testChecker(t, t.TempDir(), "")
	_, err := ck.GeneratedFiles()
	require.Error(t, err)
}
