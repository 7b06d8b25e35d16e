// internal/report/compare.go
package report

import (
	"os"

	"github.com/pkg/errors"
	"github.com/pmezard/go-difflib/difflib"
)

// Compare checks two report files for exact line-sequence equality.
// On mismatch it returns a unified diff suitable for the CI log.
func Compare(gotPath, wantPath string) (equal bool, diff string, err error) {
	got, err := os.ReadFile(gotPath)
	if err != nil {
		return false, "", errors.Wrapf(err, "read report %s", gotPath)
	}
	want, err := os.ReadFile(wantPath)
	if err != nil {
		return false, "", errors.Wrapf(err, "read fixture %s", wantPath)
	}

	gotLines := Split(string(got))
	wantLines := Split(string(want))
	if equalLines(gotLines, wantLines) {
		return true, "", nil
	}

	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(got)),
		B:        difflib.SplitLines(string(want)),
		FromFile: gotPath,
		ToFile:   wantPath,
		Context:  3,
	}
	text, derr := difflib.GetUnifiedDiffString(ud)
	if derr != nil {
		return false, "", errors.Wrap(derr, "render diff")
	}
	return false, text, nil
}

func equalLines(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
