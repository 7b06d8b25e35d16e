// internal/ngspice/version_test.go
package ngspice

import "testing"

func TestParseBanner(t *testing.T) {
	cases := []struct {
		name string
		out  string
		want string
	}{
		{"plain", "ngspice-40\n", "ngspice-40"},
		{"leading blank", "\n\nngspice compiled from ngspice-40 revision\nmore\n", "ngspice compiled from ngspice-40 revision"},
		{"whitespace", "  ngspice-39  \n", "ngspice-39"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ParseBanner(tc.out); got != tc.want {
				t.Fatalf("ParseBanner(%q) = %q, want %q", tc.out, got, tc.want)
			}
		})
	}
}
