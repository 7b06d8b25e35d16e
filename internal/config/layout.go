// internal/config/layout.go
package config

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Layout names every artifact the verifier reads, relative to the flow root.
// Defaults match the sky130 generator tree; a YAML file can override any
// field for non-standard checkouts.
type Layout struct {
	// Report locations.
	ReportsDir    string `yaml:"reports_dir"`
	WorkDRCReport string `yaml:"work_drc_report"`
	WorkLVSReport string `yaml:"work_lvs_report"`
	CryoSubdir    string `yaml:"cryo_subdir"`

	// Generated-file manifests.
	LdoManifest     string `yaml:"ldo_manifest"`
	DefaultManifest string `yaml:"default_manifest"`

	// Fixtures checked by exact line equality.
	LdoDRCFixture    string `yaml:"ldo_drc_fixture"`
	SimResultFixture string `yaml:"sim_result_fixture"`

	// Simulation artifacts (temp-sense mode only).
	SimResultFile   string `yaml:"sim_result_file"`
	SimStateFile    string `yaml:"sim_state_file"`
	SimRunsDir      string `yaml:"sim_runs_dir"`
	SimParamPattern string `yaml:"sim_param_pattern"`
	SimLogPattern   string `yaml:"sim_log_pattern"`
	SimSpicePattern string `yaml:"sim_spice_pattern"`

	// Expected simulator banner substring. A mismatch downgrades the
	// result-fixture comparison to a warning.
	NgspiceVersion string `yaml:"ngspice_version"`

	// A clean DRC report is a short boilerplate header; anything longer
	// encodes a violation.
	MaxCleanDRCLines int `yaml:"max_clean_drc_lines"`
}

// Default returns the layout of an untouched generator checkout.
func Default() Layout {
	return Layout{
		ReportsDir:    "flow/reports",
		WorkDRCReport: "work/6_final_drc.rpt",
		WorkLVSReport: "work/6_final_lvs.rpt",
		CryoSubdir:    "cryo",

		LdoManifest:     "spec.json",
		DefaultManifest: "test.json",

		LdoDRCFixture:    "fixtures/ldo_drc_expected.rpt",
		SimResultFixture: "fixtures/temp_sim_expected.txt",

		SimResultFile:   "work/sim_result.txt",
		SimStateFile:    "work/sim_state.json",
		SimRunsDir:      "simulations/run",
		SimParamPattern: "parameters_%d.txt",
		SimLogPattern:   "sim_%d.log",
		SimSpicePattern: "sim_%d.sp",

		NgspiceVersion: "ngspice-40",

		MaxCleanDRCLines: 3,
	}
}

// Load returns the default layout overlaid with the YAML file at path.
// An empty path selects the defaults unchanged.
func Load(path string) (Layout, error) {
	lay := Default()
	if path == "" {
		return lay, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return lay, errors.Wrap(err, "open layout config")
	}
	defer func() { _ = f.Close() }()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&lay); err != nil && err != io.EOF {
		return lay, errors.Wrapf(err, "parse layout config %s", path)
	}
	if err := lay.Validate(); err != nil {
		return lay, errors.Wrapf(err, "invalid layout config %s", path)
	}
	return lay, nil
}

// Validate rejects layouts that would make the checks meaningless.
func (l Layout) Validate() error {
	paths := map[string]string{
		"reports_dir":        l.ReportsDir,
		"work_drc_report":    l.WorkDRCReport,
		"work_lvs_report":    l.WorkLVSReport,
		"ldo_manifest":       l.LdoManifest,
		"default_manifest":   l.DefaultManifest,
		"ldo_drc_fixture":    l.LdoDRCFixture,
		"sim_result_fixture": l.SimResultFixture,
		"sim_result_file":    l.SimResultFile,
		"sim_state_file":     l.SimStateFile,
		"sim_runs_dir":       l.SimRunsDir,
	}
	for name, p := range paths {
		if p == "" {
			return errors.Errorf("%s must not be empty", name)
		}
	}
	for name, pat := range map[string]string{
		"sim_param_pattern": l.SimParamPattern,
		"sim_log_pattern":   l.SimLogPattern,
		"sim_spice_pattern": l.SimSpicePattern,
	} {
		if !strings.Contains(pat, "%d") {
			return errors.Errorf("%s must contain %%d, got %q", name, pat)
		}
	}
	if l.MaxCleanDRCLines < 0 {
		return errors.New("max_clean_drc_lines must be ≥ 0")
	}
	return nil
}
