// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"flowcheck/internal/cliutil"
	"flowcheck/internal/flow"
	"flowcheck/internal/output"
	"flowcheck/internal/version"
)

// Options holds all CLI flags and the optional mode argument.
type Options struct {
	// Environment
	FlowRoot   string
	ConfigFile string

	// Positional: "" (temp-sense), the LDO literal, or a cryo library name.
	ModeArg string

	// Output
	Output  string
	Quiet   bool
	Verbose bool

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: report verification gate for analog generator flows

Checks the DRC and LVS reports, the generated-file manifest, and (in
temp-sense mode) the simulation results of a generator run, and exits
non-zero on the first failure.

Version: %s

Usage: %s [options] [%s | <cryo-library>]
`, name, version.Version, name, flow.LdoArg)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.FlowRoot, "flow-root", ".", "root of the generator flow tree [.]")
	fs.StringVar(&opt.ConfigFile, "config", "", "YAML layout override file [none]")
	fs.StringVar(&opt.Output, "output", "text", "result format: text | json [text]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Verbose, "verbose", false, "debug logging to stderr [false]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	switch len(posArgs) {
	case 0:
	case 1:
		opt.ModeArg = posArgs[0]
	default:
		return opt, fmt.Errorf("at most one mode argument expected, got %d", len(posArgs))
	}

	// Validation
	if opt.FlowRoot == "" {
		return opt, errors.New("--flow-root must not be empty")
	}
	if !output.Known(opt.Output) {
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	return opt, nil
}
