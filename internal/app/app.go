// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"flowcheck/internal/checks"
	"flowcheck/internal/cli"
	"flowcheck/internal/config"
	"flowcheck/internal/flow"
	"flowcheck/internal/logging"
	"flowcheck/internal/output"
	"flowcheck/internal/version"
)

// Exit codes; the CI pipeline keys off these.
const (
	ExitOK           = 0
	ExitVerification = 1 // a check's pass condition failed
	ExitConfig       = 2 // usage, mode/library resolution, bad layout
	ExitInternal     = 3 // I/O or unexpected failure
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("flowcheck")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return flushCode(outw, stderr, ExitOK)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return flushCode(outw, stderr, ExitConfig)
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "flowcheck version %s\n", version.Version)
		return flushCode(outw, stderr, ExitOK)
	}

	log := logging.New(stderr, opts.Verbose, opts.Quiet)
	defer func() { _ = log.Sync() }()

	lay, err := config.Load(opts.ConfigFile)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitConfig
	}
	rc, err := flow.Resolve(opts.FlowRoot, opts.ModeArg, lay)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return exitFor(err)
	}
	log.Debugw("run resolved",
		"mode", rc.Mode.String(), "library", rc.CryoLibrary,
		"drc", rc.DRCReport, "lvs", rc.LVSReport, "manifest", rc.Manifest)

	ck := checks.New(rc, log)
	steps := []func() (output.Result, error){
		ck.DRC,
		ck.LVS,
		ck.GeneratedFiles,
	}
	if rc.Mode == flow.TempSense {
		steps = append(steps, func() (output.Result, error) { return ck.Simulation(parent) })
	}

	results := make([]output.Result, 0, len(steps))
	for _, step := range steps {
		res, err := step()
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			var verr *flow.VerificationError
			if errors.As(err, &verr) && verr.Diff != "" {
				_, _ = fmt.Fprint(stderr, verr.Diff)
			}
			return exitFor(err)
		}
		results = append(results, res)
	}

	if err := output.Write(opts.Output, outw, results); output.IsBrokenPipe(err) {
		return ExitOK
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitInternal
	}
	return flushCode(outw, stderr, ExitOK)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// exitFor maps the error taxonomy onto exit codes.
func exitFor(err error) int {
	var verr *flow.VerificationError
	if errors.As(err, &verr) {
		return ExitVerification
	}
	var cerr *flow.ConfigError
	var lerr *flow.LookupError
	if errors.As(err, &cerr) || errors.As(err, &lerr) {
		return ExitConfig
	}
	return ExitInternal
}

// flushCode flushes the buffered writer, preserving code unless the flush
// itself fails. Broken pipes (downstream `head`) are success.
func flushCode(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); output.IsBrokenPipe(err) {
		return ExitOK
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitInternal
	}
	return code
}
