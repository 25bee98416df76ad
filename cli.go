package main

import (
	"errors"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
)

// cliOptions collects raw flag values before they are cooked into a
// watchDirective.
type cliOptions struct {
	fieldPaths [numFields][]string

	limit          int
	limitChanged   bool
	intervalMs     int
	timeoutSec     int
	softTimeoutSec int
	force          bool
	retry          bool
	initialRun     bool
	interp         string
	verbosity      int
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	cmd := &cobra.Command{
		Use:           "watchstat [flags] COMMAND [ARG...]",
		Short:         "Execute a command whenever a file's status changes",
		Long:          longHelp(),
		Version:       version,
		Args:          cobra.MinimumNArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.limitChanged = cmd.Flags().Changed("limit")
			run, err := buildDirective(opts, args)
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true
			return run.execute(cmd.Context())
		},
	}

	flags := cmd.Flags()
	// Flag parsing ends at COMMAND, so its own flags pass through without
	// needing a -- separator.
	flags.SetInterspersed(false)
	for f := field(0); f < numFields; f++ {
		spec := fieldSpecs[f]
		flags.StringArrayVarP(&opts.fieldPaths[f], spec.long, spec.short, nil,
			"Watch PATH for "+spec.desc)
	}

	flags.BoolVarP(&opts.initialRun, "initial-run", "0", false,
		"Run the command once per watched path after the first stat; does not count towards -l")
	flags.IntVarP(&opts.limit, "limit", "l", 1,
		"Limit to N runs of the command; 0 means no limit")
	flags.IntVarP(&opts.intervalMs, "interval", "t", 1000,
		"Poll the status every N milliseconds")
	flags.IntVar(&opts.timeoutSec, "timeout", 0,
		"Exit (code 0) after N seconds")
	flags.IntVar(&opts.softTimeoutSec, "softtimeout", 0,
		"Exit (code 3) after N seconds if the command has not been run")
	flags.BoolVarP(&opts.force, "force", "f", false,
		"Keep watching even if the command fails; implies -r and -l0")
	flags.BoolVarP(&opts.retry, "retry", "r", false,
		"Keep watching even if a path does not exist yet")
	flags.StringVarP(&opts.interp, "interp", "I", "",
		"Interpolate DELIM|X|DELIM in command args from stat values")
	flags.CountVarP(&opts.verbosity, "verbose", "v",
		"Echo to stderr whenever the trigger is hit; repeatable")

	return cmd
}

// buildDirective cooks flag values into a runnable directive, applying the
// force/limit interplay and canonicalizing watched paths so the same file
// named two ways coalesces into one entry.
func buildDirective(opts *cliOptions, args []string) (*watchDirective, error) {
	run := &watchDirective{
		argv:        args,
		limit:       opts.limit,
		interval:    time.Duration(opts.intervalMs) * time.Millisecond,
		timeout:     time.Duration(opts.timeoutSec) * time.Second,
		softTimeout: time.Duration(opts.softTimeoutSec) * time.Second,
		force:       opts.force,
		retry:       opts.retry,
		initialRun:  opts.initialRun,
		interp:      opts.interp,
		verbosity:   opts.verbosity,
	}

	if run.force {
		run.retry = true
		if !opts.limitChanged {
			run.limit = 0
		}
	}

	index := make(map[string]int)
	for f := field(0); f < numFields; f++ {
		for _, path := range opts.fieldPaths[f] {
			canonical := realPath(path)
			i, ok := index[canonical]
			if !ok {
				i = len(run.watchlist)
				index[canonical] = i
				run.watchlist = append(run.watchlist, watchEntry{path: canonical})
			}
			run.watchlist[i].fields = run.watchlist[i].fields.with(f)
		}
	}
	if len(run.watchlist) == 0 {
		return nil, errors.New("no paths to watch")
	}

	return run, nil
}

// realPath resolves path to an absolute, symlink-free form. A path that
// does not exist yet (-r) keeps its absolute form.
func realPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return abs
}
