package main

// Behavioral interface for a given invocation of watchstat

import "time"

// watchDirective encapsulates a given invocation: the watch-list, the
// command to run on changes, and every knob from the commandline.
type watchDirective struct {
	watchlist []watchEntry
	argv      []string

	limit       int
	interval    time.Duration
	timeout     time.Duration
	softTimeout time.Duration
	force       bool
	retry       bool
	initialRun  bool
	interp      string
	verbosity   int
}
