package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// commandCallback runs the directive's command in response to one change.
// A nonzero exit from the command stops the watch; under --force both
// spawn failures and exit status are ignored and the watch keeps going.
func (run *watchDirective) commandCallback(path string, diff fieldSet, last, next *snapshot) (runDecision, error) {
	argv := run.argv
	if run.interp != "" {
		var err error
		argv, err = interpolateArgv(run.argv, run.interp, next, map[string]string{"path": path})
		if err != nil {
			return runStop, fmt.Errorf("interpolating command args: %w", err)
		}
	}

	slog.Info("running "+color.CyanString(quoteArgv(argv)), "path", path)
	for _, f := range diff.list() {
		slog.Debug("stat field changed",
			"field", f.String(),
			"old", fieldText(last, f),
			"new", fieldText(next, f))
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	err := cmd.Run()

	switch {
	case err == nil:
		slog.Info("command succeeded")
		return runContinue, nil
	case run.force:
		slog.Info("ignoring command failure", "error", err)
		return runContinue, nil
	default:
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			slog.Info("command failed, stopping", "code", exitErr.ExitCode())
			return runStop, nil
		}
		return runStop, fmt.Errorf("running %s: %w", argv[0], err)
	}
}

// runInitial fires the callback once per watched path before polling
// starts (-0), with no prior snapshot and an empty diff. These runs do not
// count against --limit. A path still missing under --retry is skipped.
func (run *watchDirective) runInitial() (runDecision, error) {
	for _, ent := range run.watchlist {
		st, err := takeSnapshot(ent.path, run.retry)
		if err != nil {
			return runStop, err
		}
		if st == nil {
			continue
		}

		decision, err := run.commandCallback(ent.path, 0, nil, st)
		if err != nil || decision == runStop {
			return decision, err
		}
	}
	return runContinue, nil
}

// fieldText formats one field for the -vv diff dump; a nil snapshot (path
// previously missing) reads as "absent".
func fieldText(st *snapshot, f field) string {
	if st == nil {
		return "absent"
	}
	return st.text(f)
}

// quoteArgv renders argv for human eyes, quoting only args that need it.
func quoteArgv(argv []string) string {
	quoted := make([]string, len(argv))
	for i, arg := range argv {
		if arg == "" || strings.ContainsAny(arg, " \t\n'\"\\$*?") {
			quoted[i] = strconv.Quote(arg)
		} else {
			quoted[i] = arg
		}
	}
	return strings.Join(quoted, " ")
}
