package main

import (
	"context"
	"log/slog"
	"os"
)

func main() {
	ctx, stop := notifyInterrupt()
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(exitCode(err))
	}
}

// execute runs one parsed directive to completion.
func (run *watchDirective) execute(ctx context.Context) error {
	setupLogging(run.verbosity)
	slog.Debug("parsed directive:" + run.debugStr())

	if run.initialRun {
		decision, err := run.runInitial()
		if err != nil {
			return err
		}
		if decision == runStop {
			return nil
		}
	}

	ncalls, err := watchStat(ctx, run.watchlist, run.commandCallback, watchOptions{
		interval:    run.interval,
		limit:       run.limit,
		retry:       run.retry,
		softTimeout: run.softTimeout,
		timeout:     run.timeout,
	})
	if err != nil {
		return err
	}

	slog.Info("watch finished", "runs", ncalls)
	return nil
}
