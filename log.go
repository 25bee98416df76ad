package main

import (
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
)

// setupLogging installs the stderr logger. Verbosity maps to levels: 0
// warnings only, 1 logs each command invocation, 2+ adds per-field change
// detail and the parsed-directive dump.
func setupLogging(verbosity int) {
	level := log.WarnLevel
	switch {
	case verbosity >= 2:
		level = log.DebugLevel
	case verbosity == 1:
		level = log.InfoLevel
	}

	handler := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "watchstat",
		Level:           level,
	})
	slog.SetDefault(slog.New(handler))
}
