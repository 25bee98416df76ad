package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
)

type exitReason int

const (
	exSuccess     exitReason = 0
	exFailure     exitReason = 1
	exSoftTimeout exitReason = 3
)

// exitCode maps a watch outcome to the process exit status: hard timeout
// and interrupt count as success, soft timeout exits 3, anything else is a
// plain failure reported on stderr.
func exitCode(err error) int {
	switch {
	case err == nil:
		return int(exSuccess)
	case errors.Is(err, errSoftTimeout):
		return int(exSoftTimeout)
	case errors.Is(err, errTimeout), errors.Is(err, context.Canceled):
		return int(exSuccess)
	default:
		fmt.Fprintf(os.Stderr, "%s: %s\n", color.RedString("watchstat"), err)
		return int(exFailure)
	}
}
