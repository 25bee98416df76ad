package main

import (
	"fmt"
	"strings"
)

func (run *watchDirective) debugStr() string {
	entries := make([]string, 0, len(run.watchlist))
	for _, ent := range run.watchlist {
		fields := ent.fields
		if fields.empty() {
			fields = fieldSet(0).with(fieldMtime)
		}
		entries = append(entries, fmt.Sprintf("%s [%s]", ent.path, fields))
	}

	return fmt.Sprintf(`
  run.argv:         %s
  run.watchlist:    [%s]
  run.limit:        %d
  run.interval:     %v
  run.timeout:      %v (soft: %v)
  run.force:        %t (retry: %t)
  run.interp:       %q
  run.initialRun:   %t
  `, quoteArgv(run.argv),
		strings.Join(entries, ", "),
		run.limit,
		run.interval,
		run.timeout, run.softTimeout,
		run.force, run.retry,
		run.interp,
		run.initialRun)
}
