package main

import (
	"context"
	"errors"
	"time"
)

// Distinguished watch outcomes. errTimeout means the wall-clock budget ran
// out; errSoftTimeout means it ran out before the callback ever fired.
var (
	errTimeout     = errors.New("watch timed out")
	errSoftTimeout = errors.New("watch timed out before any trigger")
)

// runDecision is a callback's verdict on whether the watch keeps going.
type runDecision int

const (
	runContinue runDecision = iota
	runStop
)

func (d runDecision) String() string {
	switch d {
	case runContinue:
		return "continue"
	case runStop:
		return "stop"
	default:
		return "unknown"
	}
}

// watchEntry pairs a path with the stat fields being watched on it. An
// empty field set means mtime.
type watchEntry struct {
	path   string
	fields fieldSet
}

// watchCallback is invoked once per detected change with the fields that
// differ and the snapshots either side of the change. last is nil when the
// path just (re)appeared; in that case diff covers the entry's whole field
// set. Returning runStop ends the watch; a non-nil error aborts it.
type watchCallback func(path string, diff fieldSet, last, next *snapshot) (runDecision, error)

type watchOptions struct {
	interval    time.Duration // poll period; one second when zero
	limit       int           // max callback invocations; <=0 means unlimited
	retry       bool          // tolerate paths that do not exist (yet)
	softTimeout time.Duration // give up if nothing triggered within this; 0 disabled
	timeout     time.Duration // absolute wall-clock budget; 0 disabled
}

// watchStat polls every entry's stat metadata once per interval and hands
// detected diffs to cb, one path at a time on a single goroutine. It
// returns the number of callback invocations made, with errSoftTimeout or
// errTimeout when a deadline ended the watch. Cancelling ctx unwinds the
// current sleep and returns ctx.Err().
func watchStat(ctx context.Context, watchlist []watchEntry, cb watchCallback, opt watchOptions) (int, error) {
	interval := opt.interval
	if interval <= 0 {
		interval = time.Second
	}

	now := time.Now()
	var softDeadline, hardDeadline time.Time
	if opt.softTimeout > 0 {
		softDeadline = now.Add(opt.softTimeout)
	}
	if opt.timeout > 0 {
		hardDeadline = now.Add(opt.timeout)
	}

	// One baseline snapshot per path. A path missing here is only
	// tolerated under retry; takeSnapshot fails otherwise.
	last := make(map[string]*snapshot, len(watchlist))
	for _, ent := range watchlist {
		st, err := takeSnapshot(ent.path, opt.retry)
		if err != nil {
			return 0, err
		}
		last[ent.path] = st
	}

	ncalls := 0
	for (opt.limit <= 0 || ncalls < opt.limit) &&
		(ncalls > 0 || !reached(now, softDeadline)) &&
		!reached(now, hardDeadline) {

		if err := sleepOneInterval(ctx, now, interval, softDeadline, hardDeadline); err != nil {
			return ncalls, err
		}
		now = time.Now()
		if (ncalls == 0 && reached(now, softDeadline)) || reached(now, hardDeadline) {
			break
		}

		stop := false
		for _, ent := range watchlist {
			fields := ent.fields
			if fields.empty() {
				fields = fieldSet(0).with(fieldMtime)
			}

			next, err := takeSnapshot(ent.path, opt.retry)
			if err != nil {
				return ncalls, err
			}
			prev := last[ent.path]
			// Record the fresh state even when the path vanished, so a
			// disappear-and-reappear reads as newly created.
			last[ent.path] = next

			if next != nil {
				diff := fields
				if prev != nil {
					diff = diffFields(prev, next, fields)
				}
				if !diff.empty() {
					ncalls++
					decision, cbErr := cb(ent.path, diff, prev, next)
					if cbErr != nil {
						return ncalls, cbErr
					}
					if decision == runStop {
						stop = true
					}
				}
			}

			now = time.Now()
			if (opt.limit > 0 && ncalls >= opt.limit) ||
				(ncalls == 0 && reached(now, softDeadline)) ||
				reached(now, hardDeadline) {
				stop = true
			}
			if stop {
				break
			}
		}
		if stop {
			break
		}
		now = time.Now()
	}

	if ncalls == 0 && reached(now, softDeadline) {
		return ncalls, errSoftTimeout
	}
	if reached(now, hardDeadline) {
		return ncalls, errTimeout
	}
	return ncalls, nil
}

// reached reports whether now has hit a deadline. The zero deadline means
// disabled and is never reached.
func reached(now, deadline time.Time) bool {
	return !deadline.IsZero() && !now.Before(deadline)
}

// sleepOneInterval waits one poll period, clamped so neither deadline is
// overshot by more than this cycle's wait. Cancellation wins over time.
func sleepOneInterval(ctx context.Context, now time.Time, interval time.Duration, soft, hard time.Time) error {
	wait := interval
	if !soft.IsZero() {
		if d := soft.Sub(now); d < wait {
			wait = d
		}
	}
	if !hard.IsZero() {
		if d := hard.Sub(now); d < wait {
			wait = d
		}
	}
	if wait < 0 {
		wait = 0
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
