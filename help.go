package main

const version string = "v1.0.0"

func longHelp() string {
	return `Executes COMMAND whenever the stat metadata of a watched path changes.

Watched paths are named with the status-field flags below (-m PATH watches
PATH's modification time, -s PATH its size, and so on). Flags repeat and
combine: naming the same path under several fields watches all of them at
once. If no field is selected for a path, the default is to watch mtime.

The status is polled; nothing is ever missed by event-queue overflows, but
changes are only seen at -t granularity. COMMAND runs with watchstat's
stdin/stdout/stderr. A COMMAND that exits nonzero ends the watch unless -f
is given.

With -I DELIM, arguments after COMMAND are interpolated: DELIM|X|DELIM is
replaced by the triggering file's stat value for X, where X is a short or
long field name from the flags below, or the keyword 'path' for the (real)
path of the triggering file. Repeated delimiters with nothing between them
are dropped. For example:

  watchstat -m build.log -I % -- echo changed %path% at %mtime%

Exit status is 0 on a normal or --timeout exit, 3 on --softtimeout.`
}
