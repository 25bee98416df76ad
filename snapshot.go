package main

import (
	"io/fs"
	"strconv"

	"golang.org/x/sys/unix"
)

// snapshot records one path's stat metadata at a single poll instant.
// Timestamps are kept at whole-second granularity, the same values the
// interpolator prints.
type snapshot struct {
	mtime int64
	atime int64
	ctime int64
	dev   uint64
	ino   uint64
	mode  uint32
	nlink uint64
	uid   uint32
	gid   uint32
	size  int64
}

// value returns the given field as a comparable integer.
func (st *snapshot) value(f field) int64 {
	switch f {
	case fieldMtime:
		return st.mtime
	case fieldAtime:
		return st.atime
	case fieldCtime:
		return st.ctime
	case fieldDev:
		return int64(st.dev)
	case fieldIno:
		return int64(st.ino)
	case fieldMode:
		return int64(st.mode)
	case fieldNlink:
		return int64(st.nlink)
	case fieldUID:
		return int64(st.uid)
	case fieldGID:
		return int64(st.gid)
	case fieldSize:
		return st.size
	default:
		panic("unexpected field " + f.String())
	}
}

// text is the field's representation substituted by the interpolator.
func (st *snapshot) text(f field) string {
	return strconv.FormatInt(st.value(f), 10)
}

// takeSnapshot stats path. A missing path yields (nil, nil) when retry is
// set, otherwise a not-found error. Any other stat failure is fatal
// regardless of retry.
func takeSnapshot(path string, retry bool) (*snapshot, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		if err == unix.ENOENT && retry {
			return nil, nil
		}
		return nil, &fs.PathError{Op: "stat", Path: path, Err: err}
	}

	return &snapshot{
		mtime: st.Mtim.Sec,
		atime: st.Atim.Sec,
		ctime: st.Ctim.Sec,
		dev:   uint64(st.Dev),
		ino:   st.Ino,
		mode:  uint32(st.Mode),
		nlink: uint64(st.Nlink),
		uid:   st.Uid,
		gid:   st.Gid,
		size:  st.Size,
	}, nil
}

// diffFields returns the subset of fields whose values differ between two
// snapshots.
func diffFields(last, next *snapshot, fields fieldSet) fieldSet {
	var diff fieldSet
	for _, f := range fields.list() {
		if last.value(f) != next.value(f) {
			diff = diff.with(f)
		}
	}
	return diff
}
