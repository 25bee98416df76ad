package main

// The fixed table of stat fields a path can be watched for.

import "strings"

type field int

const (
	fieldMtime field = iota
	fieldAtime
	fieldCtime
	fieldDev
	fieldIno
	fieldMode
	fieldNlink
	fieldUID
	fieldGID
	fieldSize
	numFields
)

// fieldSpec describes one watchable stat field as it appears on the
// commandline and in interpolation keys.
type fieldSpec struct {
	short string
	long  string
	desc  string
}

var fieldSpecs = [numFields]fieldSpec{
	fieldMtime: {"m", "mtime", "modification time"},
	fieldAtime: {"a", "atime", "access time"},
	fieldCtime: {"c", "ctime", "status time"},
	fieldDev:   {"d", "dev", "device ID"},
	fieldIno:   {"i", "ino", "inode number"},
	fieldMode:  {"M", "mode", "protection mode"},
	fieldNlink: {"n", "nlink", "number of hard links"},
	fieldUID:   {"u", "uid", "user ID of owner"},
	fieldGID:   {"g", "gid", "group ID of owner"},
	fieldSize:  {"s", "size", "total size"},
}

func (f field) String() string {
	return fieldSpecs[f].long
}

// lookupField resolves a commandline or interpolation key to a field.
// Short names match exactly ("m" is mtime, "M" is mode); long names match
// case-insensitively.
func lookupField(key string) (field, bool) {
	for f, spec := range fieldSpecs {
		if key == spec.short {
			return field(f), true
		}
	}
	lower := strings.ToLower(key)
	for f, spec := range fieldSpecs {
		if lower == spec.long {
			return field(f), true
		}
	}
	return 0, false
}

// fieldSet is a set of stat fields, one bit per field.
type fieldSet uint16

func (s fieldSet) has(f field) bool {
	return s&(1<<f) != 0
}

func (s fieldSet) with(f field) fieldSet {
	return s | 1<<f
}

func (s fieldSet) empty() bool {
	return s == 0
}

// list returns the member fields in table order.
func (s fieldSet) list() []field {
	var fields []field
	for f := field(0); f < numFields; f++ {
		if s.has(f) {
			fields = append(fields, f)
		}
	}
	return fields
}

func (s fieldSet) String() string {
	names := make([]string, 0, numFields)
	for _, f := range s.list() {
		names = append(names, f.String())
	}
	return strings.Join(names, ",")
}
