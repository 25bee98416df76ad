package main

// Token interpolation for command arguments under -I.

import (
	"errors"
	"fmt"
	"strings"
)

// errMismatchedDelim reports an odd number of delimiter occurrences in an
// argument.
var errMismatchedDelim = errors.New("mismatched interpolation delimiter")

// badKeyError is an interpolation token whose key is neither a stat field
// nor an extra substitution key.
type badKeyError struct {
	key string
}

func (e *badKeyError) Error() string {
	return fmt.Sprintf("unknown stat key %q", e.key)
}

// token is one DELIM|key|DELIM occurrence in an argument string. A
// zero-length key marks a repeated delimiter; it substitutes nothing and
// is dropped from the output.
type token struct {
	offset int // offset of the opening delimiter
	key    string
}

// findTokens scans s left to right for DELIM|key|DELIM tokens. After a
// token closes, scanning resumes past its end, so tokens never overlap.
// An opening delimiter with no closing partner fails the whole scan.
func findTokens(s, delim string) ([]token, error) {
	var tokens []token
	dlen := len(delim)

	open := strings.Index(s, delim)
	for open >= 0 {
		keyStart := open + dlen
		end := strings.Index(s[keyStart:], delim)
		if end < 0 {
			return nil, errMismatchedDelim
		}
		keyEnd := keyStart + end
		tokens = append(tokens, token{offset: open, key: s[keyStart:keyEnd]})

		next := strings.Index(s[keyEnd+dlen:], delim)
		if next < 0 {
			break
		}
		open = keyEnd + dlen + next
	}
	return tokens, nil
}

// interpolateArgument substitutes every DELIM|key|DELIM token in s: keys
// naming a stat field resolve to that field's value from st, anything else
// is looked up case-insensitively in extra. Text outside tokens is copied
// verbatim.
func interpolateArgument(s, delim string, st *snapshot, extra map[string]string) (string, error) {
	tokens, err := findTokens(s, delim)
	if err != nil {
		return "", err
	}

	var interp strings.Builder
	last := 0
	for _, tok := range tokens {
		interp.WriteString(s[last:tok.offset])
		last = tok.offset + len(tok.key) + 2*len(delim)

		if tok.key == "" {
			continue
		}
		if f, ok := lookupField(tok.key); ok {
			interp.WriteString(st.text(f))
		} else if v, ok := extra[strings.ToLower(tok.key)]; ok {
			interp.WriteString(v)
		} else {
			return "", &badKeyError{key: tok.key}
		}
	}
	interp.WriteString(s[last:])
	return interp.String(), nil
}

// interpolateArgv interpolates every argument but the command name itself;
// argv[0] passes through untouched. Any bad argument fails the whole
// vector.
func interpolateArgv(argv []string, delim string, st *snapshot, extra map[string]string) ([]string, error) {
	out := make([]string, len(argv))
	out[0] = argv[0]
	for i, arg := range argv[1:] {
		interp, err := interpolateArgument(arg, delim, st, extra)
		if err != nil {
			return nil, fmt.Errorf("arg %d: %w", i+1, err)
		}
		out[i+1] = interp
	}
	return out, nil
}
