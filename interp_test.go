package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func interpFixture() *snapshot {
	return &snapshot{
		mtime: 1700000000,
		atime: 1700000001,
		ctime: 1700000002,
		dev:   64768,
		ino:   131587,
		mode:  33188,
		nlink: 1,
		uid:   1000,
		gid:   1000,
		size:  4096,
	}
}

func TestInterpolateArgument_NoDelimiterIsIdentity(t *testing.T) {
	for _, s := range []string{"", "hello world", "no tokens here!"} {
		out, err := interpolateArgument(s, "%", interpFixture(), nil)
		require.NoError(t, err)
		assert.Equal(t, s, out)
	}
}

func TestInterpolateArgument_SubstitutesFieldValues(t *testing.T) {
	out, err := interpolateArgument("%size%", "%", interpFixture(), nil)
	require.NoError(t, err)
	assert.Equal(t, "4096", out)

	out, err = interpolateArgument("size=%size%, uid=%u%!", "%", interpFixture(), nil)
	require.NoError(t, err)
	assert.Equal(t, "size=4096, uid=1000!", out)
}

func TestInterpolateArgument_ShortKeysAreCaseSensitive(t *testing.T) {
	st := interpFixture()

	out, err := interpolateArgument("%m%", "%", st, nil)
	require.NoError(t, err)
	assert.Equal(t, "1700000000", out, "m is mtime")

	out, err = interpolateArgument("%M%", "%", st, nil)
	require.NoError(t, err)
	assert.Equal(t, "33188", out, "M is mode")
}

func TestInterpolateArgument_LongKeysAreCaseInsensitive(t *testing.T) {
	out, err := interpolateArgument("%MTIME%", "%", interpFixture(), nil)
	require.NoError(t, err)
	assert.Equal(t, "1700000000", out)
}

func TestInterpolateArgument_RepeatedDelimiterIsDropped(t *testing.T) {
	out, err := interpolateArgument("100%%done", "%", interpFixture(), nil)
	require.NoError(t, err)
	assert.Equal(t, "100done", out)

	out, err = interpolateArgument("%%", "%", interpFixture(), nil)
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestInterpolateArgument_AdjacentTokens(t *testing.T) {
	// Scanning resumes after a token's closing delimiter, so back-to-back
	// tokens do not swallow each other.
	out, err := interpolateArgument("%m%%s%", "%", interpFixture(), nil)
	require.NoError(t, err)
	assert.Equal(t, "17000000004096", out)
}

func TestInterpolateArgument_MismatchedDelimiterFails(t *testing.T) {
	_, err := interpolateArgument("50%", "%", interpFixture(), nil)
	require.ErrorIs(t, err, errMismatchedDelim)

	_, err = interpolateArgument("%m%m%", "%", interpFixture(), nil)
	require.ErrorIs(t, err, errMismatchedDelim)
}

func TestInterpolateArgument_UnknownKeyFails(t *testing.T) {
	_, err := interpolateArgument("%bogus%", "%", interpFixture(), nil)
	require.Error(t, err)

	var keyErr *badKeyError
	require.ErrorAs(t, err, &keyErr)
	assert.Equal(t, "bogus", keyErr.key)
	assert.ErrorContains(t, err, "bogus")
}

func TestInterpolateArgument_ExtraKeys(t *testing.T) {
	extra := map[string]string{"path": "/tmp/watched"}

	out, err := interpolateArgument("changed: %path%", "%", interpFixture(), extra)
	require.NoError(t, err)
	assert.Equal(t, "changed: /tmp/watched", out)

	// Extra keys are matched case-insensitively too.
	out, err = interpolateArgument("%PATH%", "%", interpFixture(), extra)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/watched", out)
}

func TestInterpolateArgument_MultiCharDelimiter(t *testing.T) {
	out, err := interpolateArgument("a ::size:: b", "::", interpFixture(), nil)
	require.NoError(t, err)
	assert.Equal(t, "a 4096 b", out)
}

func TestInterpolateArgv_CommandNameNeverInterpolated(t *testing.T) {
	argv, err := interpolateArgv([]string{"%size%", "%size%"}, "%", interpFixture(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"%size%", "4096"}, argv)
}

func TestInterpolateArgv_OneBadArgFailsWholeVector(t *testing.T) {
	argv, err := interpolateArgv([]string{"echo", "ok", "50%"}, "%", interpFixture(), nil)
	require.ErrorIs(t, err, errMismatchedDelim)
	assert.Nil(t, argv)
}
