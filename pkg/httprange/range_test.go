package httprange

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFullFile(t *testing.T) {
	r, err := Resolve("", 1000)

	require.NoError(t, err)
	assert.Equal(t, Range{Start: 0, End: 999, Total: 1000, Partial: false}, r)
	assert.Equal(t, int64(1000), r.Length())
}

func TestResolveExplicitWindow(t *testing.T) {
	r, err := Resolve("bytes=100-199", 1000)

	require.NoError(t, err)
	assert.Equal(t, Range{Start: 100, End: 199, Total: 1000, Partial: true}, r)
	assert.Equal(t, int64(100), r.Length())
	assert.Equal(t, "bytes 100-199/1000", r.ContentRange())
}

func TestResolveOpenEnded(t *testing.T) {
	r, err := Resolve("bytes=500-", 1000)

	require.NoError(t, err)
	assert.Equal(t, Range{Start: 500, End: 999, Total: 1000, Partial: true}, r)
	assert.Equal(t, int64(500), r.Length())
}

func TestResolveClampsOverlongEnd(t *testing.T) {
	r, err := Resolve("bytes=900-5000", 1000)

	require.NoError(t, err)
	assert.Equal(t, int64(999), r.End)
}

func TestResolveFirstClauseOnly(t *testing.T) {
	r, err := Resolve("bytes=0-99,200-299", 1000)

	require.NoError(t, err)
	assert.Equal(t, Range{Start: 0, End: 99, Total: 1000, Partial: true}, r)
}

func TestResolveSingleByte(t *testing.T) {
	r, err := Resolve("bytes=0-0", 1)

	require.NoError(t, err)
	assert.Equal(t, int64(1), r.Length())
}

func TestResolveEmptyResource(t *testing.T) {
	for _, total := range []int64{0, -1} {
		_, err := Resolve("bytes=0-10", total)
		assert.ErrorIs(t, err, ErrEmptyResource)

		_, err = Resolve("", total)
		assert.ErrorIs(t, err, ErrEmptyResource)
	}
}

func TestResolveMalformed(t *testing.T) {
	headers := []string{
		"bytes=abc-def",
		"bytes=-",
		"bytes=--50",
		"bytes=10",
		"bytes=200-100",
		"bytes=-5-10",
		"items=0-10",
		"bytes0-10",
	}

	for _, h := range headers {
		_, err := Resolve(h, 1000)
		assert.ErrorIs(t, err, ErrMalformed, "header %q", h)
	}
}

func TestResolveUnsatisfiable(t *testing.T) {
	_, err := Resolve("bytes=1000-", 1000)
	assert.ErrorIs(t, err, ErrUnsatisfiable)

	_, err = Resolve("bytes=5000-6000", 1000)
	assert.ErrorIs(t, err, ErrUnsatisfiable)
}

func TestContentRangeRoundTrip(t *testing.T) {
	windows := []Range{
		{Start: 0, End: 0, Total: 1},
		{Start: 0, End: 999, Total: 1000},
		{Start: 100, End: 199, Total: 1000},
		{Start: 500, End: 999, Total: 1000},
		{Start: 1, End: 2, Total: 4},
	}

	for _, w := range windows {
		parsed, err := ParseContentRange(w.ContentRange())
		require.NoError(t, err)
		assert.Equal(t, w.Start, parsed.Start)
		assert.Equal(t, w.End, parsed.End)
		assert.Equal(t, w.Total, parsed.Total)
	}
}

func TestParseContentRangeRejectsGarbage(t *testing.T) {
	values := []string{
		"",
		"bytes 100-199",
		"100-199/1000",
		"bytes x-y/z",
		"bytes 200-100/1000",
		"bytes 0-1000/1000",
	}

	for _, v := range values {
		_, err := ParseContentRange(v)
		assert.ErrorIs(t, err, ErrMalformed, "value %q", v)
	}
}
