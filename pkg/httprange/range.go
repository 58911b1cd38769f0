// Package httprange resolves HTTP Range headers against a known resource
// length for partial-content delivery. Only the first range clause of a
// header is honored; multi-range requests are not supported.
package httprange

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrEmptyResource means the resource has no bytes to serve a range of.
	ErrEmptyResource = errors.New("httprange: empty resource")
	// ErrMalformed means the header failed parsing; callers should fall
	// back to full-content delivery.
	ErrMalformed = errors.New("httprange: malformed range header")
	// ErrUnsatisfiable means a well-formed range lies outside the resource;
	// callers should answer 416.
	ErrUnsatisfiable = errors.New("httprange: range not satisfiable")
)

const bytesPrefix = "bytes="

// Range is an inclusive byte window within a resource of Total bytes.
// Invariant: 0 <= Start <= End < Total.
type Range struct {
	Start   int64
	End     int64
	Total   int64
	Partial bool
}

func (r Range) Length() int64 {
	return r.End - r.Start + 1
}

// ContentRange formats the Content-Range header value for a partial response.
func (r Range) ContentRange() string {
	return fmt.Sprintf("bytes %d-%d/%d", r.Start, r.End, r.Total)
}

// Resolve computes the byte window for a request. An absent or empty header
// yields the full resource with Partial false. A header of the form
// "bytes=<start>-[<end>]" yields a partial window; a missing end means
// through the last byte. An end beyond the resource is clamped.
func Resolve(header string, total int64) (Range, error) {
	if total <= 0 {
		return Range{}, ErrEmptyResource
	}
	if header == "" {
		return Range{Start: 0, End: total - 1, Total: total}, nil
	}

	if !strings.HasPrefix(header, bytesPrefix) {
		return Range{}, ErrMalformed
	}
	spec := strings.TrimPrefix(header, bytesPrefix)
	if i := strings.IndexByte(spec, ','); i >= 0 {
		spec = spec[:i]
	}

	startStr, endStr, ok := strings.Cut(spec, "-")
	if !ok {
		return Range{}, ErrMalformed
	}

	start, err := strconv.ParseInt(strings.TrimSpace(startStr), 10, 64)
	if err != nil || start < 0 {
		return Range{}, ErrMalformed
	}

	end := total - 1
	if endStr = strings.TrimSpace(endStr); endStr != "" {
		end, err = strconv.ParseInt(endStr, 10, 64)
		if err != nil || end < 0 {
			return Range{}, ErrMalformed
		}
	}

	if start > end {
		return Range{}, ErrMalformed
	}
	if start >= total {
		return Range{}, ErrUnsatisfiable
	}
	if end >= total {
		end = total - 1
	}

	return Range{Start: start, End: end, Total: total, Partial: true}, nil
}

// ParseContentRange parses a value produced by Range.ContentRange.
func ParseContentRange(value string) (Range, error) {
	spec, ok := strings.CutPrefix(value, "bytes ")
	if !ok {
		return Range{}, ErrMalformed
	}
	window, totalStr, ok := strings.Cut(spec, "/")
	if !ok {
		return Range{}, ErrMalformed
	}
	startStr, endStr, ok := strings.Cut(window, "-")
	if !ok {
		return Range{}, ErrMalformed
	}

	start, err := strconv.ParseInt(startStr, 10, 64)
	if err != nil {
		return Range{}, ErrMalformed
	}
	end, err := strconv.ParseInt(endStr, 10, 64)
	if err != nil {
		return Range{}, ErrMalformed
	}
	total, err := strconv.ParseInt(totalStr, 10, 64)
	if err != nil {
		return Range{}, ErrMalformed
	}
	if start < 0 || start > end || end >= total {
		return Range{}, ErrMalformed
	}

	return Range{Start: start, End: end, Total: total, Partial: true}, nil
}
