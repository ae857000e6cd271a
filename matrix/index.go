// SPDX-License-Identifier: MIT

// Package matrix - row/column requests (Index, Range) and their resolution.
//
// Purpose:
//   - Model the two legal request kinds as a closed union: a 1-based integer
//     or a (start, stop, step) range. The zero Index is the rejected variant.
//   - Resolve a request against an axis length into 0-based storage offsets.
//
// Range semantics:
//   - start: omitted means 1; an explicit start s is shifted to s-1.
//   - stop:  used as given, exclusive and 0-based. Span(1, 2) covers 1 and 2.
//   - step:  omitted means 1; negative walks backwards; 0 is ErrZeroStep.
//   - After the shift, out-of-range bounds are clamped and negative bounds
//     count from the end, like half-open slicing in most languages.
package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type indexKind uint8

const (
	indexInvalid indexKind = iota // zero value, rejected with ErrIndexType
	indexInt
	indexRange
)

const ctxParse = "ParseIndex"

// Index is a single row or column request: a 1-based integer or a Range.
// Build one with At or Range.Index; the zero Index is invalid.
type Index struct {
	kind indexKind
	i    int
	r    Range
}

// At requests the i-th row or column, counting from 1.
func At(i int) Index { return Index{kind: indexInt, i: i} }

// IsInt reports whether x is an integer request.
func (x Index) IsInt() bool { return x.kind == indexInt }

// IsRange reports whether x is a range request.
func (x Index) IsRange() bool { return x.kind == indexRange }

// Int returns the integer of an integer request.
func (x Index) Int() (int, bool) { return x.i, x.kind == indexInt }

// Range returns the range of a range request.
func (x Index) Range() (Range, bool) { return x.r, x.kind == indexRange }

// String renders x in the notation accepted by ParseIndex.
func (x Index) String() string {
	switch x.kind {
	case indexInt:
		return strconv.Itoa(x.i)
	case indexRange:
		return x.r.String()
	default:
		return "<invalid>"
	}
}

// Range is a (start, stop, step) request with optional parts.
// The zero Range selects everything, like All().
type Range struct {
	start, stop, step          int
	hasStart, hasStop, hasStep bool
}

// All selects every row or column.
func All() Range { return Range{} }

// From selects from start (1-based) to the end.
func From(start int) Range { return Range{start: start, hasStart: true} }

// To selects from the first position up to stop (exclusive, 0-based).
func To(stop int) Range { return Range{stop: stop, hasStop: true} }

// Span selects from start (1-based) up to stop (exclusive, 0-based).
func Span(start, stop int) Range {
	return Range{start: start, stop: stop, hasStart: true, hasStop: true}
}

// By returns a copy of r with the given step.
func (r Range) By(step int) Range {
	r.step = step
	r.hasStep = true

	return r
}

// Index lifts r into an Index.
func (r Range) Index() Index { return Index{kind: indexRange, r: r} }

// Start returns the explicit start, if any.
func (r Range) Start() (int, bool) { return r.start, r.hasStart }

// Stop returns the explicit stop, if any.
func (r Range) Stop() (int, bool) { return r.stop, r.hasStop }

// Step returns the explicit step, if any.
func (r Range) Step() (int, bool) { return r.step, r.hasStep }

// String renders r as "start:stop[:step]" with omitted parts left empty.
func (r Range) String() string {
	var b strings.Builder
	if r.hasStart {
		b.WriteString(strconv.Itoa(r.start))
	}
	b.WriteByte(':')
	if r.hasStop {
		b.WriteString(strconv.Itoa(r.stop))
	}
	if r.hasStep {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(r.step))
	}

	return b.String()
}

// resolve maps x onto an axis of length n and returns 0-based offsets.
// Errors: ErrOutOfRange (integer outside 1..n), ErrZeroStep, ErrIndexType.
// Complexity: O(len(result)).
func (x Index) resolve(n int) ([]int, error) {
	switch x.kind {
	case indexInt:
		if x.i < 1 || x.i > n {
			return nil, fmt.Errorf("index %d of %d: %w", x.i, n, ErrOutOfRange)
		}

		return []int{x.i - 1}, nil
	case indexRange:
		return x.r.resolve(n)
	default:
		return nil, ErrIndexType
	}
}

// resolve implements the shifted-start half-open walk over [0, n).
func (r Range) resolve(n int) ([]int, error) {
	step := 1
	if r.hasStep {
		step = r.step
	}
	if step == 0 {
		return nil, ErrZeroStep
	}

	// Omitted start means 1, so the shifted start is always present.
	start := 0
	if r.hasStart {
		start = r.start - 1
		if r.start == math.MinInt {
			start = math.MinInt
		}
	}
	start = clampBound(start, n, step)

	var stop int
	switch {
	case r.hasStop:
		stop = clampBound(r.stop, n, step)
	case step < 0:
		stop = -1
	default:
		stop = n
	}

	// Offsets are derived from the count so start+step never overflows.
	count := sliceLen(start, stop, step)
	out := make([]int, count)
	for k := range out {
		out[k] = start + k*step
	}

	return out, nil
}

// clampBound normalises a slice bound: negatives count from the end and the
// result is clamped into the range valid for the step direction.
func clampBound(v, n, step int) int {
	if v < 0 {
		v += n
		if v < 0 {
			if step < 0 {
				return -1
			}

			return 0
		}

		return v
	}
	if v >= n {
		if step < 0 {
			return n - 1
		}

		return n
	}

	return v
}

// sliceLen is the number of offsets a normalised (start, stop, step) yields.
func sliceLen(start, stop, step int) int {
	if step > 0 {
		if start >= stop {
			return 0
		}

		return (stop-start-1)/step + 1
	}
	if start <= stop {
		return 0
	}

	return (start-stop-1)/(-step) + 1
}

// ParseIndex parses the textual request notation: "2", ":", "1:3", "::2",
// "2:", ":3:-1". Whitespace around parts is ignored.
// Errors: ErrIndexType for anything else.
func ParseIndex(s string) (Index, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	switch len(parts) {
	case 1:
		i, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return Index{}, fmt.Errorf("%s(%q): %w", ctxParse, s, ErrIndexType)
		}

		return At(i), nil
	case 2, 3:
		var r Range
		var err error
		if r.start, r.hasStart, err = parseBound(parts[0]); err != nil {
			return Index{}, fmt.Errorf("%s(%q): %w", ctxParse, s, ErrIndexType)
		}
		if r.stop, r.hasStop, err = parseBound(parts[1]); err != nil {
			return Index{}, fmt.Errorf("%s(%q): %w", ctxParse, s, ErrIndexType)
		}
		if len(parts) == 3 {
			if r.step, r.hasStep, err = parseBound(parts[2]); err != nil {
				return Index{}, fmt.Errorf("%s(%q): %w", ctxParse, s, ErrIndexType)
			}
		}

		return r.Index(), nil
	default:
		return Index{}, fmt.Errorf("%s(%q): %w", ctxParse, s, ErrIndexType)
	}
}

// parseBound parses one optional range part; empty means omitted.
func parseBound(s string) (int, bool, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false, err
	}

	return v, true, nil
}
