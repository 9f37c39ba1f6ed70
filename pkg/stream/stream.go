// Package stream reads timing log files as sequences of float values.
//
// Input files hold one decimal floating-point number per line. Blank lines
// carry no value and are ignored. Anything else that fails to parse is a
// malformed line: skipped and counted by default, or surfaced as a
// *MalformedLineError when the Reader is strict. One bad line never aborts a
// file.
package stream

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Reader iterates over the float values of one or more files, in file order.
// Creating a new Reader over unchanged files yields an identical sequence.
// Implementations of downstream aggregation rely on that restartability.
// Not safe for concurrent use.
type Reader struct {
	paths  []string
	strict bool

	file    *os.File
	scanner *bufio.Scanner
	path    string
	line    int
	index   int
	skipped int
}

// Option configures a Reader.
type Option func(*Reader)

// Strict makes the Reader return a *MalformedLineError instead of skipping
// the offending line.
func Strict() Option {
	return func(r *Reader) { r.strict = true }
}

// NewReader creates a Reader over the given files.
func NewReader(paths []string, opts ...Option) *Reader {
	r := &Reader{paths: paths, index: -1}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Next returns the next value. Returns io.EOF once every file is exhausted;
// empty files contribute nothing and are not an error.
func (r *Reader) Next(ctx context.Context) (float64, error) {
	for {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		default:
		}

		// Ensure we have a file open
		if r.scanner == nil {
			if err := r.openNext(); err != nil {
				return 0, err
			}
		}

		if r.scanner.Scan() {
			r.line++
			raw := strings.TrimSpace(r.scanner.Text())
			if raw == "" {
				continue
			}

			v, err := strconv.ParseFloat(raw, 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				// NaN and infinities are never meaningful timestamps or
				// durations, so they count as malformed too.
				malformed := &MalformedLineError{Path: r.path, Line: r.line, Raw: r.scanner.Text()}
				if r.strict {
					return 0, malformed
				}
				r.skipped++
				continue
			}

			return v, nil
		}

		if err := r.scanner.Err(); err != nil {
			return 0, fmt.Errorf("reading %s: %w", r.path, err)
		}

		// Current file exhausted, try next
		if err := r.closeCurrent(); err != nil {
			return 0, err
		}
	}
}

// Skipped returns the number of malformed lines skipped so far.
func (r *Reader) Skipped() int { return r.skipped }

// Close releases the currently open file, if any.
func (r *Reader) Close() error { return r.closeCurrent() }

func (r *Reader) openNext() error {
	r.index++
	if r.index >= len(r.paths) {
		return io.EOF
	}

	path := r.paths[r.index]
	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return fmt.Errorf("opening log file %s: %w", path, err)
	}

	r.file = f
	r.scanner = bufio.NewScanner(f)
	r.scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024) // 1MB max line size
	r.path = path
	r.line = 0

	return nil
}

func (r *Reader) closeCurrent() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	r.scanner = nil
	return err
}

// ReadSet reads every file of a log group and returns the concatenated
// values plus the number of malformed lines skipped across all files.
// Cross-file order carries no meaning for the aggregations built on top, so
// values are returned in resolved file order.
func ReadSet(ctx context.Context, paths []string) ([]float64, int, error) {
	r := NewReader(paths)
	defer r.Close()

	var values []float64
	for {
		v, err := r.Next(ctx)
		if err == io.EOF {
			return values, r.Skipped(), nil
		}
		if err != nil {
			return nil, r.Skipped(), err
		}
		values = append(values, v)
	}
}
