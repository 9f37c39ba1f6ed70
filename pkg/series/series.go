// Package series derives per-second event-count series from merged
// timestamp streams.
package series

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Counts is a bucketed event-count series. Index i covers the closed-open
// wall-clock interval [floor(min)+i, floor(min)+i+1), where min is the
// smallest timestamp across the entire merged log group. The first and last
// bucket may cover partial seconds of true activity when measurement started
// or stopped mid-second; TrimPartial makes that an explicit caller choice.
type Counts []int

// Bucket merges timestamps (seconds since epoch, in any order, from any
// number of files) into per-second counts. Bucket boundaries are global:
// bucket zero starts at the floor of the overall minimum, and a timestamp
// exactly on a boundary lands in the bucket starting there. An empty input
// yields an empty series.
func Bucket(timestamps []float64) Counts {
	if len(timestamps) == 0 {
		return nil
	}

	minSec := int64(math.Floor(timestamps[0]))
	maxSec := minSec
	for _, ts := range timestamps[1:] {
		sec := int64(math.Floor(ts))
		if sec < minSec {
			minSec = sec
		}
		if sec > maxSec {
			maxSec = sec
		}
	}

	counts := make(Counts, maxSec-minSec+1)
	for _, ts := range timestamps {
		counts[int64(math.Floor(ts))-minSec]++
	}
	return counts
}

// Sum returns the total event count, which equals the number of timestamps
// bucketed: no timestamp is dropped or double-counted.
func (c Counts) Sum() int {
	total := 0
	for _, count := range c {
		total += count
	}
	return total
}

// TrimPartial drops the first and last bucket, the two that may represent
// partial seconds of observation. A series of two or fewer buckets trims to
// an empty series.
func (c Counts) TrimPartial() Counts {
	if len(c) <= 2 {
		return nil
	}
	return c[1 : len(c)-1]
}

// Floats returns the counts as float64s for statistics and plotting.
func (c Counts) Floats() []float64 {
	out := make([]float64, len(c))
	for i, count := range c {
		out[i] = float64(count)
	}
	return out
}

// WriteTo writes the series as text, one count per line in bucket order.
// Re-running on unchanged inputs produces byte-identical output.
func (c Counts) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for _, count := range c {
		written, err := fmt.Fprintf(bw, "%d\n", count)
		n += int64(written)
		if err != nil {
			return n, err
		}
	}
	return n, bw.Flush()
}

// Read decodes a series previously written by WriteTo. Blank lines are
// ignored; anything that is not a non-negative integer is an error.
func Read(rd io.Reader) (Counts, error) {
	scanner := bufio.NewScanner(rd)
	var counts Counts
	line := 0
	for scanner.Scan() {
		line++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("line %d: invalid count %q", line, raw)
		}
		counts = append(counts, n)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}
