// Package stats computes summary statistics over log-group value streams.
package stats

import (
	"errors"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrEmptyInput reports that an aggregate operation had no numeric input:
// the group resolved to zero files, or every line of every file was blank or
// malformed. Reporting a mean of zero for missing data would be misleading,
// so it is an error instead.
var ErrEmptyInput = errors.New("no numeric input")

// Mean returns the arithmetic mean of values at full precision. The result
// is independent of ordering, so callers may concatenate per-file streams in
// any order.
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyInput
	}
	return stat.Mean(values, nil), nil
}

// Summary holds the descriptive statistics printed in verbose mode.
type Summary struct {
	N      int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Describe computes a Summary over values.
func Describe(values []float64) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, ErrEmptyInput
	}

	mean, std := stat.MeanStdDev(values, nil)
	if len(values) == 1 {
		// Sample stddev of a single observation divides by zero.
		std = 0
	}

	return Summary{
		N:      len(values),
		Mean:   mean,
		StdDev: std,
		Min:    floats.Min(values),
		Max:    floats.Max(values),
	}, nil
}
