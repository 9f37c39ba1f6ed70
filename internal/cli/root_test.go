package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ratelog/ratelog/pkg/chart"
	"github.com/ratelog/ratelog/pkg/logset"
	"github.com/ratelog/ratelog/pkg/stats"
)

func TestNewRootCommand(t *testing.T) {
	rootCmd := NewRootCommand()

	want := map[string]bool{"average": false, "bucket": false, "plot": false, "version": false}
	for _, cmd := range rootCmd.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("Missing subcommand: %s", name)
		}
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", &logset.NotFoundError{Base: "x", Dir: "."}, 1},
		{"wrapped not found", fmt.Errorf("bucketing: %w", &logset.NotFoundError{Base: "x", Dir: "."}), 1},
		{"empty input", fmt.Errorf("averaging: %w", stats.ErrEmptyInput), 1},
		{"no plot data", fmt.Errorf("plotting: %w", chart.ErrNoData), 1},
		{"usage error", errors.New("unknown flag"), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
