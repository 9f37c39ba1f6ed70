package commands

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ratelog/ratelog/pkg/logset"
	"github.com/ratelog/ratelog/pkg/stats"
)

func runBucketCmd(t *testing.T, args ...string) error {
	t.Helper()
	cmd := NewBucketCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&bytes.Buffer{})
	return cmd.ExecuteContext(context.Background())
}

func TestRunBucket(t *testing.T) {
	dir := t.TempDir()
	writeLog(t, dir, "quote_times_w1", "10.0\n10.9\n")
	writeLog(t, dir, "quote_times_w2", "11.0\n11.9\n12.0\n")
	outfile := filepath.Join(t.TempDir(), "counts")

	err := runBucketCmd(t, "-i", "quote_times", "-o", outfile, "-d", dir)
	if err != nil {
		t.Fatalf("bucket failed: %v", err)
	}

	data, err := os.ReadFile(outfile)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "2\n2\n1\n" {
		t.Errorf("count series = %q, want %q", data, "2\n2\n1\n")
	}
}

func TestRunBucket_Idempotent(t *testing.T) {
	dir := t.TempDir()
	writeLog(t, dir, "quote_times_w1", "10.2\n11.7\n10.6\n")
	out := t.TempDir()
	first := filepath.Join(out, "a")
	second := filepath.Join(out, "b")

	if err := runBucketCmd(t, "-i", "quote_times", "-o", first, "-d", dir); err != nil {
		t.Fatal(err)
	}
	if err := runBucketCmd(t, "-i", "quote_times", "-o", second, "-d", dir); err != nil {
		t.Fatal(err)
	}

	a, _ := os.ReadFile(first)
	b, _ := os.ReadFile(second)
	if !bytes.Equal(a, b) {
		t.Errorf("re-run on unchanged files differs: %q vs %q", a, b)
	}
}

func TestRunBucket_TrimPartial(t *testing.T) {
	dir := t.TempDir()
	writeLog(t, dir, "quote_times_w1", "10.5\n11.1\n11.2\n12.9\n13.0\n")
	outfile := filepath.Join(t.TempDir(), "counts")

	err := runBucketCmd(t, "-i", "quote_times", "-o", outfile, "-d", dir, "--trim-partial")
	if err != nil {
		t.Fatalf("bucket failed: %v", err)
	}

	data, err := os.ReadFile(outfile)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "2\n1\n" {
		t.Errorf("trimmed series = %q, want %q", data, "2\n1\n")
	}
}

func TestRunBucket_TrimPartialTooShort(t *testing.T) {
	dir := t.TempDir()
	writeLog(t, dir, "quote_times_w1", "10.0\n10.5\n")
	outfile := filepath.Join(t.TempDir(), "counts")

	err := runBucketCmd(t, "-i", "quote_times", "-o", outfile, "-d", dir, "--trim-partial")
	if !errors.Is(err, stats.ErrEmptyInput) {
		t.Errorf("bucket error = %v, want ErrEmptyInput when trimming leaves nothing", err)
	}
	if _, statErr := os.Stat(outfile); statErr == nil {
		t.Error("bucket wrote an output file despite failing")
	}
}

func TestRunBucket_NoMatchingFiles(t *testing.T) {
	outfile := filepath.Join(t.TempDir(), "counts")

	err := runBucketCmd(t, "-i", "quote_times", "-o", outfile, "-d", t.TempDir())
	var notFound *logset.NotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("bucket error = %v, want *logset.NotFoundError", err)
	}
}

func TestRunBucket_EmptyFilesOnly(t *testing.T) {
	dir := t.TempDir()
	writeLog(t, dir, "quote_times_w1", "")
	writeLog(t, dir, "quote_times_w2", "\n\n")
	outfile := filepath.Join(t.TempDir(), "counts")

	err := runBucketCmd(t, "-i", "quote_times", "-o", outfile, "-d", dir)
	if !errors.Is(err, stats.ErrEmptyInput) {
		t.Errorf("bucket error = %v, want ErrEmptyInput", err)
	}
}

func TestRunBucket_OutputFeedsAverage(t *testing.T) {
	// The bucket output format is itself a valid log group for averaging.
	dir := t.TempDir()
	writeLog(t, dir, "quote_times_w1", "10.0\n10.5\n11.9\n")
	outdir := t.TempDir()
	outfile := filepath.Join(outdir, "rates")

	if err := runBucketCmd(t, "-i", "quote_times", "-o", outfile, "-d", dir); err != nil {
		t.Fatal(err)
	}

	avg := NewAverageCommand()
	avg.SetArgs([]string{"-f", "rates", "-d", outdir})
	var buf bytes.Buffer
	avg.SetOut(&buf)

	if err := avg.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("average over bucket output failed: %v", err)
	}
	// Buckets [2 1] average to 1.5 events per second.
	if got := buf.String(); got != "1.5\n" {
		t.Errorf("average output = %q, want %q", got, "1.5\n")
	}
}
