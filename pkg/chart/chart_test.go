package chart

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ratelog/ratelog/pkg/series"
)

func TestRender_EmptySeries(t *testing.T) {
	err := Render(nil, filepath.Join(t.TempDir(), "out.png"), Options{})
	if !errors.Is(err, ErrNoData) {
		t.Errorf("Render() error = %v, want ErrNoData", err)
	}
}

func TestRender_WritesImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rate.png")

	err := Render(series.Counts{2, 5, 3, 0, 1}, path, Options{Title: "quote_times events per second"})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected chart image at %s: %v", path, err)
	}
	if info.Size() == 0 {
		t.Error("chart image is empty")
	}
}

func TestRender_UnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rate.bogus")
	if err := Render(series.Counts{1, 2}, path, Options{}); err == nil {
		t.Error("Render() expected error for unknown image format")
	}
}

func TestRenderASCII(t *testing.T) {
	var buf bytes.Buffer
	err := RenderASCII(series.Counts{0, 3, 1, 4}, &buf, Options{Title: "events"})
	if err != nil {
		t.Fatalf("RenderASCII() error = %v", err)
	}
	if buf.Len() == 0 {
		t.Error("RenderASCII() produced no output")
	}
}

func TestRenderASCII_EmptySeries(t *testing.T) {
	var buf bytes.Buffer
	err := RenderASCII(nil, &buf, Options{})
	if !errors.Is(err, ErrNoData) {
		t.Errorf("RenderASCII() error = %v, want ErrNoData", err)
	}
	if buf.Len() != 0 {
		t.Error("RenderASCII() wrote output despite having no data")
	}
}
