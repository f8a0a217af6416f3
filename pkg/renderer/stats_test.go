package renderer

import (
	"strings"
	"testing"
	"time"
)

func TestRenderStats_SamplesPerSecond(t *testing.T) {
	stats := RenderStats{TotalSamples: 1000, Duration: 2 * time.Second}
	if got := stats.SamplesPerSecond(); got != 500 {
		t.Errorf("Expected 500 samples/sec, got %f", got)
	}

	// Zero duration must not divide by zero
	if got := (RenderStats{TotalSamples: 1000}).SamplesPerSecond(); got != 0 {
		t.Errorf("Expected 0 for zero duration, got %f", got)
	}
}

func TestRenderStats_Summary(t *testing.T) {
	stats := RenderStats{
		Width: 854, Height: 480,
		TotalPixels:  854 * 480,
		TotalSamples: 854 * 480 * 100,
		Samples:      100,
		MaxDepth:     50,
		Tiles:        405,
		Workers:      8,
		Duration:     3 * time.Second,
	}

	summary := stats.Summary()
	for _, want := range []string{"854x480", "100", "50", "405", "samples/sec"} {
		if !strings.Contains(summary, want) {
			t.Errorf("Summary missing %q:\n%s", want, summary)
		}
	}
}
