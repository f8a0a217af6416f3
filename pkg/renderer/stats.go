package renderer

import (
	"bytes"
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"
)

// RenderStats contains statistics about a completed render
type RenderStats struct {
	Width        int           // Image width in pixels
	Height       int           // Image height in pixels
	TotalPixels  int           // Total number of pixels rendered
	TotalSamples int           // Total number of samples taken
	Samples      int           // Samples per pixel
	MaxDepth     int           // Recursion limit used
	Tiles        int           // Number of tiles rendered
	Workers      int           // Worker goroutines used
	Duration     time.Duration // Wall-clock render time
}

// SamplesPerSecond returns the sampling throughput
func (s RenderStats) SamplesPerSecond() float64 {
	secs := s.Duration.Seconds()
	if secs == 0 {
		return 0
	}
	return float64(s.TotalSamples) / secs
}

// Summary renders the statistics as an aligned table
func (s RenderStats) Summary() string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader([]string{"Metric", "Value"})
	table.Append([]string{"Resolution", fmt.Sprintf("%dx%d", s.Width, s.Height)})
	table.Append([]string{"Samples/pixel", fmt.Sprintf("%d", s.Samples)})
	table.Append([]string{"Max depth", fmt.Sprintf("%d", s.MaxDepth)})
	table.Append([]string{"Tiles", fmt.Sprintf("%d", s.Tiles)})
	table.Append([]string{"Workers", fmt.Sprintf("%d", s.Workers)})
	table.Append([]string{"Render time", s.Duration.Round(time.Millisecond).String()})
	table.Append([]string{"Throughput", fmt.Sprintf("%.0f samples/sec", s.SamplesPerSecond())})
	table.Render()

	return buf.String()
}
