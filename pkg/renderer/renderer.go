package renderer

import (
	"fmt"
	"math/rand"
	"runtime"
	"time"

	"github.com/davkoch/lumen/pkg/core"
	"github.com/davkoch/lumen/pkg/integrator"
)

// Config holds the render settings supplied by the caller
type Config struct {
	Width           int   // Image width in pixels
	Height          int   // Image height in pixels
	SamplesPerPixel int   // Jittered samples per pixel
	MaxDepth        int   // Recursion limit for the integrator
	Seed            int64 // Base RNG seed; fixed seed gives reproducible output
	NumWorkers      int   // Worker goroutines; 0 = runtime.NumCPU()
	TileSize        int   // Tile edge length in pixels; 0 = default
}

// Defaults for zero-valued config fields
const (
	defaultTileSize        = 32
	defaultSamplesPerPixel = 100
	defaultMaxDepth        = 50
)

// Validate reports malformed render settings
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("renderer: image dimensions %dx%d must be positive", c.Width, c.Height)
	}
	if c.SamplesPerPixel < 0 {
		return fmt.Errorf("renderer: samples per pixel %d must not be negative", c.SamplesPerPixel)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("renderer: max depth %d must not be negative", c.MaxDepth)
	}
	return nil
}

// Merge overlays non-zero fields of override onto this config
func (c Config) Merge(override Config) Config {
	merged := c
	if override.Width > 0 {
		merged.Width = override.Width
	}
	if override.Height > 0 {
		merged.Height = override.Height
	}
	if override.SamplesPerPixel > 0 {
		merged.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxDepth > 0 {
		merged.MaxDepth = override.MaxDepth
	}
	if override.Seed != 0 {
		merged.Seed = override.Seed
	}
	if override.NumWorkers > 0 {
		merged.NumWorkers = override.NumWorkers
	}
	if override.TileSize > 0 {
		merged.TileSize = override.TileSize
	}
	return merged
}

// Renderer drives the per-pixel sampling loop over an immutable scene.
// The world, background and camera are shared read-only across workers.
type Renderer struct {
	world      core.Hittable
	background core.Background
	camera     *Camera
	config     Config
	tracer     *integrator.PathTracer
}

// New creates a renderer, applying defaults and validating the config
func New(world core.Hittable, background core.Background, camera *Camera, config Config) (*Renderer, error) {
	if config.SamplesPerPixel == 0 {
		config.SamplesPerPixel = defaultSamplesPerPixel
	}
	if config.MaxDepth == 0 {
		config.MaxDepth = defaultMaxDepth
	}
	if config.NumWorkers <= 0 {
		config.NumWorkers = runtime.NumCPU()
	}
	if config.TileSize <= 0 {
		config.TileSize = defaultTileSize
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if camera == nil {
		return nil, fmt.Errorf("renderer: camera is required")
	}

	return &Renderer{
		world:      world,
		background: background,
		camera:     camera,
		config:     config,
		tracer:     integrator.NewPathTracer(config.MaxDepth),
	}, nil
}

// tile is a rectangular pixel region rendered by a single worker task
type tile struct {
	x0, y0, x1, y1 int
	index          int
}

// Render runs the sampling loop across the worker pool and returns the
// finished framebuffer together with render statistics
func (r *Renderer) Render() (*Framebuffer, RenderStats) {
	start := time.Now()

	fb := NewFramebuffer(r.config.Width, r.config.Height)
	tiles := r.splitTiles()

	tasks := make(chan tile, len(tiles))
	done := make(chan int, len(tiles))

	for w := 0; w < r.config.NumWorkers; w++ {
		go func() {
			for t := range tasks {
				// Seed derives from the tile index, not the worker, so a
				// fixed seed reproduces the image regardless of scheduling
				random := rand.New(rand.NewSource(r.config.Seed + int64(t.index)))
				sampler := core.NewRandomSampler(random)
				r.renderTile(fb, t, sampler)
				done <- t.index
			}
		}()
	}

	for _, t := range tiles {
		tasks <- t
	}
	close(tasks)

	for range tiles {
		<-done
	}

	return fb, RenderStats{
		Width:        r.config.Width,
		Height:       r.config.Height,
		TotalPixels:  r.config.Width * r.config.Height,
		TotalSamples: r.config.Width * r.config.Height * r.config.SamplesPerPixel,
		Samples:      r.config.SamplesPerPixel,
		MaxDepth:     r.config.MaxDepth,
		Tiles:        len(tiles),
		Workers:      r.config.NumWorkers,
		Duration:     time.Since(start),
	}
}

// splitTiles partitions the image into non-overlapping tiles
func (r *Renderer) splitTiles() []tile {
	var tiles []tile
	size := r.config.TileSize
	index := 0

	for y0 := 0; y0 < r.config.Height; y0 += size {
		for x0 := 0; x0 < r.config.Width; x0 += size {
			tiles = append(tiles, tile{
				x0:    x0,
				y0:    y0,
				x1:    min(x0+size, r.config.Width),
				y1:    min(y0+size, r.config.Height),
				index: index,
			})
			index++
		}
	}

	return tiles
}

// renderTile samples every pixel in the tile and writes averaged,
// gamma-corrected colors into the framebuffer
func (r *Renderer) renderTile(fb *Framebuffer, t tile, sampler core.Sampler) {
	width := float64(r.config.Width)
	height := float64(r.config.Height)

	for y := t.y0; y < t.y1; y++ {
		for x := t.x0; x < t.x1; x++ {
			var accum core.Vec3

			// Pure random jitter within the pixel footprint
			for sample := 0; sample < r.config.SamplesPerPixel; sample++ {
				s := (float64(x) + sampler.Get1D()) / width
				tc := (float64(y) + sampler.Get1D()) / height

				ray := r.camera.GetRay(s, tc, sampler)
				accum = accum.Add(r.tracer.Trace(ray, r.world, r.background, sampler))
			}

			average := accum.Multiply(1.0 / float64(r.config.SamplesPerPixel))

			// Gamma-2 correction before any 8-bit quantization downstream
			fb.Set(x, y, average.GammaCorrect(2.0))
		}
	}
}
