package renderer

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/google/uuid"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
)

// RenderConfig contains rendering configuration
type RenderConfig struct {
	MaxDepth   int // Recursion budget for reflection and refraction
	NumWorkers int // Number of parallel workers (0 = use CPU count)
	TileSize   int // Edge length of a parallel work unit in pixels
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		MaxDepth:   5,
		NumWorkers: 0,
		TileSize:   32,
	}
}

// Raytracer renders a camera's view through an integrator
type Raytracer struct {
	id           string
	camera       *geometry.Camera
	config       RenderConfig
	tileRenderer *TileRenderer
	logger       core.Logger
}

// NewRaytracer creates a new raytracer. A nil logger is replaced by the
// default stdout logger.
func NewRaytracer(camera *geometry.Camera, integ integrator.Integrator, config RenderConfig, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Raytracer{
		id:           uuid.NewString(),
		camera:       camera,
		config:       config,
		tileRenderer: NewTileRenderer(camera, integ, config.MaxDepth),
		logger:       logger,
	}
}

// ID identifies this raytracer in log output
func (rt *Raytracer) ID() string {
	return rt.id
}

// Render traces every pixel in row-major order on the calling goroutine
func (rt *Raytracer) Render() (*Canvas, RenderStats) {
	rt.logStart(1)
	start := time.Now()

	canvas := NewCanvas(rt.camera.Width(), rt.camera.Height())
	stats := rt.tileRenderer.RenderTileBounds(image.Rect(0, 0, canvas.Width(), canvas.Height()), canvas)
	stats.SamplesPerPixel = len(rt.camera.SampleOffsets())
	stats.Elapsed = time.Since(start)

	rt.logDone(stats)
	return canvas, stats
}

// RenderParallel traces the image tile by tile across the worker pool. The
// result is identical to Render. Cancelling ctx aborts the render; the
// partially filled canvas is returned alongside the error.
func (rt *Raytracer) RenderParallel(ctx context.Context) (*Canvas, RenderStats, error) {
	pool := NewWorkerPool(rt.tileRenderer, rt.config.NumWorkers)
	rt.logStart(pool.NumWorkers())
	start := time.Now()

	canvas := NewCanvas(rt.camera.Width(), rt.camera.Height())
	tiles := NewTileGrid(canvas.Width(), canvas.Height(), rt.config.TileSize)

	stats, err := pool.RenderTiles(ctx, tiles, canvas)
	stats.SamplesPerPixel = len(rt.camera.SampleOffsets())
	stats.Elapsed = time.Since(start)
	if err != nil {
		rt.logger.Printf("[%s] render aborted after %v: %v\n", rt.id, stats.Elapsed, err)
		return canvas, stats, fmt.Errorf("render %s: %w", rt.id, err)
	}

	rt.logDone(stats)
	return canvas, stats, nil
}

func (rt *Raytracer) logStart(workers int) {
	rt.logger.Printf("[%s] rendering %dx%d (antialias=%t, depth=%d, workers=%d)\n",
		rt.id, rt.camera.Width(), rt.camera.Height(), rt.camera.Antialias(), rt.config.MaxDepth, workers)
}

func (rt *Raytracer) logDone(stats RenderStats) {
	rt.logger.Printf("[%s] rendered %d pixels (%d samples) in %v\n",
		rt.id, stats.TotalPixels, stats.TotalSamples, stats.Elapsed)
}
