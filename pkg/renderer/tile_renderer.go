package renderer

import (
	"image"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
)

// TileRenderer handles the actual rendering of individual tiles using an integrator
type TileRenderer struct {
	camera     *geometry.Camera
	integrator integrator.Integrator
	maxDepth   int
}

// NewTileRenderer creates a new tile renderer with the given camera and integrator
func NewTileRenderer(camera *geometry.Camera, integratorInst integrator.Integrator, maxDepth int) *TileRenderer {
	return &TileRenderer{
		camera:     camera,
		integrator: integratorInst,
		maxDepth:   maxDepth,
	}
}

// RenderTileBounds renders every pixel within bounds into canvas
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle, canvas *Canvas) RenderStats {
	samples := len(tr.camera.SampleOffsets())
	var stats RenderStats

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			canvas.SetPixel(x, y, tr.RenderPixel(x, y))
			stats.TotalPixels++
			stats.TotalSamples += samples
		}
	}

	return stats
}

// RenderPixel resolves the color of pixel (x, y), averaging one ray per
// camera sample offset
func (tr *TileRenderer) RenderPixel(x, y int) core.Color {
	offsets := tr.camera.SampleOffsets()
	sum := core.Black
	for _, offset := range offsets {
		ray := tr.camera.RayForPixel(x, y, offset[0], offset[1])
		sum = sum.Add(tr.integrator.ColorAt(ray, tr.maxDepth))
	}
	return sum.Multiply(1.0 / float64(len(offsets)))
}
