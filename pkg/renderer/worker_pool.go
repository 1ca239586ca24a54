package renderer

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// WorkerPool renders tiles in parallel. Each tile covers a disjoint region of
// the canvas, so workers share nothing but the read-only scene.
type WorkerPool struct {
	renderer   *TileRenderer
	numWorkers int
}

// NewWorkerPool creates a worker pool with the specified number of workers
// (0 = use CPU count)
func NewWorkerPool(renderer *TileRenderer, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{renderer: renderer, numWorkers: numWorkers}
}

// NumWorkers returns the number of concurrent workers
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

// RenderTiles renders every tile into canvas. Tiles not yet started when ctx
// is cancelled are skipped and the context error is returned.
func (wp *WorkerPool) RenderTiles(ctx context.Context, tiles []*Tile, canvas *Canvas) (RenderStats, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(wp.numWorkers)

	var (
		mu    sync.Mutex
		stats RenderStats
	)

	for _, tile := range tiles {
		if gctx.Err() != nil {
			break
		}
		tile := tile
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			tileStats := wp.renderer.RenderTileBounds(tile.Bounds, canvas)

			mu.Lock()
			stats.Add(tileStats)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return stats, err
	}
	// The loop may stop early without any worker observing the cancellation
	if err := ctx.Err(); err != nil {
		return stats, err
	}
	return stats, nil
}
