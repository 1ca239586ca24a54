package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// options holds the command line overrides. Zero values keep the scene's own setting.
type options struct {
	scene      string
	width      int
	height     int
	fov        float64 // degrees
	antialias  *bool
	depth      int
	workers    int
	sequential bool
	output     string
}

func main() {
	var opts options
	var antialias bool
	flag.StringVar(&opts.scene, "scene", "default", "Built-in scene name or path to a scenes/*.json file")
	flag.IntVar(&opts.width, "width", 0, "Image width in pixels (0 = scene default)")
	flag.IntVar(&opts.height, "height", 0, "Image height in pixels (0 = scene default)")
	flag.Float64Var(&opts.fov, "fov", 0, "Field of view in degrees (0 = scene default)")
	flag.BoolVar(&antialias, "antialias", false, "Trace a 2x2 grid of rays per pixel")
	flag.IntVar(&opts.depth, "depth", 0, "Reflection/refraction recursion depth (0 = scene default)")
	flag.IntVar(&opts.workers, "workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	flag.BoolVar(&opts.sequential, "sequential", false, "Render on a single goroutine")
	flag.StringVar(&opts.output, "output", "output", "Output directory")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		printHelp()
		return
	}

	// Only override the scene's antialias setting when the flag was given
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "antialias" {
			opts.antialias = &antialias
		}
	})

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("Whitted Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.ListBuiltInScenes() {
		fmt.Printf("  %-12s - %s\n", info.ID, info.Description)
	}
	fmt.Println("  scenes/<name>.json - Scene file")
	fmt.Println()
	fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.png")
}

func run(opts options) error {
	fmt.Println("Starting Whitted Raytracer...")

	s, err := createScene(opts.scene)
	if err != nil {
		return err
	}
	if err := applyOverrides(s, opts); err != nil {
		return err
	}
	fmt.Printf("Using %s scene (%dx%d)...\n", s.Name, s.CameraConfig.Width, s.CameraConfig.Height)

	config := renderer.DefaultRenderConfig()
	config.MaxDepth = s.MaxDepth
	config.NumWorkers = opts.workers

	raytracer := renderer.NewRaytracer(s.Camera, integrator.NewWhittedIntegrator(s.World), config, renderer.NewDefaultLogger())

	var canvas *renderer.Canvas
	var stats renderer.RenderStats
	if opts.sequential {
		canvas, stats = raytracer.Render()
	} else {
		canvas, stats, err = raytracer.RenderParallel(context.Background())
		if err != nil {
			return err
		}
	}

	fmt.Printf("Render completed in %v\n", stats.Elapsed)
	fmt.Printf("Samples per pixel: %d (%d total)\n", stats.SamplesPerPixel, stats.TotalSamples)

	filename := outputPath(opts.output, s.Name, time.Now())
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := savePNG(canvas, filename); err != nil {
		return err
	}

	fmt.Printf("Render saved as %s\n", filename)
	return nil
}

// createScene resolves a built-in scene name or a scene file path
func createScene(name string) (*scene.Scene, error) {
	if name == "" {
		return nil, errors.New("scene name cannot be empty")
	}
	return scene.Load(name)
}

// applyOverrides rebuilds the scene's camera and depth from the non-zero options
func applyOverrides(s *scene.Scene, opts options) error {
	if opts.depth < 0 {
		return fmt.Errorf("depth must not be negative, got %d", opts.depth)
	}
	if opts.depth > 0 {
		s.MaxDepth = opts.depth
	}

	return s.ConfigureCamera(func(config *geometry.CameraConfig) {
		if opts.width != 0 {
			config.Width = opts.width
		}
		if opts.height != 0 {
			config.Height = opts.height
		}
		if opts.fov != 0 {
			config.FieldOfView = opts.fov * math.Pi / 180
		}
		if opts.antialias != nil {
			config.Antialias = *opts.antialias
		}
	})
}

// outputPath returns <dir>/<scene>/render_<timestamp>.png
func outputPath(dir, sceneName string, now time.Time) string {
	timestamp := now.Format("20060102_150405")
	return filepath.Join(dir, filepath.Base(sceneName), fmt.Sprintf("render_%s.png", timestamp))
}

func savePNG(canvas *renderer.Canvas, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := canvas.WritePNG(file); err != nil {
		return fmt.Errorf("saving PNG: %w", err)
	}
	return nil
}
