package server

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"math"
	"net/http"
	"strconv"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// RenderRequest represents the scene parameters shared by render and inspect.
// Zero values keep the scene's own settings.
type RenderRequest struct {
	Scene     string  // Built-in scene name or scene file path
	Width     int     // Image width
	Height    int     // Image height
	FOV       float64 // Field of view in degrees
	Depth     int     // Recursion depth
	Antialias *bool   // nil keeps the scene setting
}

// handleRender renders a scene and responds with the PNG image
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	sceneObj, err := s.setupScene(req)
	if err != nil {
		writeError(w, sceneErrorStatus(err), err.Error())
		return
	}

	config := renderer.DefaultRenderConfig()
	config.MaxDepth = sceneObj.MaxDepth
	raytracer := renderer.NewRaytracer(sceneObj.Camera, integrator.NewWhittedIntegrator(sceneObj.World), config, NewWebLogger(s.console))

	// The request context is cancelled when the client disconnects
	canvas, stats, err := raytracer.RenderParallel(r.Context())
	if err != nil {
		log.Printf("Render %s stopped: %v", raytracer.ID(), err)
		return
	}

	var buf bytes.Buffer
	if err := canvas.WritePNG(&buf); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Render-ID", raytracer.ID())
	w.Header().Set("X-Render-Time-Ms", strconv.FormatInt(stats.Elapsed.Milliseconds(), 10))
	w.Header().Set("X-Render-Samples", strconv.Itoa(stats.TotalSamples))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Printf("Render %s: writing response: %v", raytracer.ID(), err)
	}
}

// parseRenderRequest parses request parameters
func parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	values := r.URL.Query()
	req := &RenderRequest{Scene: values.Get("scene")}
	if req.Scene == "" {
		req.Scene = "default"
	}

	var err error
	if req.Width, err = parseIntParam(values, "width", 0, 1, 2000); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(values, "height", 0, 1, 2000); err != nil {
		return nil, err
	}
	if req.FOV, err = parseFloatParam(values, "fov", 0, 1, 179); err != nil {
		return nil, err
	}
	if req.Depth, err = parseIntParam(values, "depth", 0, 1, 20); err != nil {
		return nil, err
	}
	if req.Antialias, err = parseBoolParam(values, "antialias"); err != nil {
		return nil, err
	}

	if req.Width*req.Height > 1920*1080 {
		log.Printf("Render warning: Large image may render slowly")
	}

	return req, nil
}

// setupScene loads the requested scene and applies the request overrides.
// Scene files are only read from the server's scenes directory.
func (s *Server) setupScene(req *RenderRequest) (*scene.Scene, error) {
	sceneObj, err := scene.Load(req.Scene, s.scenesDir)
	if err != nil {
		return nil, err
	}
	if req.Depth > 0 {
		sceneObj.MaxDepth = req.Depth
	}

	err = sceneObj.ConfigureCamera(func(config *geometry.CameraConfig) {
		if req.Width > 0 {
			config.Width = req.Width
		}
		if req.Height > 0 {
			config.Height = req.Height
		}
		if req.FOV > 0 {
			config.FieldOfView = req.FOV * math.Pi / 180
		}
		if req.Antialias != nil {
			config.Antialias = *req.Antialias
		}
	})
	if err != nil {
		return nil, err
	}
	return sceneObj, nil
}

// sceneErrorStatus maps scene construction failures to HTTP status codes
func sceneErrorStatus(err error) int {
	switch {
	case errors.Is(err, scene.ErrUnknownScene), errors.Is(err, fs.ErrNotExist):
		return http.StatusNotFound
	case errors.Is(err, core.ErrSingularMatrix):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}
