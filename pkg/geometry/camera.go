package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// CameraConfig describes a pinhole camera
type CameraConfig struct {
	Width       int         // Image width in pixels
	Height      int         // Image height in pixels
	FieldOfView float64     // Horizontal or vertical field of view, whichever is wider, in radians
	Transform   core.Matrix // View transform; the zero matrix means identity
	Antialias   bool        // Trace a 2x2 grid of rays per pixel instead of one
}

// Camera maps pixels on a canvas one unit in front of the eye to world-space rays.
// The canvas sits at z = -1 in camera space.
type Camera struct {
	width, height int
	fieldOfView   float64
	transform     core.Transform
	antialias     bool

	halfWidth  float64
	halfHeight float64
	pixelSize  float64
}

var (
	ErrInvalidDimensions  = errors.New("camera dimensions must be positive")
	ErrInvalidFieldOfView = errors.New("camera field of view must be in (0, π)")
)

// NewCamera validates config and precomputes the canvas geometry
func NewCamera(config CameraConfig) (*Camera, error) {
	if config.Width <= 0 || config.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, config.Width, config.Height)
	}
	if config.FieldOfView <= 0 || config.FieldOfView >= math.Pi || math.IsNaN(config.FieldOfView) {
		return nil, fmt.Errorf("%w: %g", ErrInvalidFieldOfView, config.FieldOfView)
	}

	view := config.Transform
	if view == (core.Matrix{}) {
		view = core.Identity()
	}
	transform, err := core.NewTransform(view)
	if err != nil {
		return nil, fmt.Errorf("camera: invalid view transform: %w", err)
	}

	c := &Camera{
		width:       config.Width,
		height:      config.Height,
		fieldOfView: config.FieldOfView,
		transform:   transform,
		antialias:   config.Antialias,
	}

	halfView := math.Tan(config.FieldOfView / 2)
	aspect := float64(config.Width) / float64(config.Height)
	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}
	c.pixelSize = c.halfWidth * 2 / float64(config.Width)

	return c, nil
}

func (c *Camera) Width() int                { return c.width }
func (c *Camera) Height() int               { return c.height }
func (c *Camera) FieldOfView() float64      { return c.fieldOfView }
func (c *Camera) Transform() core.Transform { return c.transform }
func (c *Camera) Antialias() bool           { return c.antialias }
func (c *Camera) PixelSize() float64        { return c.pixelSize }
func (c *Camera) HalfWidth() float64        { return c.halfWidth }
func (c *Camera) HalfHeight() float64       { return c.halfHeight }

// RayForPixel returns the ray through pixel (px, py) at the given offset
// within the pixel, where (0.5, 0.5) is its centre
func (c *Camera) RayForPixel(px, py int, offsetX, offsetY float64) core.Ray {
	xOffset := (float64(px) + offsetX) * c.pixelSize
	yOffset := (float64(py) + offsetY) * c.pixelSize

	// +x is to the left because the camera looks toward -z
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := c.transform.Inverse.MultiplyPoint(core.NewPoint(worldX, worldY, -1))
	origin := c.transform.Inverse.MultiplyPoint(core.Origin)
	return core.NewRay(origin, pixel.Subtract(origin).Normalize())
}

// CenterRay returns the ray through the centre of pixel (px, py)
func (c *Camera) CenterRay(px, py int) core.Ray {
	return c.RayForPixel(px, py, 0.5, 0.5)
}

// SampleOffsets returns the in-pixel offsets traced for every pixel: the
// centre alone, or a stratified 2x2 grid when antialiasing is on
func (c *Camera) SampleOffsets() [][2]float64 {
	if !c.antialias {
		return [][2]float64{{0.5, 0.5}}
	}
	return [][2]float64{{0.25, 0.25}, {0.25, 0.75}, {0.75, 0.25}, {0.75, 0.75}}
}

// ViewTransform orients the world relative to an eye at from looking toward to.
// up only needs to be roughly upward; it must not be parallel to to - from.
func ViewTransform(from, to core.Point, up core.Vector) core.Matrix {
	forward := to.Subtract(from).Normalize()
	left := forward.Cross(up.Normalize())
	trueUp := left.Cross(forward)

	orientation := core.Matrix{
		{left.X, left.Y, left.Z, 0},
		{trueUp.X, trueUp.Y, trueUp.Z, 0},
		{-forward.X, -forward.Y, -forward.Z, 0},
		{0, 0, 0, 1},
	}
	return orientation.Multiply(core.Translation(-from.X, -from.Y, -from.Z))
}
