package material

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// StripePattern alternates between A and B on every unit step along x
type StripePattern struct {
	A, B      core.Color
	transform core.Transform
}

// NewStripePattern creates a stripe pattern. Transforms are applied in order;
// none means identity.
func NewStripePattern(a, b core.Color, transforms ...core.Matrix) (*StripePattern, error) {
	transform, err := patternTransform(transforms)
	if err != nil {
		return nil, fmt.Errorf("stripe pattern: invalid transform: %w", err)
	}
	return &StripePattern{A: a, B: b, transform: transform}, nil
}

// PatternAt implements the Pattern interface
func (s *StripePattern) PatternAt(p core.Point) core.Color {
	if math.Mod(math.Floor(p.X), 2) == 0 {
		return s.A
	}
	return s.B
}

// Transform implements the Pattern interface
func (s *StripePattern) Transform() core.Transform {
	return s.transform
}

// GradientPattern blends linearly from A to B across each unit interval of x
type GradientPattern struct {
	A, B      core.Color
	transform core.Transform
}

// NewGradientPattern creates a gradient pattern
func NewGradientPattern(a, b core.Color, transforms ...core.Matrix) (*GradientPattern, error) {
	transform, err := patternTransform(transforms)
	if err != nil {
		return nil, fmt.Errorf("gradient pattern: invalid transform: %w", err)
	}
	return &GradientPattern{A: a, B: b, transform: transform}, nil
}

// PatternAt implements the Pattern interface
func (g *GradientPattern) PatternAt(p core.Point) core.Color {
	fraction := p.X - math.Floor(p.X)
	return g.A.Add(g.B.Subtract(g.A).Multiply(fraction))
}

// Transform implements the Pattern interface
func (g *GradientPattern) Transform() core.Transform {
	return g.transform
}

func patternTransform(transforms []core.Matrix) (core.Transform, error) {
	if len(transforms) == 0 {
		return core.IdentityTransform(), nil
	}
	return core.NewTransform(core.Chain(transforms...))
}
