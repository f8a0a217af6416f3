package material

import (
	"math"

	"github.com/davkoch/lumen/pkg/core"
)

// ColorSource provides spatially-varying colors for materials
type ColorSource interface {
	// Evaluate returns the color at given UV coordinates and 3D point.
	// UV is used for image textures, point for procedural textures.
	Evaluate(uv core.Vec2, point core.Vec3) core.Vec3
}

// SolidColor provides a uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of UV or position
func (s *SolidColor) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	return s.Color
}

// Checker alternates between two color sources in a 3D checkerboard pattern
type Checker struct {
	Even  ColorSource
	Odd   ColorSource
	Scale float64 // Spatial frequency of the pattern
}

// NewChecker creates a checker pattern from two sub-sources
func NewChecker(even, odd ColorSource, scale float64) *Checker {
	return &Checker{Even: even, Odd: odd, Scale: scale}
}

// NewCheckerColors creates a checker pattern from two solid colors
func NewCheckerColors(even, odd core.Vec3, scale float64) *Checker {
	return NewChecker(NewSolidColor(even), NewSolidColor(odd), scale)
}

// Evaluate selects a sub-source by the sign of a product of sines,
// giving cells of size π/scale along each axis
func (c *Checker) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	sines := math.Sin(c.Scale*point.X) * math.Sin(c.Scale*point.Y) * math.Sin(c.Scale*point.Z)
	if sines < 0 {
		return c.Odd.Evaluate(uv, point)
	}
	return c.Even.Evaluate(uv, point)
}
