package integrator

import (
	"github.com/davkoch/lumen/pkg/core"
)

// Epsilon floor for intersection parameters. Suppresses self-intersections
// at t≈0 that would otherwise show up as shadow acne.
const tMinEpsilon = 1e-3

// Upper bound for intersection parameters, effectively infinity
const tMaxInfinity = 1e9

// PathTracer implements recursive unidirectional path tracing
type PathTracer struct {
	MaxDepth int // Remaining-bounce budget for each primary ray
}

// NewPathTracer creates a path tracer with the given recursion limit
func NewPathTracer(maxDepth int) *PathTracer {
	return &PathTracer{MaxDepth: maxDepth}
}

// Trace computes the color for a primary ray with the full depth budget
func (pt *PathTracer) Trace(ray core.Ray, world core.Hittable, background core.Background, sampler core.Sampler) core.Vec3 {
	return pt.RayColor(ray, world, background, pt.MaxDepth, sampler)
}

// RayColor recursively computes the radiance arriving along a ray.
// Each bounce multiplies the material attenuation into the result; the
// recursion terminates on depth exhaustion, a scene miss, or absorption.
func (pt *PathTracer) RayColor(ray core.Ray, world core.Hittable, background core.Background, depth int, sampler core.Sampler) core.Vec3 {
	// Bounce budget exhausted, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := world.Hit(ray, tMinEpsilon, tMaxInfinity)
	if !isHit {
		return background(ray)
	}

	// Emitted light from the hit material, if any
	var emitted core.Vec3
	if emitter, isEmissive := hit.Material.(core.Emitter); isEmissive {
		emitted = emitter.Emit(ray, *hit)
	}

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		// Ray absorbed, only the emitted light contributes
		return emitted
	}

	incoming := pt.RayColor(scatter.Scattered, world, background, depth-1, sampler)
	return emitted.Add(scatter.Attenuation.MultiplyVec(incoming))
}
