package core

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Unit surface normal, flipped to oppose the incoming ray
	T         float64  // Parameter t along the ray
	FrontFace bool     // Whether ray hit the front face
	UV        Vec2     // Surface parameterization for texturing
	Material  Material // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Hittable is anything a ray can intersect within a parameter interval
type Hittable interface {
	// Hit returns the nearest intersection with t in (tMin, tMax), if any
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)

	// BoundingBox returns an axis-aligned box enclosing the object
	// over the full shutter interval
	BoundingBox() AABB
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   Ray  // The scattered ray
	Attenuation Vec3 // Color attenuation applied per bounce
}

// Material decides how a surface responds to an incoming ray.
// Scatter returns false when the ray is absorbed.
type Material interface {
	Scatter(rayIn Ray, hit HitRecord, sampler Sampler) (ScatterResult, bool)
}

// Emitter is an optional capability for materials that emit light
type Emitter interface {
	Emit(rayIn Ray, hit HitRecord) Vec3
}

// Background maps a ray that escaped the scene to a radiance value
type Background func(ray Ray) Vec3

// GradientBackground returns a background interpolating bottom to top color
// along the vertical component of the ray direction
func GradientBackground(top, bottom Vec3) Background {
	return func(r Ray) Vec3 {
		unitDirection := r.Direction.Normalize()
		t := 0.5 * (unitDirection.Y + 1.0)
		return bottom.Multiply(1.0 - t).Add(top.Multiply(t))
	}
}

// SolidBackground returns a background with a constant color,
// typically black for enclosed scenes
func SolidBackground(color Vec3) Background {
	return func(Ray) Vec3 { return color }
}
