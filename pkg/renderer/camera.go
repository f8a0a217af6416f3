package renderer

import (
	"errors"
	"fmt"
	"math"

	"github.com/davkoch/lumen/pkg/core"
)

// CameraConfig holds the user-facing camera parameters
type CameraConfig struct {
	LookFrom      core.Vec3 // Camera position
	LookAt        core.Vec3 // Point the camera looks at
	Up            core.Vec3 // World up direction
	VFov          float64   // Vertical field of view in degrees
	AspectRatio   float64   // Width / height
	Aperture      float64   // Lens diameter; 0 disables depth of field
	FocusDistance float64   // Distance to the focus plane; 0 = distance to LookAt
	ShutterOpen   float64   // Shutter interval start
	ShutterClose  float64   // Shutter interval end
}

// Validate reports degenerate camera configurations before any rendering begins
func (c CameraConfig) Validate() error {
	if c.LookFrom.Subtract(c.LookAt).NearZero() {
		return errors.New("camera: look_from and look_at coincide, view basis is degenerate")
	}
	if c.VFov <= 0 || c.VFov >= 180 {
		return fmt.Errorf("camera: vertical fov %.2f out of range (0, 180)", c.VFov)
	}
	if c.AspectRatio <= 0 {
		return fmt.Errorf("camera: aspect ratio %.4f must be positive", c.AspectRatio)
	}
	if c.Aperture < 0 {
		return fmt.Errorf("camera: aperture %.4f must not be negative", c.Aperture)
	}
	if c.FocusDistance < 0 {
		return fmt.Errorf("camera: focus distance %.4f must not be negative", c.FocusDistance)
	}
	if c.ShutterClose < c.ShutterOpen {
		return fmt.Errorf("camera: shutter close %.4f before shutter open %.4f", c.ShutterClose, c.ShutterOpen)
	}
	return nil
}

// Camera maps normalized image-plane coordinates to world-space rays through
// a thin-lens model. Immutable after construction.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v            core.Vec3 // Lens plane basis for aperture jitter
	lensRadius      float64
	shutterOpen     float64
	shutterClose    float64
}

// NewCamera derives the camera basis from the configuration.
// Returns an error for degenerate configurations.
func NewCamera(config CameraConfig) (*Camera, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	focusDistance := config.FocusDistance
	if focusDistance == 0 {
		// Auto-focus on the look-at point
		focusDistance = config.LookAt.Subtract(config.LookFrom).Length()
	}

	theta := config.VFov * math.Pi / 180.0
	h := math.Tan(theta / 2)
	viewportHeight := 2.0 * h
	viewportWidth := config.AspectRatio * viewportHeight

	// Orthonormal basis: w points backwards, u right, v up
	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	horizontal := u.Multiply(viewportWidth * focusDistance)
	vertical := v.Multiply(viewportHeight * focusDistance)
	lowerLeftCorner := config.LookFrom.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(focusDistance))

	return &Camera{
		origin:          config.LookFrom,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		lensRadius:      config.Aperture / 2,
		shutterOpen:     config.ShutterOpen,
		shutterClose:    config.ShutterClose,
	}, nil
}

// GetRay generates a ray for screen coordinates (s, t) where 0 <= s,t <= 1.
// The sampler supplies lens jitter for depth of field and a shutter time
// for motion blur.
func (c *Camera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	origin := c.origin

	if c.lensRadius > 0 {
		// Offset the ray origin within the lens disk; the ray still aims at
		// the same point on the focus plane, blurring out-of-focus geometry
		rd := core.SamplePointInUnitDisk(sampler.Get2D()).Multiply(c.lensRadius)
		offset := c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))
		origin = origin.Add(offset)
	}

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(origin)

	time := c.shutterOpen
	if c.shutterClose > c.shutterOpen {
		time += sampler.Get1D() * (c.shutterClose - c.shutterOpen)
	}

	return core.NewRayAt(origin, direction, time)
}
