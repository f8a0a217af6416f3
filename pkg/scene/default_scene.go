package scene

import (
	"math"
	"math/rand"

	"github.com/davkoch/lumen/pkg/core"
	"github.com/davkoch/lumen/pkg/geometry"
	"github.com/davkoch/lumen/pkg/material"
	"github.com/davkoch/lumen/pkg/renderer"
)

// NewDefaultScene creates the cover scene: a checkered ground plane, a grid
// of small random spheres (some of them moving, some hollow glass) and three
// large feature spheres, under a blue-white sky gradient.
func NewDefaultScene(seed int64) *Scene {
	random := rand.New(rand.NewSource(seed))

	objects := make([]core.Hittable, 0, 512)

	// Checkered ground
	groundTexture := material.NewCheckerColors(
		core.NewVec3(0.2, 0.3, 0.1),
		core.NewVec3(0.9, 0.9, 0.9),
		10.0,
	)
	ground := material.NewTexturedLambertian(groundTexture)
	objects = append(objects, geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	// Grid of small spheres with randomized materials
	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			// Keep the area around the feature spheres clear
			if a > -6 && a < 6 && b > -1 && b < 1 {
				continue
			}

			center := core.NewVec3(
				float64(a)+0.5*random.Float64(),
				0.2,
				float64(b)+0.9*random.Float64(),
			)
			const radius = 0.2

			choice := random.Float64()
			switch {
			case choice < 0.6:
				albedo := randomColor(random).MultiplyVec(randomColor(random))
				mat := material.NewLambertian(albedo)
				if random.Float64() < 0.3 {
					// Bouncing sphere, blurred by the camera shutter
					center1 := center.Add(core.NewVec3(0, 0.25*random.Float64(), 0))
					objects = append(objects, geometry.NewMovingSphere(center, center1, 0, 1, radius, mat))
				} else {
					objects = append(objects, geometry.NewSphere(center, radius, mat))
				}
			case choice < 0.8:
				albedo := randomColorRange(random, 0.5, 1.0)
				fuzz := random.Float64()
				objects = append(objects, geometry.NewSphere(center, radius, material.NewMetal(albedo, fuzz)))
			default:
				glass := material.NewDielectric(1.5)
				objects = append(objects, geometry.NewSphere(center, radius, glass))
				if random.Float64() < 0.5 {
					// Nested inward-facing sphere makes the ball hollow
					objects = append(objects, geometry.NewSphere(center, -radius+0.02, glass))
				}
			}
		}
	}

	// Three large feature spheres
	objects = append(objects,
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)

	camera := renderer.CameraConfig{
		LookFrom:      core.NewVec3(12, 2, 8),
		LookAt:        core.NewVec3(0, 0.5, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20.0,
		AspectRatio:   16.0 / 9.0,
		Aperture:      0.1,
		FocusDistance: 10.0,
		ShutterOpen:   0.0,
		ShutterClose:  1.0,
	}

	return &Scene{
		Name:       "default",
		World:      core.NewBVH(objects),
		Background: core.GradientBackground(core.NewVec3(0.5, 0.7, 1.0), core.NewVec3(1.0, 1.0, 1.0)),
		Camera:     camera,
		Render: renderer.Config{
			Width:           854,
			Height:          480,
			SamplesPerPixel: 100,
			MaxDepth:        50,
		},
		CameraAt: func(t float64) renderer.CameraConfig {
			// Sweep the viewpoint across the scene with eased motion
			eased := easeInOutQuint(t)
			moved := camera
			moved.LookFrom = core.NewVec3(12.0-eased*24.0, 2.0+eased, 8.0)
			return moved
		},
	}
}

// easeInOutQuint maps t ∈ [0,1] to an S-curve for smooth camera motion
func easeInOutQuint(x float64) float64 {
	if x < 0.5 {
		return 16 * x * x * x * x * x
	}
	return 1.0 - math.Pow(-2.0*x+2.0, 5)/2.0
}

// randomColor returns a color with each channel uniform in [0, 1)
func randomColor(random *rand.Rand) core.Vec3 {
	return core.NewVec3(random.Float64(), random.Float64(), random.Float64())
}

// randomColorRange returns a color with each channel uniform in [min, max)
func randomColorRange(random *rand.Rand, min, max float64) core.Vec3 {
	span := max - min
	return core.NewVec3(
		min+span*random.Float64(),
		min+span*random.Float64(),
		min+span*random.Float64(),
	)
}
