package scene

import (
	"github.com/davkoch/lumen/pkg/core"
	"github.com/davkoch/lumen/pkg/geometry"
	"github.com/davkoch/lumen/pkg/material"
	"github.com/davkoch/lumen/pkg/renderer"
)

// NewCornellScene creates a classic Cornell box with quad walls, a ceiling
// area light and two spheres. The background is black; all illumination
// comes from the emissive panel.
func NewCornellScene(seed int64) *Scene {
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewEmissive(core.NewVec3(15, 15, 15))

	// Standard 555-unit box
	const boxSize = 555.0

	floor := geometry.NewQuad(
		core.NewVec3(0, 0, 0),
		core.NewVec3(boxSize, 0, 0),
		core.NewVec3(0, 0, boxSize),
		white,
	)
	ceiling := geometry.NewQuad(
		core.NewVec3(0, boxSize, 0),
		core.NewVec3(boxSize, 0, 0),
		core.NewVec3(0, 0, boxSize),
		white,
	)
	backWall := geometry.NewQuad(
		core.NewVec3(0, 0, boxSize),
		core.NewVec3(boxSize, 0, 0),
		core.NewVec3(0, boxSize, 0),
		white,
	)
	leftWall := geometry.NewQuad(
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 0, boxSize),
		core.NewVec3(0, boxSize, 0),
		red,
	)
	rightWall := geometry.NewQuad(
		core.NewVec3(boxSize, 0, 0),
		core.NewVec3(0, boxSize, 0),
		core.NewVec3(0, 0, boxSize),
		green,
	)

	// Ceiling light panel, slightly below the ceiling to avoid coplanar noise
	lightPanel := geometry.NewQuad(
		core.NewVec3(213, boxSize-1, 227),
		core.NewVec3(130, 0, 0),
		core.NewVec3(0, 0, 105),
		light,
	)

	glassSphere := geometry.NewSphere(core.NewVec3(190, 90, 190), 90, material.NewDielectric(1.5))
	metalSphere := geometry.NewSphere(core.NewVec3(380, 90, 350), 90, material.NewMetal(core.NewVec3(0.8, 0.85, 0.88), 0.05))

	world := core.NewBVH([]core.Hittable{
		floor, ceiling, backWall, leftWall, rightWall, lightPanel,
		glassSphere, metalSphere,
	})

	return &Scene{
		Name:       "cornell",
		World:      world,
		Background: core.SolidBackground(core.Vec3{}),
		Camera: renderer.CameraConfig{
			LookFrom:    core.NewVec3(278, 278, -800),
			LookAt:      core.NewVec3(278, 278, 0),
			Up:          core.NewVec3(0, 1, 0),
			VFov:        40.0,
			AspectRatio: 1.0,
		},
		Render: renderer.Config{
			Width:           500,
			Height:          500,
			SamplesPerPixel: 200,
			MaxDepth:        50,
		},
	}
}
