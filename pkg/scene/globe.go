package scene

import (
	"github.com/davkoch/lumen/pkg/core"
	"github.com/davkoch/lumen/pkg/geometry"
	"github.com/davkoch/lumen/pkg/material"
	"github.com/davkoch/lumen/pkg/renderer"
)

// Texture file the globe scene looks up, relative to the working directory
const globeTextureFile = "earthmap.jpg"

// NewGlobeScene creates a single image-textured sphere under a sky gradient.
// The surface map is loaded from earthmap.jpg next to the binary; when the
// file is missing the scene falls back to a checker so it stays renderable.
func NewGlobeScene(seed int64) *Scene {
	var surface material.ColorSource
	if texture, err := material.LoadImageTexture(globeTextureFile); err == nil {
		surface = texture
	} else {
		surface = material.NewCheckerColors(
			core.NewVec3(0.1, 0.3, 0.6),
			core.NewVec3(0.9, 0.9, 0.9),
			10.0,
		)
	}

	globe := geometry.NewSphere(core.NewVec3(0, 0, 0), 2, material.NewTexturedLambertian(surface))

	return &Scene{
		Name:       "globe",
		World:      core.NewBVH([]core.Hittable{globe}),
		Background: core.GradientBackground(core.NewVec3(0.5, 0.7, 1.0), core.NewVec3(1.0, 1.0, 1.0)),
		Camera: renderer.CameraConfig{
			LookFrom:    core.NewVec3(13, 2, 3),
			LookAt:      core.NewVec3(0, 0, 0),
			Up:          core.NewVec3(0, 1, 0),
			VFov:        20.0,
			AspectRatio: 16.0 / 9.0,
		},
		Render: renderer.Config{
			Width:           854,
			Height:          480,
			SamplesPerPixel: 100,
			MaxDepth:        50,
		},
	}
}
