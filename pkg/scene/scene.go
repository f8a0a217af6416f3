package scene

import (
	"fmt"
	"sort"

	"github.com/davkoch/lumen/pkg/core"
	"github.com/davkoch/lumen/pkg/renderer"
)

// Scene aggregates everything the renderer needs: a root hittable (usually a
// BVH), a background function, a camera configuration and recommended render
// settings. Built once, then read-only for the duration of the render.
type Scene struct {
	Name       string
	World      core.Hittable
	Background core.Background
	Camera     renderer.CameraConfig
	Render     renderer.Config

	// CameraAt returns the camera configuration at normalized animation time
	// t ∈ [0,1]. Nil for scenes without a camera path.
	CameraAt func(t float64) renderer.CameraConfig
}

// Builder constructs a named scene. The seed drives procedural placement so a
// fixed seed reproduces the same scene.
type Builder func(seed int64) *Scene

var builders = map[string]Builder{
	"default": NewDefaultScene,
	"cornell": NewCornellScene,
	"globe":   NewGlobeScene,
}

// List returns the names of all registered scenes, sorted
func List() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build constructs the named scene
func Build(name string, seed int64) (*Scene, error) {
	builder, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("scene: unknown scene %q (available: %v)", name, List())
	}
	return builder(seed), nil
}
