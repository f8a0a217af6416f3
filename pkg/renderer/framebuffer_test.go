package renderer

import (
	"image/color"
	"testing"

	"github.com/davkoch/lumen/pkg/core"
)

func TestFramebuffer_SetAt(t *testing.T) {
	fb := NewFramebuffer(4, 3)

	fb.Set(2, 1, core.NewVec3(0.1, 0.2, 0.3))
	if got := fb.At(2, 1); got != core.NewVec3(0.1, 0.2, 0.3) {
		t.Errorf("Expected stored color, got %v", got)
	}
	if got := fb.At(1, 2); got != (core.Vec3{}) {
		t.Errorf("Expected untouched pixel to stay zero, got %v", got)
	}
}

func TestFramebuffer_ToImageFlipsRows(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.Set(0, 0, core.NewVec3(1, 0, 0)) // bottom-left in scene space

	img := fb.ToImage()

	// Bottom scanline of the buffer lands on the last image row
	if got := img.RGBAAt(0, 1); got.R != 255 || got.G != 0 || got.B != 0 {
		t.Errorf("Expected red at image (0,1), got %v", got)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{A: 255}) {
		t.Errorf("Expected black at image (0,0), got %v", got)
	}
}

func TestFramebuffer_ToImageClamps(t *testing.T) {
	fb := NewFramebuffer(1, 1)
	fb.Set(0, 0, core.NewVec3(2.0, -1.0, 0.5))

	got := fb.ToImage().RGBAAt(0, 0)
	if got.R != 255 {
		t.Errorf("Expected overbright channel clamped to 255, got %d", got.R)
	}
	if got.G != 0 {
		t.Errorf("Expected negative channel clamped to 0, got %d", got.G)
	}
	if got.B != 127 {
		t.Errorf("Expected 0.5 to quantize to 127, got %d", got.B)
	}
}
