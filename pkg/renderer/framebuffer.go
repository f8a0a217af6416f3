package renderer

import (
	"image"
	"image/color"

	"github.com/davkoch/lumen/pkg/core"
)

// Framebuffer is a rectangular buffer of gamma-corrected color samples.
// Workers write disjoint pixel regions concurrently by index; no pixel is
// ever written by more than one worker.
type Framebuffer struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x]
}

// NewFramebuffer allocates a zeroed framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// Set stores the color for pixel (x, y)
func (fb *Framebuffer) Set(x, y int, c core.Vec3) {
	fb.Pixels[y*fb.Width+x] = c
}

// At returns the color for pixel (x, y)
func (fb *Framebuffer) At(x, y int) core.Vec3 {
	return fb.Pixels[y*fb.Width+x]
}

// ToImage quantizes the buffer to an 8-bit RGBA image.
// Pixel (0,0) of the image is the top-left corner while framebuffer row 0
// is the bottom scanline, so rows are flipped here.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))

	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			c := fb.At(x, y).Clamp(0, 1)
			img.SetRGBA(x, fb.Height-1-y, color.RGBA{
				R: uint8(c.X * 255.999),
				G: uint8(c.Y * 255.999),
				B: uint8(c.Z * 255.999),
				A: 255,
			})
		}
	}

	return img
}
