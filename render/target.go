package render

import (
	"image"
	"image/color"

	"github.com/gogpu/gputypes"
)

// RenderTarget defines where rendering output goes.
//
// A target may support CPU access (Pixels) or not. The renderer picks
// the software path for targets with pixel access and the GPU path for
// the rest.
type RenderTarget interface {
	// Width returns the target width in pixels.
	Width() int

	// Height returns the target height in pixels.
	Height() int

	// Format returns the pixel format of the target.
	Format() gputypes.TextureFormat

	// Pixels returns direct access to pixel data.
	// Returns nil for GPU-only targets.
	// For RGBA format, each pixel is 4 bytes: R, G, B, A.
	Pixels() []byte

	// Stride returns the number of bytes per row.
	// For RGBA, this is typically Width * 4, but may include padding.
	Stride() int
}

// PixmapTarget is a CPU-backed render target using *image.RGBA.
//
// Example:
//
//	target := render.NewPixmapTarget(256, 256)
//	renderer.Render(target, pts, color.White)
//	img := target.Image()
type PixmapTarget struct {
	img *image.RGBA
}

// NewPixmapTarget creates a new CPU-backed render target.
func NewPixmapTarget(width, height int) *PixmapTarget {
	return &PixmapTarget{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// NewPixmapTargetFromImage wraps an existing *image.RGBA as a render target.
// The image is used directly without copying.
func NewPixmapTargetFromImage(img *image.RGBA) *PixmapTarget {
	return &PixmapTarget{img: img}
}

// Width returns the target width in pixels.
func (t *PixmapTarget) Width() int {
	return t.img.Bounds().Dx()
}

// Height returns the target height in pixels.
func (t *PixmapTarget) Height() int {
	return t.img.Bounds().Dy()
}

// Format returns the pixel format (RGBA8).
func (t *PixmapTarget) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Pixels returns direct access to the pixel data.
func (t *PixmapTarget) Pixels() []byte {
	return t.img.Pix
}

// Stride returns the number of bytes per row.
func (t *PixmapTarget) Stride() int {
	return t.img.Stride
}

// Image returns the underlying *image.RGBA.
// The returned image shares memory with the target.
func (t *PixmapTarget) Image() *image.RGBA {
	return t.img
}

// Clear fills the entire target with the given color.
func (t *PixmapTarget) Clear(c color.Color) {
	r, g, b, a := c.RGBA()
	// Convert from 16-bit to 8-bit (mask ensures value fits in uint8)
	//nolint:gosec // G115: mask ensures no overflow
	rgba := color.RGBA{
		R: uint8((r >> 8) & 0xFF),
		G: uint8((g >> 8) & 0xFF),
		B: uint8((b >> 8) & 0xFF),
		A: uint8((a >> 8) & 0xFF),
	}

	bounds := t.img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			t.img.SetRGBA(x, y, rgba)
		}
	}
}

// Ensure PixmapTarget implements RenderTarget.
var _ RenderTarget = (*PixmapTarget)(nil)
