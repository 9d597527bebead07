package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestPixmapTarget_Basics(t *testing.T) {
	target := NewPixmapTarget(20, 10)

	if target.Width() != 20 || target.Height() != 10 {
		t.Errorf("size = %dx%d, want 20x10", target.Width(), target.Height())
	}
	if target.Format() != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("Format() = %v, want RGBA8Unorm", target.Format())
	}
	if target.Stride() != 20*4 {
		t.Errorf("Stride() = %d, want %d", target.Stride(), 20*4)
	}
	if len(target.Pixels()) != 20*10*4 {
		t.Errorf("len(Pixels()) = %d, want %d", len(target.Pixels()), 20*10*4)
	}
}

func TestPixmapTarget_Clear(t *testing.T) {
	target := NewPixmapTarget(4, 4)
	target.Clear(color.RGBA{R: 10, G: 20, B: 30, A: 255})

	got := target.Image().RGBAAt(2, 2)
	want := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	if got != want {
		t.Errorf("pixel after Clear = %v, want %v", got, want)
	}
}

func TestPixmapTarget_FromImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	target := NewPixmapTargetFromImage(img)

	// Shares memory with the wrapped image.
	target.Pixels()[0] = 0xFF
	if img.Pix[0] != 0xFF {
		t.Error("target does not share memory with wrapped image")
	}
	if target.Image() != img {
		t.Error("Image() must return the wrapped image")
	}
}
