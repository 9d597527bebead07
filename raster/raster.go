// Package raster renders triangle strips into images using the
// golang.org/x/image/vector rasterizer. It is the software consumer of
// the strip buffers produced by the tristrip package.
package raster

import (
	"errors"
	"image"
	"image/color"

	"golang.org/x/image/vector"

	"github.com/gogpu/tristrip"
)

// Package errors for strip rasterization.
var (
	// ErrNilImage is returned when the destination image is nil.
	ErrNilImage = errors.New("raster: nil destination image")

	// ErrBadStrip is returned when the strip buffer has an odd number
	// of scalars or fewer than 3 vertices.
	ErrBadStrip = errors.New("raster: strip must hold an even number of scalars and at least 3 vertices")
)

// Transform maps unit-circle coordinates into image pixels. The
// tristrip generators emit points on the unit circle only; scaling and
// positioning is the consumer's job, and Transform is that job for
// image output.
type Transform struct {
	// Scale is the circle radius in pixels.
	Scale float64

	// OffsetX, OffsetY position the circle center in the image.
	OffsetX float64
	OffsetY float64
}

// Apply maps a unit-circle point to pixel coordinates. The Y axis is
// flipped: image Y grows down, circle Y grows up, so the circle's top
// point lands at the top of the image.
func (t Transform) Apply(x, y float64) (float64, float64) {
	return t.OffsetX + x*t.Scale, t.OffsetY - y*t.Scale
}

// Centered returns a Transform that centers the unit circle in a
// size×size image, leaving margin pixels on each side.
func Centered(size int, margin float64) Transform {
	half := float64(size) / 2
	return Transform{
		Scale:   half - margin,
		OffsetX: half,
		OffsetY: half,
	}
}

// FillStrip renders a triangle strip into dst with a uniform color.
// pts is a strip buffer as written by tristrip.Circle or
// tristrip.CircleFolded: vertex k at pts[2k], pts[2k+1], consecutive
// vertex triples forming the triangles.
func FillStrip[F tristrip.Float](dst *image.RGBA, pts []F, tr Transform, c color.Color) error {
	if dst == nil {
		return ErrNilImage
	}
	n := len(pts) / 2
	if len(pts)%2 != 0 || n < 3 {
		return ErrBadStrip
	}

	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())

	for k := 0; k+2 < n; k++ {
		ax, ay := tr.Apply(float64(pts[2*k]), float64(pts[2*k+1]))
		bx, by := tr.Apply(float64(pts[2*k+2]), float64(pts[2*k+3]))
		cx, cy := tr.Apply(float64(pts[2*k+4]), float64(pts[2*k+5]))

		// Strip triangles alternate orientation. Emit them all
		// counter-clockwise so the coverage of adjacent triangles adds
		// along shared edges instead of cancelling.
		if (bx-ax)*(cy-ay)-(by-ay)*(cx-ax) < 0 {
			bx, by, cx, cy = cx, cy, bx, by
		}

		z.MoveTo(float32(ax), float32(ay))
		z.LineTo(float32(bx), float32(by))
		z.LineTo(float32(cx), float32(cy))
		z.ClosePath()
	}

	tristrip.Logger().Debug("raster: fill strip",
		"vertices", n, "triangles", n-2,
		"width", b.Dx(), "height", b.Dy())

	z.Draw(dst, b, image.NewUniform(c), image.Point{})
	return nil
}
