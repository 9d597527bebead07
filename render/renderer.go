package render

import (
	"errors"
	"image"
	"image/color"

	"github.com/gogpu/tristrip"
	"github.com/gogpu/tristrip/raster"
)

// Rendering errors.
var (
	// ErrNilTarget is returned when the render target is nil.
	ErrNilTarget = errors.New("render: nil render target")

	// ErrNoDevice is returned when a GPU-only target is used without a
	// host device.
	ErrNoDevice = errors.New("render: target requires a GPU device from the host")

	// ErrNoStripDrawer is returned when the host device cannot draw
	// triangle strips.
	ErrNoStripDrawer = errors.New("render: host device does not implement StripDrawer")
)

// StripDrawer is implemented by host device handles that can draw
// triangle strips directly. Vertices are in normalized device
// coordinates with premultiplied colors, in strip order.
type StripDrawer interface {
	DrawTriangleStrip(vertices []tristrip.Vertex) error
}

// StripRenderer renders strip buffers to render targets.
//
// The renderer receives the GPU device from the host, it does not
// create one. CPU targets are always available; GPU targets require a
// handle whose value implements [StripDrawer].
type StripRenderer struct {
	handle DeviceHandle
}

// NewStripRenderer creates a renderer backed by the given device
// handle. Pass [NullDeviceHandle] for CPU-only rendering.
func NewStripRenderer(handle DeviceHandle) *StripRenderer {
	if handle == nil {
		handle = NullDeviceHandle{}
	}
	return &StripRenderer{handle: handle}
}

// Render draws a strip buffer onto the target with a uniform color.
// pts is a strip as written by tristrip.Circle or
// tristrip.CircleFolded; the unit circle is mapped to the largest
// centered square of the target (for GPU targets this is the
// normalized device coordinate square itself).
func (r *StripRenderer) Render(target RenderTarget, pts []float64, c color.Color) error {
	if target == nil {
		return ErrNilTarget
	}

	if px := target.Pixels(); px != nil {
		img := &image.RGBA{
			Pix:    px,
			Stride: target.Stride(),
			Rect:   image.Rect(0, 0, target.Width(), target.Height()),
		}
		size := min(target.Width(), target.Height())
		return raster.FillStrip(img, pts, raster.Centered(size, 0), c)
	}

	drawer, ok := r.handle.(StripDrawer)
	if !ok {
		if r.handle.Device() == nil {
			return ErrNoDevice
		}
		return ErrNoStripDrawer
	}

	// Premultiplied 16-bit channels from the stdlib color model.
	cr, cg, cb, ca := c.RGBA()
	verts := tristrip.StripVertices(pts,
		float32(cr)/0xffff, float32(cg)/0xffff,
		float32(cb)/0xffff, float32(ca)/0xffff)

	tristrip.Logger().Debug("render: strip draw",
		"vertices", len(verts),
		"target_width", target.Width(), "target_height", target.Height())

	return drawer.DrawTriangleStrip(verts)
}
