// Package render connects tristrip output to render targets.
//
// CPU targets ([PixmapTarget]) are filled through the raster
// subpackage. GPU output follows the host-device model: the host
// application owns the GPU device and exposes it through a
// [DeviceHandle]; hosts that can draw triangle strips implement
// [StripDrawer] and receive the converted vertices directly. The
// shader helpers compile the bundled strip shader for hosts building
// their own pipelines.
package render
