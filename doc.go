// Package tristrip generates the vertices of regular polygons
// approximating the unit circle, ordered so that the output can be fed
// directly to a rasterizer or GPU as a triangle strip.
//
// # Overview
//
// A triangle strip draws one triangle per vertex after the first two,
// each sharing an edge with the previous one. tristrip emits circle
// vertices in strip order while evaluating sin and cos exactly once
// per call: the first point is rotated around the circle by a fixed
// angle increment, and the circle's mirror symmetries supply the
// remaining points through sign flips.
//
// # Quick Start
//
//	import "github.com/gogpu/tristrip"
//
//	buf := make([]float32, 2*64)
//	if err := tristrip.Circle(buf, 64, tristrip.Clockwise); err != nil {
//		// handle err
//	}
//	// buf[2k], buf[2k+1] hold the k-th strip vertex.
//
// # Variants
//
// [Circle] folds the left/right symmetry and computes half the points
// directly. [CircleFolded] additionally folds the top/bottom symmetry
// for even point counts, computing only a quarter of the points
// directly and deriving the rest from already-emitted output.
// Both produce valid strip orderings of the same polygon.
//
// # Coordinate System
//
// Points lie on the unit circle centered at the origin, Y up. Callers
// scale and translate the output into their own space; see the raster
// subpackage for a software consumer and the render subpackage for GPU
// plumbing.
package tristrip

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
