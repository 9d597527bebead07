package tristrip

// Vertex represents a triangle vertex for GPU rendering.
type Vertex struct {
	X, Y       float32 // Position in normalized device coordinates
	R, G, B, A float32 // Color (premultiplied alpha)
}

// StripVertices converts a strip buffer to GPU vertices in strip
// order, assigning the same color to every vertex. Positions are
// passed through unchanged; use [ToNDC] first when the strip has been
// scaled into pixel coordinates. Colors should be premultiplied for
// GPU blending.
func StripVertices[F Float](pts []F, r, g, b, a float32) []Vertex {
	n := len(pts) / 2
	vertices := make([]Vertex, 0, n)
	for k := 0; k < n; k++ {
		vertices = append(vertices, Vertex{
			X: float32(pts[2*k]), Y: float32(pts[2*k+1]),
			R: r, G: g, B: b, A: a,
		})
	}
	return vertices
}

// StripTriangles expands a strip buffer into an independent triangle
// list for consumers without strip topology: each consecutive vertex
// triple (k, k+1, k+2) becomes one triangle, 6 scalars per triangle.
// Returns nil if the strip has fewer than 3 vertices.
func StripTriangles[F Float](pts []F) []F {
	n := len(pts) / 2
	if n < 3 {
		return nil
	}
	out := make([]F, 0, (n-2)*6)
	for k := 0; k+2 < n; k++ {
		out = append(out,
			pts[2*k], pts[2*k+1],
			pts[2*k+2], pts[2*k+3],
			pts[2*k+4], pts[2*k+5],
		)
	}
	return out
}

// ToNDC converts pixel coordinates to normalized device coordinates.
// NDC range: -1 (left/bottom) to +1 (right/top)
func ToNDC(x, y float32, width, height int) (float32, float32) {
	nx := (x/float32(width))*2.0 - 1.0
	ny := 1.0 - (y/float32(height))*2.0 // Flip Y axis
	return nx, ny
}
