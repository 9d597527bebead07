package tristrip

import (
	"fmt"
	"math"
)

// Float is the set of floating-point types a strip can be generated
// in. The angle increment and its sine/cosine are computed once in
// float64 and narrowed to F; every other step of the generation is
// multiply-adds in F.
type Float interface {
	~float32 | ~float64
}

// Circle fills dst[0:2n] with the n vertices of a regular polygon on
// the unit circle, in triangle-strip order. dst[2k] and dst[2k+1] hold
// the x and y coordinate of the k-th strip vertex.
//
// Only one half of the circle is computed directly: the first point is
// rotated step by step around the circle (one sin and one cos
// evaluation total), and each advanced point is emitted together with
// its mirror across the vertical (odd n) or horizontal (even n)
// diameter. The interleaving is what makes the output a strip: the
// triangles zig-zag across the mirror axis.
//
// dst must hold at least 2n scalars and n must be at least 1;
// otherwise Circle returns an error without writing anything. n=1 and
// n=2 are accepted and produce a degenerate strip (a point resp. a
// diameter).
func Circle[F Float](dst []F, n int, w Winding) error {
	if err := checkArgs(dst, n); err != nil {
		return err
	}

	c, s := rotationStep[F](n, w)
	half := n / 2

	if n%2 == 1 {
		fillHalfOdd(dst, half, c, s)
		return nil
	}

	// Even n: sweep the bottom half from the right-most point,
	// mirroring each advanced point across the horizontal diameter.
	x, y := F(1), F(0)
	dst[0], dst[1] = x, y
	i := 2
	for k := 0; k < half-1; k++ {
		x, y = c*x+s*y, -s*x+c*y
		dst[i], dst[i+1] = x, y
		dst[i+2], dst[i+3] = x, -y
		i += 4
	}

	// The left-most point is shared by both halves and emitted once.
	dst[i], dst[i+1] = -1, 0
	return nil
}

// CircleFolded is like [Circle] but additionally folds the top/bottom
// symmetry for even point counts, advancing the rotation only through
// the first quarter of the circle. The left half is then produced by
// walking the already-written right-half points backwards and
// re-emitting their mirrors at the growing cursor.
//
// The second pass reads dst as working memory: it depends on the exact
// strip layout written by the first pass (vertex k at dst[2k:2k+2]).
// Any change to that layout breaks the index arithmetic below.
//
// Odd point counts have no usable second axis (it would require a
// vertex at the exact bottom of the circle, which a layout starting
// from the top never places), so the odd path is identical to Circle.
func CircleFolded[F Float](dst []F, n int, w Winding) error {
	if err := checkArgs(dst, n); err != nil {
		return err
	}

	c, s := rotationStep[F](n, w)
	half := n / 2

	if n%2 == 1 {
		fillHalfOdd(dst, half, c, s)
		return nil
	}

	// First pass: bottom-right quarter, mirrored into the top-right
	// quarter. Same shape as the Circle even path, half the steps.
	x, y := F(1), F(0)
	dst[0], dst[1] = x, y
	i := 2
	for k := 0; k < half/2; k++ {
		x, y = c*x+s*y, -s*x+c*y
		dst[i], dst[i+1] = x, y
		dst[i+2], dst[i+3] = x, -y
		i += 4
	}

	// Second pass: walk the written right-half vertices backwards,
	// emitting each one's left-right mirror and that mirror's own
	// top-bottom mirror. The start index skips vertices that sit
	// exactly on the vertical axis (x = 0): their left-right mirror is
	// themselves and must not be emitted twice. Whether the last pair
	// written above straddles that axis depends on the parity of half.
	start := half - 3
	if half%2 == 1 {
		start = half - 2
	}
	for p := start; p > 0; p -= 2 {
		px, py := dst[2*p], dst[2*p+1]
		dst[i], dst[i+1] = -px, py
		dst[i+2], dst[i+3] = -px, -py
		i += 4
	}

	dst[i], dst[i+1] = -1, 0
	return nil
}

// CirclePoints is a convenience wrapper around [Circle] that allocates
// the buffer for the caller.
func CirclePoints[F Float](n int, w Winding) ([]F, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w (got %d)", ErrPointCount, n)
	}
	dst := make([]F, 2*n)
	if err := Circle(dst, n, w); err != nil {
		return nil, err
	}
	return dst, nil
}

// checkArgs validates the generation arguments. It runs before any
// write so a failed call leaves dst untouched.
func checkArgs[F Float](dst []F, n int) error {
	if dst == nil {
		return ErrNilBuffer
	}
	if n < 1 {
		return fmt.Errorf("%w (got %d)", ErrPointCount, n)
	}
	if len(dst) < 2*n {
		return fmt.Errorf("%w: need %d scalars for %d points, have %d",
			ErrShortBuffer, 2*n, n, len(dst))
	}
	return nil
}

// rotationStep returns the cosine and sine of the per-step rotation
// angle 2π/n, negated for counter-clockwise emission. These are the
// only transcendental evaluations in a generation call; every further
// point comes from the recurrence
//
//	x' =  c·x + s·y
//	y' = -s·x + c·y
//
// which rotates a unit-circle point by the step angle.
func rotationStep[F Float](n int, w Winding) (c, s F) {
	angle := 2 * math.Pi / float64(n)
	if w == CounterClockwise {
		angle = -angle
	}
	return F(math.Cos(angle)), F(math.Sin(angle))
}

// fillHalfOdd writes an odd-count strip: the top point, then half
// rotation steps down the right side of the circle, each advanced
// point followed by its left-right mirror. Shared by both variants.
func fillHalfOdd[F Float](dst []F, half int, c, s F) {
	x, y := F(0), F(1)
	dst[0], dst[1] = x, y
	i := 2
	for k := 0; k < half; k++ {
		x, y = c*x+s*y, -s*x+c*y
		dst[i], dst[i+1] = x, y
		dst[i+2], dst[i+3] = -x, y
		i += 4
	}
}
