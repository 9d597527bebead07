package tristrip

import "errors"

// Package errors for strip generation.
var (
	// ErrNilBuffer is returned when the output buffer is nil.
	ErrNilBuffer = errors.New("tristrip: nil output buffer")

	// ErrShortBuffer is returned when the output buffer holds fewer
	// than 2n scalars.
	ErrShortBuffer = errors.New("tristrip: output buffer too small")

	// ErrPointCount is returned when the requested point count is
	// less than 1.
	ErrPointCount = errors.New("tristrip: point count must be at least 1")
)
