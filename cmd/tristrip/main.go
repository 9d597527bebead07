// Command tristrip prints the triangle-strip vertices of a unit
// circle, and optionally renders the strip to a PNG.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"

	"github.com/gogpu/tristrip"
	"github.com/gogpu/tristrip/raster"
)

// maxPoints bounds a single strip request. 2*maxPoints float64 scalars
// is one gigabyte; anything larger is almost certainly a typo and gets
// rejected with the requested size instead of grinding the allocator.
const maxPoints = 1 << 26

func main() {
	var (
		n       = flag.Int("n", 5, "number of circle points")
		winding = flag.String("winding", "cw", "emission direction: cw or ccw")
		folded  = flag.Bool("folded", false, "fold the top/bottom symmetry as well (even point counts)")
		output  = flag.String("o", "", "optional PNG output file")
		size    = flag.Int("size", 512, "PNG image size in pixels")
	)
	flag.Parse()

	var w tristrip.Winding
	switch *winding {
	case "cw":
		w = tristrip.Clockwise
	case "ccw":
		w = tristrip.CounterClockwise
	default:
		log.Fatalf("unknown winding %q (want cw or ccw)", *winding)
	}

	if *n > maxPoints {
		log.Fatalf("cannot allocate buffer for %d points (%d bytes): request too large",
			*n, *n*2*8)
	}

	points := make([]float64, 2*max(*n, 0))

	var err error
	if *folded {
		err = tristrip.CircleFolded(points, *n, w)
	} else {
		err = tristrip.Circle(points, *n, w)
	}
	if err != nil {
		log.Fatalf("generating circle: %v", err)
	}

	fmt.Printf("Circle with %d points:\n", *n)
	for i := 0; i < len(points); i += 2 {
		fmt.Printf("%g,%g\n", points[i], points[i+1])
	}

	if *output != "" {
		if err := savePNG(*output, points, *size); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
		log.Printf("Strip saved to %s (%dx%d)\n", *output, *size, *size)
	}
}

// savePNG rasterizes the strip into a square image and writes it out.
func savePNG(path string, points []float64, size int) error {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	tr := raster.Centered(size, float64(size)/16)
	if err := raster.FillStrip(img, points, tr, color.RGBA{R: 230, G: 90, B: 40, A: 255}); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, img)
}
