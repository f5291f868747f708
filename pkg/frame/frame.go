// Package frame rasterizes a rectangular region of the complex plane into a
// buffer of Mandelbrot escape counts.
//
// The buffer is row-major starting at the top-left pixel: the first Width
// entries are the first row, the entries starting at 2*Width the second row,
// and so on.
package frame

import (
	"fmt"
	"math"
	"runtime"
	"sync"

	"github.com/willbeason/escape-time/pkg/escape"
)

// MaxPixels is the largest Width*Height a Frame may have.
const MaxPixels = math.MaxInt32

// A Frame describes the pixel grid to render and where it sits in the complex plane.
type Frame struct {
	// Width and Height are the frame dimensions in pixels.
	Width, Height int

	// CenterX and CenterY are the real and imaginary parts of the frame center.
	CenterX, CenterY float64

	// Scale is the width of the frame in the complex plane.
	// Pixels are square, so the frame is Scale*Height/Width tall.
	Scale float64

	// MaxIterations is the iteration cap passed to escape.Evaluate.
	MaxIterations uint32

	// Workers is the number of goroutines rendering rows.
	// Zero or less means runtime.NumCPU().
	Workers int
}

// Validate reports whether the frame can be rendered.
func (f Frame) Validate() error {
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, f.Width, f.Height)
	}

	// Divide rather than multiply so the check cannot overflow.
	if f.Height > MaxPixels/f.Width {
		return fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrInvalidDimensions, f.Width, f.Height, MaxPixels)
	}

	// Written as a negation so NaN is rejected as well.
	if !(f.Scale > 0) {
		return fmt.Errorf("%w: %v", ErrInvalidScale, f.Scale)
	}

	return nil
}

// Step is the distance in the complex plane between adjacent pixels.
func (f Frame) Step() float64 {
	return f.Scale / float64(f.Width)
}

// Origin returns the coordinate sampled for the top-left pixel.
func (f Frame) Origin() (float64, float64) {
	step := f.Step()
	xStart := f.CenterX - float64(f.Width)/2.0*step
	yStart := f.CenterY - float64(f.Height)/2.0*step

	return xStart, yStart
}

// Point returns the coordinate sampled for the pixel at row, column.
//
// Pixels are sampled at their top-left edge, and the imaginary part grows
// with the row index.
func (f Frame) Point(row, column int) (float64, float64) {
	step := f.Step()
	xStart, yStart := f.Origin()

	return xStart + step*float64(column), yStart + step*float64(row)
}

// Render computes the escape count of every pixel in the frame.
//
// Either the whole buffer is returned or an error is returned before anything
// is allocated.
func (f Frame) Render() ([]uint32, error) {
	err := f.Validate()
	if err != nil {
		return nil, err
	}

	buffer := make([]uint32, f.Width*f.Height)

	step := f.Step()
	xStart, yStart := f.Origin()

	parallel := f.Workers
	if parallel <= 0 {
		parallel = runtime.NumCPU()
	}
	if parallel > f.Height {
		parallel = f.Height
	}

	yChannel := make(chan int)

	go func() {
		for y := 0; y < f.Height; y++ {
			yChannel <- y
		}
		close(yChannel)
	}()

	ywg := sync.WaitGroup{}
	ywg.Add(parallel)
	for i := 0; i < parallel; i++ {
		go func() {
			defer ywg.Done()

			for y := range yChannel {
				cy := yStart + step*float64(y)
				row := buffer[y*f.Width : (y+1)*f.Width]

				for x := range row {
					cx := xStart + step*float64(x)
					row[x] = escape.Evaluate(cx, cy, f.MaxIterations)
				}
			}
		}()
	}

	ywg.Wait()

	return buffer, nil
}

// Render is Frame.Render for a frame using every available CPU.
func Render(width, height int, centerX, centerY, scale float64, maxIter uint32) ([]uint32, error) {
	f := Frame{
		Width:         width,
		Height:        height,
		CenterX:       centerX,
		CenterY:       centerY,
		Scale:         scale,
		MaxIterations: maxIter,
	}

	return f.Render()
}
