package mandelbrot

import (
	"fmt"

	"ParallelMandelbrot/misc"
)

// Bounds are the dimensions of an image or of a band of one, in pixels.
type Bounds struct {
	Width  uint
	Height uint
}

func (b Bounds) String() string {
	return fmt.Sprintf("%dx%d", b.Width, b.Height)
}

// Pixels is the number of bytes a grayscale buffer of these bounds holds.
func (b Bounds) Pixels() uint {
	return b.Width * b.Height
}

type Mandelbrot struct {
	settings Settings
}

func NewMandelbrot(settings Settings) Mandelbrot {
	return Mandelbrot{
		settings: settings,
	}
}

// PixelToPoint converts the (column, row) pixel of an image with the given bounds to its point on the
// complex plane, where upperLeft and lowerRight are the points of pixel (0, 0) and pixel (width, height).
//
// Rows grow towards lowerRight's imaginary part; nothing is flipped. A lowerRight left of or above upperLeft
// mirrors the image.
func PixelToPoint(bounds Bounds, column uint, row uint, upperLeft complex128, lowerRight complex128) complex128 {
	re := misc.LerpFloat64(real(upperLeft), real(lowerRight), float64(column)/float64(bounds.Width))
	im := misc.LerpFloat64(imag(upperLeft), imag(lowerRight), float64(row)/float64(bounds.Height))
	return complex(re, im)
}

// EscapeTime iterates z = z*z + c from z = 0 and returns the iteration before which |z|^2 first exceeded
// 4. If that does not happen within limit iterations c is taken to be in the set and false is returned.
func EscapeTime(c complex128, limit uint) (uint, bool) {
	return escapeTime(c, limit, DefaultBoundary)
}

// EscapeTime is the package level EscapeTime using the configured limit and boundary.
func (m *Mandelbrot) EscapeTime(c complex128) (uint, bool) {
	return escapeTime(c, m.settings.MaxIterations, m.settings.Boundary)
}

func escapeTime(c complex128, limit uint, boundary float64) (uint, bool) {
	var z complex128
	for i := uint(0); i < limit; i++ {
		if real(z)*real(z)+imag(z)*imag(z) > boundary {
			return i, true
		}
		z = z*z + c
	}
	return 0, false
}

// RenderBand renders the default Mandelbrot set into pixels. See Mandelbrot.RenderBand.
func RenderBand(pixels []byte, bounds Bounds, upperLeft complex128, lowerRight complex128) {
	m := NewMandelbrot(NewSettings())
	m.RenderBand(pixels, bounds, upperLeft, lowerRight)
}

// RenderBand fills pixels, a row-major buffer of exactly bounds.Width*bounds.Height bytes, with the escape
// time of every pixel of the rectangle between upperLeft and lowerRight. A pixel that escaped at iteration i
// is written as 255-i and one that never escaped as 0.
//
// A buffer of the wrong length is a bug in the caller and panics.
func (m *Mandelbrot) RenderBand(pixels []byte, bounds Bounds, upperLeft complex128, lowerRight complex128) {
	if uint(len(pixels)) != bounds.Pixels() {
		panic(fmt.Sprintf("mandelbrot: %d pixels for a %s band", len(pixels), bounds))
	}

	for row := uint(0); row < bounds.Height; row++ {
		for column := uint(0); column < bounds.Width; column++ {
			point := PixelToPoint(bounds, column, row, upperLeft, lowerRight)
			var intensity byte
			if iteration, escaped := m.EscapeTime(point); escaped {
				intensity = byte(255 - iteration)
			}
			pixels[row*bounds.Width+column] = intensity
		}
	}
}
