package task

import (
	"fmt"

	"ParallelMandelbrot/mandelbrot"
)

// RowsPerBand is the height of every band but possibly the last. Adding one row instead of rounding up
// guarantees workerCount bands always cover the image.
func RowsPerBand(height uint, workerCount uint) uint {
	return height/workerCount + 1
}

// Partition splits pixels, the row-major buffer of an image with the given bounds, into consecutive row bands
// of RowsPerBand rows; the last band holds whatever rows remain. Each band gets the plane rectangle of its
// rows under the image's mapping from upperLeft to lowerRight. Band slices are capacity clipped so no band
// can reach into the next one.
func Partition(pixels []byte, bounds mandelbrot.Bounds, upperLeft complex128, lowerRight complex128, workerCount uint, settings mandelbrot.Settings) ([]Task, error) {
	if bounds.Width == 0 || bounds.Height == 0 {
		return nil, fmt.Errorf("image bounds %s must be positive", bounds)
	}
	if workerCount == 0 {
		return nil, fmt.Errorf("worker count must be at least one")
	}
	if uint(len(pixels)) != bounds.Pixels() {
		return nil, fmt.Errorf("have %d pixels for a %s image", len(pixels), bounds)
	}

	rowsPerBand := RowsPerBand(bounds.Height, workerCount)
	chunkSize := rowsPerBand * bounds.Width

	tasks := make([]Task, 0, (bounds.Height+rowsPerBand-1)/rowsPerBand)
	for start := uint(0); start < uint(len(pixels)); start += chunkSize {
		end := min(start+chunkSize, uint(len(pixels)))
		band := pixels[start:end:end]

		id := uint(len(tasks))
		top := rowsPerBand * id
		bandBounds := mandelbrot.Bounds{Width: bounds.Width, Height: uint(len(band)) / bounds.Width}

		tasks = append(tasks, Task{
			ID:         id,
			Top:        top,
			Bounds:     bandBounds,
			UpperLeft:  mandelbrot.PixelToPoint(bounds, 0, top, upperLeft, lowerRight),
			LowerRight: mandelbrot.PixelToPoint(bounds, bounds.Width, top+bandBounds.Height, upperLeft, lowerRight),
			Settings:   settings,
			Pixels:     band,
		})
	}
	return tasks, nil
}
