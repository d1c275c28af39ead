package task

import (
	"fmt"

	"ParallelMandelbrot/mandelbrot"
)

// Task is one row band of an image: whole rows starting at Top, the band's own plane rectangle and the slice
// of the image's pixel buffer the band is rendered into. Pixels is owned by whoever is rendering the task.
type Task struct {
	ID         uint
	Top        uint
	Bounds     mandelbrot.Bounds
	UpperLeft  complex128
	LowerRight complex128
	Settings   mandelbrot.Settings
	Pixels     []byte

	WorkerAddress string
}

func (t *Task) String() string {
	output := "{Task "
	output += fmt.Sprintf("ID: %d ", t.ID)
	output += fmt.Sprintf("Top: %d ", t.Top)
	output += fmt.Sprintf("Bounds: %s ", t.Bounds)
	output += fmt.Sprintf("UpperLeft: %v ", t.UpperLeft)
	output += fmt.Sprintf("LowerRight: %v ", t.LowerRight)
	output += fmt.Sprintf("Pixel Count: %d}", len(t.Pixels))
	return output
}

// Rows is the half open range of image rows the task covers.
func (t *Task) Rows() (uint, uint) {
	return t.Top, t.Top + t.Bounds.Height
}

// Render fills the task's pixels with its own settings.
func (t *Task) Render() {
	m := mandelbrot.NewMandelbrot(t.Settings)
	m.RenderBand(t.Pixels, t.Bounds, t.UpperLeft, t.LowerRight)
}
