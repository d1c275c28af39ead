package coordinator

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"ParallelMandelbrot/mandelbrot"
	"ParallelMandelbrot/misc"
	"ParallelMandelbrot/task"

	"github.com/BrugadaSyndrome/bslogger"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Render renders the Mandelbrot set between upperLeft and lowerRight into a grayscale buffer of the given
// bounds, one band of rows per worker goroutine. See task.Partition for how the rows are split.
//
// No buffer is returned if any band fails.
func Render(bounds mandelbrot.Bounds, upperLeft complex128, lowerRight complex128, workerCount uint) ([]byte, error) {
	pixels, _, err := render(bounds, upperLeft, lowerRight, workerCount, mandelbrot.NewSettings(), []BandRenderer{LocalRenderer{}})
	return pixels, err
}

// render also returns the rendered bands, so callers can tell which renderer filled each one.
func render(bounds mandelbrot.Bounds, upperLeft complex128, lowerRight complex128, workerCount uint, settings mandelbrot.Settings, renderers []BandRenderer) ([]byte, []task.Task, error) {
	if len(renderers) == 0 {
		return nil, nil, errors.New("no band renderers")
	}

	pixels := make([]byte, bounds.Pixels())
	tasks, err := task.Partition(pixels, bounds, upperLeft, lowerRight, workerCount, settings)
	if err != nil {
		return nil, nil, err
	}
	if err = dispatch(tasks, renderers); err != nil {
		return nil, nil, err
	}
	return pixels, tasks, nil
}

// dispatch renders every task in its own goroutine, spreading them over renderers in turn, and waits for all
// of them. A renderer that panics fails its band like one that returns an error.
func dispatch(tasks []task.Task, renderers []BandRenderer) error {
	var wg sync.WaitGroup
	errs := make([]error, len(tasks))

	for i := range tasks {
		wg.Add(1)
		go func(i int, renderer BandRenderer) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					errs[i] = fmt.Errorf("band %d: %v", tasks[i].ID, r)
				}
			}()

			if err := renderer.RenderBand(&tasks[i]); err != nil {
				errs[i] = fmt.Errorf("band %d: %w", tasks[i].ID, err)
			}
		}(i, renderers[i%len(renderers)])
	}
	wg.Wait()

	return errors.Join(errs...)
}

// Coordinator renders the image its settings describe, locally or on remote workers, and saves it.
type Coordinator struct {
	logger    bslogger.Logger
	printer   *message.Printer
	remotes   []*RemoteRenderer
	renderers []BandRenderer
	settings  Settings
}

// NewCoordinator verifies settings and connects to the configured workers. Without worker addresses every
// band is rendered in this process.
func NewCoordinator(settings Settings) (*Coordinator, error) {
	if err := settings.Verify(); err != nil {
		return nil, err
	}

	c := &Coordinator{
		logger:   bslogger.NewLogger("Coordinator", bslogger.Normal, nil),
		printer:  message.NewPrinter(language.English),
		settings: settings,
	}
	c.logger.Debugf("Starting with %s", settings.String())

	for _, address := range settings.WorkerAddresses {
		remote, err := NewRemoteRenderer(address)
		if err != nil {
			misc.CheckError(c.Close(), c.logger, misc.Warning)
			return nil, err
		}
		c.logger.Infof("Worker joined: %s", address)
		c.remotes = append(c.remotes, remote)
		c.renderers = append(c.renderers, remote)
	}
	if len(c.renderers) == 0 {
		c.renderers = []BandRenderer{LocalRenderer{}}
	}
	return c, nil
}

// Render renders the configured image and returns its pixels.
func (c *Coordinator) Render() ([]byte, error) {
	bounds := c.settings.Bounds()
	upperLeft, lowerRight := c.settings.Corners()
	c.logger.Debugf("Splitting %s image at rows %v", bounds, c.bandRows())

	startTime := time.Now()
	pixels, tasks, err := render(bounds, upperLeft, lowerRight, c.settings.WorkerCount, c.settings.MandelbrotSettings, c.renderers)
	if err != nil {
		c.logger.Errorf("Rendering %s image failed: %s", bounds, err)
		return nil, err
	}

	for i := range tasks {
		top, bottom := tasks[i].Rows()
		c.logger.Debugf("Band %d, rows %d to %d, rendered by %s", tasks[i].ID, top, bottom, tasks[i].WorkerAddress)
	}
	c.logger.Info(c.printer.Sprintf("Rendered %d pixels in %d bands on %d renderers in %s", bounds.Pixels(), len(tasks), len(c.renderers), time.Since(startTime)))
	return pixels, nil
}

// Run renders the image and writes it to the save path.
func (c *Coordinator) Run() error {
	pixels, err := c.Render()
	if err != nil {
		return err
	}

	if err = misc.SaveGray(c.settings.SavePath, pixels, c.settings.Width, c.settings.Height); err != nil {
		return fmt.Errorf("saving image: %w", err)
	}
	c.logger.Infof("Saved image to %s", c.settings.SavePath)
	return nil
}

// Close disconnects from every worker.
func (c *Coordinator) Close() error {
	var errs []error
	for _, remote := range c.remotes {
		errs = append(errs, remote.Close())
		c.logger.Infof("Worker left: %s", remote.Address())
	}
	c.remotes = nil
	return errors.Join(errs...)
}

// bandRows lists the first row of every band the configured render is split into.
func (c *Coordinator) bandRows() []uint {
	rowsPerBand := task.RowsPerBand(c.settings.Height, c.settings.WorkerCount)
	var tops []uint
	for top := uint(0); top < c.settings.Height; top += rowsPerBand {
		tops = append(tops, top)
	}
	return tops
}
