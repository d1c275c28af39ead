package worker

import (
	"fmt"
	"sync"
	"sync/atomic"

	"ParallelMandelbrot/task"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/BrugadaSyndrome/multirpc"
)

// Worker renders row bands for coordinators on other machines. Its RenderBand and RollCall methods are
// served over tcp net/rpc as "Worker.RenderBand" and "Worker.RollCall".
type Worker struct {
	address       string
	bandsRendered atomic.Uint64
	logger        bslogger.Logger
	stop          sync.Once

	Server multirpc.TcpServer
}

// NewWorker starts serving band renders at the settings' address.
func NewWorker(settings Settings) (*Worker, error) {
	if err := settings.Verify(); err != nil {
		return nil, err
	}

	worker := &Worker{
		address: settings.Address,
		logger:  bslogger.NewLogger(fmt.Sprintf("Worker %s", settings.Address), bslogger.Normal, nil),
	}
	worker.Server = multirpc.NewTcpServer(worker, settings.Address, "WorkerServer")
	if err := worker.Server.Run(); err != nil {
		return nil, fmt.Errorf("serving at %s: %w", settings.Address, err)
	}
	return worker, nil
}

func (w *Worker) Address() string {
	return w.address
}

// BandsRendered counts the bands rendered since the worker started.
func (w *Worker) BandsRendered() uint64 {
	return w.bandsRendered.Load()
}

// RenderBand renders the band described by request into a fresh buffer returned in reply. Request pixels
// are ignored; coordinators send bands without them.
func (w *Worker) RenderBand(request task.Task, reply *task.Task) error {
	if err := request.Settings.Verify(); err != nil {
		return err
	}

	*reply = request
	reply.Pixels = make([]byte, request.Bounds.Pixels())
	reply.WorkerAddress = w.address
	reply.Render()

	w.bandsRendered.Add(1)
	w.logger.Debugf("Rendered band %s", reply.String())
	return nil
}

// RollCall lets a coordinator check that the worker is still reachable before sending it bands.
func (w *Worker) RollCall(ping bool, present *bool) error {
	*present = ping
	return nil
}

// Wait blocks until the worker is stopped.
func (w *Worker) Wait() {
	w.Server.Wait()
}

// Stop shuts the server down. Later calls do nothing.
func (w *Worker) Stop() error {
	var err error
	w.stop.Do(func() {
		w.logger.Infof("Shutting down after rendering %d bands", w.BandsRendered())
		err = w.Server.Stop()
	})
	return err
}
