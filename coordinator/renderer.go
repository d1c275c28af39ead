package coordinator

import (
	"fmt"

	"ParallelMandelbrot/task"

	"github.com/BrugadaSyndrome/multirpc"
)

// LocalAddress names the renderer of bands rendered in this process.
const LocalAddress = "local"

// BandRenderer fills the pixels of one band. It is called from the goroutine that owns the band, and may be
// called for several bands at once.
type BandRenderer interface {
	RenderBand(t *task.Task) error
}

// LocalRenderer renders bands in the calling goroutine.
type LocalRenderer struct{}

func (LocalRenderer) RenderBand(t *task.Task) error {
	t.Render()
	t.WorkerAddress = LocalAddress
	return nil
}

// RemoteRenderer sends bands to a worker process and copies the rendered rows back into the band.
type RemoteRenderer struct {
	address string
	client  multirpc.TcpClient
}

// NewRemoteRenderer connects to the worker at address and makes sure it answers.
func NewRemoteRenderer(address string) (*RemoteRenderer, error) {
	r := &RemoteRenderer{
		address: address,
		client:  multirpc.NewTcpClient(address, fmt.Sprintf("Worker %s", address)),
	}
	if err := r.client.Connect(); err != nil {
		return nil, fmt.Errorf("connecting to worker %s: %w", address, err)
	}

	var present bool
	if err := r.client.Call("Worker.RollCall", true, &present); err != nil {
		r.client.Disconnect()
		return nil, fmt.Errorf("worker %s missed roll call: %w", address, err)
	}
	if !present {
		r.client.Disconnect()
		return nil, fmt.Errorf("worker %s answered roll call as absent", address)
	}
	return r, nil
}

func (r *RemoteRenderer) Address() string {
	return r.address
}

func (r *RemoteRenderer) RenderBand(t *task.Task) error {
	// The worker allocates its own buffer, so only the band's description goes over the wire.
	request := *t
	request.Pixels = nil

	var reply task.Task
	if err := r.client.Call("Worker.RenderBand", request, &reply); err != nil {
		return fmt.Errorf("worker %s: %w", r.address, err)
	}
	if len(reply.Pixels) != len(t.Pixels) {
		return fmt.Errorf("worker %s returned %d pixels for a %s band", r.address, len(reply.Pixels), t.Bounds)
	}
	copy(t.Pixels, reply.Pixels)
	t.WorkerAddress = reply.WorkerAddress
	return nil
}

func (r *RemoteRenderer) Close() error {
	return r.client.Disconnect()
}
