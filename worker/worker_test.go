package worker

import (
	"bytes"
	"fmt"
	"testing"

	"ParallelMandelbrot/mandelbrot"
	"ParallelMandelbrot/misc"
	"ParallelMandelbrot/task"

	"github.com/BrugadaSyndrome/multirpc"
)

func startWorker(t *testing.T) (*Worker, *multirpc.TcpClient) {
	t.Helper()

	port, err := misc.GetFreePort()
	if err != nil {
		t.Fatalf("GetFreePort: %v", err)
	}
	w, err := NewWorker(Settings{Address: fmt.Sprintf("127.0.0.1:%d", port)})
	if err != nil {
		t.Fatalf("NewWorker: %v", err)
	}
	t.Cleanup(func() { w.Stop() })

	client := multirpc.NewTcpClient(w.Address(), "TestCoordinator")
	if err := client.Connect(); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	t.Cleanup(func() { client.Disconnect() })
	return w, &client
}

func TestRenderBand(t *testing.T) {
	w, client := startWorker(t)

	request := task.Task{
		ID:         3,
		Top:        12,
		Bounds:     mandelbrot.Bounds{Width: 16, Height: 5},
		UpperLeft:  complex(-1.20, 0.35),
		LowerRight: complex(-1.0, 0.30),
		Settings:   mandelbrot.NewSettings(),
	}
	var reply task.Task
	if err := client.Call("Worker.RenderBand", request, &reply); err != nil {
		t.Fatalf("Worker.RenderBand: %v", err)
	}

	want := make([]byte, request.Bounds.Pixels())
	mandelbrot.RenderBand(want, request.Bounds, request.UpperLeft, request.LowerRight)
	if !bytes.Equal(reply.Pixels, want) {
		t.Errorf("remote band differs from a local render")
	}
	if reply.ID != request.ID || reply.Top != request.Top {
		t.Errorf("reply is band %d at row %d, want band %d at row %d", reply.ID, reply.Top, request.ID, request.Top)
	}
	if reply.WorkerAddress != w.Address() {
		t.Errorf("reply rendered by %q, want %q", reply.WorkerAddress, w.Address())
	}
	if w.BandsRendered() != 1 {
		t.Errorf("BandsRendered = %d, want 1", w.BandsRendered())
	}
}

func TestRenderBandDefaultsSettings(t *testing.T) {
	_, client := startWorker(t)

	request := task.Task{
		Bounds:    mandelbrot.Bounds{Width: 1, Height: 1},
		UpperLeft: 2,
	}
	var reply task.Task
	if err := client.Call("Worker.RenderBand", request, &reply); err != nil {
		t.Fatalf("Worker.RenderBand: %v", err)
	}
	if len(reply.Pixels) != 1 || reply.Pixels[0] != 253 {
		t.Errorf("pixels = %v, want [253]", reply.Pixels)
	}
}

func TestRollCall(t *testing.T) {
	_, client := startWorker(t)

	var present bool
	if err := client.Call("Worker.RollCall", true, &present); err != nil {
		t.Fatalf("Worker.RollCall: %v", err)
	}
	if !present {
		t.Error("worker did not answer roll call")
	}
}

func TestStopTwice(t *testing.T) {
	w, _ := startWorker(t)

	if err := w.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if err := w.Stop(); err != nil {
		t.Errorf("second Stop: %v", err)
	}
	w.Wait()
}

func TestSettingsVerifyPicksAddress(t *testing.T) {
	s := Settings{Address: "10.0.0.7:51000"}
	if err := s.Verify(); err != nil || s.Address != "10.0.0.7:51000" {
		t.Errorf("Verify changed a set address to %q (%v)", s.Address, err)
	}
}
