package main

import (
	"os"
	"os/signal"
	"syscall"

	"ParallelMandelbrot/coordinator"
	"ParallelMandelbrot/misc"
	"ParallelMandelbrot/worker"

	"github.com/BrugadaSyndrome/bslogger"
)

func main() {
	parseArguments()

	if isWorker {
		startWorker()
		return
	}
	startCoordinator()
}

func startCoordinator() {
	logger := bslogger.NewLogger("Main", bslogger.Normal, nil)

	settings, err := coordinatorSettings()
	misc.CheckError(err, logger, misc.Fatal)

	c, err := coordinator.NewCoordinator(settings)
	misc.CheckError(err, logger, misc.Fatal)

	err = c.Run()
	misc.CheckError(c.Close(), logger, misc.Warning)
	misc.CheckError(err, logger, misc.Fatal)
}

func startWorker() {
	logger := bslogger.NewLogger("Main", bslogger.Normal, nil)

	w, err := worker.NewWorker(worker.Settings{Address: address})
	misc.CheckError(err, logger, misc.Fatal)
	logger.Infof("Worker ready at %s", w.Address())

	// Serve until interrupted
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signals
		misc.CheckError(w.Stop(), logger, misc.Warning)
	}()
	w.Wait()
}
