package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"

	"ParallelMandelbrot/coordinator"
	"ParallelMandelbrot/mandelbrot"
	"ParallelMandelbrot/misc"
)

var (
	boundary                               float64
	maxIterations, workerCount             uint
	address, settingsFile, workerAddresses string
	isWorker                               bool
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] FILE PIXELS UPPERLEFT LOWERRIGHT\n", os.Args[0])
	fmt.Fprintf(flag.CommandLine.Output(), "       %s -isWorker [-address host:port]\n", os.Args[0])
	fmt.Fprintf(flag.CommandLine.Output(), "Example: %s mandel.png 1000x750 -1.20,0.35 -1,0.20\n", os.Args[0])
	flag.PrintDefaults()
}

func parseArguments() {
	// Coordinator values
	flag.Float64Var(&boundary, "boundary", mandelbrot.DefaultBoundary, "Squared magnitude a point escapes beyond")
	flag.UintVar(&maxIterations, "maxIterations", mandelbrot.DefaultMaxIterations, "Iterations to run to verify each point, at most 255")
	flag.StringVar(&settingsFile, "settingsFile", "", "Json file with coordinator settings, replaces the positional arguments")
	flag.StringVar(&workerAddresses, "workerAddresses", "", "Comma separated addresses of workers to render bands on")
	flag.UintVar(&workerCount, "workerCount", uint(runtime.NumCPU()), "Number of row bands rendered concurrently")

	// Worker values
	flag.BoolVar(&isWorker, "isWorker", false, "Is this instance a worker")
	flag.StringVar(&address, "address", "", "Address the worker listens on, defaults to a free port on this host")

	flag.Usage = usage
	flag.Parse()
}

// coordinatorSettings builds the render settings from the settings file or the positional arguments.
func coordinatorSettings() (coordinator.Settings, error) {
	if settingsFile != "" {
		return coordinator.NewSettings(settingsFile)
	}

	args := flag.Args()
	if len(args) != 4 {
		usage()
		os.Exit(1)
	}

	width, height, err := misc.ParseDimensions(args[1])
	if err != nil {
		return coordinator.Settings{}, fmt.Errorf("error parsing image dimensions: %w", err)
	}

	settings := coordinator.Settings{
		MandelbrotSettings: mandelbrot.Settings{
			Boundary:      boundary,
			MaxIterations: maxIterations,
		},
		Height:      height,
		LowerRight:  args[3],
		SavePath:    args[0],
		UpperLeft:   args[2],
		Width:       width,
		WorkerCount: workerCount,
	}
	if workerAddresses != "" {
		settings.WorkerAddresses = strings.Split(workerAddresses, ",")
	}
	return settings, settings.Verify()
}
