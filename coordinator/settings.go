package coordinator

import (
	"encoding/json"
	"errors"
	"fmt"
	"runtime"
	"strings"

	"ParallelMandelbrot/mandelbrot"
	"ParallelMandelbrot/misc"
)

// Settings describe one render. Corners are written the way the command line takes them, "re,im".
type Settings struct {
	MandelbrotSettings mandelbrot.Settings
	Height             uint
	LowerRight         string
	SavePath           string
	UpperLeft          string
	Width              uint
	WorkerAddresses    []string
	WorkerCount        uint

	lowerRight complex128
	upperLeft  complex128
}

// NewSettings reads settings from a json file and verifies them.
func NewSettings(settingsFile string) (Settings, error) {
	var s Settings
	fileBytes, err := misc.ReadFile(settingsFile)
	if err != nil {
		return s, err
	}
	if err = json.Unmarshal(fileBytes, &s); err != nil {
		return s, fmt.Errorf("parsing %s: %w", settingsFile, err)
	}
	return s, s.Verify()
}

func (s *Settings) String() string {
	output := "\nCoordinator settings\n"
	output += fmt.Sprintf("Image: %s\n", s.Bounds())
	output += fmt.Sprintf("Upper Left: %s\n", s.UpperLeft)
	output += fmt.Sprintf("Lower Right: %s\n", s.LowerRight)
	output += fmt.Sprintf("Worker Count: %d\n", s.WorkerCount)
	output += fmt.Sprintf("Worker Addresses: %s\n", strings.Join(s.WorkerAddresses, ","))
	output += fmt.Sprintf("Mandelbrot: %s\n", s.MandelbrotSettings.String())
	output += fmt.Sprintf("Save Path: %s", s.SavePath)
	return output
}

// Verify parses the corners and fills in defaults. The image size and both corners have no default.
func (s *Settings) Verify() error {
	if s.Width == 0 || s.Height == 0 {
		return fmt.Errorf("image dimensions %dx%d must both be positive", s.Width, s.Height)
	}
	if s.UpperLeft == "" || s.LowerRight == "" {
		return errors.New("both the upper left and the lower right corner are required")
	}

	var err error
	if s.upperLeft, err = misc.ParseComplex(s.UpperLeft); err != nil {
		return fmt.Errorf("upper left corner: %w", err)
	}
	if s.lowerRight, err = misc.ParseComplex(s.LowerRight); err != nil {
		return fmt.Errorf("lower right corner: %w", err)
	}

	if s.WorkerCount == 0 {
		s.WorkerCount = uint(runtime.NumCPU())
	}
	if s.SavePath == "" {
		s.SavePath = "mandel.png"
	}
	if _, err = misc.FormatFromPath(s.SavePath); err != nil {
		return err
	}
	return s.MandelbrotSettings.Verify()
}

func (s *Settings) Bounds() mandelbrot.Bounds {
	return mandelbrot.Bounds{Width: s.Width, Height: s.Height}
}

// Corners are the parsed upper left and lower right corners. Only valid after Verify.
func (s *Settings) Corners() (complex128, complex128) {
	return s.upperLeft, s.lowerRight
}
