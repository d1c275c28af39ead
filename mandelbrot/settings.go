package mandelbrot

import (
	"fmt"

	"github.com/BrugadaSyndrome/bslogger"
)

const (
	DefaultBoundary      = 4.0
	DefaultMaxIterations = 255
)

// Settings configures the escape-time test. They are shipped to remote workers with every band so that both
// sides evaluate points identically.
type Settings struct {
	// Squared magnitude above which a point is considered escaped.
	Boundary float64
	// Number of iterations tried before a point is considered inside the set. Pixels are written as
	// 255 minus the escape iteration, so the limit can not exceed 255.
	MaxIterations uint
}

func NewSettings() Settings {
	return Settings{
		Boundary:      DefaultBoundary,
		MaxIterations: DefaultMaxIterations,
	}
}

func (s *Settings) String() string {
	return fmt.Sprintf("{Settings Boundary: %f MaxIterations: %d}", s.Boundary, s.MaxIterations)
}

// Verify fills in defaults for unset values and clamps the iteration limit to the intensity range.
func (s *Settings) Verify() error {
	logger := bslogger.NewLogger("MandelbrotSettings", bslogger.Normal, nil)

	if s.Boundary <= 0 {
		s.Boundary = DefaultBoundary
	}
	if s.MaxIterations == 0 {
		s.MaxIterations = DefaultMaxIterations
	}
	if s.MaxIterations > 255 {
		logger.Warningf("MaxIterations %d does not fit the 8 bit intensity scale, using 255", s.MaxIterations)
		s.MaxIterations = 255
	}
	return nil
}
