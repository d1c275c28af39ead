package worker

import (
	"encoding/json"
	"fmt"

	"ParallelMandelbrot/misc"
)

type Settings struct {
	// host:port the worker serves band renders on
	Address string
}

// NewSettings reads worker settings from a json file. An empty file name gives the defaults.
func NewSettings(settingsFile string) (Settings, error) {
	var s Settings
	if settingsFile != "" {
		fileBytes, err := misc.ReadFile(settingsFile)
		if err != nil {
			return s, err
		}
		if err = json.Unmarshal(fileBytes, &s); err != nil {
			return s, fmt.Errorf("parsing %s: %w", settingsFile, err)
		}
	}
	return s, s.Verify()
}

func (s *Settings) String() string {
	output := "\nWorker settings\n"
	output += fmt.Sprintf("Address: %s\n", s.Address)
	return output
}

// Verify picks the first non-loopback address and a free port when no address is set.
func (s *Settings) Verify() error {
	if s.Address != "" {
		return nil
	}

	host, err := misc.GetLocalAddress()
	if err != nil {
		return err
	}
	port, err := misc.GetFreePort()
	if err != nil {
		return err
	}
	s.Address = fmt.Sprintf("%s:%d", host, port)
	return nil
}
