package config

import (
	_ "embed"

	"github.com/vovakirdan/gridflight/internal/flight"
)

//go:embed defaults/flight.yaml
var defaultFlightYAML []byte

// Default returns the hardcoded default configuration. It matches the
// embedded YAML and is used if that fails to parse.
func Default() FlightConfig {
	return FlightConfig{
		Matrix: MatrixConfig{
			Size:    flight.DefaultMatrixSize,
			DrawMax: flight.DefaultDrawMax,
		},
		Display: DisplayConfig{
			BlockSize:     flight.DefaultBlockSize,
			CellWidthPx:   25,
			CellHeightPx:  50,
			FrameMarginPx: 100,
		},
		Timing: TimingConfig{
			TickMS: int(flight.DefaultTickInterval.Milliseconds()),
		},
		Difficulty: DifficultyConfig{
			Preset: DifficultyNormal,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlightYAML
}
