// Package config provides YAML-based configuration loading and difficulty
// presets for Grid Flight.
package config

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridflight/internal/flight"
)

// FlightConfig contains all tunables of the game.
type FlightConfig struct {
	Matrix     MatrixConfig     `yaml:"matrix"`
	Display    DisplayConfig    `yaml:"display"`
	Timing     TimingConfig     `yaml:"timing"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// MatrixConfig defines terrain generation.
type MatrixConfig struct {
	Size    int `yaml:"size"`
	DrawMax int `yaml:"draw_max"`
}

// DisplayConfig defines how display areas map to blocks.
type DisplayConfig struct {
	BlockSize     int `yaml:"block_size"`
	CellWidthPx   int `yaml:"cell_width_px"`
	CellHeightPx  int `yaml:"cell_height_px"`
	FrameMarginPx int `yaml:"frame_margin_px"`
}

// TimingConfig defines the tick period.
type TimingConfig struct {
	TickMS int `yaml:"tick_ms"`
}

// DifficultyConfig selects a preset.
type DifficultyConfig struct {
	Preset DifficultyPreset `yaml:"preset"`
}

// TickInterval returns the tick period as a duration.
func (c FlightConfig) TickInterval() time.Duration {
	return time.Duration(c.Timing.TickMS) * time.Millisecond
}

// Validate checks that every field is usable.
func (c FlightConfig) Validate() error {
	switch {
	case c.Matrix.Size <= 0:
		return fmt.Errorf("config: matrix.size must be positive, got %d", c.Matrix.Size)
	case c.Matrix.DrawMax < int(flight.Antenna):
		return fmt.Errorf("config: matrix.draw_max must be at least %d, got %d", int(flight.Antenna), c.Matrix.DrawMax)
	case c.Display.BlockSize <= 0:
		return fmt.Errorf("config: display.block_size must be positive, got %d", c.Display.BlockSize)
	case c.Display.CellWidthPx <= 0 || c.Display.CellHeightPx <= 0:
		return fmt.Errorf("config: display cell size must be positive, got %dx%d",
			c.Display.CellWidthPx, c.Display.CellHeightPx)
	case c.Display.FrameMarginPx < 0:
		return fmt.Errorf("config: display.frame_margin_px must not be negative, got %d", c.Display.FrameMarginPx)
	case c.Timing.TickMS <= 0:
		return fmt.Errorf("config: timing.tick_ms must be positive, got %d", c.Timing.TickMS)
	}
	if _, err := ParsePreset(string(c.Difficulty.Preset)); err != nil {
		return err
	}
	return nil
}

// TerminalPixels converts a terminal area in cells to virtual pixels.
func (c FlightConfig) TerminalPixels(cols, rows int) (int, int) {
	return cols * c.Display.CellWidthPx, rows * c.Display.CellHeightPx
}

// BlockCells returns how many terminal columns and rows one block covers.
func (c FlightConfig) BlockCells() (int, int) {
	w := max(c.Display.BlockSize/c.Display.CellWidthPx, 1)
	h := max(c.Display.BlockSize/c.Display.CellHeightPx, 1)
	return w, h
}

// ControllerOptions builds the flight controller options for this config.
func (c FlightConfig) ControllerOptions(seed int64, logger *log.Logger) flight.ControllerOptions {
	return flight.ControllerOptions{
		Session: flight.SessionOptions{
			MatrixSize: c.Matrix.Size,
			BlockSize:  c.Display.BlockSize,
			DrawMax:    c.Matrix.DrawMax,
			Seed:       seed,
			Logger:     logger,
		},
		TickInterval: c.TickInterval(),
		Logger:       logger,
	}
}
