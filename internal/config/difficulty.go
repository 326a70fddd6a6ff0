package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyCustom DifficultyPreset = "custom" // keep the file's values as-is
)

// ParsePreset converts a flag or YAML value to a preset.
// The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(strings.ToLower(strings.TrimSpace(s))) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	case DifficultyCustom:
		return DifficultyCustom, nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or custom)", s)
}

// ApplyPreset adjusts terrain density and tick speed for a preset.
// Normal keeps the classic 1 in 5 obstacle draw and one tick per second.
func ApplyPreset(cfg *FlightConfig, preset DifficultyPreset) {
	cfg.Difficulty.Preset = preset

	switch preset {
	case DifficultyEasy:
		cfg.Matrix.DrawMax = 40
		cfg.Timing.TickMS = 1500
	case DifficultyNormal:
		cfg.Matrix.DrawMax = 20
		cfg.Timing.TickMS = 1000
	case DifficultyHard:
		cfg.Matrix.DrawMax = 10
		cfg.Timing.TickMS = 500
	}
}
