package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the flight configuration.
// Search order: customPath -> ~/.gridflight/configs/flight.yaml ->
// ./configs/flight.yaml -> embedded default.
// Fields missing from a file keep their default values.
func Load(customPath string) (FlightConfig, error) {
	cfg := Default()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return finish(cfg, customPath)
	}

	if userCfgPath := userConfigPath("flight.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return finish(cfg, userCfgPath)
			}
			cfg = Default()
		}
	}

	if data, err := os.ReadFile("configs/flight.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return finish(cfg, "configs/flight.yaml")
		}
		cfg = Default()
	}

	if err := yaml.Unmarshal(defaultFlightYAML, &cfg); err != nil {
		return Default(), nil
	}
	return finish(cfg, "embedded default")
}

// finish applies the preset named in the file and validates the result.
func finish(cfg FlightConfig, source string) (FlightConfig, error) {
	preset, err := ParsePreset(string(cfg.Difficulty.Preset))
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", source, err)
	}
	// A preset other than custom overrides density and speed; normal is
	// the identity for the default file.
	if preset != DifficultyCustom && preset != DifficultyNormal {
		ApplyPreset(&cfg, preset)
	}
	cfg.Difficulty.Preset = preset
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", source, err)
	}
	return cfg, nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg FlightConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to marshal: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gridflight", "configs", filename)
}
