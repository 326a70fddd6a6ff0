// gridflight flies a plane one block per tick across random terrain.
//
// Usage:
//
//	gridflight play          - Fly in the terminal
//	gridflight serve         - Start SSH server for remote flights
//	gridflight web           - Serve the browser version
//	gridflight run           - Fly headless and log every frame
//	gridflight preview       - Print the starting viewport for a seed
//	gridflight config        - Show the effective or default configuration
//
// Global flags:
//
//	--config <path>        - Flight config YAML
//	--seed <value>         - RNG seed for reproducible terrain
//	--difficulty <preset>  - easy, normal, hard or custom
//	--log-file <path>      - Append logs to a file
//	--log-level <level>    - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridflight/internal/config"
)

var (
	// Global flags
	flagConfig     string
	flagSeed       int64
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gridflight",
	Short: "Grid Flight - steer a plane across random terrain",
	Long: `Grid Flight moves a plane one block per tick across a large random
terrain of mountains, trees, buildings and antennas. Steer with the arrow
keys and stay on free ground; the flight ends when the plane hits an
obstacle or leaves the map.

Available commands:
  play     - Fly in the terminal
  serve    - Start SSH server for remote flights
  web      - Serve the browser version
  run      - Fly headless and log every frame
  preview  - Print the starting viewport for a seed
  config   - Show the effective or default configuration

Examples:
  gridflight play
  gridflight play --difficulty hard
  gridflight serve --ssh :2222
  gridflight web --addr :8080
  gridflight run --seed 42 --turns 0:east,5:south
  gridflight preview --seed 42`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to flight config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, custom")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the flight config and applies --difficulty on top.
func loadConfig() (config.FlightConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty == "" {
		return cfg, nil
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)
	cfg.Difficulty.Preset = preset
	return cfg, nil
}

// newLogger builds the command logger. Logs go to --log-file when set and
// to fallback otherwise; a nil fallback discards them. The returned closer
// must be called on exit.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w := fallback
	closer := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closer = func() { f.Close() }
	}
	if w == nil {
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}
