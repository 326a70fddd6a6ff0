package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gridflight/internal/core"
	"github.com/vovakirdan/gridflight/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Fly in the terminal",
	Long: `Start a flight in the terminal.

Controls:
  Arrows/WASD  - Steer north, south, east, west
  R            - Restart with new terrain
  ?            - Toggle help
  Q/Ctrl+C     - Quit

Resizing the terminal starts a new flight sized to the window.

Difficulty options:
  easy    - Sparse terrain, slow ticks
  normal  - The classic settings
  hard    - Dense terrain, fast ticks
  custom  - Use the config file values as they are

Examples:
  gridflight play
  gridflight play --difficulty easy
  gridflight play --seed 42 --log-file flight.log
  gridflight play --config ./my-flight.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// stdout belongs to the UI, so logs only go to --log-file.
	logger, closeLog, err := newLogger("gridflight", nil)
	if err != nil {
		return err
	}
	defer closeLog()

	rt := core.DefaultConfig()
	rt.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	logger.Info("starting flight", "cols", rt.ScreenW, "rows", rt.ScreenH, "difficulty", cfg.Difficulty.Preset)
	return tui.Run(cfg, rt, logger)
}
