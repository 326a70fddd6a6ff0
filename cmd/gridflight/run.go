package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gridflight/internal/platform/headless"
)

var (
	flagRunTicks   uint64
	flagRunTurns   string
	flagRunWidth   int
	flagRunHeight  int
	flagRunRender  bool
	flagRunNoColor bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Fly headless and log every frame",
	Long: `Fly without an interactive display. Every tick is logged; with
--render each frame is also printed. The flight ends on a crash, after
--ticks ticks, or on Ctrl+C.

Turns are a comma separated list of tick:heading pairs. The heading is set
right after the given tick; tick 0 applies before the first move.

Examples:
  gridflight run --seed 42
  gridflight run --seed 42 --ticks 20 --turns 0:east,5:south
  gridflight run --render --width 600 --height 400`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	runCmd.Flags().Uint64Var(&flagRunTicks, "ticks", 0, "Stop after this many ticks (0 = until crash)")
	runCmd.Flags().StringVar(&flagRunTurns, "turns", "", "Heading script, e.g. 0:east,5:south")
	runCmd.Flags().IntVar(&flagRunWidth, "width", 1000, "Display width in pixels")
	runCmd.Flags().IntVar(&flagRunHeight, "height", 600, "Display height in pixels")
	runCmd.Flags().BoolVar(&flagRunRender, "render", false, "Print every frame to stdout")
	runCmd.Flags().BoolVar(&flagRunNoColor, "no-color", false, "Disable colors in rendered frames")
}

func runRun(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	turns, err := headless.ParseTurns(flagRunTurns)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger("gridflight", os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := headless.Options{
		Config:   cfg,
		Seed:     flagSeed,
		WidthPx:  flagRunWidth,
		HeightPx: flagRunHeight,
		MaxTicks: flagRunTicks,
		Turns:    turns,
		Logger:   logger,
	}
	if flagRunRender {
		opts.Out = os.Stdout
		opts.Colored = !flagRunNoColor && term.IsTerminal(int(os.Stdout.Fd()))
	}

	res, err := headless.NewRunner(opts).Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	if res.Crashed {
		fmt.Printf("Crashed after %d ticks: %s\n", res.Ticks, res.Crash.Message())
	} else {
		fmt.Printf("Flew %d ticks, now at (%d, %d) heading %s\n",
			res.Ticks, res.Snapshot.X, res.Snapshot.Y, res.Snapshot.Heading)
	}
	return nil
}
