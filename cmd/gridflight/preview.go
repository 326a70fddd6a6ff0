package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gridflight/internal/flight"
	"github.com/vovakirdan/gridflight/internal/platform/headless"
)

var (
	flagPreviewWidth   int
	flagPreviewHeight  int
	flagPreviewNoColor bool
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print the starting viewport for a seed",
	Long: `Generate the terrain for a seed and print the viewport the plane
starts in, together with terrain statistics. Useful to pick seeds and check
difficulty presets.

Examples:
  gridflight preview --seed 42
  gridflight preview --seed 42 --difficulty hard --width 800 --height 500`,
	Args: cobra.NoArgs,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().IntVar(&flagPreviewWidth, "width", 1000, "Display width in pixels")
	previewCmd.Flags().IntVar(&flagPreviewHeight, "height", 600, "Display height in pixels")
	previewCmd.Flags().BoolVar(&flagPreviewNoColor, "no-color", false, "Disable colors")
}

func runPreview(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	opts := cfg.ControllerOptions(flagSeed, nil).Session
	session := flight.NewSession(opts)
	vp := session.Initialize(flagPreviewWidth, flagPreviewHeight)

	colored := !flagPreviewNoColor && term.IsTerminal(int(os.Stdout.Fd()))
	if err := headless.Render(os.Stdout, vp, headless.RenderOptions{Colored: colored}); err != nil {
		return err
	}

	snap := session.Snapshot()
	m := session.Matrix()
	fmt.Println()
	fmt.Println(headless.Legend(colored))
	fmt.Printf("matrix %dx%d  free %.1f%%  start (%d, %d)  view %dx%d blocks  attempts %d\n",
		m.Size(), m.Size(), m.FreeRatio()*100, snap.X, snap.Y, snap.VisibleX, snap.VisibleY, snap.Attempts)
	for _, s := range []flight.Status{flight.Mountain, flight.Tree, flight.Building, flight.Antenna} {
		fmt.Printf("  %-9s %d\n", s, m.Count(s))
	}
	return nil
}
