package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridflight/internal/platform/web"
)

var flagWebAddr string

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Serve the browser version",
	Long: `Serve Grid Flight over HTTP. Open the address in a browser; every tab
flies its own plane over a websocket.

Endpoints:
  /         - The game page
  /ws       - Websocket used by the page
  /healthz  - Health check with the number of connected clients

Examples:
  gridflight web
  gridflight web --addr :9000 --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagWebAddr, "addr", ":8080", "HTTP listen address (host:port)")
}

func runWeb(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger("gridflight-web", os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Serving gridflight on http://localhost%s\n", flagWebAddr)
	fmt.Println("Press Ctrl+C to stop")

	srv := web.NewServer(cfg, web.Options{
		Addr:   flagWebAddr,
		Seed:   flagSeed,
		Logger: logger,
	})
	return srv.ListenAndServe(ctx)
}
