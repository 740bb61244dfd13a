package cmd

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/starwheel/ephemeris"
	"github.com/rustyeddy/starwheel/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the JSON API server",
	Long: `Serve starts the HTTP API exposing horoscope, aspects, moon-phase and
transit endpoints.

The API key is read from the STARWHEEL_API_KEY environment variable (a
.env file in the working directory is honored). Requests without a
matching bearer token are rejected.`,
	RunE: runServe,
}

var serveAddr string

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "listen address (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// Missing .env is fine; the variable may come from the environment.
	_ = godotenv.Load()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	addr := serveAddr
	if addr == "" {
		addr = cfg.Server.Addr
	}

	apiKey := os.Getenv("STARWHEEL_API_KEY")

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	srv := server.New(logger, ephemeris.New(), cfg, apiKey)

	logger.Info("listening", slog.String("addr", addr))
	if err := http.ListenAndServe(addr, srv.Router()); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}
