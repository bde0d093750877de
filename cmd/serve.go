package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/alexiusacademia/beamcalc/internal/api"
	"github.com/alexiusacademia/beamcalc/internal/config"
	"github.com/alexiusacademia/beamcalc/internal/logging"
	"github.com/alexiusacademia/beamcalc/internal/version"
)

var (
	serveAddr    string
	serveEnvFile string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Serve the beam solver over HTTP.

Routes:
  GET  /health           liveness
  GET  /version          build information
  POST /api/analyze      reactions, extremes and sampled V/M as JSON
  POST /api/diagram.svg  load, shear and moment diagrams
  POST /api/report.pdf   PDF calculation report

Configuration is read from the environment and an optional .env file:
  BEAMCALC_ADDR          listen address (default 127.0.0.1:8080)
  BEAMCALC_RATE          requests per second per client IP (default 5)
  BEAMCALC_BURST         burst per client IP (default 10)
  BEAMCALC_LOG_LEVEL     debug, info, warn or error (default info)
  BEAMCALC_CORS_ORIGINS  comma separated allowed origins`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides BEAMCALC_ADDR)")
	serveCmd.Flags().StringVar(&serveEnvFile, "env-file", ".env", "Environment file to load")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(serveEnvFile)
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.Addr = serveAddr
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	if logger, err = logging.New(cfg.LogLevel); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return serve(ctx, cfg, logger)
}

// serve runs the API until ctx is cancelled, then shuts down gracefully
func serve(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           api.NewServer(cfg, logger).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening", zap.String("addr", cfg.Addr), zap.String("version", version.Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
