/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the Subsidy Engine HTTP server.
  Handles configuration, dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Parse command-line flags
  2. Load configuration (YAML file + environment)
  3. Build the zap logger
  4. Create API handler and router
  5. Serve until SIGINT/SIGTERM, then shut down gracefully

COMMAND-LINE FLAGS:
  -config  YAML configuration file (default: subsidy.yaml, optional)
  -port    HTTP server port, overrides server.addr when set

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (server.shutdown_timeout)
  3. Exit

EXAMPLES:
  ./server
  ./server -port=3000
  SUBSIDY_LOG_LEVEL=debug ./server -config=/etc/subsidy.yaml

SEE ALSO:
  - config/config.go: Configuration keys and environment variables
  - api/server.go: Router configuration
*/
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/warp/subsidy-engine/api"
	"github.com/warp/subsidy-engine/config"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Flags
	configPath := flag.String("config", "subsidy.yaml", "YAML configuration file")
	port := flag.Int("port", 0, "HTTP server port (overrides config)")
	flag.Parse()

	if err := run(*configPath, *port); err != nil {
		fmt.Fprintf(os.Stderr, "server: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, port int) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if port > 0 {
		cfg.Server.Addr = fmt.Sprintf(":%d", port)
	}

	logger, err := cfg.Logging.NewLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	handler := api.NewHandler(logger)
	router := api.NewRouter(handler, cfg.CORS.AllowedOrigins)

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.GetReadTimeout(),
		WriteTimeout: cfg.Server.GetWriteTimeout(),
		IdleTimeout:  cfg.Server.GetIdleTimeout(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server starting", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.GetShutdownTimeout())
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped with error", zap.Error(err))
		return err
	}

	logger.Info("server stopped")
	return nil
}
