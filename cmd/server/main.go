package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iudanet/qrfeedback/internal/server"
	"github.com/iudanet/qrfeedback/internal/server/config"
	"github.com/iudanet/qrfeedback/internal/server/middleware"
	"github.com/iudanet/qrfeedback/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	cfg, err := config.Load(os.Args[1:], os.Getenv, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Show version and exit if requested
	if cfg.ShowVersion {
		printVersion()
		os.Exit(0)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped with error", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.New(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow, cfg.TrustProxy)
	defer limiter.Stop()

	srv := &http.Server{
		Addr: cfg.Addr,
		Handler: server.NewRouter(server.Options{
			Logger:      logger,
			Storage:     store,
			RateLimiter: limiter,
			PublicURL:   cfg.PublicURL,
			Version:     Version,
		}),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errC := make(chan error, 1)
	go func() {
		logger.Info("QR Feedback server starting",
			slog.String("addr", cfg.Addr),
			slog.String("db", cfg.DBPath),
			slog.String("version", Version))
		errC <- srv.ListenAndServe()
	}()

	select {
	case err := <-errC:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	return nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogFormat == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

func printVersion() {
	fmt.Printf("QR Feedback Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
