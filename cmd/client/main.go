package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/qrfeedback/internal/client/api"
	"github.com/iudanet/qrfeedback/internal/client/cli"
	"github.com/iudanet/qrfeedback/internal/client/iocli"
	"github.com/iudanet/qrfeedback/internal/client/outbox"
	"github.com/iudanet/qrfeedback/internal/client/storage/boltdb"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

const (
	defaultServerURL = "http://localhost:8080"
	defaultDBPath    = "qrfeedback-client.db"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", envOr("QRFEEDBACK_SERVER", defaultServerURL), "Server URL")
	dbPath := flag.String("db", envOr("QRFEEDBACK_CLIENT_DB", defaultDBPath), "Path to local outbox database")
	verbose := flag.Bool("verbose", false, "Log outbox activity to stderr")

	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	stdio := iocli.NewStdio()

	args := flag.Args()
	if len(args) == 0 {
		cli.New(stdio, nil, nil).PrintUsage()
		os.Exit(1)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, args, stdio, *serverURL, *dbPath, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, cli.ErrUnknownCommand) {
			cli.New(stdio, nil, nil).PrintUsage()
		}
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdio iocli.IO, serverURL, dbPath string, logger *slog.Logger) error {
	// Работа с маской не требует ни сервера, ни локальной БД
	if cli.IsOffline(args[0]) {
		return cli.New(stdio, nil, nil).Run(ctx, args)
	}

	boltStorage, err := boltdb.New(ctx, dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	apiClient := api.NewClient(serverURL)
	outboxService := outbox.NewService(apiClient, boltStorage, logger)

	return cli.New(stdio, apiClient, outboxService).Run(ctx, args)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func printVersion() {
	fmt.Printf("QR Feedback Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
