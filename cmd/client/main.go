package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fieldsync/parcelsync/internal/client/api"
	"github.com/fieldsync/parcelsync/internal/client/cli"
	"github.com/fieldsync/parcelsync/internal/client/connectivity"
	"github.com/fieldsync/parcelsync/internal/client/iocli"
	"github.com/fieldsync/parcelsync/internal/client/photos"
	"github.com/fieldsync/parcelsync/internal/client/queue"
	"github.com/fieldsync/parcelsync/internal/client/storage/boltdb"
	"github.com/fieldsync/parcelsync/internal/client/sync"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

const probeInterval = 30 * time.Second

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Sync server URL")
	dbPath := flag.String("db", "parcelsync-client.db", "Path to local database")
	token := flag.String("token", os.Getenv("PARCELSYNC_TOKEN"), "Device access token")
	collection := flag.String("collection", "parcels", "Document collection")
	verbose := flag.Bool("v", false, "Verbose logging")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logLevel := slog.LevelWarn
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	io := iocli.NewStdio()

	args := flag.Args()
	if len(args) == 0 {
		cli.New(io, nil).PrintUsage()
		os.Exit(1)
	}

	// Ctrl-C ends long-running commands (watch) gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	apiClient := api.NewClient(*serverURL, *token)

	monitor := connectivity.NewMonitor(apiClient, probeInterval, logger)
	monitor.Probe(ctx)

	opQueue := queue.New(apiClient, boltStorage, logger)
	photoCoord := photos.NewCoordinator(apiClient, logger)

	syncService := sync.NewService(
		apiClient,
		boltStorage,
		boltStorage,
		opQueue,
		photoCoord,
		monitor,
		*collection,
		logger,
	)

	cli.New(io, syncService).Run(ctx, args[0], args[1:])
}

func printVersion() {
	fmt.Printf("ParcelSync Field Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
