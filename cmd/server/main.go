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

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/fieldsync/parcelsync/internal/server/handlers"
	"github.com/fieldsync/parcelsync/internal/server/jwt"
	"github.com/fieldsync/parcelsync/internal/server/middleware"
	"github.com/fieldsync/parcelsync/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

const (
	shutdownTimeout = 10 * time.Second
	tokenTTL        = 30 * 24 * time.Hour
	rateWindow      = time.Minute
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	addr := flag.String("addr", ":8080", "Listen address")
	dbPath := flag.String("db", "parcelsync-server.db", "Path to SQLite database")
	jwtSecret := flag.String("jwt-secret", os.Getenv("PARCELSYNC_JWT_SECRET"), "JWT signing secret")
	rate := flag.Int("rate", 300, "Max requests per client per minute")
	issueToken := flag.String("issue-token", "", "Issue an access token for the given device ID and exit")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if *jwtSecret == "" {
		logger.Error("JWT secret is required (set -jwt-secret or PARCELSYNC_JWT_SECRET)")
		os.Exit(1)
	}

	tokens := jwt.NewService(*jwtSecret, tokenTTL)

	if *issueToken != "" {
		token, err := tokens.IssueToken(*issueToken)
		if err != nil {
			logger.Error("Failed to issue token", "error", err)
			os.Exit(1)
		}
		fmt.Println(token)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.New(ctx, *dbPath)
	if err != nil {
		logger.Error("Failed to open database", "error", err, "path", *dbPath)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("Failed to close database", "error", err)
		}
	}()

	replicaID := uuid.NewString()

	syncHandler := handlers.NewSyncHandler(logger, store, replicaID)
	liveHandler := handlers.NewLiveHandler(logger, store, replicaID)
	blobHandler := handlers.NewBlobHandler(logger, store)
	healthHandler := handlers.NewHealthHandler(logger)

	router := mux.NewRouter()
	// Parcel keys may contain slashes; clients send them percent-escaped
	// as one path segment, so routes must match the encoded path. The
	// handlers unescape the route vars.
	router.UseEncodedPath()
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingWithSkip(logger, []string{"/api/v1/health"}))
	router.Use(middleware.RateLimitMiddleware(*rate, rateWindow, logger))

	router.HandleFunc("/api/v1/health", healthHandler.Health).Methods(http.MethodGet)

	protected := router.PathPrefix("/api/v1").Subrouter()
	protected.Use(middleware.AuthMiddleware(logger, tokens))

	protected.HandleFunc("/blobs/{id}", blobHandler.HandleUpload).Methods(http.MethodPut)
	protected.HandleFunc("/blobs/{id}", blobHandler.HandleDownload).Methods(http.MethodGet)
	protected.HandleFunc("/{collection}/{key}/sync", syncHandler.HandleSync).Methods(http.MethodPost)
	protected.HandleFunc("/{collection}/{key}/live", liveHandler.HandleLive).Methods(http.MethodGet)
	protected.HandleFunc("/{collection}/{key}", syncHandler.HandleView).Methods(http.MethodGet)
	protected.HandleFunc("/{collection}", syncHandler.HandleList).Methods(http.MethodGet)

	srv := &http.Server{
		Addr:              *addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("ParcelSync server listening", "addr", *addr, "version", Version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
}

func printVersion() {
	fmt.Printf("ParcelSync Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
