// SPDX-License-Identifier: MIT

// Command graphcheck-server serves the grading API configured from
// GRAPHCHECK_* environment variables.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/katalvlaran/graphcheck/checker"
	"github.com/katalvlaran/graphcheck/internal/config"
	"github.com/katalvlaran/graphcheck/internal/httpapi"
	"github.com/katalvlaran/graphcheck/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	level, err := cfg.Level()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	tol, err := cfg.Tolerances()
	if err != nil {
		slog.Error("load tolerances", "error", err)
		os.Exit(1)
	}

	logger := slog.Default()
	c := checker.New(
		checker.WithTolerances(tol),
		checker.WithLogger(logger),
		checker.WithParallel(cfg.Parallel),
	)
	refs := store.New(cfg.ReferenceDir, cfg.CacheTTL, logger)

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      httpapi.New(c, refs, logger, cfg.MaxBody).Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down server")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown", "error", err)
		}
	}()

	slog.Info("server starting", "addr", addr, "references", cfg.ReferenceDir, "parallel", cfg.Parallel)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
