package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgallion1/docsite/internal/api"
	"github.com/dgallion1/docsite/internal/config"
	"github.com/dgallion1/docsite/internal/docs"
	"github.com/dgallion1/docsite/internal/render"
	"github.com/dgallion1/docsite/internal/search"
	"github.com/dgallion1/docsite/internal/site"
)

func main() {
	cfg, err := config.Load()
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Level()}))
	if err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Navigation comes from exactly one source.
	table, err := docs.LoadTable(cfg.DocsRoot, cfg.NavFile)
	if err != nil {
		log.Error("failed to build navigation", "error", err)
		os.Exit(1)
	}
	source := "scan"
	if cfg.NavFile != "" {
		source = cfg.NavFile
	}
	log.Info("navigation loaded", "source", source, "categories", len(table), "pages", table.Len())

	resolver := docs.NewResolver(cfg.DocsRoot, table, render.NewMarkdown())

	var idx *search.Index
	if cfg.SearchEnabled {
		idx = search.Build(table, resolver, log)
		log.Info("search index built", "pages", idx.Len())
	}

	views, err := site.NewViews()
	if err != nil {
		log.Error("failed to load views", "error", err)
		os.Exit(1)
	}

	srv := api.NewServer(resolver, idx, views, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting docsite", "port", cfg.Port, "docs_root", cfg.DocsRoot)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
