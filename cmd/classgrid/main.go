package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/claude/classgrid/internal/board"
	"github.com/claude/classgrid/internal/catalog"
	"github.com/claude/classgrid/internal/config"
	classmcp "github.com/claude/classgrid/internal/mcp"
	"github.com/claude/classgrid/internal/notify"
	"github.com/claude/classgrid/internal/presets"
	"github.com/claude/classgrid/internal/server"
	"github.com/claude/classgrid/internal/storage"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"tailscale.com/tsnet"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	migrateOnly := flag.Bool("migrate-only", false, "run migrations and exit")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	log.Info("ClassGrid starting", "version", Version)

	// Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Run migrations
	dsn := cfg.Database.DSN()
	if err := storage.RunMigrations(dsn, "migrations"); err != nil {
		log.Error("migration failed", "error", err)
		os.Exit(1)
	}
	log.Info("migrations applied")

	if *migrateOnly {
		log.Info("migrate-only: exiting")
		return
	}

	// Connect database
	ctx := context.Background()
	db, err := storage.New(ctx, dsn)
	if err != nil {
		log.Error("failed to connect database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	log.Info("database connected")

	// Load the schedule into the live board
	classes, err := db.QueryClasses(ctx, "", "", "")
	if err != nil {
		log.Error("failed to load classes", "error", err)
		os.Exit(1)
	}
	log.Info("schedule loaded", "classes", len(classes))

	placeholder := notify.NewPlaceholder(
		func() { log.Debug("placeholder shown") },
		func() { log.Debug("placeholder hidden") },
	)
	b := board.New(classes, board.NewLogDisplay(log), placeholder)

	toasts := notify.NewToaster(
		time.Duration(cfg.Board.ToastDwellMs)*time.Millisecond,
		time.Duration(cfg.Board.ToastExitMs)*time.Millisecond,
	)
	reload := func() ([]catalog.Class, error) {
		return db.QueryClasses(context.Background(), "", "", "")
	}
	ctrl := board.NewController(b, toasts, reload,
		time.Duration(cfg.Board.SearchDebounceMs)*time.Millisecond, log)

	// Saved filter presets (optional local state)
	var ps *presets.Store
	if dir := cfg.Board.PresetsDir; dir != "" {
		ps, err = presets.Open(dir)
		if err != nil {
			log.Warn("presets disabled", "error", err)
		} else {
			defer ps.Close()
		}
	}

	// Create server
	srv := server.New(db, ps, ctrl, cfg.Auth.APIKey, log)

	// Mount the MCP transport
	mcpSrv := classmcp.New(db, ps, Version, log)
	srv.SetMCP(mcpserver.NewStreamableHTTPServer(mcpSrv))

	// Start server — tsnet or plain HTTP
	var listener net.Listener
	var tsServer *tsnet.Server

	if cfg.Tailscale.Enabled {
		tsServer = &tsnet.Server{
			Hostname: cfg.Tailscale.Hostname,
			Dir:      cfg.Tailscale.StateDir,
		}
		if err := tsServer.Start(); err != nil {
			log.Error("tsnet start failed", "error", err)
			os.Exit(1)
		}
		defer tsServer.Close()

		lc, err := tsServer.LocalClient()
		if err != nil {
			log.Error("tsnet local client failed", "error", err)
			os.Exit(1)
		}
		srv.SetTailscale(lc)

		listener, err = tsServer.Listen("tcp", ":80")
		if err != nil {
			log.Error("tsnet listen failed", "error", err)
			os.Exit(1)
		}
		log.Info("tsnet server starting", "hostname", cfg.Tailscale.Hostname)
	} else {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		listener, err = net.Listen("tcp", addr)
		if err != nil {
			log.Error("listen failed", "addr", addr, "error", err)
			os.Exit(1)
		}
		log.Info("server starting", "addr", addr, "mode", "dev (no tailscale)")
	}

	httpSrv := &http.Server{Handler: srv}

	go func() {
		if err := httpSrv.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info("shutting down", "signal", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", "error", err)
	}
	log.Info("server stopped")
}
