package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arjunmehra/dhaba/internal/config"
	"github.com/arjunmehra/dhaba/internal/database"
	"github.com/arjunmehra/dhaba/internal/logging"
	"github.com/arjunmehra/dhaba/internal/menu"
	"github.com/arjunmehra/dhaba/internal/server"
)

func main() {
	cfg := config.Load()
	logger := logging.Setup(cfg.LogLevel)

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		logger.Error("open database", "path", cfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	srv, err := server.New(db, cfg, logger)
	if err != nil {
		logger.Error("init server", "error", err)
		os.Exit(1)
	}

	// Seed the catalog on first boot only; an existing catalog, including
	// one the staff has edited down, is left alone.
	seeded, err := srv.MenuStore().Initialize(menu.Seed())
	if err != nil {
		logger.Error("initialize menu", "error", err)
		os.Exit(1)
	}
	if seeded {
		logger.Info("seeded menu catalog", "items", len(menu.Seed()))
	}

	httpServer := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      srv.Router(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("dhaba listening", "addr", cfg.ListenAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
		os.Exit(1)
	}
}
