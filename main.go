package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/epeers/fundmanager/config"
	"github.com/epeers/fundmanager/internal/fundapi"
	"github.com/epeers/fundmanager/internal/handlers"
	"github.com/epeers/fundmanager/internal/services"
	"github.com/epeers/fundmanager/internal/state"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// @title Fund Manager API
// @version 1.0
// @description JSON mirror of the mutual fund management screen.
// @BasePath /
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	level, err := cfg.Level()
	if err != nil {
		log.Warnf("%v, using info", err)
	}
	log.SetLevel(level)
	if level < log.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize gateway and screen state
	client := fundapi.NewClient(cfg.URL)
	store := state.NewStore()
	manager := services.NewFundManager(client, store)

	// The list is fetched once at startup; afterwards only mutations and
	// explicit refreshes reload it.
	log.Infof("Loading funds from %s%s", cfg.URL, fundapi.BasePath)
	manager.Refresh(ctx)

	router := handlers.NewRouter(manager)

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down server...")

		// Give outstanding requests 5 seconds to complete
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server error: %v", err)
	}

	fmt.Println("Server exited")
}
