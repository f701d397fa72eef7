package main

// @title           SingSing Storefront API
// @version         1.0
// @description     Cart service of the SingSing produce storefront: normalized carts, badge count, toasts and priced summaries.

// @host      localhost:8080
// @BasePath  /api/v1

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"singsing/storefront/internal/app/config"
)

var (
	configPath = flag.String("config", "config/config.yaml", "config file path")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Config validation failed: %v", err)
	}
	log.Printf("Config loaded: %s, env: %s, storage: %s, notify: %s", cfg.App.Name, cfg.App.Env, cfg.Storage.Driver, cfg.Notify.Driver)

	app, cleanup, err := InitializeApp(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}
	defer cleanup()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           app.Engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		log.Printf("Starting HTTP server on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	for {
		select {
		case sig := <-sigChan:
			if sig == syscall.SIGHUP {
				reloadPrices(app)
				continue
			}
			log.Println("Received shutdown signal, gracefully shutting down...")
			gracefulShutdown(server)
			log.Println("Application stopped")
			return
		case err := <-serverErrChan:
			log.Fatalf("HTTP server error: %v", err)
		}
	}
}

// reloadPrices re-reads the price table after the importer rewrote it.
func reloadPrices(app *App) {
	if err := app.Prices.Reload(context.Background()); err != nil {
		log.Printf("Price table reload failed: %v", err)
		return
	}
	log.Println("Price table reloaded")
}

// gracefulShutdown drains in-flight requests, long polls included.
func gracefulShutdown(server *http.Server) {
	log.Println("Stopping HTTP server...")
	ctx, cancel := context.WithTimeout(context.Background(), 35*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	} else {
		log.Println("HTTP server stopped gracefully")
	}
}
