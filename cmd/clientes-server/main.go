package main

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/celerix-dev/clientes/internal/api"
	"github.com/celerix-dev/clientes/internal/config"
	"github.com/celerix-dev/clientes/internal/engine"
	"github.com/celerix-dev/clientes/internal/vault"
	"github.com/gin-gonic/gin"
)

func main() {
	fmt.Println("Starting Clientes API...")

	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	// 2. Start the Engine
	store := engine.NewMemStore()
	if cfg.SeedFile != "" {
		n, err := engine.Seed(store, cfg.SeedFile)
		if err != nil {
			log.Fatalf("Failed to seed store from %s: %v", cfg.SeedFile, err)
		}
		fmt.Printf("Engine started. Seeded %d clientes.\n", n)
	} else {
		fmt.Println("Engine started. Store is empty.")
	}

	// 3. Initialize HTTP API
	h := &api.Handler{Store: store}
	r := gin.Default()
	r.Use(api.CORS())
	h.Register(r)
	r.NoRoute(api.NoRoute)

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
	}

	// 4. Setup TLS
	if cfg.EnableTLS {
		fmt.Println("Generating self-signed certificate...")
		cert, err := vault.GenerateSelfSignedCert()
		if err != nil {
			log.Fatalf("Failed to generate TLS certificate: %v", err)
		}
		srv.TLSConfig = &tls.Config{Certificates: []tls.Certificate{cert}}
		fmt.Println("TLS encryption enabled.")
	}

	// 5. Handle Graceful Shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	shutdownDone := make(chan struct{})

	go func() {
		defer close(shutdownDone)
		<-sigChan
		fmt.Println("\nShutdown signal received. Draining requests...")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("Shutdown did not complete cleanly: %v", err)
		}
	}()

	// 6. Start serving
	fmt.Printf("Clientes API listening on %s\n", cfg.Addr())
	if cfg.EnableTLS {
		err = srv.ListenAndServeTLS("", "")
	} else {
		err = srv.ListenAndServe()
	}
	if !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("HTTP server failed: %v", err)
	}
	<-shutdownDone
	fmt.Println("Exiting.")
}
