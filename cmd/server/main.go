package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/wadjakorntonsri/go-coupon-site/pkg/adapters/handler"
	"github.com/wadjakorntonsri/go-coupon-site/pkg/adapters/repository/sqlite"
	"github.com/wadjakorntonsri/go-coupon-site/pkg/config"
	"github.com/wadjakorntonsri/go-coupon-site/pkg/core/services"
)

func main() {
	cfg := config.Load()

	// Initialize Repository
	repo, err := sqlite.NewSQLiteRepository(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Initialize Service (seeds the catalog, then lets persisted state win)
	catalog, err := services.NewCatalogService(context.Background(), repo, repo)
	if err != nil {
		log.Fatalf("Failed to initialize catalog: %v", err)
	}

	// Initialize Auth Gate
	gate := handler.NewSessionGate(cfg, repo)

	// Initialize Router
	mux := handler.NewRouter(cfg, catalog, catalog, gate)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Printf("Server starting on port %s", cfg.Port)
	if err := server.ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}
