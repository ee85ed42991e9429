package handler

import (
	"context"
	"net/http"

	"github.com/wadjakorntonsri/go-coupon-site/pkg/adapters/handler"
	"github.com/wadjakorntonsri/go-coupon-site/pkg/adapters/repository/sqlite"
	"github.com/wadjakorntonsri/go-coupon-site/pkg/config"
	"github.com/wadjakorntonsri/go-coupon-site/pkg/core/services"
)

var mux http.Handler

func init() {
	cfg := config.Load()

	// Note: On Vercel, db.sqlite is ephemeral unless using a remote SQL/Turso URL in DATABASE_URL
	repo, err := sqlite.NewSQLiteRepository(cfg.DatabaseURL)
	if err != nil {
		// Log but don't fatal, let internal error happen on request if crucial
		panic(err)
	}

	catalog, err := services.NewCatalogService(context.Background(), repo, repo)
	if err != nil {
		panic(err)
	}

	gate := handler.NewSessionGate(cfg, repo)
	mux = handler.NewRouter(cfg, catalog, catalog, gate)
}

// Handler is the entrypoint for Vercel
func Handler(w http.ResponseWriter, r *http.Request) {
	mux.ServeHTTP(w, r)
}
