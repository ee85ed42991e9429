package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/wadjakorntonsri/go-coupon-site/pkg/adapters/repository/sqlite"
	"github.com/wadjakorntonsri/go-coupon-site/pkg/config"
	"github.com/wadjakorntonsri/go-coupon-site/pkg/core/domain"
	"github.com/wadjakorntonsri/go-coupon-site/pkg/core/services"
	"github.com/wadjakorntonsri/go-coupon-site/pkg/seed"
)

func main() {
	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	importCmd := flag.NewFlagSet("import", flag.ExitOnError)
	importFile := importCmd.String("file", "", "JSON file to import")
	resetCmd := flag.NewFlagSet("reset", flag.ExitOnError)

	if len(os.Args) < 2 {
		fmt.Println("expected 'export', 'import' or 'reset' subcommands")
		os.Exit(1)
	}

	cfg := config.Load()
	repo, err := sqlite.NewSQLiteRepository(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to db: %v", err)
	}

	ctx := context.Background()
	catalog, err := services.NewCatalogService(ctx, repo, repo)
	if err != nil {
		log.Fatalf("Failed to initialize catalog: %v", err)
	}

	switch os.Args[1] {
	case "export":
		exportCmd.Parse(os.Args[2:])
		doExport(ctx, catalog)
	case "import":
		importCmd.Parse(os.Args[2:])
		if *importFile == "" {
			importCmd.PrintDefaults()
			os.Exit(1)
		}
		doImport(ctx, catalog, *importFile)
	case "reset":
		resetCmd.Parse(os.Args[2:])
		doReset(ctx, catalog)
	default:
		fmt.Println("expected 'export', 'import' or 'reset' subcommands")
		os.Exit(1)
	}
}

// doExport dumps the current coupon collection (persisted state wins over
// seed, same as the server) as indented JSON on stdout.
func doExport(ctx context.Context, catalog *services.CatalogService) {
	coupons := catalog.AllCoupons(ctx)

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(coupons); err != nil {
		log.Fatalf("Encode failed: %v", err)
	}
}

// doImport replaces the whole persisted collection with the file contents.
func doImport(ctx context.Context, catalog *services.CatalogService, filename string) {
	file, err := os.Open(filename)
	if err != nil {
		log.Fatalf("Failed to open file: %v", err)
	}
	defer file.Close()

	var coupons []domain.Coupon
	if err := json.NewDecoder(file).Decode(&coupons); err != nil {
		log.Fatalf("Decode failed: %v", err)
	}

	if err := catalog.ReplaceCoupons(ctx, coupons); err != nil {
		log.Fatalf("Import failed: %v", err)
	}
	log.Printf("Imported %d coupons", len(coupons))
}

// doReset restores the seed dataset, discarding persisted counters.
func doReset(ctx context.Context, catalog *services.CatalogService) {
	coupons := seed.Coupons()
	if err := catalog.ReplaceCoupons(ctx, coupons); err != nil {
		log.Fatalf("Reset failed: %v", err)
	}
	log.Printf("Reset catalog to %d seed coupons", len(coupons))
}
