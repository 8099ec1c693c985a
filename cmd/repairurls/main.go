package main

import (
	"context"
	"fmt"
	"log"

	"github.com/maslima80/listingshow/adapters/media_storage"
	"github.com/maslima80/listingshow/adapters/persistence"
	videoUC "github.com/maslima80/listingshow/internal/application/usecase/video"
	"github.com/maslima80/listingshow/internal/config"
	"github.com/maslima80/listingshow/pkg/logger"
)

// One-shot migration: rewrites video asset URLs still stored in the legacy
// direct CDN format to embed URLs. Safe to run repeatedly.
func main() {
	fmt.Println("Repairing legacy video URLs...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: cannot connect Postgres: %v", err)
	}
	defer dbPool.Close()

	videoHost, err := media_storage.NewBunnyAdapter(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize video host: %v", err)
	}

	assetRepo := persistence.NewPostgresAssetRepo(dbPool, appLogger)
	repairUseCase := videoUC.NewRepairVideoURLsUseCase(assetRepo, videoHost, appLogger)

	out, err := repairUseCase.Execute(context.Background())
	if err != nil {
		log.Fatalf("FATAL: repair run failed: %v", err)
	}

	log.Printf("Done. scanned=%d rewritten=%d failed=%d", out.Scanned, out.Rewritten, out.Failed)
}
