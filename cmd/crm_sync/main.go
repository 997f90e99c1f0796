// Command crm_sync runs one HubSpot bulk sync and one outbox retry pass, for
// use from an external scheduler.
package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/joho/godotenv"

	"rvconsign/internal/config"
	"rvconsign/internal/database"
	"rvconsign/internal/domain/crm"
	"rvconsign/internal/hubspot"
	"rvconsign/internal/jobs"
	"rvconsign/internal/pkg/outcome"
)

func main() {
	_ = godotenv.Load(".env")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	stages := hubspot.DefaultStageMap()
	if cfg.HubSpot.StageMapFile != "" {
		if stages, err = hubspot.LoadStageMap(cfg.HubSpot.StageMapFile); err != nil {
			log.Fatal(err)
		}
	}
	client := hubspot.New(hubspot.Config{
		AccessToken: cfg.HubSpot.AccessToken,
		BaseURL:     cfg.HubSpot.BaseURL,
		Timeout:     cfg.HubSpot.Timeout,
	})
	svc := crm.NewService(client, stages, crm.NewRepository(db), cfg.OutboxMaxTries)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	err = jobs.RunCRMSync(ctx, svc)
	if errors.Is(err, outcome.ErrSkipped) {
		log.Println("crm sync skipped: HUBSPOT_ACCESS_TOKEN is not set")
		return
	}
	if err != nil {
		log.Fatalf("crm sync failed: %v", err)
	}
	log.Println("crm sync completed")
}
