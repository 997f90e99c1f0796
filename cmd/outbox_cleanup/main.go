package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"rvconsign/internal/config"
	"rvconsign/internal/database"
	"rvconsign/internal/domain/crm"
	"rvconsign/internal/hubspot"
)

const (
	doneRetention = 7 * 24 * time.Hour
	deadRetention = 30 * 24 * time.Hour
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

	svc := crm.NewService(hubspot.New(hubspot.Config{}), hubspot.DefaultStageMap(), crm.NewRepository(db), cfg.OutboxMaxTries)
	res, err := svc.PurgeOutbox(context.Background(), doneRetention, deadRetention)
	if err != nil {
		log.Fatalf("outbox cleanup failed: %v", err)
	}
	log.Printf("outbox cleanup completed: done=%d dead=%d", res.Done, res.Dead)
}
