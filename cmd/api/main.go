package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"rvconsign/internal/config"
	"rvconsign/internal/database"
	"rvconsign/internal/jobs"
	"rvconsign/internal/server"
)

const crmJobTimeout = 10 * time.Minute

func main() {
	_ = godotenv.Load(".env")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}

	deps, err := server.NewDeps(cfg)
	if err != nil {
		log.Fatal(err)
	}
	srv := server.New(cfg, db, deps)

	var scheduler *jobs.Scheduler
	if cfg.CRMSyncCron != "" && srv.CRM.Enabled() {
		scheduler, err = jobs.NewScheduler(cfg.CRMSyncCron, srv.CRM, crmJobTimeout)
		if err != nil {
			log.Fatal(err)
		}
		scheduler.Start()
	}

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           srv.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Printf("api listening on :%s", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if scheduler != nil {
		scheduler.Stop()
	}
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
	log.Println("api stopped")
}
