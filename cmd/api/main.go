package main

import (
	"log"

	"github.com/joho/godotenv"

	"goroster/adapters/tabular"
	"goroster/api"
	"goroster/app"
	"goroster/internal/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	store := app.NewResultStore(cfg.Upload.ResultTTL)
	defer store.Stop()

	service := app.NewRosterService(tabular.NewReader(), store, cfg.Upload.MaxConcurrentBuilds, cfg.Upload.MaxUploadBytes())

	if err := api.NewApp(cfg, service).Run(); err != nil {
		log.Fatalf("API server stopped: %v", err)
	}
}
