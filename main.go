package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"

	"github.com/joho/godotenv"

	"goroster/adapters/export"
	"goroster/adapters/tabular"
	"goroster/app"
	"goroster/internal/config"
	"goroster/ui"
)

func main() {
	// Load environment variables from .env file (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Profiling.Enabled {
		go func() {
			addr := "localhost:" + cfg.Profiling.Port
			log.Printf("[pprof] Profiling server on http://%s/debug/pprof/", addr)
			if err := http.ListenAndServe(addr, nil); err != nil {
				log.Printf("[pprof] Server stopped: %v", err)
			}
		}()
	}

	store := app.NewResultStore(cfg.Upload.ResultTTL)
	defer store.Stop()

	service := app.NewRosterService(tabular.NewReader(), store, cfg.Upload.MaxConcurrentBuilds, cfg.Upload.MaxUploadBytes())

	server, err := ui.NewServer(cfg, service, export.NewExcelWriter(), export.NewCSVWriter())
	if err != nil {
		log.Fatalf("Failed to initialize UI server: %v", err)
	}

	if err := server.Run(); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
