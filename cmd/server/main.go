package main

import (
	"log"
	"os"

	"github.com/marta/city-scout/internal/api"
	"github.com/marta/city-scout/internal/catalog"
	"github.com/marta/city-scout/internal/config"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cat, err := catalog.Load(cfg.FixturesDir)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	counts := cat.Counts()
	log.Printf("Catalog loaded: %d deals, %d events, %d restaurants, %d guides, %d ranked items, %d posts",
		counts["deals"], counts["events"], counts["restaurants"], counts["guides"], counts["rankings"], counts["posts"])

	srv := api.NewServer(cfg, cat)
	log.Printf("Server starting on port %s...", cfg.Port)
	if err := srv.Start(cfg.Port); err != nil {
		log.Fatal(err)
	}
}
