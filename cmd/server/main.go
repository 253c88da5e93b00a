package main

import (
	"log"
	"os"

	"github.com/blogsmith/internal/attribution"
	"github.com/blogsmith/internal/config"
	"github.com/blogsmith/internal/db"
	"github.com/blogsmith/internal/router"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found")
	}

	cfg := config.Load()

	if cfg.GeminiAPIKey == "" {
		log.Println("warning: GEMINI_API_KEY not set, blog generation will fail")
	}

	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	if err := db.EnsureUser(cfg.AdminUsername, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Printf("failed to seed admin account: %v", err)
	}

	host, err := os.Hostname()
	if err != nil {
		host = "unknown"
	}
	if err := attribution.NewTracker(cfg.AttributionRoot).LogDeployment(host); err != nil {
		log.Printf("failed to log deployment: %v", err)
	}

	r := router.Setup(cfg)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
