package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/jobconnect-app/jobconnect/internal/config"
	"github.com/jobconnect-app/jobconnect/internal/database"
	"github.com/jobconnect-app/jobconnect/internal/handlers"
	"github.com/jobconnect-app/jobconnect/internal/logger"
)

// Local development server for the JobConnect client. It implements the
// same wire contract as the production job-board API, backed by sqlite.
func main() {
	// 1. Load Environment Variables
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Config error: ", err)
	}
	logger.Init(cfg.Env)
	logger.Info("starting dev server", "config", cfg.String())

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 2. Database Connection + Migrations
	db, err := database.Connect(cfg.DBPath)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	// 3. Seed the well-known test logins
	if err := database.Seed(db); err != nil {
		log.Fatal("Failed to seed accounts: ", err)
	}

	// 4. Router & Routes
	r := handlers.SetupRouter(db, cfg.JWTSecret)

	// 5. Serve
	log.Println("🚀 JobConnect dev server listening on", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal("Server failed to start: ", err)
	}
}
