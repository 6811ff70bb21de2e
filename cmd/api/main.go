package main

import (
	"log"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"retailedge/adapters/excel"
	"retailedge/adapters/fetch"
	"retailedge/adapters/postgres"
	"retailedge/app"
	"retailedge/internal/api"
	"retailedge/internal/config"
	"retailedge/internal/logging"
)

func main() {
	// .env is optional; production supplies real environment variables.
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logging.NewDefaultLogger()

	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	logger.Info("Connected to database")

	service := app.NewAnalysisService(
		fetch.NewHTTPFetcher(cfg.Fetch.Timeout, cfg.Fetch.MaxBodySize),
		excel.NewDataReader(),
		postgres.NewProjectRepository(db),
		cfg.Analysis.MaxConcurrent,
	)

	server := api.NewServer(service)

	addr := ":" + cfg.Server.Port
	logger.Info("Starting analysis server on %s", addr)
	if err := http.ListenAndServe(addr, server.Router()); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
