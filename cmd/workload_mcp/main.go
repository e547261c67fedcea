// Package main runs the workload MCP server over stdio, for local MCP clients.
// The backend serves the same tools over HTTP at /mcp.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/2beens/gymload/internal/cache"
	"github.com/2beens/gymload/internal/config"
	"github.com/2beens/gymload/internal/db"
	"github.com/2beens/gymload/internal/gymstats/analysis"
	"github.com/2beens/gymload/internal/gymstats/exercises"
	workloadmcp "github.com/2beens/gymload/internal/gymstats/mcp"
	"github.com/2beens/gymload/internal/gymstats/programs"
	"github.com/2beens/gymload/internal/logging"
	"github.com/2beens/gymload/internal/workload"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development | ddev | dockerdev]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// stdout belongs to the MCP transport
	log.SetOutput(os.Stderr)
	log.SetLevel(logging.GetLevel(cfg.LogLevel))

	ctx := context.Background()
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     os.Getenv("GYMLOAD_POSTGRES_USER"),
		DBPassword: os.Getenv("GYMLOAD_POSTGRES_PASS"),
	})
	if err != nil {
		log.Fatalf("db pool: %v", err)
	}
	defer dbPool.Close()

	definitionsRepo := exercises.NewRepo(dbPool)
	analysisService := analysis.NewService(analysis.NewServiceParams{
		Definitions: definitionsRepo,
		Programs:    programs.NewRepo(dbPool),
		Cache:       cache.NewLocal(cfg.Analysis.CacheSizeMB),
		CacheTTL:    time.Duration(cfg.Analysis.CacheTTLSeconds) * time.Second,
		Options: workload.Options{
			ReportMissingMuscles: cfg.Analysis.ReportMissingMuscles,
		},
	})

	server := workloadmcp.NewServer(
		workloadmcp.NewPoolSchemaRepo(dbPool),
		definitionsRepo,
		analysisService,
	)
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatal(err)
	}
}
