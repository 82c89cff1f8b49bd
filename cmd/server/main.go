// Package main - Entry point for the steelcost API server
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"

	"steelcost/api"
	"steelcost/db"
	"steelcost/internal/logging"
)

const version = "1.0.0"

// serverEnv is the environment-driven server configuration
type serverEnv struct {
	// Addr is the listen address
	Addr string `env:"STEELCOST_ADDR" envDefault:":8080"`

	// LogLevel is the minimum log level
	LogLevel string `env:"STEELCOST_LOG_LEVEL" envDefault:"info"`

	// LogFormat is the log encoder (json, console)
	LogFormat string `env:"STEELCOST_LOG_FORMAT" envDefault:"json"`

	// DatabaseDSN enables the snapshot store when set
	DatabaseDSN string `env:"STEELCOST_DATABASE_DSN"`
}

func main() {
	var cfg serverEnv
	if err := env.Parse(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "parsing environment: %v\n", err)
		os.Exit(1)
	}

	if err := logging.Initialize(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: "stderr",
	}); err != nil {
		fmt.Fprintf(os.Stderr, "initializing logging: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	var store db.SnapshotStore
	if cfg.DatabaseDSN != "" {
		pg, err := db.OpenPostgres(context.Background(), cfg.DatabaseDSN)
		if err != nil {
			logging.Fatal("connecting snapshot store", zap.Error(err))
		}
		defer pg.Close()
		store = pg
		logging.Info("snapshot store connected")
	}

	server := api.NewServerWithStore(version, store)

	logging.Info("steelcost server listening",
		zap.String("addr", cfg.Addr),
		zap.String("version", version))

	if err := server.ListenAndServe(cfg.Addr); err != nil {
		logging.Fatal("server stopped", zap.Error(err))
	}
}
