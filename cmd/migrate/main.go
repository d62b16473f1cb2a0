package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"courier-billing/internal/core/config"
	"courier-billing/internal/core/database"
	"courier-billing/internal/core/logger"

	"go.uber.org/zap"
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "usage: migrate [-steps n] up|down|version\n")
	flag.PrintDefaults()
}

func main() {
	steps := flag.Int("steps", 1, "number of migrations to roll back with down")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}

	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Named("migrate")
	ctx := context.Background()

	switch cmd := flag.Arg(0); cmd {
	case "up":
		if err := database.MigrateUp(ctx, cfg.Database.URL); err != nil {
			l.Fatal("Migration failed", zap.String("command", cmd), zap.Error(err))
		}
		l.Info("Migrations applied")
	case "down":
		if err := database.MigrateDown(ctx, cfg.Database.URL, *steps); err != nil {
			l.Fatal("Migration failed", zap.String("command", cmd), zap.Error(err))
		}
		l.Info("Migrations rolled back", zap.Int("steps", *steps))
	case "version":
		version, dirty, err := database.Version(ctx, cfg.Database.URL)
		if err != nil {
			l.Fatal("Migration failed", zap.String("command", cmd), zap.Error(err))
		}
		l.Info("Schema version", zap.Uint("version", version), zap.Bool("dirty", dirty))
	default:
		usage()
		os.Exit(2)
	}
}
