package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/claude/classgrid/internal/config"
	"github.com/claude/classgrid/internal/importer"
	"github.com/claude/classgrid/internal/storage"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	schedulePath := flag.String("schedule", "", "path to schedule YAML file (required)")
	dryRun := flag.Bool("dry-run", false, "report counts without inserting into database")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *schedulePath == "" {
		fmt.Fprintf(os.Stderr, "Usage: classgrid-import -config config.yaml -schedule /path/to/schedule.yaml [-dry-run]\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if _, err := os.Stat(*schedulePath); err != nil {
		log.Error("schedule file does not exist", "path", *schedulePath)
		os.Exit(1)
	}

	// Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	dsn := cfg.Database.DSN()

	// Run migrations
	if err := storage.RunMigrations(dsn, "migrations"); err != nil {
		log.Error("migration failed", "error", err)
		os.Exit(1)
	}
	log.Info("migrations applied")

	ctx := context.Background()

	if *dryRun {
		log.Info("DRY RUN mode — no data will be written to the database")
	}

	// Connect database
	db, err := storage.New(ctx, dsn)
	if err != nil {
		log.Error("failed to connect database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	log.Info("database connected")

	// Run import
	imp := importer.New(db, log, *dryRun)
	stats, err := imp.Import(ctx, *schedulePath)
	if err != nil {
		log.Error("import failed", "error", err)
		printStats(log, stats)
		os.Exit(1)
	}

	printStats(log, stats)
	log.Info("import complete")
}

func printStats(log *slog.Logger, stats *importer.Stats) {
	log.Info("import stats",
		"classes_parsed", stats.ClassesParsed,
		"classes_inserted", stats.ClassesInserted,
		"classes_duplicated", stats.ClassesDuplicated,
		"classes_skipped", stats.ClassesSkipped,
	)
}
