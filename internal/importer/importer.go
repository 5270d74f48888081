// Package importer loads a YAML schedule file into the class catalog.
package importer

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/claude/classgrid/internal/catalog"
	"github.com/claude/classgrid/internal/storage"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Stats tracks import progress.
type Stats struct {
	ClassesParsed     int
	ClassesInserted   int
	ClassesDuplicated int
	ClassesSkipped    int
}

// scheduleFile mirrors the YAML layout of a schedule export.
type scheduleFile struct {
	Classes []scheduleEntry `yaml:"classes"`
}

type scheduleEntry struct {
	Title       string `yaml:"title"`
	Level       string `yaml:"level"`
	Category    string `yaml:"category"`
	Instructor  string `yaml:"instructor"`
	DurationMin int    `yaml:"duration_min"`
	Progress    int    `yaml:"progress"`
}

// Importer reads a schedule file and inserts classes into the DB.
type Importer struct {
	db     *storage.DB
	log    *slog.Logger
	dryRun bool
	stats  Stats
}

// New creates a new Importer.
func New(db *storage.DB, log *slog.Logger, dryRun bool) *Importer {
	return &Importer{db: db, log: log, dryRun: dryRun}
}

// ParseSchedule reads and validates a YAML schedule file. Entries without a
// title are dropped; missing level/category stay empty strings, which the
// filter engine treats as unmatchable by any explicit selector.
func ParseSchedule(path string) ([]catalog.Class, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("reading schedule file: %w", err)
	}

	var file scheduleFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, 0, fmt.Errorf("parsing schedule file: %w", err)
	}

	var skipped int
	classes := make([]catalog.Class, 0, len(file.Classes))
	for _, e := range file.Classes {
		if strings.TrimSpace(e.Title) == "" {
			skipped++
			continue
		}
		classes = append(classes, catalog.Class{
			ID:          classID(e.Title, e.Level, e.Category),
			Title:       e.Title,
			Level:       e.Level,
			Category:    e.Category,
			Instructor:  e.Instructor,
			DurationMin: e.DurationMin,
			Progress:    e.Progress,
		})
	}
	return classes, skipped, nil
}

// classID derives a stable ID from the class identity, so re-importing the
// same schedule never creates duplicates.
func classID(title, level, category string) uuid.UUID {
	key := title + "\x00" + level + "\x00" + category
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(key))
}

// Import loads the schedule at path into the database.
func (imp *Importer) Import(ctx context.Context, path string) (*Stats, error) {
	classes, skipped, err := ParseSchedule(path)
	if err != nil {
		return &imp.stats, err
	}
	imp.stats.ClassesParsed = len(classes)
	imp.stats.ClassesSkipped = skipped

	for _, c := range classes {
		if imp.dryRun {
			imp.log.Info("would insert class", "title", c.Title, "level", c.Level, "category", c.Category)
			continue
		}
		inserted, err := imp.db.InsertClass(ctx, c)
		if err != nil {
			return &imp.stats, fmt.Errorf("inserting class %q: %w", c.Title, err)
		}
		if inserted {
			imp.stats.ClassesInserted++
		} else {
			imp.stats.ClassesDuplicated++
		}
	}

	return &imp.stats, nil
}
