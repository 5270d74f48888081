package mcp

import (
	"context"

	"github.com/claude/classgrid/internal/catalog"
	"github.com/claude/classgrid/internal/storage"
	"github.com/google/uuid"
)

// DataSource abstracts the catalog layer for MCP tools, so tests can supply
// an in-memory implementation in place of *storage.DB.
type DataSource interface {
	QueryClasses(ctx context.Context, level, category, search string) ([]catalog.Class, error)
	GetClass(ctx context.Context, id uuid.UUID) (*catalog.Class, error)
	ListLevels(ctx context.Context) ([]string, error)
	ListCategories(ctx context.Context) ([]string, error)
}

// Compile-time check: *storage.DB satisfies DataSource.
var _ DataSource = (*storage.DB)(nil)
