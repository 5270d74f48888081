package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/claude/classgrid/internal/catalog"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// InsertClass inserts a class row. Returns true if inserted, false if it was
// a duplicate of an existing title/level/category combination.
func (db *DB) InsertClass(ctx context.Context, c catalog.Class) (bool, error) {
	tag, err := db.Pool.Exec(ctx,
		`INSERT INTO classes (id, title, level, category, instructor, duration_min, progress)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)
		 ON CONFLICT DO NOTHING`,
		c.ID, c.Title, c.Level, c.Category, c.Instructor, c.DurationMin, c.Progress)
	if err != nil {
		return false, fmt.Errorf("inserting class: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// QueryClasses retrieves classes, optionally restricted by level, category,
// and a case-insensitive title substring. Empty filter values mean no
// restriction; ordering is stable by title.
func (db *DB) QueryClasses(ctx context.Context, level, category, search string) ([]catalog.Class, error) {
	query := `SELECT id, title, level, category, instructor, duration_min, progress FROM classes`
	var conds []string
	var args []any

	if level != "" {
		args = append(args, level)
		conds = append(conds, fmt.Sprintf("level = $%d", len(args)))
	}
	if category != "" {
		args = append(args, category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if search != "" {
		args = append(args, "%"+strings.ToLower(strings.TrimSpace(search))+"%")
		conds = append(conds, fmt.Sprintf("lower(title) LIKE $%d", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY title ASC"

	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying classes: %w", err)
	}
	defer rows.Close()

	return scanClassRows(rows)
}

// GetClass retrieves a single class by ID.
func (db *DB) GetClass(ctx context.Context, id uuid.UUID) (*catalog.Class, error) {
	row := db.Pool.QueryRow(ctx,
		`SELECT id, title, level, category, instructor, duration_min, progress
		 FROM classes WHERE id = $1`, id)

	var c catalog.Class
	if err := row.Scan(&c.ID, &c.Title, &c.Level, &c.Category, &c.Instructor, &c.DurationMin, &c.Progress); err != nil {
		return nil, fmt.Errorf("querying class: %w", err)
	}
	return &c, nil
}

// ListLevels returns the distinct level values present in the catalog, for
// populating the level selector.
func (db *DB) ListLevels(ctx context.Context) ([]string, error) {
	return db.listDistinct(ctx, "level")
}

// ListCategories returns the distinct category values present in the
// catalog, for populating the category selector.
func (db *DB) ListCategories(ctx context.Context) ([]string, error) {
	return db.listDistinct(ctx, "category")
}

func (db *DB) listDistinct(ctx context.Context, column string) ([]string, error) {
	// column is one of two fixed identifiers, never user input.
	rows, err := db.Pool.Query(ctx,
		fmt.Sprintf(`SELECT DISTINCT %s FROM classes WHERE %s <> '' ORDER BY %s`, column, column, column))
	if err != nil {
		return nil, fmt.Errorf("querying distinct %s: %w", column, err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scanning %s: %w", column, err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func scanClassRows(rows pgx.Rows) ([]catalog.Class, error) {
	var result []catalog.Class
	for rows.Next() {
		var c catalog.Class
		if err := rows.Scan(&c.ID, &c.Title, &c.Level, &c.Category, &c.Instructor, &c.DurationMin, &c.Progress); err != nil {
			return nil, fmt.Errorf("scanning class: %w", err)
		}
		result = append(result, c)
	}
	return result, rows.Err()
}
