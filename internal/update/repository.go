// Package update manages release records and the publish/list/delete flows
// around them.
package update

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Record is one published release artifact. Every upload creates a new
// immutable record; the only mutation is removal by id.
type Record struct {
	ID          string    `json:"id"`
	Author      string    `json:"author"`
	Title       string    `json:"title"`
	Version     string    `json:"version"`
	KeyScript   string    `json:"keyScript"`
	VersionType string    `json:"versionType"`
	UpdateDate  time.Time `json:"updateDate"`
	URL         string    `json:"url"`
}

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("update record not found")

// ErrDuplicateID is returned when an insert collides with an existing id.
// IDs embed an epoch-millisecond timestamp, so this only happens when two
// publishes land in the same millisecond.
var ErrDuplicateID = errors.New("update record id already exists")

// Repository handles all update-record database operations.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new Repository with the given connection pool.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Create inserts a new record.
func (r *Repository) Create(ctx context.Context, rec *Record) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO updates (id, author, title, version, key_script, version_type, update_date, url)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		rec.ID, rec.Author, rec.Title, rec.Version, rec.KeyScript, rec.VersionType, rec.UpdateDate, rec.URL,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateID
		}
		return fmt.Errorf("create update record: %w", err)
	}
	return nil
}

// List returns all records, newest first.
func (r *Repository) List(ctx context.Context) ([]Record, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, author, title, version, key_script, version_type, update_date, url
		 FROM updates ORDER BY update_date DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list update records: %w", err)
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.Author, &rec.Title, &rec.Version,
			&rec.KeyScript, &rec.VersionType, &rec.UpdateDate, &rec.URL); err != nil {
			return nil, fmt.Errorf("scan update record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list update records: %w", err)
	}
	return records, nil
}

// Delete removes a record by id and returns the removed row. A single
// DELETE ... RETURNING keeps remove-and-echo atomic instead of the
// get-then-delete pair it replaces.
func (r *Repository) Delete(ctx context.Context, id string) (*Record, error) {
	rec := &Record{}
	err := r.db.QueryRow(ctx,
		`DELETE FROM updates WHERE id = $1
		 RETURNING id, author, title, version, key_script, version_type, update_date, url`,
		id,
	).Scan(&rec.ID, &rec.Author, &rec.Title, &rec.Version,
		&rec.KeyScript, &rec.VersionType, &rec.UpdateDate, &rec.URL)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("delete update record: %w", err)
	}
	return rec, nil
}

// isUniqueViolation checks whether an error is a PostgreSQL unique_violation (code 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
