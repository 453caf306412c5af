// Package mood implements the Mood repository using PostgreSQL.
// Moods are global rows identified by case-insensitive unique name and
// created lazily on first use via an atomic upsert.
package mood

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/norahazel/mydiary-backend/internal/adapter/postgres"
	"github.com/norahazel/mydiary-backend/internal/domain"
)

// Repo provides mood persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new mood repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const moodColumns = `id, name, emoji, created_at`

const getByNameSQL = `
SELECT ` + moodColumns + `
FROM moods
WHERE lower(name) = lower($1)`

const getByIDSQL = `
SELECT ` + moodColumns + `
FROM moods
WHERE id = $1`

const getByIDsSQL = `
SELECT ` + moodColumns + `
FROM moods
WHERE id = ANY($1::uuid[])`

const listSQL = `
SELECT ` + moodColumns + `
FROM moods
ORDER BY name`

// getOrCreateSQL upserts on the case-insensitive name index so that two
// sessions racing to create the same mood converge on a single row. The
// no-op DO UPDATE keeps RETURNING populated on conflict; the stored
// display case of an existing row wins.
const getOrCreateSQL = `
INSERT INTO moods (id, name, emoji, created_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (lower(name)) DO UPDATE SET name = moods.name
RETURNING ` + moodColumns

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// GetByName returns a mood by case-insensitive name.
// Returns domain.ErrNotFound if no mood has that name.
func (r *Repo) GetByName(ctx context.Context, name string) (*domain.Mood, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByNameSQL, name)
	m, err := scanMood(row)
	if err != nil {
		return nil, postgres.MapError(err, "mood", uuid.Nil)
	}

	return m, nil
}

// GetByID returns a mood by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Mood, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByIDSQL, id)
	m, err := scanMood(row)
	if err != nil {
		return nil, postgres.MapError(err, "mood", id)
	}

	return m, nil
}

// GetByIDs returns moods for multiple IDs (batch for list resolution).
// Missing IDs are silently absent from the result.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.Mood, error) {
	result := make(map[uuid.UUID]domain.Mood, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getByIDsSQL, ids)
	if err != nil {
		return nil, fmt.Errorf("get moods by ids: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		m, scanErr := scanMood(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("get moods by ids: %w", scanErr)
		}
		result[m.ID] = *m
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get moods by ids: %w", err)
	}

	return result, nil
}

// List returns all moods ordered by name.
func (r *Repo) List(ctx context.Context) ([]*domain.Mood, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listSQL)
	if err != nil {
		return nil, fmt.Errorf("list moods: %w", err)
	}
	defer rows.Close()

	var result []*domain.Mood
	for rows.Next() {
		m, scanErr := scanMood(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("list moods: %w", scanErr)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list moods: %w", err)
	}

	if result == nil {
		result = []*domain.Mood{}
	}

	return result, nil
}

// GetOrCreate resolves a mood by case-insensitive name, inserting a new
// row if absent. Atomic: concurrent callers with the same name get the
// same row.
func (r *Repo) GetOrCreate(ctx context.Context, name string, emoji *string) (*domain.Mood, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getOrCreateSQL,
		uuid.New(),
		name,
		ptrStringToPgText(emoji),
		time.Now().UTC(),
	)

	m, err := scanMood(row)
	if err != nil {
		return nil, postgres.MapError(err, "mood", uuid.Nil)
	}

	return m, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

type rowScanner interface {
	Scan(dest ...any) error
}

// scanMood scans a single row into a domain.Mood.
func scanMood(row rowScanner) (*domain.Mood, error) {
	var (
		m     domain.Mood
		emoji pgtype.Text
	)

	if err := row.Scan(&m.ID, &m.Name, &emoji, &m.CreatedAt); err != nil {
		return nil, err
	}

	if emoji.Valid {
		m.Emoji = &emoji.String
	}

	return &m, nil
}

// ptrStringToPgText converts a *string to pgtype.Text (nil -> NULL).
func ptrStringToPgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}
