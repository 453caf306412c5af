// Package entry implements the diary Entry repository using PostgreSQL.
// All queries use raw SQL except the partial update, which is built
// dynamically with squirrel.
package entry

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/norahazel/mydiary-backend/internal/adapter/postgres"
	"github.com/norahazel/mydiary-backend/internal/domain"
)

// Repo provides diary entry persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new entry repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// psql builds queries with PostgreSQL-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const entryColumns = `id, user_id, title, content, mood_id, is_locked, pin, created_at, updated_at`

const createSQL = `
INSERT INTO entries (id, user_id, title, content, mood_id, is_locked, pin, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + entryColumns

const getByIDSQL = `
SELECT ` + entryColumns + `
FROM entries
WHERE id = $1 AND user_id = $2`

const listByUserSQL = `
SELECT ` + entryColumns + `
FROM entries
WHERE user_id = $1
ORDER BY created_at DESC`

const deleteSQL = `
DELETE FROM entries
WHERE id = $1 AND user_id = $2`

const countByUserSQL = `SELECT count(*) FROM entries WHERE user_id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an entry by primary key with user_id filter.
// Returns domain.ErrNotFound if the entry does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, entryID uuid.UUID) (*domain.Entry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByIDSQL, entryID, userID)
	e, err := scanEntry(row)
	if err != nil {
		return nil, postgres.MapError(err, "entry", entryID)
	}

	return e, nil
}

// List returns all entries for a user, newest first by creation time.
// Returns an empty slice (not nil) when the user has no entries.
func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]*domain.Entry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	var result []*domain.Entry
	for rows.Next() {
		e, scanErr := scanEntry(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("list entries: %w", scanErr)
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	if result == nil {
		result = []*domain.Entry{}
	}

	return result, nil
}

// CountByUser returns the number of entries for a user.
func (r *Repo) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countByUserSQL, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count entries: %w", err)
	}

	return count, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new entry and returns the persisted domain.Entry.
func (r *Repo) Create(ctx context.Context, e *domain.Entry) (*domain.Entry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createSQL,
		e.ID,
		e.UserID,
		e.Title,
		e.Content,
		ptrUUIDToPg(e.MoodID),
		e.IsLocked,
		ptrStringToPgText(e.PIN),
		e.CreatedAt,
		e.UpdatedAt,
	)

	created, err := scanEntry(row)
	if err != nil {
		return nil, postgres.MapError(err, "entry", e.ID)
	}

	return created, nil
}

// Update applies a partial update built from non-nil params and bumps
// updated_at. Returns domain.ErrNotFound if the entry does not exist or
// belongs to another user.
func (r *Repo) Update(ctx context.Context, userID, entryID uuid.UUID, params domain.EntryUpdateParams) (*domain.Entry, error) {
	if params.IsEmpty() {
		return r.GetByID(ctx, userID, entryID)
	}

	b := psql.Update("entries").
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": entryID, "user_id": userID}).
		Suffix("RETURNING " + entryColumns)

	if params.Title != nil {
		b = b.Set("title", *params.Title)
	}
	if params.Content != nil {
		b = b.Set("content", *params.Content)
	}
	switch {
	case params.ClearMood:
		b = b.Set("mood_id", nil)
	case params.MoodID != nil:
		b = b.Set("mood_id", *params.MoodID)
	}
	if params.IsLocked != nil {
		b = b.Set("is_locked", *params.IsLocked)
	}
	switch {
	case params.ClearPIN:
		b = b.Set("pin", nil)
	case params.PIN != nil:
		b = b.Set("pin", *params.PIN)
	}

	sqlStr, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, sqlStr, args...)
	updated, err := scanEntry(row)
	if err != nil {
		return nil, postgres.MapError(err, "entry", entryID)
	}

	return updated, nil
}

// Delete removes an entry. CASCADE deletes its entry_tags links.
// Returns domain.ErrNotFound if the entry does not exist or belongs to another user.
func (r *Repo) Delete(ctx context.Context, userID, entryID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, deleteSQL, entryID, userID)
	if err != nil {
		return postgres.MapError(err, "entry", entryID)
	}

	if ct.RowsAffected() == 0 {
		return fmt.Errorf("entry %s: %w", entryID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

// scanEntry scans a single row into a domain.Entry.
func scanEntry(row pgx.Row) (*domain.Entry, error) {
	var (
		e       domain.Entry
		moodID  pgtype.UUID
		pin     pgtype.Text
	)

	err := row.Scan(
		&e.ID,
		&e.UserID,
		&e.Title,
		&e.Content,
		&moodID,
		&e.IsLocked,
		&pin,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if moodID.Valid {
		id := uuid.UUID(moodID.Bytes)
		e.MoodID = &id
	}
	if pin.Valid {
		e.PIN = &pin.String
	}

	return &e, nil
}

// ---------------------------------------------------------------------------
// pgtype helpers
// ---------------------------------------------------------------------------

// ptrStringToPgText converts a *string to pgtype.Text (nil -> NULL).
func ptrStringToPgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

// ptrUUIDToPg converts a *uuid.UUID to pgtype.UUID (nil -> NULL).
func ptrUUIDToPg(id *uuid.UUID) pgtype.UUID {
	if id == nil {
		return pgtype.UUID{}
	}
	return pgtype.UUID{Bytes: *id, Valid: true}
}
