// Package tag implements the Tag repository using PostgreSQL, including
// M2M entry linking via the entry_tags join table. Tag names are stored
// lowercase-normalized and created lazily on first use.
package tag

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/norahazel/mydiary-backend/internal/adapter/postgres"
	"github.com/norahazel/mydiary-backend/internal/domain"
)

// TagWithEntryID is the batch result type for GetByEntryIDs.
// It embeds domain.Tag and adds EntryID for grouping by the caller.
type TagWithEntryID struct {
	EntryID uuid.UUID
	domain.Tag
}

// Repo provides tag persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new tag repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const tagColumns = `id, name, created_at`

const getByNameSQL = `
SELECT ` + tagColumns + `
FROM tags
WHERE name = $1`

// getOrCreateSQL upserts on the unique name so concurrent creation of
// the same tag converges on a single row. The caller must pass a
// lowercase-normalized name.
const getOrCreateSQL = `
INSERT INTO tags (id, name, created_at)
VALUES ($1, $2, $3)
ON CONFLICT (name) DO UPDATE SET name = tags.name
RETURNING ` + tagColumns

const linkEntrySQL = `
INSERT INTO entry_tags (entry_id, tag_id, created_at)
VALUES ($1, $2, $3)
ON CONFLICT DO NOTHING`

const unlinkAllSQL = `
DELETE FROM entry_tags
WHERE entry_id = $1`

// getByEntryIDSQL returns the single most-recently-linked tag: storage
// is M2M but the view model exposes one tag per entry.
const getByEntryIDSQL = `
SELECT t.id, t.name, t.created_at
FROM entry_tags et
JOIN tags t ON et.tag_id = t.id
WHERE et.entry_id = $1
ORDER BY et.created_at DESC
LIMIT 1`

const getByEntryIDsSQL = `
SELECT DISTINCT ON (et.entry_id)
    et.entry_id,
    t.id, t.name, t.created_at
FROM entry_tags et
JOIN tags t ON et.tag_id = t.id
WHERE et.entry_id = ANY($1::uuid[])
ORDER BY et.entry_id, et.created_at DESC`

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// GetByName returns a tag by its normalized name.
// Returns domain.ErrNotFound if no tag has that name.
func (r *Repo) GetByName(ctx context.Context, name string) (*domain.Tag, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var t domain.Tag
	err := querier.QueryRow(ctx, getByNameSQL, name).Scan(&t.ID, &t.Name, &t.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "tag", uuid.Nil)
	}

	return &t, nil
}

// GetOrCreate resolves a tag by its normalized name, inserting a new
// row if absent. Atomic: concurrent callers with the same name get the
// same row.
func (r *Repo) GetOrCreate(ctx context.Context, name string) (*domain.Tag, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var t domain.Tag
	err := querier.QueryRow(ctx, getOrCreateSQL, uuid.New(), name, time.Now().UTC()).
		Scan(&t.ID, &t.Name, &t.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "tag", uuid.Nil)
	}

	return &t, nil
}

// LinkEntry creates an M2M link between an entry and a tag.
// Idempotent: linking the same pair twice is NOT an error (ON CONFLICT DO NOTHING).
func (r *Repo) LinkEntry(ctx context.Context, entryID, tagID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, linkEntrySQL, entryID, tagID, time.Now().UTC()); err != nil {
		return postgres.MapError(err, "entry_tag", entryID)
	}

	return nil
}

// UnlinkAll removes every tag link for an entry.
// Not an error if the entry has no links (0 rows affected is OK).
func (r *Repo) UnlinkAll(ctx context.Context, entryID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, unlinkAllSQL, entryID); err != nil {
		return postgres.MapError(err, "entry_tag", entryID)
	}

	return nil
}

// GetByEntryID returns the most-recently-linked tag for an entry.
// Returns domain.ErrNotFound when the entry has no tag links.
func (r *Repo) GetByEntryID(ctx context.Context, entryID uuid.UUID) (*domain.Tag, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var t domain.Tag
	err := querier.QueryRow(ctx, getByEntryIDSQL, entryID).Scan(&t.ID, &t.Name, &t.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "entry_tag", entryID)
	}

	return &t, nil
}

// GetByEntryIDs returns the most-recently-linked tag for each of the
// given entries (batch for list resolution). Entries with no tag links
// are absent from the result.
func (r *Repo) GetByEntryIDs(ctx context.Context, entryIDs []uuid.UUID) (map[uuid.UUID]domain.Tag, error) {
	result := make(map[uuid.UUID]domain.Tag, len(entryIDs))
	if len(entryIDs) == 0 {
		return result, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getByEntryIDsSQL, entryIDs)
	if err != nil {
		return nil, fmt.Errorf("get tags by entry_ids: %w", err)
	}
	defer rows.Close()

	grouped, err := scanTagsWithEntryID(rows)
	if err != nil {
		return nil, fmt.Errorf("get tags by entry_ids: %w", err)
	}

	for _, te := range grouped {
		result[te.EntryID] = te.Tag
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

// scanTagsWithEntryID scans multiple rows from GetByEntryIDs into TagWithEntryID slices.
func scanTagsWithEntryID(rows pgx.Rows) ([]TagWithEntryID, error) {
	var result []TagWithEntryID
	for rows.Next() {
		var te TagWithEntryID
		if err := rows.Scan(&te.EntryID, &te.ID, &te.Name, &te.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, te)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
