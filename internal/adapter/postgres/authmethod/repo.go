// Package authmethod implements the AuthMethod repository using PostgreSQL.
package authmethod

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/norahazel/mydiary-backend/internal/adapter/postgres"
	"github.com/norahazel/mydiary-backend/internal/domain"
)

// Repo provides auth-method persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new auth method repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const authMethodColumns = `id, user_id, method, password_hash, created_at`

const createSQL = `
INSERT INTO auth_methods (id, user_id, method, password_hash, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + authMethodColumns

const getByUserAndMethodSQL = `
SELECT ` + authMethodColumns + `
FROM auth_methods
WHERE user_id = $1 AND method = $2`

// Create inserts a new auth method for a user.
// Returns domain.ErrAlreadyExists if the user already has that method.
func (r *Repo) Create(ctx context.Context, am *domain.AuthMethod) (*domain.AuthMethod, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var hash pgtype.Text
	if am.PasswordHash != nil {
		hash = pgtype.Text{String: *am.PasswordHash, Valid: true}
	}

	created, err := scanAuthMethod(querier.QueryRow(ctx, createSQL,
		uuid.New(), am.UserID, string(am.Method), hash, time.Now().UTC()))
	if err != nil {
		return nil, postgres.MapError(err, "auth_method", am.UserID)
	}

	return created, nil
}

// GetByUserAndMethod returns the auth method of the given type for a user.
// Returns domain.ErrNotFound if the user has no such method.
func (r *Repo) GetByUserAndMethod(ctx context.Context, userID uuid.UUID, method domain.AuthMethodType) (*domain.AuthMethod, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	am, err := scanAuthMethod(querier.QueryRow(ctx, getByUserAndMethodSQL, userID, string(method)))
	if err != nil {
		return nil, postgres.MapError(err, "auth_method", userID)
	}

	return am, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAuthMethod(row rowScanner) (*domain.AuthMethod, error) {
	var (
		am     domain.AuthMethod
		method string
		hash   pgtype.Text
	)

	if err := row.Scan(&am.ID, &am.UserID, &method, &hash, &am.CreatedAt); err != nil {
		return nil, err
	}

	am.Method = domain.AuthMethodType(method)
	if hash.Valid {
		am.PasswordHash = &hash.String
	}

	return &am, nil
}
