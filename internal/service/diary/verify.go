package diary

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/norahazel/mydiary-backend/internal/domain"
	"github.com/norahazel/mydiary-backend/pkg/ctxutil"
)

// PINVerifier checks PIN candidates against stored entries. It is a
// standalone piece so the access gate can be wired before the diary
// service (the service itself depends on the gate).
type PINVerifier struct {
	entries entryRepo
}

// NewPINVerifier creates a PIN verifier over the entry repository.
func NewPINVerifier(entries entryRepo) *PINVerifier {
	return &PINVerifier{entries: entries}
}

// VerifyEntryPIN compares a candidate PIN against the stored one using
// normalized forms. Returns false for a mismatch or an unlocked entry,
// ErrNotFound for an unknown id. The lookup is user-scoped, so callers
// can surface not-found without leaking other users' entries.
func (v *PINVerifier) VerifyEntryPIN(ctx context.Context, entryID uuid.UUID, pin string) (bool, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return false, domain.ErrUnauthorized
	}

	entry, err := v.entries.GetByID(ctx, userID, entryID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, err
		}
		return false, fmt.Errorf("diary.VerifyEntryPIN: %w", err)
	}

	return entry.MatchesPIN(pin), nil
}

// VerifyEntryPIN exposes PIN verification as an entry store operation.
// Unlike the gate-facing PINVerifier, an unknown id is not an error here:
// the answer is simply "does not match".
func (s *Service) VerifyEntryPIN(ctx context.Context, entryID uuid.UUID, pin string) (bool, error) {
	verified, err := (&PINVerifier{entries: s.entries}).VerifyEntryPIN(ctx, entryID, pin)
	if err != nil && errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	return verified, err
}
