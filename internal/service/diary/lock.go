package diary

import (
	"context"

	"github.com/google/uuid"

	"github.com/norahazel/mydiary-backend/internal/domain"
)

// LockEntry protects an entry with a new PIN.
func (s *Service) LockEntry(ctx context.Context, input LockEntryInput) (*domain.EntryView, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	lock := true
	return s.UpdateEntry(ctx, UpdateEntryInput{
		EntryID:    input.EntryID,
		Lock:       &lock,
		PIN:        input.PIN,
		ConfirmPIN: input.ConfirmPIN,
	})
}

// UnlockEntry removes the lock from an entry entirely: is_locked drops and
// the stored PIN is cleared. This is the owner-level operation, distinct
// from a session unlock through the access gate.
func (s *Service) UnlockEntry(ctx context.Context, entryID uuid.UUID) (*domain.EntryView, error) {
	lock := false
	return s.UpdateEntry(ctx, UpdateEntryInput{
		EntryID: entryID,
		Lock:    &lock,
	})
}
