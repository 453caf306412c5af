package diary

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/norahazel/mydiary-backend/internal/domain"
	"github.com/norahazel/mydiary-backend/pkg/ctxutil"
)

// DeleteEntry removes an entry of the authenticated user. Tag links go
// with it via ON DELETE CASCADE. Returns ErrNotFound for an unknown id,
// leaving everything else untouched.
func (s *Service) DeleteEntry(ctx context.Context, entryID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.entries.Delete(ctx, userID, entryID); err != nil {
		return fmt.Errorf("diary.DeleteEntry: %w", err)
	}

	s.gate.Forget(userID, entryID)

	s.log.InfoContext(ctx, "entry deleted",
		slog.String("entry_id", entryID.String()))
	return nil
}
