package diary

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/norahazel/mydiary-backend/internal/domain"
	"github.com/norahazel/mydiary-backend/pkg/ctxutil"
)

// UpdateEntry applies a partial update to an entry of the authenticated
// user. Emotion present re-resolves the mood (empty string clears it);
// Tag present replaces the link (empty string removes it). Changing the
// lock state goes through the same path: Lock=true stores the new PIN,
// Lock=false clears it.
func (s *Service) UpdateEntry(ctx context.Context, input UpdateEntryInput) (*domain.EntryView, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg); err != nil {
		return nil, err
	}

	// Existence check up front so an empty update still reports NotFound.
	current, err := s.entries.GetByID(ctx, userID, input.EntryID)
	if err != nil {
		return nil, err
	}

	if input.IsEmpty() {
		if err := s.resolve(ctx, current); err != nil {
			return nil, fmt.Errorf("diary.UpdateEntry: %w", err)
		}
		view := current.View()
		return &view, nil
	}

	var updated *domain.Entry
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		params := domain.EntryUpdateParams{
			Title:   trimPtr(input.Title),
			Content: input.Content,
		}

		if input.Emotion != nil {
			if emotion := strings.TrimSpace(*input.Emotion); emotion != "" {
				mood, moodErr := s.moods.GetOrCreate(txCtx, emotion, nil)
				if moodErr != nil {
					return fmt.Errorf("resolve mood: %w", moodErr)
				}
				params.MoodID = &mood.ID
			} else {
				params.ClearMood = true
			}
		}

		if input.Lock != nil {
			params.IsLocked = input.Lock
			if *input.Lock {
				pin := domain.NormalizePIN(input.PIN)
				params.PIN = &pin
			} else {
				params.ClearPIN = true
			}
		}

		var updateErr error
		updated, updateErr = s.entries.Update(txCtx, userID, input.EntryID, params)
		if updateErr != nil {
			return fmt.Errorf("update entry: %w", updateErr)
		}

		if input.Tag != nil {
			if unlinkErr := s.tags.UnlinkAll(txCtx, input.EntryID); unlinkErr != nil {
				return fmt.Errorf("unlink tags: %w", unlinkErr)
			}
			if name := domain.NormalizeName(*input.Tag); name != "" {
				tag, tagErr := s.tags.GetOrCreate(txCtx, name)
				if tagErr != nil {
					return fmt.Errorf("resolve tag: %w", tagErr)
				}
				if linkErr := s.tags.LinkEntry(txCtx, input.EntryID, tag.ID); linkErr != nil {
					return fmt.Errorf("link tag: %w", linkErr)
				}
			}
		}

		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("diary.UpdateEntry: %w", txErr)
	}

	// A changed lock state invalidates any session unlocks for the entry.
	if input.Lock != nil {
		s.gate.Forget(userID, input.EntryID)
	}

	if err := s.resolve(ctx, updated); err != nil {
		return nil, fmt.Errorf("diary.UpdateEntry: %w", err)
	}

	s.log.InfoContext(ctx, "entry updated",
		slog.String("entry_id", input.EntryID.String()))

	view := updated.View()
	return &view, nil
}

// trimPtr trims the pointed-to string, keeping nil as nil.
func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}
