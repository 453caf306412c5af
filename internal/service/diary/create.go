package diary

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/norahazel/mydiary-backend/internal/domain"
	"github.com/norahazel/mydiary-backend/pkg/ctxutil"
)

// CreateEntry creates a diary entry for the authenticated user. Mood and
// tag are resolved (or created) by name; entry insert and mood/tag linkage
// run in one transaction so a failed link leaves no half-written entry.
func (s *Service) CreateEntry(ctx context.Context, input CreateEntryInput) (*domain.EntryView, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg); err != nil {
		return nil, err
	}

	count, err := s.entries.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("diary.CreateEntry count: %w", err)
	}
	if count >= s.cfg.MaxEntriesPerUser {
		return nil, domain.NewValidationError("entries", "limit reached")
	}

	var created *domain.Entry
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := time.Now().UTC()
		entry := &domain.Entry{
			ID:        uuid.New(),
			UserID:    userID,
			Title:     strings.TrimSpace(input.Title),
			Content:   input.Content,
			CreatedAt: now,
			UpdatedAt: now,
		}

		if input.Lock {
			pin := domain.NormalizePIN(input.PIN)
			entry.IsLocked = true
			entry.PIN = &pin
		}

		mood, moodErr := s.moods.GetOrCreate(txCtx, strings.TrimSpace(input.Emotion), nil)
		if moodErr != nil {
			return fmt.Errorf("resolve mood: %w", moodErr)
		}
		entry.MoodID = &mood.ID
		entry.Mood = mood

		if err := entry.Validate(); err != nil {
			return err
		}

		var createErr error
		created, createErr = s.entries.Create(txCtx, entry)
		if createErr != nil {
			return fmt.Errorf("create entry: %w", createErr)
		}
		created.Mood = entry.Mood

		if name := domain.NormalizeName(input.Tag); name != "" {
			tag, tagErr := s.tags.GetOrCreate(txCtx, name)
			if tagErr != nil {
				return fmt.Errorf("resolve tag: %w", tagErr)
			}
			if linkErr := s.tags.LinkEntry(txCtx, created.ID, tag.ID); linkErr != nil {
				return fmt.Errorf("link tag: %w", linkErr)
			}
			created.Tag = tag
		}

		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("diary.CreateEntry: %w", txErr)
	}

	s.log.InfoContext(ctx, "entry created",
		slog.String("entry_id", created.ID.String()),
		slog.Bool("locked", created.IsLocked))

	view := created.View()
	return &view, nil
}
