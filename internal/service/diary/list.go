package diary

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/norahazel/mydiary-backend/internal/domain"
	"github.com/norahazel/mydiary-backend/pkg/ctxutil"
)

// ListEntries returns all entries of the authenticated user, newest first,
// reshaped for presentation with moods and tags resolved in batch.
func (s *Service) ListEntries(ctx context.Context) ([]domain.EntryView, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	entries, err := s.entries.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("diary.ListEntries: %w", err)
	}

	if err := s.resolveAll(ctx, entries); err != nil {
		return nil, fmt.Errorf("diary.ListEntries: %w", err)
	}

	views := make([]domain.EntryView, 0, len(entries))
	for _, e := range entries {
		views = append(views, e.View())
	}
	return views, nil
}

// GetEntry returns a single entry of the authenticated user. The access
// gate rejects locked entries the session has not unlocked.
func (s *Service) GetEntry(ctx context.Context, entryID uuid.UUID) (*domain.EntryView, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	entry, err := s.entries.GetByID(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}

	if err := s.gate.Check(ctx, entry); err != nil {
		return nil, err
	}

	if err := s.resolve(ctx, entry); err != nil {
		return nil, fmt.Errorf("diary.GetEntry: %w", err)
	}

	view := entry.View()
	return &view, nil
}

// ListMoods returns the global mood catalog.
func (s *Service) ListMoods(ctx context.Context) ([]*domain.Mood, error) {
	moods, err := s.moods.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("diary.ListMoods: %w", err)
	}
	return moods, nil
}

// resolveAll batch-attaches moods and tags for a list of entries.
func (s *Service) resolveAll(ctx context.Context, entries []*domain.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	moodIDs := make([]uuid.UUID, 0, len(entries))
	entryIDs := make([]uuid.UUID, 0, len(entries))
	for _, e := range entries {
		entryIDs = append(entryIDs, e.ID)
		if e.MoodID != nil {
			moodIDs = append(moodIDs, *e.MoodID)
		}
	}

	moods, err := s.moods.GetByIDs(ctx, moodIDs)
	if err != nil {
		return fmt.Errorf("resolve moods: %w", err)
	}
	tags, err := s.tags.GetByEntryIDs(ctx, entryIDs)
	if err != nil {
		return fmt.Errorf("resolve tags: %w", err)
	}

	for _, e := range entries {
		if e.MoodID != nil {
			if m, ok := moods[*e.MoodID]; ok {
				mood := m
				e.Mood = &mood
			}
		}
		if t, ok := tags[e.ID]; ok {
			tag := t
			e.Tag = &tag
		}
	}
	return nil
}
