// Package diary implements the journal entry operations: listing,
// creation, partial update, deletion, and PIN locking.
package diary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/norahazel/mydiary-backend/internal/config"
	"github.com/norahazel/mydiary-backend/internal/domain"
)

type entryRepo interface {
	GetByID(ctx context.Context, userID, entryID uuid.UUID) (*domain.Entry, error)
	List(ctx context.Context, userID uuid.UUID) ([]*domain.Entry, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
	Create(ctx context.Context, e *domain.Entry) (*domain.Entry, error)
	Update(ctx context.Context, userID, entryID uuid.UUID, params domain.EntryUpdateParams) (*domain.Entry, error)
	Delete(ctx context.Context, userID, entryID uuid.UUID) error
}

type moodRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Mood, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.Mood, error)
	GetOrCreate(ctx context.Context, name string, emoji *string) (*domain.Mood, error)
	List(ctx context.Context) ([]*domain.Mood, error)
}

type tagRepo interface {
	GetOrCreate(ctx context.Context, name string) (*domain.Tag, error)
	LinkEntry(ctx context.Context, entryID, tagID uuid.UUID) error
	UnlinkAll(ctx context.Context, entryID uuid.UUID) error
	GetByEntryID(ctx context.Context, entryID uuid.UUID) (*domain.Tag, error)
	GetByEntryIDs(ctx context.Context, entryIDs []uuid.UUID) (map[uuid.UUID]domain.Tag, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// accessGate guards reads of locked entries and is told when an entry's
// PIN state changes.
type accessGate interface {
	Check(ctx context.Context, entry *domain.Entry) error
	Forget(userID uuid.UUID, entryID uuid.UUID)
}

// Service provides diary entry operations.
type Service struct {
	log     *slog.Logger
	entries entryRepo
	moods   moodRepo
	tags    tagRepo
	tx      txManager
	gate    accessGate
	cfg     config.DiaryConfig
}

// NewService creates a new diary service.
func NewService(
	log *slog.Logger,
	entries entryRepo,
	moods moodRepo,
	tags tagRepo,
	tx txManager,
	gate accessGate,
	cfg config.DiaryConfig,
) *Service {
	return &Service{
		log:     log.With("service", "diary"),
		entries: entries,
		moods:   moods,
		tags:    tags,
		tx:      tx,
		gate:    gate,
		cfg:     cfg,
	}
}

// resolve attaches the entry's mood and tag so View() has everything
// it needs.
func (s *Service) resolve(ctx context.Context, entry *domain.Entry) error {
	if entry.MoodID != nil {
		mood, err := s.moods.GetByID(ctx, *entry.MoodID)
		if err != nil {
			return fmt.Errorf("resolve mood: %w", err)
		}
		entry.Mood = mood
	}

	tag, err := s.tags.GetByEntryID(ctx, entry.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("resolve tag: %w", err)
	}
	entry.Tag = tag

	return nil
}
