package diary

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/norahazel/mydiary-backend/internal/domain"
)

var _ moodRepo = &moodRepoMock{}

type moodRepoMock struct {
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.Mood, error)
	GetByIDsFunc    func(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.Mood, error)
	GetOrCreateFunc func(ctx context.Context, name string, emoji *string) (*domain.Mood, error)
	ListFunc        func(ctx context.Context) ([]*domain.Mood, error)

	calls struct {
		GetByID     []struct{ ID uuid.UUID }
		GetByIDs    []struct{ IDs []uuid.UUID }
		GetOrCreate []struct {
			Name  string
			Emoji *string
		}
		List []struct{}
	}
	lock sync.RWMutex
}

func (mock *moodRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Mood, error) {
	if mock.GetByIDFunc == nil {
		panic("moodRepoMock.GetByIDFunc: method is nil but moodRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ID uuid.UUID }{ID: id})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *moodRepoMock) GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.Mood, error) {
	if mock.GetByIDsFunc == nil {
		panic("moodRepoMock.GetByIDsFunc: method is nil but moodRepo.GetByIDs was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByIDs = append(mock.calls.GetByIDs, struct{ IDs []uuid.UUID }{IDs: ids})
	mock.lock.Unlock()
	return mock.GetByIDsFunc(ctx, ids)
}

func (mock *moodRepoMock) GetOrCreate(ctx context.Context, name string, emoji *string) (*domain.Mood, error) {
	if mock.GetOrCreateFunc == nil {
		panic("moodRepoMock.GetOrCreateFunc: method is nil but moodRepo.GetOrCreate was just called")
	}
	mock.lock.Lock()
	mock.calls.GetOrCreate = append(mock.calls.GetOrCreate, struct {
		Name  string
		Emoji *string
	}{Name: name, Emoji: emoji})
	mock.lock.Unlock()
	return mock.GetOrCreateFunc(ctx, name, emoji)
}

func (mock *moodRepoMock) List(ctx context.Context) ([]*domain.Mood, error) {
	if mock.ListFunc == nil {
		panic("moodRepoMock.ListFunc: method is nil but moodRepo.List was just called")
	}
	mock.lock.Lock()
	mock.calls.List = append(mock.calls.List, struct{}{})
	mock.lock.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *moodRepoMock) GetOrCreateCalls() []struct {
	Name  string
	Emoji *string
} {
	mock.lock.RLock()
	calls := mock.calls.GetOrCreate
	mock.lock.RUnlock()
	return calls
}

var _ tagRepo = &tagRepoMock{}

type tagRepoMock struct {
	GetOrCreateFunc   func(ctx context.Context, name string) (*domain.Tag, error)
	LinkEntryFunc     func(ctx context.Context, entryID, tagID uuid.UUID) error
	UnlinkAllFunc     func(ctx context.Context, entryID uuid.UUID) error
	GetByEntryIDFunc  func(ctx context.Context, entryID uuid.UUID) (*domain.Tag, error)
	GetByEntryIDsFunc func(ctx context.Context, entryIDs []uuid.UUID) (map[uuid.UUID]domain.Tag, error)

	calls struct {
		GetOrCreate []struct{ Name string }
		LinkEntry   []struct {
			EntryID uuid.UUID
			TagID   uuid.UUID
		}
		UnlinkAll     []struct{ EntryID uuid.UUID }
		GetByEntryID  []struct{ EntryID uuid.UUID }
		GetByEntryIDs []struct{ EntryIDs []uuid.UUID }
	}
	lock sync.RWMutex
}

func (mock *tagRepoMock) GetOrCreate(ctx context.Context, name string) (*domain.Tag, error) {
	if mock.GetOrCreateFunc == nil {
		panic("tagRepoMock.GetOrCreateFunc: method is nil but tagRepo.GetOrCreate was just called")
	}
	mock.lock.Lock()
	mock.calls.GetOrCreate = append(mock.calls.GetOrCreate, struct{ Name string }{Name: name})
	mock.lock.Unlock()
	return mock.GetOrCreateFunc(ctx, name)
}

func (mock *tagRepoMock) LinkEntry(ctx context.Context, entryID, tagID uuid.UUID) error {
	if mock.LinkEntryFunc == nil {
		panic("tagRepoMock.LinkEntryFunc: method is nil but tagRepo.LinkEntry was just called")
	}
	mock.lock.Lock()
	mock.calls.LinkEntry = append(mock.calls.LinkEntry, struct {
		EntryID uuid.UUID
		TagID   uuid.UUID
	}{EntryID: entryID, TagID: tagID})
	mock.lock.Unlock()
	return mock.LinkEntryFunc(ctx, entryID, tagID)
}

func (mock *tagRepoMock) UnlinkAll(ctx context.Context, entryID uuid.UUID) error {
	if mock.UnlinkAllFunc == nil {
		panic("tagRepoMock.UnlinkAllFunc: method is nil but tagRepo.UnlinkAll was just called")
	}
	mock.lock.Lock()
	mock.calls.UnlinkAll = append(mock.calls.UnlinkAll, struct{ EntryID uuid.UUID }{EntryID: entryID})
	mock.lock.Unlock()
	return mock.UnlinkAllFunc(ctx, entryID)
}

func (mock *tagRepoMock) GetByEntryID(ctx context.Context, entryID uuid.UUID) (*domain.Tag, error) {
	if mock.GetByEntryIDFunc == nil {
		panic("tagRepoMock.GetByEntryIDFunc: method is nil but tagRepo.GetByEntryID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByEntryID = append(mock.calls.GetByEntryID, struct{ EntryID uuid.UUID }{EntryID: entryID})
	mock.lock.Unlock()
	return mock.GetByEntryIDFunc(ctx, entryID)
}

func (mock *tagRepoMock) GetByEntryIDs(ctx context.Context, entryIDs []uuid.UUID) (map[uuid.UUID]domain.Tag, error) {
	if mock.GetByEntryIDsFunc == nil {
		panic("tagRepoMock.GetByEntryIDsFunc: method is nil but tagRepo.GetByEntryIDs was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByEntryIDs = append(mock.calls.GetByEntryIDs, struct{ EntryIDs []uuid.UUID }{EntryIDs: entryIDs})
	mock.lock.Unlock()
	return mock.GetByEntryIDsFunc(ctx, entryIDs)
}

func (mock *tagRepoMock) GetOrCreateCalls() []struct{ Name string } {
	mock.lock.RLock()
	calls := mock.calls.GetOrCreate
	mock.lock.RUnlock()
	return calls
}

func (mock *tagRepoMock) LinkEntryCalls() []struct {
	EntryID uuid.UUID
	TagID   uuid.UUID
} {
	mock.lock.RLock()
	calls := mock.calls.LinkEntry
	mock.lock.RUnlock()
	return calls
}

func (mock *tagRepoMock) UnlinkAllCalls() []struct{ EntryID uuid.UUID } {
	mock.lock.RLock()
	calls := mock.calls.UnlinkAll
	mock.lock.RUnlock()
	return calls
}
