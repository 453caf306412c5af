package diary

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/norahazel/mydiary-backend/internal/domain"
)

var _ entryRepo = &entryRepoMock{}

type entryRepoMock struct {
	GetByIDFunc     func(ctx context.Context, userID, entryID uuid.UUID) (*domain.Entry, error)
	ListFunc        func(ctx context.Context, userID uuid.UUID) ([]*domain.Entry, error)
	CountByUserFunc func(ctx context.Context, userID uuid.UUID) (int, error)
	CreateFunc      func(ctx context.Context, e *domain.Entry) (*domain.Entry, error)
	UpdateFunc      func(ctx context.Context, userID, entryID uuid.UUID, params domain.EntryUpdateParams) (*domain.Entry, error)
	DeleteFunc      func(ctx context.Context, userID, entryID uuid.UUID) error

	calls struct {
		GetByID []struct {
			UserID  uuid.UUID
			EntryID uuid.UUID
		}
		List        []struct{ UserID uuid.UUID }
		CountByUser []struct{ UserID uuid.UUID }
		Create      []struct{ Entry *domain.Entry }
		Update      []struct {
			UserID  uuid.UUID
			EntryID uuid.UUID
			Params  domain.EntryUpdateParams
		}
		Delete []struct {
			UserID  uuid.UUID
			EntryID uuid.UUID
		}
	}
	lock sync.RWMutex
}

func (mock *entryRepoMock) GetByID(ctx context.Context, userID, entryID uuid.UUID) (*domain.Entry, error) {
	if mock.GetByIDFunc == nil {
		panic("entryRepoMock.GetByIDFunc: method is nil but entryRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct {
		UserID  uuid.UUID
		EntryID uuid.UUID
	}{UserID: userID, EntryID: entryID})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, userID, entryID)
}

func (mock *entryRepoMock) List(ctx context.Context, userID uuid.UUID) ([]*domain.Entry, error) {
	if mock.ListFunc == nil {
		panic("entryRepoMock.ListFunc: method is nil but entryRepo.List was just called")
	}
	mock.lock.Lock()
	mock.calls.List = append(mock.calls.List, struct{ UserID uuid.UUID }{UserID: userID})
	mock.lock.Unlock()
	return mock.ListFunc(ctx, userID)
}

func (mock *entryRepoMock) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.CountByUserFunc == nil {
		panic("entryRepoMock.CountByUserFunc: method is nil but entryRepo.CountByUser was just called")
	}
	mock.lock.Lock()
	mock.calls.CountByUser = append(mock.calls.CountByUser, struct{ UserID uuid.UUID }{UserID: userID})
	mock.lock.Unlock()
	return mock.CountByUserFunc(ctx, userID)
}

func (mock *entryRepoMock) Create(ctx context.Context, e *domain.Entry) (*domain.Entry, error) {
	if mock.CreateFunc == nil {
		panic("entryRepoMock.CreateFunc: method is nil but entryRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Entry *domain.Entry }{Entry: e})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, e)
}

func (mock *entryRepoMock) Update(ctx context.Context, userID, entryID uuid.UUID, params domain.EntryUpdateParams) (*domain.Entry, error) {
	if mock.UpdateFunc == nil {
		panic("entryRepoMock.UpdateFunc: method is nil but entryRepo.Update was just called")
	}
	mock.lock.Lock()
	mock.calls.Update = append(mock.calls.Update, struct {
		UserID  uuid.UUID
		EntryID uuid.UUID
		Params  domain.EntryUpdateParams
	}{UserID: userID, EntryID: entryID, Params: params})
	mock.lock.Unlock()
	return mock.UpdateFunc(ctx, userID, entryID, params)
}

func (mock *entryRepoMock) Delete(ctx context.Context, userID, entryID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("entryRepoMock.DeleteFunc: method is nil but entryRepo.Delete was just called")
	}
	mock.lock.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct {
		UserID  uuid.UUID
		EntryID uuid.UUID
	}{UserID: userID, EntryID: entryID})
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, userID, entryID)
}

func (mock *entryRepoMock) UpdateCalls() []struct {
	UserID  uuid.UUID
	EntryID uuid.UUID
	Params  domain.EntryUpdateParams
} {
	mock.lock.RLock()
	calls := mock.calls.Update
	mock.lock.RUnlock()
	return calls
}

func (mock *entryRepoMock) CreateCalls() []struct{ Entry *domain.Entry } {
	mock.lock.RLock()
	calls := mock.calls.Create
	mock.lock.RUnlock()
	return calls
}
