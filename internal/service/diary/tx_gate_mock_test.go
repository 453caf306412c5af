package diary

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/norahazel/mydiary-backend/internal/domain"
)

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	return mock.RunInTxFunc(ctx, fn)
}

var _ accessGate = &accessGateMock{}

type accessGateMock struct {
	CheckFunc  func(ctx context.Context, entry *domain.Entry) error
	ForgetFunc func(userID uuid.UUID, entryID uuid.UUID)

	calls struct {
		Check  []struct{ Entry *domain.Entry }
		Forget []struct {
			UserID  uuid.UUID
			EntryID uuid.UUID
		}
	}
	lock sync.RWMutex
}

func (mock *accessGateMock) Check(ctx context.Context, entry *domain.Entry) error {
	if mock.CheckFunc == nil {
		panic("accessGateMock.CheckFunc: method is nil but accessGate.Check was just called")
	}
	mock.lock.Lock()
	mock.calls.Check = append(mock.calls.Check, struct{ Entry *domain.Entry }{Entry: entry})
	mock.lock.Unlock()
	return mock.CheckFunc(ctx, entry)
}

func (mock *accessGateMock) Forget(userID uuid.UUID, entryID uuid.UUID) {
	if mock.ForgetFunc == nil {
		panic("accessGateMock.ForgetFunc: method is nil but accessGate.Forget was just called")
	}
	mock.lock.Lock()
	mock.calls.Forget = append(mock.calls.Forget, struct {
		UserID  uuid.UUID
		EntryID uuid.UUID
	}{UserID: userID, EntryID: entryID})
	mock.lock.Unlock()
	mock.ForgetFunc(userID, entryID)
}

func (mock *accessGateMock) ForgetCalls() []struct {
	UserID  uuid.UUID
	EntryID uuid.UUID
} {
	mock.lock.RLock()
	calls := mock.calls.Forget
	mock.lock.RUnlock()
	return calls
}
