package accessgate

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ pinVerifier = &pinVerifierMock{}

type pinVerifierMock struct {
	VerifyEntryPINFunc func(ctx context.Context, entryID uuid.UUID, pin string) (bool, error)

	calls struct {
		VerifyEntryPIN []struct {
			Ctx     context.Context
			EntryID uuid.UUID
			Pin     string
		}
	}
	lockVerifyEntryPIN sync.RWMutex
}

func (mock *pinVerifierMock) VerifyEntryPIN(ctx context.Context, entryID uuid.UUID, pin string) (bool, error) {
	if mock.VerifyEntryPINFunc == nil {
		panic("pinVerifierMock.VerifyEntryPINFunc: method is nil but pinVerifier.VerifyEntryPIN was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		EntryID uuid.UUID
		Pin     string
	}{Ctx: ctx, EntryID: entryID, Pin: pin}
	mock.lockVerifyEntryPIN.Lock()
	mock.calls.VerifyEntryPIN = append(mock.calls.VerifyEntryPIN, callInfo)
	mock.lockVerifyEntryPIN.Unlock()
	return mock.VerifyEntryPINFunc(ctx, entryID, pin)
}

func (mock *pinVerifierMock) VerifyEntryPINCalls() []struct {
	Ctx     context.Context
	EntryID uuid.UUID
	Pin     string
} {
	mock.lockVerifyEntryPIN.RLock()
	calls := mock.calls.VerifyEntryPIN
	mock.lockVerifyEntryPIN.RUnlock()
	return calls
}
