// Package accessgate tracks which locked entries a client session has
// unlocked with a PIN. Unlocks are per (user, session) and never persisted:
// a new session starts with every locked entry locked again.
package accessgate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/norahazel/mydiary-backend/internal/domain"
	"github.com/norahazel/mydiary-backend/pkg/ctxutil"
)

// pinVerifier checks a PIN candidate against a stored entry.
type pinVerifier interface {
	VerifyEntryPIN(ctx context.Context, entryID uuid.UUID, pin string) (bool, error)
}

type sessionKey struct {
	userID    uuid.UUID
	sessionID string
}

type session struct {
	unlocked map[uuid.UUID]struct{}
	lastSeen time.Time
}

// Gate holds per-session unlock state for PIN-protected entries.
// An unlock is monotonic within a session: once granted it stays granted
// until the session ends or idles out.
type Gate struct {
	log      *slog.Logger
	verifier pinVerifier
	ttl      time.Duration

	mu       sync.RWMutex
	sessions map[sessionKey]*session

	stopOnce sync.Once
	stop     chan struct{}
}

// New creates a gate whose sessions expire after ttl of inactivity.
// The background sweeper runs until Stop is called.
func New(logger *slog.Logger, verifier pinVerifier, ttl time.Duration) *Gate {
	g := &Gate{
		log:      logger.With("service", "accessgate"),
		verifier: verifier,
		ttl:      ttl,
		sessions: make(map[sessionKey]*session),
		stop:     make(chan struct{}),
	}
	go g.sweep()
	return g
}

// Unlock verifies the PIN for the given entry and, on success, records the
// entry as unlocked for the calling session. Returns (false, nil) on a wrong
// PIN. Unlocking an already-unlocked entry succeeds without re-verification
// side effects.
func (g *Gate) Unlock(ctx context.Context, entryID uuid.UUID, pin string) (bool, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return false, domain.ErrUnauthorized
	}
	sessionID, ok := ctxutil.SessionIDFromCtx(ctx)
	if !ok {
		return false, domain.ErrUnauthorized
	}

	verified, err := g.verifier.VerifyEntryPIN(ctx, entryID, pin)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, err
		}
		return false, fmt.Errorf("accessgate.Unlock verify pin: %w", err)
	}
	if !verified {
		g.log.InfoContext(ctx, "entry unlock rejected",
			slog.String("entry_id", entryID.String()))
		return false, nil
	}

	g.MarkUnlocked(userID, sessionID, entryID)
	return true, nil
}

// Check returns ErrLocked if the entry is locked and the calling session has
// not unlocked it. Unlocked entries and sessions that already hold the unlock
// pass through.
func (g *Gate) Check(ctx context.Context, entry *domain.Entry) error {
	if !entry.IsLocked {
		return nil
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	sessionID, _ := ctxutil.SessionIDFromCtx(ctx)

	if g.IsUnlocked(userID, sessionID, entry.ID) {
		return nil
	}
	return domain.ErrLocked
}

// IsUnlocked reports whether the session has unlocked the entry.
// Touches the session's idle timer on a hit.
func (g *Gate) IsUnlocked(userID uuid.UUID, sessionID string, entryID uuid.UUID) bool {
	key := sessionKey{userID: userID, sessionID: sessionID}

	g.mu.Lock()
	defer g.mu.Unlock()

	s, ok := g.sessions[key]
	if !ok {
		return false
	}
	if _, ok := s.unlocked[entryID]; !ok {
		return false
	}
	s.lastSeen = time.Now()
	return true
}

// MarkUnlocked records an entry as unlocked for the session. Idempotent.
func (g *Gate) MarkUnlocked(userID uuid.UUID, sessionID string, entryID uuid.UUID) {
	key := sessionKey{userID: userID, sessionID: sessionID}

	g.mu.Lock()
	defer g.mu.Unlock()

	s, ok := g.sessions[key]
	if !ok {
		s = &session{unlocked: make(map[uuid.UUID]struct{})}
		g.sessions[key] = s
	}
	s.unlocked[entryID] = struct{}{}
	s.lastSeen = time.Now()
}

// EndSession drops all unlocks for the session. Called on logout.
func (g *Gate) EndSession(userID uuid.UUID, sessionID string) {
	key := sessionKey{userID: userID, sessionID: sessionID}

	g.mu.Lock()
	delete(g.sessions, key)
	g.mu.Unlock()
}

// Forget removes a single entry from every session of the given user.
// Called when an entry is deleted or re-locked with a new PIN.
func (g *Gate) Forget(userID uuid.UUID, entryID uuid.UUID) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for key, s := range g.sessions {
		if key.userID != userID {
			continue
		}
		delete(s.unlocked, entryID)
	}
}

// Stop terminates the background sweeper.
func (g *Gate) Stop() {
	g.stopOnce.Do(func() {
		close(g.stop)
	})
}

func (g *Gate) sweep() {
	interval := g.ttl / 4
	if interval < time.Minute {
		interval = time.Minute
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-g.stop:
			return
		case <-ticker.C:
			g.evictIdle(time.Now())
		}
	}
}

func (g *Gate) evictIdle(now time.Time) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for key, s := range g.sessions {
		if now.Sub(s.lastSeen) > g.ttl {
			delete(g.sessions, key)
		}
	}
}
