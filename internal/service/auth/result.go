package auth

import "github.com/norahazel/mydiary-backend/internal/domain"

// AuthResult is returned by Register, LoginWithPassword and Refresh.
// SessionID identifies the client session for per-session entry unlocks.
type AuthResult struct {
	AccessToken  string
	RefreshToken string // raw token, NOT hash
	SessionID    string
	User         *domain.User
}
