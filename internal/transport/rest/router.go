package rest

import (
	"log/slog"
	"net/http"

	"github.com/norahazel/mydiary-backend/internal/config"
	"github.com/norahazel/mydiary-backend/internal/transport/middleware"
)

// RouterDeps collects everything the HTTP router needs.
type RouterDeps struct {
	Auth        *AuthHandler
	Diary       *DiaryHandler
	Health      *HealthHandler
	Validator   middleware.TokenValidator
	RateLimiter *middleware.RateLimiter
	Log         *slog.Logger
}

// NewRouter builds the HTTP handler tree with the middleware chain
// applied. /api routes additionally require an authenticated user.
func NewRouter(deps RouterDeps, cfg config.Config) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", deps.Health.Live)
	mux.HandleFunc("GET /readyz", deps.Health.Ready)
	mux.HandleFunc("GET /health", deps.Health.Health)

	mux.HandleFunc("POST /auth/register", deps.Auth.Register)
	mux.HandleFunc("POST /auth/login", deps.Auth.Login)
	mux.HandleFunc("POST /auth/refresh", deps.Auth.Refresh)
	mux.HandleFunc("POST /auth/logout", deps.Auth.Logout)

	api := http.NewServeMux()
	api.HandleFunc("GET /api/me", deps.Auth.Me)
	api.HandleFunc("GET /api/moods", deps.Diary.Moods)
	api.HandleFunc("GET /api/entries", deps.Diary.List)
	api.HandleFunc("POST /api/entries", deps.Diary.Create)
	api.HandleFunc("GET /api/entries/{id}", deps.Diary.Get)
	api.HandleFunc("PATCH /api/entries/{id}", deps.Diary.Update)
	api.HandleFunc("DELETE /api/entries/{id}", deps.Diary.Delete)
	api.HandleFunc("POST /api/entries/{id}/lock", deps.Diary.Lock)
	api.HandleFunc("POST /api/entries/{id}/unlock", deps.Diary.Unlock)
	api.HandleFunc("POST /api/entries/{id}/verify-pin", deps.Diary.VerifyPIN)

	mux.Handle("/api/", middleware.RequireAuth(api))

	chain := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(deps.Log),
		middleware.Recovery(deps.Log),
		middleware.CORS(cfg.CORS),
		deps.RateLimiter.Limit(cfg.Server.RateLimitPerMin),
		middleware.Auth(deps.Validator),
	)

	return chain(mux)
}
