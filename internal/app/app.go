package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/norahazel/mydiary-backend/internal/adapter/postgres"
	"github.com/norahazel/mydiary-backend/internal/adapter/postgres/authmethod"
	"github.com/norahazel/mydiary-backend/internal/adapter/postgres/entry"
	"github.com/norahazel/mydiary-backend/internal/adapter/postgres/mood"
	"github.com/norahazel/mydiary-backend/internal/adapter/postgres/tag"
	"github.com/norahazel/mydiary-backend/internal/adapter/postgres/token"
	"github.com/norahazel/mydiary-backend/internal/adapter/postgres/user"
	jwtauth "github.com/norahazel/mydiary-backend/internal/auth"
	"github.com/norahazel/mydiary-backend/internal/config"
	"github.com/norahazel/mydiary-backend/internal/service/accessgate"
	"github.com/norahazel/mydiary-backend/internal/service/auth"
	"github.com/norahazel/mydiary-backend/internal/service/diary"
	"github.com/norahazel/mydiary-backend/internal/transport/middleware"
	"github.com/norahazel/mydiary-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects
// to the database, wires repositories, services, and the HTTP router,
// then serves until ctx is cancelled and shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	userRepo := user.New(pool)
	tokenRepo := token.New(pool)
	authMethodRepo := authmethod.New(pool)
	entryRepo := entry.New(pool)
	moodRepo := mood.New(pool)
	tagRepo := tag.New(pool)
	txManager := postgres.NewTxManager(pool)

	jwtManager := jwtauth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	// The gate verifies PINs through the entry repo directly, so it can
	// be constructed before the diary service that depends on it.
	verifier := diary.NewPINVerifier(entryRepo)
	gate := accessgate.New(logger, verifier, cfg.Diary.UnlockSessionTTL)
	defer gate.Stop()

	authSvc := auth.NewService(logger, userRepo, tokenRepo, authMethodRepo, txManager, jwtManager, gate, cfg.Auth)
	diarySvc := diary.NewService(logger, entryRepo, moodRepo, tagRepo, txManager, gate, cfg.Diary)

	rl := middleware.NewRateLimiter(time.Minute)
	defer rl.Stop()

	router := rest.NewRouter(rest.RouterDeps{
		Auth:        rest.NewAuthHandler(authSvc, logger),
		Diary:       rest.NewDiaryHandler(diarySvc, gate, logger),
		Health:      rest.NewHealthHandler(pool, BuildVersion()),
		Validator:   authSvc,
		RateLimiter: rl,
		Log:         logger,
	}, *cfg)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}
