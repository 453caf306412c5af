//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/norahazel/mydiary-backend/internal/adapter/postgres"
	"github.com/norahazel/mydiary-backend/internal/adapter/postgres/authmethod"
	"github.com/norahazel/mydiary-backend/internal/adapter/postgres/entry"
	"github.com/norahazel/mydiary-backend/internal/adapter/postgres/mood"
	"github.com/norahazel/mydiary-backend/internal/adapter/postgres/tag"
	"github.com/norahazel/mydiary-backend/internal/adapter/postgres/testhelper"
	"github.com/norahazel/mydiary-backend/internal/adapter/postgres/token"
	userrepo "github.com/norahazel/mydiary-backend/internal/adapter/postgres/user"
	authpkg "github.com/norahazel/mydiary-backend/internal/auth"
	"github.com/norahazel/mydiary-backend/internal/config"
	"github.com/norahazel/mydiary-backend/internal/service/accessgate"
	authsvc "github.com/norahazel/mydiary-backend/internal/service/auth"
	"github.com/norahazel/mydiary-backend/internal/service/diary"
	"github.com/norahazel/mydiary-backend/internal/transport/middleware"
	"github.com/norahazel/mydiary-backend/internal/transport/rest"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// session carries the credentials a signed-in client holds.
type session struct {
	AccessToken  string
	RefreshToken string
	SessionID    string
	UserID       string
}

// setupTestServer bootstraps the full application stack backed by a
// real PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	userRepo := userrepo.New(pool)
	tokenRepo := token.New(pool)
	authMethodRepo := authmethod.New(pool)
	entryRepo := entry.New(pool)
	moodRepo := mood.New(pool)
	tagRepo := tag.New(pool)

	authCfg := config.AuthConfig{
		JWTSecret:        "e2e-test-secret-string-of-32-plus-chars",
		JWTIssuer:        "mydiary-e2e",
		AccessTokenTTL:   time.Hour,
		RefreshTokenTTL:  24 * time.Hour,
		PasswordHashCost: 4,
		MinPasswordLen:   8,
	}
	diaryCfg := config.DiaryConfig{
		MaxEntriesPerUser: 100,
		MaxTitleLen:       200,
		MaxContentLen:     50000,
		UnlockSessionTTL:  time.Hour,
	}

	jwtManager := authpkg.NewJWTManager(authCfg.JWTSecret, authCfg.JWTIssuer, authCfg.AccessTokenTTL)

	verifier := diary.NewPINVerifier(entryRepo)
	gate := accessgate.New(logger, verifier, diaryCfg.UnlockSessionTTL)
	t.Cleanup(gate.Stop)

	auth := authsvc.NewService(logger, userRepo, tokenRepo, authMethodRepo, txm, jwtManager, gate, authCfg)
	diarySvc := diary.NewService(logger, entryRepo, moodRepo, tagRepo, txm, gate, diaryCfg)

	rl := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(rl.Stop)

	router := rest.NewRouter(rest.RouterDeps{
		Auth:        rest.NewAuthHandler(auth, logger),
		Diary:       rest.NewDiaryHandler(diarySvc, gate, logger),
		Health:      rest.NewHealthHandler(pool, "e2e"),
		Validator:   auth,
		RateLimiter: rl,
		Log:         logger,
	}, config.Config{
		Server: config.ServerConfig{RateLimitPerMin: 10000},
		Auth:   authCfg,
		Diary:  diaryCfg,
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PATCH,DELETE,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type,X-Session-Id",
		},
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}
}

// restRequest performs a JSON request against the test server. The
// session may be nil for anonymous calls.
func restRequest(t *testing.T, ts *testServer, method, path string, sess *session, body any) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if sess != nil {
		req.Header.Set("Authorization", "Bearer "+sess.AccessToken)
		req.Header.Set(middleware.SessionHeader, sess.SessionID)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	return resp
}

// decodeJSON decodes a response body into a generic map and closes it.
func decodeJSON(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// decodeJSONInto decodes a response body into v and closes it.
func decodeJSONInto(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

// registerUser signs up a fresh user and returns the live session.
func registerUser(t *testing.T, ts *testServer, email, name, password string) *session {
	t.Helper()

	resp := restRequest(t, ts, "POST", "/auth/register", nil, map[string]string{
		"email":    email,
		"name":     name,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeJSON(t, resp)
	user, ok := body["user"].(map[string]any)
	require.True(t, ok, "expected user object in response")

	return &session{
		AccessToken:  body["accessToken"].(string),
		RefreshToken: body["refreshToken"].(string),
		SessionID:    body["sessionId"].(string),
		UserID:       user["id"].(string),
	}
}
