//go:build e2e

package e2e_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestE2E_Auth_RegisterAndMe(t *testing.T) {
	ts := setupTestServer(t)

	sess := registerUser(t, ts, "reg-success@example.com", "Reg Success", "securepassword123")
	assert.NotEmpty(t, sess.AccessToken)
	assert.NotEmpty(t, sess.RefreshToken)
	assert.NotEmpty(t, sess.SessionID)

	resp := restRequest(t, ts, "GET", "/api/me", sess, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeJSON(t, resp)
	assert.Equal(t, "reg-success@example.com", body["email"])
	assert.Equal(t, "Reg Success", body["name"])
}

func TestE2E_Auth_Register_DuplicateEmail(t *testing.T) {
	ts := setupTestServer(t)

	registerUser(t, ts, "dup@example.com", "First", "securepassword123")

	resp := restRequest(t, ts, "POST", "/auth/register", nil, map[string]string{
		"email":    "dup@example.com",
		"name":     "Second",
		"password": "securepassword123",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestE2E_Auth_Login(t *testing.T) {
	ts := setupTestServer(t)

	registerUser(t, ts, "login@example.com", "Login User", "securepassword123")

	resp := restRequest(t, ts, "POST", "/auth/login", nil, map[string]string{
		"email":    "login@example.com",
		"password": "securepassword123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeJSON(t, resp)
	assert.NotEmpty(t, body["accessToken"])
	assert.NotEmpty(t, body["sessionId"])
}

func TestE2E_Auth_Login_WrongPassword(t *testing.T) {
	ts := setupTestServer(t)

	registerUser(t, ts, "wrongpw@example.com", "Wrong PW", "securepassword123")

	resp := restRequest(t, ts, "POST", "/auth/login", nil, map[string]string{
		"email":    "wrongpw@example.com",
		"password": "not-the-password",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestE2E_Auth_RefreshRotatesTokens(t *testing.T) {
	ts := setupTestServer(t)

	sess := registerUser(t, ts, "refresh@example.com", "Refresher", "securepassword123")

	resp := restRequest(t, ts, "POST", "/auth/refresh", nil, map[string]string{
		"refreshToken": sess.RefreshToken,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeJSON(t, resp)
	assert.NotEmpty(t, body["accessToken"])
	assert.NotEqual(t, sess.RefreshToken, body["refreshToken"], "refresh token should rotate")
	assert.NotEqual(t, sess.SessionID, body["sessionId"], "session id should rotate")

	// Old refresh token is now revoked.
	resp2 := restRequest(t, ts, "POST", "/auth/refresh", nil, map[string]string{
		"refreshToken": sess.RefreshToken,
	})
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp2.StatusCode)
}

func TestE2E_Auth_Logout(t *testing.T) {
	ts := setupTestServer(t)

	sess := registerUser(t, ts, "logout@example.com", "Logger Outer", "securepassword123")

	resp := restRequest(t, ts, "POST", "/auth/logout", sess, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Refresh tokens are revoked after logout.
	resp2 := restRequest(t, ts, "POST", "/auth/refresh", nil, map[string]string{
		"refreshToken": sess.RefreshToken,
	})
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp2.StatusCode)
}

func TestE2E_API_RequiresAuth(t *testing.T) {
	ts := setupTestServer(t)

	resp := restRequest(t, ts, "GET", "/api/entries", nil, nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
