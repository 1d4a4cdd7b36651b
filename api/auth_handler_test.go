package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testAuthHandler(t *testing.T, cfg map[string]string) authHandler {
	t.Helper()
	return newAuthHandler(NewSessionManager("test-secret", 24*time.Hour), cfg)
}

func TestLoginIssuesSessionToken(t *testing.T) {
	h := testAuthHandler(t, map[string]string{
		"ADMIN_EMAIL":    "admin@example.com",
		"ADMIN_PASSWORD": "hunter2",
	})

	body := strings.NewReader(`{"email":"admin@example.com","password":"hunter2"}`)
	w := httptest.NewRecorder()
	h.login()(w, httptest.NewRequest(http.MethodPost, "/login", body))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"token"`)
	assert.Contains(t, w.Body.String(), `"expires_at"`)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, sessionCookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.NotEmpty(t, cookies[0].Value)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	h := testAuthHandler(t, map[string]string{
		"ADMIN_EMAIL":    "admin@example.com",
		"ADMIN_PASSWORD": "hunter2",
	})

	body := strings.NewReader(`{"email":"admin@example.com","password":"wrong"}`)
	w := httptest.NewRecorder()
	h.login()(w, httptest.NewRequest(http.MethodPost, "/login", body))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Result().Cookies())
}

func TestLoginRejectsWrongEmail(t *testing.T) {
	h := testAuthHandler(t, map[string]string{
		"ADMIN_EMAIL":    "admin@example.com",
		"ADMIN_PASSWORD": "hunter2",
	})

	body := strings.NewReader(`{"email":"intruder@example.com","password":"hunter2"}`)
	w := httptest.NewRecorder()
	h.login()(w, httptest.NewRequest(http.MethodPost, "/login", body))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginUnconfiguredCredentials(t *testing.T) {
	h := testAuthHandler(t, map[string]string{})

	body := strings.NewReader(`{"email":"admin@example.com","password":"hunter2"}`)
	w := httptest.NewRecorder()
	h.login()(w, httptest.NewRequest(http.MethodPost, "/login", body))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestLoginBcryptHashTakesPrecedence(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hashed-secret"), bcrypt.MinCost)
	require.NoError(t, err)

	h := testAuthHandler(t, map[string]string{
		"ADMIN_EMAIL":         "admin@example.com",
		"ADMIN_PASSWORD":      "plain-secret",
		"ADMIN_PASSWORD_HASH": string(hash),
	})

	assert.True(t, h.credentialsMatch("admin@example.com", "hashed-secret"))
	assert.False(t, h.credentialsMatch("admin@example.com", "plain-secret"))
}

func TestLogoutClearsCookie(t *testing.T) {
	h := testAuthHandler(t, map[string]string{})

	w := httptest.NewRecorder()
	h.logout()(w, httptest.NewRequest(http.MethodPost, "/logout", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, sessionCookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}
