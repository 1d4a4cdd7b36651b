package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mpecho/portfolio-backend/errs"
)

const sessionCookieName = "admin_session"

// Session is the proof of an authenticated admin. Every mutating endpoint
// checks for one before performing any write.
type Session struct {
	Email     string
	ExpiresAt time.Time
}

// SessionManager issues and verifies admin session tokens. Tokens are
// HS256 JWTs valid for the configured TTL (24h by default, matching the
// admin login session length).
type SessionManager struct {
	secret []byte
	ttl    time.Duration
}

func NewSessionManager(secret string, ttl time.Duration) SessionManager {
	return SessionManager{secret: []byte(secret), ttl: ttl}
}

// Issue creates a signed session token for the admin identified by email.
func (m SessionManager) Issue(email string) (string, time.Time, error) {
	expiresAt := time.Now().Add(m.ttl)
	claims := jwt.RegisteredClaims{
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Parse verifies a session token and returns the session it represents.
func (m SessionManager) Parse(tokenString string) (*Session, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errs.ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errs.NewExpiredTokenError()
		}
		return nil, errs.NewInvalidTokenError()
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return nil, errs.NewInvalidTokenError()
	}

	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	return &Session{Email: claims.Subject, ExpiresAt: expiresAt}, nil
}

// FromRequest extracts the session from a request, checking the
// Authorization bearer header first and the session cookie second. Returns
// nil when no credentials are presented at all.
func (m SessionManager) FromRequest(r *http.Request) (*Session, error) {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == "" {
			return nil, errs.NewMissingTokenError()
		}
		return m.Parse(token)
	}

	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		return m.Parse(cookie.Value)
	}

	return nil, nil
}
