package api

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/mpecho/portfolio-backend/config"
	"github.com/mpecho/portfolio-backend/errs"
)

type authHandler struct {
	responder         Responder
	logger            zerolog.Logger
	sessions          SessionManager
	adminEmail        string
	adminPassword     string
	adminPasswordHash string
}

func newAuthHandler(sessions SessionManager, c map[string]string) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder:         NewResponder(logger),
		logger:            logger,
		sessions:          sessions,
		adminEmail:        config.GetString(c, "ADMIN_EMAIL", ""),
		adminPassword:     config.GetString(c, "ADMIN_PASSWORD", ""),
		adminPasswordHash: config.GetString(c, "ADMIN_PASSWORD_HASH", ""),
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// login checks the submitted credentials against the configured admin pair
// and issues a session token. ADMIN_PASSWORD_HASH (bcrypt) takes precedence
// over the plain ADMIN_PASSWORD.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if h.adminEmail == "" || (h.adminPassword == "" && h.adminPasswordHash == "") {
			h.logger.Error().Msg("Admin credentials are not configured")
			h.responder.WriteError(w, errs.NewInternalError("admin credentials are not configured"))
			return
		}

		if !h.credentialsMatch(req.Email, req.Password) {
			h.responder.WriteError(w, errs.NewBadLoginError())
			return
		}

		token, expiresAt, err := h.sessions.Issue(req.Email)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to sign session token")
			h.responder.WriteError(w, errs.NewInternalError("failed to create session"))
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookieName,
			Value:    token,
			Path:     "/",
			Expires:  expiresAt,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		h.responder.WriteJSON(w, map[string]any{
			"token":      token,
			"expires_at": expiresAt.Format(time.RFC3339),
		})
	}
}

// logout clears the session cookie. The token itself stays valid until it
// expires; there is no server-side session store to revoke.
func (h authHandler) logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		h.responder.WriteJSON(w, map[string]string{"status": "success"})
	}
}

func (h authHandler) credentialsMatch(email, password string) bool {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(h.adminEmail)) == 1

	var passwordOK bool
	if h.adminPasswordHash != "" {
		passwordOK = bcrypt.CompareHashAndPassword([]byte(h.adminPasswordHash), []byte(password)) == nil
	} else {
		passwordOK = subtle.ConstantTimeCompare([]byte(password), []byte(h.adminPassword)) == 1
	}

	return emailOK && passwordOK
}
