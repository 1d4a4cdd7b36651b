package errs

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApiErrError(t *testing.T) {
	err := NewApiErr(http.StatusBadRequest, "bad input")
	assert.Equal(t, "bad input", err.Error())

	withDetails := NewCORSError("https://evil.example.com")
	assert.Contains(t, withDetails.Error(), "blocked by CORS policy")
	assert.Contains(t, withDetails.Error(), "https://evil.example.com")
}

func TestApiErrUnwrapsSentinels(t *testing.T) {
	assert.ErrorIs(t, NewMissingTokenError(), ErrMissingToken)
	assert.ErrorIs(t, NewExpiredTokenError(), ErrExpiredToken)
	assert.ErrorIs(t, NewInvalidTokenError(), ErrInvalidToken)
	assert.ErrorIs(t, NewBadLoginError(), ErrBadLogin)
	assert.ErrorIs(t, NewNotFound("project"), ErrNotFound)
}

func TestGetFullErrorIncludesCauseChain(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := NewDatabaseError("find", "project", cause)

	full := err.GetFullError()
	assert.Contains(t, full, "connection refused")
}

func TestNewDatabaseErrorStatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		cause      error
		wantStatus int
	}{
		{"duplicate key", errors.New(`duplicate key value violates unique constraint "portfolio_skill_pkey"`), http.StatusConflict},
		{"foreign key", errors.New(`insert or update violates foreign key constraint "fk_project"`), http.StatusBadRequest},
		{"record not found", errors.New("record not found"), http.StatusNotFound},
		{"connect failure", errors.New("failed to connect to host"), http.StatusServiceUnavailable},
		{"connection refused", errors.New("dial tcp 127.0.0.1:5432: connection refused"), http.StatusServiceUnavailable},
		{"anything else", errors.New("syntax error at or near"), http.StatusInternalServerError},
		{"nil cause", nil, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewDatabaseError("save", "project", tt.cause)
			assert.Equal(t, tt.wantStatus, err.StatusCode)
		})
	}
}

func TestStorageErrorPredicates(t *testing.T) {
	tooLarge := NewFileTooLargeError("big.png", 10<<20, 5<<20)
	assert.True(t, IsFileTooLarge(tooLarge))
	assert.False(t, IsUnsupportedType(tooLarge))
	assert.Equal(t, http.StatusRequestEntityTooLarge, tooLarge.StatusCode)

	badType := NewUnsupportedTypeError("doc.pdf", "application/pdf", []string{"image/png"})
	assert.True(t, IsUnsupportedType(badType))
	assert.False(t, IsFileTooLarge(badType))
	assert.Equal(t, http.StatusUnsupportedMediaType, badType.StatusCode)

	upload := NewUploadError("photo.png", errors.New("access denied"))
	assert.ErrorIs(t, upload, ErrUploadFailed)
	assert.Equal(t, http.StatusBadGateway, upload.StatusCode)
	assert.Contains(t, upload.GetFullError(), "access denied")
}
