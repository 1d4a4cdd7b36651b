package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Image validation & object storage errors
var (
	ErrFileTooLarge    = errors.New("file too large")
	ErrUnsupportedType = errors.New("unsupported image type")
	ErrUploadFailed    = errors.New("upload failed")
)

// NewFileTooLargeError rejects a file exceeding the size ceiling. Raised
// before any network call; the whole batch is aborted.
func NewFileTooLargeError(fileName string, size, maxSize int64) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusRequestEntityTooLarge,
		err:        ErrFileTooLarge,
		Details:    fmt.Sprintf("File %s is %d bytes, maximum is %d bytes", fileName, size, maxSize),
		Field:      fileName,
	}
}

// NewUnsupportedTypeError rejects a file with a MIME type outside the
// image allow-list.
func NewUnsupportedTypeError(fileName, contentType string, allowed []string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnsupportedMediaType,
		err:        ErrUnsupportedType,
		Details:    fmt.Sprintf("File %s has type %s, allowed types: %v", fileName, contentType, allowed),
		Field:      fileName,
	}
}

// NewUploadError wraps a storage backend failure, propagating the backend's
// message verbatim for operator diagnosis.
func NewUploadError(fileName string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        ErrUploadFailed,
		Details:    fmt.Sprintf("Failed to upload %s", fileName),
		Field:      fileName,
		Cause:      cause,
	}
}

func IsFileTooLarge(err error) bool {
	return errors.Is(err, ErrFileTooLarge)
}

func IsUnsupportedType(err error) bool {
	return errors.Is(err, ErrUnsupportedType)
}
