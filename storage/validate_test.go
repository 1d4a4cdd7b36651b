package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpecho/portfolio-backend/errs"
)

func validFile(name string) File {
	return File{Name: name, ContentType: "image/png", Data: make([]byte, 1024)}
}

func TestValidateBatchAccepted(t *testing.T) {
	files := []File{
		{Name: "a.jpg", ContentType: "image/jpeg", Data: make([]byte, 100)},
		{Name: "b.png", ContentType: "image/png", Data: make([]byte, MaxFileSize)},
		{Name: "c.gif", ContentType: "image/gif", Data: []byte{}},
		{Name: "d.webp", ContentType: "image/webp", Data: make([]byte, 2048)},
	}

	assert.NoError(t, ValidateBatch(files))
}

func TestValidateBatchEmpty(t *testing.T) {
	assert.NoError(t, ValidateBatch(nil))
	assert.NoError(t, ValidateBatch([]File{}))
}

func TestValidateBatchOversizedFile(t *testing.T) {
	files := []File{
		validFile("ok.png"),
		{Name: "huge.png", ContentType: "image/png", Data: make([]byte, MaxFileSize+1)},
	}

	err := ValidateBatch(files)
	require.Error(t, err)
	assert.True(t, errs.IsFileTooLarge(err))
	assert.Contains(t, err.Error(), "huge.png")
}

func TestValidateBatchUnsupportedType(t *testing.T) {
	files := []File{
		validFile("ok.png"),
		{Name: "doc.pdf", ContentType: "application/pdf", Data: make([]byte, 100)},
	}

	err := ValidateBatch(files)
	require.Error(t, err)
	assert.True(t, errs.IsUnsupportedType(err))
	assert.Contains(t, err.Error(), "doc.pdf")
}

func TestValidateBatchFirstViolationRejectsWholeBatch(t *testing.T) {
	files := []File{
		{Name: "huge.png", ContentType: "image/png", Data: make([]byte, MaxFileSize+1)},
		{Name: "doc.pdf", ContentType: "application/pdf", Data: make([]byte, 100)},
	}

	err := ValidateBatch(files)
	require.Error(t, err)
	assert.True(t, errs.IsFileTooLarge(err))
}
