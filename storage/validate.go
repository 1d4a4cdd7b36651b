// Package storage validates image batches and uploads them to an
// S3-compatible bucket, returning publicly resolvable URLs.
package storage

import "github.com/mpecho/portfolio-backend/errs"

// MaxFileSize is the per-file upload ceiling.
const MaxFileSize = 5 * 1024 * 1024

// AllowedTypes is the image MIME allow-list.
var AllowedTypes = []string{"image/jpeg", "image/jpg", "image/png", "image/gif", "image/webp"}

// File is one image queued for upload.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// ValidateBatch checks every file against the size ceiling and MIME
// allow-list before any network call. The first violation rejects the whole
// batch, naming the offending file and why.
func ValidateBatch(files []File) error {
	for _, f := range files {
		if int64(len(f.Data)) > MaxFileSize {
			return errs.NewFileTooLargeError(f.Name, int64(len(f.Data)), MaxFileSize)
		}
		if !allowedType(f.ContentType) {
			return errs.NewUnsupportedTypeError(f.Name, f.ContentType, AllowedTypes)
		}
	}
	return nil
}

func allowedType(contentType string) bool {
	for _, t := range AllowedTypes {
		if t == contentType {
			return true
		}
	}
	return false
}
