package api

import (
	"context"

	"github.com/mpecho/portfolio-backend/content"
	"github.com/mpecho/portfolio-backend/storage"
)

// storageUploader adapts the S3 uploader to the content assembler's
// Uploader interface.
type storageUploader struct {
	s3 *storage.S3Uploader
}

func (u storageUploader) UploadBatch(ctx context.Context, files []content.PendingFile) ([]string, error) {
	batch := make([]storage.File, len(files))
	for i, f := range files {
		batch[i] = storage.File{Name: f.Name, ContentType: f.ContentType, Data: f.Data}
	}
	return u.s3.UploadBatch(ctx, batch)
}
