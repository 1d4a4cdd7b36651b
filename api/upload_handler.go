package api

import (
	"io"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mpecho/portfolio-backend/errs"
	"github.com/mpecho/portfolio-backend/storage"
)

type uploadHandler struct {
	responder Responder
	logger    zerolog.Logger
	uploader  *storage.S3Uploader
}

func newUploadHandler(uploader *storage.S3Uploader) uploadHandler {
	logger := log.With().Str("handlerName", "uploadHandler").Logger()

	return uploadHandler{
		responder: NewResponder(logger),
		logger:    logger,
		uploader:  uploader,
	}
}

// uploadImages accepts a multipart batch of image files under the "files"
// field, pushes them through the validation and upload pipeline, and
// returns the public URLs in submission order. One bad file fails the
// whole batch with nothing uploaded.
func (h uploadHandler) uploadImages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.uploader == nil {
			h.responder.WriteError(w, errs.NewInternalError("object storage is not configured"))
			return
		}

		if err := r.ParseMultipartForm(48 << 20); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed multipart form"))
			return
		}

		headers := r.MultipartForm.File["files"]
		if len(headers) == 0 {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("files"))
			return
		}

		files := make([]storage.File, 0, len(headers))
		for _, header := range headers {
			file, err := header.Open()
			if err != nil {
				h.responder.WriteError(w, errs.NewBadRequestError("unreadable file part: "+header.Filename))
				return
			}
			data, err := io.ReadAll(file)
			file.Close()
			if err != nil {
				h.responder.WriteError(w, errs.NewBadRequestError("unreadable file part: "+header.Filename))
				return
			}

			contentType := header.Header.Get("Content-Type")
			if contentType == "" {
				contentType = http.DetectContentType(data)
			}

			files = append(files, storage.File{
				Name:        header.Filename,
				ContentType: contentType,
				Data:        data,
			})
		}

		urls, err := h.uploader.UploadBatch(r.Context(), files)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"status": "success",
			"urls":   urls,
		})
	}
}
