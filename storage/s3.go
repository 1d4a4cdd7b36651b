package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mpecho/portfolio-backend/config"
	"github.com/mpecho/portfolio-backend/errs"
)

// S3Uploader uploads image batches to one bucket on any S3-compatible
// endpoint (AWS, Supabase storage, MinIO).
type S3Uploader struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
	logger        zerolog.Logger
}

// NewS3Uploader builds an uploader from config. Required keys:
// STORAGE_BUCKET, STORAGE_ACCESS_KEY, STORAGE_SECRET_KEY, STORAGE_PUBLIC_URL.
// Optional: STORAGE_REGION, STORAGE_ENDPOINT (for non-AWS backends),
// STORAGE_PATH_STYLE.
func NewS3Uploader(ctx context.Context, c map[string]string) (*S3Uploader, error) {
	bucket := config.GetString(c, "STORAGE_BUCKET", "")
	if bucket == "" {
		return nil, fmt.Errorf("STORAGE_BUCKET is required")
	}
	publicBaseURL := config.GetString(c, "STORAGE_PUBLIC_URL", "")
	if publicBaseURL == "" {
		return nil, fmt.Errorf("STORAGE_PUBLIC_URL is required")
	}

	accessKey := config.GetString(c, "STORAGE_ACCESS_KEY", "")
	secretKey := config.GetString(c, "STORAGE_SECRET_KEY", "")
	region := config.GetString(c, "STORAGE_REGION", "us-east-1")
	endpoint := config.GetString(c, "STORAGE_ENDPOINT", "")
	pathStyle := config.GetBool(c, "STORAGE_PATH_STYLE", endpoint != "")

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("loading storage credentials: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
		o.UsePathStyle = pathStyle
	})

	return &S3Uploader{
		client:        client,
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:        log.With().Str("component", "s3Uploader").Logger(),
	}, nil
}

// UploadBatch validates the whole batch, then uploads each file
// sequentially under a generated key. URLs come back in submission order.
// Any failure aborts the batch with the backend's error attached; no
// partial URL list is returned. Objects uploaded before the failure stay in
// the bucket (accepted orphan window).
func (u *S3Uploader) UploadBatch(ctx context.Context, files []File) ([]string, error) {
	if err := ValidateBatch(files); err != nil {
		return nil, err
	}

	urls := make([]string, 0, len(files))
	for _, f := range files {
		key := ObjectKey(f.Name)

		_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:        aws.String(u.bucket),
			Key:           aws.String(key),
			Body:          bytes.NewReader(f.Data),
			ContentType:   aws.String(f.ContentType),
			ContentLength: aws.Int64(int64(len(f.Data))),
		})
		if err != nil {
			u.logger.Error().Err(err).Str("file", f.Name).Str("key", key).Msg("upload failed")
			return nil, errs.NewUploadError(f.Name, err)
		}

		urls = append(urls, u.PublicURL(key))
	}

	u.logger.Info().Int("count", len(urls)).Msg("uploaded image batch")
	return urls, nil
}

// PublicURL resolves a bucket key to its publicly reachable URL.
func (u *S3Uploader) PublicURL(key string) string {
	return u.publicBaseURL + "/" + key
}
