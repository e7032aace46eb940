package upload

import (
	"context"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/w4/shorty/aws/s3/internal/s3api"
	"github.com/w4/shorty/aws/s3/s3types"
)

// Uploader issues PutObject requests.
type Uploader struct {
	s3Client s3api.S3API
	logger   *slog.Logger
}

// New creates a new Uploader instance.
func New(s3Client s3api.S3API, logger *slog.Logger) *Uploader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Uploader{
		s3Client: s3Client,
		logger:   logger,
	}
}

// Put writes input.Body to input.Bucket/input.Key in one request.
// The returned error is the SDK error as-is.
func (u *Uploader) Put(ctx context.Context, input *s3types.PutInput) (*s3types.UploadResult, error) {
	startTime := time.Now()

	params := &s3.PutObjectInput{
		Bucket:        aws.String(input.Bucket),
		Key:           aws.String(input.Key),
		Body:          input.Body,
		ContentLength: aws.Int64(input.Length),
	}
	if input.ContentType != "" {
		params.ContentType = aws.String(input.ContentType)
	}

	u.logger.Debug("putting object",
		"bucket", input.Bucket,
		"key", input.Key,
		"length", input.Length,
		"content_type", input.ContentType)

	output, err := u.s3Client.PutObject(ctx, params)
	if err != nil {
		return nil, err
	}

	result := &s3types.UploadResult{
		Key:      input.Key,
		Size:     input.Length,
		ETag:     aws.ToString(output.ETag),
		Duration: time.Since(startTime),
	}
	if output.VersionId != nil {
		result.VersionID = *output.VersionId
	}

	u.logger.Debug("object stored", "key", input.Key, "etag", result.ETag, "duration", result.Duration)

	return result, nil
}
