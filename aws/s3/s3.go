package s3

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"

	s3errors "github.com/w4/shorty/aws/s3/errors"
	"github.com/w4/shorty/aws/s3/internal/operations/upload"
	"github.com/w4/shorty/aws/s3/internal/validation"
	"github.com/w4/shorty/aws/s3/s3types"
)

// Put writes input.Body to input.Bucket/input.Key with a single PutObject.
//
// Content-Length is always input.Length, and Content-Type is sent only when
// input.ContentType is non-empty. The request is never retried.
//
// Errors:
//   - ErrInvalidInput, ErrInvalidBucketName, ErrInvalidObjectKey: rejected before sending
//   - ErrAccessDenied, ErrInvalidCredentials, ErrBucketNotFound: rejected by the endpoint
//   - ErrConnection: the endpoint could not be reached, including TLS handshake failures
func (c *Client) Put(ctx context.Context, input *s3types.PutInput) (*s3types.UploadResult, error) {
	if input == nil || input.Body == nil {
		return nil, s3errors.NewError("put", s3errors.ErrInvalidInput).
			WithMessage("body is required")
	}
	if err := validatePut(input); err != nil {
		return nil, s3errors.NewObjectError("put", input.Bucket, input.Key, err)
	}

	result, err := upload.New(c.s3Client, c.logger).Put(ctx, input)
	if err != nil {
		return nil, s3errors.NewObjectError("put", input.Bucket, input.Key, c.convertAWSError(err))
	}

	return result, nil
}

func validatePut(input *s3types.PutInput) error {
	if err := validation.ValidateBucket(input.Bucket); err != nil {
		return err
	}
	if err := validation.ValidateObjectKey(input.Key); err != nil {
		return err
	}
	if err := validation.ValidateContentType(input.ContentType); err != nil {
		return err
	}
	return validation.ValidateLength(input.Length)
}

// convertAWSError tags SDK errors with a sentinel while keeping the cause.
func (c *Client) convertAWSError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchBucket":
			return fmt.Errorf("%w: %w", s3errors.ErrBucketNotFound, err)
		case "AccessDenied", "Forbidden":
			return fmt.Errorf("%w: %w", s3errors.ErrAccessDenied, err)
		case "InvalidAccessKeyId", "SignatureDoesNotMatch":
			return fmt.Errorf("%w: %w", s3errors.ErrInvalidCredentials, err)
		}
		return err
	}

	var sendErr *smithyhttp.RequestSendError
	if errors.As(err, &sendErr) {
		return fmt.Errorf("%w: %w", s3errors.ErrConnection, err)
	}

	return err
}
