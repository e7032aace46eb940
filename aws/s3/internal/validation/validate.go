package validation

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/w4/shorty/aws/s3/errors"
)

// maxKeyBytes is the S3 limit on object key length.
const maxKeyBytes = 1024

var mimePattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9.\-+]*/[a-zA-Z0-9][a-zA-Z0-9.\-+]*(\s*;.*)?$`)

// ValidateBucket checks that bucket can be addressed as the first path
// segment of a path-style request. Host name rules are enforced when the
// configuration is loaded.
func ValidateBucket(bucket string) error {
	if bucket == "" {
		return errors.NewError("validateBucket", errors.ErrInvalidBucketName).
			WithMessage("bucket is required")
	}

	if strings.ContainsAny(bucket, "/?#") || strings.IndexFunc(bucket, unicode.IsSpace) >= 0 {
		return errors.NewError("validateBucket", errors.ErrInvalidBucketName).
			WithBucket(bucket).
			WithMessage("bucket must be a single path segment")
	}

	return nil
}

// ValidateObjectKey checks a generated key. The key embeds the extension of
// a user supplied file name, so it may carry arbitrary bytes.
func ValidateObjectKey(key string) error {
	switch {
	case key == "":
		return errors.NewError("validateObjectKey", errors.ErrInvalidObjectKey).
			WithMessage("object key is required")
	case len(key) > maxKeyBytes:
		return errors.NewError("validateObjectKey", errors.ErrInvalidObjectKey).
			WithKey(key).
			WithMessage("object key exceeds 1024 bytes")
	case !utf8.ValidString(key):
		return errors.NewError("validateObjectKey", errors.ErrInvalidObjectKey).
			WithKey(key).
			WithMessage("object key is not valid UTF-8")
	case strings.IndexFunc(key, unicode.IsControl) >= 0:
		return errors.NewError("validateObjectKey", errors.ErrInvalidObjectKey).
			WithKey(key).
			WithMessage("object key contains control characters")
	}

	return nil
}

// ValidateContentType checks that a content type looks like a MIME type.
// An empty content type is allowed and means the header is omitted.
func ValidateContentType(contentType string) error {
	if contentType == "" {
		return nil
	}

	if !mimePattern.MatchString(contentType) {
		return errors.NewError("validateContentType", errors.ErrInvalidInput).
			WithMessage("content type must be a valid MIME type")
	}

	return nil
}

// ValidateLength rejects negative content lengths.
func ValidateLength(length int64) error {
	if length < 0 {
		return errors.NewError("validateLength", errors.ErrInvalidInput).
			WithMessage("content length cannot be negative")
	}
	return nil
}
