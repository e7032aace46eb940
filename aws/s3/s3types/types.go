// Package s3types provides shared type definitions for the S3 module.
package s3types

import (
	"io"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
)

// Option configures an S3 client.
type Option func(*ClientConfig)

// ClientConfig holds the settings used to construct an S3 client.
type ClientConfig struct {
	// Endpoint is the base URL of the S3-compatible service
	Endpoint string

	// Region is used only for request signing
	Region string

	// Credentials signs every request
	Credentials aws.CredentialsProvider

	// HTTPClient carries requests, including any client TLS identity
	HTTPClient aws.HTTPClient

	// ForcePathStyle addresses objects as <endpoint>/<bucket>/<key>
	ForcePathStyle bool

	// Logger receives debug output; nil discards it
	Logger *slog.Logger
}

// PutInput describes a single object write.
type PutInput struct {
	// Bucket is the destination bucket
	Bucket string

	// Key is the destination object key
	Key string

	// Body is the object content; it must yield exactly Length bytes
	Body io.Reader

	// Length is sent as Content-Length
	Length int64

	// ContentType is sent as Content-Type when non-empty
	ContentType string
}

// UploadResult contains the result of an upload operation.
type UploadResult struct {
	// Key is the S3 object key that was uploaded
	Key string

	// Size is the size of the uploaded object in bytes
	Size int64

	// ETag is the S3 entity tag for the uploaded object
	ETag string

	// VersionID is the version ID if versioning is enabled
	VersionID string

	// Duration is how long the upload took
	Duration time.Duration
}
