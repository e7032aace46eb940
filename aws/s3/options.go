package s3

import (
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"

	"github.com/w4/shorty/aws/s3/s3types"
)

// WithEndpoint sets the base URL of the S3-compatible service.
// Both http and https endpoints are accepted.
func WithEndpoint(endpoint string) s3types.Option {
	return func(c *s3types.ClientConfig) {
		c.Endpoint = endpoint
	}
}

// WithRegion sets the signing region. Default is DefaultRegion.
func WithRegion(region string) s3types.Option {
	return func(c *s3types.ClientConfig) {
		if region != "" {
			c.Region = region
		}
	}
}

// WithCredentials sets the provider used to sign requests.
func WithCredentials(provider aws.CredentialsProvider) s3types.Option {
	return func(c *s3types.ClientConfig) {
		c.Credentials = provider
	}
}

// WithHTTPClient sets the HTTP client that carries requests.
// Use transport.NewHTTPClient to present a client certificate.
func WithHTTPClient(client aws.HTTPClient) s3types.Option {
	return func(c *s3types.ClientConfig) {
		c.HTTPClient = client
	}
}

// WithForcePathStyle toggles path-style addressing.
// Default is true, which S3-compatible services without virtual hosting require.
func WithForcePathStyle(forcePathStyle bool) s3types.Option {
	return func(c *s3types.ClientConfig) {
		c.ForcePathStyle = forcePathStyle
	}
}

// WithLogger sets the logger for debug output.
func WithLogger(logger *slog.Logger) s3types.Option {
	return func(c *s3types.ClientConfig) {
		c.Logger = logger
	}
}
