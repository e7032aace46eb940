package s3

import (
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/w4/shorty/aws/s3/errors"
	"github.com/w4/shorty/aws/s3/internal/s3api"
	"github.com/w4/shorty/aws/s3/s3types"
)

// DefaultRegion is the signing region used when none is configured.
// S3-compatible endpoints generally ignore it.
const DefaultRegion = "us-east-1"

// Client writes objects to a single S3-compatible endpoint.
// It is safe for concurrent use.
type Client struct {
	// s3Client is the underlying AWS SDK S3 client
	s3Client s3api.S3API

	// config is the configuration the client was built from
	config s3types.ClientConfig

	logger *slog.Logger
}

// New creates a new S3 client with the provided options.
// WithEndpoint and WithCredentials are required. Nothing is read from the
// environment or from shared AWS configuration files.
func New(opts ...s3types.Option) (*Client, error) {
	clientCfg := s3types.ClientConfig{
		Region:         DefaultRegion,
		ForcePathStyle: true,
	}
	for _, opt := range opts {
		opt(&clientCfg)
	}

	if clientCfg.Endpoint == "" {
		return nil, errors.NewError("client", errors.ErrInvalidInput).
			WithMessage("endpoint is required")
	}
	if clientCfg.Credentials == nil {
		return nil, errors.NewError("client", errors.ErrInvalidInput).
			WithMessage("credentials are required")
	}

	httpClient := clientCfg.HTTPClient
	if httpClient == nil {
		httpClient = awshttp.NewBuildableClient()
	}

	cfg := aws.Config{
		Region:      clientCfg.Region,
		Credentials: clientCfg.Credentials,
		HTTPClient:  httpClient,
		Retryer: func() aws.Retryer {
			return aws.NopRetryer{}
		},
	}

	s3Client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(clientCfg.Endpoint)
		o.UsePathStyle = clientCfg.ForcePathStyle
		// Keep bodies unchunked so Content-Length is the object size.
		o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
		o.ResponseChecksumValidation = aws.ResponseChecksumValidationWhenRequired
	})

	client := NewWithClient(s3Client)
	client.config = clientCfg
	client.logger = loggerOrDiscard(clientCfg.Logger)
	client.logger.Debug("s3 client ready",
		"endpoint", clientCfg.Endpoint,
		"region", clientCfg.Region,
		"path_style", clientCfg.ForcePathStyle)

	return client, nil
}

// NewWithClient creates a new S3 client with a custom S3API implementation.
// This is primarily used for testing with mocked clients.
func NewWithClient(s3Client s3api.S3API, opts ...s3types.Option) *Client {
	var clientCfg s3types.ClientConfig
	for _, opt := range opts {
		opt(&clientCfg)
	}

	return &Client{
		s3Client: s3Client,
		config:   clientCfg,
		logger:   loggerOrDiscard(clientCfg.Logger),
	}
}

// Endpoint returns the endpoint the client was configured with.
func (c *Client) Endpoint() string {
	return c.config.Endpoint
}

func loggerOrDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}
