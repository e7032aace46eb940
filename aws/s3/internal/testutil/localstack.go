package testutil

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/localstack"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	// LocalStackAccessKey and LocalStackSecretKey are accepted by LocalStack as-is.
	LocalStackAccessKey = "test"
	LocalStackSecretKey = "test"

	localStackImage  = "localstack/localstack:latest"
	localStackRegion = "us-east-1"
	edgePort         = "4566"
)

// LocalStackContainer is a running LocalStack instance serving S3 over
// plain HTTP on its edge port.
type LocalStackContainer struct {
	container *localstack.LocalStackContainer
	endpoint  string
}

// NewLocalStackContainer starts LocalStack and waits for its health check.
func NewLocalStackContainer(ctx context.Context, t *testing.T) (*LocalStackContainer, error) {
	t.Helper()

	container, err := localstack.Run(ctx, localStackImage,
		testcontainers.WithWaitStrategy(
			wait.ForHTTP("/_localstack/health").
				WithPort(edgePort).
				WithStartupTimeout(2*time.Minute),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("localstack: start: %w", err)
	}

	endpoint, err := edgeEndpoint(ctx, container)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	return &LocalStackContainer{container: container, endpoint: endpoint}, nil
}

func edgeEndpoint(ctx context.Context, container *localstack.LocalStackContainer) (string, error) {
	host, err := container.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("localstack: host: %w", err)
	}

	port, err := nat.NewPort("tcp", edgePort)
	if err != nil {
		return "", fmt.Errorf("localstack: edge port: %w", err)
	}

	mapped, err := container.MappedPort(ctx, port)
	if err != nil {
		return "", fmt.Errorf("localstack: mapped port %s: %w", port, err)
	}

	return "http://" + host + ":" + mapped.Port(), nil
}

// VerifierClient returns a stock SDK client for reading back what the
// client under test wrote.
func (c *LocalStackContainer) VerifierClient(ctx context.Context) (*s3.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(localStackRegion),
		config.WithCredentialsProvider(aws.CredentialsProviderFunc(
			func(context.Context) (aws.Credentials, error) {
				return aws.Credentials{
					AccessKeyID:     LocalStackAccessKey,
					SecretAccessKey: LocalStackSecretKey,
				}, nil
			})),
	)
	if err != nil {
		return nil, fmt.Errorf("localstack: sdk config: %w", err)
	}

	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = true
		o.BaseEndpoint = aws.String(c.endpoint)
	}), nil
}

// Endpoint is the http URL of the edge port.
func (c *LocalStackContainer) Endpoint() string {
	return c.endpoint
}

// Terminate removes the container. It is safe on a zero value.
func (c *LocalStackContainer) Terminate(ctx context.Context) error {
	if c.container == nil {
		return nil
	}
	if err := c.container.Terminate(ctx); err != nil {
		return fmt.Errorf("localstack: terminate: %w", err)
	}
	return nil
}

// SetupLocalStackTest starts LocalStack with bucket created and returns a
// verifier client. The container is removed when t finishes. Skipped under
// -short.
func SetupLocalStackTest(t *testing.T, bucket string) (*LocalStackContainer, *s3.Client) {
	t.Helper()

	if testing.Short() {
		t.Skip("LocalStack tests need docker")
	}

	ctx := context.Background()

	container, err := NewLocalStackContainer(ctx, t)
	if err != nil {
		t.Fatalf("%v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("%v", err)
		}
	})

	client, err := container.VerifierClient(ctx)
	if err != nil {
		t.Fatalf("%v", err)
	}

	if _, err := client.CreateBucket(ctx, &s3.CreateBucketInput{Bucket: aws.String(bucket)}); err != nil {
		t.Fatalf("create bucket %s: %v", bucket, err)
	}

	return container, client
}

// ReadObject returns the body and Content-Type stored under bucket/key.
func ReadObject(ctx context.Context, client *s3.Client, bucket, key string) ([]byte, string, error) {
	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, "", fmt.Errorf("get %s/%s: %w", bucket, key, err)
	}
	defer out.Body.Close()

	body, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, "", fmt.Errorf("read %s/%s: %w", bucket, key, err)
	}

	return body, aws.ToString(out.ContentType), nil
}
