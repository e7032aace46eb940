// Package testutil provides test utilities and mocks for S3 operations.
// This package is internal and should only be used for testing within the S3 module.
package testutil

import (
	"context"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/w4/shorty/aws/s3/internal/s3api"
)

// MockS3Client is a mock implementation of the S3API interface for testing.
// PutObjectFunc customizes the response; every call is recorded.
type MockS3Client struct {
	PutObjectFunc func(context.Context, *s3.PutObjectInput, ...func(*s3.Options)) (*s3.PutObjectOutput, error)

	mu    sync.Mutex
	calls []*s3.PutObjectInput
}

// PutObject mocks the S3 PutObject operation.
func (m *MockS3Client) PutObject(
	ctx context.Context,
	params *s3.PutObjectInput,
	optFns ...func(*s3.Options),
) (*s3.PutObjectOutput, error) {
	m.mu.Lock()
	m.calls = append(m.calls, params)
	m.mu.Unlock()

	if m.PutObjectFunc != nil {
		return m.PutObjectFunc(ctx, params, optFns...)
	}
	return &s3.PutObjectOutput{}, nil
}

// PutCalls returns the inputs of every PutObject call so far.
func (m *MockS3Client) PutCalls() []*s3.PutObjectInput {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*s3.PutObjectInput(nil), m.calls...)
}

var _ s3api.S3API = (*MockS3Client)(nil)
