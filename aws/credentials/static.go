// Package credentials supplies the static access key/secret pair to the AWS SDK signer.
package credentials

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
)

// StaticProviderName is reported as the Source of every credential set.
const StaticProviderName = "StaticProvider"

// StaticProvider resolves to the same key/secret pair on every call. It never
// expires, never refreshes and never touches the network or filesystem.
//
// Thread Safety: the provider is immutable after construction and safe for
// concurrent use by the SDK's signing middleware.
type StaticProvider struct {
	accessKeyID     string
	secretAccessKey string
}

// NewStaticProvider returns a provider for the given key pair.
func NewStaticProvider(accessKeyID, secretAccessKey string) *StaticProvider {
	return &StaticProvider{
		accessKeyID:     accessKeyID,
		secretAccessKey: secretAccessKey,
	}
}

// Retrieve implements aws.CredentialsProvider.
func (p *StaticProvider) Retrieve(_ context.Context) (aws.Credentials, error) {
	return aws.Credentials{
		AccessKeyID:     p.accessKeyID,
		SecretAccessKey: p.secretAccessKey,
		Source:          StaticProviderName,
		CanExpire:       false,
	}, nil
}

// String identifies the provider without exposing the secret.
func (p *StaticProvider) String() string {
	return StaticProviderName + "(" + p.accessKeyID + ")"
}

var _ aws.CredentialsProvider = (*StaticProvider)(nil)
