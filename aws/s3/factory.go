package s3

import (
	"context"
	"crypto/tls"
	"log/slog"

	"github.com/w4/shorty/aws/credentials"
	"github.com/w4/shorty/aws/s3/s3types"
	"github.com/w4/shorty/config"
	"github.com/w4/shorty/fs"
	"github.com/w4/shorty/transport"
)

// Factory builds clients from S3 configuration sections.
type Factory struct {
	// FS resolves certificate and key paths
	FS fs.ReadFS

	// TransportOptions are passed to transport.NewHTTPClient
	TransportOptions []transport.Option

	// Options are applied after the options derived from the config
	Options []s3types.Option

	Logger *slog.Logger
}

// Build loads the TLS identity (when useIdentity is set and cfg.TLS is
// present), builds the connector and credential provider, and returns a
// client targeting cfg.Endpoint.
func (f Factory) Build(ctx context.Context, cfg config.S3Config, useIdentity bool) (*Client, error) {
	var identity *tls.Certificate
	if useIdentity && cfg.TLS != nil {
		var err error
		identity, err = transport.LoadIdentity(ctx, f.FS, cfg.TLS)
		if err != nil {
			return nil, err
		}
	}

	httpClient, err := transport.NewHTTPClient(identity, f.TransportOptions...)
	if err != nil {
		return nil, err
	}

	if f.Logger != nil {
		f.Logger.Debug("building s3 client", "s3", cfg.String(), "identity", identity != nil)
	}

	opts := []s3types.Option{
		WithEndpoint(cfg.Endpoint),
		WithCredentials(credentials.NewStaticProvider(cfg.Key, cfg.Secret)),
		WithHTTPClient(httpClient),
		WithLogger(f.Logger),
	}

	return New(append(opts, f.Options...)...)
}
