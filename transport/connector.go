package transport

import (
	"crypto/tls"
	"crypto/x509"
	"net/http"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"

	"github.com/w4/shorty/errors"
)

// Option configures the connector.
type Option func(*options)

type options struct {
	rootCAs *x509.CertPool
}

// WithRootCAs trusts pool instead of the system roots when verifying the
// server certificate. Useful for S3-compatible stores behind a private CA.
func WithRootCAs(pool *x509.CertPool) Option {
	return func(o *options) {
		o.rootCAs = pool
	}
}

// NewHTTPClient builds the HTTP client used by the storage client.
//
// When identity is non-nil it is presented during every TLS handshake; a
// server that does not request a client certificate simply ignores it.
// Non-TLS endpoints are dialled as plain HTTP.
func NewHTTPClient(identity *tls.Certificate, opts ...Option) (*awshttp.BuildableClient, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if identity != nil {
		if err := validateIdentity(identity); err != nil {
			return nil, err
		}
	}

	client := awshttp.NewBuildableClient().WithTransportOptions(func(tr *http.Transport) {
		cfg := &tls.Config{MinVersion: tls.VersionTLS12}
		if tr.TLSClientConfig != nil {
			cfg = tr.TLSClientConfig.Clone()
		}
		if identity != nil {
			cfg.Certificates = []tls.Certificate{*identity}
		}
		if o.rootCAs != nil {
			cfg.RootCAs = o.rootCAs
		}
		tr.TLSClientConfig = cfg
	})

	return client, nil
}

// validateIdentity rejects identities the TLS stack could never present.
func validateIdentity(identity *tls.Certificate) error {
	if len(identity.Certificate) == 0 {
		return errors.New(errors.CodeTLSConfiguration, "client identity has no certificate")
	}
	if identity.PrivateKey == nil {
		return errors.New(errors.CodeTLSConfiguration, "client identity has no private key")
	}
	if _, err := x509.ParseCertificate(identity.Certificate[0]); err != nil {
		return errors.Wrap(err, errors.CodeTLSConfiguration, "client identity leaf certificate is invalid")
	}
	return nil
}
