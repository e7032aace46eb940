package transport

import (
	"crypto/tls"
	"crypto/x509"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/w4/shorty/errors"
	"github.com/w4/shorty/internal/testutil"
)

// peerCertHandler reports how many client certificates the server saw.
func peerCertHandler(seen *atomic.Int32) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.TLS != nil {
			seen.Store(int32(len(r.TLS.PeerCertificates)))
		}
		_, _ = io.WriteString(w, "ok")
	}
}

func newTLSServer(t *testing.T, clientAuth tls.ClientAuthType, clientCAs *x509.CertPool, h http.Handler) (*httptest.Server, *x509.CertPool) {
	t.Helper()
	srv := httptest.NewUnstartedServer(h)
	srv.TLS = &tls.Config{ClientAuth: clientAuth, ClientCAs: clientCAs}
	srv.StartTLS()
	t.Cleanup(srv.Close)

	roots := x509.NewCertPool()
	roots.AddCert(srv.Certificate())
	return srv, roots
}

func get(t *testing.T, client interface {
	Do(*http.Request) (*http.Response, error)
}, url string) error {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, err = io.ReadAll(resp.Body)
	return err
}

func loadPair(t *testing.T, bundle *testutil.CertBundle) *tls.Certificate {
	t.Helper()
	identity, err := tls.X509KeyPair(bundle.CertPEM, NormalizeKeyPEM(bundle.KeyPEM))
	require.NoError(t, err)
	return &identity
}

func TestNewHTTPClient_PlainHTTP(t *testing.T) {
	var seen atomic.Int32
	srv := httptest.NewServer(peerCertHandler(&seen))
	t.Cleanup(srv.Close)

	client, err := NewHTTPClient(nil)
	require.NoError(t, err)

	assert.NoError(t, get(t, client, srv.URL))
}

func TestNewHTTPClient_IdentityOverPlainHTTP(t *testing.T) {
	var seen atomic.Int32
	srv := httptest.NewServer(peerCertHandler(&seen))
	t.Cleanup(srv.Close)

	ca := testutil.NewCA(t)
	client, err := NewHTTPClient(loadPair(t, ca.IssueClient(t, testutil.KeyPKCS8)))
	require.NoError(t, err)

	assert.NoError(t, get(t, client, srv.URL))
}

func TestNewHTTPClient_ServerDoesNotRequestCertificate(t *testing.T) {
	var seen atomic.Int32
	srv, roots := newTLSServer(t, tls.NoClientCert, nil, peerCertHandler(&seen))

	ca := testutil.NewCA(t)
	client, err := NewHTTPClient(loadPair(t, ca.IssueClient(t, testutil.KeyPKCS1)), WithRootCAs(roots))
	require.NoError(t, err)

	require.NoError(t, get(t, client, srv.URL))
	assert.Equal(t, int32(0), seen.Load())
}

func TestNewHTTPClient_MutualTLS(t *testing.T) {
	ca := testutil.NewCA(t)
	var seen atomic.Int32
	srv, roots := newTLSServer(t, tls.RequireAndVerifyClientCert, ca.Pool(), peerCertHandler(&seen))

	t.Run("identity presented", func(t *testing.T) {
		client, err := NewHTTPClient(loadPair(t, ca.IssueClient(t, testutil.KeyPKCS1)), WithRootCAs(roots))
		require.NoError(t, err)

		require.NoError(t, get(t, client, srv.URL))
		assert.Equal(t, int32(1), seen.Load())
	})

	t.Run("no identity is rejected", func(t *testing.T) {
		client, err := NewHTTPClient(nil, WithRootCAs(roots))
		require.NoError(t, err)

		assert.Error(t, get(t, client, srv.URL))
	})

	t.Run("identity from another CA is rejected", func(t *testing.T) {
		other := testutil.NewCA(t)
		client, err := NewHTTPClient(loadPair(t, other.IssueClient(t, testutil.KeyPKCS8)), WithRootCAs(roots))
		require.NoError(t, err)

		assert.Error(t, get(t, client, srv.URL))
	})
}

func TestNewHTTPClient_TransportSettings(t *testing.T) {
	ca := testutil.NewCA(t)
	identity := loadPair(t, ca.IssueClient(t, testutil.KeyPKCS8))
	pool := ca.Pool()

	client, err := NewHTTPClient(identity, WithRootCAs(pool))
	require.NoError(t, err)

	tr := client.GetTransport()
	require.NotNil(t, tr.TLSClientConfig)
	assert.GreaterOrEqual(t, tr.TLSClientConfig.MinVersion, uint16(tls.VersionTLS12))
	require.Len(t, tr.TLSClientConfig.Certificates, 1)
	assert.Equal(t, identity.Certificate, tr.TLSClientConfig.Certificates[0].Certificate)
	assert.Same(t, pool, tr.TLSClientConfig.RootCAs)
}

func TestNewHTTPClient_InvalidIdentity(t *testing.T) {
	_, err := NewHTTPClient(&tls.Certificate{})
	require.Error(t, err)
	assert.Equal(t, errors.CodeTLSConfiguration, errors.GetCode(err))
}
