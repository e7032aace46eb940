// Package transport builds the HTTP transport used to reach the object store.
//
// It has two halves:
//
//   - LoadIdentity turns an optional certificate/key file pair into a
//     tls.Certificate for mutual TLS. Both files are read concurrently and
//     the key's legacy RSA PEM label is normalised before parsing.
//   - NewHTTPClient composes an aws-sdk-go-v2 buildable HTTP client that
//     presents the identity on every TLS handshake when one is supplied.
//     Plain http:// endpoints remain reachable so local stores work unchanged.
package transport
