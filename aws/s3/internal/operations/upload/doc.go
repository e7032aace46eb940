// Package upload handles S3 object writes.
//
// Every write is a single PutObject request with an explicit
// Content-Length. There is no multipart path and no retry: a failed
// request is reported to the caller unchanged.
package upload
