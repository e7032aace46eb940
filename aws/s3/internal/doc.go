// Package internal contains private implementation details for the S3 module.
//
// The internal packages are organized as follows:
//   - operations/upload: the single PutObject write path
//   - s3api: the SDK surface the client depends on
//   - validation: bucket, key and content type checks
//   - testutil: mocks and LocalStack helpers
package internal
