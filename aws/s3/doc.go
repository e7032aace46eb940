// Package s3 writes objects to an S3-compatible endpoint.
//
// The client is deliberately narrow: it signs with static credentials,
// addresses buckets path-style against a configured endpoint, and issues
// exactly one PutObject per call with retries disabled. Callers that need
// mutual TLS supply an HTTP client built by the transport package, or use
// Factory to derive everything from a config.S3Config.
//
// Example usage:
//
//	client, err := s3.New(
//	    s3.WithEndpoint("https://s3.example.com"),
//	    s3.WithCredentials(credentials.NewStaticProvider(key, secret)),
//	)
//	if err != nil {
//	    return err
//	}
//
//	result, err := client.Put(ctx, &s3types.PutInput{
//	    Bucket:      "i.example.com",
//	    Key:         "u/2f1c.png",
//	    Body:        body,
//	    Length:      size,
//	    ContentType: "image/png",
//	})
package s3
