package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/w4/shorty/errors"
)

// Validate checks that every required field is present and that the
// optional TLS table is either complete or absent.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New(errors.CodeInvalidInput, "configuration is nil")
	}

	var missing []string
	required := []struct {
		field string
		value string
	}{
		{"s3.endpoint", c.S3.Endpoint},
		{"s3.bucket", c.S3.Bucket},
		{"s3.key", c.S3.Key},
		{"s3.secret", c.S3.Secret},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			missing = append(missing, r.field)
		}
	}

	if t := c.S3.TLS; t != nil {
		if t.Certificate == "" {
			missing = append(missing, "s3.tls.certificate")
		}
		if t.Key == "" {
			missing = append(missing, "s3.tls.key")
		}
	}

	if len(missing) > 0 {
		return errors.New(
			errors.CodeInvalidConfig,
			fmt.Sprintf("missing required fields: %s", strings.Join(missing, ", ")),
		)
	}

	if err := validateEndpoint(c.S3.Endpoint); err != nil {
		return err
	}
	return validateBucket(c.S3.Bucket)
}

// validateBucket requires a host name, since every printed URL is
// https://<bucket>/<key>.
func validateBucket(bucket string) error {
	invalid := func(reason string) error {
		return errors.New(
			errors.CodeInvalidConfig,
			fmt.Sprintf("s3.bucket %q is not a valid host name: %s", bucket, reason),
		)
	}

	if len(bucket) > 253 {
		return invalid("longer than 253 bytes")
	}
	for _, label := range strings.Split(bucket, ".") {
		switch {
		case label == "":
			return invalid("empty label")
		case len(label) > 63:
			return invalid("label longer than 63 bytes")
		case label[0] == '-' || label[len(label)-1] == '-':
			return invalid("label starts or ends with a hyphen")
		}
		for _, r := range label {
			if !isHostChar(r) {
				return invalid(fmt.Sprintf("character %q not allowed", r))
			}
		}
	}
	return nil
}

func isHostChar(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-'
}

// validateEndpoint accepts absolute http and https URLs only.
func validateEndpoint(endpoint string) error {
	u, err := url.Parse(endpoint)
	if err != nil {
		return errors.Wrap(err, errors.CodeInvalidConfig, "s3.endpoint is not a valid URL")
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.New(
			errors.CodeInvalidConfig,
			fmt.Sprintf("s3.endpoint %q must be an absolute http or https URL", endpoint),
		)
	}
	return nil
}
