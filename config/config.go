// Package config loads the shorty storage configuration.
//
// The configuration is a TOML document stored at a fixed location under the
// user's home directory ($HOME/.config/shorty.toml):
//
//	[s3]
//	endpoint = "https://s3.example.com"
//	bucket   = "i.example.com"
//	key      = "AKIA..."
//	secret   = "..."
//
//	# Optional: present a client certificate (mutual TLS).
//	[s3.tls]
//	certificate = "/home/me/.config/shorty/client.crt"
//	key         = "/home/me/.config/shorty/client.key"
//
// The configuration is loaded once per run and is immutable afterwards. No
// defaults are substituted: a missing home directory, a missing or malformed
// file, or a missing required field are all reported as errors carrying
// errors.CodeInvalidConfig.
//
// # Basic Usage
//
//	cfg, err := config.Load(ctx, billy.NewBaseOSFS())
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.S3.Bucket)
package config

// Path is the location of the configuration file relative to $HOME.
const Path = ".config/shorty.toml"

// Config is the root of the configuration document.
type Config struct {
	// S3 holds the object store settings from the [s3] table.
	S3 S3Config `mapstructure:"s3"`
}

// S3Config describes the object store the tools write to.
type S3Config struct {
	// Endpoint is the URL of the S3-compatible service. Plain http:// endpoints are allowed.
	Endpoint string `mapstructure:"endpoint"`

	// Bucket is the target bucket. It is also the host name of the printed public URL.
	Bucket string `mapstructure:"bucket"`

	// Key is the static access key id.
	Key string `mapstructure:"key"`

	// Secret is the static secret access key.
	Secret string `mapstructure:"secret"`

	// TLS enables mutual TLS when set.
	TLS *TLSConfig `mapstructure:"tls"`
}

// TLSConfig points at the client certificate and private key used for mutual TLS.
type TLSConfig struct {
	// Certificate is the path to the PEM encoded client certificate (chain).
	Certificate string `mapstructure:"certificate"`

	// Key is the path to the PEM encoded private key.
	Key string `mapstructure:"key"`
}

// PublicURL returns the URL an object stored under key is served from.
func (c S3Config) PublicURL(key string) string {
	return "https://" + c.Bucket + "/" + key
}

// String renders the configuration without the secret.
func (c S3Config) String() string {
	mtls := "off"
	if c.TLS != nil {
		mtls = "on"
	}
	return "endpoint=" + c.Endpoint + " bucket=" + c.Bucket + " mtls=" + mtls
}
