package config

import (
	"bytes"
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/w4/shorty/errors"
	"github.com/w4/shorty/fs"
)

// LookupEnvFunc looks up an environment variable; os.LookupEnv satisfies it.
type LookupEnvFunc func(key string) (string, bool)

// Load resolves the configuration path from $HOME and loads it from filesystem.
func Load(ctx context.Context, filesystem fs.ReadFS) (*Config, error) {
	return LoadEnv(ctx, filesystem, os.LookupEnv)
}

// LoadEnv is Load with $HOME read through lookup.
func LoadEnv(ctx context.Context, filesystem fs.ReadFS, lookup LookupEnvFunc) (*Config, error) {
	path, err := DefaultPath(lookup)
	if err != nil {
		return nil, err
	}
	return LoadFile(ctx, filesystem, path)
}

// DefaultPath returns $HOME/.config/shorty.toml using lookup to read $HOME.
// An unset or empty $HOME is an error.
func DefaultPath(lookup LookupEnvFunc) (string, error) {
	home, ok := lookup("HOME")
	if !ok || home == "" {
		return "", errors.New(errors.CodeInvalidConfig, "$HOME missing")
	}
	return filepath.Join(home, Path), nil
}

// LoadFile reads, decodes and validates the configuration at path.
//
// The function performs the following steps:
// 1. Reads the file through the filesystem abstraction
// 2. Parses it as TOML
// 3. Decodes the [s3] table into Config
// 4. Validates required fields
//
// All errors carry errors.CodeInvalidConfig and the offending path.
func LoadFile(_ context.Context, filesystem fs.ReadFS, path string) (*Config, error) {
	errCtx := map[string]interface{}{"path": path}

	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeInvalidConfig, "couldn't load config", errCtx)
	}

	v := viper.New()
	v.SetConfigType("toml")
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeInvalidConfig, "couldn't parse config", errCtx)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeInvalidConfig, "couldn't decode config", errCtx)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeInvalidConfig, "invalid config", errCtx)
	}

	return &cfg, nil
}
