// Package pipeline runs one upload from configuration to stored object.
//
// A run loads configuration, then builds the storage client and resolves
// the upload source concurrently. Once both are ready it names the object,
// prints the public URL and issues a single PUT.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/w4/shorty/aws/s3"
	"github.com/w4/shorty/aws/s3/s3types"
	"github.com/w4/shorty/config"
	"github.com/w4/shorty/errors"
	"github.com/w4/shorty/fs"
	"github.com/w4/shorty/source"
)

// Putter writes a single object.
type Putter interface {
	Put(ctx context.Context, input *s3types.PutInput) (*s3types.UploadResult, error)
}

// ConfigLoader returns the configuration for a run.
type ConfigLoader func(ctx context.Context) (*config.Config, error)

// ClientBuilder builds a Putter for the configured endpoint.
type ClientBuilder func(ctx context.Context, cfg config.S3Config, useIdentity bool) (Putter, error)

// SourceResolver produces the upload body.
type SourceResolver func(ctx context.Context) (*source.Resolved, error)

// Result describes a completed upload.
type Result struct {
	URL    string
	Key    string
	Length int64
	ETag   string
}

// Pipeline holds everything one run needs.
type Pipeline struct {
	// Config loads the configuration. It runs before anything else.
	Config ConfigLoader

	// Namer picks the object key.
	Namer KeyNamer

	// Source resolves the upload body.
	Source SourceResolver

	// UseIdentity presents the configured client certificate, if any.
	UseIdentity bool

	// Out receives the public URL line.
	Out io.Writer

	Logger *slog.Logger

	// FS resolves TLS material when NewClient is nil.
	FS fs.ReadFS

	// NewClient builds the storage client. Defaults to an s3.Factory over FS.
	NewClient ClientBuilder
}

// Run executes the pipeline. The URL is written to Out before the PUT is
// issued, so a failed PUT still leaves the URL printed.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	logger := p.logger()

	cfg, err := p.Config(ctx)
	if err != nil {
		return nil, err
	}
	logger.Debug("config loaded", "s3", cfg.S3.String())

	client, resolved, err := p.prepare(ctx, cfg.S3)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := resolved.Close(); cerr != nil {
			logger.Warn("failed to close upload source", "error", cerr)
		}
	}()

	key, err := p.Namer.Key(resolved.Extension)
	if err != nil {
		return nil, err
	}
	url := cfg.S3.PublicURL(key)

	if _, err := fmt.Fprintln(p.Out, url); err != nil {
		return nil, errors.Wrap(err, errors.CodeIO, "failed to write url")
	}

	logger.Debug("uploading", "key", key, "length", resolved.Length, "content_type", resolved.ContentType)

	out, err := client.Put(ctx, &s3types.PutInput{
		Bucket:      cfg.S3.Bucket,
		Key:         key,
		Body:        resolved.Body,
		Length:      resolved.Length,
		ContentType: resolved.ContentType,
	})
	if err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeStorage, "upload failed",
			map[string]interface{}{"key": key})
	}

	return &Result{
		URL:    url,
		Key:    key,
		Length: out.Size,
		ETag:   out.ETag,
	}, nil
}

// prepare builds the client and resolves the source concurrently. Both
// must succeed; on failure any resolved source is closed.
func (p *Pipeline) prepare(ctx context.Context, cfg config.S3Config) (Putter, *source.Resolved, error) {
	var (
		client   Putter
		resolved *source.Resolved
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c, err := p.newClient()(gctx, cfg, p.UseIdentity)
		if err != nil {
			return stageError(err, errors.CodeStorage, "failed to build storage client")
		}
		client = c
		return nil
	})
	g.Go(func() error {
		r, err := p.Source(gctx)
		if err != nil {
			return stageError(err, errors.CodeIO, "failed to resolve upload source")
		}
		resolved = r
		return nil
	})

	if err := g.Wait(); err != nil {
		_ = resolved.Close()
		return nil, nil, err
	}
	return client, resolved, nil
}

func (p *Pipeline) newClient() ClientBuilder {
	if p.NewClient != nil {
		return p.NewClient
	}
	factory := s3.Factory{FS: p.FS, Logger: p.Logger}
	return func(ctx context.Context, cfg config.S3Config, useIdentity bool) (Putter, error) {
		return factory.Build(ctx, cfg, useIdentity)
	}
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return p.Logger
}

// stageError leaves classified errors alone and tags the rest with code.
func stageError(err error, code errors.ErrorCode, msg string) error {
	if errors.GetCode(err) != errors.CodeUnknown {
		return err
	}
	return errors.Wrap(err, code, msg)
}
