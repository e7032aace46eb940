package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/w4/shorty/config"
	"github.com/w4/shorty/fs"
	"github.com/w4/shorty/fs/billy"
	"github.com/w4/shorty/pipeline"
)

// LogLevelEnv selects the log level: debug, info, warn or error.
const LogLevelEnv = "SHORTY_LOG_LEVEL"

// Env is the process environment a command runs against.
type Env struct {
	FS        fs.ReadFS
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	LookupEnv config.LookupEnvFunc

	// NewClient overrides the storage client. Nil uses S3.
	NewClient pipeline.ClientBuilder

	Logger *slog.Logger
}

// DefaultEnv returns the environment of the running process.
func DefaultEnv() Env {
	return Env{
		FS:        billy.NewBaseOSFS(),
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		LookupEnv: os.LookupEnv,
	}
}

// NewLogger builds a text logger on w at the level named by LogLevelEnv.
// Unset or unrecognized levels fall back to warn.
func NewLogger(w io.Writer, lookup config.LookupEnvFunc) *slog.Logger {
	level := slog.LevelWarn
	if lookup != nil {
		if v, ok := lookup(LogLevelEnv); ok {
			var parsed slog.Level
			if err := parsed.UnmarshalText([]byte(strings.TrimSpace(v))); err == nil {
				level = parsed
			}
		}
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func (e Env) newPipeline(namer pipeline.KeyNamer, useIdentity bool, resolve pipeline.SourceResolver) *pipeline.Pipeline {
	return &pipeline.Pipeline{
		Config: func(ctx context.Context) (*config.Config, error) {
			return config.LoadEnv(ctx, e.FS, e.LookupEnv)
		},
		Namer:       namer,
		Source:      resolve,
		UseIdentity: useIdentity,
		Out:         e.Stdout,
		Logger:      e.Logger,
		FS:          e.FS,
		NewClient:   e.NewClient,
	}
}
