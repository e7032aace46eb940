// Package cli wires the upload and short commands to the pipeline.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/w4/shorty/pipeline"
	"github.com/w4/shorty/source"
)

// CommandFunc builds a command bound to env.
type CommandFunc func(env Env) *cobra.Command

// NewUploadCommand returns the upload command. It uploads the named file,
// or standard input when no file or "-" is given, and prints the URL.
func NewUploadCommand(env Env) *cobra.Command {
	return &cobra.Command{
		Use:   "upload [file|-]",
		Short: "Upload a file or stdin and print its public URL",
		Long: `Upload a file, or standard input, to the configured bucket under u/<uuid>.

The public URL is printed as soon as the object key is known. The content
type is guessed from the file extension, or sniffed from stdin.

The argument is taken as a path even when it starts with a dash. Use
"upload -- -h" to upload a file named -h.`,
		DisableFlagParsing: true,
		Args: func(cmd *cobra.Command, args []string) error {
			paths, help := splitPathArgs(args)
			if help {
				return nil
			}
			return cobra.MaximumNArgs(1)(cmd, paths)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, help := splitPathArgs(args)
			if help {
				return cmd.Help()
			}

			arg := ""
			if len(paths) == 1 {
				arg = paths[0]
			}

			p := env.newPipeline(pipeline.UploadNamer{}, true, func(ctx context.Context) (*source.Resolved, error) {
				return source.Resolve(ctx, env.FS, env.Stdin, arg)
			})
			_, err := p.Run(cmd.Context())
			return err
		},
	}
}

// splitPathArgs separates raw upload arguments from a leading help flag.
// A leading "--" is dropped and disables help handling.
func splitPathArgs(args []string) (paths []string, help bool) {
	if len(args) > 0 {
		switch args[0] {
		case "--":
			return args[1:], false
		case "-h", "--help":
			return nil, true
		}
	}
	return args, false
}

// NewShortCommand returns the short command. It stores an HTML redirect
// to the given URL under s/<token> and prints the short URL.
//
// The redirect is written without presenting the client certificate.
func NewShortCommand(env Env) *cobra.Command {
	return &cobra.Command{
		Use:           "short <url>",
		Short:         "Store a redirect to url and print the short URL",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			target := args[0]
			p := env.newPipeline(pipeline.ShortNamer{}, false, func(context.Context) (*source.Resolved, error) {
				return source.Redirect(target), nil
			})
			_, err := p.Run(cmd.Context())
			return err
		},
	}
}

// Execute runs the command built by newCmd with os.Args and returns the
// process exit status. Errors are printed to env.Stderr.
func Execute(newCmd CommandFunc, env Env) int {
	return ExecuteArgs(context.Background(), newCmd, env, nil)
}

// ExecuteArgs is Execute with explicit arguments; nil means os.Args[1:].
func ExecuteArgs(ctx context.Context, newCmd CommandFunc, env Env, args []string) int {
	if env.Logger == nil {
		env.Logger = NewLogger(env.Stderr, env.LookupEnv)
	}

	cmd := newCmd(env)
	cmd.SetIn(env.Stdin)
	cmd.SetOut(env.Stdout)
	cmd.SetErr(env.Stderr)
	if args != nil {
		cmd.SetArgs(args)
	}

	if err := cmd.ExecuteContext(ctx); err != nil {
		env.Logger.Debug("command failed", "command", cmd.Name(), "error", err)
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
