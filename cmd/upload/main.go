// Command upload stores a file, or standard input, in the configured
// bucket and prints its public URL.
package main

import (
	"os"

	"github.com/w4/shorty/internal/cli"
)

func main() {
	os.Exit(cli.Execute(cli.NewUploadCommand, cli.DefaultEnv()))
}
