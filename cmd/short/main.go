// Command short stores an HTML redirect to a URL and prints the short link.
package main

import (
	"os"

	"github.com/w4/shorty/internal/cli"
)

func main() {
	os.Exit(cli.Execute(cli.NewShortCommand, cli.DefaultEnv()))
}
