// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Command web-convert downloads a web article and saves its text as TXT
// and/or JSON.
package main

import (
	"os"

	"github.com/pdiddy/gpt-convert/internal/cli"
)

func main() {
	os.Exit(cli.Execute(cli.NewCommand(cli.Web)))
}
