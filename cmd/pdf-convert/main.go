// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Command pdf-convert extracts the text of a PDF file into TXT and/or JSON.
package main

import (
	"os"

	"github.com/pdiddy/gpt-convert/internal/cli"
)

func main() {
	os.Exit(cli.Execute(cli.NewCommand(cli.PDF)))
}
