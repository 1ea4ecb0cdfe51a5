// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Command yt-convert retrieves a YouTube transcript and saves it as TXT
// and/or JSON.
package main

import (
	"os"

	"github.com/pdiddy/gpt-convert/internal/cli"
)

func main() {
	os.Exit(cli.Execute(cli.NewCommand(cli.Transcript)))
}
