// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the gpt-convert CLI, which bundles the
// pdf, web, and yt converters as subcommands.
package main

import (
	"os"

	"github.com/pdiddy/gpt-convert/internal/cli"
)

func main() {
	os.Exit(cli.Execute(cli.NewRootCommand()))
}
