// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/gpt-convert/internal/convert"
)

// NewRootCommand returns the gpt-convert command with one subcommand per
// variant plus config and version.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "gpt-convert",
		Short: "Prepare PDFs, web articles, and YouTube transcripts for GPT models",
		Long: `gpt-convert extracts plain text from a local PDF, a web article, or a YouTube
transcript and saves it as TXT and/or JSON.

Each source is a subcommand: pdf, web, and yt. The same converters are also
built as the standalone binaries pdf-convert, web-convert, and yt-convert.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	for _, v := range Variants {
		root.AddCommand(newVariantCommand(v, v.Sub))
	}
	root.AddCommand(newConfigCommand(), newVersionCommand())
	return root
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of gpt-convert",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "gpt-convert %s\n", version)
		},
	}
}

func newConfigCommand() *cobra.Command {
	var cfgFile string
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(viper.New(), cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(cfg); err != nil {
				return fmt.Errorf("encoding config: %w", err)
			}
			return enc.Close()
		},
	}
	addConfigFlags(cmd, &cfgFile)
	return cmd
}

// Execute runs cmd with a context cancelled on SIGINT or SIGTERM and returns
// the process exit code. Failures are printed to the command's error stream
// as a generic message followed by the underlying error.
func Execute(cmd *cobra.Command) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return execute(ctx, cmd)
}

func execute(ctx context.Context, cmd *cobra.Command) int {
	if err := cmd.ExecuteContext(ctx); err != nil {
		for _, line := range convert.Diagnostic(err) {
			fmt.Fprintln(cmd.ErrOrStderr(), line)
		}
		return 1
	}
	return 0
}
