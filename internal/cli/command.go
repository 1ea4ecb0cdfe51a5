// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cli builds the cobra commands shared by the converter binaries.
package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/gpt-convert/internal/convert"
	"github.com/pdiddy/gpt-convert/internal/report"
)

// version is set at build time via ldflags.
var version = "dev"

// newMeter returns the process meter for the resource report. Tests replace
// it with a fake.
var newMeter = func() report.Meter {
	m, err := report.NewProcessMeter()
	if err != nil {
		return report.NopMeter{}
	}
	return m
}

// NewCommand returns the standalone command for v, e.g. pdf-convert.
func NewCommand(v Variant) *cobra.Command {
	cmd := newVariantCommand(v, v.Name)
	cmd.Version = version
	return cmd
}

func newVariantCommand(v Variant, use string) *cobra.Command {
	var (
		toText  bool
		toJSON  bool
		cfgFile string
	)

	cmd := &cobra.Command{
		Use:           use + " <" + v.Arg + ">",
		Short:         v.Short,
		Long:          v.Long,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := convert.Options{ToText: toText, ToJSON: toJSON}
			if err := opts.Validate(); err != nil {
				return err
			}

			cfg, err := loadConfig(viper.New(), cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			log, err := newLogger(cmd.ErrOrStderr(), cfg.Log.Level)
			if err != nil {
				return err
			}
			opts.OutputDir = cfg.Output.Dir

			var rep *report.Reporter
			if cfg.Report.Enabled {
				rep = report.New(newMeter(), report.WithLogger(log))
			}

			runner := convert.NewRunner(cmd.OutOrStdout(), rep, log)
			_, err = runner.Run(cmd.Context(), v.NewSource(cfg, log), args[0], opts)
			return err
		},
	}

	cmd.Flags().BoolVar(&toText, "to_text", false, v.TextHelp)
	cmd.Flags().BoolVar(&toJSON, "to_json", false, v.JSONHelp)
	addConfigFlags(cmd, &cfgFile)
	cmd.Flags().String("output-dir", "", "directory for output files (default: next to the PDF, or the current directory)")
	cmd.Flags().String("log-level", "", "log level: debug, info, warn, error (default warn)")
	return cmd
}

func addConfigFlags(cmd *cobra.Command, cfgFile *string) {
	cmd.Flags().StringVar(cfgFile, "config", "", "config file (default: ./gpt-convert.yaml or ~/.config/gpt-convert/gpt-convert.yaml)")
}
