// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert runs one conversion: resolve and extract an input through a
// Source, write the requested output formats, then print the resource report.
package convert

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/pdiddy/gpt-convert/internal/output"
	"github.com/pdiddy/gpt-convert/internal/report"
	"github.com/pdiddy/gpt-convert/pkg/types"
)

// Source resolves a single user-supplied identifier (file path, URL, video ID)
// and extracts it into a Document. The PDF, web, and transcript variants
// implement this interface.
type Source interface {
	// Kind returns the variant this source implements.
	Kind() types.Kind

	// Fetch resolves input and returns the extracted document. Progress lines
	// for the user are written to w. Returned errors are classified with one
	// of the Err* kinds.
	Fetch(ctx context.Context, input string, w io.Writer) (*types.Document, error)
}

// Options selects the output formats for a run.
type Options struct {
	ToText bool
	ToJSON bool

	// OutputDir overrides the directory outputs are written to.
	OutputDir string
}

// Validate reports an ErrUsage error when no output format is selected.
func (o Options) Validate() error {
	if !o.ToText && !o.ToJSON {
		return Usage("At least one of --to_text or --to_json must be specified.")
	}
	return nil
}

// Formats returns the selected formats in write order: TXT before JSON.
func (o Options) Formats() []output.Format {
	var fs []output.Format
	if o.ToText {
		fs = append(fs, output.FormatText)
	}
	if o.ToJSON {
		fs = append(fs, output.FormatJSON)
	}
	return fs
}

// Result holds the outcome of a successful run.
type Result struct {
	Document *types.Document
	Written  []string
	Stats    *report.Stats
}

// Runner composes a Source with the shared output writer and reporter.
type Runner struct {
	writer   *output.Writer
	reporter *report.Reporter
	out      io.Writer
	log      zerolog.Logger
}

// NewRunner creates a Runner that prints user-facing lines to out. A nil
// reporter disables the resource report.
func NewRunner(out io.Writer, reporter *report.Reporter, log zerolog.Logger) *Runner {
	return &Runner{
		writer:   output.NewWriter(log),
		reporter: reporter,
		out:      out,
		log:      log,
	}
}

// Run converts input with src. It fails fast: the first error aborts the run
// before anything further is written, and no report is printed.
func (r *Runner) Run(ctx context.Context, src Source, input string, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	if r.reporter != nil {
		r.reporter.Start()
	}

	r.log.Debug().Str("source", string(src.Kind())).Str("input", input).Msg("fetching")
	doc, err := src.Fetch(ctx, input, r.out)
	if err != nil {
		return nil, tag(src.Kind(), Classify(defaultKind(src.Kind()), "fetch", err))
	}
	r.log.Debug().
		Str("stem", doc.Stem).
		Int("chars", len(doc.Text)).
		Int("pages", len(doc.Pages)).
		Int("segments", len(doc.Segments)).
		Msg("extracted")

	written, err := r.writer.Write(doc, opts.OutputDir, opts.Formats(), r.out)
	if err != nil {
		return nil, tag(src.Kind(), Classify(ErrLocalIO, "write", err))
	}

	res := &Result{Document: doc, Written: written}
	if r.reporter != nil {
		stats := r.reporter.Finish()
		if err := stats.Write(r.out); err != nil {
			r.log.Debug().Err(err).Msg("writing report")
		}
		res.Stats = &stats
	}
	return res, nil
}

// defaultKind is the classification for an unclassified fetch error.
func defaultKind(k types.Kind) error {
	switch k {
	case types.KindPDF:
		return ErrParse
	case types.KindWeb:
		return ErrNetwork
	case types.KindTranscript:
		return ErrRemoteService
	}
	return fmt.Errorf("%s failure", k)
}

func tag(k types.Kind, err error) error {
	var ce *Error
	if errors.As(err, &ce) && ce.Source == "" {
		ce.Source = k
	}
	return err
}
