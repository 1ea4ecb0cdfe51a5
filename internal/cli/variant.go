// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cli

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/pdiddy/gpt-convert/internal/convert"
	"github.com/pdiddy/gpt-convert/internal/pdfdoc"
	"github.com/pdiddy/gpt-convert/internal/transcript"
	"github.com/pdiddy/gpt-convert/internal/webpage"
	"github.com/pdiddy/gpt-convert/pkg/types"
)

// Variant describes one converter: its command surface and how to build its
// Source from the resolved configuration.
type Variant struct {
	// Name is the standalone binary name (e.g. "pdf-convert").
	Name string

	// Sub is the subcommand name under gpt-convert (e.g. "pdf").
	Sub string

	// Arg is the positional argument placeholder shown in usage.
	Arg string

	Short string
	Long  string

	TextHelp string
	JSONHelp string

	// NewSource builds the Source for a run.
	NewSource func(cfg types.Config, log zerolog.Logger) convert.Source
}

// PDF converts a local PDF file.
var PDF = Variant{
	Name:  "pdf-convert",
	Sub:   "pdf",
	Arg:   "pdf_path",
	Short: "Convert PDF to TXT and JSON formats.",
	Long: `Convert extracts the text of every page of a local PDF file. TXT output is the
page texts concatenated in page order; JSON output is a list of
{"page": n, "text": "..."} objects. Outputs are written next to the PDF.`,
	TextHelp: "Convert PDF to TXT format.",
	JSONHelp: "Convert PDF to JSON format.",
	NewSource: func(_ types.Config, log zerolog.Logger) convert.Source {
		return pdfdoc.New(log)
	},
}

// Web downloads a web article.
var Web = Variant{
	Name:  "web-convert",
	Sub:   "web",
	Arg:   "url",
	Short: "Download and prepare web articles for GPT models.",
	Long: `Download fetches a web article, strips scripts and styles, and saves its text.
Output files are named after the page title with spaces replaced by
underscores. JSON output is {"article": "..."}.`,
	TextHelp: "Save article as TXT format.",
	JSONHelp: "Save article as JSON format.",
	NewSource: func(cfg types.Config, log zerolog.Logger) convert.Source {
		return webpage.New(nil, cfg.HTTP, log)
	},
}

// Transcript retrieves a YouTube transcript.
var Transcript = Variant{
	Name:  "yt-convert",
	Sub:   "yt",
	Arg:   "video_id",
	Short: "Download and prepare YouTube transcripts for GPT models.",
	Long: `Retrieve fetches the transcript of a YouTube video in the first available
preferred language (default: en, en-US, de) and saves the segment texts
joined by spaces. Output files are named after the video ID. JSON output is
{"transcript": "..."}.`,
	TextHelp: "Save transcript as TXT format.",
	JSONHelp: "Save transcript as JSON format.",
	NewSource: func(cfg types.Config, log zerolog.Logger) convert.Source {
		client := &http.Client{Timeout: cfg.HTTP.Timeout}
		return transcript.New(transcript.NewYouTubeProvider(client), cfg.Transcript.Languages, log)
	},
}

// Variants lists every converter in subcommand order.
var Variants = []Variant{PDF, Web, Transcript}
