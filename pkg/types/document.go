// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Kind identifies which source variant produced a Document.
type Kind string

const (
	KindPDF        Kind = "pdf"
	KindWeb        Kind = "web"
	KindTranscript Kind = "transcript"
)

// Noun returns the word used for this kind in user-facing messages
// ("article", "transcript", "PDF text").
func (k Kind) Noun() string {
	switch k {
	case KindWeb:
		return "article"
	case KindTranscript:
		return "transcript"
	case KindPDF:
		return "PDF text"
	}
	return string(k)
}

// Page is the extracted text of one PDF page.
type Page struct {
	// Number is the 1-based page index in document order.
	Number int `json:"page" yaml:"page"`

	// Text is the page text. Empty pages keep an empty string.
	Text string `json:"text" yaml:"text"`
}

// Segment is a single timed unit of a transcript.
type Segment struct {
	Text string `json:"text" yaml:"text"`

	// StartMs and DurationMs are carried for logging only; they are never
	// written to output files.
	StartMs    int `json:"start_ms,omitempty" yaml:"start_ms,omitempty"`
	DurationMs int `json:"duration_ms,omitempty" yaml:"duration_ms,omitempty"`
}

// Document is the in-memory result of resolving and extracting one input.
// It lives for a single invocation.
type Document struct {
	// Kind is the source variant.
	Kind Kind `json:"kind" yaml:"kind"`

	// Stem is the output filename base, without directory or extension.
	Stem string `json:"stem" yaml:"stem"`

	// Dir is the directory outputs are written to when no override is
	// configured. Empty means the current working directory.
	Dir string `json:"dir,omitempty" yaml:"dir,omitempty"`

	// Title is the web page title, or "untitled". Empty for other kinds.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Text is the flattened text written to the TXT output.
	Text string `json:"text" yaml:"text"`

	// Pages holds per-page text for PDF documents, in ascending page order.
	Pages []Page `json:"pages,omitempty" yaml:"pages,omitempty"`

	// Segments holds transcript segments in delivered order.
	Segments []Segment `json:"segments,omitempty" yaml:"segments,omitempty"`
}
