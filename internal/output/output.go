// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package output writes extracted documents as TXT and JSON files.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/pdiddy/gpt-convert/pkg/types"
)

// Format is an output file format.
type Format string

const (
	FormatText Format = "txt"
	FormatJSON Format = "json"
)

// jsonIndent matches the four-space indentation of the files this tool has
// always produced.
const jsonIndent = "    "

// Writer serializes documents to disk. Each file is overwritten in full.
type Writer struct {
	log zerolog.Logger
}

// NewWriter creates a Writer.
func NewWriter(log zerolog.Logger) *Writer {
	return &Writer{log: log}
}

// Write writes doc in each of formats, in order, printing a confirmation line
// to status after each file. dir overrides doc.Dir when non-empty. It returns
// the written paths and stops at the first failure.
func (w *Writer) Write(doc *types.Document, dir string, formats []Format, status io.Writer) ([]string, error) {
	if dir == "" {
		dir = doc.Dir
	}
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating output directory %s: %w", dir, err)
		}
	}

	var written []string
	for _, f := range formats {
		path := Path(doc.Stem, dir, f)
		data, err := Encode(doc, f)
		if err != nil {
			return written, err
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return written, fmt.Errorf("writing %s: %w", path, err)
		}
		w.log.Debug().Str("path", path).Int("bytes", len(data)).Msg("wrote output")
		fmt.Fprintln(status, Confirmation(doc.Kind, f, path))
		written = append(written, path)
	}
	return written, nil
}

// Path returns the output path for stem in dir with the extension of f.
// An empty dir yields a path relative to the working directory.
func Path(stem, dir string, f Format) string {
	name := stem + "." + string(f)
	if dir == "" {
		return name
	}
	return filepath.Join(dir, name)
}

// Encode renders doc in format f.
func Encode(doc *types.Document, f Format) ([]byte, error) {
	switch f {
	case FormatText:
		return []byte(doc.Text), nil
	case FormatJSON:
		return EncodeJSON(Record(doc))
	}
	return nil, fmt.Errorf("unsupported output format %q", f)
}

// Record returns the JSON shape for doc: a list of per-page objects for PDF
// documents, otherwise a single-key object wrapping the text.
func Record(doc *types.Document) any {
	switch doc.Kind {
	case types.KindPDF:
		if doc.Pages == nil {
			return []types.Page{}
		}
		return doc.Pages
	case types.KindWeb:
		return map[string]string{"article": doc.Text}
	case types.KindTranscript:
		return map[string]string{"transcript": doc.Text}
	}
	return map[string]string{string(doc.Kind): doc.Text}
}

// EncodeJSON marshals v with four-space indentation, leaving HTML characters
// and non-ASCII text unescaped, and without a trailing newline.
func EncodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", jsonIndent)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("encoding JSON: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Confirmation returns the line printed after a file is written.
func Confirmation(k types.Kind, f Format, path string) string {
	switch k {
	case types.KindPDF:
		if f == FormatText {
			return "Text file saved at: " + path
		}
		return "JSON file saved at: " + path
	case types.KindWeb:
		return fmt.Sprintf("Article saved as %s at: %s", label(f), path)
	case types.KindTranscript:
		return fmt.Sprintf("Transcript saved as %s at: %s", label(f), path)
	}
	return fmt.Sprintf("Saved %s at: %s", label(f), path)
}

func label(f Format) string {
	if f == FormatText {
		return "TXT"
	}
	return "JSON"
}
