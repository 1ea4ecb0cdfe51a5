// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdfdoc extracts per-page text from a local PDF file.
package pdfdoc

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/rs/zerolog"

	"github.com/pdiddy/gpt-convert/internal/convert"
	"github.com/pdiddy/gpt-convert/pkg/types"
)

// Source is the local PDF variant of convert.Source. Outputs are written
// alongside the input file.
type Source struct {
	log zerolog.Logger
}

// New creates a PDF Source.
func New(log zerolog.Logger) *Source {
	return &Source{log: log}
}

func (s *Source) Kind() types.Kind { return types.KindPDF }

// Fetch opens the PDF at path and extracts every page in one pass. The
// document text is the page texts concatenated in page order with nothing
// inserted between them.
func (s *Source) Fetch(_ context.Context, path string, _ io.Writer) (*types.Document, error) {
	pages, err := s.ReadPages(path)
	if err != nil {
		return nil, err
	}

	var text strings.Builder
	for _, p := range pages {
		text.WriteString(p.Text)
	}

	stem, dir := Stem(path)
	return &types.Document{
		Kind:  types.KindPDF,
		Stem:  stem,
		Dir:   dir,
		Text:  text.String(),
		Pages: pages,
	}, nil
}

// ReadPages returns the text of every page in ascending page order. Pages
// without extractable text are kept with empty text.
func (s *Source) ReadPages(path string) ([]types.Page, error) {
	f, err := os.Open(path)
	if err != nil {
		// *fs.PathError already names the path.
		return nil, convert.Classify(convert.ErrInputNotFound, "open", err)
	}
	defer f.Close()

	ctx, err := api.ReadValidateAndOptimize(f, model.NewDefaultConfiguration())
	if err != nil {
		return nil, convert.Classify(convert.ErrParse, "open", fmt.Errorf("reading PDF %s: %w", path, err))
	}

	fonts, err := openFontReader(f)
	if err != nil {
		s.log.Debug().Err(err).Str("path", path).Msg("font encodings unavailable")
	}

	pages := make([]types.Page, 0, ctx.PageCount)
	for nr := 1; nr <= ctx.PageCount; nr++ {
		pages = append(pages, types.Page{Number: nr, Text: s.pageText(ctx, nr, fonts.page(nr))})
	}
	s.log.Debug().Str("path", path).Int("pages", len(pages)).Msg("read PDF")
	return pages, nil
}

func (s *Source) pageText(ctx *model.Context, nr int, res Resources) string {
	r, err := pdfcpu.ExtractPageContent(ctx, nr)
	if err != nil {
		s.log.Debug().Err(err).Int("page", nr).Msg("no page content")
		return ""
	}
	if r == nil {
		return ""
	}
	data, err := io.ReadAll(r)
	if err != nil {
		s.log.Debug().Err(err).Int("page", nr).Msg("reading page content")
		return ""
	}
	return ContentText(data, res)
}

// Stem splits a PDF path into the output stem (base name without extension)
// and the directory holding it. Leading dots never start an extension, so
// ".pdf" keeps its whole name.
func Stem(path string) (stem, dir string) {
	base := filepath.Base(path)
	ext := filepath.Ext(strings.TrimLeft(base, "."))
	return base[:len(base)-len(ext)], filepath.Dir(path)
}
