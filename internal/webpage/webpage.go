// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package webpage downloads a web article and extracts its title and text.
package webpage

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/pdiddy/gpt-convert/internal/convert"
	"github.com/pdiddy/gpt-convert/internal/httputil"
	"github.com/pdiddy/gpt-convert/pkg/types"
)

// Source is the web article variant of convert.Source.
type Source struct {
	getter *httputil.Getter
	log    zerolog.Logger
}

// New creates a web Source. The client is used as given: no timeout is
// added when cfg.Timeout is zero.
func New(client *http.Client, cfg types.HTTPConfig, log zerolog.Logger) *Source {
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	return &Source{
		getter: &httputil.Getter{
			Client:     client,
			UserAgent:  cfg.UserAgent,
			MaxRetries: cfg.MaxRetries,
		},
		log: log,
	}
}

func (s *Source) Kind() types.Kind { return types.KindWeb }

// Fetch downloads url and extracts the article. Any download failure,
// including an HTTP error status, is classified as convert.ErrNetwork.
func (s *Source) Fetch(ctx context.Context, url string, w io.Writer) (*types.Document, error) {
	fmt.Fprintf(w, "Attempting to download the web article from URL: %s...\n", url)
	body, err := s.getter.Get(ctx, url)
	if err != nil {
		return nil, convert.Classify(convert.ErrNetwork, "fetch", err)
	}
	fmt.Fprintln(w, "Web article successfully downloaded.")
	s.log.Debug().Str("url", url).Int("bytes", len(body)).Msg("downloaded")

	art, err := Extract(body)
	if err != nil {
		return nil, convert.Classify(convert.ErrParse, "extract", err)
	}

	return &types.Document{
		Kind:  types.KindWeb,
		Stem:  Stem(art.Title),
		Title: art.Title,
		Text:  art.Text,
	}, nil
}
