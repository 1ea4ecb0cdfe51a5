// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package transcript retrieves a video transcript and flattens its segments
// into plain text.
package transcript

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pdiddy/gpt-convert/internal/convert"
	"github.com/pdiddy/gpt-convert/pkg/types"
)

// Provider returns the timed segments of a video's transcript in
// chronological order. languages is an ordered preference list; the first
// language with an available transcript wins.
type Provider interface {
	Transcript(ctx context.Context, videoID string, languages []string) ([]types.Segment, error)
}

// Source is the video transcript variant of convert.Source.
type Source struct {
	provider  Provider
	languages []string
	log       zerolog.Logger
}

// New creates a transcript Source. An empty languages list falls back to
// types.DefaultLanguages.
func New(p Provider, languages []string, log zerolog.Logger) *Source {
	if len(languages) == 0 {
		languages = types.DefaultLanguages
	}
	return &Source{provider: p, languages: languages, log: log}
}

func (s *Source) Kind() types.Kind { return types.KindTranscript }

// Fetch retrieves the transcript for videoID. Every provider failure is
// classified as convert.ErrRemoteService. The output stem is the video ID
// as given.
func (s *Source) Fetch(ctx context.Context, videoID string, w io.Writer) (*types.Document, error) {
	fmt.Fprintf(w, "Attempting to retrieve the transcript for video ID: %s...\n", videoID)
	segs, err := s.provider.Transcript(ctx, videoID, s.languages)
	if err != nil {
		return nil, convert.Classify(convert.ErrRemoteService, "fetch", err)
	}
	fmt.Fprintln(w, "Transcript successfully retrieved.")
	s.log.Debug().Str("video", videoID).Int("segments", len(segs)).Msg("transcript retrieved")

	return &types.Document{
		Kind:     types.KindTranscript,
		Stem:     videoID,
		Text:     Join(segs),
		Segments: segs,
	}, nil
}

// Join concatenates segment texts in order, separated by single spaces.
func Join(segs []types.Segment) string {
	texts := make([]string, len(segs))
	for i, s := range segs {
		texts[i] = s.Text
	}
	return strings.Join(texts, " ")
}
