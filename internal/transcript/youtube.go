// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transcript

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/kkdai/youtube/v2"

	"github.com/pdiddy/gpt-convert/pkg/types"
)

// YouTubeProvider fetches transcripts from YouTube.
type YouTubeProvider struct {
	client *youtube.Client
}

// NewYouTubeProvider creates a provider. A nil httpClient uses the library
// default.
func NewYouTubeProvider(httpClient *http.Client) *YouTubeProvider {
	return &YouTubeProvider{client: &youtube.Client{HTTPClient: httpClient}}
}

// Transcript tries each language in order and returns the first transcript
// found. A language without a transcript is reported by the library the same
// way as disabled transcripts, so every language is tried before giving up.
func (p *YouTubeProvider) Transcript(ctx context.Context, videoID string, languages []string) ([]types.Segment, error) {
	if len(languages) == 0 {
		return nil, errors.New("no transcript languages requested")
	}
	id, err := youtube.ExtractVideoID(videoID)
	if err != nil {
		return nil, fmt.Errorf("video %s: %w", videoID, err)
	}
	video := &youtube.Video{ID: id}

	var errs []error
	for _, lang := range languages {
		vt, err := p.client.GetTranscriptCtx(ctx, video, lang)
		if err == nil {
			segs := make([]types.Segment, len(vt))
			for i, s := range vt {
				segs[i] = types.Segment{Text: s.Text, StartMs: s.StartMs, DurationMs: s.Duration}
			}
			return segs, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		errs = append(errs, fmt.Errorf("%s: %w", lang, err))
	}
	return nil, fmt.Errorf("no transcript for video %s in languages %v: %w", videoID, languages, errors.Join(errs...))
}
