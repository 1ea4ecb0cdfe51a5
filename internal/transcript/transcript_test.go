// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transcript

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/kkdai/youtube/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/gpt-convert/internal/convert"
	"github.com/pdiddy/gpt-convert/pkg/types"
)

// fakeProvider serves transcripts keyed by language and records the
// language list it was asked for.
type fakeProvider struct {
	byLang   map[string][]types.Segment
	err      error
	gotLangs []string
}

func (f *fakeProvider) Transcript(_ context.Context, _ string, languages []string) ([]types.Segment, error) {
	f.gotLangs = languages
	if f.err != nil {
		return nil, f.err
	}
	for _, l := range languages {
		if segs, ok := f.byLang[l]; ok {
			return segs, nil
		}
	}
	return nil, errors.New("no transcript in requested languages")
}

func TestSource_Fetch(t *testing.T) {
	p := &fakeProvider{byLang: map[string][]types.Segment{
		"en": {{Text: "Hello", StartMs: 0}, {Text: "world", StartMs: 1200}},
	}}
	src := New(p, nil, zerolog.Nop())
	assert.Equal(t, types.KindTranscript, src.Kind())

	var out bytes.Buffer
	doc, err := src.Fetch(context.Background(), "abc123", &out)
	require.NoError(t, err)

	assert.Equal(t, "Hello world", doc.Text)
	assert.Equal(t, "abc123", doc.Stem)
	assert.Empty(t, doc.Dir)
	assert.Len(t, doc.Segments, 2)
	assert.Equal(t, types.DefaultLanguages, p.gotLangs)
	assert.Equal(t,
		"Attempting to retrieve the transcript for video ID: abc123...\nTranscript successfully retrieved.\n",
		out.String())
}

func TestSource_LanguagePreference(t *testing.T) {
	p := &fakeProvider{byLang: map[string][]types.Segment{
		"de": {{Text: "Hallo"}},
		"fr": {{Text: "Bonjour"}},
	}}
	src := New(p, []string{"en", "de", "fr"}, zerolog.Nop())

	doc, err := src.Fetch(context.Background(), "vid", &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "Hallo", doc.Text)
}

func TestSource_FetchFailure(t *testing.T) {
	src := New(&fakeProvider{err: errors.New("transcript is disabled on this video")}, nil, zerolog.Nop())

	var out bytes.Buffer
	_, err := src.Fetch(context.Background(), "abc123", &out)
	require.Error(t, err)

	assert.ErrorIs(t, err, convert.ErrRemoteService)
	assert.Equal(t, "transcript is disabled on this video", err.Error())
	assert.NotContains(t, out.String(), "successfully")
}

func TestJoin(t *testing.T) {
	tests := []struct {
		name string
		segs []types.Segment
		want string
	}{
		{"empty", nil, ""},
		{"single", []types.Segment{{Text: "only"}}, "only"},
		{"ordered", []types.Segment{{Text: "a"}, {Text: "b"}, {Text: "c"}}, "a b c"},
		{"inner newlines kept", []types.Segment{{Text: "line\nbreak"}, {Text: "next"}}, "line\nbreak next"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Join(tt.segs))
		})
	}
}

func TestJoin_MatchesSpaceSeparatedTexts(t *testing.T) {
	segs := make([]types.Segment, 0, 50)
	texts := make([]string, 0, 50)
	for i := 0; i < 50; i++ {
		s := strings.Repeat("w", i%7+1)
		segs = append(segs, types.Segment{Text: s, StartMs: i * 1000})
		texts = append(texts, s)
	}
	assert.Equal(t, strings.Join(texts, " "), Join(segs))
}

func TestYouTubeProvider_NoLanguages(t *testing.T) {
	_, err := NewYouTubeProvider(nil).Transcript(context.Background(), "abc123", nil)
	assert.Error(t, err)
}

// innertubeTransport answers YouTube API calls from a list of canned
// get_transcript bodies, one per call, and records every request path.
type innertubeTransport struct {
	bodies []string
	status int
	paths  []string
	calls  int
}

func (tr *innertubeTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	tr.paths = append(tr.paths, req.URL.Path)
	body := "{}"
	if strings.HasSuffix(req.URL.Path, "/get_transcript") {
		if tr.calls < len(tr.bodies) {
			body = tr.bodies[tr.calls]
		}
		tr.calls++
	}
	status := tr.status
	if status == 0 {
		status = http.StatusOK
	}
	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
		Request:    req,
	}, nil
}

// transcriptBody renders a get_transcript response carrying texts as
// consecutive one-second segments.
func transcriptBody(texts ...string) string {
	segs := make([]string, len(texts))
	for i, text := range texts {
		segs[i] = fmt.Sprintf(`{"transcriptSegmentRenderer":{"startMs":"%d","endMs":"%d","snippet":{"elementsAttributedString":{"content":%q}}}}`,
			i*1000, (i+1)*1000, text)
	}
	return `{"actions":[{"elementsCommand":{"transformEntityCommand":{"arguments":{"transformTranscriptSegmentListArguments":{"overwrite":{"initialSegments":[` +
		strings.Join(segs, ",") + `]}}}}}}]}`
}

func TestYouTubeProvider_Transcript(t *testing.T) {
	tests := []struct {
		name      string
		bodies    []string
		status    int
		langs     []string
		wantCalls int
		wantTexts []string
		wantErr   error
	}{
		{
			name:      "first language wins",
			bodies:    []string{transcriptBody("Hello", "world")},
			langs:     []string{"en", "en-US", "de"},
			wantCalls: 1,
			wantTexts: []string{"Hello", "world"},
		},
		{
			name:      "falls through to a later language",
			bodies:    []string{"{}", "{}", transcriptBody("Hallo")},
			langs:     []string{"en", "en-US", "de"},
			wantCalls: 3,
			wantTexts: []string{"Hallo"},
		},
		{
			name:      "no language has a transcript",
			bodies:    []string{"{}", "{}"},
			langs:     []string{"en", "de"},
			wantCalls: 2,
			wantErr:   youtube.ErrTranscriptDisabled,
		},
		{
			name:      "server errors are tried per language",
			status:    http.StatusInternalServerError,
			langs:     []string{"en", "de"},
			wantCalls: 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := &innertubeTransport{bodies: tt.bodies, status: tt.status}
			p := NewYouTubeProvider(&http.Client{Transport: tr})

			segs, err := p.Transcript(context.Background(), "abcdefghijk", tt.langs)
			assert.Equal(t, tt.wantCalls, tr.calls)
			for _, path := range tr.paths {
				assert.True(t, strings.HasSuffix(path, "/get_transcript"), "unexpected request to %s", path)
			}

			if tt.wantTexts == nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "abcdefghijk")
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				}
				return
			}
			require.NoError(t, err)
			texts := make([]string, len(segs))
			for i, s := range segs {
				texts[i] = s.Text
			}
			assert.Equal(t, tt.wantTexts, texts)
			assert.Equal(t, 1000, segs[0].DurationMs)
		})
	}
}

func TestYouTubeProvider_WatchURL(t *testing.T) {
	tr := &innertubeTransport{bodies: []string{transcriptBody("from a link")}}
	p := NewYouTubeProvider(&http.Client{Transport: tr})

	segs, err := p.Transcript(context.Background(), "https://www.youtube.com/watch?v=abcdefghijk", []string{"en"})
	require.NoError(t, err)
	require.Len(t, segs, 1)
	assert.Equal(t, "from a link", segs[0].Text)
}

func TestYouTubeProvider_InvalidVideoID(t *testing.T) {
	tr := &innertubeTransport{}
	p := NewYouTubeProvider(&http.Client{Transport: tr})

	_, err := p.Transcript(context.Background(), "short", []string{"en"})
	require.Error(t, err)
	assert.ErrorIs(t, err, youtube.ErrVideoIDMinLength)
	assert.Zero(t, tr.calls)
}
