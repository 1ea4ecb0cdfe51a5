// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package webpage

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/gpt-convert/internal/convert"
	"github.com/pdiddy/gpt-convert/pkg/types"
)

func TestSource_Fetch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(`<html><head><title>My Post</title></head><body><p>Hello, web.</p></body></html>`))
	}))
	defer ts.Close()

	src := New(ts.Client(), types.HTTPConfig{}, zerolog.Nop())
	assert.Equal(t, types.KindWeb, src.Kind())

	var out bytes.Buffer
	doc, err := src.Fetch(context.Background(), ts.URL, &out)
	require.NoError(t, err)

	assert.Equal(t, types.KindWeb, doc.Kind)
	assert.Equal(t, "My_Post", doc.Stem)
	assert.Equal(t, "My Post", doc.Title)
	assert.Equal(t, "My Post Hello, web.", doc.Text)
	assert.Empty(t, doc.Dir)
	assert.Equal(t,
		"Attempting to download the web article from URL: "+ts.URL+"...\nWeb article successfully downloaded.\n",
		out.String())
}

func TestSource_FetchHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer ts.Close()

	src := New(ts.Client(), types.HTTPConfig{}, zerolog.Nop())
	var out bytes.Buffer
	_, err := src.Fetch(context.Background(), ts.URL, &out)
	require.Error(t, err)

	assert.ErrorIs(t, err, convert.ErrNetwork)
	assert.Contains(t, err.Error(), "404")
	assert.NotContains(t, out.String(), "successfully")
}

func TestSource_FetchConnectionError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	url := ts.URL
	ts.Close()

	src := New(nil, types.HTTPConfig{}, zerolog.Nop())
	_, err := src.Fetch(context.Background(), url, &bytes.Buffer{})
	assert.ErrorIs(t, err, convert.ErrNetwork)
}

func TestSource_UserAgent(t *testing.T) {
	var ua string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ua = r.Header.Get("User-Agent")
		w.Write([]byte("<p>x</p>"))
	}))
	defer ts.Close()

	src := New(ts.Client(), types.HTTPConfig{UserAgent: "gpt-convert/1.0"}, zerolog.Nop())
	_, err := src.Fetch(context.Background(), ts.URL, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "gpt-convert/1.0", ua)
}
