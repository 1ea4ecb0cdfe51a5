// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/gpt-convert/pkg/types"
)

func TestClassify(t *testing.T) {
	assert.NoError(t, Classify(ErrNetwork, "fetch", nil))

	base := errors.New("dial tcp: connection refused")
	err := Classify(ErrNetwork, "fetch", base)
	assert.ErrorIs(t, err, ErrNetwork)
	assert.ErrorIs(t, err, base)
	assert.Equal(t, base.Error(), err.Error())

	// Already classified errors keep their kind, even when wrapped.
	wrapped := fmt.Errorf("outer: %w", err)
	again := Classify(ErrLocalIO, "write", wrapped)
	assert.ErrorIs(t, again, ErrNetwork)
	assert.NotErrorIs(t, again, ErrLocalIO)
}

func TestDiagnostic(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []string
	}{
		{
			name: "usage",
			err:  Usage("At least one of --to_text or --to_json must be specified."),
			want: []string{"Error: At least one of --to_text or --to_json must be specified."},
		},
		{
			name: "network",
			err:  &Error{Kind: ErrNetwork, Source: types.KindWeb, Err: errors.New("404 Not Found for url: http://x")},
			want: []string{"Error: Unable to download web article.", "404 Not Found for url: http://x"},
		},
		{
			name: "remote",
			err:  &Error{Kind: ErrRemoteService, Source: types.KindTranscript, Err: errors.New("transcripts disabled")},
			want: []string{"Error: Unable to retrieve YouTube transcript.", "transcripts disabled"},
		},
		{
			name: "pdf missing",
			err:  &Error{Kind: ErrInputNotFound, Source: types.KindPDF, Err: errors.New("open x.pdf: no such file or directory")},
			want: []string{"Error: Unable to open PDF document.", "open x.pdf: no such file or directory"},
		},
		{
			name: "web write",
			err:  &Error{Kind: ErrLocalIO, Source: types.KindWeb, Err: errors.New("permission denied")},
			want: []string{"Error: Unable to save article.", "permission denied"},
		},
		{
			name: "unclassified",
			err:  errors.New("accepts 1 arg(s), received 0"),
			want: []string{"Error: accepts 1 arg(s), received 0"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Diagnostic(tt.err))
		})
	}
	assert.Nil(t, Diagnostic(nil))
}
