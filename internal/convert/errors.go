// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"errors"
	"fmt"

	"github.com/pdiddy/gpt-convert/pkg/types"
)

// Failure kinds. Every error a Source or the output writer returns is
// classified with one of these, so errors.Is(err, ErrNetwork) works on the
// wrapped value.
var (
	ErrInputNotFound = errors.New("input not found")
	ErrParse         = errors.New("parse failure")
	ErrNetwork       = errors.New("network failure")
	ErrRemoteService = errors.New("remote service failure")
	ErrLocalIO       = errors.New("local I/O failure")
	ErrUsage         = errors.New("invalid usage")
)

// Error is a classified conversion failure.
type Error struct {
	// Kind is one of the Err* sentinels above.
	Kind error

	// Source is the variant the failure happened in. The Runner fills it in
	// when the producer left it empty.
	Source types.Kind

	// Op names the failed step: "open", "fetch", "extract", "write".
	Op string

	Err error
}

// Error returns the underlying error text. The generic, user-facing line is
// produced by Diagnostic.
func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.Error()
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// Classify wraps err as an *Error of the given kind. A nil err yields nil; an
// err that is already classified is returned unchanged.
func Classify(kind error, op string, err error) error {
	if err == nil {
		return nil
	}
	var ce *Error
	if errors.As(err, &ce) {
		return err
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// Usage returns an ErrUsage error whose text is shown to the user verbatim.
func Usage(format string, args ...any) error {
	return &Error{Kind: ErrUsage, Op: "validate", Err: fmt.Errorf(format, args...)}
}

// Diagnostic renders err as the lines printed before exiting with status 1:
// a generic message for the failure kind, then the underlying error text.
// Usage errors and unclassified errors render as a single line.
func Diagnostic(err error) []string {
	if err == nil {
		return nil
	}
	var ce *Error
	if !errors.As(err, &ce) {
		return []string{"Error: " + err.Error()}
	}
	if errors.Is(ce.Kind, ErrUsage) {
		return []string{"Error: " + ce.Error()}
	}
	return []string{genericMessage(ce), ce.Error()}
}

func genericMessage(e *Error) string {
	switch {
	case errors.Is(e.Kind, ErrInputNotFound), errors.Is(e.Kind, ErrParse):
		if e.Source == types.KindWeb {
			return "Error: Unable to parse web article."
		}
		return "Error: Unable to open PDF document."
	case errors.Is(e.Kind, ErrNetwork):
		return "Error: Unable to download web article."
	case errors.Is(e.Kind, ErrRemoteService):
		return "Error: Unable to retrieve YouTube transcript."
	case errors.Is(e.Kind, ErrLocalIO):
		noun := e.Source.Noun()
		if noun == "" {
			noun = "output"
		}
		return fmt.Sprintf("Error: Unable to save %s.", noun)
	}
	return "Error: Conversion failed."
}
