package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failure so callers can branch on it instead of parsing messages
type ErrorKind string

const (
	KindNone              ErrorKind = ""
	KindNotFound          ErrorKind = "not_found"
	KindSchema            ErrorKind = "schema_error"
	KindFetch             ErrorKind = "fetch_error"
	KindParse             ErrorKind = "parse_error"
	KindModel             ErrorKind = "model_error"
	KindTranslation       ErrorKind = "translation_error"
	KindInvalidTransition ErrorKind = "invalid_transition"
)

// Failure is an error carrying a machine-checkable kind and a human-readable message
type Failure struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

// Fail makes a Failure of the given kind, wrapping err when present
func Fail(kind ErrorKind, msg string, err error) *Failure {
	return &Failure{Kind: kind, Msg: msg, Err: err}
}

func (f *Failure) Error() string {
	if f.Err == nil {
		return fmt.Sprintf("%s: %s", f.Kind, f.Msg)
	}
	return fmt.Sprintf("%s: %s: %v", f.Kind, f.Msg, f.Err)
}

func (f *Failure) Unwrap() error { return f.Err }

// KindOf returns the kind of the first Failure in err's chain, KindNone if there is none
func KindOf(err error) ErrorKind {
	var f *Failure
	if errors.As(err, &f) {
		return f.Kind
	}
	return KindNone
}

// FetchResult is the outcome of retrieving a URL and extracting its text.
// Kind is KindNone on success, otherwise KindFetch or KindParse with Err set.
type FetchResult struct {
	URL         string
	ContentType string
	Kind        ErrorKind
	Text        string
	Err         string
}

// OK reports whether the fetch produced text
func (r FetchResult) OK() bool { return r.Kind == KindNone }

// Failure returns the result as an error, nil on success
func (r FetchResult) Failure() error {
	if r.OK() {
		return nil
	}
	return &Failure{Kind: r.Kind, Msg: r.Err}
}

// SummaryResult is the outcome of a model call, markdown text on success
type SummaryResult struct {
	Kind     ErrorKind
	Markdown string
	Err      string
}

// OK reports whether the model returned text
func (r SummaryResult) OK() bool { return r.Kind == KindNone }

// Failure returns the result as an error, nil on success
func (r SummaryResult) Failure() error {
	if r.OK() {
		return nil
	}
	return &Failure{Kind: r.Kind, Msg: r.Err}
}

// SummaryFailed makes an error-tagged summary result
func SummaryFailed(kind ErrorKind, msg string) SummaryResult {
	if msg == "" {
		msg = "unknown error"
	}
	return SummaryResult{Kind: kind, Err: msg}
}
