package opennotify

import (
	"fmt"
)

// ValidationError reports an out-of-range query input. It is produced before
// any request is built, so a failing input never reaches the network.
type ValidationError struct {
	Field string
	Value float64
	Min   float64
	Max   float64
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s must be a number between %.1f and %.1f, got %v",
		e.Field, e.Min, e.Max, e.Value)
}

// TransportError wraps any failure to obtain a response body: DNS, refused
// connections, timeouts, and non-200 statuses.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError reports a response body that is not well-formed JSON. Line and
// column are derived from the byte offset against the original body.
type DecodeError struct {
	Err    error
	Body   []byte
	Offset int64
	Line   int
	Column int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("malformed JSON response: %v (offset %d, line %d, column %d)",
		e.Err, e.Offset, e.Line, e.Column)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// APIError reports a well-formed response whose message field is not
// "success". Reason carries the upstream explanation verbatim when the API
// provided one; otherwise the raw document and URL identify the failure.
type APIError struct {
	URL      string
	Reason   string
	Document Document
}

func (e *APIError) Error() string {
	if e.Reason != "" {
		return e.Reason
	}
	return fmt.Sprintf("unknown error from %s: %v", e.URL, map[string]any(e.Document))
}

// SchemaError reports a successful response missing a promised field, or
// carrying it with an unexpected type. The whole parsed document is included
// so the mismatch can be diagnosed from the error alone.
type SchemaError struct {
	Field    string
	Document Document
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("response field %q missing or mistyped in %v",
		e.Field, map[string]any(e.Document))
}
