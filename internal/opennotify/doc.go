// Package opennotify is a client for the Open Notify REST API. It performs
// one HTTP GET per call, decodes the JSON body into a generic Document, and
// lifts the fields each endpoint promises into typed, request-scoped values.
// Failures map onto a small taxonomy (ValidationError, TransportError,
// DecodeError, APIError, SchemaError); nothing is retried.
package opennotify
