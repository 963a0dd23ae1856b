// Package config loads the optional issctl configuration file. The file is
// HCL; expressions are evaluated against an `env` variable exposing the
// process environment, so endpoints can be templated per deployment.
// Anything the file does not set falls back to built-in defaults, and
// command-line flags override file values.
package config
