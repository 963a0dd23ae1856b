// Package app wires the issctl application together: logger, configuration
// file, API client, and renderer. It exposes one method per CLI operation,
// each returning an error for the entrypoint to translate into an exit code,
// decoupled from any specific command-line surface.
package app
