// Package cli builds the issctl command tree. It is responsible for flag
// registration and user-input validation; operations themselves live in the
// app package, and only the process entrypoint decides exit codes.
package cli
