// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It claims
// its own options from the argument line and forwards everything else to the
// application as build arguments.
package cli
