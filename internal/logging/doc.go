// Package logging provides concrete implementations of the linuxsim.Logger
// interface.
//
// Available implementations:
//   - ConsoleLogger: writes prefixed lines to an io.Writer (stderr by default)
//   - NullLogger: discards everything
//
// All implementations are safe for concurrent use.
package logging
