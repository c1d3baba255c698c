// Package logging provides concrete implementations of the rfconn.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: plain prefixed lines on stderr (or any io.Writer)
//   - LogrusLogger: structured text or JSON output through logrus
//   - NullLogger: Discards all messages (useful for testing)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
