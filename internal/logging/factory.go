package logging

import (
	"io"
	"strings"

	"github.com/vvka-141/rfconn/pkg/rfconn"
)

// New returns the logger for format: a ConsoleLogger for "console" or an
// empty format, otherwise a LogrusLogger.
func New(out io.Writer, format, level string, verbose bool) rfconn.Logger {
	if format == "" || strings.EqualFold(format, FormatConsole) {
		return NewConsoleLoggerTo(out, verbose)
	}
	return NewLogrusLogger(out, format, level, verbose)
}
