package logging

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log output formats. FormatConsole selects ConsoleLogger, the others
// select LogrusLogger.
const (
	FormatConsole = "console"
	FormatText    = "text"
	FormatJSON    = "json"
)

// LogrusLogger adapts a logrus entry to rfconn.Logger.
// Verbose maps to the debug level.
type LogrusLogger struct {
	entry *logrus.Entry
}

// NewLogrusLogger creates a logrus-backed logger writing to out.
//
// format is "json" or anything else for text. An unparseable level falls back
// to info. verbose forces the debug level.
func NewLogrusLogger(out io.Writer, format, level string, verbose bool) *LogrusLogger {
	log := logrus.New()
	log.SetOutput(out)

	if strings.EqualFold(format, FormatJSON) {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		// use text formatter by default
		log.SetFormatter(&logrus.TextFormatter{DisableColors: true})
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	if verbose && lvl < logrus.DebugLevel {
		lvl = logrus.DebugLevel
	}
	log.SetLevel(lvl)

	return &LogrusLogger{entry: logrus.NewEntry(log)}
}

// WithField returns a logger that adds key=value to every entry.
func (l *LogrusLogger) WithField(key string, value interface{}) *LogrusLogger {
	return &LogrusLogger{entry: l.entry.WithField(key, value)}
}

// Verbose logs at debug level.
func (l *LogrusLogger) Verbose(format string, args ...interface{}) {
	l.entry.Debugf(format, args...)
}

// Info logs at info level.
func (l *LogrusLogger) Info(format string, args ...interface{}) {
	l.entry.Infof(format, args...)
}

// Warn logs at warning level.
func (l *LogrusLogger) Warn(format string, args ...interface{}) {
	l.entry.Warnf(format, args...)
}

// Error logs at error level.
func (l *LogrusLogger) Error(format string, args ...interface{}) {
	l.entry.Errorf(format, args...)
}
