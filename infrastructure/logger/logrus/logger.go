// ABOUTME: Logrus-backed implementation of the core Logger interface
// ABOUTME: Structured JSON logs in production, colored text when attached to a TTY

package logrus

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger implements the core Logger interface using logrus.
type Logger struct {
	log *logrus.Logger
}

// NewLogger creates a logrus logger. level accepts the usual names
// ("debug", "info", "warn", "error"); anything else falls back to info.
// jsonFormat switches to the JSON formatter for log aggregation.
func NewLogger(level string, jsonFormat bool) *Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)

	if jsonFormat {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return &Logger{log: log}
}

// Debug logs a debug message with structured fields.
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Debug(msg)
}

// Info logs an info message with structured fields.
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Info(msg)
}

// Warn logs a warning message with structured fields.
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Warn(msg)
}

// Error logs an error message with structured fields.
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Error(msg)
}
