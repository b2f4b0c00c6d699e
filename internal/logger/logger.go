// Package logger builds the process logger used by the demo host and handed
// to widget contexts.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
}

// Logger wraps zerolog for the host application.
type Logger struct {
	base zerolog.Logger
}

// New creates a Logger from opts. Level defaults to info, Writer to stderr.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	var output io.Writer = writer
	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.RFC3339
		output = console
	}

	return &Logger{base: zerolog.New(output).Level(level).With().Timestamp().Logger()}, nil
}

// Nop returns a Logger that discards everything.
func Nop() *Logger {
	return &Logger{base: zerolog.Nop()}
}

// Zerolog returns the underlying logger, for headless.WithLogger.
func (l *Logger) Zerolog() zerolog.Logger {
	if l == nil {
		return zerolog.Nop()
	}
	return l.base
}

// Component returns a logger tagged with the component writing through it.
func (l *Logger) Component(name string) *Logger {
	return l.WithFields(map[string]any{"component": name})
}

// WithFields returns a derived logger that always writes the supplied fields.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}
	builder := l.base.With()
	for key, value := range fields {
		builder = builder.Interface(key, value)
	}
	return &Logger{base: builder.Logger()}
}

// Debug logs msg at debug level.
func (l *Logger) Debug(msg string) { l.write(zerolog.DebugLevel, nil, msg) }

// Info logs msg at info level.
func (l *Logger) Info(msg string) { l.write(zerolog.InfoLevel, nil, msg) }

// Warn logs a recoverable failure; err may be nil.
func (l *Logger) Warn(err error, msg string) { l.write(zerolog.WarnLevel, err, msg) }

// Error logs a failure; err may be nil.
func (l *Logger) Error(err error, msg string) { l.write(zerolog.ErrorLevel, err, msg) }

func (l *Logger) write(level zerolog.Level, err error, msg string) {
	if l == nil {
		return
	}
	event := l.base.WithLevel(level)
	if err != nil {
		event = event.Err(err)
	}
	event.Msg(msg)
}
