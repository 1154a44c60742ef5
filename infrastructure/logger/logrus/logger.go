// ABOUTME: Logger implementation backed by logrus
// ABOUTME: Supports text or JSON output, level filtering and optional rotated file output

package logrus

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures a Logger
type Options struct {
	// Level is a logrus level name (debug, info, warn, error)
	Level string

	// Format is "text" or "json"
	Format string

	// File, when set, receives a copy of every entry with size-based rotation
	File string

	// Output defaults to os.Stderr
	Output io.Writer
}

// Logger implements interfaces.Logger using logrus
type Logger struct {
	logger *logrus.Logger
	file   *lumberjack.Logger
}

// New creates a logger from opts
func New(opts Options) (*Logger, error) {
	level := logrus.InfoLevel
	if opts.Level != "" {
		parsed, err := logrus.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
		level = parsed
	}

	l := logrus.New()
	l.SetLevel(level)

	switch opts.Format {
	case "", "text":
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", opts.Format)
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	logger := &Logger{logger: l}
	if opts.File != "" {
		logger.file = &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    100, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		out = io.MultiWriter(out, logger.file)
	}
	l.SetOutput(out)

	return logger, nil
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.log(logrus.DebugLevel, msg, fields)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.log(logrus.InfoLevel, msg, fields)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.log(logrus.WarnLevel, msg, fields)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.log(logrus.ErrorLevel, msg, fields)
}

// Close releases the rotated log file, if any
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

func (l *Logger) log(level logrus.Level, msg string, fields map[string]interface{}) {
	if len(fields) == 0 {
		l.logger.Log(level, msg)
		return
	}
	l.logger.WithFields(logrus.Fields(fields)).Log(level, msg)
}
