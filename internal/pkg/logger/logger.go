package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Fields map[string]interface{}

type LogConfig struct {
	Level  string
	Format string // "json" or "text"
	Output string // "stdout", "stderr", or a file path (rotated)
}

type Logger struct {
	entry *logrus.Entry
}

func New(config LogConfig) (*Logger, error) {
	base := logrus.New()

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", config.Level, err)
	}
	base.SetLevel(level)

	switch config.Format {
	case "text":
		base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		base.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	}

	var output io.Writer
	switch config.Output {
	case "", "stdout":
		output = os.Stdout
	case "stderr":
		output = os.Stderr
	default:
		output = &lumberjack.Logger{
			Filename:   config.Output,
			MaxSize:    50, // megabytes
			MaxBackups: 5,
			MaxAge:     14, // days
			Compress:   true,
		}
	}
	base.SetOutput(output)

	return &Logger{entry: logrus.NewEntry(base)}, nil
}

func (l *Logger) WithFields(fields Fields) *Logger {
	return &Logger{entry: l.entry.WithFields(logrus.Fields(fields))}
}

func (l *Logger) WithError(err error) *Logger {
	return &Logger{entry: l.entry.WithError(err)}
}

func (l *Logger) Debug(msg string, keyvals ...interface{}) {
	l.entry.WithFields(fieldsFromKeyvals(keyvals)).Debug(msg)
}

func (l *Logger) Info(msg string, keyvals ...interface{}) {
	l.entry.WithFields(fieldsFromKeyvals(keyvals)).Info(msg)
}

func (l *Logger) Warn(msg string, keyvals ...interface{}) {
	l.entry.WithFields(fieldsFromKeyvals(keyvals)).Warn(msg)
}

func (l *Logger) Error(msg string, keyvals ...interface{}) {
	l.entry.WithFields(fieldsFromKeyvals(keyvals)).Error(msg)
}

// LogService records one service operation with its duration and outcome.
func (l *Logger) LogService(service, operation string, duration time.Duration, fields map[string]interface{}, err error) {
	entry := l.entry.WithFields(logrus.Fields{
		"service":     service,
		"operation":   operation,
		"duration_ms": duration.Milliseconds(),
	})
	for k, v := range fields {
		entry = entry.WithField(k, v)
	}

	if err != nil {
		entry.WithError(err).Error("service operation failed")
		return
	}
	entry.Info("service operation completed")
}

// LogBatch records the outcome of a corpus run.
func (l *Logger) LogBatch(total, analyzed, skipped, failed int, duration time.Duration) {
	l.entry.WithFields(logrus.Fields{
		"total":       total,
		"analyzed":    analyzed,
		"skipped":     skipped,
		"failed":      failed,
		"duration_ms": duration.Milliseconds(),
	}).Info("batch analysis completed")
}

func fieldsFromKeyvals(keyvals []interface{}) logrus.Fields {
	fields := logrus.Fields{}
	for i := 0; i+1 < len(keyvals); i += 2 {
		key, ok := keyvals[i].(string)
		if !ok {
			key = fmt.Sprintf("%v", keyvals[i])
		}
		fields[key] = keyvals[i+1]
	}
	return fields
}
