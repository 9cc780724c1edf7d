package logging

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Format represents the log output format
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// FileLoggerConfig holds configuration for file logging
type FileLoggerConfig struct {
	// Path is the log file path
	Path string
	// Format is the output format (json or text)
	Format Format
	// Level is the minimum log level
	Level Level
	// MaxSize is the maximum size in bytes before rotation (0 = no rotation)
	MaxSize int64
	// MaxBackups is the maximum number of backup files to keep
	MaxBackups int
}

// FileLogger implements Logger with file output
type FileLogger struct {
	config      FileLoggerConfig
	mu          sync.Mutex
	file        *os.File
	fields      Fields
	currentSize int64
}

// NewFileLogger creates a new file logger, creating the log directory if
// needed and appending to an existing file
func NewFileLogger(config FileLoggerConfig) (*FileLogger, error) {
	if err := os.MkdirAll(filepath.Dir(config.Path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(config.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to stat log file: %w", err)
	}

	return &FileLogger{
		config:      config,
		file:        file,
		currentSize: info.Size(),
	}, nil
}

// Debug logs a debug message
func (l *FileLogger) Debug(ctx context.Context, msg string, fields Fields) {
	l.log(DebugLevel, msg, nil, fields)
}

// Info logs an info message
func (l *FileLogger) Info(ctx context.Context, msg string, fields Fields) {
	l.log(InfoLevel, msg, nil, fields)
}

// Warn logs a warning message
func (l *FileLogger) Warn(ctx context.Context, msg string, fields Fields) {
	l.log(WarnLevel, msg, nil, fields)
}

// Error logs an error message
func (l *FileLogger) Error(ctx context.Context, msg string, err error, fields Fields) {
	l.log(ErrorLevel, msg, err, fields)
}

// WithFields returns a logger with additional bound fields.
// The derived logger shares the underlying file and lock.
func (l *FileLogger) WithFields(fields Fields) Logger {
	return &derivedLogger{parent: l, fields: mergeFields(l.fields, fields)}
}

// Close flushes and closes the logger
func (l *FileLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// log writes a log entry if the level passes the threshold
func (l *FileLogger) log(level Level, msg string, err error, fields Fields) {
	if level < l.config.Level {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.config.MaxSize > 0 && l.currentSize >= l.config.MaxSize {
		l.rotate()
	}

	all := mergeFields(l.fields, fields)

	var line []byte
	if l.config.Format == FormatJSON {
		line = formatJSON(level, msg, err, all)
	} else {
		line = formatText(level, msg, err, all)
	}
	if line == nil {
		return
	}

	n, _ := l.file.Write(line)
	l.currentSize += int64(n)
}

// rotate shifts existing backups up and starts a fresh log file
func (l *FileLogger) rotate() {
	if l.file == nil {
		return
	}
	l.file.Close()

	for i := l.config.MaxBackups - 1; i >= 1; i-- {
		os.Rename(
			fmt.Sprintf("%s.%d", l.config.Path, i),
			fmt.Sprintf("%s.%d", l.config.Path, i+1),
		)
	}
	os.Rename(l.config.Path, l.config.Path+".1")

	if l.config.MaxBackups > 0 {
		os.Remove(fmt.Sprintf("%s.%d", l.config.Path, l.config.MaxBackups+1))
	}

	file, err := os.OpenFile(l.config.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return
	}
	l.file = file
	l.currentSize = 0
}

// derivedLogger is a FileLogger view with extra bound fields
type derivedLogger struct {
	parent *FileLogger
	fields Fields
}

func (d *derivedLogger) Debug(ctx context.Context, msg string, fields Fields) {
	d.parent.log(DebugLevel, msg, nil, mergeFields(d.fields, fields))
}

func (d *derivedLogger) Info(ctx context.Context, msg string, fields Fields) {
	d.parent.log(InfoLevel, msg, nil, mergeFields(d.fields, fields))
}

func (d *derivedLogger) Warn(ctx context.Context, msg string, fields Fields) {
	d.parent.log(WarnLevel, msg, nil, mergeFields(d.fields, fields))
}

func (d *derivedLogger) Error(ctx context.Context, msg string, err error, fields Fields) {
	d.parent.log(ErrorLevel, msg, err, mergeFields(d.fields, fields))
}

func (d *derivedLogger) WithFields(fields Fields) Logger {
	return &derivedLogger{parent: d.parent, fields: mergeFields(d.fields, fields)}
}

func (d *derivedLogger) Close() error {
	return d.parent.Close()
}

// mergeFields combines two field maps, the second taking precedence
func mergeFields(base, extra Fields) Fields {
	if len(base) == 0 && len(extra) == 0 {
		return nil
	}
	merged := make(Fields, len(base)+len(extra))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}
	return merged
}

// formatJSON formats a log entry as one JSON line
func formatJSON(level Level, msg string, err error, fields Fields) []byte {
	entry := map[string]interface{}{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"level":     LevelString(level),
		"message":   msg,
	}
	if err != nil {
		entry["error"] = err.Error()
	}
	for k, v := range fields {
		entry[k] = v
	}

	data, jsonErr := json.Marshal(entry)
	if jsonErr != nil {
		return nil
	}
	return append(data, '\n')
}

// formatText formats a log entry as plain text
func formatText(level Level, msg string, err error, fields Fields) []byte {
	line := fmt.Sprintf("%s [%s] %s",
		time.Now().UTC().Format("2006-01-02T15:04:05.000Z"),
		LevelString(level), msg)

	if err != nil {
		line += fmt.Sprintf(" error=%q", err.Error())
	}
	for k, v := range fields {
		line += fmt.Sprintf(" %s=%v", k, v)
	}

	return []byte(line + "\n")
}
