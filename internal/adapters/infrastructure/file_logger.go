package infrastructure

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"uvdash.app/internal/ports"
)

var logLevelRank = map[string]int{"DEBUG": 0, "INFO": 1, "WARN": 2, "ERROR": 3}

// FileLoggerAdapter appends structured JSON lines to a file. It is used for
// the dedicated provider request log.
type FileLoggerAdapter struct {
	filePath string
	minRank  int
	file     *os.File
	mutex    sync.Mutex
	now      func() time.Time
}

// NewFileLoggerAdapter opens (or creates) the log file; entries below minLevel are dropped
func NewFileLoggerAdapter(logPath, minLevel string) (*FileLoggerAdapter, error) {
	if logPath == "" {
		return nil, fmt.Errorf("log file path cannot be empty")
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	rank, ok := logLevelRank[strings.ToUpper(minLevel)]
	if !ok {
		rank = logLevelRank["DEBUG"]
	}

	return &FileLoggerAdapter{
		filePath: logPath,
		minRank:  rank,
		file:     file,
		now:      time.Now,
	}, nil
}

// Path returns the file being written
func (f *FileLoggerAdapter) Path() string {
	return f.filePath
}

func (f *FileLoggerAdapter) Debug(msg string, fields ...ports.Field) {
	f.writeLogEntry("DEBUG", msg, fields)
}

func (f *FileLoggerAdapter) Info(msg string, fields ...ports.Field) {
	f.writeLogEntry("INFO", msg, fields)
}

func (f *FileLoggerAdapter) Warn(msg string, fields ...ports.Field) {
	f.writeLogEntry("WARN", msg, fields)
}

func (f *FileLoggerAdapter) Error(msg string, fields ...ports.Field) {
	f.writeLogEntry("ERROR", msg, fields)
}

// Close flushes and closes the underlying file
func (f *FileLoggerAdapter) Close() error {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	if f.file == nil {
		return nil
	}
	err := f.file.Close()
	f.file = nil
	return err
}

func (f *FileLoggerAdapter) writeLogEntry(level, msg string, fields []ports.Field) {
	if logLevelRank[level] < f.minRank {
		return
	}

	entry := make(map[string]interface{}, len(fields)+3)
	for _, field := range fields {
		entry[field.Key] = field.Value
	}
	// reserved keys win over fields of the same name
	entry["timestamp"] = f.now().UTC().Format(time.RFC3339Nano)
	entry["level"] = level
	entry["message"] = msg

	line, err := json.Marshal(entry)
	if err != nil {
		line = []byte(fmt.Sprintf(`{"level":"ERROR","message":"failed to marshal log entry: %v"}`, err))
	}

	f.mutex.Lock()
	defer f.mutex.Unlock()

	if f.file == nil {
		return
	}
	if _, err := f.file.Write(append(line, '\n')); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write log entry: %v\n", err)
	}
}
