package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Logger provides structured debug logging for gateway components.
// All components of one process share a session-specific file in
// ~/.joplin-mcp/logs/, so a single tool-call trace reads top to bottom.
//
// The gateway speaks MCP over stdout when running on the stdio
// transport, so nothing here may ever write to stdout. File logging is
// the default; stderr is the fallback when the log file cannot be
// opened.
type Logger struct {
	sessionID string
	component string
	file      *os.File
	logger    *log.Logger
	logPath   string
	mu        sync.Mutex
	closeOnce sync.Once
}

var (
	// sessionID identifies one gateway process across all components.
	sessionID     string
	sessionIDOnce sync.Once

	logDir     string
	logDirOnce sync.Once
	logDirErr  error
)

func currentSessionID() string {
	sessionIDOnce.Do(func() {
		sessionID = uuid.New().String()
	})
	return sessionID
}

func ensureLogDir() error {
	logDirOnce.Do(func() {
		home, err := os.UserHomeDir()
		if err != nil {
			logDirErr = fmt.Errorf("failed to get home directory: %w", err)
			return
		}

		logDir = filepath.Join(home, ".joplin-mcp", "logs")
		if err := os.MkdirAll(logDir, 0750); err != nil {
			logDirErr = fmt.Errorf("failed to create log directory: %w", err)
		}
	})
	return logDirErr
}

// NewLogger creates a logger for a named component. The returned logger
// appends to ~/.joplin-mcp/logs/<session>-joplin-mcp.log; every
// component created in this process shares that file.
//
// When the directory or file cannot be prepared, a stderr logger is
// returned together with the error so callers can note degraded mode
// and keep going.
func NewLogger(component string) (*Logger, error) {
	if err := ensureLogDir(); err != nil {
		return newStderrLogger(component, err), err
	}

	sessID := currentSessionID()
	logPath := filepath.Join(logDir, fmt.Sprintf("%s-joplin-mcp.log", sessID))

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		err = fmt.Errorf("failed to open log file: %w", err)
		return newStderrLogger(component, err), err
	}

	return &Logger{
		sessionID: sessID,
		component: component,
		file:      file,
		logger:    log.New(file, "", 0), // timestamps are formatted below
		logPath:   logPath,
	}, nil
}

func newStderrLogger(component string, cause error) *Logger {
	l := &Logger{
		sessionID: currentSessionID(),
		component: component,
		logger:    log.New(os.Stderr, "", 0),
	}
	l.log("WARN", "file logging unavailable (%v), writing to stderr", cause)
	return l
}

func (l *Logger) log(level, format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ts := time.Now().Format("2006-01-02 15:04:05.000")
	l.logger.Printf("[%s] [%s] [%s] %s", ts, l.component, level, fmt.Sprintf(format, v...))
}

// Debugf logs a debug-level message.
func (l *Logger) Debugf(format string, v ...interface{}) { l.log("DEBUG", format, v...) }

// Infof logs an info-level message.
func (l *Logger) Infof(format string, v ...interface{}) { l.log("INFO", format, v...) }

// Warnf logs a warning-level message.
func (l *Logger) Warnf(format string, v ...interface{}) { l.log("WARN", format, v...) }

// Errorf logs an error-level message.
func (l *Logger) Errorf(format string, v ...interface{}) { l.log("ERROR", format, v...) }

// Writer returns the destination this logger writes to. Used to point
// third-party error loggers (e.g. the MCP stdio server's) at the same
// session file.
func (l *Logger) Writer() io.Writer {
	if l.file != nil {
		return l.file
	}
	return os.Stderr
}

// SessionID returns the process-wide session ID.
func (l *Logger) SessionID() string {
	return l.sessionID
}

// LogPath returns the path of the session log file, or "" in stderr
// fallback mode.
func (l *Logger) LogPath() string {
	return l.logPath
}

// Close closes the log file. Safe to call multiple times.
func (l *Logger) Close() error {
	var err error
	l.closeOnce.Do(func() {
		if l.file != nil {
			err = l.file.Close()
		}
	})
	return err
}
