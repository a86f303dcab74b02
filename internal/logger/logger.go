package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

// Level is the severity of a log message.
type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
	FATAL
)

var levelTags = map[Level]string{
	DEBUG: "DEBUG",
	INFO:  "INFO ",
	WARN:  "WARN ",
	ERROR: "ERROR",
	FATAL: "FATAL",
}

var levelColors = map[Level]string{
	DEBUG: "\033[36m",
	INFO:  "\033[32m",
	WARN:  "\033[33m",
	ERROR: "\033[31m",
	FATAL: "\033[35m",
}

// Logger writes leveled, timestamped messages with caller information.
type Logger struct {
	level     Level
	logger    *log.Logger
	file      *os.File
	useColors bool
}

// ParseLevel maps a level name to a Level, defaulting to INFO.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return DEBUG
	case "info":
		return INFO
	case "warn":
		return WARN
	case "error":
		return ERROR
	case "fatal":
		return FATAL
	}
	return INFO
}

// New creates a console logger at the given level name. Colors are enabled
// only when stdout is a terminal.
func New(level string) *Logger {
	l := &Logger{
		level:     ParseLevel(level),
		logger:    log.New(os.Stdout, "", 0),
		useColors: true,
	}
	if info, _ := os.Stdout.Stat(); info != nil && info.Mode()&os.ModeCharDevice == 0 {
		l.useColors = false
	}
	return l
}

// NewFile creates a logger that appends to the given file, creating parent
// directories as needed. File output is never colored.
func NewFile(level, path string) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	l := New(level)
	l.logger.SetOutput(f)
	l.file = f
	l.useColors = false
	return l, nil
}

// NewMulti creates a logger that writes to both stdout and the given file.
func NewMulti(level, path string) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	l := New(level)
	l.logger.SetOutput(io.MultiWriter(os.Stdout, f))
	l.file = f
	return l, nil
}

func (l *Logger) write(level Level, msg string) {
	if level < l.level {
		return
	}
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		file, line = "unknown", 0
	}
	prefix := fmt.Sprintf("%s [%s] %s:%d:",
		time.Now().Format("2006/01/02 15:04:05"), levelTags[level], filepath.Base(file), line)
	if l.useColors {
		prefix = levelColors[level] + prefix + "\033[0m"
	}
	l.logger.Println(prefix, msg)
	if level == FATAL {
		if l.file != nil {
			l.file.Close()
		}
		os.Exit(1)
	}
}

func (l *Logger) Debug(v ...interface{}) { l.write(DEBUG, fmt.Sprint(v...)) }
func (l *Logger) Info(v ...interface{})  { l.write(INFO, fmt.Sprint(v...)) }
func (l *Logger) Warn(v ...interface{})  { l.write(WARN, fmt.Sprint(v...)) }
func (l *Logger) Error(v ...interface{}) { l.write(ERROR, fmt.Sprint(v...)) }
func (l *Logger) Fatal(v ...interface{}) { l.write(FATAL, fmt.Sprint(v...)) }

func (l *Logger) Debugf(format string, v ...interface{}) { l.write(DEBUG, fmt.Sprintf(format, v...)) }
func (l *Logger) Infof(format string, v ...interface{})  { l.write(INFO, fmt.Sprintf(format, v...)) }
func (l *Logger) Warnf(format string, v ...interface{})  { l.write(WARN, fmt.Sprintf(format, v...)) }
func (l *Logger) Errorf(format string, v ...interface{}) { l.write(ERROR, fmt.Sprintf(format, v...)) }
func (l *Logger) Fatalf(format string, v ...interface{}) { l.write(FATAL, fmt.Sprintf(format, v...)) }

// SetLevel changes the minimum level by name.
func (l *Logger) SetLevel(level string) { l.level = ParseLevel(level) }

// SetOutput redirects log output.
func (l *Logger) SetOutput(w io.Writer) { l.logger.SetOutput(w) }

// Close releases the log file, if any.
func (l *Logger) Close() {
	if l.file != nil {
		l.file.Close()
		l.file = nil
	}
}
