package raster2d

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

// LogLevel selects which Logger calls actually write output.
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
	LogLevelNone
)

// Logger is the package's structured logger: level-gated, writing
// through a standard log.Logger. Used at package boundaries (currently
// only the gradient CTM-freeze no-op in SetSource) — never in the
// scanline hot path.
type Logger struct {
	mu      sync.RWMutex
	level   LogLevel
	logger  *log.Logger
	enabled bool
}

var (
	defaultLogger *Logger
	loggerOnce    sync.Once
)

// GetLogger returns the package default Logger (singleton).
func GetLogger() *Logger {
	loggerOnce.Do(func() {
		defaultLogger = NewLogger(LogLevelWarn, os.Stderr, "[raster2d] ")
	})
	return defaultLogger
}

// NewLogger returns a Logger writing to output at or above level.
func NewLogger(level LogLevel, output io.Writer, prefix string) *Logger {
	return &Logger{
		level:   level,
		logger:  log.New(output, prefix, log.LstdFlags),
		enabled: true,
	}
}

// SetLevel changes the minimum level that reaches output.
func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// SetEnabled toggles the logger on or off entirely.
func (l *Logger) SetEnabled(enabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.enabled = enabled
}

func (l *Logger) Debug(format string, v ...interface{}) { l.log(LogLevelDebug, "DEBUG", format, v...) }
func (l *Logger) Info(format string, v ...interface{})  { l.log(LogLevelInfo, "INFO", format, v...) }
func (l *Logger) Warn(format string, v ...interface{})  { l.log(LogLevelWarn, "WARN", format, v...) }
func (l *Logger) Error(format string, v ...interface{}) { l.log(LogLevelError, "ERROR", format, v...) }

func (l *Logger) log(level LogLevel, levelStr, format string, v ...interface{}) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if !l.enabled || level < l.level {
		return
	}
	l.logger.Printf("[%s] %s", levelStr, fmt.Sprintf(format, v...))
}

// SetLogLevel sets the default Logger's level.
func SetLogLevel(level LogLevel) {
	GetLogger().SetLevel(level)
}

// EnableLogging toggles the default Logger.
func EnableLogging(enabled bool) {
	GetLogger().SetEnabled(enabled)
}
