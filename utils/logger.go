package utils

import (
	"io"
	"log"
	"strings"

	"github.com/pkg/errors"
)

// Level orders log messages by severity
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR"}

// ParseLevel converts a config log level to a Level
func ParseLevel(s string) (Level, error) {
	for i, name := range levelNames {
		if strings.EqualFold(s, name) {
			return Level(i), nil
		}
	}
	return LevelInfo, errors.Errorf("[ParseLevel] unknown log level: %q", s)
}

// Logger writes leveled, prefixed lines. A nil *Logger discards everything.
type Logger struct {
	out   *log.Logger
	level Level
}

// NewLogger creates a logger writing messages at or above level to w
func NewLogger(w io.Writer, level Level) *Logger {
	return &Logger{out: log.New(w, "", log.LstdFlags|log.Lmicroseconds), level: level}
}

func (l *Logger) logf(level Level, format string, args ...any) {
	if l == nil || level < l.level {
		return
	}
	l.out.Printf(levelNames[level]+" "+format, args...)
}

func (l *Logger) Debugf(format string, args ...any) { l.logf(LevelDebug, format, args...) }

func (l *Logger) Infof(format string, args ...any) { l.logf(LevelInfo, format, args...) }

func (l *Logger) Warnf(format string, args ...any) { l.logf(LevelWarn, format, args...) }

func (l *Logger) Errorf(format string, args ...any) { l.logf(LevelError, format, args...) }
