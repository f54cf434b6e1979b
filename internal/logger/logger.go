// Package logger is the process-wide structured logger. Messages carry the
// name of the calling function and, when present, the session being
// processed.
package logger

import (
	"context"
	"io"
	"os"
	"reflect"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Logger interface {
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Debug(ctx context.Context, msg string, args ...any)
}

// Config selects the level and, optionally, a rotated log file. Without a
// file, logs go to stderr as text.
type Config struct {
	Level      string `json:"level,omitempty" toml:"level,omitempty"`
	File       string `json:"file,omitempty" toml:"file,omitempty"`
	MaxSize    int    `json:"max_size,omitempty" toml:"max_size,omitempty"`       // megabytes, default 100
	MaxBackups int    `json:"max_backups,omitempty" toml:"max_backups,omitempty"` // default 3
	MaxAge     int    `json:"max_age,omitempty" toml:"max_age,omitempty"`         // days, default 7
	Compress   bool   `json:"compress,omitempty" toml:"compress,omitempty"`
}

type logrusLogger struct {
	logger *logrus.Logger
}

var defaultLogger Logger = &logrusLogger{logger: newLogrus(logrus.WarnLevel, os.Stderr, false)}

// Init replaces the default logger. An unparsable level falls back to info.
func Init(cfg Config) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	if cfg.File == "" {
		defaultLogger = &logrusLogger{logger: newLogrus(level, os.Stderr, false)}
		return
	}

	maxSize := cfg.MaxSize
	if maxSize <= 0 {
		maxSize = 100
	}
	maxBackups := cfg.MaxBackups
	if maxBackups <= 0 {
		maxBackups = 3
	}
	maxAge := cfg.MaxAge
	if maxAge <= 0 {
		maxAge = 7
	}
	out := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
		Compress:   cfg.Compress,
	}
	defaultLogger = &logrusLogger{logger: newLogrus(level, out, true)}
}

func newLogrus(level logrus.Level, out io.Writer, json bool) *logrus.Logger {
	log := logrus.New()
	log.SetLevel(level)
	log.SetOutput(out)
	if json {
		log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02 15:04:05"})
	} else {
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
	return log
}

// packagePrefix is this package's import path followed by a dot.
var packagePrefix = func() string {
	name := runtime.FuncForPC(reflect.ValueOf(Init).Pointer()).Name()
	return name[:strings.LastIndex(name, ".")+1]
}()

// wrappers are the functions of this package a message passes through on its
// way to logrus.
var wrappers = map[string]bool{
	"callerName": true, "Warn": true, "Error": true, "Info": true, "Debug": true,
	"(*logrusLogger).Warn": true, "(*logrusLogger).Error": true,
	"(*logrusLogger).Info": true, "(*logrusLogger).Debug": true,
}

// callerName is the name of the first function outside the logging wrappers,
// whichever entry point was used.
func callerName() string {
	pc := make([]uintptr, 8)
	frames := runtime.CallersFrames(pc[:runtime.Callers(1, pc)])
	for {
		frame, more := frames.Next()
		fn := frame.Function
		if !strings.HasPrefix(fn, packagePrefix) || !wrappers[strings.TrimPrefix(fn, packagePrefix)] {
			return fn[strings.LastIndex(fn, ".")+1:]
		}
		if !more {
			return "unknown"
		}
	}
}

func (l *logrusLogger) entry(ctx context.Context) *logrus.Entry {
	entry := l.logger.WithContext(ctx)
	if session := Session(ctx); session != "" {
		entry = entry.WithField("session", session)
	}
	return entry
}

func (l *logrusLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.entry(ctx).Warnf("[%s] "+msg, append([]any{callerName()}, args...)...)
}

func (l *logrusLogger) Error(ctx context.Context, msg string, args ...any) {
	l.entry(ctx).Errorf("[%s] "+msg, append([]any{callerName()}, args...)...)
}

func (l *logrusLogger) Info(ctx context.Context, msg string, args ...any) {
	l.entry(ctx).Infof("[%s] "+msg, append([]any{callerName()}, args...)...)
}

func (l *logrusLogger) Debug(ctx context.Context, msg string, args ...any) {
	l.entry(ctx).Debugf("[%s] "+msg, append([]any{callerName()}, args...)...)
}

func Warn(ctx context.Context, msg string, args ...any) {
	defaultLogger.Warn(ctx, msg, args...)
}

func Error(ctx context.Context, msg string, args ...any) {
	defaultLogger.Error(ctx, msg, args...)
}

func Info(ctx context.Context, msg string, args ...any) {
	defaultLogger.Info(ctx, msg, args...)
}

func Debug(ctx context.Context, msg string, args ...any) {
	defaultLogger.Debug(ctx, msg, args...)
}

func Default() Logger {
	return defaultLogger
}

type contextKey string

const sessionKey contextKey = "session"

// WithSession tags log lines emitted under ctx with the session name.
func WithSession(ctx context.Context, session string) context.Context {
	return context.WithValue(ctx, sessionKey, session)
}

// Session returns the session name stored by WithSession.
func Session(ctx context.Context) string {
	if session, ok := ctx.Value(sessionKey).(string); ok {
		return session
	}
	return ""
}
