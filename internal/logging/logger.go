// Package logging provides the leveled logger used across pathprune.
//
// Output keeps the familiar "<timestamp> [LEVEL] message" shape. Console
// lines go to stderr (stdout carries rewritten paths) with colored level
// labels when the palette allows, and an optional log file receives the
// same lines without colors.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/backmassage/pathprune/internal/config"
	"github.com/backmassage/pathprune/internal/term"
)

const timeLayout = "2006-01-02 15:04:05"

// Logger provides leveled, optionally colored logging with optional file sink.
type Logger struct {
	mu   sync.Mutex
	z    *zap.SugaredLogger
	file *os.File
}

// New builds a Logger writing to console (stderr in the CLI) and, if
// cfg.LogFile is set, appending to that file. Colors are resolved against
// console when it is an *os.File. Call Close() when done.
func New(cfg *config.Config, console io.Writer) (*Logger, error) {
	level := zapcore.InfoLevel
	if cfg.Verbose {
		level = zapcore.DebugLevel
	}

	f, _ := console.(*os.File)
	palette := term.NewPalette(cfg.ColorMode, f)

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig(palette)), zapcore.AddSync(console), level),
	}

	l := &Logger{}
	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
		file, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		l.file = file
		plain := term.NewPalette(config.ColorNever, nil)
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig(plain)), zapcore.AddSync(file), level))
	}

	l.z = zap.New(zapcore.NewTee(cores...)).Sugar()
	return l, nil
}

// Nop returns a Logger that discards everything. Handy in tests.
func Nop() *Logger {
	return &Logger{z: zap.NewNop().Sugar()}
}

func encoderConfig(p term.Palette) zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:          "ts",
		LevelKey:         "level",
		MessageKey:       "msg",
		EncodeTime:       zapcore.TimeEncoderOfLayout(timeLayout),
		EncodeLevel:      levelEncoder(p),
		ConsoleSeparator: " ",
	}
}

// levelEncoder renders "[LEVEL]" in the palette color for the level.
func levelEncoder(p term.Palette) zapcore.LevelEncoder {
	return func(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
		label := "[" + l.CapitalString() + "]"
		switch l {
		case zapcore.DebugLevel:
			label = p.Cyan.Render(label)
		case zapcore.InfoLevel:
			label = p.Blue.Render(label)
		case zapcore.WarnLevel:
			label = p.Yellow.Render(label)
		default:
			label = p.Red.Render(label)
		}
		enc.AppendString(label)
	}
}

// Close flushes buffered output and closes the log file if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	_ = l.z.Sync()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

// Info logs at INFO level (blue).
func (l *Logger) Info(format string, args ...interface{}) {
	l.z.Infof(format, args...)
}

// Warn logs at WARN level (yellow).
func (l *Logger) Warn(format string, args ...interface{}) {
	l.z.Warnf(format, args...)
}

// Error logs at ERROR level (red).
func (l *Logger) Error(format string, args ...interface{}) {
	l.z.Errorf(format, args...)
}

// Debug logs at DEBUG level (cyan); dropped unless the config was verbose.
func (l *Logger) Debug(format string, args ...interface{}) {
	l.z.Debugf(format, args...)
}
