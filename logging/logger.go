// Package logging builds the structured loggers used by WTFIX binaries.
//
// Loggers are plain log/slog loggers with a "module" attribute. Output goes to stderr
// or, when a file is configured, to a size rotated file managed by lumberjack:
//
//	logger := logging.New(logging.Config{Level: "debug", Format: "text", Module: "fixdump"})
//	defer logger.Close()
//	codec, err := wire.NewCodec(wire.WithLogger(logger.Logger))
//
// The core packages never log on their own; they accept a *slog.Logger where
// reporting is useful.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Config describes a logger.
type Config struct {
	// Level is one of debug, info, warn or error. Unknown values mean info.
	Level string `mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`
	// Format is json or text. The default is json.
	Format string `mapstructure:"format" validate:"omitempty,oneof=json text"`
	// Module is attached to every record.
	Module string `mapstructure:"module"`
	// File enables rotated file output instead of stderr.
	File string `mapstructure:"file"`
	// MaxSize is the size in megabytes at which the file is rotated.
	MaxSize int `mapstructure:"max_size" validate:"min=0"`
	// MaxBackups is the number of rotated files kept.
	MaxBackups int `mapstructure:"max_backups" validate:"min=0"`
	// MaxAge is the number of days rotated files are kept.
	MaxAge int `mapstructure:"max_age" validate:"min=0"`
	// Compress gzips rotated files.
	Compress bool `mapstructure:"compress"`
}

// Logger is a slog.Logger whose level can change at runtime.
type Logger struct {
	*slog.Logger

	Module string

	level  *slog.LevelVar
	closer io.Closer
}

// New creates a logger from cfg.
func New(cfg Config) *Logger {
	if cfg.File == "" {
		return NewWithWriter(cfg, os.Stderr)
	}

	file := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}
	l := NewWithWriter(cfg, file)
	l.closer = file

	return l
}

// NewWithWriter creates a logger writing to w. cfg.File is ignored.
func NewWithWriter(cfg Config, w io.Writer) *Logger {
	level := new(slog.LevelVar)
	level.Set(ParseLevel(cfg.Level))

	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				a.Key = "timestamp"
			}

			return a
		},
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "text") {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	logger := slog.New(handler)
	if cfg.Module != "" {
		logger = logger.With(slog.String("module", cfg.Module))
	}

	return &Logger{Logger: logger, Module: cfg.Module, level: level}
}

// ParseLevel maps a level name to a slog.Level. Unknown names give slog.LevelInfo.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SetLevel changes the minimum level of l and every logger derived from it.
func (l *Logger) SetLevel(name string) {
	l.level.Set(ParseLevel(name))
}

// Level returns the current minimum level.
func (l *Logger) Level() slog.Level {
	return l.level.Level()
}

// SetDefault installs l as the process default logger.
func (l *Logger) SetDefault() {
	slog.SetDefault(l.Logger)
}

// Close releases the log file, if any.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}

	return l.closer.Close()
}
