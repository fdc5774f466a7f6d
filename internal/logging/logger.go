// Package logging provides config-driven categorized file logging for the drill.
// Logs go to a file because the terminal belongs to the UI.
// Logging is controlled by logging.debug_mode - when false, no logs are written.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"officerdrill/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot     Category = "boot"     // Startup, config and catalog loading
	CategoryExercise Category = "exercise" // Placements, resets, scoring
	CategoryDnD      Category = "dnd"      // Drag gestures
	CategoryNotify   Category = "notify"   // Toasts shown to the user
	CategoryUI       Category = "ui"       // Key handling and layout
)

var (
	mu     sync.RWMutex
	base   = zap.NewNop()
	cfg    config.LoggingConfig
	output *os.File
)

// Initialize sets up the log file from the logging config. With debug mode
// off it is a silent no-op and every Get returns a no-op logger.
func Initialize(lc config.LoggingConfig) error {
	mu.Lock()
	defer mu.Unlock()

	closeLocked()
	cfg = lc
	if !lc.DebugMode {
		return nil
	}
	if lc.File == "" {
		return fmt.Errorf("logging file path required in debug mode")
	}

	level, err := zapcore.ParseLevel(lc.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	if err := os.MkdirAll(filepath.Dir(lc.File), 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}
	file, err := os.OpenFile(lc.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "category",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	var encoder zapcore.Encoder
	if lc.Format == "json" {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(file), level)
	output = file
	base = zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))

	base.Named(string(CategoryBoot)).Info("logging initialized",
		zap.String("file", lc.File),
		zap.String("level", level.String()),
		zap.String("format", lc.Format))
	return nil
}

// IsDebugMode returns whether logging is enabled at all
func IsDebugMode() bool {
	mu.RLock()
	defer mu.RUnlock()
	return cfg.DebugMode
}

// Get returns a logger for the given category.
// Returns a no-op logger if debug mode is disabled or the category is disabled.
func Get(category Category) *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	if !cfg.IsCategoryEnabled(string(category)) {
		return zap.NewNop()
	}
	return base.Named(string(category))
}

// Sync flushes buffered entries.
func Sync() error {
	mu.RLock()
	defer mu.RUnlock()
	if output == nil {
		return nil
	}
	return base.Sync()
}

// Close flushes and closes the log file (call at shutdown).
func Close() {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
	cfg = config.LoggingConfig{}
}

func closeLocked() {
	if output != nil {
		_ = base.Sync()
		_ = output.Close()
		output = nil
	}
	base = zap.NewNop()
}
