// Package logger writes diagnostics to a file so they never draw over the
// terminal UI.
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// FileName is the log file created inside the storage directory.
const FileName = "lemonade.log"

// Logger wraps zap.SugaredLogger
type Logger struct {
	sugar    *zap.SugaredLogger
	filePath string
}

// New opens (or creates) storagePath/lemonade.log and logs at the given level
// ("DEBUG", "INFO", "WARN", "ERROR"; anything else means INFO).
func New(storagePath, level string) (*Logger, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	logPath := filepath.Join(storagePath, FileName)

	logFile, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		CallerKey:      "caller",
		MessageKey:     "message",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	fileEncoder := zapcore.NewConsoleEncoder(encoderConfig)
	fileCore := zapcore.NewCore(fileEncoder, zapcore.AddSync(logFile), parseLevel(level))
	zapLogger := zap.New(fileCore, zap.AddCaller(), zap.AddCallerSkip(1))

	return &Logger{
		sugar:    zapLogger.Sugar(),
		filePath: logPath,
	}, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{sugar: zap.NewNop().Sugar()}
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return zapcore.DebugLevel
	case "WARN":
		return zapcore.WarnLevel
	case "ERROR":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func (l *Logger) Debug(format string, v ...any) {
	l.sugar.Debugf(format, v...)
}

func (l *Logger) Info(format string, v ...any) {
	l.sugar.Infof(format, v...)
}

func (l *Logger) Warn(format string, v ...any) {
	l.sugar.Warnf(format, v...)
}

func (l *Logger) Error(format string, v ...any) {
	l.sugar.Errorf(format, v...)
}

// Path is the log file location, empty for Nop.
func (l *Logger) Path() string {
	return l.filePath
}

func (l *Logger) Sync() error {
	return l.sugar.Sync()
}
