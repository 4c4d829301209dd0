// Package log holds the process-wide zap logger used by the command line
// front end.
package log

import (
	"fmt"

	"go.uber.org/zap"
)

var logger *zap.SugaredLogger

// Init initializes the package-level logger. Debug selects zap's development
// configuration, otherwise the production JSON configuration is used.
func Init(debug bool) error {
	var (
		zapLogger *zap.Logger
		err       error
	)

	if debug {
		zapLogger, err = zap.NewDevelopment(zap.AddCallerSkip(1))
	} else {
		zapLogger, err = zap.NewProduction(zap.AddCallerSkip(1))
	}
	if err != nil {
		return fmt.Errorf("can't initialize zap logger: %w", err)
	}

	logger = zapLogger.Sugar()

	return nil
}

// GetSugaredLogger returns the package logger, falling back to a production
// logger when Init was not called.
func GetSugaredLogger() *zap.SugaredLogger {
	if logger == nil {
		zapLogger, err := zap.NewProduction(zap.AddCallerSkip(1))
		if err != nil {
			return zap.NewNop().Sugar()
		}

		logger = zapLogger.Sugar()
	}

	return logger
}

// Sync flushes any buffered log entries.
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}

func Debugw(msg string, keysAndValues ...any) {
	GetSugaredLogger().Debugw(msg, keysAndValues...)
}

func Infow(msg string, keysAndValues ...any) {
	GetSugaredLogger().Infow(msg, keysAndValues...)
}

func Warnw(msg string, keysAndValues ...any) {
	GetSugaredLogger().Warnw(msg, keysAndValues...)
}

func Errorw(msg string, keysAndValues ...any) {
	GetSugaredLogger().Errorw(msg, keysAndValues...)
}
