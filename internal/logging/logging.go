package logging

import (
	"context"
	"log"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type (
	Field  = zapcore.Field
	Option = zap.Option
	Level  = zapcore.Level
)

type LoggerCtxKey struct{}

type zapLogger interface {
	Debug(msg string, fields ...zapcore.Field)
	Info(msg string, fields ...zapcore.Field)
	Sync() error
	Warn(msg string, fields ...zapcore.Field)
	With(fields ...zapcore.Field) *zap.Logger
}

type Logger struct {
	log zapLogger
}

var (
	logOnce      sync.Once
	cachedLogger *Logger
)

// SetCustomGlobalLogger replaces the process logger. Only the first call
// made before New has any effect.
func SetCustomGlobalLogger(logger zapLogger) {
	if logger != nil {
		logOnce.Do(func() {
			cachedLogger = Wrap(logger)
		})
	}
}

// Wrap builds a Logger around an existing zap logger without touching the
// process logger.
func Wrap(logger zapLogger) *Logger {
	return &Logger{
		log: logger,
	}
}

func insideContainer() bool {
	return os.Getenv("GO_ENVIRONMENT") == "production"
}

// Build creates a zap logger for the current environment at the given
// level.
func Build(level Level, opts ...Option) (*zap.Logger, error) {
	var logCfg zap.Config
	if insideContainer() {
		logCfg = zap.NewProductionConfig()
	} else {
		logCfg = zap.NewDevelopmentConfig()
		logCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	logCfg.Level = zap.NewAtomicLevelAt(level)
	logCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.RFC3339)

	return logCfg.Build(opts...)
}

func defaultLogger() *zap.Logger {
	logger, err := Build(zapcore.InfoLevel, zap.AddCallerSkip(1))
	if err != nil {
		log.Panicf("could not create logger: %v", err)
	}

	return logger
}

func New() *Logger {
	if cachedLogger != nil {
		return cachedLogger
	}

	logOnce.Do(func() {
		cachedLogger = Wrap(defaultLogger())
	})

	return cachedLogger
}

func FromContext(ctx context.Context) *Logger {
	if ctx == nil {
		return New()
	}

	if l, ok := ctx.Value(LoggerCtxKey{}).(*Logger); ok {
		return l
	}

	return New()
}

func (l Logger) Debug(msg string, fields ...Field) {
	l.log.Debug(msg, fields...)
}

func (l Logger) Info(msg string, fields ...Field) {
	l.log.Info(msg, fields...)
}

func (l Logger) Sync() error {
	return l.log.Sync()
}

func (l Logger) Warn(msg string, fields ...Field) {
	l.log.Warn(msg, fields...)
}

func (l Logger) With(fields ...Field) *Logger {
	return Wrap(l.log.With(fields...))
}

func (l *Logger) GetContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, LoggerCtxKey{}, l)
}
