package logger

import (
	"log/slog"
	"os"
)

var log *slog.Logger

// Init инициализирует глобальный логгер
// env: "development" или "production"
func Init(env string) {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
	}

	if env == "development" || env == "test" {
		// Development: читаемый текстовый формат
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		// Production: JSON формат для парсинга
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	log = slog.New(handler)
	slog.SetDefault(log)
}

// GetLogger возвращает глобальный логгер
func GetLogger() *slog.Logger {
	if log == nil {
		// Fallback если Init не вызван
		Init("development")
	}
	return log
}

func Debug(msg string, args ...any) {
	GetLogger().Debug(msg, args...)
}

func Info(msg string, args ...any) {
	GetLogger().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	GetLogger().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	GetLogger().Error(msg, args...)
}

// Fatal логирует fatal ошибку и завершает программу
func Fatal(msg string, args ...any) {
	GetLogger().Error(msg, args...)
	os.Exit(1)
}

// With создает новый логгер с дополнительными полями
func With(args ...any) *slog.Logger {
	return GetLogger().With(args...)
}

// WithError создает логгер с полем error
func WithError(err error) *slog.Logger {
	return GetLogger().With("error", err.Error())
}
