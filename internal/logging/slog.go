package logging

import (
	"context"
	"log/slog"

	"github.com/msomdec/roster/internal/domain"
)

// Slog forwards entries to a structured logger.
type Slog struct {
	logger *slog.Logger
}

// NewSlog wraps logger. A nil logger means slog.Default().
func NewSlog(logger *slog.Logger) *Slog {
	if logger == nil {
		logger = slog.Default()
	}
	return &Slog{logger: logger}
}

func (s *Slog) Log(level domain.LogLevel, message string) {
	s.logger.Log(context.Background(), SlogLevel(level), message)
}

// SlogLevel maps a registry level onto the matching slog level.
func SlogLevel(level domain.LogLevel) slog.Level {
	switch level {
	case domain.LogLevelDebug:
		return slog.LevelDebug
	case domain.LogLevelInfo:
		return slog.LevelInfo
	case domain.LogLevelWarning:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
