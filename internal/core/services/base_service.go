package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/grouphome_ledger/internal/core/domain"
	"github.com/SscSPs/grouphome_ledger/internal/middleware"
)

// Clock returns the current instant. Tests replace it to pin timestamps.
type Clock func() time.Time

// BaseService provides common functionality for all services
type BaseService struct {
	clock    Clock
	location *time.Location
}

// ServiceOption is a functional option shared by all services.
type ServiceOption func(*BaseService)

// WithClock replaces the wall clock.
func WithClock(clock Clock) ServiceOption {
	return func(s *BaseService) {
		s.clock = clock
	}
}

// WithLocation sets the reporting timezone used for calendar dates and months.
func WithLocation(loc *time.Location) ServiceOption {
	return func(s *BaseService) {
		s.location = loc
	}
}

func newBaseService(opts []ServiceOption) BaseService {
	b := BaseService{clock: time.Now, location: time.UTC}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// Now returns the current instant in UTC.
func (s *BaseService) Now() time.Time {
	if s.clock == nil {
		return time.Now().UTC()
	}
	return s.clock().UTC()
}

// Location returns the reporting timezone.
func (s *BaseService) Location() *time.Location {
	if s.location == nil {
		return time.UTC
	}
	return s.location
}

// Today returns the current calendar date in the reporting timezone.
func (s *BaseService) Today() time.Time {
	return domain.DateOf(s.Now(), s.Location())
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}
