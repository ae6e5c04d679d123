package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/fund_ledger_app/internal/cache"
	"github.com/SscSPs/fund_ledger_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	cache *cache.ReadCache
	now   func() time.Time
}

// ServiceOption is a functional option shared by all services
type ServiceOption func(*BaseService)

// WithReadCache enables the short-TTL row cache.
func WithReadCache(rc *cache.ReadCache) ServiceOption {
	return func(s *BaseService) {
		s.cache = rc
	}
}

// WithClock overrides the time source used for audit fields and date windows.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *BaseService) {
		s.now = now
	}
}

func newBaseService(options ...ServiceOption) BaseService {
	b := BaseService{now: time.Now}
	for _, option := range options {
		option(&b)
	}
	return b
}

// Now returns the current time in UTC.
func (s *BaseService) Now() time.Time {
	return s.now().UTC()
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// invalidate drops cached rows after a successful write.
func (s *BaseService) invalidate(ctx context.Context, keys ...string) {
	s.cache.Invalidate(ctx, keys...)
}
