package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/renato0307/beeper/internal/domain"
	"github.com/renato0307/beeper/internal/logging"
)

// slowQueryThreshold marks history queries worth a warning
const slowQueryThreshold = 200 * time.Millisecond

type queryAttrsKey struct{}

// withQueryAttrs tags every query run under ctx with the history operation
// and, for writes, the play event being stored
func withQueryAttrs(ctx context.Context, op string, event *domain.PlayEvent) context.Context {
	attrs := []any{"op", op}
	if event != nil {
		attrs = append(attrs,
			"sound", event.Sound,
			"origin", event.Origin,
			"outcome", string(event.Outcome))
	}
	return context.WithValue(ctx, queryAttrsKey{}, attrs)
}

func queryAttrs(ctx context.Context) []any {
	attrs, _ := ctx.Value(queryAttrsKey{}).([]any)
	return attrs
}

// historyLogger sends GORM's query log to the beeper logger
type historyLogger struct {
	level logger.LogLevel
}

func newHistoryLogger() logger.Interface {
	if os.Getenv("BEEPER_DEBUG") == "1" {
		return &historyLogger{level: logger.Info}
	}
	return &historyLogger{level: logger.Silent}
}

func (l *historyLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &historyLogger{level: level}
}

func (l *historyLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...), queryAttrs(ctx)...)
	}
}

func (l *historyLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...), queryAttrs(ctx)...)
	}
}

func (l *historyLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...), queryAttrs(ctx)...)
	}
}

func (l *historyLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()
	attrs := append([]any{"duration", elapsed, "sql", sql, "rows", rows}, queryAttrs(ctx)...)

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		logging.Logger.Error("History query failed", append(attrs, "error", err)...)
	case elapsed > slowQueryThreshold:
		logging.Logger.Warn("Slow history query", attrs...)
	default:
		logging.Logger.Debug("History query", attrs...)
	}
}
