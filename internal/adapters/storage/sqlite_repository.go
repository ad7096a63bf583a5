package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/renato0307/beeper/internal/config"
	"github.com/renato0307/beeper/internal/domain"
	"github.com/renato0307/beeper/internal/logging"
	"github.com/renato0307/beeper/internal/ports"
)

// SQLiteRepository implements ports.PlayEventRepository using GORM
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.PlayEventRepository = (*SQLiteRepository)(nil)

// maxRetries bounds attempts while another beeper process holds the write lock
const maxRetries = 3

// pragmas tune SQLite for several beeper processes (CLI, board, server) writing at once
var pragmas = []string{
	"PRAGMA journal_mode=WAL",
	"PRAGMA busy_timeout=5000",
	"PRAGMA synchronous=NORMAL",
}

// NewSQLiteRepository opens (or creates) the play history database
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	dbPath = config.ExpandPath(dbPath)

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newHistoryLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	for _, pragma := range pragmas {
		if err := db.Exec(pragma).Error; err != nil {
			logging.Logger.Debug("Failed to apply pragma", "pragma", pragma, "path", dbPath, "error", err)
		}
	}

	if err := db.AutoMigrate(&PlayEventModel{}); err != nil {
		if !strings.Contains(err.Error(), "already exists") {
			return nil, fmt.Errorf("failed to migrate play_events schema: %w", err)
		}
	}

	logging.Logger.Debug("Play history opened", "path", dbPath)
	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Record implements PlayEventRecorder.Record
func (r *SQLiteRepository) Record(ctx context.Context, event domain.PlayEvent) error {
	model := domainToPlayEventModel(event)
	ctx = withQueryAttrs(ctx, "record", &event)
	return withRetry(ctx, func() error {
		return r.db.WithContext(ctx).Create(&model).Error
	})
}

// Recent implements PlayEventReader.Recent, newest first
func (r *SQLiteRepository) Recent(ctx context.Context, limit int) ([]domain.PlayEvent, error) {
	var models []PlayEventModel
	ctx = withQueryAttrs(ctx, "recent", nil)
	err := withRetry(ctx, func() error {
		query := r.db.WithContext(ctx).Order("played_at DESC")
		if limit > 0 {
			query = query.Limit(limit)
		}
		return query.Find(&models).Error
	})
	if err != nil {
		return nil, err
	}

	events := make([]domain.PlayEvent, 0, len(models))
	for _, m := range models {
		events = append(events, playEventModelToDomain(m))
	}
	return events, nil
}

// CountBySound implements PlayEventReader.CountBySound, ordered by sound name
func (r *SQLiteRepository) CountBySound(ctx context.Context) ([]domain.SoundPlayCount, error) {
	var rows []soundCountRow
	ctx = withQueryAttrs(ctx, "count_by_sound", nil)
	err := withRetry(ctx, func() error {
		return r.db.WithContext(ctx).
			Model(&PlayEventModel{}).
			Select(`sound,
				SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END) AS played,
				SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END) AS unknown,
				SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END) AS failed`,
				string(domain.OutcomePlayed),
				string(domain.OutcomeUnknown),
				string(domain.OutcomeFailed),
			).
			Group("sound").
			Order("sound").
			Scan(&rows).Error
	})
	if err != nil {
		return nil, err
	}

	counts := make([]domain.SoundPlayCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, soundCountRowToDomain(row))
	}
	return counts, nil
}

// withRetry runs fn again while another writer holds the database busy or
// locked, backing off between attempts until ctx is done
func withRetry(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err = fn()
		if err == nil || !isBusy(err) {
			return err
		}

		logging.Logger.Debug("History database busy, retrying",
			append([]any{"attempt", attempt, "error", err}, queryAttrs(ctx)...)...)
		if attempt == maxRetries {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(50*attempt) * time.Millisecond):
		}
	}
	return fmt.Errorf("history database still busy after %d attempts: %w", maxRetries, err)
}

func isBusy(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked)
}
