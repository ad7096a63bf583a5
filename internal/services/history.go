package services

import (
	"context"
	"fmt"

	"github.com/renato0307/beeper/internal/domain"
	"github.com/renato0307/beeper/internal/ports"
)

// DefaultHistoryLimit is used when callers pass a non-positive limit
const DefaultHistoryLimit = 20

// HistoryService reads the play history
type HistoryService struct {
	reader ports.PlayEventReader
}

// NewHistoryService creates a new HistoryService.
// A nil reader means history is disabled.
func NewHistoryService(reader ports.PlayEventReader) *HistoryService {
	return &HistoryService{reader: reader}
}

// Recent returns the most recent play events, newest first
func (s *HistoryService) Recent(ctx context.Context, limit int) ([]domain.PlayEvent, error) {
	if s.reader == nil {
		return nil, domain.ErrHistoryDisabled
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	events, err := s.reader.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to read play history: %w", err)
	}
	return events, nil
}

// Stats returns per-sound play counts
func (s *HistoryService) Stats(ctx context.Context) ([]domain.SoundPlayCount, error) {
	if s.reader == nil {
		return nil, domain.ErrHistoryDisabled
	}

	counts, err := s.reader.CountBySound(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count play history: %w", err)
	}
	return counts, nil
}
