package ports

import (
	"context"

	"github.com/renato0307/beeper/internal/domain"
)

// PlayEventRecorder appends entries to the play history
type PlayEventRecorder interface {
	Record(ctx context.Context, event domain.PlayEvent) error
}

// PlayEventReader queries the play history
type PlayEventReader interface {
	CountBySound(ctx context.Context) ([]domain.SoundPlayCount, error)
	Recent(ctx context.Context, limit int) ([]domain.PlayEvent, error)
}

// PlayEventRepository is the composite interface
type PlayEventRepository interface {
	PlayEventRecorder
	PlayEventReader
	Close() error
}
