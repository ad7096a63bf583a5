package storage

import (
	"github.com/renato0307/beeper/internal/domain"
)

// playEventModelToDomain converts a PlayEventModel (GORM) to domain.PlayEvent
func playEventModelToDomain(m PlayEventModel) domain.PlayEvent {
	return domain.PlayEvent{
		Error:    m.Error,
		ID:       m.ID,
		Origin:   m.Origin,
		Outcome:  domain.PlayOutcome(m.Outcome),
		PlayedAt: m.PlayedAt.UTC(),
		Sound:    m.Sound,
	}
}

// domainToPlayEventModel converts a domain.PlayEvent to PlayEventModel (GORM)
func domainToPlayEventModel(e domain.PlayEvent) PlayEventModel {
	return PlayEventModel{
		Error:    e.Error,
		ID:       e.ID,
		Origin:   e.Origin,
		Outcome:  string(e.Outcome),
		PlayedAt: e.PlayedAt.UTC(),
		Sound:    e.Sound,
	}
}

func soundCountRowToDomain(r soundCountRow) domain.SoundPlayCount {
	return domain.SoundPlayCount{
		Failed:  r.Failed,
		Played:  r.Played,
		Sound:   r.Sound,
		Unknown: r.Unknown,
	}
}
