package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/renato0307/beeper/internal/domain"
	"github.com/renato0307/beeper/internal/logging"
	"github.com/renato0307/beeper/internal/ports"
)

// PlaybackService plays sounds for front-ends and records what happened
type PlaybackService struct {
	now      func() time.Time
	recorder ports.PlayEventRecorder
	trigger  ports.SoundTrigger
}

// NewPlaybackService creates a new PlaybackService.
// A nil recorder disables play history.
func NewPlaybackService(trigger ports.SoundTrigger, recorder ports.PlayEventRecorder) *PlaybackService {
	return &PlaybackService{
		now:      time.Now,
		recorder: recorder,
		trigger:  trigger,
	}
}

// Play plays the named sound and records the outcome.
// Recording failures are logged and never returned.
func (s *PlaybackService) Play(ctx context.Context, name string, origin string) error {
	err := s.trigger.Play(name)

	event := domain.PlayEvent{
		ID:       uuid.New().String(),
		Origin:   origin,
		Outcome:  outcomeFor(err),
		PlayedAt: s.now().UTC(),
		Sound:    name,
	}
	if err != nil {
		event.Error = err.Error()
	}

	logging.Logger.Info("Play requested",
		"sound", name,
		"origin", origin,
		"outcome", event.Outcome)

	if s.recorder != nil {
		if recErr := s.recorder.Record(ctx, event); recErr != nil {
			logging.Logger.Warn("Failed to record play event", "error", recErr, "sound", name)
		}
	}

	return err
}

// Sounds returns the names that can be played
func (s *PlaybackService) Sounds() []string {
	return s.trigger.Names()
}

// outcomeFor maps a trigger error to a history outcome
func outcomeFor(err error) domain.PlayOutcome {
	switch {
	case err == nil:
		return domain.OutcomePlayed
	case errors.Is(err, domain.ErrUnknownSound):
		return domain.OutcomeUnknown
	default:
		return domain.OutcomeFailed
	}
}
