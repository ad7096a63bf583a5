package domain

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateSound    = errors.New("duplicate sound")
	ErrEmptySoundName    = errors.New("sound name is empty")
	ErrHistoryDisabled   = errors.New("play history is disabled")
	ErrNoPlayableSource  = errors.New("no playable source")
	ErrNoSources         = errors.New("sound has no sources")
	ErrUnknownBackend    = errors.New("unknown sound backend")
	ErrUnknownPreset     = errors.New("unknown preset")
	ErrUnknownSound      = errors.New("unknown sound")
	ErrUnsupportedFormat = errors.New("unsupported audio format")
)

// UnknownSoundError is returned when a caller asks for a sound that was never registered.
// It matches ErrUnknownSound with errors.Is.
type UnknownSoundError struct {
	Name string
}

func (e *UnknownSoundError) Error() string {
	return fmt.Sprintf("unknown sound: %s", e.Name)
}

func (e *UnknownSoundError) Unwrap() error {
	return ErrUnknownSound
}
