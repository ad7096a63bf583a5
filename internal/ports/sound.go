package ports

import "context"

// SoundHandle is a loaded sound owned by an audio backend
type SoundHandle interface {
	// Play starts playback and returns without waiting for it to finish.
	// The error only reports an immediate refusal to start.
	Play() error
}

// SoundLoader builds a handle from an ordered list of candidate sources
type SoundLoader interface {
	Load(ctx context.Context, sources []string) (SoundHandle, error)
}

// PlaybackWaiter blocks until every started sound has finished
type PlaybackWaiter interface {
	Wait(ctx context.Context) error
}

// SoundBackend is the composite interface implemented by audio backends
type SoundBackend interface {
	SoundLoader
	PlaybackWaiter
	Close() error
}

// SoundTrigger plays registered sounds by logical name
type SoundTrigger interface {
	Names() []string
	Play(name string) error
}
