package domain

import "time"

// PlayOutcome records what happened to a play request
type PlayOutcome string

const (
	OutcomeFailed  PlayOutcome = "failed"
	OutcomePlayed  PlayOutcome = "played"
	OutcomeUnknown PlayOutcome = "unknown"
)

// Origins of play requests
const (
	OriginBoard = "board"
	OriginCLI   = "cli"
	OriginSSH   = "ssh"
)

// PlayEvent is one entry of the play history
type PlayEvent struct {
	Error    string
	ID       string
	Origin   string
	Outcome  PlayOutcome
	PlayedAt time.Time
	Sound    string
}

// SoundPlayCount aggregates the history of one sound name
type SoundPlayCount struct {
	Failed  int64
	Played  int64
	Sound   string
	Unknown int64
}

// Total returns the number of requests recorded for the sound
func (c SoundPlayCount) Total() int64 {
	return c.Failed + c.Played + c.Unknown
}
