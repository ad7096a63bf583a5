package storage

import "time"

// PlayEventModel is the GORM model for the play_events table
type PlayEventModel struct {
	Error    string    `gorm:"not null;default:''"`
	ID       string    `gorm:"primaryKey"`
	Origin   string    `gorm:"not null;default:''"`
	Outcome  string    `gorm:"not null;index:idx_outcome;check:outcome IN ('played','unknown','failed')"`
	PlayedAt time.Time `gorm:"not null;index:idx_played_at"`
	Sound    string    `gorm:"not null;index:idx_sound"`
}

// TableName specifies the table name for GORM
func (PlayEventModel) TableName() string { return "play_events" }

// soundCountRow receives the aggregated history of one sound
type soundCountRow struct {
	Failed  int64
	Played  int64
	Sound   string
	Unknown int64
}
