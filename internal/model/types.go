// Package model defines shared data structures.
package model

import "time"

// Config defines interactive check settings.
type Config struct {
	Mask   bool
	Record bool
	Plain  bool
}

// StatsConfig defines filters and options for stats output.
type StatsConfig struct {
	Since  *time.Time
	Last   int
	Window int
}

// CheckRecord captures the outcome of one analysis. The password itself is
// never part of it.
type CheckRecord struct {
	ID            int64
	CheckedAt     time.Time
	Length        int
	Score         int
	Rating        string
	FeedbackCount int
}

// RatingAggregate counts checks per rating.
type RatingAggregate struct {
	Rating   string
	Count    int
	ScoreSum int
}
