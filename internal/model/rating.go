package model

import (
	"time"

	"github.com/google/uuid"
)

// Scores use a 1.0-10.0 scale with one decimal of precision.
const (
	MinScore = 1.0
	MaxScore = 10.0
)

type MovieRating struct {
	ID       uuid.UUID
	MovieID  uuid.UUID
	Score    float64
	Review   string
	Favorite bool
	RatedAt  time.Time
}

type ShowRating struct {
	ID       uuid.UUID
	ShowID   uuid.UUID
	Score    float64
	Review   string
	Favorite bool
	RatedAt  time.Time

	// SeasonScores is ordered by season number, index 0 = season 1.
	// A zero entry means the season has not been scored.
	SeasonScores []float64
}
