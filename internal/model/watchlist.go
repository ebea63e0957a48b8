package model

import (
	"time"

	"github.com/google/uuid"
)

type WatchlistItem struct {
	ID      uuid.UUID
	Ref     ContentRef
	Title   string
	Poster  string
	AddedAt time.Time

	// RecommendedBy is set when the item landed here from a friend's
	// recommendation, uuid.Nil otherwise.
	RecommendedBy uuid.UUID
}
