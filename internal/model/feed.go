package model

import (
	"time"

	"github.com/google/uuid"
)

type ReactionKind string

const (
	ReactionLike ReactionKind = "like"
	ReactionFire ReactionKind = "fire"
	ReactionClap ReactionKind = "clap"
	ReactionSad  ReactionKind = "sad"
)

func (k ReactionKind) Valid() bool {
	switch k {
	case ReactionLike, ReactionFire, ReactionClap, ReactionSad:
		return true
	}
	return false
}

// FeedActivity is the denormalized social record of a rating event.
type FeedActivity struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Ref         ContentRef
	Title       string
	Poster      string
	Score       float64
	Comment     string
	TaggedUsers []uuid.UUID
	Reactions   map[ReactionKind][]uuid.UUID
	PostedAt    time.Time
}

// HasReaction reports whether the user already reacted with the given kind.
func (a FeedActivity) HasReaction(kind ReactionKind, userID uuid.UUID) bool {
	for _, id := range a.Reactions[kind] {
		if id == userID {
			return true
		}
	}
	return false
}
