package model

import (
	"time"

	"github.com/google/uuid"
)

// Club is a named group supporting chat, polls and predictions around
// shared viewing.
type Club struct {
	ID          uuid.UUID
	Name        string
	Description string
	Members     []uuid.UUID
	Messages    []ClubMessage
	Polls       []Poll
	Predictions []Prediction
	CreatedAt   time.Time
}

func (c Club) IsMember(id uuid.UUID) bool {
	for _, m := range c.Members {
		if m == id {
			return true
		}
	}
	return false
}

type ClubMessage struct {
	ID       uuid.UUID
	AuthorID uuid.UUID
	Text     string
	Spoiler  bool
	SentAt   time.Time

	// Ref is set when the message references a catalog entry.
	Ref *ContentRef

	// Reactions maps an emoji to the set of reacting member ids.
	Reactions map[string][]uuid.UUID
}

type Poll struct {
	ID       uuid.UUID
	AuthorID uuid.UUID
	Question string
	Options  []PollOption
	ClosesAt time.Time
	PostedAt time.Time
}

type PollOption struct {
	ID     uuid.UUID
	Text   string
	Voters []uuid.UUID
}

type PredictionStatus string

const (
	PredictionDraft    PredictionStatus = "draft"
	PredictionLocked   PredictionStatus = "locked"
	PredictionRevealed PredictionStatus = "revealed"
)

// Prediction is a locked-then-revealed guess about unresolved plot content,
// voted on by peers after reveal.
type Prediction struct {
	ID       uuid.UUID
	AuthorID uuid.UUID
	Ref      ContentRef
	Text     string
	Status   PredictionStatus

	MadeAt     time.Time
	LockedAt   time.Time
	RevealedAt time.Time
	Result     string

	Upvotes   []uuid.UUID
	Downvotes []uuid.UUID
}
